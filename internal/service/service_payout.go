// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/payout-gateway/internal/config"
	"github.com/MKhiriev/payout-gateway/internal/logger"
	"github.com/MKhiriev/payout-gateway/internal/store"
	"github.com/MKhiriev/payout-gateway/internal/utils"
	"github.com/MKhiriev/payout-gateway/internal/validators"
	"github.com/MKhiriev/payout-gateway/models"
)

// Stage names one step of payout creation.
type Stage string

const (
	StageAuthorize       Stage = "authorize"
	StageVerify          Stage = "verify"
	StageSelectConnector Stage = "select_connector"
	StagePersist         Stage = "persist"
)

// payoutService dispatches payout operations. Create runs its stages
// strictly in order; the remaining operations are acknowledged with fixed
// bodies.
type payoutService struct {
	payoutRepository store.PayoutRepository
	connectors       ConnectorSelector
	validator        validators.Validator
	limits           payoutLimits
	ids              *utils.UUIDGenerator
	now              func() time.Time

	logger *logger.Logger
}

// payoutDraft accumulates what the stages learn about one create request.
type payoutDraft struct {
	auth        models.AuthContext
	request     models.PayoutRequest
	payoutID    string
	amount      int64
	currency    string
	destination string
	connector   models.Connector
}

// NewPayoutService constructs the payout dispatcher. It fails when the
// configured limits can not be parsed.
func NewPayoutService(payoutRepository store.PayoutRepository, connectors ConnectorSelector, cfg config.Payouts, logger *logger.Logger) (PayoutService, error) {
	limits, err := newPayoutLimits(cfg)
	if err != nil {
		return nil, err
	}

	return &payoutService{
		payoutRepository: payoutRepository,
		connectors:       connectors,
		validator:        validators.NewPayoutValidator(),
		limits:           limits,
		ids:              utils.NewUUIDGenerator("po_"),
		now:              time.Now,
		logger:           logger,
	}, nil
}

// Create implements [PayoutService].
func (s *payoutService) Create(ctx context.Context, auth models.AuthContext, req models.PayoutRequest) (models.PayoutResponse, error) {
	if auth.IsAnonymous() {
		return models.PayoutResponse{}, ErrMerchantRequired
	}

	log := logger.FromContext(ctx).WithField("merchant_id", auth.MerchantID())
	draft := &payoutDraft{auth: auth, request: req}

	stages := []struct {
		name Stage
		run  func(context.Context, *payoutDraft) error
	}{
		{StageAuthorize, s.authorize},
		{StageVerify, s.verify},
		{StageSelectConnector, s.selectConnector},
	}

	for _, stage := range stages {
		if err := ctx.Err(); err != nil {
			return models.PayoutResponse{}, fmt.Errorf("before %s: %w", stage.name, err)
		}
		if err := stage.run(ctx, draft); err != nil {
			log.Debug().Err(err).Str("stage", string(stage.name)).Msg("payout rejected")
			return models.PayoutResponse{}, err
		}
	}

	if err := ctx.Err(); err != nil {
		return models.PayoutResponse{}, fmt.Errorf("before %s: %w", StagePersist, err)
	}
	payout, err := s.persist(ctx, draft)
	if err != nil {
		return models.PayoutResponse{}, err
	}

	log.Info().
		Str("payout_id", payout.PayoutID).
		Str("connector", payout.Connector).
		Msg("payout created")

	return models.NewPayoutResponse(payout), nil
}

// authorize checks the mandatory fields and that the merchant may pay out
// in the requested currency.
func (s *payoutService) authorize(ctx context.Context, d *payoutDraft) error {
	d.request = normalizeRequest(d.request)
	if err := s.validator.Validate(ctx, d.request); err != nil {
		return err
	}

	d.amount = *d.request.Amount
	d.currency = *d.request.Currency
	d.destination = strings.TrimSpace(*d.request.Destination)

	if !d.auth.MerchantAccount.SupportsCurrency(d.currency) {
		return &validators.FieldError{
			Field: validators.FieldCurrency,
			Rule:  "enabled",
			Err:   ErrCurrencyNotEnabled,
		}
	}

	return nil
}

// normalizeRequest upper-cases the ISO codes of req. The caller's pointers
// are left untouched.
func normalizeRequest(req models.PayoutRequest) models.PayoutRequest {
	if req.Currency != nil {
		currency := strings.ToUpper(strings.TrimSpace(*req.Currency))
		req.Currency = &currency
	}
	req.DestinationCountry = strings.ToUpper(strings.TrimSpace(req.DestinationCountry))
	return req
}

// verify enforces limits, duplicate suppression and merchant eligibility.
func (s *payoutService) verify(ctx context.Context, d *payoutDraft) error {
	if !d.auth.MerchantAccount.PayoutsEnabled {
		return ErrPayoutsDisabled
	}

	if err := s.limits.check(d.amount, d.currency); err != nil {
		return &validators.FieldError{Field: validators.FieldAmount, Rule: "limit", Err: err}
	}

	if d.request.PayoutID == nil {
		d.payoutID = s.ids.Generate()
		return nil
	}

	d.payoutID = *d.request.PayoutID
	exists, err := s.payoutRepository.Exists(ctx, d.auth.MerchantID(), d.payoutID)
	if err != nil {
		return fmt.Errorf("checking payout %s: %w", d.payoutID, err)
	}
	if exists {
		return &validators.FieldError{Field: validators.FieldPayoutID, Rule: "unique", Err: ErrDuplicatePayout}
	}

	return nil
}

func (s *payoutService) selectConnector(ctx context.Context, d *payoutDraft) error {
	connector, err := s.connectors.Select(ctx, d.currency, d.request.DestinationCountry)
	if err != nil {
		return err
	}

	d.connector = connector
	return nil
}

func (s *payoutService) persist(ctx context.Context, d *payoutDraft) (models.Payout, error) {
	payout := models.Payout{
		PayoutID:    d.payoutID,
		MerchantID:  d.auth.MerchantID(),
		Amount:      d.amount,
		Currency:    d.currency,
		Destination: d.destination,
		Country:     d.request.DestinationCountry,
		Description: d.request.Description,
		Metadata:    d.request.Metadata,
		Connector:   d.connector.Name,
		Status:      models.PayoutStatusRequiresFulfillment,
		AuthFlow:    d.auth.AuthFlow,
		CreatedAt:   s.now().UTC(),
	}

	saved, err := s.payoutRepository.Create(ctx, payout)
	if errors.Is(err, store.ErrDuplicatePayout) {
		return models.Payout{}, &validators.FieldError{Field: validators.FieldPayoutID, Rule: "unique", Err: ErrDuplicatePayout}
	}
	if err != nil {
		return models.Payout{}, fmt.Errorf("persisting payout %s: %w", payout.PayoutID, err)
	}

	return saved, nil
}

// Acknowledge implements [PayoutService].
func (s *payoutService) Acknowledge(ctx context.Context, auth models.AuthContext, op models.PayoutOperation) (string, error) {
	body, ok := op.Placeholder()
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedOperation, op)
	}

	logger.FromContext(ctx).Debug().Str("operation", op.String()).Msg("placeholder operation acknowledged")
	return body, nil
}
