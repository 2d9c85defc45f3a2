// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/payout-gateway/internal/config"
	"github.com/MKhiriev/payout-gateway/internal/logger"
	"github.com/MKhiriev/payout-gateway/internal/mock"
	"github.com/MKhiriev/payout-gateway/internal/store"
	"github.com/MKhiriev/payout-gateway/internal/validators"
	"github.com/MKhiriev/payout-gateway/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T {
	return &v
}

func merchantAuth() models.AuthContext {
	return models.AuthContext{
		MerchantAccount: models.MerchantAccount{
			MerchantID:        "merchant_1",
			PayoutsEnabled:    true,
			EnabledCurrencies: []string{"USD", "EUR"},
			IsActive:          true,
		},
		AuthFlow: models.AuthFlowMerchant,
	}
}

func validRequest() models.PayoutRequest {
	return models.PayoutRequest{
		PayoutID:    ptr("po_merchant_ref_1"),
		Amount:      ptr(int64(1050)),
		Currency:    ptr("USD"),
		Destination: ptr("acct_123"),
		Description: "refund",
	}
}

func newTestPayoutService(t *testing.T, repo store.PayoutRepository, selector ConnectorSelector, cfg config.Payouts) *payoutService {
	t.Helper()
	svc, err := NewPayoutService(repo, selector, cfg, logger.Nop())
	require.NoError(t, err)

	ps := svc.(*payoutService)
	ps.now = func() time.Time { return fixedNow }
	return ps
}

func echoCreate(_ context.Context, p models.Payout) (models.Payout, error) {
	return p, nil
}

func TestPayoutService_Create_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockPayoutRepository(ctrl)
	selector := mock.NewMockConnectorSelector(ctrl)

	gomock.InOrder(
		repo.EXPECT().Exists(gomock.Any(), "merchant_1", "po_merchant_ref_1").Return(false, nil),
		selector.EXPECT().Select(gomock.Any(), "USD", "").Return(models.Connector{Name: "adyen"}, nil).Times(1),
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, p models.Payout) (models.Payout, error) {
			assert.Equal(t, "po_merchant_ref_1", p.PayoutID)
			assert.Equal(t, "merchant_1", p.MerchantID)
			assert.Equal(t, int64(1050), p.Amount)
			assert.Equal(t, "adyen", p.Connector)
			assert.Equal(t, models.PayoutStatusRequiresFulfillment, p.Status)
			assert.Equal(t, models.AuthFlowMerchant, p.AuthFlow)
			assert.Equal(t, fixedNow, p.CreatedAt)
			return p, nil
		}),
	)

	svc := newTestPayoutService(t, repo, selector, config.Payouts{})
	got, err := svc.Create(context.Background(), merchantAuth(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, "po_merchant_ref_1", got.PayoutID)
	assert.Equal(t, models.PayoutStatusRequiresFulfillment, got.Status)
	assert.Equal(t, "adyen", got.Connector)
	assert.Equal(t, "refund", got.Description)
}

func TestPayoutService_Create_GeneratesPayoutID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockPayoutRepository(ctrl)
	selector := mock.NewMockConnectorSelector(ctrl)

	selector.EXPECT().Select(gomock.Any(), "EUR", "DE").Return(models.Connector{Name: "adyen"}, nil)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoCreate)

	req := validRequest()
	req.PayoutID = nil
	req.Currency = ptr("EUR")
	req.DestinationCountry = "DE"

	auth := merchantAuth()
	auth.AuthFlow = models.AuthFlowCustomer

	got, err := newTestPayoutService(t, repo, selector, config.Payouts{}).Create(context.Background(), auth, req)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got.PayoutID, "po_"), got.PayoutID)
	assert.Equal(t, models.AuthFlowCustomer, got.AuthFlow)
}

func TestPayoutService_Create_NormalizesISOCodes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockPayoutRepository(ctrl)
	selector := mock.NewMockConnectorSelector(ctrl)

	selector.EXPECT().Select(gomock.Any(), "EUR", "NL").Return(models.Connector{Name: "adyen"}, nil)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, p models.Payout) (models.Payout, error) {
		assert.Equal(t, "EUR", p.Currency)
		assert.Equal(t, "NL", p.Country)
		return p, nil
	})

	req := validRequest()
	req.PayoutID = nil
	req.Currency = ptr(" eur ")
	req.DestinationCountry = "nl"

	got, err := newTestPayoutService(t, repo, selector, config.Payouts{MaxAmounts: map[string]string{"EUR": "100"}}).
		Create(context.Background(), merchantAuth(), req)

	require.NoError(t, err)
	assert.Equal(t, "EUR", got.Currency)
	assert.Equal(t, " eur ", *req.Currency, "caller's request must not be modified")
}

func TestPayoutService_Create_Rejected(t *testing.T) {
	tests := []struct {
		name      string
		auth      func() models.AuthContext
		request   func() models.PayoutRequest
		setup     func(repo *mock.MockPayoutRepository)
		wantErr   error
		wantField string
	}{
		{
			name:      "missing amount",
			request:   func() models.PayoutRequest { r := validRequest(); r.Amount = nil; return r },
			wantErr:   validators.ErrMissingField,
			wantField: validators.FieldAmount,
		},
		{
			name:      "missing currency",
			request:   func() models.PayoutRequest { r := validRequest(); r.Currency = nil; return r },
			wantErr:   validators.ErrMissingField,
			wantField: validators.FieldCurrency,
		},
		{
			name:      "missing destination",
			request:   func() models.PayoutRequest { r := validRequest(); r.Destination = nil; return r },
			wantErr:   validators.ErrMissingField,
			wantField: validators.FieldDestination,
		},
		{
			name:      "whitespace-only destination",
			request:   func() models.PayoutRequest { r := validRequest(); r.Destination = ptr("   "); return r },
			wantErr:   validators.ErrMissingField,
			wantField: validators.FieldDestination,
		},
		{
			name:      "blank currency",
			request:   func() models.PayoutRequest { r := validRequest(); r.Currency = ptr("  "); return r },
			wantErr:   validators.ErrInvalidField,
			wantField: validators.FieldCurrency,
		},
		{
			name:      "zero amount",
			request:   func() models.PayoutRequest { r := validRequest(); r.Amount = ptr(int64(0)); return r },
			wantErr:   validators.ErrInvalidField,
			wantField: validators.FieldAmount,
		},
		{
			name:      "unknown currency",
			request:   func() models.PayoutRequest { r := validRequest(); r.Currency = ptr("XYZ"); return r },
			wantErr:   validators.ErrInvalidField,
			wantField: validators.FieldCurrency,
		},
		{
			name:      "currency not enabled for merchant",
			request:   func() models.PayoutRequest { r := validRequest(); r.Currency = ptr("GBP"); return r },
			wantErr:   ErrCurrencyNotEnabled,
			wantField: validators.FieldCurrency,
		},
		{
			name: "payouts disabled",
			auth: func() models.AuthContext {
				a := merchantAuth()
				a.MerchantAccount.PayoutsEnabled = false
				return a
			},
			wantErr: ErrPayoutsDisabled,
		},
		{
			name:      "amount above limit",
			request:   func() models.PayoutRequest { r := validRequest(); r.Amount = ptr(int64(1_000_001)); return r },
			wantErr:   ErrAmountExceedsLimit,
			wantField: validators.FieldAmount,
		},
		{
			name: "duplicate payout id",
			setup: func(repo *mock.MockPayoutRepository) {
				repo.EXPECT().Exists(gomock.Any(), "merchant_1", "po_merchant_ref_1").Return(true, nil)
			},
			wantErr:   ErrDuplicatePayout,
			wantField: validators.FieldPayoutID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mock.NewMockPayoutRepository(ctrl)
			// no expectations: a rejected request never reaches selection
			selector := mock.NewMockConnectorSelector(ctrl)
			if tt.setup != nil {
				tt.setup(repo)
			}

			auth, req := merchantAuth(), validRequest()
			if tt.auth != nil {
				auth = tt.auth()
			}
			if tt.request != nil {
				req = tt.request()
			}

			svc := newTestPayoutService(t, repo, selector, config.Payouts{MaxAmounts: map[string]string{"USD": "10000"}})
			_, err := svc.Create(context.Background(), auth, req)

			require.ErrorIs(t, err, tt.wantErr)
			if tt.wantField != "" {
				var fieldErr *validators.FieldError
				require.ErrorAs(t, err, &fieldErr)
				assert.Equal(t, tt.wantField, fieldErr.Field)
			}
		})
	}
}

func TestPayoutService_Create_ExistsFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storeErr := errors.New("connection reset")
	repo := mock.NewMockPayoutRepository(ctrl)
	repo.EXPECT().Exists(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, storeErr)

	_, err := newTestPayoutService(t, repo, mock.NewMockConnectorSelector(ctrl), config.Payouts{}).
		Create(context.Background(), merchantAuth(), validRequest())

	assert.ErrorIs(t, err, storeErr)
}

func TestPayoutService_Create_NoConnector(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockPayoutRepository(ctrl)
	repo.EXPECT().Exists(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)

	selector := mock.NewMockConnectorSelector(ctrl)
	selector.EXPECT().Select(gomock.Any(), "USD", "").Return(models.Connector{}, ErrNoEligibleConnector)

	_, err := newTestPayoutService(t, repo, selector, config.Payouts{}).
		Create(context.Background(), merchantAuth(), validRequest())

	assert.ErrorIs(t, err, ErrNoEligibleConnector)
}

func TestPayoutService_Create_DuplicateOnInsert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockPayoutRepository(ctrl)
	repo.EXPECT().Exists(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.Payout{}, store.ErrDuplicatePayout)

	selector := mock.NewMockConnectorSelector(ctrl)
	selector.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.Connector{Name: "wise"}, nil)

	_, err := newTestPayoutService(t, repo, selector, config.Payouts{}).
		Create(context.Background(), merchantAuth(), validRequest())

	assert.ErrorIs(t, err, ErrDuplicatePayout)
}

func TestPayoutService_Create_PersistFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockPayoutRepository(ctrl)
	repo.EXPECT().Exists(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.Payout{}, store.ErrPayoutNotSaved)

	selector := mock.NewMockConnectorSelector(ctrl)
	selector.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.Connector{Name: "wise"}, nil)

	_, err := newTestPayoutService(t, repo, selector, config.Payouts{}).
		Create(context.Background(), merchantAuth(), validRequest())

	assert.ErrorIs(t, err, store.ErrPayoutNotSaved)
	assert.NotErrorIs(t, err, ErrDuplicatePayout)
}

func TestPayoutService_Create_CancelledBeforeStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestPayoutService(t, mock.NewMockPayoutRepository(ctrl), mock.NewMockConnectorSelector(ctrl), config.Payouts{}).
		Create(ctx, merchantAuth(), validRequest())

	assert.ErrorIs(t, err, context.Canceled)
}

func TestPayoutService_Create_CancelledBetweenStages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo := mock.NewMockPayoutRepository(ctrl)
	repo.EXPECT().Exists(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, string, string) (bool, error) {
			cancel()
			return false, nil
		})

	_, err := newTestPayoutService(t, repo, mock.NewMockConnectorSelector(ctrl), config.Payouts{}).
		Create(ctx, merchantAuth(), validRequest())

	require.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, err.Error(), string(StageSelectConnector))
}

func TestPayoutService_Create_Anonymous(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, err := newTestPayoutService(t, mock.NewMockPayoutRepository(ctrl), mock.NewMockConnectorSelector(ctrl), config.Payouts{}).
		Create(context.Background(), models.AuthContext{AuthFlow: models.AuthFlowMerchant}, validRequest())

	assert.ErrorIs(t, err, ErrMerchantRequired)
}

func TestPayoutService_Acknowledge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no expectations on either mock: placeholders must not touch state
	svc := newTestPayoutService(t, mock.NewMockPayoutRepository(ctrl), mock.NewMockConnectorSelector(ctrl), config.Payouts{})

	tests := []struct {
		op   models.PayoutOperation
		want string
	}{
		{models.PayoutRetrieve, "retrieve"},
		{models.PayoutUpdate, "update"},
		{models.PayoutReverse, "reverse"},
		{models.PayoutCancel, "cancel"},
		{models.PayoutAccounts, "accounts"},
	}

	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			got, err := svc.Acknowledge(context.Background(), models.AuthContext{}, tt.op)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("create is not a placeholder", func(t *testing.T) {
		_, err := svc.Acknowledge(context.Background(), models.AuthContext{}, models.PayoutCreate)
		assert.ErrorIs(t, err, ErrUnsupportedOperation)
	})
}

func TestNewPayoutService_InvalidLimits(t *testing.T) {
	svc, err := NewPayoutService(nil, nil, config.Payouts{DefaultMaxAmount: "abc"}, logger.Nop())

	assert.Nil(t, svc)
	assert.ErrorIs(t, err, ErrInvalidPayoutLimit)
}
