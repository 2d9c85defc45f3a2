// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pipeline

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/MKhiriev/payout-gateway/internal/auth"
	"github.com/MKhiriev/payout-gateway/internal/logger"
	"github.com/MKhiriev/payout-gateway/internal/utils"
	"github.com/MKhiriev/payout-gateway/models"
)

// AttributeFlow is the span attribute carrying the flow tag.
const AttributeFlow = "payout.flow"

// Operation is the business behavior bound to one route.
type Operation[Req, Res any] func(ctx context.Context, auth models.AuthContext, req Req) (Res, error)

// Pipeline holds what every flow shares: the tracer, the error classifier and
// the base logger.
type Pipeline struct {
	tracer   trace.Tracer
	classify Classifier
	logger   *logger.Logger
}

// New builds a pipeline. A nil classify falls back to DefaultClassifier.
func New(tracer trace.Tracer, classify Classifier, logger *logger.Logger) *Pipeline {
	if classify == nil {
		classify = DefaultClassifier
	}
	return &Pipeline{tracer: tracer, classify: classify, logger: logger}
}

// Run tags the request with flow, authenticates it with strategy and, only
// on success, executes op. Handler errors are returned unmodified. An
// unknown flow fails with ErrUnknownFlow before authentication.
func Run[Req, Res any](ctx context.Context, p *Pipeline, flow models.Flow, r *http.Request, payload Req, op Operation[Req, Res], strategy auth.Strategy) Result[Res] {
	if !flow.IsValid() {
		return Failure[Res](fmt.Errorf("%w: %q", ErrUnknownFlow, flow))
	}
	return run(p.tag(ctx, flow), p, flow, r, payload, op, strategy)
}

// run is Run for a context already tagged with flow.
func run[Req, Res any](ctx context.Context, p *Pipeline, flow models.Flow, r *http.Request, payload Req, op Operation[Req, Res], strategy auth.Strategy) Result[Res] {
	ctx, span := p.tracer.Start(ctx, "pipeline."+flow.String(), trace.WithAttributes(attribute.String(AttributeFlow, flow.String())))
	defer span.End()

	authCtx, err := strategy.Authenticate(ctx, r)
	if err != nil {
		span.SetAttributes(attribute.Bool("payout.authenticated", false))
		return Failure[Res](fmt.Errorf("%w: %w", ErrAuthentication, err))
	}
	span.SetAttributes(
		attribute.Bool("payout.authenticated", true),
		attribute.String("payout.auth_flow", authCtx.AuthFlow.String()),
	)

	res, err := op(ctx, authCtx, payload)
	if err != nil {
		return Failure[Res](err)
	}
	return Success(res)
}

// Serve binds flow, decoder, operation and strategy into an HTTP handler.
// The handler wraps the whole request in a span and logs its duration.
// Serve panics on an unknown flow, like a router given a bad pattern.
func Serve[Req, Res any](p *Pipeline, flow models.Flow, decode Decoder[Req], op Operation[Req, Res], strategy auth.Strategy) http.HandlerFunc {
	if !flow.IsValid() {
		panic(fmt.Sprintf("pipeline: %s: %q", ErrUnknownFlow, flow))
	}

	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ctx, span := p.tracer.Start(r.Context(), flow.String(), trace.WithAttributes(attribute.String(AttributeFlow, flow.String())))
		defer span.End()

		ctx = p.tag(ctx, flow)
		r = r.WithContext(ctx)

		var result Result[Res]
		if payload, err := decode(r); err != nil {
			result = Failure[Res](err)
		} else {
			result = run(ctx, p, flow, r, payload, op, strategy)
		}

		status := write(ctx, p, w, result)
		span.SetAttributes(attribute.Int("http.response.status_code", status))

		logger.FromContext(ctx).Info().
			Int("status", status).
			Dur("duration", time.Since(start)).
			Msg("flow finished")
	}
}

// tag attaches the flow to the request logger.
func (p *Pipeline) tag(ctx context.Context, flow models.Flow) context.Context {
	return logger.FromContextOr(ctx, p.logger).WithField("flow", flow.String()).WithContext(ctx)
}

// write maps result onto the response envelope and returns the status.
// Details of opaque failures are logged and recorded on the span only.
func write[Res any](ctx context.Context, p *Pipeline, w http.ResponseWriter, result Result[Res]) int {
	if result.Ok() {
		var err error
		switch body := any(result.Value).(type) {
		case string:
			_, err = utils.WriteText(w, body, http.StatusOK)
		default:
			_, err = utils.WriteJSON(w, body, http.StatusOK)
		}
		if err != nil {
			logger.FromContext(ctx).Err(err).Msg("failed to write response")
		}
		return http.StatusOK
	}

	apiErr := p.classify(result.Err)
	status := apiErr.Kind.HTTPStatus()
	span := trace.SpanFromContext(ctx)
	log := logger.FromContext(ctx)

	if apiErr.Kind.IsOpaque() {
		span.RecordError(result.Err)
		span.SetStatus(codes.Error, string(apiErr.Kind))
		log.Error().Err(result.Err).Str("error_kind", string(apiErr.Kind)).Msg("request failed")

		apiErr.Message = http.StatusText(status)
		apiErr.Field = ""
	} else {
		span.SetAttributes(attribute.String("payout.error_kind", string(apiErr.Kind)))
		log.Warn().Err(result.Err).Str("error_kind", string(apiErr.Kind)).Msg("request rejected")
	}

	if _, err := utils.WriteJSON(w, models.ErrorResponse{Error: apiErr}, status); err != nil {
		log.Err(err).Msg("failed to write error response")
	}
	return status
}
