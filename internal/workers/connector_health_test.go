// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/payout-gateway/internal/logger"
	"github.com/MKhiriev/payout-gateway/internal/mock"
	"github.com/MKhiriev/payout-gateway/internal/service"
	"github.com/MKhiriev/payout-gateway/models"
)

func testConnectors() []models.Connector {
	return []models.Connector{
		{Name: "adyen", HealthURL: "http://adyen.local/health", Currencies: []string{"EUR"}},
		{Name: "wise", HealthURL: "http://wise.local/health", Currencies: []string{"USD"}},
	}
}

// statusLog collects the serving statuses reported by the worker.
type statusLog struct {
	mu       sync.Mutex
	statuses []bool
}

func (s *statusLog) record(serving bool) {
	s.mu.Lock()
	s.statuses = append(s.statuses, serving)
	s.mu.Unlock()
}

func (s *statusLog) last() (bool, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.statuses) == 0 {
		return false, false
	}
	return s.statuses[len(s.statuses)-1], true
}

func TestNewConnectorHealthWorker_InvalidInterval(t *testing.T) {
	w, err := NewConnectorHealthWorker(nil, service.NewConnectorRegistry(nil), 0, nil, logger.Nop())

	assert.Nil(t, w)
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestConnectorHealthWorker_Probe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	connectorAdapter := mock.NewMockConnectorAdapter(ctrl)
	connectorAdapter.EXPECT().Health(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c models.Connector) error {
			if c.Name == "adyen" {
				return errors.New("503 service unavailable")
			}
			return nil
		}).Times(2)

	registry := service.NewConnectorRegistry(testConnectors())
	statuses := &statusLog{}

	w, err := NewConnectorHealthWorker(connectorAdapter, registry, time.Minute, statuses.record, logger.Nop())
	require.NoError(t, err)

	w.probe(context.Background())

	assert.False(t, registry.IsHealthy("adyen"))
	assert.True(t, registry.IsHealthy("wise"))

	serving, ok := statuses.last()
	require.True(t, ok)
	assert.True(t, serving)
}

func TestConnectorHealthWorker_AllDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	connectorAdapter := mock.NewMockConnectorAdapter(ctrl)
	connectorAdapter.EXPECT().Health(gomock.Any(), gomock.Any()).Return(errors.New("unreachable")).Times(2)

	registry := service.NewConnectorRegistry(testConnectors())
	statuses := &statusLog{}

	w, err := NewConnectorHealthWorker(connectorAdapter, registry, time.Minute, statuses.record, logger.Nop())
	require.NoError(t, err)

	w.probe(context.Background())

	serving, ok := statuses.last()
	require.True(t, ok)
	assert.False(t, serving)
	assert.False(t, registry.AnyHealthy())
}

func TestConnectorHealthWorker_RunProbesUntilCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	probed := make(chan struct{}, 16)
	connectorAdapter := mock.NewMockConnectorAdapter(ctrl)
	connectorAdapter.EXPECT().Health(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, models.Connector) error {
			select {
			case probed <- struct{}{}:
			default:
			}
			return nil
		}).MinTimes(4)

	registry := service.NewConnectorRegistry(testConnectors())
	w, err := NewConnectorHealthWorker(connectorAdapter, registry, 10*time.Millisecond, nil, logger.Nop())
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// two rounds of two connectors
	for i := 0; i < 4; i++ {
		select {
		case <-probed:
		case <-time.After(time.Second):
			t.Fatal("connectors were not probed")
		}
	}
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}
