// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/MKhiriev/payout-gateway/models"
)

// SerialPayoutService serializes Create calls of the same merchant so that
// their stage sequences never interleave. Different merchants proceed in
// parallel. Placeholder operations pass straight through.
type SerialPayoutService struct {
	inner PayoutService

	mu    sync.Mutex
	locks map[string]*merchantLock
}

type merchantLock struct {
	sem  *semaphore.Weighted
	refs int
}

func NewSerialPayoutService() PayoutServiceWrapper {
	return &SerialPayoutService{locks: make(map[string]*merchantLock)}
}

func (s *SerialPayoutService) Wrap(inner PayoutService) PayoutService {
	s.inner = inner
	return s
}

// Create waits for the merchant's previous create to finish. A request
// cancelled while waiting never enters the first stage.
func (s *SerialPayoutService) Create(ctx context.Context, auth models.AuthContext, req models.PayoutRequest) (models.PayoutResponse, error) {
	release, err := s.acquire(ctx, auth.MerchantID())
	if err != nil {
		return models.PayoutResponse{}, fmt.Errorf("waiting for merchant lock: %w", err)
	}
	defer release()

	return s.inner.Create(ctx, auth, req)
}

func (s *SerialPayoutService) Acknowledge(ctx context.Context, auth models.AuthContext, op models.PayoutOperation) (string, error) {
	return s.inner.Acknowledge(ctx, auth, op)
}

func (s *SerialPayoutService) acquire(ctx context.Context, merchantID string) (func(), error) {
	s.mu.Lock()
	lock, ok := s.locks[merchantID]
	if !ok {
		lock = &merchantLock{sem: semaphore.NewWeighted(1)}
		s.locks[merchantID] = lock
	}
	lock.refs++
	s.mu.Unlock()

	if err := lock.sem.Acquire(ctx, 1); err != nil {
		s.forget(merchantID, lock)
		return nil, err
	}

	return func() {
		lock.sem.Release(1)
		s.forget(merchantID, lock)
	}, nil
}

// forget drops the lock entry once nobody holds or waits for it.
func (s *SerialPayoutService) forget(merchantID string, lock *merchantLock) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock.refs--
	if lock.refs == 0 {
		delete(s.locks, merchantID)
	}
}

func (s *SerialPayoutService) pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.locks)
}
