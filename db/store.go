/*
 * Copyright 2025 WellPulse Authors
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import (
	"context"

	"github.com/google/uuid"

	"github.com/wellpulse/wellpulse/health"
)

// Store adapts this package's query functions to the scoring engine's
// accessor contract.
type Store struct{}

var _ health.Store = Store{}

func (Store) UserProfile(ctx context.Context, userID uuid.UUID) (*health.UserProfile, error) {
	return GetUserProfile(ctx, userID)
}

func (Store) TestResultsByUser(ctx context.Context, userID uuid.UUID) ([]health.TestResult, error) {
	return GetTestResultsByUser(ctx, userID)
}

func (Store) StepRecordsByUser(ctx context.Context, userID uuid.UUID) ([]health.StepRecord, error) {
	return GetStepRecordsByUser(ctx, userID)
}

func (Store) SleepSessionsByUser(ctx context.Context, userID uuid.UUID) ([]health.SleepSession, error) {
	return GetSleepSessionsByUser(ctx, userID)
}

func (Store) ActivitySessionsByUser(ctx context.Context, userID uuid.UUID) ([]health.ActivitySession, error) {
	return GetActivitySessionsByUser(ctx, userID)
}
