/*
 * Copyright 2025 WellPulse Authors
 * SPDX-License-Identifier: Apache-2.0
 */
package health

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrUserNotFound indicates that no profile exists for the requested user.
// It is the only condition an evaluation reports to its caller; every other
// data irregularity is absorbed by the scoring policy.
var ErrUserNotFound = errors.New("user not found")

// Store is the accessor contract the engine consumes. Implementations fetch
// fully-materialized record collections; the engine performs no I/O of its
// own beyond these five calls.
type Store interface {
	UserProfile(ctx context.Context, userID uuid.UUID) (*UserProfile, error)
	TestResultsByUser(ctx context.Context, userID uuid.UUID) ([]TestResult, error)
	StepRecordsByUser(ctx context.Context, userID uuid.UUID) ([]StepRecord, error)
	SleepSessionsByUser(ctx context.Context, userID uuid.UUID) ([]SleepSession, error)
	ActivitySessionsByUser(ctx context.Context, userID uuid.UUID) ([]ActivitySession, error)
}

// Evaluation bundles everything one scoring pass produces.
type Evaluation struct {
	Profile  UserProfile
	Age      int
	Scores   Scores
	Sections []ReportSection
}

// Evaluator runs scoring evaluations against a record store.
type Evaluator struct {
	store Store
	cfg   Config
	now   func() time.Time
}

// NewEvaluator returns an evaluator using the given store and scoring policy.
func NewEvaluator(store Store, cfg Config) *Evaluator {
	return &Evaluator{store: store, cfg: cfg, now: time.Now}
}

// Evaluate fetches a user's records, derives the three sub-scores and the
// final composite, and assembles the report sections. It returns
// ErrUserNotFound when no profile exists; a user with a profile but no
// records evaluates normally under the per-category empty policies.
func (e *Evaluator) Evaluate(ctx context.Context, userID uuid.UUID) (*Evaluation, error) {
	profile, err := e.store.UserProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, fmt.Errorf("evaluate user %s: %w", userID, ErrUserNotFound)
		}

		return nil, fmt.Errorf("failed to fetch user profile: %w", err)
	}

	results, err := e.store.TestResultsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch test results: %w", err)
	}

	steps, err := e.store.StepRecordsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch step records: %w", err)
	}

	sleeps, err := e.store.SleepSessionsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sleep sessions: %w", err)
	}

	activities, err := e.store.ActivitySessionsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch activity sessions: %w", err)
	}

	// The three aggregators are independent; fan out and wait. They are
	// total functions over their inputs, so there is no error path here.
	var (
		wg            sync.WaitGroup
		bhi, ahs, sqs float64
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		bhi = BiometricHealthIndex(results)
	}()
	go func() {
		defer wg.Done()
		ahs = e.cfg.ActivityHealthScore(steps, activities)
	}()
	go func() {
		defer wg.Done()
		sqs = SleepQualityScore(sleeps, e.cfg.Sleep)
	}()
	wg.Wait()

	scores := Scores{
		BHI: bhi,
		AHS: ahs,
		SQS: sqs,
		FHS: FinalHealthScore(bhi, ahs, sqs, e.cfg.Weights),
	}

	age := profile.Age(e.now())

	return &Evaluation{
		Profile:  *profile,
		Age:      age,
		Scores:   scores,
		Sections: e.cfg.AssembleReport(*profile, age, steps, sleeps, activities, scores),
	}, nil
}
