/*
 * Copyright 2025 WellPulse Authors
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/wellpulse/wellpulse/health"
)

// GetTestResultsByUser returns all lab results for a user with their test
// definitions. The join is a LEFT JOIN on purpose: a result whose definition
// was deleted still comes back, with a nil Test, and the scoring engine skips
// it rather than failing.
func GetTestResultsByUser(ctx context.Context, userID uuid.UUID) ([]health.TestResult, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	query := `
		SELECT r.id, r.user_id, r.result_value, r.taken_at,
		       d.id, d.name, d.unit, d.lower_bound, d.upper_bound
		FROM test_results r
		LEFT JOIN test_definitions d ON r.test_id = d.id
		WHERE r.user_id = $1
		ORDER BY r.taken_at ASC
	`

	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get test results: %w", err)
	}
	defer rows.Close()

	var results []health.TestResult
	for rows.Next() {
		var (
			result     health.TestResult
			defID      *uuid.UUID
			defName    *string
			defUnit    *string
			lowerBound *float64
			upperBound *float64
		)

		err := rows.Scan(
			&result.ID, &result.UserID, &result.Value, &result.TakenAt,
			&defID, &defName, &defUnit, &lowerBound, &upperBound,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan test result: %w", err)
		}

		if defID != nil && defName != nil && defUnit != nil {
			result.Test = &health.TestDefinition{
				ID:         *defID,
				Name:       *defName,
				Unit:       *defUnit,
				LowerBound: lowerBound,
				UpperBound: upperBound,
			}
		}

		results = append(results, result)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating test results: %w", err)
	}

	return results, nil
}

// GetStepRecordsByUser returns all daily step records for a user
func GetStepRecordsByUser(ctx context.Context, userID uuid.UUID) ([]health.StepRecord, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	query := `
		SELECT id, user_id, record_date, total_steps, calories_burned, distance_km, active_minutes
		FROM step_records
		WHERE user_id = $1
		ORDER BY record_date ASC
	`

	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get step records: %w", err)
	}
	defer rows.Close()

	var records []health.StepRecord
	for rows.Next() {
		var record health.StepRecord
		err := rows.Scan(
			&record.ID, &record.UserID, &record.Date, &record.TotalSteps,
			&record.CaloriesBurned, &record.DistanceKM, &record.ActiveMinutes,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan step record: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating step records: %w", err)
	}

	return records, nil
}

// GetSleepSessionsByUser returns all sleep sessions for a user
func GetSleepSessionsByUser(ctx context.Context, userID uuid.UUID) ([]health.SleepSession, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	query := `
		SELECT id, user_id, night, duration_min, efficiency, deep_sleep_min, rem_sleep_min,
		       wakeups, bedtime, wake_time
		FROM sleep_sessions
		WHERE user_id = $1
		ORDER BY night ASC
	`

	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get sleep sessions: %w", err)
	}
	defer rows.Close()

	var sessions []health.SleepSession
	for rows.Next() {
		var session health.SleepSession
		err := rows.Scan(
			&session.ID, &session.UserID, &session.Night, &session.DurationMin,
			&session.Efficiency, &session.DeepSleepMin, &session.REMSleepMin,
			&session.Wakeups, &session.Bedtime, &session.WakeTime,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sleep session: %w", err)
		}
		sessions = append(sessions, session)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sleep sessions: %w", err)
	}

	return sessions, nil
}

// GetActivitySessionsByUser returns all physical activity sessions for a user
func GetActivitySessionsByUser(ctx context.Context, userID uuid.UUID) ([]health.ActivitySession, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	query := `
		SELECT id, user_id, activity_type, start_time, end_time, calories_burned,
		       avg_heart_rate, max_heart_rate
		FROM activity_sessions
		WHERE user_id = $1
		ORDER BY start_time ASC
	`

	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get activity sessions: %w", err)
	}
	defer rows.Close()

	var sessions []health.ActivitySession
	for rows.Next() {
		var session health.ActivitySession
		err := rows.Scan(
			&session.ID, &session.UserID, &session.ActivityType,
			&session.StartTime, &session.EndTime, &session.CaloriesBurned,
			&session.AvgHeartRate, &session.MaxHeartRate,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activity session: %w", err)
		}
		sessions = append(sessions, session)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activity sessions: %w", err)
	}

	return sessions, nil
}
