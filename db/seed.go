/*
 * Copyright 2025 WellPulse Authors
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Seed files are JSON arrays keyed by small local integer IDs so a data set
// can be authored by hand. The importer maps those local IDs to the UUIDs
// the database generates.

type seedUser struct {
	ID          int64    `json:"id"`
	FirstName   string   `json:"first_name"`
	LastName    string   `json:"last_name"`
	Email       string   `json:"email"`
	DateOfBirth string   `json:"dob"`
	Gender      string   `json:"gender"`
	HeightCM    *float64 `json:"height_cm"`
	WeightKG    *float64 `json:"weight_kg"`
}

type seedTestResult struct {
	UserID   int64   `json:"user_id"`
	TestName string  `json:"test_name"`
	Value    float64 `json:"value"`
	TakenAt  string  `json:"taken_at"`
}

type seedStepRecord struct {
	UserID         int64    `json:"user_id"`
	Date           string   `json:"date"`
	TotalSteps     int      `json:"total_steps"`
	CaloriesBurned *float64 `json:"calories_burned"`
	DistanceKM     *float64 `json:"distance_km"`
	ActiveMinutes  *int     `json:"active_minutes"`
}

type seedSleepSession struct {
	UserID       int64   `json:"user_id"`
	SleepDate    string  `json:"sleep_date"`
	DurationMin  int     `json:"duration_min"`
	Efficiency   float64 `json:"efficiency"`
	DeepSleepMin int     `json:"deep_sleep_min"`
	REMSleepMin  int     `json:"rem_sleep_min"`
	Wakeups      int     `json:"wakeups"`
	Bedtime      string  `json:"bedtime"`
	WakeTime     string  `json:"wake_time"`
}

type seedActivitySession struct {
	UserID         int64    `json:"user_id"`
	ActivityType   string   `json:"activity_type"`
	StartTime      string   `json:"start_time"`
	EndTime        string   `json:"end_time"`
	CaloriesBurned *float64 `json:"calories_burned"`
	AvgHeartRate   *int     `json:"avg_heart_rate"`
	MaxHeartRate   *int     `json:"max_heart_rate"`
}

func loadSeedFile[T any](dir, name string) ([]T, error) {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			// Every seed file is optional
			return nil, nil
		}

		return nil, fmt.Errorf("failed to read seed file %s: %w", name, err)
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", name, err)
	}

	return records, nil
}

func parseSeedDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}

func parseSeedTime(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err == nil {
		return t, nil
	}

	// Accept timestamps without a zone offset, treated as UTC
	return time.Parse("2006-01-02T15:04:05", value)
}

// ImportSeedData loads the JSON seed files from dir into the database.
// Users are inserted first so later files can reference them by local ID.
func ImportSeedData(ctx context.Context, dir string) error {
	if pool == nil {
		return ErrDatabaseConnectionNotInitialized
	}

	userIDs, err := importSeedUsers(ctx, dir)
	if err != nil {
		return err
	}

	testIDs, err := testDefinitionIDsByName(ctx)
	if err != nil {
		return err
	}

	if err := importSeedTestResults(ctx, dir, userIDs, testIDs); err != nil {
		return err
	}

	if err := importSeedStepRecords(ctx, dir, userIDs); err != nil {
		return err
	}

	if err := importSeedSleepSessions(ctx, dir, userIDs); err != nil {
		return err
	}

	if err := importSeedActivitySessions(ctx, dir, userIDs); err != nil {
		return err
	}

	logger.Info("Seed data import complete")

	return nil
}

func importSeedUsers(ctx context.Context, dir string) (map[int64]uuid.UUID, error) {
	users, err := loadSeedFile[seedUser](dir, "users.json")
	if err != nil {
		return nil, err
	}

	userIDs := make(map[int64]uuid.UUID, len(users))

	for _, u := range users {
		dob, err := parseSeedDate(u.DateOfBirth)
		if err != nil {
			return nil, fmt.Errorf("invalid date of birth for seed user %d: %w", u.ID, err)
		}

		var id uuid.UUID

		err = pool.QueryRow(ctx, `
			INSERT INTO users (first_name, last_name, email, date_of_birth, gender, height_cm, weight_kg)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id
		`, u.FirstName, u.LastName, u.Email, dob, u.Gender, u.HeightCM, u.WeightKG).Scan(&id)
		if err != nil {
			return nil, fmt.Errorf("failed to insert seed user %d: %w", u.ID, err)
		}

		userIDs[u.ID] = id
	}

	logger.Infof("Imported %d users", len(users))

	return userIDs, nil
}

func testDefinitionIDsByName(ctx context.Context) (map[string]uuid.UUID, error) {
	rows, err := pool.Query(ctx, `SELECT id, name FROM test_definitions`)
	if err != nil {
		return nil, fmt.Errorf("failed to list test definitions: %w", err)
	}
	defer rows.Close()

	ids := make(map[string]uuid.UUID)

	for rows.Next() {
		var (
			id   uuid.UUID
			name string
		)

		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("failed to scan test definition: %w", err)
		}

		ids[name] = id
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating test definitions: %w", err)
	}

	return ids, nil
}

func importSeedTestResults(ctx context.Context, dir string, userIDs map[int64]uuid.UUID, testIDs map[string]uuid.UUID) error {
	results, err := loadSeedFile[seedTestResult](dir, "test_results.json")
	if err != nil {
		return err
	}

	batch := &pgx.Batch{}

	for _, r := range results {
		userID, ok := userIDs[r.UserID]
		if !ok {
			return fmt.Errorf("test result references unknown seed user %d", r.UserID)
		}

		testID, ok := testIDs[r.TestName]
		if !ok {
			return fmt.Errorf("test result references unknown test %q", r.TestName)
		}

		takenAt, err := parseSeedTime(r.TakenAt)
		if err != nil {
			return fmt.Errorf("invalid taken_at for test result of seed user %d: %w", r.UserID, err)
		}

		batch.Queue(`
			INSERT INTO test_results (user_id, test_id, result_value, taken_at)
			VALUES ($1, $2, $3, $4)
		`, userID, testID, r.Value, takenAt)
	}

	if err := pool.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to insert seed test results: %w", err)
	}

	logger.Infof("Imported %d test results", len(results))

	return nil
}

func importSeedStepRecords(ctx context.Context, dir string, userIDs map[int64]uuid.UUID) error {
	records, err := loadSeedFile[seedStepRecord](dir, "daily_steps.json")
	if err != nil {
		return err
	}

	batch := &pgx.Batch{}

	for _, r := range records {
		userID, ok := userIDs[r.UserID]
		if !ok {
			return fmt.Errorf("step record references unknown seed user %d", r.UserID)
		}

		date, err := parseSeedDate(r.Date)
		if err != nil {
			return fmt.Errorf("invalid date for step record of seed user %d: %w", r.UserID, err)
		}

		batch.Queue(`
			INSERT INTO step_records (user_id, record_date, total_steps, calories_burned, distance_km, active_minutes)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, userID, date, r.TotalSteps, r.CaloriesBurned, r.DistanceKM, r.ActiveMinutes)
	}

	if err := pool.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to insert seed step records: %w", err)
	}

	logger.Infof("Imported %d step records", len(records))

	return nil
}

func importSeedSleepSessions(ctx context.Context, dir string, userIDs map[int64]uuid.UUID) error {
	sessions, err := loadSeedFile[seedSleepSession](dir, "sleep.json")
	if err != nil {
		return err
	}

	batch := &pgx.Batch{}

	for _, s := range sessions {
		userID, ok := userIDs[s.UserID]
		if !ok {
			return fmt.Errorf("sleep session references unknown seed user %d", s.UserID)
		}

		night, err := parseSeedDate(s.SleepDate)
		if err != nil {
			return fmt.Errorf("invalid sleep_date for seed user %d: %w", s.UserID, err)
		}

		bedtime, err := parseSeedTime(s.Bedtime)
		if err != nil {
			return fmt.Errorf("invalid bedtime for seed user %d: %w", s.UserID, err)
		}

		wakeTime, err := parseSeedTime(s.WakeTime)
		if err != nil {
			return fmt.Errorf("invalid wake_time for seed user %d: %w", s.UserID, err)
		}

		batch.Queue(`
			INSERT INTO sleep_sessions (user_id, night, duration_min, efficiency, deep_sleep_min, rem_sleep_min, wakeups, bedtime, wake_time)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`, userID, night, s.DurationMin, s.Efficiency, s.DeepSleepMin, s.REMSleepMin, s.Wakeups, bedtime, wakeTime)
	}

	if err := pool.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to insert seed sleep sessions: %w", err)
	}

	logger.Infof("Imported %d sleep sessions", len(sessions))

	return nil
}

func importSeedActivitySessions(ctx context.Context, dir string, userIDs map[int64]uuid.UUID) error {
	sessions, err := loadSeedFile[seedActivitySession](dir, "activities.json")
	if err != nil {
		return err
	}

	batch := &pgx.Batch{}

	for _, a := range sessions {
		userID, ok := userIDs[a.UserID]
		if !ok {
			return fmt.Errorf("activity session references unknown seed user %d", a.UserID)
		}

		startTime, err := parseSeedTime(a.StartTime)
		if err != nil {
			return fmt.Errorf("invalid start_time for seed user %d: %w", a.UserID, err)
		}

		endTime, err := parseSeedTime(a.EndTime)
		if err != nil {
			return fmt.Errorf("invalid end_time for seed user %d: %w", a.UserID, err)
		}

		batch.Queue(`
			INSERT INTO activity_sessions (user_id, activity_type, start_time, end_time, calories_burned, avg_heart_rate, max_heart_rate)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, userID, a.ActivityType, startTime, endTime, a.CaloriesBurned, a.AvgHeartRate, a.MaxHeartRate)
	}

	if err := pool.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to insert seed activity sessions: %w", err)
	}

	logger.Infof("Imported %d activity sessions", len(sessions))

	return nil
}
