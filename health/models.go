/*
 * Copyright 2025 WellPulse Authors
 * SPDX-License-Identifier: Apache-2.0
 */
package health

import (
	"time"

	"github.com/google/uuid"
)

// Gender represents the gender recorded on a user profile
type Gender string

// Gender values supported by user profiles.
const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// UserProfile represents a person whose telemetry is being scored
type UserProfile struct {
	ID          uuid.UUID `db:"id"`
	FirstName   string    `db:"first_name"`
	LastName    string    `db:"last_name"`
	Email       string    `db:"email"`
	DateOfBirth time.Time `db:"date_of_birth"`
	Gender      Gender    `db:"gender"`
	HeightCM    *float64  `db:"height_cm"`
	WeightKG    *float64  `db:"weight_kg"`
	CreatedAt   time.Time `db:"created_at"`
}

// FullName returns the profile's display name.
func (p *UserProfile) FullName() string {
	return p.FirstName + " " + p.LastName
}

// Age calculates the age in years at a given date
func (p *UserProfile) Age(atDate time.Time) int {
	years := atDate.Year() - p.DateOfBirth.Year()
	// Adjust if birthday hasn't occurred yet this year
	if atDate.Month() < p.DateOfBirth.Month() ||
		(atDate.Month() == p.DateOfBirth.Month() && atDate.Day() < p.DateOfBirth.Day()) {
		years--
	}

	return years
}

// TestDefinition describes a lab test: its name, unit, and reference bounds.
// Either bound may be absent; a result linked to a definition without both
// bounds contributes nothing to the biometric index.
type TestDefinition struct {
	ID         uuid.UUID `db:"id"`
	Name       string    `db:"name"`
	Unit       string    `db:"unit"`
	LowerBound *float64  `db:"lower_bound"`
	UpperBound *float64  `db:"upper_bound"`
}

// TestResult represents a single lab measurement for a user
type TestResult struct {
	ID      uuid.UUID `db:"id"`
	UserID  uuid.UUID `db:"user_id"`
	Value   float64   `db:"result_value"`
	TakenAt time.Time `db:"taken_at"`
	Test    *TestDefinition
}

// StepRecord represents a per-day step aggregate for a user
type StepRecord struct {
	ID             uuid.UUID `db:"id"`
	UserID         uuid.UUID `db:"user_id"`
	Date           time.Time `db:"record_date"`
	TotalSteps     int       `db:"total_steps"`
	CaloriesBurned *float64  `db:"calories_burned"`
	DistanceKM     *float64  `db:"distance_km"`
	ActiveMinutes  *int      `db:"active_minutes"`
}

// ActivitySession represents a bounded physical activity interval
type ActivitySession struct {
	ID             uuid.UUID `db:"id"`
	UserID         uuid.UUID `db:"user_id"`
	ActivityType   string    `db:"activity_type"`
	StartTime      time.Time `db:"start_time"`
	EndTime        time.Time `db:"end_time"`
	CaloriesBurned *float64  `db:"calories_burned"`
	AvgHeartRate   *int      `db:"avg_heart_rate"`
	MaxHeartRate   *int      `db:"max_heart_rate"`
}

// DurationMinutes returns the session length in whole minutes, truncated.
// A session whose end precedes its start yields a negative duration; callers
// decide whether to keep or drop such sessions (see Config.DropAnomalousSessions).
func (a *ActivitySession) DurationMinutes() int64 {
	return int64(a.EndTime.Sub(a.StartTime) / time.Minute)
}

// SleepSession represents one night of sleep telemetry
type SleepSession struct {
	ID           uuid.UUID `db:"id"`
	UserID       uuid.UUID `db:"user_id"`
	Night        time.Time `db:"night"`
	DurationMin  int       `db:"duration_min"`
	Efficiency   float64   `db:"efficiency"`
	DeepSleepMin int       `db:"deep_sleep_min"`
	REMSleepMin  int       `db:"rem_sleep_min"`
	Wakeups      int       `db:"wakeups"`
	Bedtime      time.Time `db:"bedtime"`
	WakeTime     time.Time `db:"wake_time"`
}

// Hours returns the session duration in hours.
func (s *SleepSession) Hours() float64 {
	return float64(s.DurationMin) / 60
}
