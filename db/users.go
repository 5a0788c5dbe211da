/*
 * Copyright 2025 WellPulse Authors
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/wellpulse/wellpulse/health"
)

// GetUserProfile returns a single user profile by ID. A missing user maps to
// health.ErrUserNotFound so callers can distinguish it from query failures.
func GetUserProfile(ctx context.Context, id uuid.UUID) (*health.UserProfile, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	var profile health.UserProfile
	query := `
		SELECT id, first_name, last_name, email, date_of_birth, gender, height_cm, weight_kg, created_at
		FROM users
		WHERE id = $1
	`

	err := pool.QueryRow(ctx, query, id).Scan(
		&profile.ID, &profile.FirstName, &profile.LastName, &profile.Email,
		&profile.DateOfBirth, &profile.Gender, &profile.HeightCM, &profile.WeightKG,
		&profile.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, health.ErrUserNotFound
		}

		return nil, fmt.Errorf("failed to get user profile: %w", err)
	}

	return &profile, nil
}

// ListUserProfiles returns all user profiles ordered by name
func ListUserProfiles(ctx context.Context) ([]health.UserProfile, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	query := `
		SELECT id, first_name, last_name, email, date_of_birth, gender, height_cm, weight_kg, created_at
		FROM users
		ORDER BY last_name ASC, first_name ASC
	`

	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list user profiles: %w", err)
	}
	defer rows.Close()

	var profiles []health.UserProfile
	for rows.Next() {
		var profile health.UserProfile
		err := rows.Scan(
			&profile.ID, &profile.FirstName, &profile.LastName, &profile.Email,
			&profile.DateOfBirth, &profile.Gender, &profile.HeightCM, &profile.WeightKG,
			&profile.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user profile: %w", err)
		}
		profiles = append(profiles, profile)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user profiles: %w", err)
	}

	return profiles, nil
}

// CreateUserProfile inserts a new user and returns its generated ID
func CreateUserProfile(ctx context.Context, profile health.UserProfile) (uuid.UUID, error) {
	if pool == nil {
		return uuid.Nil, ErrDatabaseConnectionNotInitialized
	}

	var id uuid.UUID
	query := `
		INSERT INTO users (first_name, last_name, email, date_of_birth, gender, height_cm, weight_kg)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := pool.QueryRow(ctx, query,
		profile.FirstName, profile.LastName, profile.Email, profile.DateOfBirth,
		profile.Gender, profile.HeightCM, profile.WeightKG,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create user profile: %w", err)
	}

	return id, nil
}
