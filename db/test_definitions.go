/*
 * Copyright 2025 WellPulse Authors
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import (
	"context"
	"fmt"

	"github.com/wellpulse/wellpulse/health"
)

// ptr is a helper to create pointers to float64 literals
func ptr(f float64) *float64 {
	return &f
}

// GetTestDefinitionCatalog returns the built-in lab test definitions.
// This is the authoritative source of truth for test bounds; the database
// copy is refreshed from it on startup.
func GetTestDefinitionCatalog() []health.TestDefinition {
	return []health.TestDefinition{
		{
			Name: "Glucose (fasting)", Unit: "mg/dL",
			LowerBound: ptr(70.0), UpperBound: ptr(100.0),
		},
		{
			Name: "Hemoglobin", Unit: "g/dL",
			LowerBound: ptr(12.0), UpperBound: ptr(17.5),
		},
		{
			Name: "White blood cells", Unit: "x10^3/uL",
			LowerBound: ptr(4.5), UpperBound: ptr(11.0),
		},
		{
			Name: "Red blood cells", Unit: "x10^6/uL",
			LowerBound: ptr(3.9), UpperBound: ptr(5.65),
		},
		{
			Name: "Platelets", Unit: "x10^3/uL",
			LowerBound: ptr(150.0), UpperBound: ptr(450.0),
		},
		{
			Name: "Total cholesterol", Unit: "mg/dL",
			LowerBound: nil, UpperBound: ptr(200.0),
		},
		{
			Name: "HDL cholesterol", Unit: "mg/dL",
			LowerBound: ptr(40.0), UpperBound: nil,
		},
		{
			Name: "LDL cholesterol", Unit: "mg/dL",
			LowerBound: nil, UpperBound: ptr(130.0),
		},
		{
			Name: "Triglycerides", Unit: "mg/dL",
			LowerBound: nil, UpperBound: ptr(150.0),
		},
		{
			Name: "Creatinine", Unit: "mg/dL",
			LowerBound: ptr(0.6), UpperBound: ptr(1.3),
		},
		{
			Name: "ALT", Unit: "U/L",
			LowerBound: ptr(7.0), UpperBound: ptr(56.0),
		},
		{
			Name: "AST", Unit: "U/L",
			LowerBound: ptr(10.0), UpperBound: ptr(40.0),
		},
		{
			Name: "TSH", Unit: "mIU/L",
			LowerBound: ptr(0.4), UpperBound: ptr(4.0),
		},
		{
			Name: "Vitamin D (25-OH)", Unit: "ng/mL",
			LowerBound: ptr(30.0), UpperBound: ptr(100.0),
		},
		{
			Name: "Resting heart rate", Unit: "bpm",
			LowerBound: ptr(60.0), UpperBound: ptr(100.0),
		},
		{
			Name: "Systolic blood pressure", Unit: "mmHg",
			LowerBound: ptr(90.0), UpperBound: ptr(120.0),
		},
		{
			Name: "Diastolic blood pressure", Unit: "mmHg",
			LowerBound: ptr(60.0), UpperBound: ptr(80.0),
		},
	}
}

// SyncTestDefinitions upserts the built-in catalog into the database so
// results can reference a stable set of definitions.
func SyncTestDefinitions(ctx context.Context) error {
	if pool == nil {
		return ErrDatabaseConnectionNotInitialized
	}

	catalog := GetTestDefinitionCatalog()
	logger.Infof("Syncing %d test definitions to database...", len(catalog))

	query := `
		INSERT INTO test_definitions (name, unit, lower_bound, upper_bound)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (name)
		DO UPDATE SET
			unit = EXCLUDED.unit,
			lower_bound = EXCLUDED.lower_bound,
			upper_bound = EXCLUDED.upper_bound,
			updated_at = now()
	`

	syncCount := 0

	for _, def := range catalog {
		_, err := pool.Exec(ctx, query,
			def.Name, def.Unit, def.LowerBound, def.UpperBound,
		)
		if err != nil {
			return fmt.Errorf("failed to sync test definition %q: %w", def.Name, err)
		}

		syncCount++
	}

	logger.Infof("Successfully synced %d test definitions", syncCount)

	return nil
}

// GetTestDefinitionByName looks up a stored definition by its unique name.
func GetTestDefinitionByName(ctx context.Context, name string) (*health.TestDefinition, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	var def health.TestDefinition

	query := `
		SELECT id, name, unit, lower_bound, upper_bound
		FROM test_definitions
		WHERE name = $1
	`

	err := pool.QueryRow(ctx, query, name).Scan(
		&def.ID, &def.Name, &def.Unit, &def.LowerBound, &def.UpperBound,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get test definition %q: %w", name, err)
	}

	return &def, nil
}
