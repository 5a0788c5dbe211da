/*
 * Copyright 2025 WellPulse Authors
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import "errors"

var (
	errDatabaseURLRequired   = errors.New("database-url is required (set via --database-url or DATABASE_URL env var)")
	errMigrationNameRequired = errors.New("migration name is required")
	errUserIDRequired        = errors.New("user ID is required (set via --user)")
	errSeedDirRequired       = errors.New("seed data directory is required (set via --dir)")
)
