/*
 * Copyright 2025 WellPulse Authors
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import "errors"

var (
	ErrDatabaseConnectionNotInitialized = errors.New("database connection not initialized")
	ErrDatabaseURLEnvVarNotSet          = errors.New("DATABASE_URL environment variable not set")
	ErrDatabaseNameNotSpecified         = errors.New("database name not specified in connection URL")
)
