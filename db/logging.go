/*
 * Copyright 2025 WellPulse Authors
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import "github.com/wellpulse/wellpulse/logging"

var logger = logging.Logger(logging.SourceDB)
