/*
 * Copyright 2025 WellPulse Authors
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import "github.com/wellpulse/wellpulse/logging"

var appLogger = logging.Logger(logging.SourceApp)
var webLogger = logging.Logger(logging.SourceWeb)
