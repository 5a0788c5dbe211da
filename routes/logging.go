/*
 * Copyright 2025 WellPulse Authors
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import "github.com/wellpulse/wellpulse/logging"

var webLogger = logging.Logger(logging.SourceWeb)
var requestLogger = logging.Logger(logging.SourceWebRequest)
