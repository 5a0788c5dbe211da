// SPDX-FileCopyrightText: 2025 WellPulse Authors
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"context"
	"testing"

	"github.com/urfave/cli/v3"

	"github.com/wellpulse/wellpulse/health"
)

func runScoringConfig(t *testing.T, args ...string) health.Config {
	t.Helper()

	var cfg health.Config

	testCmd := &cli.Command{
		Name:  "report",
		Flags: CmdReport.Flags,
		Action: func(_ context.Context, cmd *cli.Command) error {
			cfg = scoringConfig(cmd)

			return nil
		},
	}

	if err := testCmd.Run(context.Background(), append([]string{"report"}, args...)); err != nil {
		t.Fatalf("failed to run test command: %v", err)
	}

	return cfg
}

func TestScoringConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := runScoringConfig(t)

	if cfg.Sleep.IdealHours != health.DefaultIdealSleepHours {
		t.Errorf("expected ideal sleep %v, got %v", health.DefaultIdealSleepHours, cfg.Sleep.IdealHours)
	}

	if cfg.Sleep.PenaltyPerHour != health.DefaultSleepPenaltyPerHour {
		t.Errorf("expected sleep penalty %v, got %v", health.DefaultSleepPenaltyPerHour, cfg.Sleep.PenaltyPerHour)
	}

	if cfg.Weights[health.WeightBHI] != 0.4 ||
		cfg.Weights[health.WeightAHS] != 0.3 ||
		cfg.Weights[health.WeightSQS] != 0.3 {
		t.Errorf("unexpected default weights: %v", cfg.Weights)
	}

	if cfg.DropAnomalousSessions {
		t.Error("anomalous sessions should be kept by default")
	}
}

func TestScoringConfigOverrides(t *testing.T) {
	t.Parallel()

	cfg := runScoringConfig(t,
		"--ideal-sleep-hours", "7.5",
		"--sleep-penalty", "5",
		"--weight-bhi", "0.6",
		"--weight-ahs", "0.2",
		"--weight-sqs", "0.2",
		"--drop-anomalous-sessions",
	)

	if cfg.Sleep.IdealHours != 7.5 {
		t.Errorf("expected ideal sleep 7.5, got %v", cfg.Sleep.IdealHours)
	}

	if cfg.Sleep.PenaltyPerHour != 5 {
		t.Errorf("expected sleep penalty 5, got %v", cfg.Sleep.PenaltyPerHour)
	}

	if cfg.Weights[health.WeightBHI] != 0.6 {
		t.Errorf("expected BHI weight 0.6, got %v", cfg.Weights[health.WeightBHI])
	}

	if !cfg.DropAnomalousSessions {
		t.Error("expected anomalous sessions to be dropped")
	}
}
