/*
 * Copyright 2025 WellPulse Authors
 * SPDX-License-Identifier: Apache-2.0
 */
package health

import "math"

// Default scoring policy constants. The sleep and activity values mirror the
// targets the composite wellness score is calibrated against.
const (
	DefaultIdealSleepHours     = 8.0
	DefaultSleepPenaltyPerHour = 10.0
	DefaultTargetSteps         = 10000
	DefaultTargetActiveMinutes = 60
	DefaultTargetCalories      = 2500.0
)

// Weight map keys recognized by the composite scorer.
const (
	WeightBHI = "BHI"
	WeightAHS = "AHS"
	WeightSQS = "SQS"
)

// SleepPolicy holds the sleep-health scoring parameters
type SleepPolicy struct {
	IdealHours     float64
	PenaltyPerHour float64
}

// ActivityTargets holds the daily activity normalization targets
type ActivityTargets struct {
	Steps         int
	ActiveMinutes int64
	Calories      float64
}

// Config holds the scoring policy for one evaluation.
type Config struct {
	Sleep   SleepPolicy
	Targets ActivityTargets
	// Weights for the composite score, keyed by BHI/AHS/SQS. A nil map or a
	// map that filters down to nothing falls back to DefaultWeights.
	Weights map[string]float64
	// DropAnomalousSessions excludes activity sessions whose end precedes
	// their start. Off by default: the negative duration flows into the
	// activity sums unguarded so that bad source data stays visible.
	DropAnomalousSessions bool
}

// DefaultConfig returns the standard scoring policy.
func DefaultConfig() Config {
	return Config{
		Sleep: SleepPolicy{
			IdealHours:     DefaultIdealSleepHours,
			PenaltyPerHour: DefaultSleepPenaltyPerHour,
		},
		Targets: ActivityTargets{
			Steps:         DefaultTargetSteps,
			ActiveMinutes: DefaultTargetActiveMinutes,
			Calories:      DefaultTargetCalories,
		},
		Weights: DefaultWeights(),
	}
}

// DefaultWeights returns the standard composite weights.
func DefaultWeights() map[string]float64 {
	return map[string]float64{
		WeightBHI: 0.4,
		WeightAHS: 0.3,
		WeightSQS: 0.3,
	}
}

// BiometricHealthIndex derives the BHI from lab results. The index starts at
// 100 and loses half the deviation from the bound midpoint for every result
// outside its reference bounds. Results without a linked definition or with an
// incomplete bound pair are skipped. An empty collection scores a full 100:
// no lab signal means no penalty. The index is deliberately not clamped, so a
// run of severe deviations can push it below zero.
func BiometricHealthIndex(results []TestResult) float64 {
	score := 100.0

	for _, r := range results {
		if r.Test == nil || r.Test.LowerBound == nil || r.Test.UpperBound == nil {
			continue
		}

		lower := *r.Test.LowerBound
		upper := *r.Test.UpperBound
		deviation := math.Abs(r.Value - (lower+upper)/2)

		if r.Value < lower || r.Value > upper {
			score -= deviation * 0.5
		}
	}

	return score
}

// activitySums returns the raw step, active-minute, and calorie totals used by
// both the activity score and the report's daily activity section.
func (c Config) activitySums(steps []StepRecord, sessions []ActivitySession) (totalSteps int, activeMinutes int64, calories float64) {
	for _, s := range steps {
		totalSteps += s.TotalSteps
	}

	for _, a := range sessions {
		minutes := a.DurationMinutes()
		if minutes < 0 && c.DropAnomalousSessions {
			continue
		}

		activeMinutes += minutes
		if a.CaloriesBurned != nil {
			calories += *a.CaloriesBurned
		}
	}

	return totalSteps, activeMinutes, calories
}

// ActivityHealthScore derives the AHS from step records and activity sessions.
// Each raw total is normalized against its target and capped at 100% of
// target, then the ratios are combined 40/30/30. Empty inputs sum to zero, so
// AHS(nothing) is 0 rather than a neutral value; missing data reads as
// inactivity here, unlike the biometric and sleep policies.
func (c Config) ActivityHealthScore(steps []StepRecord, sessions []ActivitySession) float64 {
	totalSteps, activeMinutes, calories := c.activitySums(steps, sessions)

	var stepRatio, activityRatio, calorieRatio float64
	if c.Targets.Steps > 0 {
		stepRatio = float64(totalSteps) / float64(c.Targets.Steps)
	}
	if c.Targets.ActiveMinutes > 0 {
		activityRatio = float64(activeMinutes) / float64(c.Targets.ActiveMinutes)
	}
	if c.Targets.Calories > 0 {
		calorieRatio = calories / c.Targets.Calories
	}

	stepRatio = math.Min(1, stepRatio)
	activityRatio = math.Min(1, activityRatio)
	calorieRatio = math.Min(1, calorieRatio)

	return round2(stepRatio*40 + activityRatio*30 + calorieRatio*30)
}

// SleepQualityScore derives the SQS from sleep sessions: 100 minus the policy
// penalty for every hour the mean sleep duration deviates from the ideal,
// clamped to [0, 100]. An empty collection scores a neutral 50, since absent
// sleep data is neither good nor bad.
func SleepQualityScore(sessions []SleepSession, policy SleepPolicy) float64 {
	if len(sessions) == 0 {
		return 50
	}

	var totalHours float64
	for _, s := range sessions {
		totalHours += s.Hours()
	}
	meanHours := totalHours / float64(len(sessions))

	score := 100 - math.Abs(policy.IdealHours-meanHours)*policy.PenaltyPerHour

	return math.Max(0, math.Min(100, score))
}

// FinalHealthScore combines the three sub-scores using the supplied weight
// map. Weights that do not sum to one are renormalized proportionally rather
// than rejected; unrecognized keys are ignored. The result is rounded to two
// decimals and never clamped, so a deeply negative BHI pulls the final score
// negative as a triage signal.
func FinalHealthScore(bhi, ahs, sqs float64, weights map[string]float64) float64 {
	w := normalizeWeights(weights)

	return round2(w[WeightBHI]*bhi + w[WeightAHS]*ahs + w[WeightSQS]*sqs)
}

// normalizeWeights filters the weight map to the recognized keys and scales
// the survivors to sum to one. Nil, empty, and zero-sum maps fall back to the
// defaults.
func normalizeWeights(weights map[string]float64) map[string]float64 {
	recognized := map[string]float64{}
	var total float64

	for _, key := range []string{WeightBHI, WeightAHS, WeightSQS} {
		if value, ok := weights[key]; ok {
			recognized[key] = value
			total += value
		}
	}

	if len(recognized) == 0 || total <= 0 {
		return DefaultWeights()
	}

	if total != 1 {
		for key, value := range recognized {
			recognized[key] = value / total
		}
	}

	return recognized
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
