/*
 * Copyright 2025 WellPulse Authors
 * SPDX-License-Identifier: Apache-2.0
 */
package health

import "fmt"

// ReportSection is one titled block of the assembled health report.
type ReportSection struct {
	Title string
	Body  string
}

// Report section titles, in the order they appear.
const (
	SectionUserDetails   = "User Details"
	SectionTestResults   = "Test Results"
	SectionDailyActivity = "Daily Activity"
	SectionSleepData     = "Sleep Data"
	SectionHealthScores  = "Health Scores"
)

// Advisory messages selected by BHI thresholds. The boundaries matter: a BHI
// below zero is severe, below fifty is moderate, and fifty itself is good.
const (
	adviceSevere   = "Warning: Severe health issues detected! Seek medical attention."
	adviceModerate = "Multiple health deviations detected. Consider visiting a doctor."
	adviceGood     = "Health biometrics within a good range."
)

// Scores bundles the three sub-scores and the final composite.
type Scores struct {
	BHI float64
	AHS float64
	SQS float64
	FHS float64
}

// AssembleReport maps an evaluation's inputs and scores into the fixed five
// report sections. It is a pure function: rendering the sections into a
// deliverable document is the report package's job.
func (c Config) AssembleReport(profile UserProfile, age int, steps []StepRecord, sleeps []SleepSession, activities []ActivitySession, scores Scores) []ReportSection {
	totalSteps, activeMinutes, calories := c.activitySums(steps, activities)

	sections := []ReportSection{
		{
			Title: SectionUserDetails,
			Body: fmt.Sprintf("Name: %s\nAge: %d\nGender: %s\nHeight: %s\nWeight: %s",
				profile.FullName(), age, profile.Gender,
				formatMeasure(profile.HeightCM, "cm"),
				formatMeasure(profile.WeightKG, "kg")),
		},
		{
			Title: SectionTestResults,
			Body:  biometricAdvice(scores.BHI),
		},
		{
			Title: SectionDailyActivity,
			Body: fmt.Sprintf("Total Steps: %d\nActive Minutes: %d\nCalories Burned: %.1f",
				totalSteps, activeMinutes, calories),
		},
		{
			Title: SectionSleepData,
			Body:  sleepSummary(sleeps),
		},
		{
			Title: SectionHealthScores,
			Body: fmt.Sprintf("BHI: %.2f\nAHS: %.2f\nSQS: %.2f\nFinal Health Score (FHS): %.2f",
				scores.BHI, scores.AHS, scores.SQS, scores.FHS),
		},
	}

	return sections
}

// biometricAdvice selects the advisory message for the test results section.
func biometricAdvice(bhi float64) string {
	switch {
	case bhi < 0:
		return adviceSevere
	case bhi < 50:
		return adviceModerate
	default:
		return adviceGood
	}
}

// sleepSummary reports the mean sleep duration in hours, or an explicit
// not-available marker when no sleep data exists. The marker is deliberate:
// the scoring policy substitutes a neutral 50 for missing sleep, but the
// report must not print a fabricated duration.
func sleepSummary(sleeps []SleepSession) string {
	if len(sleeps) == 0 {
		return "Average Sleep Duration: N/A"
	}

	var totalHours float64
	for _, s := range sleeps {
		totalHours += s.Hours()
	}

	return fmt.Sprintf("Average Sleep Duration: %.2f hours", totalHours/float64(len(sleeps)))
}

func formatMeasure(value *float64, unit string) string {
	if value == nil {
		return "N/A"
	}

	return fmt.Sprintf("%.1f %s", *value, unit)
}
