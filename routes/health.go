/*
 * Copyright 2025 WellPulse Authors
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/flamego/flamego"
	"github.com/flamego/template"
	"github.com/google/uuid"

	"github.com/wellpulse/wellpulse/db"
	"github.com/wellpulse/wellpulse/health"
	"github.com/wellpulse/wellpulse/report"
)

// Function seams for tests; production wiring uses the db-backed store.
var (
	listUsersFn = db.ListUserProfiles
	evaluateFn  = evaluateUser
)

func evaluateUser(ctx context.Context, userID uuid.UUID) (*health.Evaluation, error) {
	return health.NewEvaluator(db.Store{}, health.DefaultConfig()).Evaluate(ctx, userID)
}

// Index renders the user list page.
func Index(c flamego.Context, t template.Template, data template.Data) {
	users, err := listUsersFn(c.Request().Context())
	if err != nil {
		webLogger.Error("Failed to list users", "err", err)
		c.ResponseWriter().WriteHeader(http.StatusInternalServerError)

		return
	}

	data["Users"] = users
	t.HTML(http.StatusOK, "index")
}

// UserScores responds with a user's computed scores as JSON.
func UserScores(c flamego.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	eval, err := evaluateFn(c.Request().Context(), userID)
	if err != nil {
		respondEvaluationError(c, err)

		return
	}

	c.ResponseWriter().Header().Set("Content-Type", "application/json")

	resp := map[string]interface{}{
		"user_id": eval.Profile.ID,
		"name":    eval.Profile.FullName(),
		"age":     eval.Age,
		"scores": map[string]float64{
			"biometric_health_index": eval.Scores.BHI,
			"activity_health_score":  eval.Scores.AHS,
			"sleep_quality_score":    eval.Scores.SQS,
			"final_health_score":     eval.Scores.FHS,
		},
	}
	if err := json.NewEncoder(c.ResponseWriter()).Encode(resp); err != nil {
		webLogger.Error("Failed to encode scores response", "err", err)
	}
}

// UserReport responds with a user's full health report as a PDF download.
func UserReport(c flamego.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	eval, err := evaluateFn(c.Request().Context(), userID)
	if err != nil {
		respondEvaluationError(c, err)

		return
	}

	pdfData, err := report.Render(eval.Sections)
	if err != nil {
		webLogger.Error("Failed to render report PDF", "user_id", userID, "err", err)
		c.ResponseWriter().WriteHeader(http.StatusInternalServerError)

		return
	}

	header := c.ResponseWriter().Header()
	header.Set("Content-Type", "application/pdf")
	header.Set("Content-Disposition", `attachment; filename="`+report.Filename(userID)+`"`)

	c.ResponseWriter().WriteHeader(http.StatusOK)

	if _, err := c.ResponseWriter().Write(pdfData); err != nil {
		webLogger.Error("Failed to write report PDF", "user_id", userID, "err", err)
	}
}

func parseUserID(c flamego.Context) (uuid.UUID, bool) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.ResponseWriter().Header().Set("Content-Type", "application/json")
		c.ResponseWriter().WriteHeader(http.StatusBadRequest)
		json.NewEncoder(c.ResponseWriter()).Encode(map[string]string{"error": "invalid user ID"})

		return uuid.Nil, false
	}

	return userID, true
}

func respondEvaluationError(c flamego.Context, err error) {
	if errors.Is(err, health.ErrUserNotFound) {
		c.ResponseWriter().Header().Set("Content-Type", "application/json")
		c.ResponseWriter().WriteHeader(http.StatusNotFound)
		json.NewEncoder(c.ResponseWriter()).Encode(map[string]string{"error": "user not found"})

		return
	}

	webLogger.Error("Evaluation failed", "err", err)
	c.ResponseWriter().WriteHeader(http.StatusInternalServerError)
}
