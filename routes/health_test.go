// SPDX-FileCopyrightText: 2025 WellPulse Authors
//
// SPDX-License-Identifier: Apache-2.0
package routes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/flamego/flamego"
	flamegoTemplate "github.com/flamego/template"
	"github.com/google/uuid"

	"github.com/wellpulse/wellpulse/db"
	"github.com/wellpulse/wellpulse/health"
)

var errTestStoreUnavailable = errors.New("store unavailable")

type indexTemplateStub struct {
	called bool
	status int
	name   string
}

func (s *indexTemplateStub) HTML(status int, name string) {
	s.called = true
	s.status = status
	s.name = name
}

func testEvaluation(userID uuid.UUID) *health.Evaluation {
	profile := health.UserProfile{
		ID:          userID,
		FirstName:   "Lena",
		LastName:    "Ortiz",
		Email:       "lena@example.com",
		DateOfBirth: time.Date(1990, 5, 14, 0, 0, 0, 0, time.UTC),
		Gender:      health.GenderFemale,
	}

	scores := health.Scores{BHI: 100, AHS: 85.5, SQS: 90, FHS: 92.65}
	cfg := health.DefaultConfig()

	return &health.Evaluation{
		Profile:  profile,
		Age:      34,
		Scores:   scores,
		Sections: cfg.AssembleReport(profile, 34, nil, nil, nil, scores),
	}
}

func newHealthTestApp() *flamego.Flame {
	f := flamego.New()
	f.Get("/users/{id}/scores", UserScores)
	f.Get("/users/{id}/report", UserReport)

	return f
}

func TestUserScoresReturnsJSON(t *testing.T) {
	userID := uuid.New()

	evaluateFn = func(_ context.Context, id uuid.UUID) (*health.Evaluation, error) {
		if id != userID {
			t.Errorf("evaluated unexpected user %s", id)
		}

		return testEvaluation(id), nil
	}
	t.Cleanup(func() { evaluateFn = evaluateUser })

	f := newHealthTestApp()
	req := httptest.NewRequest(http.MethodGet, "/users/"+userID.String()+"/scores", nil)
	rec := httptest.NewRecorder()
	f.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected JSON content type, got %q", ct)
	}

	var resp struct {
		Name   string             `json:"name"`
		Age    int                `json:"age"`
		Scores map[string]float64 `json:"scores"`
	}

	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Name != "Lena Ortiz" || resp.Age != 34 {
		t.Errorf("unexpected identity fields: %+v", resp)
	}

	if resp.Scores["final_health_score"] != 92.65 {
		t.Errorf("expected final score 92.65, got %v", resp.Scores["final_health_score"])
	}
}

func TestUserScoresUnknownUser(t *testing.T) {
	evaluateFn = func(_ context.Context, id uuid.UUID) (*health.Evaluation, error) {
		return nil, fmt.Errorf("evaluate user %s: %w", id, health.ErrUserNotFound)
	}
	t.Cleanup(func() { evaluateFn = evaluateUser })

	f := newHealthTestApp()
	req := httptest.NewRequest(http.MethodGet, "/users/"+uuid.NewString()+"/scores", nil)
	rec := httptest.NewRecorder()
	f.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, rec.Code)
	}
}

func TestUserScoresInvalidUserID(t *testing.T) {
	f := newHealthTestApp()
	req := httptest.NewRequest(http.MethodGet, "/users/not-a-uuid/scores", nil)
	rec := httptest.NewRecorder()
	f.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestUserScoresStoreFailure(t *testing.T) {
	evaluateFn = func(_ context.Context, _ uuid.UUID) (*health.Evaluation, error) {
		return nil, errTestStoreUnavailable
	}
	t.Cleanup(func() { evaluateFn = evaluateUser })

	f := newHealthTestApp()
	req := httptest.NewRequest(http.MethodGet, "/users/"+uuid.NewString()+"/scores", nil)
	rec := httptest.NewRecorder()
	f.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, rec.Code)
	}
}

func TestUserReportServesPDF(t *testing.T) {
	userID := uuid.New()

	evaluateFn = func(_ context.Context, id uuid.UUID) (*health.Evaluation, error) {
		return testEvaluation(id), nil
	}
	t.Cleanup(func() { evaluateFn = evaluateUser })

	f := newHealthTestApp()
	req := httptest.NewRequest(http.MethodGet, "/users/"+userID.String()+"/report", nil)
	rec := httptest.NewRecorder()
	f.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("expected PDF content type, got %q", ct)
	}

	disposition := rec.Header().Get("Content-Disposition")
	if !strings.Contains(disposition, "health_report_user_"+userID.String()+".pdf") {
		t.Errorf("unexpected content disposition %q", disposition)
	}

	if !strings.HasPrefix(rec.Body.String(), "%PDF") {
		t.Error("response body is not a PDF document")
	}
}

func TestUserReportUnknownUser(t *testing.T) {
	evaluateFn = func(_ context.Context, id uuid.UUID) (*health.Evaluation, error) {
		return nil, fmt.Errorf("evaluate user %s: %w", id, health.ErrUserNotFound)
	}
	t.Cleanup(func() { evaluateFn = evaluateUser })

	f := newHealthTestApp()
	req := httptest.NewRequest(http.MethodGet, "/users/"+uuid.NewString()+"/report", nil)
	rec := httptest.NewRecorder()
	f.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, rec.Code)
	}
}

func TestIndexRendersUserList(t *testing.T) {
	listUsersFn = func(_ context.Context) ([]health.UserProfile, error) {
		return []health.UserProfile{
			{ID: uuid.New(), FirstName: "Lena", LastName: "Ortiz"},
		}, nil
	}
	t.Cleanup(func() { listUsersFn = db.ListUserProfiles })

	tpl := &indexTemplateStub{}
	data := flamegoTemplate.Data{}

	f := flamego.New()
	f.Use(func(c flamego.Context) {
		c.MapTo(tpl, (*flamegoTemplate.Template)(nil))
		c.Map(data)
		c.Next()
	})
	f.Get("/", func(c flamego.Context, t flamegoTemplate.Template, d flamegoTemplate.Data) {
		Index(c, t, d)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	f.ServeHTTP(rec, req)

	if !tpl.called || tpl.name != "index" {
		t.Fatalf("unexpected template render: %#v", tpl)
	}

	users, ok := data["Users"].([]health.UserProfile)
	if !ok || len(users) != 1 {
		t.Fatalf("expected one user in template data, got %#v", data["Users"])
	}
}

func TestIndexListFailure(t *testing.T) {
	listUsersFn = func(_ context.Context) ([]health.UserProfile, error) {
		return nil, errTestStoreUnavailable
	}
	t.Cleanup(func() { listUsersFn = db.ListUserProfiles })

	tpl := &indexTemplateStub{}

	f := flamego.New()
	f.Use(func(c flamego.Context) {
		c.MapTo(tpl, (*flamegoTemplate.Template)(nil))
		c.Map(flamegoTemplate.Data{})
		c.Next()
	})
	f.Get("/", func(c flamego.Context, t flamegoTemplate.Template, d flamegoTemplate.Data) {
		Index(c, t, d)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	f.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, rec.Code)
	}

	if tpl.called {
		t.Error("template should not render on a list failure")
	}
}
