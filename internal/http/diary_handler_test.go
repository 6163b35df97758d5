package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"macrotrack/internal/domain"
)

func addFoodEntry(t *testing.T, api *testAPI, date, name string, calories int) domain.DiaryEntry {
	t.Helper()
	rec := performRequest(api.router, http.MethodPost, "/diary/entries", map[string]any{
		"date":     date,
		"name":     name,
		"type":     "food",
		"calories": calories,
	}, api.token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Entry domain.DiaryEntry `json:"entry"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode entry response: %v", err)
	}
	return resp.Entry
}

func TestDiaryHandlerAddAndList(t *testing.T) {
	api := setupTestAPI(t)

	addFoodEntry(t, api, "2025-03-10", "oatmeal", 350)
	addFoodEntry(t, api, "2025-03-10", "chicken salad", 520)
	addFoodEntry(t, api, "2025-03-11", "toast", 200)

	rec := performRequest(api.router, http.MethodGet, "/diary/entries?date=2025-03-10", nil, api.token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var resp struct {
		Entries []domain.DiaryEntry `json:"entries"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	if len(resp.Entries) != 2 {
		t.Fatalf("expected 2 entries for the day, got %d", len(resp.Entries))
	}
}

func TestDiaryHandlerAddEntry_BadDate(t *testing.T) {
	api := setupTestAPI(t)

	rec := performRequest(api.router, http.MethodPost, "/diary/entries", map[string]any{
		"date":     "10/03/2025",
		"name":     "oatmeal",
		"type":     "food",
		"calories": 350,
	}, api.token)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestDiaryHandlerDeleteEntry(t *testing.T) {
	api := setupTestAPI(t)

	entry := addFoodEntry(t, api, "2025-03-10", "oatmeal", 350)

	rec := performRequest(api.router, http.MethodDelete, "/diary/entries/"+entry.ID, nil, api.token)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", rec.Code)
	}

	rec = performRequest(api.router, http.MethodDelete, "/diary/entries/"+entry.ID, nil, api.token)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 on second delete, got %d", rec.Code)
	}
}

func TestDiaryHandlerDaySummary(t *testing.T) {
	api := setupTestAPI(t)

	rec := performRequest(api.router, http.MethodPost, "/profile/onboarding", onboardingPayload(), api.token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", rec.Code)
	}

	addFoodEntry(t, api, "2025-03-10", "oatmeal", 350)
	addFoodEntry(t, api, "2025-03-10", "chicken salad", 520)

	rec = performRequest(api.router, http.MethodPost, "/diary/entries", map[string]any{
		"date":     "2025-03-10",
		"name":     "run",
		"type":     "exercise",
		"calories": 270,
	}, api.token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", rec.Code)
	}

	rec = performRequest(api.router, http.MethodGet, "/diary/summary?date=2025-03-10", nil, api.token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Summary domain.DaySummary `json:"summary"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode summary response: %v", err)
	}
	s := resp.Summary
	if s.CaloriesFood != 870 || s.CaloriesExercise != 270 {
		t.Fatalf("unexpected totals: food=%d exercise=%d", s.CaloriesFood, s.CaloriesExercise)
	}
	if s.NetCalories != 600 {
		t.Fatalf("expected net 600, got %d", s.NetCalories)
	}
	if s.CaloriesLeft != s.Targets.CalorieGoalKcal-600 {
		t.Fatalf("expected calories left %d, got %d", s.Targets.CalorieGoalKcal-600, s.CaloriesLeft)
	}
	if len(s.Entries) != 3 {
		t.Fatalf("expected 3 entries in summary, got %d", len(s.Entries))
	}
}

func TestDiaryHandlerDaySummary_NoProfile(t *testing.T) {
	api := setupTestAPI(t)

	rec := performRequest(api.router, http.MethodGet, "/diary/summary?date=2025-03-10", nil, api.token)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}
