package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"macrotrack/internal/domain"
)

type mockWeightRepo struct {
	entries map[string]domain.WeightEntry // keyed by userID|date
	byID    map[string]string
}

func newMockWeightRepo() *mockWeightRepo {
	return &mockWeightRepo{
		entries: make(map[string]domain.WeightEntry),
		byID:    make(map[string]string),
	}
}

func (m *mockWeightRepo) Upsert(_ context.Context, e domain.WeightEntry) (domain.WeightEntry, error) {
	key := e.UserID + "|" + e.Date
	if existing, ok := m.entries[key]; ok {
		existing.WeightKG = e.WeightKG
		m.entries[key] = existing
		return existing, nil
	}
	m.entries[key] = e
	m.byID[e.ID] = key
	return e, nil
}

func (m *mockWeightRepo) ListRange(_ context.Context, userID, start, end string) ([]domain.WeightEntry, error) {
	out := []domain.WeightEntry{}
	for _, e := range m.entries {
		if e.UserID == userID && e.Date >= start && e.Date <= end {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *mockWeightRepo) Delete(_ context.Context, userID, id string) error {
	key, ok := m.byID[id]
	if !ok {
		return pgx.ErrNoRows
	}
	e := m.entries[key]
	if e.UserID != userID {
		return pgx.ErrNoRows
	}
	delete(m.entries, key)
	delete(m.byID, id)
	return nil
}

func TestWeightLog_SyncsProfileAndRecomputesTargets(t *testing.T) {
	profiles := newMockProfileRepo()
	profileSvc := NewProfileService(zap.NewNop(), profiles)
	if _, err := profileSvc.CompleteOnboarding(context.Background(), "u1", validOnboarding()); err != nil {
		t.Fatalf("complete onboarding: %v", err)
	}

	svc := NewWeightService(zap.NewNop(), newMockWeightRepo(), profileSvc)

	entry, err := svc.Log(context.Background(), "u1", "2026-01-02", 80)
	if err != nil {
		t.Fatalf("log weight: %v", err)
	}
	if entry.WeightKG != 80 {
		t.Fatalf("unexpected entry: %+v", entry)
	}

	profile, err := profiles.GetByUserID(context.Background(), "u1")
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if profile.Biometrics.WeightKG != 80 {
		t.Fatalf("expected profile weight synced to 80, got %v", profile.Biometrics.WeightKG)
	}
	// bmr = 10*80 + 6.25*175 - 5*30 + 5 = 1748.75 → tdee 2448 → goal 2450
	if profile.Targets.CalorieGoalKcal != 2450 {
		t.Fatalf("expected recomputed goal 2450, got %d", profile.Targets.CalorieGoalKcal)
	}
}

func TestWeightLog_NoProfileIsNotAnError(t *testing.T) {
	profileSvc := NewProfileService(zap.NewNop(), newMockProfileRepo())
	svc := NewWeightService(zap.NewNop(), newMockWeightRepo(), profileSvc)

	if _, err := svc.Log(context.Background(), "u1", "2026-01-02", 80); err != nil {
		t.Fatalf("expected weight log to succeed without a profile, got %v", err)
	}
}

func TestWeightLog_SameDateOverwrites(t *testing.T) {
	repo := newMockWeightRepo()
	svc := NewWeightService(zap.NewNop(), repo, nil)

	if _, err := svc.Log(context.Background(), "u1", "2026-01-02", 80); err != nil {
		t.Fatalf("log weight: %v", err)
	}
	if _, err := svc.Log(context.Background(), "u1", "2026-01-02", 79.5); err != nil {
		t.Fatalf("log weight again: %v", err)
	}

	entries, err := svc.ListRange(context.Background(), "u1", "2026-01-01", "2026-01-31")
	if err != nil {
		t.Fatalf("list range: %v", err)
	}
	if len(entries) != 1 || entries[0].WeightKG != 79.5 {
		t.Fatalf("expected single overwritten entry, got %+v", entries)
	}
}

func TestWeightLog_Validation(t *testing.T) {
	svc := NewWeightService(zap.NewNop(), newMockWeightRepo(), nil)

	if _, err := svc.Log(context.Background(), "u1", "bad-date", 80); err == nil {
		t.Fatalf("expected error for bad date")
	}
	_, err := svc.Log(context.Background(), "u1", "2026-01-02", 500)
	var verr *domain.ValidationError
	if !errors.As(err, &verr) || verr.Field != "weight_kg" {
		t.Fatalf("expected weight_kg validation error, got %v", err)
	}
}

func TestWeightListRange_RejectsInvertedRange(t *testing.T) {
	svc := NewWeightService(zap.NewNop(), newMockWeightRepo(), nil)

	_, err := svc.ListRange(context.Background(), "u1", "2026-02-01", "2026-01-01")
	var verr *domain.ValidationError
	if !errors.As(err, &verr) || verr.Field != "start" {
		t.Fatalf("expected start validation error, got %v", err)
	}
}

func TestWeightDelete_NotFound(t *testing.T) {
	svc := NewWeightService(zap.NewNop(), newMockWeightRepo(), nil)

	if err := svc.Delete(context.Background(), "u1", "missing"); !errors.Is(err, ErrWeightEntryNotFound) {
		t.Fatalf("expected ErrWeightEntryNotFound, got %v", err)
	}
}
