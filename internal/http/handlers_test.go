package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"macrotrack/internal/domain"
	"macrotrack/internal/service"
)

type mockUserRepo struct {
	usersByID    map[string]domain.User
	usersByEmail map[string]string
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		usersByID:    make(map[string]domain.User),
		usersByEmail: make(map[string]string),
	}
}

func (m *mockUserRepo) Create(_ context.Context, user domain.User) error {
	m.usersByID[user.ID] = user
	if user.Email != "" {
		m.usersByEmail[user.Email] = user.ID
	}
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (domain.User, error) {
	user, ok := m.usersByID[id]
	if !ok {
		return domain.User{}, pgx.ErrNoRows
	}
	return user, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (domain.User, error) {
	id, ok := m.usersByEmail[email]
	if !ok {
		return domain.User{}, pgx.ErrNoRows
	}
	return m.GetByID(context.Background(), id)
}

type mockProfileRepo struct {
	profiles map[string]domain.Profile
}

func newMockProfileRepo() *mockProfileRepo {
	return &mockProfileRepo{profiles: make(map[string]domain.Profile)}
}

func (m *mockProfileRepo) Upsert(_ context.Context, profile domain.Profile) error {
	m.profiles[profile.UserID] = profile
	return nil
}

func (m *mockProfileRepo) GetByUserID(_ context.Context, userID string) (domain.Profile, error) {
	profile, ok := m.profiles[userID]
	if !ok {
		return domain.Profile{}, pgx.ErrNoRows
	}
	return profile, nil
}

type mockDiaryRepo struct {
	entries map[string]domain.DiaryEntry
}

func newMockDiaryRepo() *mockDiaryRepo {
	return &mockDiaryRepo{entries: make(map[string]domain.DiaryEntry)}
}

func (m *mockDiaryRepo) Create(_ context.Context, entry domain.DiaryEntry) error {
	m.entries[entry.ID] = entry
	return nil
}

func (m *mockDiaryRepo) ListByDate(_ context.Context, userID, date string) ([]domain.DiaryEntry, error) {
	var out []domain.DiaryEntry
	for _, e := range m.entries {
		if e.UserID == userID && e.Date == date {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *mockDiaryRepo) Delete(_ context.Context, userID, id string) error {
	entry, ok := m.entries[id]
	if !ok || entry.UserID != userID {
		return pgx.ErrNoRows
	}
	delete(m.entries, id)
	return nil
}

type mockWeightRepo struct {
	entries map[string]domain.WeightEntry
}

func newMockWeightRepo() *mockWeightRepo {
	return &mockWeightRepo{entries: make(map[string]domain.WeightEntry)}
}

func (m *mockWeightRepo) Upsert(_ context.Context, entry domain.WeightEntry) (domain.WeightEntry, error) {
	for id, e := range m.entries {
		if e.UserID == entry.UserID && e.Date == entry.Date {
			e.WeightKG = entry.WeightKG
			m.entries[id] = e
			return e, nil
		}
	}
	m.entries[entry.ID] = entry
	return entry, nil
}

func (m *mockWeightRepo) ListRange(_ context.Context, userID, start, end string) ([]domain.WeightEntry, error) {
	var out []domain.WeightEntry
	for _, e := range m.entries {
		if e.UserID == userID && e.Date >= start && e.Date <= end {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *mockWeightRepo) Delete(_ context.Context, userID, id string) error {
	entry, ok := m.entries[id]
	if !ok || entry.UserID != userID {
		return pgx.ErrNoRows
	}
	delete(m.entries, id)
	return nil
}

// testAPI junta router, token valido y mocks para los tests de handlers.
type testAPI struct {
	router   *gin.Engine
	token    string
	users    *mockUserRepo
	profiles *mockProfileRepo
	diary    *mockDiaryRepo
	weights  *mockWeightRepo
}

func setupTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()

	users := newMockUserRepo()
	profiles := newMockProfileRepo()
	diary := newMockDiaryRepo()
	weights := newMockWeightRepo()

	jwtSvc := service.NewJWTServiceWithStore("secret", 15*time.Minute, 30*time.Minute, service.NewMemoryRefreshTokenStore())
	userSvc := service.NewUserService(logger, users, nil)
	profileSvc := service.NewProfileService(logger, profiles)
	diarySvc := service.NewDiaryService(logger, diary, profiles)
	weightSvc := service.NewWeightService(logger, weights, profileSvc)

	router := NewRouter(
		logger,
		jwtSvc,
		NewUserHandler(logger, userSvc, jwtSvc),
		NewProfileHandler(logger, profileSvc),
		NewDiaryHandler(logger, diarySvc),
		NewWeightHandler(logger, weightSvc),
	)

	user := domain.User{ID: "u1", Email: "user@example.com", DisplayName: "Test", CreatedAt: time.Now().UTC()}
	if err := users.Create(context.Background(), user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	pair, err := jwtSvc.GeneratePair(user)
	if err != nil {
		t.Fatalf("generate pair: %v", err)
	}

	return &testAPI{
		router:   router,
		token:    pair.AccessToken,
		users:    users,
		profiles: profiles,
		diary:    diary,
		weights:  weights,
	}
}

func performRequest(r http.Handler, method, path string, body any, token string) *httptest.ResponseRecorder {
	var payload []byte
	if body != nil {
		payload, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func onboardingPayload() map[string]any {
	return map[string]any{
		"sex":                      "male",
		"age_years":                30,
		"height_cm":                175,
		"weight_kg":                75,
		"activity_level":           "sedentary",
		"goal_direction":           "maintain",
		"weekly_rate_kcal_per_day": 0,
	}
}
