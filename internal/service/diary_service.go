package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"macrotrack/internal/domain"
	"macrotrack/internal/repository"
)

// DiaryService maneja el diario de comida y ejercicio, y arma el resumen
// diario contra los targets vigentes del perfil.
type DiaryService struct {
	logger   *zap.Logger
	entries  repository.DiaryRepository
	profiles repository.ProfileRepository
}

func NewDiaryService(logger *zap.Logger, entries repository.DiaryRepository, profiles repository.ProfileRepository) *DiaryService {
	return &DiaryService{
		logger:   logger,
		entries:  entries,
		profiles: profiles,
	}
}

var ErrEntryNotFound = errors.New("diary entry not found")

const dateLayout = "2006-01-02"

type DiaryEntryInput struct {
	Date     string
	Name     string
	Type     string
	Calories int
	ProteinG *float64
	CarbsG   *float64
	FatG     *float64
}

func (s *DiaryService) AddEntry(ctx context.Context, userID string, input DiaryEntryInput) (domain.DiaryEntry, error) {
	if s.entries == nil {
		return domain.DiaryEntry{}, errors.New("diary service not configured")
	}
	if _, err := time.Parse(dateLayout, input.Date); err != nil {
		return domain.DiaryEntry{}, &domain.ValidationError{Field: "date", Reason: "expected YYYY-MM-DD"}
	}
	if input.Name == "" {
		return domain.DiaryEntry{}, &domain.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if input.Type != domain.EntryTypeFood && input.Type != domain.EntryTypeExercise {
		return domain.DiaryEntry{}, &domain.ValidationError{Field: "type", Reason: "must be food or exercise"}
	}
	if input.Calories < 0 {
		return domain.DiaryEntry{}, &domain.ValidationError{Field: "calories", Reason: "must not be negative"}
	}

	entry := domain.DiaryEntry{
		ID:        uuid.NewString(),
		UserID:    userID,
		Date:      input.Date,
		Name:      input.Name,
		Type:      input.Type,
		Calories:  input.Calories,
		ProteinG:  input.ProteinG,
		CarbsG:    input.CarbsG,
		FatG:      input.FatG,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.entries.Create(ctx, entry); err != nil {
		return domain.DiaryEntry{}, err
	}
	return entry, nil
}

func (s *DiaryService) ListDay(ctx context.Context, userID, date string) ([]domain.DiaryEntry, error) {
	if s.entries == nil {
		return nil, errors.New("diary service not configured")
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, &domain.ValidationError{Field: "date", Reason: "expected YYYY-MM-DD"}
	}
	return s.entries.ListByDate(ctx, userID, date)
}

func (s *DiaryService) DeleteEntry(ctx context.Context, userID, id string) error {
	if s.entries == nil {
		return errors.New("diary service not configured")
	}
	if err := s.entries.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrEntryNotFound
		}
		return err
	}
	return nil
}

// DaySummary totaliza lo registrado en el dia y lo compara con los targets
// del perfil. Requiere perfil completo: sin onboarding no hay objetivos
// contra los cuales comparar.
func (s *DiaryService) DaySummary(ctx context.Context, userID, date string) (domain.DaySummary, error) {
	if s.entries == nil || s.profiles == nil {
		return domain.DaySummary{}, errors.New("diary service not configured")
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return domain.DaySummary{}, &domain.ValidationError{Field: "date", Reason: "expected YYYY-MM-DD"}
	}

	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.DaySummary{}, ErrProfileNotFound
		}
		return domain.DaySummary{}, err
	}

	entries, err := s.entries.ListByDate(ctx, userID, date)
	if err != nil {
		return domain.DaySummary{}, err
	}

	summary := domain.DaySummary{
		Date:    date,
		Targets: profile.Targets,
		Entries: entries,
	}
	for _, e := range entries {
		switch e.Type {
		case domain.EntryTypeExercise:
			summary.CaloriesExercise += e.Calories
		default:
			summary.CaloriesFood += e.Calories
			if e.ProteinG != nil {
				summary.ProteinG += *e.ProteinG
			}
			if e.CarbsG != nil {
				summary.CarbsG += *e.CarbsG
			}
			if e.FatG != nil {
				summary.FatG += *e.FatG
			}
		}
	}
	summary.NetCalories = summary.CaloriesFood - summary.CaloriesExercise
	summary.CaloriesLeft = profile.Targets.CalorieGoalKcal - summary.NetCalories
	return summary, nil
}
