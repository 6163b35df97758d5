package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"macrotrack/internal/domain"
	"macrotrack/internal/repository"
)

// WeightService maneja el registro de peso. Cada peso nuevo se propaga al
// perfil via ProfileService, que recalcula los targets: pesarse equivale a
// editar weight_kg.
type WeightService struct {
	logger   *zap.Logger
	weights  repository.WeightRepository
	profiles *ProfileService
}

func NewWeightService(logger *zap.Logger, weights repository.WeightRepository, profiles *ProfileService) *WeightService {
	return &WeightService{
		logger:   logger,
		weights:  weights,
		profiles: profiles,
	}
}

var ErrWeightEntryNotFound = errors.New("weight entry not found")

func (s *WeightService) Log(ctx context.Context, userID, date string, weightKG float64) (domain.WeightEntry, error) {
	if s.weights == nil {
		return domain.WeightEntry{}, errors.New("weight service not configured")
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return domain.WeightEntry{}, &domain.ValidationError{Field: "date", Reason: "expected YYYY-MM-DD"}
	}
	if weightKG < domain.MinWeightKG || weightKG > domain.MaxWeightKG {
		return domain.WeightEntry{}, &domain.ValidationError{
			Field:  "weight_kg",
			Reason: fmt.Sprintf("must be between %.0f and %.0f", domain.MinWeightKG, domain.MaxWeightKG),
		}
	}

	entry, err := s.weights.Upsert(ctx, domain.WeightEntry{
		ID:        uuid.NewString(),
		UserID:    userID,
		Date:      date,
		WeightKG:  weightKG,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return domain.WeightEntry{}, err
	}

	// Propagar al perfil. Sin perfil (onboarding pendiente) no hay nada que
	// recalcular; cualquier otro error no invalida el peso ya guardado.
	if s.profiles != nil {
		_, err := s.profiles.UpdateBiometrics(ctx, userID, BiometricsPatch{WeightKG: &weightKG})
		if err != nil && !errors.Is(err, ErrProfileNotFound) && s.logger != nil {
			s.logger.Warn("weight logged but profile sync failed",
				zap.String("user_id", userID),
				zap.Error(err),
			)
		}
	}
	return entry, nil
}

func (s *WeightService) ListRange(ctx context.Context, userID, start, end string) ([]domain.WeightEntry, error) {
	if s.weights == nil {
		return nil, errors.New("weight service not configured")
	}
	if _, err := time.Parse(dateLayout, start); err != nil {
		return nil, &domain.ValidationError{Field: "start", Reason: "expected YYYY-MM-DD"}
	}
	if _, err := time.Parse(dateLayout, end); err != nil {
		return nil, &domain.ValidationError{Field: "end", Reason: "expected YYYY-MM-DD"}
	}
	if start > end {
		return nil, &domain.ValidationError{Field: "start", Reason: "must not be after end"}
	}
	return s.weights.ListRange(ctx, userID, start, end)
}

func (s *WeightService) Delete(ctx context.Context, userID, id string) error {
	if s.weights == nil {
		return errors.New("weight service not configured")
	}
	if err := s.weights.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrWeightEntryNotFound
		}
		return err
	}
	return nil
}
