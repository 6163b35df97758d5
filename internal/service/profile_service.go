package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"macrotrack/internal/domain"
	"macrotrack/internal/repository"
)

// ProfileService es el dueño del registro de biometria. Toda mutacion pasa
// por aca: valida, recalcula los targets con el motor y persiste biometria y
// targets juntos. Nadie mas escribe targets.
type ProfileService struct {
	logger   *zap.Logger
	profiles repository.ProfileRepository
	engine   NutritionEngine
}

func NewProfileService(logger *zap.Logger, profiles repository.ProfileRepository) *ProfileService {
	return &ProfileService{
		logger:   logger,
		profiles: profiles,
		engine:   NutritionEngine{},
	}
}

var ErrProfileNotFound = errors.New("profile not found")

// OnboardingInput es lo que el flujo de onboarding junta en el alta:
// biometria fresca mas preferencias opacas para el motor.
type OnboardingInput struct {
	Biometrics domain.UserBiometrics
	GoalTags   []string
	Barriers   []string
	Habits     []string
}

// CompleteOnboarding valida la biometria recolectada, deriva los targets y
// persiste el perfil completo. Re-ejecutar el onboarding pisa el perfil
// anterior entero.
func (s *ProfileService) CompleteOnboarding(ctx context.Context, userID string, input OnboardingInput) (domain.Profile, error) {
	if s.profiles == nil {
		return domain.Profile{}, errors.New("profile service not configured")
	}
	if err := domain.ValidateBiometrics(input.Biometrics); err != nil {
		return domain.Profile{}, err
	}

	now := time.Now().UTC()
	profile := domain.Profile{
		UserID:     userID,
		Biometrics: input.Biometrics,
		Targets:    s.derive(userID, input.Biometrics),
		GoalTags:   input.GoalTags,
		Barriers:   input.Barriers,
		Habits:     input.Habits,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.profiles.Upsert(ctx, profile); err != nil {
		return domain.Profile{}, err
	}
	return profile, nil
}

// BiometricsPatch actualiza solo los campos no nil (mismo idioma que los
// PATCH de settings del cliente movil).
type BiometricsPatch struct {
	Sex                  *domain.Sex
	AgeYears             *int
	HeightCM             *float64
	WeightKG             *float64
	ActivityLevel        *domain.ActivityLevel
	GoalDirection        *domain.GoalDirection
	WeeklyRateKcalPerDay *int
	MacroSplit           *domain.MacroSplit
}

// UpdateBiometrics aplica el patch sobre un snapshot nuevo de biometria,
// valida el resultado completo y reemplaza los targets almacenados por los
// recien derivados. Nunca muta targets en el lugar.
func (s *ProfileService) UpdateBiometrics(ctx context.Context, userID string, patch BiometricsPatch) (domain.Profile, error) {
	if s.profiles == nil {
		return domain.Profile{}, errors.New("profile service not configured")
	}

	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Profile{}, ErrProfileNotFound
		}
		return domain.Profile{}, err
	}

	b := profile.Biometrics
	if patch.Sex != nil {
		b.Sex = *patch.Sex
	}
	if patch.AgeYears != nil {
		b.AgeYears = *patch.AgeYears
	}
	if patch.HeightCM != nil {
		b.HeightCM = *patch.HeightCM
	}
	if patch.WeightKG != nil {
		b.WeightKG = *patch.WeightKG
	}
	if patch.ActivityLevel != nil {
		b.ActivityLevel = *patch.ActivityLevel
	}
	if patch.GoalDirection != nil {
		b.GoalDirection = *patch.GoalDirection
	}
	if patch.WeeklyRateKcalPerDay != nil {
		b.WeeklyRateKcalPerDay = *patch.WeeklyRateKcalPerDay
	}
	if patch.MacroSplit != nil {
		split := *patch.MacroSplit
		b.MacroSplit = &split
	}

	if err := domain.ValidateBiometrics(b); err != nil {
		return domain.Profile{}, err
	}

	profile.Biometrics = b
	profile.Targets = s.derive(userID, b)
	profile.UpdatedAt = time.Now().UTC()

	if err := s.profiles.Upsert(ctx, profile); err != nil {
		return domain.Profile{}, err
	}
	return profile, nil
}

// Get devuelve el perfil con los targets tal como se persistieron.
func (s *ProfileService) Get(ctx context.Context, userID string) (domain.Profile, error) {
	if s.profiles == nil {
		return domain.Profile{}, errors.New("profile service not configured")
	}
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Profile{}, ErrProfileNotFound
		}
		return domain.Profile{}, err
	}
	return profile, nil
}

// derive corre el motor y deja registro explicito cuando un activity level
// desconocido cayo al factor sedentario.
func (s *ProfileService) derive(userID string, b domain.UserBiometrics) domain.NutritionTargets {
	targets, known := s.engine.Calculate(b)
	if !known && s.logger != nil {
		s.logger.Warn("unrecognized activity level, falling back to sedentary factor",
			zap.String("user_id", userID),
			zap.String("activity_level", string(b.ActivityLevel)),
		)
	}
	return targets
}
