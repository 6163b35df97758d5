package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"macrotrack/internal/domain"
	"macrotrack/internal/service"
)

// ProfileHandler mantiene dependencias para endpoints de perfil y onboarding.
type ProfileHandler struct {
	logger      *zap.Logger
	profileServ *service.ProfileService
}

// NewProfileHandler crea una instancia de ProfileHandler.
func NewProfileHandler(logger *zap.Logger, profileServ *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		logger:      logger,
		profileServ: profileServ,
	}
}

type macroSplitPayload struct {
	CarbsPct   int `json:"carbs_pct"`
	ProteinPct int `json:"protein_pct"`
	FatPct     int `json:"fat_pct"`
}

// CompleteOnboarding maneja POST /profile/onboarding.
func (h *ProfileHandler) CompleteOnboarding(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	var req struct {
		Sex                  string             `json:"sex" binding:"required"`
		AgeYears             int                `json:"age_years" binding:"required"`
		HeightCM             float64            `json:"height_cm" binding:"required"`
		WeightKG             float64            `json:"weight_kg" binding:"required"`
		ActivityLevel        string             `json:"activity_level" binding:"required"`
		GoalDirection        string             `json:"goal_direction" binding:"required"`
		WeeklyRateKcalPerDay int                `json:"weekly_rate_kcal_per_day"`
		MacroSplit           *macroSplitPayload `json:"macro_split"`
		GoalTags             []string           `json:"goal_tags"`
		Barriers             []string           `json:"barriers"`
		Habits               []string           `json:"habits"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid onboarding request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	bio := domain.UserBiometrics{
		Sex:                  domain.Sex(req.Sex),
		AgeYears:             req.AgeYears,
		HeightCM:             req.HeightCM,
		WeightKG:             req.WeightKG,
		ActivityLevel:        domain.ActivityLevel(req.ActivityLevel),
		GoalDirection:        domain.GoalDirection(req.GoalDirection),
		WeeklyRateKcalPerDay: req.WeeklyRateKcalPerDay,
	}
	if req.MacroSplit != nil {
		bio.MacroSplit = &domain.MacroSplit{
			CarbsPct:   req.MacroSplit.CarbsPct,
			ProteinPct: req.MacroSplit.ProteinPct,
			FatPct:     req.MacroSplit.FatPct,
		}
	}

	profile, err := h.profileServ.CompleteOnboarding(c.Request.Context(), userID, service.OnboardingInput{
		Biometrics: bio,
		GoalTags:   req.GoalTags,
		Barriers:   req.Barriers,
		Habits:     req.Habits,
	})
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
			return
		}
		h.logger.Error("onboarding failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not complete onboarding"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"profile": profile})
}

// GetProfile maneja GET /profile.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	profile, err := h.profileServ.Get(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}
		h.logger.Error("get profile failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// PatchBiometrics maneja PATCH /profile/biometrics.
func (h *ProfileHandler) PatchBiometrics(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	var req struct {
		Sex                  *string            `json:"sex"`
		AgeYears             *int               `json:"age_years"`
		HeightCM             *float64           `json:"height_cm"`
		WeightKG             *float64           `json:"weight_kg"`
		ActivityLevel        *string            `json:"activity_level"`
		GoalDirection        *string            `json:"goal_direction"`
		WeeklyRateKcalPerDay *int               `json:"weekly_rate_kcal_per_day"`
		MacroSplit           *macroSplitPayload `json:"macro_split"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid biometrics patch", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	patch := service.BiometricsPatch{
		AgeYears:             req.AgeYears,
		HeightCM:             req.HeightCM,
		WeightKG:             req.WeightKG,
		WeeklyRateKcalPerDay: req.WeeklyRateKcalPerDay,
	}
	if req.Sex != nil {
		sex := domain.Sex(*req.Sex)
		patch.Sex = &sex
	}
	if req.ActivityLevel != nil {
		level := domain.ActivityLevel(*req.ActivityLevel)
		patch.ActivityLevel = &level
	}
	if req.GoalDirection != nil {
		dir := domain.GoalDirection(*req.GoalDirection)
		patch.GoalDirection = &dir
	}
	if req.MacroSplit != nil {
		patch.MacroSplit = &domain.MacroSplit{
			CarbsPct:   req.MacroSplit.CarbsPct,
			ProteinPct: req.MacroSplit.ProteinPct,
			FatPct:     req.MacroSplit.FatPct,
		}
	}

	profile, err := h.profileServ.UpdateBiometrics(c.Request.Context(), userID, patch)
	if err != nil {
		var verr *domain.ValidationError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
			return
		case errors.Is(err, service.ErrProfileNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		default:
			h.logger.Error("patch biometrics failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update biometrics"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}
