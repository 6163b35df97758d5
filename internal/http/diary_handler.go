package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"macrotrack/internal/domain"
	"macrotrack/internal/service"
)

// DiaryHandler mantiene dependencias para endpoints del diario.
type DiaryHandler struct {
	logger    *zap.Logger
	diaryServ *service.DiaryService
}

// NewDiaryHandler crea una instancia de DiaryHandler.
func NewDiaryHandler(logger *zap.Logger, diaryServ *service.DiaryService) *DiaryHandler {
	return &DiaryHandler{
		logger:    logger,
		diaryServ: diaryServ,
	}
}

// AddEntry maneja POST /diary/entries.
func (h *DiaryHandler) AddEntry(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	var req struct {
		Date     string   `json:"date" binding:"required"`
		Name     string   `json:"name" binding:"required"`
		Type     string   `json:"type" binding:"required"`
		Calories int      `json:"calories"`
		ProteinG *float64 `json:"protein_g"`
		CarbsG   *float64 `json:"carbs_g"`
		FatG     *float64 `json:"fat_g"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid diary entry request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	entry, err := h.diaryServ.AddEntry(c.Request.Context(), userID, service.DiaryEntryInput{
		Date:     req.Date,
		Name:     req.Name,
		Type:     req.Type,
		Calories: req.Calories,
		ProteinG: req.ProteinG,
		CarbsG:   req.CarbsG,
		FatG:     req.FatG,
	})
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
			return
		}
		h.logger.Error("add diary entry failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not add entry"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"entry": entry})
}

// ListDay maneja GET /diary/entries?date=YYYY-MM-DD.
func (h *DiaryHandler) ListDay(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	date := c.Query("date")
	entries, err := h.diaryServ.ListDay(c.Request.Context(), userID, date)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
			return
		}
		h.logger.Error("list diary entries failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list entries"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// DeleteEntry maneja DELETE /diary/entries/:id.
func (h *DiaryHandler) DeleteEntry(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	if err := h.diaryServ.DeleteEntry(c.Request.Context(), userID, c.Param("id")); err != nil {
		if errors.Is(err, service.ErrEntryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
			return
		}
		h.logger.Error("delete diary entry failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete entry"})
		return
	}
	c.Status(http.StatusNoContent)
}

// DaySummary maneja GET /diary/summary?date=YYYY-MM-DD.
func (h *DiaryHandler) DaySummary(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	summary, err := h.diaryServ.DaySummary(c.Request.Context(), userID, c.Query("date"))
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
			h.logger.Error("day summary failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not build summary"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}
