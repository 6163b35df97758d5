package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"macrotrack/internal/domain"
	"macrotrack/internal/service"
)

// WeightHandler mantiene dependencias para endpoints del historial de peso.
type WeightHandler struct {
	logger     *zap.Logger
	weightServ *service.WeightService
}

// NewWeightHandler crea una instancia de WeightHandler.
func NewWeightHandler(logger *zap.Logger, weightServ *service.WeightService) *WeightHandler {
	return &WeightHandler{
		logger:     logger,
		weightServ: weightServ,
	}
}

// LogWeight maneja POST /weight.
func (h *WeightHandler) LogWeight(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	var req struct {
		Date     string  `json:"date" binding:"required"`
		WeightKG float64 `json:"weight_kg" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid weight log request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	entry, err := h.weightServ.Log(c.Request.Context(), userID, req.Date, req.WeightKG)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
			return
		}
		h.logger.Error("log weight failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not log weight"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"entry": entry})
}

// ListWeight maneja GET /weight?start=YYYY-MM-DD&end=YYYY-MM-DD.
func (h *WeightHandler) ListWeight(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	entries, err := h.weightServ.ListRange(c.Request.Context(), userID, c.Query("start"), c.Query("end"))
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
			return
		}
		h.logger.Error("list weight failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list weight entries"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// DeleteWeight maneja DELETE /weight/:id.
func (h *WeightHandler) DeleteWeight(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	if err := h.weightServ.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		if errors.Is(err, service.ErrWeightEntryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "weight entry not found"})
			return
		}
		h.logger.Error("delete weight entry failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete weight entry"})
		return
	}
	c.Status(http.StatusNoContent)
}
