package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"activityroster/internal/app/dto"
	"activityroster/internal/domain/activity"
	"activityroster/internal/infrastructure/metrics"
)

type Handler struct {
	ActivitySvc activity.Service
	Metrics     *metrics.Metrics
	Log         *zap.Logger
}

func New(activitySvc activity.Service, m *metrics.Metrics, log *zap.Logger) *Handler {
	return &Handler{
		ActivitySvc: activitySvc,
		Metrics:     m,
		Log:         log,
	}
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}
