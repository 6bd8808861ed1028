package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"activityroster/internal/app/dto"
	"activityroster/internal/domain"
	"activityroster/internal/infrastructure/metrics"
)

const msgInternal = "Internal server error"

func (h *Handler) writeError(c *gin.Context, err error) {
	var de *domain.DomainError
	if errors.As(err, &de) {
		c.JSON(de.HTTPStatus, dto.ErrorResponse{Detail: de.Message})
		return
	}

	h.Log.Error("internal error", zap.Error(err))
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Detail: msgInternal})
}

func (h *Handler) unprocessable(c *gin.Context, msg string) {
	c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Detail: msg})
}

// resultLabel turns an operation outcome into a metrics label.
func resultLabel(err error) string {
	if err == nil {
		return metrics.ResultOK
	}
	var de *domain.DomainError
	if errors.As(err, &de) {
		return strings.ToLower(string(de.Code))
	}
	return "internal_error"
}
