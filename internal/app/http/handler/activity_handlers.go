package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"activityroster/internal/app/dto"
	"activityroster/internal/domain/activity"
)

func (h *Handler) ActivitiesList(c *gin.Context) {
	list, err := h.ActivitySvc.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp := make(dto.ActivityList, len(list))
	for name, a := range list {
		resp[name] = dto.Activity{
			Description:     a.Description,
			Schedule:        a.Schedule,
			MaxParticipants: a.MaxParticipants,
			Participants:    append(make([]string, 0, len(a.Participants)), a.Participants...),
			SpotsLeft:       a.SpotsLeft(),
		}
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ActivitySignUp(c *gin.Context) {
	name := c.Param("activityName")

	var q dto.EmailQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.observeSignUp("validation_error")
		h.unprocessable(c, activity.MsgEmailRequired)
		return
	}

	msg, err := h.ActivitySvc.SignUp(c.Request.Context(), name, q.Email)
	h.observeSignUp(resultLabel(err))
	if err != nil {
		h.Log.Debug("signup rejected",
			zap.String("activity", name),
			zap.String("email", q.Email),
			zap.Error(err),
		)
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: msg})
}

func (h *Handler) ActivityUnregister(c *gin.Context) {
	name := c.Param("activityName")

	var q dto.EmailQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.observeUnregister("validation_error")
		h.unprocessable(c, activity.MsgEmailRequired)
		return
	}

	msg, err := h.ActivitySvc.Unregister(c.Request.Context(), name, q.Email)
	h.observeUnregister(resultLabel(err))
	if err != nil {
		h.Log.Debug("unregister rejected",
			zap.String("activity", name),
			zap.String("email", q.Email),
			zap.Error(err),
		)
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: msg})
}

func (h *Handler) observeSignUp(result string) {
	if h.Metrics != nil {
		h.Metrics.ObserveSignUp(result)
	}
}

func (h *Handler) observeUnregister(result string) {
	if h.Metrics != nil {
		h.Metrics.ObserveUnregister(result)
	}
}
