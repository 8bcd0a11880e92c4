package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bussola/internal/adapter/http/dto"
	"bussola/internal/adapter/http/mapper"
	"bussola/internal/adapter/http/middleware"
	"bussola/internal/core/domain"
	"bussola/internal/core/ports"
	"bussola/pkg/apierrors"
)

type SprintHandler struct {
	actionService ports.ActionService
	loc           *time.Location
}

func NewSprintHandler(actionService ports.ActionService, loc *time.Location) *SprintHandler {
	if loc == nil {
		loc = time.Local
	}
	return &SprintHandler{actionService: actionService, loc: loc}
}

func (h *SprintHandler) ListSprint(c *gin.Context) {
	lang := middleware.GetLang(c)

	userID := strings.TrimSpace(c.Query("user_id"))
	if userID == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidActionQuery, lang),
		)
		return
	}

	actions, err := h.actionService.ListSprint(c.Request.Context(), userID)
	if err != nil {
		zap.L().Error("failed to list sprint", zap.String("user_id", userID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListActions, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToActionItems(actions, h.loc))
}

func (h *SprintHandler) AddToSprint(c *gin.Context) {
	h.apply(c, func(req dto.SprintRequest) domain.Mutation {
		return domain.AddToSprint{ActionID: req.ActionID, UserID: req.UserID}
	}, http.StatusCreated)
}

func (h *SprintHandler) RemoveFromSprint(c *gin.Context) {
	h.apply(c, func(req dto.SprintRequest) domain.Mutation {
		return domain.RemoveFromSprint{ActionID: req.ActionID, UserID: req.UserID}
	}, http.StatusNoContent)
}

func (h *SprintHandler) apply(c *gin.Context, build func(dto.SprintRequest) domain.Mutation, status int) {
	lang := middleware.GetLang(c)

	var req dto.SprintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidActionPayload, lang),
		)
		return
	}
	req.ActionID = strings.TrimSpace(req.ActionID)
	req.UserID = strings.TrimSpace(req.UserID)

	if _, err := h.actionService.Apply(c.Request.Context(), build(req)); err != nil {
		switch {
		case errors.Is(err, domain.ErrActionNotFound):
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgActionNotFound, lang),
			)
		case errors.Is(err, domain.ErrInvalidAction):
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidActionPayload, lang),
			)
		default:
			zap.L().Error("failed to update sprint", zap.String("action_id", req.ActionID), zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateSprint, lang),
			)
		}
		return
	}

	c.Status(status)
}
