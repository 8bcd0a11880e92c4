package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"

	"bussola/internal/adapter/http/dto"
	"bussola/internal/adapter/http/mapper"
	"bussola/internal/adapter/http/middleware"
	"bussola/internal/adapter/http/validation"
	"bussola/internal/core/domain"
	"bussola/internal/core/ports"
	"bussola/pkg/apierrors"
)

type ActionHandler struct {
	actionService   ports.ActionService
	scheduleService ports.ScheduleService
	loc             *time.Location
}

func NewActionHandler(actionService ports.ActionService, scheduleService ports.ScheduleService, loc *time.Location) *ActionHandler {
	if loc == nil {
		loc = time.Local
	}
	return &ActionHandler{actionService: actionService, scheduleService: scheduleService, loc: loc}
}

func (h *ActionHandler) ListActions(c *gin.Context) {
	lang := middleware.GetLang(c)

	query, err := validation.BuildActionQuery(c.Request.URL.Query(), h.loc)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidActionQuery, lang),
		)
		return
	}

	actions, err := h.actionService.ListActions(c.Request.Context(), query)
	if err != nil {
		zap.L().Error("failed to list actions", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListActions, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToActionItems(actions, h.loc))
}

func (h *ActionHandler) ListDelayed(c *gin.Context) {
	lang := middleware.GetLang(c)
	values := c.Request.URL.Query()

	filter, err := validation.BuildActionFilter(values, h.loc)
	if err != nil {
		h.invalidQuery(c, lang)
		return
	}
	priority, err := validation.PriorityParam(values)
	if err != nil {
		h.invalidQuery(c, lang)
		return
	}

	actions, err := h.actionService.ListDelayed(c.Request.Context(), filter, priority)
	h.respondList(c, actions, err, "failed to list delayed actions")
}

func (h *ActionHandler) ListUrgent(c *gin.Context) {
	filter, err := validation.BuildActionFilter(c.Request.URL.Query(), h.loc)
	if err != nil {
		h.invalidQuery(c, middleware.GetLang(c))
		return
	}

	actions, err := h.actionService.ListUrgent(c.Request.Context(), filter)
	h.respondList(c, actions, err, "failed to list urgent actions")
}

func (h *ActionHandler) ListInstagramFeed(c *gin.Context) {
	filter, err := validation.BuildActionFilter(c.Request.URL.Query(), h.loc)
	if err != nil {
		h.invalidQuery(c, middleware.GetLang(c))
		return
	}

	actions, err := h.actionService.ListInstagramFeed(c.Request.Context(), filter)
	h.respondList(c, actions, err, "failed to list instagram feed")
}

func (h *ActionHandler) ListForDay(c *gin.Context) {
	lang := middleware.GetLang(c)
	values := c.Request.URL.Query()

	filter, err := validation.BuildActionFilter(values, h.loc)
	if err != nil {
		h.invalidQuery(c, lang)
		return
	}
	order, err := validation.BuildSortOptions(values)
	if err != nil {
		h.invalidQuery(c, lang)
		return
	}

	actions, err := h.actionService.ListForDay(c.Request.Context(), filter, c.Param("day"), order.UseInstagramDate)
	if errors.Is(err, domain.ErrInvalidDate) {
		h.invalidQuery(c, lang)
		return
	}
	h.respondList(c, actions, err, "failed to list actions of day")
}

// BuildView returns the list the dashboard should show given the client's
// unconfirmed creations, updates and deletions.
func (h *ActionHandler) BuildView(c *gin.Context) {
	lang := middleware.GetLang(c)
	values := c.Request.URL.Query()

	filter, err := validation.BuildActionFilter(values, h.loc)
	if err != nil {
		h.invalidQuery(c, lang)
		return
	}
	order, err := validation.BuildSortOptions(values)
	if err != nil {
		h.invalidQuery(c, lang)
		return
	}

	var req dto.ActionViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.invalidPayload(c, lang)
		return
	}

	pending := make([]domain.Action, 0, len(req.Pending))
	for _, item := range req.Pending {
		if strings.TrimSpace(item.ID) == "" {
			h.invalidPayload(c, lang)
			return
		}
		action, err := mapper.FromActionItem(item, h.loc)
		if err != nil {
			h.invalidPayload(c, lang)
			return
		}
		pending = append(pending, action)
	}

	actions, err := h.actionService.BuildView(c.Request.Context(), ports.ViewRequest{
		Filter:   filter,
		Pending:  pending,
		Deleting: req.Deleting,
		Sort:     order,
	})
	h.respondList(c, actions, err, "failed to build action view")
}

func (h *ActionHandler) CreateAction(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateActionRequest
	raw, err := bindJSONWithRaw(c, &req)
	if err != nil {
		h.invalidPayload(c, lang)
		return
	}
	action, err := validation.BuildCreateAction(req, raw, h.loc)
	if err != nil {
		h.invalidPayload(c, lang)
		return
	}

	result, err := h.actionService.Apply(c.Request.Context(), domain.CreateAction{Action: action})
	if err != nil {
		h.mutationError(c, err, lang, apierrors.MsgFailCreateAction, "failed to create action")
		return
	}

	c.JSON(http.StatusCreated, mapper.ToActionItem(*result.Action, h.loc))
}

func (h *ActionHandler) UpdateAction(c *gin.Context) {
	lang := middleware.GetLang(c)

	id, ok := h.actionID(c, lang)
	if !ok {
		return
	}

	var req dto.UpdateActionRequest
	raw, err := bindJSONWithRaw(c, &req)
	if err != nil {
		h.invalidPayload(c, lang)
		return
	}
	patch, err := validation.BuildActionPatch(req, raw, h.loc)
	if err != nil {
		h.invalidPayload(c, lang)
		return
	}

	result, err := h.actionService.Apply(c.Request.Context(), domain.UpdateAction{ID: id, Patch: patch})
	if err != nil {
		h.mutationError(c, err, lang, apierrors.MsgFailUpdateAction, "failed to update action")
		return
	}

	c.JSON(http.StatusOK, mapper.ToActionItem(*result.Action, h.loc))
}

func (h *ActionHandler) BulkUpdateActions(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.BulkUpdateActionsRequest
	raw, err := bindJSONWithRaw(c, &req)
	if err != nil {
		h.invalidPayload(c, lang)
		return
	}
	ids, patch, err := validation.BuildBulkPatch(req, raw, h.loc)
	if err != nil {
		h.invalidPayload(c, lang)
		return
	}

	result, err := h.actionService.Apply(c.Request.Context(), domain.BulkUpdateActions{IDs: ids, Patch: patch})
	if err != nil {
		h.mutationError(c, err, lang, apierrors.MsgFailUpdateAction, "failed to bulk update actions")
		return
	}

	c.JSON(http.StatusOK, mapper.ToActionItems(result.Actions, h.loc))
}

func (h *ActionHandler) ArchiveAction(c *gin.Context) {
	h.applyByID(c, func(id string) domain.Mutation { return domain.ArchiveAction{ID: id} },
		http.StatusOK, apierrors.MsgFailUpdateAction, "failed to archive action")
}

func (h *ActionHandler) RecoverAction(c *gin.Context) {
	h.applyByID(c, func(id string) domain.Mutation { return domain.RecoverAction{ID: id} },
		http.StatusOK, apierrors.MsgFailUpdateAction, "failed to recover action")
}

func (h *ActionHandler) DuplicateAction(c *gin.Context) {
	h.applyByID(c, func(id string) domain.Mutation { return domain.DuplicateAction{ID: id} },
		http.StatusCreated, apierrors.MsgFailDuplicateAction, "failed to duplicate action")
}

func (h *ActionHandler) DestroyAction(c *gin.Context) {
	lang := middleware.GetLang(c)

	id, ok := h.actionID(c, lang)
	if !ok {
		return
	}

	if _, err := h.actionService.Apply(c.Request.Context(), domain.DestroyAction{ID: id}); err != nil {
		h.mutationError(c, err, lang, apierrors.MsgFailDeleteAction, "failed to destroy action")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ActionHandler) applyByID(c *gin.Context, build func(id string) domain.Mutation, status int, failKey, logMsg string) {
	lang := middleware.GetLang(c)

	id, ok := h.actionID(c, lang)
	if !ok {
		return
	}

	result, err := h.actionService.Apply(c.Request.Context(), build(id))
	if err != nil {
		h.mutationError(c, err, lang, failKey, logMsg)
		return
	}

	c.JSON(status, mapper.ToActionItem(*result.Action, h.loc))
}

func (h *ActionHandler) actionID(c *gin.Context, lang string) (string, bool) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" || len(id) > 64 {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidActionID, lang),
		)
		return "", false
	}
	return id, true
}

func (h *ActionHandler) respondList(c *gin.Context, actions []domain.Action, err error, logMsg string) {
	if err != nil {
		zap.L().Error(logMsg, zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListActions, middleware.GetLang(c)),
		)
		return
	}
	c.JSON(http.StatusOK, mapper.ToActionItems(actions, h.loc))
}

func (h *ActionHandler) mutationError(c *gin.Context, err error, lang, failKey, logMsg string) {
	var dateErr *domain.DateRuleError
	switch {
	case errors.Is(err, domain.ErrActionNotFound):
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(http.StatusNotFound, apierrors.MsgActionNotFound, lang),
		)
	case errors.As(err, &dateErr):
		c.JSON(
			http.StatusUnprocessableEntity,
			apierrors.CreateErrorWithDetails(http.StatusUnprocessableEntity, apierrors.MsgInvalidActionDates, lang,
				h.scheduleService.Describe(dateErr.Issues, lang)),
		)
	case errors.Is(err, domain.ErrInvalidAction), errors.Is(err, domain.ErrEmptyIDList), errors.Is(err, domain.ErrInvalidDate):
		h.invalidPayload(c, lang)
	default:
		zap.L().Error(logMsg, zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, failKey, lang),
		)
	}
}

func (h *ActionHandler) invalidQuery(c *gin.Context, lang string) {
	c.JSON(
		http.StatusBadRequest,
		apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidActionQuery, lang),
	)
}

func (h *ActionHandler) invalidPayload(c *gin.Context, lang string) {
	c.JSON(
		http.StatusBadRequest,
		apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidActionPayload, lang),
	)
}

// bindJSONWithRaw binds the body into req and also returns its top-level
// fields, so partial updates can tell an absent field from an explicit null.
func bindJSONWithRaw(c *gin.Context, req any) (map[string]json.RawMessage, error) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}
	if err := binding.JSON.BindBody(body, req); err != nil {
		return nil, err
	}
	return raw, nil
}
