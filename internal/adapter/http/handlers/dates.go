package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bussola/internal/adapter/http/dto"
	"bussola/internal/adapter/http/mapper"
	"bussola/internal/adapter/http/middleware"
	"bussola/internal/core/domain"
	"bussola/internal/core/ports"
	"bussola/pkg/apierrors"
)

type DateHandler struct {
	scheduleService ports.ScheduleService
}

func NewDateHandler(scheduleService ports.ScheduleService) *DateHandler {
	return &DateHandler{scheduleService: scheduleService}
}

// ValidateDates reports every date rule the pair breaks. It never fails on
// invalid dates; those are part of the report.
func (h *DateHandler) ValidateDates(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.DateValidationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidActionPayload, lang),
		)
		return
	}

	report := h.scheduleService.Validate(c.Request.Context(), ports.DateCheck{
		Date:            req.Date,
		InstagramDate:   req.InstagramDate,
		RequiredMinutes: req.Time,
		Category:        strings.TrimSpace(req.Category),
		RejectPastDates: req.RejectPastDates,
		AutoCorrect:     req.AutoCorrect,
	}, lang)

	c.JSON(http.StatusOK, mapper.ToDateValidationResponse(report))
}

func (h *DateHandler) SuggestDates(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.DateSuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil || (req.ActionID == "" && req.Category == "") {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidActionPayload, lang),
		)
		return
	}

	report, err := h.scheduleService.Suggest(c.Request.Context(), ports.DateSuggestionCheck{
		ActionID:         strings.TrimSpace(req.ActionID),
		Category:         strings.TrimSpace(req.Category),
		Time:             req.Time,
		Date:             req.Date,
		InstagramDate:    req.InstagramDate,
		IsChangingDoDate: req.IsChangingDoDate,
	}, lang)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrActionNotFound):
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgActionNotFound, lang),
			)
		case errors.Is(err, domain.ErrInvalidDate):
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidActionDates, lang),
			)
		default:
			zap.L().Error("failed to suggest dates", zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListActions, lang),
			)
		}
		return
	}

	c.JSON(http.StatusOK, mapper.ToDateSuggestionResponse(report))
}
