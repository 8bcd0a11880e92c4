package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bussola/internal/adapter/http/mapper"
	"bussola/internal/adapter/http/middleware"
	"bussola/internal/core/ports"
	"bussola/pkg/apierrors"
)

// ReferenceHandler serves the lookup lists the dashboard needs to render
// filters and badges.
type ReferenceHandler struct {
	references ports.ReferenceRepository
}

func NewReferenceHandler(references ports.ReferenceRepository) *ReferenceHandler {
	return &ReferenceHandler{references: references}
}

func (h *ReferenceHandler) ListStates(c *gin.Context) {
	states, err := h.references.ListStates(c.Request.Context())
	if err != nil {
		h.fail(c, "states", err)
		return
	}
	c.JSON(http.StatusOK, mapper.ToStateItems(states))
}

func (h *ReferenceHandler) ListCategories(c *gin.Context) {
	categories, err := h.references.ListCategories(c.Request.Context())
	if err != nil {
		h.fail(c, "categories", err)
		return
	}
	c.JSON(http.StatusOK, mapper.ToCategoryItems(categories))
}

func (h *ReferenceHandler) ListPartners(c *gin.Context) {
	partners, err := h.references.ListPartners(c.Request.Context())
	if err != nil {
		h.fail(c, "partners", err)
		return
	}
	c.JSON(http.StatusOK, mapper.ToPartnerItems(partners))
}

func (h *ReferenceHandler) ListPeople(c *gin.Context) {
	people, err := h.references.ListPeople(c.Request.Context())
	if err != nil {
		h.fail(c, "people", err)
		return
	}
	c.JSON(http.StatusOK, mapper.ToPersonItems(people))
}

func (h *ReferenceHandler) fail(c *gin.Context, list string, err error) {
	zap.L().Error("failed to list reference data", zap.String("list", list), zap.Error(err))
	c.JSON(
		http.StatusInternalServerError,
		apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListReference, middleware.GetLang(c)),
	)
}
