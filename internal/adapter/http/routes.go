package http

import (
	"bussola/internal/adapter/http/handlers"
	"bussola/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Health    *handlers.HealthHandler
	Action    *handlers.ActionHandler
	Date      *handlers.DateHandler
	Sprint    *handlers.SprintHandler
	Reference *handlers.ReferenceHandler
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)

		api.GET("/actions", h.Action.ListActions)
		api.GET("/actions/delayed", h.Action.ListDelayed)
		api.GET("/actions/urgent", h.Action.ListUrgent)
		api.GET("/actions/instagram", h.Action.ListInstagramFeed)
		api.GET("/actions/day/:day", h.Action.ListForDay)
		api.POST("/actions", h.Action.CreateAction)
		api.PATCH("/actions", h.Action.BulkUpdateActions)
		api.POST("/actions/view", h.Action.BuildView)
		api.PATCH("/actions/:id", h.Action.UpdateAction)
		api.DELETE("/actions/:id", h.Action.DestroyAction)
		api.POST("/actions/:id/archive", h.Action.ArchiveAction)
		api.POST("/actions/:id/recover", h.Action.RecoverAction)
		api.POST("/actions/:id/duplicate", h.Action.DuplicateAction)

		api.POST("/actions/dates/validate", h.Date.ValidateDates)
		api.POST("/actions/dates/suggest", h.Date.SuggestDates)

		api.GET("/sprints", h.Sprint.ListSprint)
		api.POST("/sprints", h.Sprint.AddToSprint)
		api.DELETE("/sprints", h.Sprint.RemoveFromSprint)

		api.GET("/states", h.Reference.ListStates)
		api.GET("/categories", h.Reference.ListCategories)
		api.GET("/partners", h.Reference.ListPartners)
		api.GET("/people", h.Reference.ListPeople)
	}
}
