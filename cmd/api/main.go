package main

import (
	_ "time/tzdata"

	"bussola/pkg/translator"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "bussola/internal/adapter/db"
	httpadapter "bussola/internal/adapter/http"
	"bussola/internal/adapter/http/handlers"
	httpmiddleware "bussola/internal/adapter/http/middleware"
	"bussola/internal/app/service"
	"bussola/internal/config"
	"bussola/internal/core/domain"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	cfg := config.LoadConfig()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationDir,
		SupportedLanguages: []string{translator.LanguagePtBR, translator.LanguageEn},
	})

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.String("driver", cfg.DbDriver), zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close database connection", zap.Error(err))
		}
	}()
	if err := dbadapter.Migrate(db); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	loc := cfg.Location()
	dates := domain.DateOptions{
		RejectPastDates: cfg.RejectPastDates,
		MinTimeBetween:  cfg.MinTimeBetween,
		Location:        loc,
	}

	actionRepository := dbadapter.NewActionRepository(db)
	sprintRepository := dbadapter.NewSprintRepository(db)
	referenceRepository := dbadapter.NewReferenceRepository(db)

	actionService := service.NewActionService(actionRepository, sprintRepository, referenceRepository, dates)
	scheduleService := service.NewScheduleService(actionRepository, dates)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Strings("proxies", cfg.TrustedProxies), zap.Error(err))
	}

	httpadapter.RegisterRoutes(r, httpadapter.Handlers{
		Health:    handlers.NewHealthHandler(db),
		Action:    handlers.NewActionHandler(actionService, scheduleService, loc),
		Date:      handlers.NewDateHandler(scheduleService),
		Sprint:    handlers.NewSprintHandler(actionService, loc),
		Reference: handlers.NewReferenceHandler(referenceRepository),
	})

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr), zap.String("timezone", loc.String()))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
