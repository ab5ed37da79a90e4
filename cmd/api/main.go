package main

import (
	"context"
	"fmt"

	"projecthub/pkg/clock"
	"projecthub/pkg/translator"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	authadapter "projecthub/internal/adapter/auth"
	httpadapter "projecthub/internal/adapter/http"
	"projecthub/internal/adapter/http/handlers"
	httpmiddleware "projecthub/internal/adapter/http/middleware"
	appservice "projecthub/internal/app/service"
	"projecthub/internal/config"
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
	if cfg.JWTSecret == "" {
		logger.Fatal("JWT_SECRET must be set")
	}

	translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationFolder,
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	ctx := context.Background()
	st, err := openStore(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to open store", zap.String("driver", cfg.StoreDriver), zap.Error(err))
	}
	defer func() {
		if err := st.close(); err != nil {
			logger.Warn("failed to close store", zap.String("driver", cfg.StoreDriver), zap.Error(err))
		}
	}()
	logger.Info("store ready", zap.String("driver", cfg.StoreDriver))

	clk := clock.Real()
	jwtManager := authadapter.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL, clk)
	hasher := authadapter.NewBcryptHasher(cfg.BcryptCost)

	reporter := appservice.NewStatsReporter(st.tasks)
	cascade := appservice.NewCascadeCoordinator(st.projects, st.tasks, st.transactor)
	authService := appservice.NewAuthService(st.users, hasher, jwtManager, clk)
	projectService := appservice.NewProjectService(st.projects, cascade, reporter, clk)
	taskService := appservice.NewTaskService(st.tasks, st.projects, reporter, clk)
	directory := appservice.NewUserDirectory(st.users)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger), httpmiddleware.CORSMiddleware(cfg.CORSOrigins))
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Strings("proxies", cfg.TrustedProxies), zap.Error(err))
	}
	httpadapter.RegisterRoutes(r, jwtManager, httpadapter.Handlers{
		Health:  handlers.NewHealthHandler(cfg.StoreDriver, st.ping),
		Auth:    handlers.NewAuthHandler(authService),
		Project: handlers.NewProjectHandler(projectService, directory),
		Task:    handlers.NewTaskHandler(taskService, directory),
	})

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := fmt.Sprintf(":%s", port)
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
