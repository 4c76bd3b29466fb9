package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	handlershttp "github.com/holonet/holonet-backend/internal/handlers/http"
	"github.com/holonet/holonet-backend/internal/handlers/middleware"
	"github.com/holonet/holonet-backend/internal/infrastructure/auth"
	"github.com/holonet/holonet-backend/internal/infrastructure/config"
	"github.com/holonet/holonet-backend/internal/infrastructure/i18n"
	"github.com/holonet/holonet-backend/internal/infrastructure/logging"
	"github.com/holonet/holonet-backend/internal/infrastructure/mail"
	"github.com/holonet/holonet-backend/internal/infrastructure/persistence/postgres"
	"github.com/holonet/holonet-backend/internal/infrastructure/storage"
	"github.com/holonet/holonet-backend/internal/realtime"
	"github.com/holonet/holonet-backend/internal/services"
)

// @title Holonet API
// @version 1.0
// @description API da rede social Holonet
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name x-access-token
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("configuration error: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting holonet api", "env", cfg.Env)

	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	if err := postgres.Migrate(db); err != nil {
		logger.Error("database migration failed", "error", err)
		os.Exit(1)
	}

	i18nService, err := i18n.NewService("pt-BR")
	if err != nil {
		logger.Error("i18n initialization failed", "error", err)
		os.Exit(1)
	}

	files, err := storage.NewLocal(cfg.Storage.Dir)
	if err != nil {
		logger.Error("storage initialization failed", "error", err)
		os.Exit(1)
	}

	userRepo := postgres.NewUserRepository(db)
	friendshipRepo := postgres.NewFriendshipRepository(db)
	communityRepo := postgres.NewCommunityRepository(db)
	reportRepo := postgres.NewReportRepository(db)
	recoveryRepo := postgres.NewRecoveryCodeRepository(db)
	uow := postgres.NewUnitOfWork(db)

	tokens := auth.NewJWTService(cfg.JWT.Key)
	mailer := mail.NewLogMailer(logger)

	userService := services.NewUserService(userRepo, friendshipRepo, communityRepo, recoveryRepo, uow, logger)
	friendshipService := services.NewFriendshipService(friendshipRepo, userRepo, logger)
	communityService := services.NewCommunityService(communityRepo, userRepo, logger)
	reportService := services.NewReportService(reportRepo, userRepo, logger)
	recoveryService := services.NewRecoveryService(userRepo, recoveryRepo, mailer, logger)

	hub := realtime.NewHub(logger)

	router := handlershttp.NewRouter(handlershttp.RouterDeps{
		Env:            cfg.Env,
		AllowedOrigins: middleware.AllowedOrigins(cfg.CORS.Origin),
		SwaggerEnabled: cfg.Server.SwaggerEnabled,

		I18n:   i18nService,
		Tokens: tokens,
		Users:  userRepo,
		Files:  files,
		Hub:    hub,

		UserHandler:       handlershttp.NewUserHandler(userService, recoveryService, tokens, files, logger),
		FriendshipHandler: handlershttp.NewFriendshipHandler(friendshipService),
		CommunityHandler:  handlershttp.NewCommunityHandler(communityService),
		ReportHandler:     handlershttp.NewReportHandler(reportService),
	})

	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("http server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
