package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	apiHttp "github.com/greenpoint/backend/internal/api/http"
	"github.com/greenpoint/backend/internal/cache"
	"github.com/greenpoint/backend/internal/config"
	"github.com/greenpoint/backend/internal/db"
	"github.com/greenpoint/backend/internal/ibge"
	"github.com/greenpoint/backend/internal/queue/asynqserver"
	"github.com/greenpoint/backend/internal/repository"
	"github.com/greenpoint/backend/internal/seed"
	"github.com/greenpoint/backend/internal/server"
	"github.com/greenpoint/backend/internal/service"
	"github.com/greenpoint/backend/internal/worker"
	"github.com/greenpoint/backend/pkg/auth"
	"github.com/greenpoint/backend/pkg/email/smtp"
	"github.com/greenpoint/backend/pkg/logger"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	// Init cfg from environment variables
	cfg := config.MustLoad()

	if _, err := logger.Init(cfg.Env, cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Sync()

	logger.Info("starting backend api", zap.String("env", cfg.Env))
	logger.Debug("debug messages are enabled")

	// Init database
	dbMySQL, err := db.New(cfg.Database)
	if err != nil {
		logger.Error("mysql connect problem", zap.Error(err))
		os.Exit(1)
	}
	defer func() {
		if err := dbMySQL.Close(); err != nil {
			logger.Error("error when closing", zap.Error(err))
		}
	}()
	logger.Info("mysql connection done")

	if err := db.Migrate(context.Background(), dbMySQL); err != nil {
		logger.Error("mysql migration failed", zap.Error(err))
		os.Exit(1)
	}

	// Init redis
	redisClient, err := cache.NewRedis(cfg.Cache)
	if err != nil {
		logger.Error("redis connect problem", zap.Error(err))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Error("error when closing redis", zap.Error(err))
		}
	}()
	logger.Info("redis connection done")

	tokenManager, err := auth.NewManager(cfg.Auth.JWT.SigningKey, cfg.Auth.JWT.AccessTokenTTL)
	if err != nil {
		logger.Error("auth manager creation err", zap.Error(err))
		os.Exit(1)
	}

	// Queue producer, only when confirmation e-mails are sent
	var enqueuer service.Enqueuer
	if cfg.Email.Enabled {
		queueClient := asynqserver.NewClient(cfg.Cache)
		defer queueClient.Close()
		enqueuer = queueClient
	}

	// Services, Repos & API Handlers
	repos := repository.NewRepositories(dbMySQL)
	services := service.NewServices(service.Deps{
		Config:       cfg,
		Repos:        repos,
		RegionLookup: ibge.NewClient(cfg.IBGE.BaseURL, cfg.IBGE.Timeout),
		LookupCache:  cache.NewLookupCache(redisClient, cfg.Cache.RegionsTTL),
		Enqueuer:     enqueuer,
	})

	if cfg.Catalog.SeedFile != "" {
		items, err := seed.LoadCatalogFile(cfg.Catalog.SeedFile)
		if err != nil {
			logger.Error("catalog seed load failed", zap.Error(err))
			os.Exit(1)
		}
		if err := services.Items.Seed(context.Background(), items); err != nil {
			logger.Error("catalog seed failed", zap.Error(err))
			os.Exit(1)
		}
	}

	handlers := apiHttp.NewHandlers(services, tokenManager)

	// HTTP Server
	srv := server.NewServer(cfg.HttpServer, handlers.Init(cfg))
	go func() {
		if err := srv.Run(); err != nil {
			logger.Error("error occurred while running http server", zap.Error(err))
		}
	}()
	logger.Info("server started")

	// Queue worker
	var queueServer *asynq.Server
	if cfg.Email.Enabled {
		emailSender, err := smtp.NewSMTPSender(cfg.SMTP.From, cfg.SMTP.Pass, cfg.SMTP.Host, cfg.SMTP.Port)
		if err != nil {
			logger.Error("smtp sender creation failed", zap.Error(err))
			os.Exit(1)
		}

		workers := worker.NewWorkers(worker.Deps{EmailProvider: emailSender, Config: cfg})

		var mux *asynq.ServeMux
		queueServer, mux = asynqserver.New(cfg.Cache, workers)
		if err := queueServer.Start(mux); err != nil {
			logger.Error("queue server start failed", zap.Error(err))
			os.Exit(1)
		}
		logger.Info("queue server started")
	}

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	<-quit

	const timeout = 5 * time.Second

	ctx, shutdown := context.WithTimeout(context.Background(), timeout)
	defer shutdown()

	if err := srv.Stop(ctx); err != nil {
		logger.Error("failed to stop server", zap.Error(err))
	}

	if queueServer != nil {
		queueServer.Shutdown()
	}

	logger.Info("app stopped")
}
