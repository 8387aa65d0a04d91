package main

import (
	"net/http"

	"go.uber.org/zap"

	"passvault/internal/config"
	"passvault/internal/handlers"
	"passvault/internal/middleware"
	"passvault/internal/repo"
	"passvault/internal/service"
)

func main() {
	cfg := config.NewConfig()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	sugar := logger.Sugar()
	middleware.SetLogger(sugar)
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	userService := service.NewUserService(repo.NewUserRepository(gormDB))
	entryService := service.NewEntryService(repo.NewEntryRepository(gormDB))

	h := handlers.NewHandler(userService, entryService, sugar, cfg)

	addr := cfg.BaseURL

	sugar.Infow("Starting server",
		"addr", addr,
		"https", cfg.EnableHTTPS,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
