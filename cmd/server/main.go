package main

import (
	"context"

	"github.com/idktogo/idk-to-go/internal/app"
	"github.com/idktogo/idk-to-go/internal/cache"
	"github.com/idktogo/idk-to-go/internal/config"
	"github.com/idktogo/idk-to-go/internal/db"
	"github.com/idktogo/idk-to-go/internal/logger"
	"github.com/idktogo/idk-to-go/internal/server"
)

func main() {
	cfg := config.New()

	logger.InitFromConfig(cfg)
	log := logger.L()

	database, err := db.NewDB(cfg)
	if err != nil {
		log.Error("failed to init db", "err", err)
		return
	}

	redisCache := cache.NewRedisCache(cfg)
	if err := redisCache.Ping(context.Background()); err != nil {
		log.Error("failed to connect to redis", "err", err)
		return
	}

	appCtx := app.New(database, redisCache, log)

	if cfg.App.Env == "development" {
		if err := db.SeedDemoData(database); err != nil {
			log.Error("failed to seed", "err", err)
		}
	}

	router := server.NewRouter(appCtx, cfg)

	addr := cfg.HTTP.Host + ":" + cfg.HTTP.Port
	log.Info("starting http server", "addr", addr)

	if err := router.Run(addr); err != nil {
		log.Error("http server stopped", "err", err)
	}
}
