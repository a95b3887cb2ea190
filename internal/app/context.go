package app

import (
	"log/slog"

	"gorm.io/gorm"

	"github.com/idktogo/idk-to-go/internal/cache"
)

// AppContext bundles the shared dependencies (DB, Redis, Logger). It is
// passed explicitly into every service constructor; nothing reads it from
// ambient global state.
type AppContext struct {
	DB         *gorm.DB
	RedisCache *cache.RedisCache
	Logger     *slog.Logger
}

// New creates a new AppContext.
func New(db *gorm.DB, rdb *cache.RedisCache, logger *slog.Logger) *AppContext {
	return &AppContext{
		DB:         db,
		RedisCache: rdb,
		Logger:     logger,
	}
}
