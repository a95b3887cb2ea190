// Package server wires the HTTP surface over the reaction, history and
// trending services.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/idktogo/idk-to-go/internal/app"
	"github.com/idktogo/idk-to-go/internal/config"
	"github.com/idktogo/idk-to-go/internal/server/handler"
	"github.com/idktogo/idk-to-go/internal/service/history"
	"github.com/idktogo/idk-to-go/internal/service/reaction"
	"github.com/idktogo/idk-to-go/internal/service/trending"
)

// NewRouter builds the gin engine with all routes and middleware attached.
func NewRouter(appCtx *app.AppContext, cfg *config.Config) *gin.Engine {
	if cfg.App.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	reactionSvc := reaction.NewService(appCtx, cfg.Engine.HistoryTracking)
	historySvc := history.NewService(appCtx)
	trendingSvc := trending.NewService(appCtx)

	r := gin.New()
	r.Use(RequestLogger(appCtx.Logger))
	r.Use(gin.Recovery())
	r.Use(RateLimiter(cfg.HTTP.RateRPS, cfg.HTTP.RateBurst))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	handler.NewReactionHandler(reactionSvc).RegisterRoutes(api)
	handler.NewHistoryHandler(historySvc).RegisterRoutes(api)
	handler.NewTrendingHandler(trendingSvc).RegisterRoutes(api)
	handler.NewAdminHandler(reactionSvc, historySvc).RegisterRoutes(api)

	return r
}
