package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/idktogo/idk-to-go/internal/service/history"
	"github.com/idktogo/idk-to-go/internal/service/reaction"
)

// AdminHandler exposes the administrative bulk operations. These bypass the
// transition engine's per-pair bookkeeping: the weekly reset is best effort
// against reactions in flight, and clearing history leaves counters as they
// are.
type AdminHandler struct {
	reactions *reaction.Service
	history   *history.Service
}

func NewAdminHandler(reactions *reaction.Service, hist *history.Service) *AdminHandler {
	return &AdminHandler{reactions: reactions, history: hist}
}

// RegisterRoutes registers the admin endpoints.
func (h *AdminHandler) RegisterRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin")
	{
		admin.POST("/reset-weekly-likes", h.ResetWeeklyLikes)
		admin.DELETE("/history", h.ClearAllHistory)
	}
}

// ResetWeeklyLikes zeroes weekly_likes for every restaurant.
// POST /api/admin/reset-weekly-likes
func (h *AdminHandler) ResetWeeklyLikes(c *gin.Context) {
	if err := h.reactions.ResetWeeklyLikes(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ClearAllHistory deletes every reaction row.
// DELETE /api/admin/history
func (h *AdminHandler) ClearAllHistory(c *gin.Context) {
	if err := h.history.ClearAll(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
