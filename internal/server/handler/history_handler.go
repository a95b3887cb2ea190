package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/idktogo/idk-to-go/internal/service/history"
)

type HistoryHandler struct {
	svc *history.Service
}

func NewHistoryHandler(svc *history.Service) *HistoryHandler {
	return &HistoryHandler{svc: svc}
}

// RegisterRoutes registers the user history endpoints.
func (h *HistoryHandler) RegisterRoutes(router *gin.RouterGroup) {
	hist := router.Group("/users/:user_id/history")
	{
		hist.GET("", h.List)
		hist.DELETE("", h.Clear)
	}
}

// List returns the user's interactions, most recent first.
// GET /api/users/:user_id/history
func (h *HistoryHandler) List(c *gin.Context) {
	userID, ok := parseID(c, "user_id")
	if !ok {
		return
	}

	entries, err := h.svc.ListByUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": entries})
}

// Clear deletes the user's history (account-deletion flow). Restaurant
// counters are not rewound.
// DELETE /api/users/:user_id/history
func (h *HistoryHandler) Clear(c *gin.Context) {
	userID, ok := parseID(c, "user_id")
	if !ok {
		return
	}

	if err := h.svc.Clear(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
