package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/idktogo/idk-to-go/internal/service/reaction"
)

type ReactionHandler struct {
	svc *reaction.Service
}

func NewReactionHandler(svc *reaction.Service) *ReactionHandler {
	return &ReactionHandler{svc: svc}
}

// RegisterRoutes registers the reaction endpoints.
func (h *ReactionHandler) RegisterRoutes(router *gin.RouterGroup) {
	reactions := router.Group("/users/:user_id/reactions/:restaurant_id")
	{
		reactions.POST("/like", h.Like)
		reactions.POST("/dislike", h.Dislike)
	}
}

// Like records a like.
// POST /api/users/:user_id/reactions/:restaurant_id/like
func (h *ReactionHandler) Like(c *gin.Context) {
	h.apply(c, h.svc.Like)
}

// Dislike records a dislike.
// POST /api/users/:user_id/reactions/:restaurant_id/dislike
func (h *ReactionHandler) Dislike(c *gin.Context) {
	h.apply(c, h.svc.Dislike)
}

func (h *ReactionHandler) apply(c *gin.Context, op func(ctx context.Context, userID, restaurantID uint64) error) {
	userID, ok := parseID(c, "user_id")
	if !ok {
		return
	}
	restaurantID, ok := parseID(c, "restaurant_id")
	if !ok {
		return
	}

	if err := op(c.Request.Context(), userID, restaurantID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
