package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/idktogo/idk-to-go/internal/service/trending"
)

type TrendingHandler struct {
	svc *trending.Service
}

func NewTrendingHandler(svc *trending.Service) *TrendingHandler {
	return &TrendingHandler{svc: svc}
}

// RegisterRoutes registers the scoreboard read endpoints.
func (h *TrendingHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/restaurants/:restaurant_id/scores", h.Scores)
	router.GET("/trending/weekly", h.Weekly)
	router.GET("/trending/all-time", h.AllTime)
}

// Scores returns the counter snapshot for one restaurant.
// GET /api/restaurants/:restaurant_id/scores
func (h *TrendingHandler) Scores(c *gin.Context) {
	restaurantID, ok := parseID(c, "restaurant_id")
	if !ok {
		return
	}

	snap, err := h.svc.Scores(c.Request.Context(), restaurantID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// Weekly returns the top restaurants by weekly likes.
// GET /api/trending/weekly?limit=10
func (h *TrendingHandler) Weekly(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	ranks, err := h.svc.TopByWeeklyLikes(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trending": ranks})
}

// AllTime returns the top restaurants by net score.
// GET /api/trending/all-time
func (h *TrendingHandler) AllTime(c *gin.Context) {
	ranks, err := h.svc.TopByNetScore(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trending": ranks})
}
