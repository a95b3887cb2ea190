// Package trending serves the read side of the scoreboard: per-restaurant
// counter snapshots and the top lists, cache-first against Redis with the DB
// as fallback.
package trending

import (
	"context"

	"github.com/idktogo/idk-to-go/internal/app"
	"github.com/idktogo/idk-to-go/internal/cache"
	"github.com/idktogo/idk-to-go/internal/db"
	svcErr "github.com/idktogo/idk-to-go/internal/errors"
	"github.com/idktogo/idk-to-go/internal/repository"
)

const (
	maxWeeklyLimit = 100
	allTimeLimit   = 50
)

// ScoreSnapshot is the public view of one restaurant's counters.
type ScoreSnapshot struct {
	RestaurantID uint64 `json:"restaurant_id"`
	Likes        int64  `json:"likes"`
	Dislikes     int64  `json:"dislikes"`
	NetScore     int64  `json:"net_score"`
	WeeklyLikes  int64  `json:"weekly_likes"`
}

// Rank is one row of a trending list.
type Rank struct {
	RestaurantID uint64 `json:"restaurant_id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	NetScore     int64  `json:"net_score"`
	WeeklyLikes  int64  `json:"weekly_likes"`
}

type Service struct {
	appCtx      *app.AppContext
	restaurants *repository.RestaurantRepository
}

// NewService creates the trending reader with dependencies from AppContext.
func NewService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx:      appCtx,
		restaurants: repository.NewRestaurantRepository(appCtx.DB),
	}
}

// Scores returns the counter snapshot for one restaurant.
// Cache-first:
//  1. Attempts to read restaurant:scores:<id> from Redis.
//  2. On a miss, reads the row from the DB.
//  3. Writes the snapshot back with a 1h TTL.
func (s *Service) Scores(ctx context.Context, restaurantID uint64) (*ScoreSnapshot, error) {
	if restaurantID == 0 {
		return nil, svcErr.InvalidArgument("restaurant id must be positive")
	}

	rc := s.appCtx.RedisCache
	key := rc.KeyForScores(restaurantID)

	var snap ScoreSnapshot
	if hit, err := rc.GetJSON(ctx, key, &snap); err != nil {
		s.appCtx.Logger.Warn("score cache read failed", "restaurant", restaurantID, "err", err)
	} else if hit {
		return &snap, nil
	}

	row, err := s.restaurants.GetByID(ctx, restaurantID)
	if err != nil {
		return nil, svcErr.Map(err)
	}

	snap = ScoreSnapshot{
		RestaurantID: row.ID,
		Likes:        row.Likes,
		Dislikes:     row.Dislikes,
		NetScore:     row.NetScore,
		WeeklyLikes:  row.WeeklyLikes,
	}
	if err := rc.SetJSON(ctx, key, &snap, cache.ScoreTTL); err != nil {
		s.appCtx.Logger.Warn("score cache write failed", "restaurant", restaurantID, "err", err)
	}
	return &snap, nil
}

// TopByWeeklyLikes returns up to limit restaurants ranked by weekly likes.
// The full top list is cached under a single key and sliced per request, so
// reaction writes only have one key to invalidate.
func (s *Service) TopByWeeklyLikes(ctx context.Context, limit int) ([]Rank, error) {
	limit = clampLimit(limit, maxWeeklyLimit)
	ranks, err := s.topList(ctx, s.appCtx.RedisCache.KeyTrendingWeekly(), maxWeeklyLimit,
		s.restaurants.TopByWeeklyLikes)
	if err != nil {
		return nil, err
	}
	if len(ranks) > limit {
		ranks = ranks[:limit]
	}
	return ranks, nil
}

// TopByNetScore returns the all-time top restaurants ranked by net score.
func (s *Service) TopByNetScore(ctx context.Context) ([]Rank, error) {
	return s.topList(ctx, s.appCtx.RedisCache.KeyTrendingAllTime(), allTimeLimit,
		s.restaurants.TopByNetScore)
}

func (s *Service) topList(
	ctx context.Context,
	key string,
	limit int,
	query func(context.Context, int) ([]db.Restaurant, error),
) ([]Rank, error) {
	rc := s.appCtx.RedisCache

	var ranks []Rank
	if hit, err := rc.GetJSON(ctx, key, &ranks); err != nil {
		s.appCtx.Logger.Warn("trending cache read failed", "key", key, "err", err)
	} else if hit {
		return ranks, nil
	}

	rows, err := query(ctx, limit)
	if err != nil {
		return nil, svcErr.Map(err)
	}

	ranks = make([]Rank, 0, len(rows))
	for _, row := range rows {
		ranks = append(ranks, Rank{
			RestaurantID: row.ID,
			Name:         row.Name,
			Category:     row.Category,
			NetScore:     row.NetScore,
			WeeklyLikes:  row.WeeklyLikes,
		})
	}
	if err := rc.SetJSON(ctx, key, ranks, cache.ScoreTTL); err != nil {
		s.appCtx.Logger.Warn("trending cache write failed", "key", key, "err", err)
	}
	return ranks, nil
}

func clampLimit(limit, max int) int {
	if limit < 1 {
		return max
	}
	if limit > max {
		return max
	}
	return limit
}
