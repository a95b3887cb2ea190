// Package reaction implements the transition engine that keeps the four
// derived restaurant counters consistent with the set of all users' current
// reactions.
package reaction

import (
	"context"

	"gorm.io/gorm"

	"github.com/idktogo/idk-to-go/internal/app"
	"github.com/idktogo/idk-to-go/internal/db"
	svcErr "github.com/idktogo/idk-to-go/internal/errors"
	"github.com/idktogo/idk-to-go/internal/repository"
)

// Service is the reaction transition engine. Given a user's desired new
// reaction it reads the prior one, computes the counter deltas for the
// (old, new) transition, and persists both halves atomically.
//
// Concurrency: callers may invoke Like/Dislike concurrently, including for
// the same (user, restaurant) pair. No ordering is guaranteed between
// independent calls; calls for the same pair are serialized internally, and
// each transition runs in a single DB transaction, so counters are adjusted
// exactly once per state change and a counter failure rolls back the
// reaction write.
type Service struct {
	appCtx      *app.AppContext
	reactions   *repository.ReactionRepository
	scores      *repository.ScoreRepository
	restaurants *repository.RestaurantRepository

	locks    pairLocks
	tracking bool
}

// NewService creates the engine with dependencies from AppContext.
func NewService(appCtx *app.AppContext, historyTracking bool) *Service {
	return &Service{
		appCtx:      appCtx,
		reactions:   repository.NewReactionRepository(appCtx.DB),
		scores:      repository.NewScoreRepository(appCtx.DB),
		restaurants: repository.NewRestaurantRepository(appCtx.DB),
		tracking:    historyTracking,
	}
}

// Like records that the user currently likes the restaurant.
func (s *Service) Like(ctx context.Context, userID, restaurantID uint64) error {
	return s.applyReaction(ctx, userID, restaurantID, db.ReactionLike)
}

// Dislike records that the user currently dislikes the restaurant.
func (s *Service) Dislike(ctx context.Context, userID, restaurantID uint64) error {
	return s.applyReaction(ctx, userID, restaurantID, db.ReactionDislike)
}

// applyReaction is the core state machine. States {None, Liked, Disliked},
// transitions only via Like/Dislike, self-transitions are no-ops:
//
//	(0, +1)  likes+1
//	(0, -1)  dislikes+1
//	(+1,-1)  likes-1, dislikes+1
//	(-1,+1)  dislikes-1, likes+1
//
// net_score and weekly_likes always move by newScore-oldScore (±1 fresh,
// ±2 on a flip). There is no public transition back to None.
func (s *Service) applyReaction(ctx context.Context, userID, restaurantID uint64, value db.ReactionValue) error {
	if userID == 0 || restaurantID == 0 {
		return svcErr.InvalidArgument("user and restaurant ids must be positive")
	}

	if !s.tracking {
		s.appCtx.Logger.Debug("history tracking disabled, reaction dropped",
			"user", userID, "restaurant", restaurantID, "value", value.String())
		return nil
	}

	if _, err := s.restaurants.GetByID(ctx, restaurantID); err != nil {
		return svcErr.Map(err)
	}

	unlock := s.locks.Lock(userID, restaurantID)
	defer unlock()

	applied := false
	err := s.appCtx.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		reactions := s.reactions.Tx(tx)
		scores := s.scores.Tx(tx)

		old, err := reactions.Get(ctx, userID, restaurantID)
		if err != nil {
			return err
		}

		oldScore, newScore := old.Score(), value.Score()
		if oldScore == newScore {
			// idempotent no-op: no store write, no counter write
			return nil
		}

		if err := reactions.Upsert(ctx, userID, restaurantID, value); err != nil {
			return err
		}

		switch {
		case oldScore == 0 && newScore == 1:
			err = scores.IncrementLikes(ctx, restaurantID)
		case oldScore == 0 && newScore == -1:
			err = scores.IncrementDislikes(ctx, restaurantID)
		case oldScore == 1 && newScore == -1:
			if err = scores.DecrementLikes(ctx, restaurantID); err == nil {
				err = scores.IncrementDislikes(ctx, restaurantID)
			}
		case oldScore == -1 && newScore == 1:
			if err = scores.DecrementDislikes(ctx, restaurantID); err == nil {
				err = scores.IncrementLikes(ctx, restaurantID)
			}
		}
		if err != nil {
			return err
		}

		applied = true
		return scores.AdjustNetAndWeekly(ctx, restaurantID, newScore-oldScore)
	})
	if err != nil {
		s.appCtx.Logger.Error("applyReaction failed",
			"user", userID, "restaurant", restaurantID, "value", value.String(), "err", err)
		return svcErr.Map(err)
	}

	if applied {
		s.appCtx.Logger.Debug("reaction applied",
			"user", userID, "restaurant", restaurantID, "value", value.String())
		s.invalidateScoreCaches(ctx, restaurantID)
	}
	return nil
}

// ResetWeeklyLikes zeroes weekly_likes on every restaurant. Best effort with
// respect to reactions in flight: a concurrent transition's delta lands
// before or after the reset depending on arrival order, so schedule resets
// for quiet periods.
func (s *Service) ResetWeeklyLikes(ctx context.Context) error {
	if err := s.scores.ResetWeeklyLikes(ctx); err != nil {
		s.appCtx.Logger.Error("ResetWeeklyLikes failed", "err", err)
		return svcErr.Map(err)
	}

	cache := s.appCtx.RedisCache
	if err := cache.Del(ctx, cache.KeyTrendingWeekly()); err != nil {
		s.appCtx.Logger.Warn("trending cache invalidation failed", "err", err)
	}
	if err := cache.DelPattern(ctx, "restaurant:scores:*"); err != nil {
		s.appCtx.Logger.Warn("score cache invalidation failed", "err", err)
	}

	s.appCtx.Logger.Info("weekly likes reset")
	return nil
}

// invalidateScoreCaches drops the cached counter snapshot and trending lists
// after a committed transition. Best effort: a cache failure is logged and
// heals via TTL, it never fails the operation.
func (s *Service) invalidateScoreCaches(ctx context.Context, restaurantID uint64) {
	cache := s.appCtx.RedisCache
	err := cache.Del(ctx,
		cache.KeyForScores(restaurantID),
		cache.KeyTrendingWeekly(),
		cache.KeyTrendingAllTime(),
	)
	if err != nil {
		s.appCtx.Logger.Warn("score cache invalidation failed",
			"restaurant", restaurantID, "err", err)
	}
}
