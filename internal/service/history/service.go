// Package history is the read/delete facade over a user's reaction rows.
package history

import (
	"context"
	"time"

	"github.com/idktogo/idk-to-go/internal/app"
	svcErr "github.com/idktogo/idk-to-go/internal/errors"
	"github.com/idktogo/idk-to-go/internal/repository"
)

// Entry is one row in a user's interaction history.
type Entry struct {
	RestaurantID uint64    `json:"restaurant_id"`
	Value        string    `json:"value"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Service lists and clears user history. It never touches restaurant
// counters: history rows are a snapshot view, the counters are a ledger of
// applied transitions, and clearing one does not rewind the other.
type Service struct {
	appCtx    *app.AppContext
	reactions *repository.ReactionRepository
}

// NewService creates the history facade with dependencies from AppContext.
func NewService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx:    appCtx,
		reactions: repository.NewReactionRepository(appCtx.DB),
	}
}

// ListByUser returns the user's interactions, most recently updated first.
func (s *Service) ListByUser(ctx context.Context, userID uint64) ([]Entry, error) {
	if userID == 0 {
		return nil, svcErr.InvalidArgument("user id must be positive")
	}

	rows, err := s.reactions.ListByUser(ctx, userID)
	if err != nil {
		s.appCtx.Logger.Error("ListByUser failed", "user", userID, "err", err)
		return nil, svcErr.Map(err)
	}

	entries := make([]Entry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, Entry{
			RestaurantID: r.RestaurantID,
			Value:        r.Value().String(),
			UpdatedAt:    r.UpdatedAt,
		})
	}
	return entries, nil
}

// Clear removes all history rows for one user (account-deletion flow).
func (s *Service) Clear(ctx context.Context, userID uint64) error {
	if userID == 0 {
		return svcErr.InvalidArgument("user id must be positive")
	}

	n, err := s.reactions.DeleteForUser(ctx, userID)
	if err != nil {
		s.appCtx.Logger.Error("Clear failed", "user", userID, "err", err)
		return svcErr.Map(err)
	}
	s.appCtx.Logger.Info("user history cleared", "user", userID, "rows", n)
	return nil
}

// ClearAll removes every history row (admin flow).
func (s *Service) ClearAll(ctx context.Context) error {
	if err := s.reactions.DeleteAll(ctx); err != nil {
		s.appCtx.Logger.Error("ClearAll failed", "err", err)
		return svcErr.Map(err)
	}
	s.appCtx.Logger.Info("all history cleared")
	return nil
}
