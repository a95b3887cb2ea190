package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/idktogo/idk-to-go/internal/db"
)

// ScoreRepository owns the four derived counters on restaurant rows. All
// counter mutation in the system goes through here; no other component may
// write likes, dislikes, net_score or weekly_likes.
type ScoreRepository struct {
	db *gorm.DB
}

// NewScoreRepository creates a repository bound to the given DB connection.
func NewScoreRepository(database *gorm.DB) *ScoreRepository {
	return &ScoreRepository{db: database}
}

// Tx returns a copy of the repository bound to the given transaction handle.
func (r *ScoreRepository) Tx(tx *gorm.DB) *ScoreRepository {
	return &ScoreRepository{db: tx}
}

// IncrementLikes adds one to the like count.
func (r *ScoreRepository) IncrementLikes(ctx context.Context, restaurantID uint64) error {
	return r.bump(ctx, restaurantID, "likes", +1)
}

// DecrementLikes subtracts one from the like count, clamped at zero.
func (r *ScoreRepository) DecrementLikes(ctx context.Context, restaurantID uint64) error {
	return r.bump(ctx, restaurantID, "likes", -1)
}

// IncrementDislikes adds one to the dislike count.
func (r *ScoreRepository) IncrementDislikes(ctx context.Context, restaurantID uint64) error {
	return r.bump(ctx, restaurantID, "dislikes", +1)
}

// DecrementDislikes subtracts one from the dislike count, clamped at zero.
func (r *ScoreRepository) DecrementDislikes(ctx context.Context, restaurantID uint64) error {
	return r.bump(ctx, restaurantID, "dislikes", -1)
}

// AdjustNetAndWeekly adds delta to net_score and weekly_likes in a single
// UPDATE. Delta may be any integer, not just ±1; a reaction flip passes ±2.
func (r *ScoreRepository) AdjustNetAndWeekly(ctx context.Context, restaurantID uint64, delta int) error {
	return r.db.WithContext(ctx).
		Model(&db.Restaurant{}).
		Where("id = ?", restaurantID).
		UpdateColumns(map[string]interface{}{
			"net_score":    gorm.Expr("net_score + ?", delta),
			"weekly_likes": gorm.Expr("weekly_likes + ?", delta),
		}).Error
}

// ResetWeeklyLikes zeroes weekly_likes for every restaurant. Likes, dislikes
// and net_score are untouched. Bulk and unconditional: reactions in flight
// land before or after the reset depending on arrival order, so run it when
// the system is quiet.
func (r *ScoreRepository) ResetWeeklyLikes(ctx context.Context) error {
	return r.db.WithContext(ctx).Exec("UPDATE restaurants SET weekly_likes = 0").Error
}

// bump adjusts a single presence counter. CASE WHEN instead of GREATEST so
// the clamp works on both MySQL and SQLite. Column names come from the fixed
// callers above, never from input.
func (r *ScoreRepository) bump(ctx context.Context, restaurantID uint64, column string, delta int) error {
	expr := fmt.Sprintf("CASE WHEN %s + ? < 0 THEN 0 ELSE %s + ? END", column, column)
	return r.db.WithContext(ctx).
		Model(&db.Restaurant{}).
		Where("id = ?", restaurantID).
		UpdateColumn(column, gorm.Expr(expr, delta, delta)).Error
}
