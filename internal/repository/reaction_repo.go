package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/idktogo/idk-to-go/internal/db"
)

// ReactionRepository provides data access for the per-(user, restaurant)
// reaction snapshot rows. It never touches restaurant counters; those belong
// to ScoreRepository.
type ReactionRepository struct {
	db *gorm.DB
}

// NewReactionRepository creates a repository bound to the given DB connection.
func NewReactionRepository(database *gorm.DB) *ReactionRepository {
	return &ReactionRepository{db: database}
}

// Tx returns a copy of the repository bound to the given transaction handle.
func (r *ReactionRepository) Tx(tx *gorm.DB) *ReactionRepository {
	return &ReactionRepository{db: tx}
}

// Get returns the user's current reaction to a restaurant. A missing row and
// a row with a NULL value both read back as ReactionNone.
func (r *ReactionRepository) Get(ctx context.Context, userID, restaurantID uint64) (db.ReactionValue, error) {
	var row db.Reaction
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return db.ReactionNone, nil
	}
	if err != nil {
		return db.ReactionNone, err
	}
	return row.Value(), nil
}

// Upsert inserts or overwrites the reaction row for (userID, restaurantID).
//
// Behavior:
//   - The composite PK guarantees a single row per pair.
//   - Writing the same value again leaves the row identical apart from the
//     refreshed updated_at; callers cannot tell insert from update.
func (r *ReactionRepository) Upsert(ctx context.Context, userID, restaurantID uint64, value db.ReactionValue) error {
	row := db.Reaction{
		UserID:       userID,
		RestaurantID: restaurantID,
	}
	if value != db.ReactionNone {
		v := int8(value)
		row.Liked = &v
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "restaurant_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"liked", "updated_at"}),
		}).
		Create(&row).Error
}

// ListByUser returns all of a user's reaction rows, most recently updated
// first. Each call runs a fresh query.
func (r *ReactionRepository) ListByUser(ctx context.Context, userID uint64) ([]db.Reaction, error) {
	var rows []db.Reaction
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC, restaurant_id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// DeleteForUser removes every reaction row belonging to userID and returns
// how many rows were removed. Restaurant counters are left untouched.
func (r *ReactionRepository) DeleteForUser(ctx context.Context, userID uint64) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&db.Reaction{})
	return res.RowsAffected, res.Error
}

// DeleteAll removes every reaction row. Restaurant counters are left
// untouched.
func (r *ReactionRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Exec("DELETE FROM reactions").Error
}
