package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/idktogo/idk-to-go/internal/db"
)

// RestaurantRepository is the read side of the restaurant table. Counter
// writes live in ScoreRepository.
type RestaurantRepository struct {
	db *gorm.DB
}

// NewRestaurantRepository creates a repository bound to the given DB connection.
func NewRestaurantRepository(database *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{db: database}
}

// GetByID fetches one restaurant row.
func (r *RestaurantRepository) GetByID(ctx context.Context, id uint64) (*db.Restaurant, error) {
	var row db.Restaurant
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// List returns all restaurants ordered by name.
func (r *RestaurantRepository) List(ctx context.Context) ([]db.Restaurant, error) {
	var rows []db.Restaurant
	err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error
	return rows, err
}

// TopByWeeklyLikes returns up to limit restaurants ordered by weekly_likes.
// ID is the tiebreaker so pages are stable between identical scores.
func (r *RestaurantRepository) TopByWeeklyLikes(ctx context.Context, limit int) ([]db.Restaurant, error) {
	var rows []db.Restaurant
	err := r.db.WithContext(ctx).
		Order("weekly_likes DESC, id ASC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

// TopByNetScore returns up to limit restaurants ordered by net_score.
func (r *RestaurantRepository) TopByNetScore(ctx context.Context, limit int) ([]db.Restaurant, error) {
	var rows []db.Restaurant
	err := r.db.WithContext(ctx).
		Order("net_score DESC, id ASC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}
