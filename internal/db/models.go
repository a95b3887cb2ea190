package db

import (
	"time"
)

// User table. Login and session handling live upstream; this service only
// needs user rows as foreign-key targets for reactions.
type User struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement"`
	Username     string    `gorm:"uniqueIndex;size:64;not null"`
	Email        string    `gorm:"uniqueIndex;size:128;not null"`
	PasswordHash string    `gorm:"size:255;not null"`
	Active       bool      `gorm:"default:true"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

// Restaurant is the aggregate root for scoring. The four counters are derived
// state, maintained exclusively through the score repository:
//
//   - Likes/Dislikes: how many users currently hold each opinion; clamped ≥ 0.
//   - NetScore: running sum of every applied transition delta; may go negative.
//   - WeeklyLikes: same running sum, zeroed by the weekly admin reset.
type Restaurant struct {
	ID       uint64 `gorm:"primaryKey;autoIncrement"`
	Name     string `gorm:"size:128;not null;index"`
	Category string `gorm:"size:64"`
	Location string `gorm:"size:128"`
	Logo     string `gorm:"size:255"`

	Likes       int64 `gorm:"not null;default:0"`
	Dislikes    int64 `gorm:"not null;default:0"`
	NetScore    int64 `gorm:"not null;default:0;index:idx_restaurants_net_score,sort:desc"`
	WeeklyLikes int64 `gorm:"not null;default:0;index:idx_restaurants_weekly_likes,sort:desc"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// ReactionValue is the tri-state opinion a user holds about a restaurant.
// The numeric values double as the score mapping.
type ReactionValue int8

const (
	ReactionNone    ReactionValue = 0
	ReactionLike    ReactionValue = 1
	ReactionDislike ReactionValue = -1
)

// Score maps a reaction to its counter contribution.
func (v ReactionValue) Score() int { return int(v) }

func (v ReactionValue) String() string {
	switch v {
	case ReactionLike:
		return "like"
	case ReactionDislike:
		return "dislike"
	default:
		return "none"
	}
}

// Reaction is a user's current opinion about a restaurant — a snapshot row,
// not an event log. Composite PK (UserID, RestaurantID) guarantees at most
// one row per pair and makes the upsert an overwrite.
//
// Liked is nullable: a NULL value and a missing row both read back as
// ReactionNone. Rows are mutated in place on every like/dislike and deleted
// only by the bulk history-clear operations.
type Reaction struct {
	UserID       uint64    `gorm:"primaryKey;index:idx_reactions_user_updated,priority:1"`
	RestaurantID uint64    `gorm:"primaryKey"`
	Liked        *int8     `gorm:"type:tinyint"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime;index:idx_reactions_user_updated,priority:2,sort:desc"`
}

// Value normalizes the nullable column into the tri-state.
func (r *Reaction) Value() ReactionValue {
	if r.Liked == nil {
		return ReactionNone
	}
	if *r.Liked > 0 {
		return ReactionLike
	}
	return ReactionDislike
}
