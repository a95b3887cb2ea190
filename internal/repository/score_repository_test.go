package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/idktogo/idk-to-go/internal/db"
	"github.com/idktogo/idk-to-go/internal/repository"
)

func seedRestaurant(t *testing.T, gdb *gorm.DB, id uint64) {
	t.Helper()
	require.NoError(t, gdb.Create(&db.Restaurant{ID: id, Name: "Sushi Go"}).Error)
}

func getRestaurant(t *testing.T, gdb *gorm.DB, id uint64) db.Restaurant {
	t.Helper()
	var row db.Restaurant
	require.NoError(t, gdb.First(&row, id).Error)
	return row
}

func TestIncrementAndDecrementLikes(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	seedRestaurant(t, gdb, 1)
	repo := repository.NewScoreRepository(gdb)

	require.NoError(t, repo.IncrementLikes(ctx, 1))
	require.NoError(t, repo.IncrementLikes(ctx, 1))
	assert.Equal(t, int64(2), getRestaurant(t, gdb, 1).Likes)

	require.NoError(t, repo.DecrementLikes(ctx, 1))
	assert.Equal(t, int64(1), getRestaurant(t, gdb, 1).Likes)
}

func TestDecrementClampsAtZero(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	seedRestaurant(t, gdb, 1)
	repo := repository.NewScoreRepository(gdb)

	require.NoError(t, repo.DecrementLikes(ctx, 1))
	require.NoError(t, repo.DecrementDislikes(ctx, 1))

	row := getRestaurant(t, gdb, 1)
	assert.Equal(t, int64(0), row.Likes)
	assert.Equal(t, int64(0), row.Dislikes)
}

func TestAdjustNetAndWeekly(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	seedRestaurant(t, gdb, 1)
	repo := repository.NewScoreRepository(gdb)

	require.NoError(t, repo.AdjustNetAndWeekly(ctx, 1, +1))
	require.NoError(t, repo.AdjustNetAndWeekly(ctx, 1, -2))

	row := getRestaurant(t, gdb, 1)
	assert.Equal(t, int64(-1), row.NetScore)
	assert.Equal(t, int64(-1), row.WeeklyLikes)
}

func TestAdjustNetAndWeeklyGoesNegative(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	seedRestaurant(t, gdb, 1)
	repo := repository.NewScoreRepository(gdb)

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.AdjustNetAndWeekly(ctx, 1, -2))
	}
	assert.Equal(t, int64(-6), getRestaurant(t, gdb, 1).NetScore)
}

func TestResetWeeklyLikesOnly(t *testing.T) {
	ctx := context.Background()
	gdb := setupTestDB(t)
	seedRestaurant(t, gdb, 1)
	seedRestaurant2 := db.Restaurant{ID: 2, Name: "Pasta Republic",
		Likes: 3, Dislikes: 1, NetScore: 2, WeeklyLikes: 2}
	require.NoError(t, gdb.Create(&seedRestaurant2).Error)

	repo := repository.NewScoreRepository(gdb)
	require.NoError(t, repo.IncrementLikes(ctx, 1))
	require.NoError(t, repo.AdjustNetAndWeekly(ctx, 1, +1))

	require.NoError(t, repo.ResetWeeklyLikes(ctx))

	one := getRestaurant(t, gdb, 1)
	assert.Equal(t, int64(0), one.WeeklyLikes)
	assert.Equal(t, int64(1), one.Likes)
	assert.Equal(t, int64(1), one.NetScore)

	two := getRestaurant(t, gdb, 2)
	assert.Equal(t, int64(0), two.WeeklyLikes)
	assert.Equal(t, int64(3), two.Likes)
	assert.Equal(t, int64(1), two.Dislikes)
	assert.Equal(t, int64(2), two.NetScore)
}
