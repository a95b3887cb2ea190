package history_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/idktogo/idk-to-go/internal/app"
	"github.com/idktogo/idk-to-go/internal/cache"
	"github.com/idktogo/idk-to-go/internal/config"
	"github.com/idktogo/idk-to-go/internal/db"
	svcErr "github.com/idktogo/idk-to-go/internal/errors"
	"github.com/idktogo/idk-to-go/internal/service/history"
	"github.com/idktogo/idk-to-go/internal/service/reaction"
)

func setupAppCtx(t *testing.T) *app.AppContext {
	t.Helper()

	dbName := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dbName), &gorm.Config{
		NowFunc:                func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, gdb.AutoMigrate(&db.User{}, &db.Restaurant{}, &db.Reaction{}))
	require.NoError(t, db.SeedMinimalData(gdb))

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(func() { mr.Close() })

	cfg := config.New()
	cfg.Redis.Addr = mr.Addr()

	return app.New(gdb, cache.NewRedisCache(cfg), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// TestListAfterFlipHasSingleEntry drives like-then-dislike through the engine
// and expects a single dislike entry: the snapshot row is mutated in place,
// never appended.
func TestListAfterFlipHasSingleEntry(t *testing.T) {
	ctx := context.Background()
	appCtx := setupAppCtx(t)
	engine := reaction.NewService(appCtx, true)
	svc := history.NewService(appCtx)

	require.NoError(t, engine.Like(ctx, 1, 1))
	require.NoError(t, engine.Like(ctx, 1, 1))
	require.NoError(t, engine.Dislike(ctx, 1, 1))

	entries, err := svc.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, uint64(1), entries[0].RestaurantID)
	assert.Equal(t, "dislike", entries[0].Value)
}

// TestClearLeavesCountersAlone removes a user's history and checks the
// restaurant counters still reflect the transitions that were applied.
func TestClearLeavesCountersAlone(t *testing.T) {
	ctx := context.Background()
	appCtx := setupAppCtx(t)
	engine := reaction.NewService(appCtx, true)
	svc := history.NewService(appCtx)

	require.NoError(t, engine.Like(ctx, 1, 1))

	require.NoError(t, svc.Clear(ctx, 1))

	entries, err := svc.ListByUser(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, entries)

	var row db.Restaurant
	require.NoError(t, appCtx.DB.First(&row, 1).Error)
	assert.Equal(t, int64(1), row.Likes)
	assert.Equal(t, int64(1), row.NetScore)
}

func TestClearOnlyTargetsUser(t *testing.T) {
	ctx := context.Background()
	appCtx := setupAppCtx(t)
	engine := reaction.NewService(appCtx, true)
	svc := history.NewService(appCtx)

	require.NoError(t, engine.Like(ctx, 1, 1))
	require.NoError(t, engine.Dislike(ctx, 3, 1))

	require.NoError(t, svc.Clear(ctx, 1))

	entries, err := svc.ListByUser(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestClearAll(t *testing.T) {
	ctx := context.Background()
	appCtx := setupAppCtx(t)
	engine := reaction.NewService(appCtx, true)
	svc := history.NewService(appCtx)

	require.NoError(t, engine.Like(ctx, 1, 1))
	require.NoError(t, engine.Dislike(ctx, 3, 2))

	require.NoError(t, svc.ClearAll(ctx))

	var count int64
	require.NoError(t, appCtx.DB.Model(&db.Reaction{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestListByUserRejectsZeroID(t *testing.T) {
	ctx := context.Background()
	svc := history.NewService(setupAppCtx(t))

	_, err := svc.ListByUser(ctx, 0)
	assert.ErrorIs(t, err, svcErr.ErrInvalidArgument)
}
