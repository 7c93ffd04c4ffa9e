package cache_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/foooood/storefront/internal/cache"
	"github.com/foooood/storefront/internal/config"
	"github.com/foooood/storefront/internal/models"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (cache.Cache, redismock.ClientMock, *config.Session) {
	t.Helper()

	client, mock := redismock.NewClientMock()
	cfg := &config.Session{
		Enabled: true,
		TTL:     10 * time.Minute,
	}
	sessionCache := cache.NewRedisCache(client, cfg)

	return sessionCache, mock, cfg
}

func snapshotFixture() models.CartSnapshot {
	return models.CartSnapshot{
		Food: models.FoodCartView{
			TotalItems: 2,
			Bill:       models.Bill{ItemTotal: 500, Taxes: 25, GrandTotal: 525},
		},
		SavedAt: time.Date(2025, 8, 17, 12, 0, 0, 0, time.UTC),
	}
}

func TestGet(t *testing.T) {
	t.Run("Success - Snapshot Found", func(t *testing.T) {
		// Arrange
		sessionCache, mock, _ := setup(t)
		snapshot := snapshotFixture()
		jsonData, err := json.Marshal(snapshot)
		require.NoError(t, err)

		var result models.CartSnapshot

		mock.ExpectGet(cache.CartSnapshotKey).SetVal(string(jsonData))

		// Act
		found, err := sessionCache.Get(t.Context(), cache.CartSnapshotKey, &result)

		// Assert
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, snapshot.Food.TotalItems, result.Food.TotalItems)
		assert.Equal(t, snapshot.Food.Bill, result.Food.Bill)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Cache Miss", func(t *testing.T) {
		// Arrange
		sessionCache, mock, _ := setup(t)

		var result models.CartSnapshot

		mock.ExpectGet(cache.CartSnapshotKey).SetErr(redis.Nil)

		// Act
		found, err := sessionCache.Get(t.Context(), cache.CartSnapshotKey, &result)

		// Assert
		require.NoError(t, err, "a miss is not an error")
		assert.False(t, found)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		// Arrange
		sessionCache, mock, _ := setup(t)
		expectedErr := errors.New("redis connection error")

		var result models.CartSnapshot

		mock.ExpectGet(cache.CartSnapshotKey).SetErr(expectedErr)

		// Act
		found, err := sessionCache.Get(t.Context(), cache.CartSnapshotKey, &result)

		// Assert
		require.Error(t, err)
		assert.False(t, found)
		assert.ErrorIs(t, err, expectedErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSet(t *testing.T) {
	t.Run("Success - With Specific TTL", func(t *testing.T) {
		// Arrange
		sessionCache, mock, _ := setup(t)
		snapshot := snapshotFixture()
		jsonData, err := json.Marshal(snapshot)
		require.NoError(t, err)

		specificTTL := 5 * time.Minute
		mock.ExpectSet(cache.CartSnapshotKey, jsonData, specificTTL).SetVal("OK")

		// Act
		err = sessionCache.Set(t.Context(), cache.CartSnapshotKey, snapshot, specificTTL)

		// Assert
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Zero TTL Falls Back To Config", func(t *testing.T) {
		// Arrange
		sessionCache, mock, cfg := setup(t)
		snapshot := snapshotFixture()
		jsonData, err := json.Marshal(snapshot)
		require.NoError(t, err)

		mock.ExpectSet(cache.CartSnapshotKey, jsonData, cfg.TTL).SetVal("OK")

		// Act
		err = sessionCache.Set(t.Context(), cache.CartSnapshotKey, snapshot, 0)

		// Assert
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		// Arrange
		sessionCache, mock, _ := setup(t)
		snapshot := snapshotFixture()
		jsonData, err := json.Marshal(snapshot)
		require.NoError(t, err)

		expectedErr := errors.New("redis SET failed")
		mock.ExpectSet(cache.CartSnapshotKey, jsonData, time.Minute).SetErr(expectedErr)

		// Act
		err = sessionCache.Set(t.Context(), cache.CartSnapshotKey, snapshot, time.Minute)

		// Assert
		require.Error(t, err)
		assert.ErrorIs(t, err, expectedErr)
		assert.Contains(t, err.Error(), fmt.Sprintf("failed to set key %s in redis", cache.CartSnapshotKey))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDelete(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		sessionCache, mock, _ := setup(t)

		mock.ExpectDel(cache.CartSnapshotKey).SetVal(1)

		// Act
		err := sessionCache.Delete(t.Context(), cache.CartSnapshotKey)

		// Assert
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestKey(t *testing.T) {
	assert.Equal(t, "session:carts", cache.Key(cache.SessionKeyPrefix, "carts"))
	assert.Equal(t, cache.CartSnapshotKey, cache.Key(cache.SessionKeyPrefix, "carts"))
}
