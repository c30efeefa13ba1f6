package kv

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/vroommkart/storefront/pkg/config"
	"github.com/vroommkart/storefront/pkg/db"
	"github.com/vroommkart/storefront/pkg/db/models"
	"github.com/vroommkart/storefront/pkg/enums"
	"github.com/vroommkart/storefront/pkg/logger"
	"github.com/vroommkart/storefront/pkg/redis"
)

func runStoreContract(t *testing.T, store Backend) {
	t.Helper()
	ctx := context.Background()

	_, found, err := store.Get(ctx, "vroommkart_products_v3")
	require.NoError(t, err)
	assert.False(t, found, "fresh store must report missing keys")

	require.NoError(t, store.Set(ctx, "vroommkart_products_v3", `[{"id":"p1","name":"Ryōmen 宿儺"}]`))
	value, found, err := store.Get(ctx, "vroommkart_products_v3")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, `[{"id":"p1","name":"Ryōmen 宿儺"}]`, value)

	require.NoError(t, store.Set(ctx, "vroommkart_products_v3", `[]`))
	value, _, err = store.Get(ctx, "vroommkart_products_v3")
	require.NoError(t, err)
	assert.Equal(t, `[]`, value, "set must overwrite")

	_, found, err = store.Get(ctx, "vroommkart_orders_v3")
	require.NoError(t, err)
	assert.False(t, found, "keys are independent")

	require.NoError(t, store.Ping(ctx))
}

func TestMemoryStore(t *testing.T) {
	runStoreContract(t, NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "blobs")
	store, err := NewFileStore(dir)
	require.NoError(t, err)
	runStoreContract(t, store)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".tmp-", "temp files must not linger")
	}
}

func TestFileStoreSanitizesKeys(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Set(context.Background(), "../escape/key", "{}"))
	_, err = os.Stat(filepath.Join(dir, ".._escape_key.json"))
	assert.NoError(t, err)
}

func TestFileStoreHonorsCancelledContext(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, store.Set(ctx, "k", "v"))
}

func TestSQLStore(t *testing.T) {
	conn, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "kv.db")), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&models.KVEntry{}))

	store := NewSQLStore(db.NewFromConn(conn, enums.StorageBackendSQLite))
	runStoreContract(t, store)

	var count int64
	require.NoError(t, conn.Model(&models.KVEntry{}).Count(&count).Error)
	assert.EqualValues(t, 1, count, "upsert must not duplicate rows")
}

func TestRedisStore(t *testing.T) {
	store := NewRedisStore(redis.NewWithCmdable(newFakeRedis()))
	runStoreContract(t, store)
}

func TestOpen(t *testing.T) {
	logg := logger.Nop()

	t.Run("memory", func(t *testing.T) {
		cfg := &config.Config{Storage: config.StorageConfig{Backend: "memory"}}
		backend, err := Open(context.Background(), cfg, logg)
		require.NoError(t, err)
		assert.IsType(t, &MemoryStore{}, backend)
	})

	t.Run("file", func(t *testing.T) {
		cfg := &config.Config{Storage: config.StorageConfig{Backend: "file", Dir: t.TempDir()}}
		backend, err := Open(context.Background(), cfg, logg)
		require.NoError(t, err)
		assert.IsType(t, &FileStore{}, backend)
	})

	t.Run("sqlite with migrations", func(t *testing.T) {
		cfg := &config.Config{
			Storage: config.StorageConfig{Backend: "sqlite"},
			DB:      config.DBConfig{SQLitePath: filepath.Join(t.TempDir(), "store.db"), AutoMigrate: true},
		}
		backend, err := Open(context.Background(), cfg, logg)
		require.NoError(t, err)
		defer backend.Close()
		runStoreContract(t, backend)
	})

	t.Run("unknown", func(t *testing.T) {
		cfg := &config.Config{Storage: config.StorageConfig{Backend: "tape"}}
		_, err := Open(context.Background(), cfg, logg)
		assert.Error(t, err)
	})
}

type fakeRedis struct {
	data map[string]string
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}}
}

func (f *fakeRedis) Ping(context.Context) *goredis.StatusCmd {
	return goredis.NewStatusResult("PONG", nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value any, _ time.Duration) *goredis.StatusCmd {
	f.data[key] = fmt.Sprint(value)
	return goredis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Get(_ context.Context, key string) *goredis.StringCmd {
	v, ok := f.data[key]
	if !ok {
		return goredis.NewStringResult("", goredis.Nil)
	}
	return goredis.NewStringResult(v, nil)
}
