package storage

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/alicebob/miniredis"
	"github.com/go-redis/redis/v8"
	"github.com/hirotachi/rizz-cli-chat/pkg/chat"
	"github.com/hirotachi/rizz-cli-chat/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "rizz_state_v1"

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func newRedisStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	_, err = client.Ping(context.TODO()).Result()
	require.NoError(t, err)

	store := New(NewRedisKV(client), testKey, discard)
	t.Cleanup(func() { _ = store.Close() })
	return store, mr
}

func newBadgerStore(t *testing.T) *Store {
	t.Helper()
	kv, err := OpenBadger(t.TempDir(), discard)
	require.NoError(t, err)
	store := New(kv, testKey, discard)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func seeded() chat.Data {
	data := chat.Seed()
	data.Repair()
	return data
}

func TestStore_Load_FallsBackToSeed(t *testing.T) {
	ctx := context.TODO()
	cases := map[string]string{
		"not json":          "{servers: oops",
		"wrong shape":       `{"servers": {"id": "s1"}}`,
		"null":              "null",
		"empty object":      "{}",
		"server without id": `{"servers":[{"name":"x"}],"channels":{},"messages":{}}`,
		"bad timestamp":     `{"servers":[],"channels":{},"messages":{"c1":[{"id":"m1","user":"a","text":"b","created":"yesterday"}]}}`,
	}

	t.Run("missing key", func(t *testing.T) {
		store, _ := newRedisStore(t)
		assert.Equal(t, seeded(), store.Load(ctx))
	})

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			store, mr := newRedisStore(t)
			require.NoError(t, mr.Set(testKey, raw))
			assert.Equal(t, seeded(), store.Load(ctx))
		})
	}
}

func TestStore_Load_RepairsMessages(t *testing.T) {
	store, mr := newRedisStore(t)
	raw := `{"servers":[{"id":"s1","name":"Rizz Hub","short":"RH"}],
		"channels":{"s1":[{"id":"c1","name":"geral","topic":""}]},"messages":{}}`
	require.NoError(t, mr.Set(testKey, raw))

	data := store.Load(context.TODO())
	require.Len(t, data.Servers, 1)
	messages, ok := data.Messages["c1"]
	assert.True(t, ok)
	assert.Empty(t, messages)
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.TODO()
	backends := map[string]func(t *testing.T) *Store{
		"redis": func(t *testing.T) *Store {
			store, _ := newRedisStore(t)
			return store
		},
		"badger": newBadgerStore,
	}

	for name, open := range backends {
		t.Run(name, func(t *testing.T) {
			store := open(t)

			state := chat.NewState(store.Load(ctx))
			_, err := state.AppendMessage("c1", "<b>olá</b>", chat.DefaultAuthor)
			require.NoError(t, err)
			_, err = state.AddServer("Clube do Livro")
			require.NoError(t, err)
			require.NoError(t, store.Save(ctx, state.Data))

			first := store.Load(ctx)
			assert.Equal(t, state.Data, first)

			require.NoError(t, store.Save(ctx, first))
			assert.Equal(t, first, store.Load(ctx))
		})
	}
}

func TestStore_Reset(t *testing.T) {
	ctx := context.TODO()
	store := newBadgerStore(t)

	state := chat.NewState(store.Load(ctx))
	_, err := state.AddServer("Temporário")
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, state.Data))
	require.Len(t, store.Load(ctx).Servers, 4)

	data, err := store.Reset(ctx)
	require.NoError(t, err)
	assert.Equal(t, seeded(), data)
	assert.Equal(t, seeded(), store.Load(ctx))
}

func TestStore_Save_PropagatesWriteFailure(t *testing.T) {
	store, mr := newRedisStore(t)
	mr.Close()
	assert.Error(t, store.Save(context.TODO(), seeded()))
}

func TestBadgerKV_NotFound(t *testing.T) {
	kv, err := OpenBadger(t.TempDir(), discard)
	require.NoError(t, err)
	defer kv.Close()

	_, err = kv.Get(context.TODO(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOpen(t *testing.T) {
	ctx := context.TODO()

	t.Run("memory", func(t *testing.T) {
		store, err := Open(ctx, config.Config{Store: config.StoreMemory, StorageKey: testKey}, discard)
		require.NoError(t, err)
		defer store.Close()
		require.NoError(t, store.Save(ctx, seeded()))
		assert.Equal(t, seeded(), store.Load(ctx))
	})

	t.Run("badger", func(t *testing.T) {
		dir := t.TempDir()
		cfg := config.Config{Store: config.StoreBadger, DataDir: dir, StorageKey: testKey}
		store, err := Open(ctx, cfg, discard)
		require.NoError(t, err)
		state := chat.NewState(store.Load(ctx))
		_, err = state.AppendMessage("c5", "persistido", chat.DefaultAuthor)
		require.NoError(t, err)
		require.NoError(t, store.Save(ctx, state.Data))
		require.NoError(t, store.Close())

		reopened, err := Open(ctx, cfg, discard)
		require.NoError(t, err)
		defer reopened.Close()
		assert.Len(t, reopened.Load(ctx).Messages["c5"], 1)
	})

	t.Run("unreachable redis", func(t *testing.T) {
		_, err := Open(ctx, config.Config{Store: config.StoreRedis, RedisAddr: "127.0.0.1:1", StorageKey: testKey}, discard)
		assert.Error(t, err)
	})
}
