package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/hirotachi/rizz-cli-chat/pkg/chat"
	"github.com/hirotachi/rizz-cli-chat/pkg/config"
)

// Store keeps the whole chat dataset as one JSON blob under a single key.
type Store struct {
	kv  KV
	key string
	log *slog.Logger
}

func New(kv KV, key string, log *slog.Logger) *Store {
	return &Store{kv: kv, key: key, log: log.With("component", "storage", "key", key)}
}

// Open builds the store selected by cfg.Store.
func Open(ctx context.Context, cfg config.Config, log *slog.Logger) (*Store, error) {
	var kv KV
	var err error
	switch cfg.Store {
	case config.StoreRedis:
		kv, err = DialRedis(ctx, cfg.RedisAddr)
	case config.StoreMemory:
		log.Info("using temporary in-memory redis, nothing will survive a restart")
		kv, err = NewMemoryKV(ctx)
	default:
		kv, err = OpenBadger(filepath.Join(cfg.DataDir, "db"), log)
	}
	if err != nil {
		return nil, err
	}
	return New(kv, cfg.StorageKey, log), nil
}

// Load never fails: anything missing, unreadable or malformed yields the
// seed dataset.
func (s *Store) Load(ctx context.Context) chat.Data {
	raw, err := s.kv.Get(ctx, s.key)
	if errors.Is(err, ErrNotFound) {
		s.log.Info("no stored state, using seed data")
		return s.seed()
	}
	if err != nil {
		s.log.Warn("failed to read stored state, using seed data", "error", err)
		return s.seed()
	}
	data, err := Decode(raw)
	if err != nil {
		s.log.Warn("stored state is malformed, using seed data", "error", err, "size", len(raw))
		return s.seed()
	}
	s.log.Debug("state loaded", "servers", len(data.Servers), "size", len(raw))
	return data
}

// Save writes the full dataset. Errors are not retried.
func (s *Store) Save(ctx context.Context, data chat.Data) error {
	raw, err := Encode(data)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, s.key, raw); err != nil {
		return fmt.Errorf("could not save state: %w", err)
	}
	s.log.Debug("state saved", "size", len(raw))
	return nil
}

// Reset overwrites the stored state with the seed dataset.
func (s *Store) Reset(ctx context.Context) (chat.Data, error) {
	data := s.seed()
	if err := s.Save(ctx, data); err != nil {
		return chat.Data{}, err
	}
	return data, nil
}

func (s *Store) Close() error {
	return s.kv.Close()
}

func (s *Store) seed() chat.Data {
	data := chat.Seed()
	data.Repair()
	return data
}

func Encode(data chat.Data) ([]byte, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("could not marshal state: %w", err)
	}
	return raw, nil
}

// Decode parses and validates a stored blob and repairs missing message
// sequences.
func Decode(raw []byte) (chat.Data, error) {
	var data chat.Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return chat.Data{}, fmt.Errorf("%w: %s", chat.ErrInvalidData, err)
	}
	if err := data.Validate(); err != nil {
		return chat.Data{}, err
	}
	data.Repair()
	return data, nil
}
