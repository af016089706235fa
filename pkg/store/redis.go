package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis key layout. History is a list trimmed to HistoryLimit; saved
// results and presets are hashes keyed by record ID.
const (
	redisKeyHistory = "dyeseq:history"
	redisKeySaved   = "dyeseq:saved"
	redisKeyPresets = "dyeseq:presets"
)

// RedisConfig configures the redis-backed store.
type RedisConfig struct {
	Addr     string // host:port, defaults to localhost:6379
	Password string
	DB       int
}

// RedisStore is a redis-backed store for server deployments where
// multiple instances share history and saved results.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to redis and verifies the connection with a
// ping before returning.
func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	if cfg.Addr == "" {
		cfg.Addr = "localhost:6379"
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect redis %s: %w", cfg.Addr, err)
	}
	return &RedisStore{client: client}, nil
}

func (s *RedisStore) AddHistory(ctx context.Context, rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	pipe := s.client.TxPipeline()
	pipe.LPush(ctx, redisKeyHistory, data)
	pipe.LTrim(ctx, redisKeyHistory, 0, HistoryLimit-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("push history: %w", err)
	}
	return nil
}

func (s *RedisStore) History(ctx context.Context, limit int) ([]Record, error) {
	n := clampLimit(limit)
	items, err := s.client.LRange(ctx, redisKeyHistory, 0, int64(n-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}
	recs := make([]Record, 0, len(items))
	for _, item := range items {
		var rec Record
		if json.Unmarshal([]byte(item), &rec) == nil {
			recs = append(recs, rec)
		}
	}
	return recs, nil
}

func (s *RedisStore) SaveResult(ctx context.Context, rec Record) error {
	return s.hashSet(ctx, redisKeySaved, rec.ID, rec)
}

func (s *RedisStore) SavedResults(ctx context.Context) ([]Record, error) {
	fields, err := s.client.HGetAll(ctx, redisKeySaved).Result()
	if err != nil {
		return nil, fmt.Errorf("read saved results: %w", err)
	}
	recs := make([]Record, 0, len(fields))
	for _, item := range fields {
		var rec Record
		if json.Unmarshal([]byte(item), &rec) == nil {
			recs = append(recs, rec)
		}
	}
	sortRecords(recs)
	return recs, nil
}

func (s *RedisStore) DeleteSaved(ctx context.Context, id string) error {
	return s.hashDel(ctx, redisKeySaved, id)
}

func (s *RedisStore) SavePreset(ctx context.Context, p Preset) error {
	return s.hashSet(ctx, redisKeyPresets, p.ID, p)
}

func (s *RedisStore) Presets(ctx context.Context) ([]Preset, error) {
	fields, err := s.client.HGetAll(ctx, redisKeyPresets).Result()
	if err != nil {
		return nil, fmt.Errorf("read presets: %w", err)
	}
	ps := make([]Preset, 0, len(fields))
	for _, item := range fields {
		var p Preset
		if json.Unmarshal([]byte(item), &p) == nil {
			ps = append(ps, p)
		}
	}
	sortPresets(ps)
	return ps, nil
}

func (s *RedisStore) Preset(ctx context.Context, id string) (Preset, error) {
	item, err := s.client.HGet(ctx, redisKeyPresets, id).Result()
	if err == redis.Nil {
		return Preset{}, ErrNotFound
	}
	if err != nil {
		return Preset{}, fmt.Errorf("read preset: %w", err)
	}
	var p Preset
	if err := json.Unmarshal([]byte(item), &p); err != nil {
		return Preset{}, fmt.Errorf("parse preset: %w", err)
	}
	return p, nil
}

func (s *RedisStore) DeletePreset(ctx context.Context, id string) error {
	return s.hashDel(ctx, redisKeyPresets, id)
}

// Close closes the redis client.
func (s *RedisStore) Close() error { return s.client.Close() }

func (s *RedisStore) hashSet(ctx context.Context, key, id string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if err := s.client.HSet(ctx, key, id, data).Err(); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) hashDel(ctx context.Context, key, id string) error {
	removed, err := s.client.HDel(ctx, key, id).Result()
	if err != nil {
		return fmt.Errorf("delete from %s: %w", key, err)
	}
	if removed == 0 {
		return ErrNotFound
	}
	return nil
}

var _ Store = (*RedisStore)(nil)
