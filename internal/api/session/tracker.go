// Package session remembers which media kind a user was last browsing, so
// the genre and creator listings can point back at the right list endpoint
// and count media of that kind.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultKind is used when nothing was chosen yet.
const DefaultKind = "book"

// kindRedirects maps each recognized kind to its list endpoint. comic and
// anime are virtual kinds layered over books and series.
var kindRedirects = map[string]string{
	"book":   "/api/books",
	"film":   "/api/films",
	"series": "/api/series",
	"comic":  "/api/books?type=Comics",
	"anime":  "/api/series?type=Anime",
}

// Store persists the chosen kind per user between requests.
type Store interface {
	Get(ctx context.Context, userID string) (string, error)
	Set(ctx context.Context, userID, kind string) error
}

// RedisStore keeps the chosen kind in Redis under one key per user.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func (s *RedisStore) key(userID string) string {
	return "media_chosen:" + userID
}

func (s *RedisStore) Get(ctx context.Context, userID string) (string, error) {
	val, err := s.rdb.Get(ctx, s.key(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get media kind: %w", err)
	}
	return val, nil
}

func (s *RedisStore) Set(ctx context.Context, userID, kind string) error {
	if err := s.rdb.Set(ctx, s.key(userID), kind, s.ttl).Err(); err != nil {
		return fmt.Errorf("set media kind: %w", err)
	}
	return nil
}

// Tracker resolves the active media kind from the request parameter and the
// persisted per-user state.
type Tracker struct {
	store Store
}

func NewTracker(store Store) *Tracker {
	return &Tracker{store: store}
}

// Resolve picks the active kind. A recognized `media` parameter wins and is
// persisted. An unrecognized parameter is coerced to "book" and the coerced
// value is persisted, overwriting any prior choice. With no parameter the
// stored value applies, else "book".
func (t *Tracker) Resolve(ctx context.Context, userID, mediaParam string) (kind, redirect string, err error) {
	switch {
	case mediaParam != "":
		kind = mediaParam
		if _, ok := kindRedirects[kind]; !ok {
			kind = DefaultKind
		}
		if err := t.store.Set(ctx, userID, kind); err != nil {
			return "", "", err
		}
	default:
		stored, err := t.store.Get(ctx, userID)
		if err != nil {
			return "", "", err
		}
		kind = stored
		if _, ok := kindRedirects[kind]; !ok {
			kind = DefaultKind
		}
	}
	return kind, kindRedirects[kind], nil
}
