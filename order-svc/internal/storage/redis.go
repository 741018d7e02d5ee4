package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"menu-order/order-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	cartKeyPrefix     = "cart-storage:"
	languageKeyPrefix = "language-storage:"
)

// RedisSessionStore keeps each session's cart and language under fixed key
// names, the server-side stand-in for the browser's local storage.
type RedisSessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{Client: client, TTL: ttl}
}

func (s *RedisSessionStore) CartKey(sessionID string) string {
	return cartKeyPrefix + sessionID
}

func (s *RedisSessionStore) LanguageKey(sessionID string) string {
	return languageKeyPrefix + sessionID
}

func (s *RedisSessionStore) LoadCart(ctx context.Context, sessionID string) ([]domain.LineItem, error) {
	raw, err := s.Client.Get(ctx, s.CartKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}

	var items []domain.LineItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	return items, nil
}

func (s *RedisSessionStore) SaveCart(ctx context.Context, sessionID string, items []domain.LineItem) error {
	if len(items) == 0 {
		if err := s.Client.Del(ctx, s.CartKey(sessionID)).Err(); err != nil {
			return fmt.Errorf("clear cart: %w", err)
		}
		return nil
	}

	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := s.Client.Set(ctx, s.CartKey(sessionID), payload, s.TTL).Err(); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

// LoadLanguage falls back to the default language when nothing valid is stored.
func (s *RedisSessionStore) LoadLanguage(ctx context.Context, sessionID string) (domain.Language, error) {
	raw, err := s.Client.Get(ctx, s.LanguageKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return domain.DefaultLanguage, nil
	}
	if err != nil {
		return domain.DefaultLanguage, fmt.Errorf("load language: %w", err)
	}
	lang, ok := domain.ParseLanguage(raw)
	if !ok {
		return domain.DefaultLanguage, nil
	}
	return lang, nil
}

func (s *RedisSessionStore) SaveLanguage(ctx context.Context, sessionID string, lang domain.Language) error {
	if err := s.Client.Set(ctx, s.LanguageKey(sessionID), string(lang), s.TTL).Err(); err != nil {
		return fmt.Errorf("save language: %w", err)
	}
	return nil
}
