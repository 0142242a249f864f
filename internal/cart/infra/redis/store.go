package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dwikikusuma/gamecock-shop/internal/cart/domain"
)

const defaultTTL = 7 * 24 * time.Hour

// Store keeps one JSON document per session under "cart:<session>".
// Every Put refreshes the TTL so active carts survive, abandoned ones
// expire on their own.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
	log *slog.Logger
}

func NewStore(rdb *redis.Client, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{
		rdb: rdb,
		ttl: defaultTTL,
		log: log,
	}
}

func key(sessionID string) string {
	return "cart:" + sessionID
}

func (s *Store) Get(ctx context.Context, sessionID string) (domain.Cart, error) {
	data, err := s.rdb.Get(ctx, key(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Cart{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cart %s: %w", sessionID, err)
	}

	// Decode entry by entry: one corrupt entry should not take the
	// whole cart down with it.
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		s.log.Warn("discarding unreadable cart payload",
			slog.String("session_id", sessionID),
			slog.Any("err", err),
		)
		return domain.Cart{}, nil
	}

	cart := make(domain.Cart, len(raw))
	for productID, entry := range raw {
		var item domain.Item
		if err := json.Unmarshal(entry, &item); err != nil {
			s.log.Warn("skipping corrupt cart entry",
				slog.String("session_id", sessionID),
				slog.String("product_id", productID),
				slog.Any("err", err),
			)
			continue
		}
		cart[productID] = item
	}
	return cart, nil
}

func (s *Store) Put(ctx context.Context, sessionID string, cart domain.Cart) error {
	if len(cart) == 0 {
		if err := s.rdb.Del(ctx, key(sessionID)).Err(); err != nil {
			return fmt.Errorf("failed to clear cart %s: %w", sessionID, err)
		}
		return nil
	}

	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to encode cart %s: %w", sessionID, err)
	}
	if err := s.rdb.Set(ctx, key(sessionID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write cart %s: %w", sessionID, err)
	}
	return nil
}
