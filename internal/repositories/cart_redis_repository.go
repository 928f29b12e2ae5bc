package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"loja/internal/models"

	"github.com/go-redis/redis/v8"
)

const cartKeyPrefix = "loja:cart:"

// RedisCartRepository stores each cart as a JSON blob in redis, keyed by the
// client's cart ID. Entries are written without a TTL: a cart survives until
// the client clears it.
type RedisCartRepository struct {
	client *redis.Client
}

// NewRedisCartRepository creates a new instance of RedisCartRepository.
func NewRedisCartRepository(client *redis.Client) *RedisCartRepository {
	return &RedisCartRepository{
		client: client,
	}
}

// Get returns the cart stored under cartID, or a fresh empty cart if none
// exists yet.
func (r *RedisCartRepository) Get(ctx context.Context, cartID string) (*models.Cart, error) {
	data, err := r.client.Get(ctx, cartKeyPrefix+cartID).Bytes()
	if err == redis.Nil {
		return &models.Cart{ID: cartID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart %s: %w", cartID, err)
	}

	var cart models.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, fmt.Errorf("failed to decode cart %s: %w", cartID, err)
	}
	cart.ID = cartID
	return &cart, nil
}

// Save persists the cart under its ID.
func (r *RedisCartRepository) Save(ctx context.Context, cart *models.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to encode cart %s: %w", cart.ID, err)
	}
	if err := r.client.Set(ctx, cartKeyPrefix+cart.ID, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save cart %s: %w", cart.ID, err)
	}
	return nil
}

// Delete removes the stored cart, if any.
func (r *RedisCartRepository) Delete(ctx context.Context, cartID string) error {
	if err := r.client.Del(ctx, cartKeyPrefix+cartID).Err(); err != nil {
		return fmt.Errorf("failed to delete cart %s: %w", cartID, err)
	}
	return nil
}
