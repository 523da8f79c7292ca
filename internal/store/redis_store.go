package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/paislab/pais-api/internal/errs"
	"github.com/paislab/pais-api/internal/models"
	"github.com/redis/go-redis/v9"
)

// RedisStore implements Store using Redis
// Useful when several instances of the API need to share one favorites set
//
// Key format: favorito:<region>:<name>
// Example: favorito:Americas:Chile
// Value: JSON-encoded Country
type RedisStore struct {
	client *redis.Client
	ctx    context.Context
}

// NewRedisStore creates a new Redis favorites store
//
// Parameters:
//   - addr: Redis server address (e.g., "localhost:6379")
//   - password: Redis password (empty string if no password)
//   - db: Redis database number (0-15, default is 0)
//
// Returns:
//   - *RedisStore: pointer to the created store
//   - error: any error that occurred during connection
func NewRedisStore(addr, password string, db int) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx := context.Background()

	// Test the connection
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStore{
		client: client,
		ctx:    ctx,
	}, nil
}

// favoriteKey builds the Redis key for a (region, name) pair
func favoriteKey(region, name string) string {
	return fmt.Sprintf("favorito:%s:%s", region, name)
}

// Add implements the Store interface method
// SETNX makes the existence check and the write a single atomic operation,
// so concurrent adds of the same country cannot both succeed.
func (s *RedisStore) Add(country *models.Country) (*models.Country, error) {
	data, err := json.Marshal(country)
	if err != nil {
		return nil, fmt.Errorf("failed to encode favorite: %w", err)
	}

	created, err := s.client.SetNX(s.ctx, favoriteKey(country.Region, country.Name), data, 0).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to store favorite: %w", err)
	}
	if !created {
		return nil, errs.Conflict("País ya está en favoritos")
	}

	return country, nil
}

// ListGroupedByRegion implements the Store interface method
func (s *RedisStore) ListGroupedByRegion() (models.Favorites, error) {
	keys, err := s.client.Keys(s.ctx, "favorito:*").Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}

	grouped := models.Favorites{}
	for _, key := range keys {
		// favorito:<region>:<name>
		parts := strings.SplitN(key, ":", 3)
		if len(parts) != 3 {
			continue
		}
		region, name := parts[1], parts[2]
		grouped[region] = append(grouped[region], name)
	}

	return grouped, nil
}

// Remove implements the Store interface method
// The region is unknown at delete time, so every region namespace is
// searched, same as the file layout.
func (s *RedisStore) Remove(name string) (bool, error) {
	keys, err := s.client.Keys(s.ctx, fmt.Sprintf("favorito:*:%s", name)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to search favorites: %w", err)
	}

	for _, key := range keys {
		// The pattern can over-match names that merely end alike, verify the
		// name segment exactly before deleting
		parts := strings.SplitN(key, ":", 3)
		if len(parts) != 3 || parts[2] != name {
			continue
		}

		if err := s.client.Del(s.ctx, key).Err(); err != nil {
			return false, fmt.Errorf("failed to delete favorite: %w", err)
		}
		return true, nil
	}

	return false, nil
}

// Close closes the Redis connection
// Should be called when the application shuts down
func (s *RedisStore) Close() error {
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}
