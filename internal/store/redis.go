package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/flight-booking/flight-booking-service/internal/domain"
)

// RedisConfig holds the Redis connection settings.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// DefaultRedisConfig returns local-development defaults.
func DefaultRedisConfig() RedisConfig {
	return RedisConfig{
		Addr: "localhost:6379",
		TTL:  30 * 24 * time.Hour,
	}
}

// RedisStore implements BookingStore on Redis.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore connects to Redis and verifies the connection with a ping.
func NewRedisStore(cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis at %s: %w", cfg.Addr, err)
	}

	return &RedisStore{
		client: client,
		ttl:    cfg.TTL,
	}, nil
}

// Save implements BookingStore.Save.
func (s *RedisStore) Save(ctx context.Context, booking domain.BookingConfirmation) error {
	data, err := json.Marshal(booking)
	if err != nil {
		return fmt.Errorf("encode booking %s: %w", booking.Reference, err)
	}
	return s.client.Set(ctx, Key(booking.Reference), data, s.ttl).Err()
}

// Get implements BookingStore.Get.
func (s *RedisStore) Get(ctx context.Context, reference string) (domain.BookingConfirmation, error) {
	data, err := s.client.Get(ctx, Key(reference)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.BookingConfirmation{}, domain.ErrBookingNotFound
		}
		return domain.BookingConfirmation{}, fmt.Errorf("read booking %s: %w", reference, err)
	}

	var booking domain.BookingConfirmation
	if err := json.Unmarshal(data, &booking); err != nil {
		return domain.BookingConfirmation{}, fmt.Errorf("decode booking %s: %w", reference, err)
	}
	return booking, nil
}

// Close implements BookingStore.Close.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// Ensure RedisStore implements BookingStore at compile time.
var _ BookingStore = (*RedisStore)(nil)
