package cache

import (
	"context"
	"time"

	"github.com/spacesedan/postcraft/internal/clients"
	"github.com/valkey-io/valkey-go"
)

const valkeyRetries = 3

type ValkeyStore struct {
	vc *clients.ValkeyClient
}

func NewValkeyStore(vc *clients.ValkeyClient) *ValkeyStore {
	return &ValkeyStore{vc: vc}
}

func (s *ValkeyStore) Get(ctx context.Context, key string) (string, bool, error) {
	res := s.vc.DoWithRetry(ctx, func(b valkey.Builder) valkey.Completed {
		return b.Get().Key(key).Build()
	}, valkeyRetries)
	value, err := res.ToString()
	if valkey.IsValkeyNil(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *ValkeyStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	seconds := int64(ttl / time.Second)
	if seconds < 1 {
		seconds = 1
	}
	return s.vc.DoWithRetry(ctx, func(b valkey.Builder) valkey.Completed {
		return b.Set().Key(key).Value(value).ExSeconds(seconds).Build()
	}, valkeyRetries).Error()
}
