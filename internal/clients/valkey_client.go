package clients

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"time"

	"github.com/spacesedan/postcraft/config"
	"github.com/valkey-io/valkey-go"
)

type ValkeyClient struct {
	Client valkey.Client
}

// NewValkeyClient connects and pings the server.
func NewValkeyClient(ctx context.Context, cfg config.CacheSettings) (*ValkeyClient, error) {
	opts := valkey.ClientOption{
		InitAddress: []string{
			cfg.Address,
		},
		Password:         cfg.Password,
		ConnWriteTimeout: 5 * time.Second,
		SelectDB:         0,
	}

	if cfg.TLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	client, err := valkey.NewClient(opts)
	if err != nil {
		return nil, fmt.Errorf("[ValkeyClient] failed to create Valkey: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, time.Second*3)
	defer cancel()

	if err := client.Do(pingCtx, client.B().Ping().Build()).Error(); err != nil {
		client.Close()
		return nil, fmt.Errorf("[ValkeyClient] failed to ping Valkey: %w", err)
	}

	slog.Info("[ValkeyClient] Successfully connected to valkey")
	return &ValkeyClient{Client: client}, nil
}

func (vc *ValkeyClient) Close() {
	vc.Client.Close()
}

// DoWithRetry builds and runs a command, retrying on errors other than a
// nil reply. Commands return to valkey's pool after Do, so build is called
// again for every attempt.
func (vc *ValkeyClient) DoWithRetry(ctx context.Context, build func(valkey.Builder) valkey.Completed, retries int) valkey.ValkeyResult {
	var result valkey.ValkeyResult
	retryValkey(ctx, retries, func() error {
		result = vc.Client.Do(ctx, build(vc.Client.B()))
		return result.Error()
	})
	return result
}

func retryValkey(ctx context.Context, retries int, attempt func() error) {
	retries = max(retries, 1)
	for i := 0; i < retries; i++ {
		err := attempt()
		if err == nil || valkey.IsValkeyNil(err) {
			return
		}

		slog.Warn("[ValkeyClient] Do failed",
			slog.Int("attempt", i+1),
			slog.String("error", err.Error()))

		if ctx.Err() != nil {
			return
		}
		time.Sleep(VALKEY_RETRY_DELAY)
	}
}
