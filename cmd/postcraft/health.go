package main

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/spacesedan/postcraft/internal/clients"
	"github.com/spacesedan/postcraft/internal/monitoring"
	"github.com/spf13/cobra"
)

func newHealthCmd(a *app) *cobra.Command {
	var watch time.Duration
	cmd := &cobra.Command{
		Use:   "health",
		Short: "Probe the configured backends",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			checks, closeAll := backendChecks(ctx, a)
			defer closeAll()

			results := monitoring.RunChecks(ctx, checks)
			if err := writeJSON(cmd, results); err != nil {
				return err
			}
			if watch > 0 {
				watchChecks(ctx, checks, results, watch)
				return nil
			}
			for _, r := range results {
				if !r.Healthy {
					return errors.New("one or more backends are unhealthy")
				}
			}
			return nil
		},
	}
	cmd.Flags().DurationVar(&watch, "watch", 0, "keep probing at this interval until interrupted")
	return cmd
}

func backendChecks(ctx context.Context, a *app) ([]monitoring.Check, func()) {
	s := a.settings
	var closers []func()

	var checks []monitoring.Check
	if c := clients.NewOpenAIClient(s.Generation); c != nil {
		checks = append(checks, monitoring.ModelCheck(c))
	} else {
		checks = append(checks, monitoring.ModelCheck(nil))
	}

	if s.Cache.Address != "" {
		vc, err := clients.NewValkeyClient(ctx, s.Cache)
		if err != nil {
			checks = append(checks, failed("cache", err))
		} else {
			closers = append(closers, vc.Close)
			checks = append(checks, monitoring.ValkeyCheck(vc))
		}
	}

	if s.Vault.Backend == "dynamodb" {
		client, err := clients.NewDynamoDBClient(ctx, s.Vault)
		if err != nil {
			checks = append(checks, failed("vault", err))
		} else {
			checks = append(checks, monitoring.DynamoDBCheck(client, s.Vault.Table))
		}
	}

	return checks, func() {
		for _, c := range closers {
			c()
		}
	}
}

// watchChecks runs a monitor per check and logs state changes until ctx
// is cancelled.
func watchChecks(ctx context.Context, checks []monitoring.Check, initial []monitoring.Result, every time.Duration) {
	states := make([]atomic.Bool, len(checks))
	for i, check := range checks {
		states[i].Store(initial[i].Healthy)
		go monitoring.Monitor(ctx, check, every, &states[i])
	}

	ticker := time.NewTicker(every)
	defer ticker.Stop()
	last := make([]bool, len(checks))
	for i := range initial {
		last[i] = initial[i].Healthy
	}
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for i := range checks {
				if now := states[i].Load(); now != last[i] {
					last[i] = now
					slog.Info("[HealthCheck] Backend state changed",
						slog.String("check", checks[i].Name),
						slog.Bool("healthy", now))
				}
			}
		}
	}
}

func failed(name string, err error) monitoring.Check {
	return monitoring.Check{Name: name, Probe: func(context.Context) error { return err }}
}
