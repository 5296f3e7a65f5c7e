package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spacesedan/postcraft/config"
	"github.com/spacesedan/postcraft/internal/accounts"
	"github.com/spacesedan/postcraft/internal/cache"
	"github.com/spacesedan/postcraft/internal/clients"
	"github.com/spacesedan/postcraft/internal/clients/kafka_client"
	"github.com/spacesedan/postcraft/internal/db"
	"github.com/spacesedan/postcraft/internal/generation"
	"github.com/spacesedan/postcraft/internal/logging"
	"github.com/spacesedan/postcraft/internal/vault"
	"github.com/spf13/cobra"
)

// app holds the wired services shared by every subcommand.
type app struct {
	settings  config.Settings
	generator generation.ContentGenerator
	vault     *vault.Service
	accounts  *accounts.Registry
	closers   []func()
}

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)

	settings, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logging.InitLogger(settings.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{settings: settings}
	root := newRootCmd(a)
	err = root.ExecuteContext(ctx)
	a.close()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:          "postcraft",
		Short:        "Generate, store and publish platform-ready content",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.wire(cmd.Context())
		},
	}

	root.AddCommand(
		newGenerateCmd(a),
		newVaultCmd(a),
		newAnalyticsCmd(a),
		newAccountsCmd(a),
		newHealthCmd(a),
	)
	return root
}

// wire builds the generation pipeline and the vault from settings. Optional
// backends are skipped when their address is not configured. The memory
// vault and the account registry start from the sample library.
func (a *app) wire(ctx context.Context) error {
	s := a.settings

	var model generation.Model = generation.NewInvoker(s.Generation)
	if s.Generation.Retries > 0 {
		model = generation.NewRetryingModel(model, s.Generation.Retries)
	}
	var gen generation.ContentGenerator = generation.NewGenerator(model, s.Generation.ModelLabel)

	if s.Cache.Address != "" {
		vc, err := clients.NewValkeyClient(ctx, s.Cache)
		if err != nil {
			slog.Warn("[Postcraft] Generation cache unavailable, continuing without it",
				slog.String("error", err.Error()))
		} else {
			a.closers = append(a.closers, vc.Close)
			gen = cache.NewCachedGenerator(gen, cache.NewValkeyStore(vc), s.Cache.TTL)
		}
	}
	a.generator = gen

	repo, err := newRepository(ctx, s.Vault)
	if err != nil {
		return err
	}

	var events vault.EventPublisher
	if s.Kafka.Broker != "" {
		producer, err := kafka_client.NewContentEventProducer(kafka_client.GetKafkaConfig(s.Kafka))
		if err != nil {
			slog.Warn("[Postcraft] Content events disabled",
				slog.String("error", err.Error()))
		} else {
			a.closers = append(a.closers, producer.Close)
			events = producer
		}
	}
	a.vault = vault.NewService(repo, events)
	a.accounts = accounts.NewRegistry(accounts.SampleAccounts(time.Now())...)
	return nil
}

func newRepository(ctx context.Context, s config.VaultSettings) (vault.Repository, error) {
	switch s.Backend {
	case "dynamodb":
		client, err := clients.NewDynamoDBClient(ctx, s)
		if err != nil {
			return nil, fmt.Errorf("vault backend: %w", err)
		}
		return db.NewVaultRepository(client, s.Table), nil
	default:
		return vault.NewMemoryRepository(vault.SampleContent(time.Now())...), nil
	}
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}
