package config

import (
	"fmt"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

const (
	DefaultBaseURL     = "https://api.together.xyz/v1"
	DefaultModel       = "meta-llama/Llama-3.3-70B-Instruct-Turbo"
	DefaultModelLabel  = "Llama 3.3 70B"
	DefaultMaxTokens   = 2000
	DefaultTimeout     = 60 * time.Second
	DefaultVaultTable  = "ContentVault"
	DefaultAWSRegion   = "us-west-2"
	DefaultCacheTTL    = 24 * time.Hour
	DefaultEventsTopic = "content-events"
)

type GenerationSettings struct {
	APIKey     string
	BaseURL    string
	Model      string
	ModelLabel string
	MaxTokens  int
	Timeout    time.Duration
	Retries    int
}

type VaultSettings struct {
	Backend     string
	Table       string
	AWSEndpoint string
	AWSRegion   string
}

type CacheSettings struct {
	Address  string
	Password string
	TLS      bool
	TTL      time.Duration
}

type KafkaSettings struct {
	Broker string
	Topic  string
}

// Settings is everything the binaries read from the environment.
type Settings struct {
	Env        string
	LogLevel   string
	Generation GenerationSettings
	Vault      VaultSettings
	Cache      CacheSettings
	Kafka      KafkaSettings
}

// Load reads Settings from the environment. Call LoadEnv first to pick up
// the env file.
func Load() (Settings, error) {
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	s := Settings{
		Env:      v.GetString("APP_ENV"),
		LogLevel: v.GetString("LOG_LEVEL"),
		Generation: GenerationSettings{
			APIKey:     v.GetString("TOGETHER_API_KEY"),
			BaseURL:    v.GetString("TOGETHER_BASE_URL"),
			Model:      v.GetString("GENERATION_MODEL"),
			ModelLabel: v.GetString("GENERATION_MODEL_LABEL"),
		},
		Vault: VaultSettings{
			Backend:     v.GetString("VAULT_BACKEND"),
			Table:       v.GetString("VAULT_TABLE"),
			AWSEndpoint: v.GetString("AWS_ENDPOINT"),
			AWSRegion:   v.GetString("AWS_REGION"),
		},
		Cache: CacheSettings{
			Address:  v.GetString("VALKEY_INIT_ADDRESS"),
			Password: v.GetString("VALKEY_PASSWORD"),
		},
		Kafka: KafkaSettings{
			Broker: v.GetString("KAFKA_BROKER"),
			Topic:  v.GetString("KAFKA_CONTENT_TOPIC"),
		},
	}

	var err error
	if s.Generation.MaxTokens, err = getInt(v, "GENERATION_MAX_TOKENS"); err != nil {
		return Settings{}, err
	}
	if s.Generation.Retries, err = getInt(v, "GENERATION_RETRIES"); err != nil {
		return Settings{}, err
	}
	if s.Generation.Timeout, err = getDuration(v, "GENERATION_TIMEOUT"); err != nil {
		return Settings{}, err
	}
	if s.Cache.TTL, err = getDuration(v, "GENERATION_CACHE_TTL"); err != nil {
		return Settings{}, err
	}
	if s.Cache.TLS, err = cast.ToBoolE(v.Get("VALKEY_TLS")); err != nil {
		return Settings{}, fmt.Errorf("config: VALKEY_TLS: %w", err)
	}

	switch s.Vault.Backend {
	case "memory", "dynamodb":
	default:
		return Settings{}, fmt.Errorf("config: VAULT_BACKEND must be memory or dynamodb, got %q", s.Vault.Backend)
	}

	return s, nil
}

// AWS_ENDPOINT has no default: empty means the regional AWS endpoint.
func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "dev")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("TOGETHER_BASE_URL", DefaultBaseURL)
	v.SetDefault("GENERATION_MODEL", DefaultModel)
	v.SetDefault("GENERATION_MODEL_LABEL", DefaultModelLabel)
	v.SetDefault("GENERATION_MAX_TOKENS", DefaultMaxTokens)
	v.SetDefault("GENERATION_RETRIES", 0)
	v.SetDefault("GENERATION_TIMEOUT", DefaultTimeout)
	v.SetDefault("VAULT_BACKEND", "memory")
	v.SetDefault("VAULT_TABLE", DefaultVaultTable)
	v.SetDefault("AWS_REGION", DefaultAWSRegion)
	v.SetDefault("VALKEY_TLS", false)
	v.SetDefault("GENERATION_CACHE_TTL", DefaultCacheTTL)
	v.SetDefault("KAFKA_CONTENT_TOPIC", DefaultEventsTopic)
}

// viper's GetInt and GetDuration swallow parse errors, so typed values go
// through cast directly.
func getInt(v *viper.Viper, key string) (int, error) {
	n, err := cast.ToIntE(v.Get(key))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("config: %s must be a non-negative integer, got %q", key, v.GetString(key))
	}
	return n, nil
}

func getDuration(v *viper.Viper, key string) (time.Duration, error) {
	d, err := cast.ToDurationE(v.Get(key))
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return d, nil
}
