package monitoring

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	openai "github.com/sashabaranov/go-openai"
	"github.com/spacesedan/postcraft/internal/clients"
	"golang.org/x/sync/errgroup"
)

const (
	HEALTHCHECK_TIMER   = 15
	HEALTHCHECK_TIMEOUT = 5 * time.Second
)

// Check probes one backend. Probe returns nil when the backend is usable.
type Check struct {
	Name  string
	Probe func(ctx context.Context) error
}

type Result struct {
	Name    string        `json:"name"`
	Healthy bool          `json:"healthy"`
	Latency time.Duration `json:"latency"`
	Error   string        `json:"error,omitempty"`
}

// RunChecks probes every check concurrently and returns results in input
// order.
func RunChecks(ctx context.Context, checks []Check) []Result {
	results := make([]Result, len(checks))
	g, ctx := errgroup.WithContext(ctx)
	for i, check := range checks {
		g.Go(func() error {
			results[i] = run(ctx, check)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func run(ctx context.Context, check Check) Result {
	ctx, cancel := context.WithTimeout(ctx, HEALTHCHECK_TIMEOUT)
	defer cancel()

	start := time.Now()
	err := check.Probe(ctx)
	res := Result{Name: check.Name, Healthy: err == nil, Latency: time.Since(start)}
	if err != nil {
		res.Error = err.Error()
	}
	return res
}

// Monitor re-probes check every interval until ctx ends. A zero interval
// means HEALTHCHECK_TIMER seconds.
func Monitor(ctx context.Context, check Check, interval time.Duration, healthy *atomic.Bool) {
	if interval <= 0 {
		interval = time.Second * HEALTHCHECK_TIMER
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			res := run(ctx, check)
			healthy.Store(res.Healthy)
			if !res.Healthy {
				slog.Warn("[HealthCheck] Backend is unhealthy",
					slog.String("check", check.Name),
					slog.String("error", res.Error))
			}
		}
	}
}

type ModelLister interface {
	ListModels(ctx context.Context) (openai.ModelsList, error)
}

// ModelCheck confirms the generation endpoint accepts the credential. A nil
// client means no credential is configured.
func ModelCheck(client ModelLister) Check {
	return Check{
		Name: "generation",
		Probe: func(ctx context.Context) error {
			if client == nil {
				return errors.New("TOGETHER_API_KEY is not set")
			}
			_, err := client.ListModels(ctx)
			return err
		},
	}
}

func ValkeyCheck(vc *clients.ValkeyClient) Check {
	return Check{
		Name: "cache",
		Probe: func(ctx context.Context) error {
			return vc.Client.Do(ctx, vc.Client.B().Ping().Build()).Error()
		},
	}
}

type TableDescriber interface {
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

func DynamoDBCheck(client TableDescriber, table string) Check {
	return Check{
		Name: "vault",
		Probe: func(ctx context.Context) error {
			_, err := client.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(table)})
			return err
		},
	}
}
