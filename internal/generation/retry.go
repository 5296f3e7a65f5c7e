package generation

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/spacesedan/postcraft/internal/clients"
)

// RetryingModel retries GenerationErrors from the wrapped model with
// exponential backoff. ConfigurationErrors and context cancellation are
// returned immediately.
type RetryingModel struct {
	next           Model
	attempts       int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	sleep          func(ctx context.Context, d time.Duration) error
}

// NewRetryingModel allows up to retries additional attempts, capped at
// clients.MAX_RETRIES.
func NewRetryingModel(next Model, retries int) *RetryingModel {
	if retries > clients.MAX_RETRIES {
		retries = clients.MAX_RETRIES
	}
	if retries < 0 {
		retries = 0
	}
	return &RetryingModel{
		next:           next,
		attempts:       retries + 1,
		initialBackoff: clients.INITIAL_BACKOFF,
		maxBackoff:     clients.MAX_BACKOFF,
		sleep:          sleepContext,
	}
}

func (r *RetryingModel) Invoke(ctx context.Context, prompt Prompt) (string, error) {
	backoff := r.initialBackoff
	var err error
	for attempt := 1; attempt <= r.attempts; attempt++ {
		var text string
		text, err = r.next.Invoke(ctx, prompt)
		if err == nil {
			return text, nil
		}

		var genErr *GenerationError
		if !errors.As(err, &genErr) || ctx.Err() != nil || attempt == r.attempts {
			break
		}

		slog.Warn("[RetryingModel] Model call failed, retrying...",
			slog.Int("attempt", attempt),
			slog.Duration("backoff", backoff),
			slog.String("error", err.Error()))
		if sleepErr := r.sleep(ctx, backoff); sleepErr != nil {
			return "", &GenerationError{Err: sleepErr}
		}
		backoff = min(backoff*2, r.maxBackoff)
	}
	return "", err
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
