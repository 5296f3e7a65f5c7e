package generation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noSleep(t *testing.T, r *RetryingModel) *[]time.Duration {
	t.Helper()
	var waits []time.Duration
	r.sleep = func(_ context.Context, d time.Duration) error {
		waits = append(waits, d)
		return nil
	}
	return &waits
}

func TestRetryingModelRecovers(t *testing.T) {
	model := &fakeModel{
		errs:    []error{&GenerationError{Err: errors.New("boom")}, &GenerationError{Err: errors.New("boom")}},
		replies: []string{"", "", "ok"},
	}
	r := NewRetryingModel(model, 3)
	waits := noSleep(t, r)

	text, err := r.Invoke(context.Background(), Prompt{})
	require.NoError(t, err)
	assert.Equal(t, "ok", text)
	assert.Equal(t, 3, model.calls())
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, *waits)
}

func TestRetryingModelGivesUp(t *testing.T) {
	fail := &GenerationError{Err: errors.New("boom")}
	model := &fakeModel{errs: []error{fail, fail, fail}}
	r := NewRetryingModel(model, 2)
	noSleep(t, r)

	_, err := r.Invoke(context.Background(), Prompt{})
	assert.True(t, IsGenerationError(err))
	assert.Equal(t, 3, model.calls())
}

func TestRetryingModelDoesNotRetryConfigurationError(t *testing.T) {
	model := &fakeModel{errs: []error{&ConfigurationError{Setting: "TOGETHER_API_KEY", Reason: "is not set"}}}
	r := NewRetryingModel(model, 5)
	noSleep(t, r)

	_, err := r.Invoke(context.Background(), Prompt{})
	assert.True(t, IsConfigurationError(err))
	assert.Equal(t, 1, model.calls())
}

func TestRetryingModelZeroRetriesIsSingleAttempt(t *testing.T) {
	model := &fakeModel{errs: []error{&GenerationError{Err: errors.New("boom")}}}
	r := NewRetryingModel(model, 0)
	noSleep(t, r)

	_, err := r.Invoke(context.Background(), Prompt{})
	assert.Error(t, err)
	assert.Equal(t, 1, model.calls())
}

func TestRetryingModelCapsAttempts(t *testing.T) {
	r := NewRetryingModel(&fakeModel{}, 100)
	assert.Equal(t, 6, r.attempts)
}
