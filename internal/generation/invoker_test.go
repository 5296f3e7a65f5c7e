package generation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/spacesedan/postcraft/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingCompleter struct {
	calls int
	req   openai.ChatCompletionRequest
	resp  openai.ChatCompletionResponse
	err   error
}

func (r *recordingCompleter) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	r.calls++
	r.req = req
	return r.resp, r.err
}

func TestInvokerSendsPromptAndBounds(t *testing.T) {
	completer := &recordingCompleter{resp: openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{{Message: openai.ChatCompletionMessage{Content: "raw text"}}},
	}}
	inv := NewInvokerWithClient(completer, "meta-llama/Llama-3.3-70B-Instruct-Turbo", 2000)

	text, err := inv.Invoke(context.Background(), Prompt{System: "sys", User: "usr", Temperature: 0.5})
	require.NoError(t, err)

	assert.Equal(t, "raw text", text)
	assert.Equal(t, 1, completer.calls)
	assert.Equal(t, "meta-llama/Llama-3.3-70B-Instruct-Turbo", completer.req.Model)
	assert.Equal(t, 2000, completer.req.MaxTokens)
	assert.InDelta(t, 0.5, completer.req.Temperature, 1e-6)
	require.Len(t, completer.req.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, completer.req.Messages[0].Role)
	assert.Equal(t, "sys", completer.req.Messages[0].Content)
	assert.Equal(t, "usr", completer.req.Messages[1].Content)
}

func TestInvokerNoChoices(t *testing.T) {
	inv := NewInvokerWithClient(&recordingCompleter{}, "m", 10)
	_, err := inv.Invoke(context.Background(), Prompt{})
	assert.True(t, IsGenerationError(err))
}

func TestNewInvokerWithoutKeyMakesNoRequest(t *testing.T) {
	hits := 0
	cfg := newTogetherStub(t, func(w http.ResponseWriter, r *http.Request) {
		hits++
	})
	cfg.APIKey = ""

	_, err := NewInvoker(cfg).Invoke(context.Background(), BuildPrompt(twitterBrief()))
	assert.True(t, IsConfigurationError(err))
	assert.False(t, IsGenerationError(err))
	assert.Zero(t, hits)
}

func newTogetherStub(t *testing.T, handler http.HandlerFunc) config.GenerationSettings {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return config.GenerationSettings{
		APIKey:    "test-key",
		BaseURL:   srv.URL + "/v1",
		Model:     config.DefaultModel,
		MaxTokens: 2000,
		Timeout:   2 * time.Second,
	}
}

func TestInvokerOverHTTP(t *testing.T) {
	var body map[string]any
	cfg := newTogetherStub(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"{\"hook\":\"h\"}"},"finish_reason":"stop"}]}`))
	})

	text, err := NewInvoker(cfg).Invoke(context.Background(), BuildPrompt(twitterBrief()))
	require.NoError(t, err)

	assert.Equal(t, `{"hook":"h"}`, text)
	assert.Equal(t, config.DefaultModel, body["model"])
	assert.EqualValues(t, 2000, body["max_tokens"])
}

func TestInvokerSendsZeroTemperature(t *testing.T) {
	var body map[string]any
	cfg := newTogetherStub(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"{}"},"finish_reason":"stop"}]}`))
	})

	brief := twitterBrief()
	brief.Creativity = 0
	_, err := NewInvoker(cfg).Invoke(context.Background(), BuildPrompt(brief))
	require.NoError(t, err)

	temperature, ok := body["temperature"]
	require.True(t, ok, "temperature missing from request body")
	assert.InDelta(t, 0, temperature, 1e-6)
}

func TestInvokerNonSuccessStatus(t *testing.T) {
	cfg := newTogetherStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":{"message":"overloaded","type":"server_error"}}`))
	})

	_, err := NewInvoker(cfg).Invoke(context.Background(), BuildPrompt(twitterBrief()))
	require.Error(t, err)

	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	var apiErr *openai.APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.HTTPStatusCode)
}

func TestInvokerTimeout(t *testing.T) {
	cfg := newTogetherStub(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	})
	cfg.Timeout = 50 * time.Millisecond

	_, err := NewInvoker(cfg).Invoke(context.Background(), BuildPrompt(twitterBrief()))
	assert.True(t, IsGenerationError(err))
}
