package clients

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/spacesedan/postcraft/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOpenAIClientWithoutKey(t *testing.T) {
	assert.Nil(t, NewOpenAIClient(config.GenerationSettings{}))
}

func TestNewOpenAIClientTargetsBaseURL(t *testing.T) {
	var gotPath, gotAuth, gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"index":0,"message":{"role":"assistant","content":"ok"},"finish_reason":"stop"}]}`))
	}))
	defer srv.Close()

	client := NewOpenAIClient(config.GenerationSettings{
		APIKey:  "test-key",
		BaseURL: srv.URL + "/v1",
		Timeout: 5 * time.Second,
	})
	require.NotNil(t, client)

	resp, err := client.CreateChatCompletion(context.Background(), openai.ChatCompletionRequest{
		Model:    "test-model",
		Messages: []openai.ChatCompletionMessage{{Role: openai.ChatMessageRoleUser, Content: "hi"}},
	})
	require.NoError(t, err)
	require.Len(t, resp.Choices, 1)

	assert.Equal(t, "ok", resp.Choices[0].Message.Content)
	assert.Equal(t, "/v1/chat/completions", gotPath)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, USER_AGENT, gotAgent)
}
