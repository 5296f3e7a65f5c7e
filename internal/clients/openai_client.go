package clients

import (
	"log/slog"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
	"github.com/spacesedan/postcraft/config"
)

// NewOpenAIClient builds an OpenAI-compatible chat client for the Together
// AI endpoint. It returns nil when no API key is configured so callers can
// report the missing credential at request time.
func NewOpenAIClient(cfg config.GenerationSettings) *openai.Client {
	if cfg.APIKey == "" {
		slog.Warn("[OpenAIClient] TOGETHER_API_KEY is not set, generation requests will fail")
		return nil
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	clientConfig.BaseURL = cfg.BaseURL
	clientConfig.HTTPClient = &http.Client{
		Timeout:   cfg.Timeout,
		Transport: userAgentTransport{base: http.DefaultTransport},
	}

	slog.Info("[OpenAIClient] client initialized",
		slog.String("base_url", cfg.BaseURL),
		slog.Duration("timeout", cfg.Timeout))
	return openai.NewClientWithConfig(clientConfig)
}

type userAgentTransport struct {
	base http.RoundTripper
}

func (t userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("User-Agent", USER_AGENT)
	return t.base.RoundTrip(req)
}
