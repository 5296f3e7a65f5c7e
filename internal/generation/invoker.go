package generation

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/spacesedan/postcraft/config"
	"github.com/spacesedan/postcraft/internal/clients"
)

// Model turns a prompt into raw model text.
type Model interface {
	Invoke(ctx context.Context, prompt Prompt) (string, error)
}

// ChatCompleter is the slice of the go-openai client the invoker uses.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Invoker makes exactly one chat completion call per Invoke. It does not
// retry; wrap it in a RetryingModel for that.
type Invoker struct {
	client    ChatCompleter
	model     string
	maxTokens int
}

func NewInvoker(cfg config.GenerationSettings) *Invoker {
	inv := &Invoker{model: cfg.Model, maxTokens: cfg.MaxTokens}
	if c := clients.NewOpenAIClient(cfg); c != nil {
		inv.client = c
	}
	return inv
}

// NewInvokerWithClient uses client as the transport. A nil client behaves
// like a missing credential.
func NewInvokerWithClient(client ChatCompleter, model string, maxTokens int) *Invoker {
	return &Invoker{client: client, model: model, maxTokens: maxTokens}
}

func (i *Invoker) Invoke(ctx context.Context, prompt Prompt) (string, error) {
	if i.client == nil {
		return "", &ConfigurationError{Setting: "TOGETHER_API_KEY", Reason: "is not set"}
	}

	start := time.Now()
	slog.Debug("[ModelInvoker] Calling model",
		slog.String("model", i.model),
		slog.Float64("temperature", float64(prompt.Temperature)))

	// go-openai omits a zero temperature from the request body, which lets
	// the server substitute its own default.
	temperature := prompt.Temperature
	if temperature == 0 {
		temperature = math.SmallestNonzeroFloat32
	}

	resp, err := i.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: i.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompt.System},
			{Role: openai.ChatMessageRoleUser, Content: prompt.User},
		},
		Temperature: temperature,
		MaxTokens:   i.maxTokens,
	})
	if err != nil {
		slog.Warn("[ModelInvoker] Model call failed",
			slog.String("error", err.Error()),
			slog.Duration("elapsed", time.Since(start)))
		return "", &GenerationError{Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", &GenerationError{Err: errors.New("model returned no choices")}
	}

	slog.Info("[ModelInvoker] Model response received",
		slog.String("finish_reason", string(resp.Choices[0].FinishReason)),
		slog.Duration("elapsed", time.Since(start)))
	return resp.Choices[0].Message.Content, nil
}
