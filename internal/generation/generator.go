package generation

import (
	"context"
	"log/slog"
	"time"

	"github.com/spacesedan/postcraft/internal/models"
)

// ContentGenerator produces platform content for a brief.
type ContentGenerator interface {
	Generate(ctx context.Context, brief models.ContentBrief) (models.GeneratedContent, error)
}

// Generator runs the pipeline: prompt, model call, normalization, parse,
// and fallback synthesis when the parse fails. Only model invocation can
// fail; every other step always yields content. It holds no mutable state
// and is safe for concurrent use.
type Generator struct {
	model Model
	label string
	now   func() time.Time
}

func NewGenerator(model Model, modelLabel string) *Generator {
	return &Generator{model: model, label: modelLabel, now: time.Now}
}

// Generate expects a brief that already passed ContentBrief.Validate.
func (g *Generator) Generate(ctx context.Context, brief models.ContentBrief) (models.GeneratedContent, error) {
	slog.Info("[Generator] Starting content generation",
		slog.String("content_type", string(brief.ContentType)),
		slog.String("keyword", brief.Keyword))

	raw, err := g.model.Invoke(ctx, BuildPrompt(brief))
	if err != nil {
		slog.Error("[Generator] Content generation failed",
			slog.String("content_type", string(brief.ContentType)),
			slog.String("error", err.Error()))
		return models.GeneratedContent{}, err
	}

	normalized := NormalizeResponse(raw)
	payload, err := ParseContent(normalized, brief.ContentType)
	if err != nil {
		slog.Warn("[Generator] Model output did not parse, synthesizing fallback content",
			slog.String("content_type", string(brief.ContentType)),
			slog.String("error", err.Error()),
			slog.String("cleaned_response_snippet", snippet(normalized, 200)))
		return Envelope(SynthesizeFallback(normalized, brief), brief.ContentType, g.label, true, g.now()), nil
	}

	slog.Info("[Generator] Content generated",
		slog.String("content_type", string(brief.ContentType)))
	return Envelope(payload, brief.ContentType, g.label, false, g.now()), nil
}

func snippet(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + ellipsis
}
