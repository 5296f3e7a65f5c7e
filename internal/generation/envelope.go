package generation

import (
	"time"

	"github.com/spacesedan/postcraft/internal/models"
)

const fallbackSuffix = " (Fallback)"

// FallbackLabel is the model label recorded on synthesized content.
func FallbackLabel(modelLabel string) string {
	return modelLabel + fallbackSuffix
}

// Envelope attaches provenance to a payload.
func Envelope(payload models.Payload, platform models.ContentType, modelLabel string, fallback bool, at time.Time) models.GeneratedContent {
	label := modelLabel
	if fallback {
		label = FallbackLabel(modelLabel)
	}
	return models.GeneratedContent{
		Platform:    platform,
		GeneratedAt: at.UTC(),
		Model:       label,
		Fallback:    fallback,
		Payload:     payload,
	}
}
