package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spacesedan/postcraft/internal/generation"
	"github.com/spacesedan/postcraft/internal/models"
)

const keyPrefix = "postcraft:generation:"

// Store is a string key/value store with expiry.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// BriefKey derives a cache key from every field of the brief.
func BriefKey(brief models.ContentBrief) string {
	raw := strings.Join([]string{
		brief.Keyword,
		brief.Goal,
		brief.Audience,
		string(brief.Tone),
		string(brief.ContentType),
		brief.AdditionalContext,
		// temperature, not creativity: 95 and 100 sample identically
		fmt.Sprintf("%.2f", generation.SamplingTemperature(brief.Creativity)),
	}, "\x1f")
	hash := sha256.Sum256([]byte(raw))
	return keyPrefix + hex.EncodeToString(hash[:])
}

// CachedGenerator serves repeated briefs from the store. Only content the
// model produced is cached; fallback content is always regenerated. Store
// errors are logged and otherwise ignored.
type CachedGenerator struct {
	next  generation.ContentGenerator
	store Store
	ttl   time.Duration
}

func NewCachedGenerator(next generation.ContentGenerator, store Store, ttl time.Duration) *CachedGenerator {
	return &CachedGenerator{next: next, store: store, ttl: ttl}
}

func (c *CachedGenerator) Generate(ctx context.Context, brief models.ContentBrief) (models.GeneratedContent, error) {
	key := BriefKey(brief)

	cached, ok, err := c.store.Get(ctx, key)
	if err != nil {
		slog.Warn("[GenerationCache] Cache lookup failed", slog.String("error", err.Error()))
	}
	if ok {
		var content models.GeneratedContent
		if err := json.Unmarshal([]byte(cached), &content); err == nil {
			slog.Info("[GenerationCache] Serving cached content", slog.String("content_type", string(brief.ContentType)))
			return content, nil
		}
		slog.Warn("[GenerationCache] Discarding unreadable cache entry", slog.String("key", key))
	}

	content, err := c.next.Generate(ctx, brief)
	if err != nil || content.Fallback {
		return content, err
	}

	data, err := json.Marshal(content)
	if err != nil {
		slog.Warn("[GenerationCache] Failed to encode content", slog.String("error", err.Error()))
		return content, nil
	}
	if err := c.store.Set(ctx, key, string(data), c.ttl); err != nil {
		slog.Warn("[GenerationCache] Failed to store content", slog.String("error", err.Error()))
	}
	return content, nil
}
