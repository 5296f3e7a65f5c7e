package generation

import (
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/spacesedan/postcraft/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExcerpt(t *testing.T) {
	assert.Equal(t, "short", excerpt("  short  ", 10, "kw"))
	assert.Equal(t, "Here are the key ideas about kw.", excerpt("   ", 10, "kw"))

	long := strings.Repeat("é", 30)
	got := excerpt(long, 10, "kw")
	assert.True(t, strings.HasSuffix(got, ellipsis))
	assert.Equal(t, 10+len(ellipsis), utf8.RuneCountInString(got))
}

func TestSynthesizeFallbackShapes(t *testing.T) {
	text := strings.Repeat("word ", 200)

	tests := map[models.ContentType][]string{
		models.ContentTypeTwitter:   {"hook", "thread", "hashtags", "cta"},
		models.ContentTypeInstagram: {"caption", "hashtags", "cta"},
		models.ContentTypeBlog:      {"title", "introduction", "sections", "conclusion"},
		models.ContentTypeYouTube:   {"title", "description", "hook", "introduction", "mainContent", "conclusion"},
		models.ContentTypeEmail:     {"subject", "greeting", "body", "cta", "signature"},
		models.ContentTypeLinkedIn:  {"hook", "story", "insights", "cta", "hashtags"},
		"tiktok":                    {"title", "content", "hashtags", "cta"},
	}

	for ct, fields := range tests {
		t.Run(string(ct), func(t *testing.T) {
			brief := twitterBrief()
			brief.ContentType = ct

			payload := SynthesizeFallback(text, brief)
			data, err := json.Marshal(payload)
			require.NoError(t, err)

			var obj map[string]any
			require.NoError(t, json.Unmarshal(data, &obj))
			for _, f := range fields {
				v, ok := obj[f]
				require.True(t, ok, "missing %s", f)
				assert.NotNil(t, v, "%s is null", f)
				assert.NotEmpty(t, v, "%s is empty", f)
			}
		})
	}
}

func TestSynthesizeFallbackExcerptBounds(t *testing.T) {
	text := strings.Repeat("x", 1000)
	brief := twitterBrief()

	brief.ContentType = models.ContentTypeTwitter
	tw := SynthesizeFallback(text, brief).(*models.TwitterThread)
	assert.Equal(t, strings.Repeat("x", twitterExcerpt)+ellipsis, tw.Thread[1])

	brief.ContentType = models.ContentTypeLinkedIn
	li := SynthesizeFallback(text, brief).(*models.LinkedInPost)
	assert.Equal(t, strings.Repeat("x", linkedinExcerpt)+ellipsis, li.Story)

	brief.ContentType = models.ContentTypeYouTube
	yt := SynthesizeFallback(text, brief).(*models.YouTubeScript)
	assert.Equal(t, strings.Repeat("x", youtubeExcerpt)+ellipsis, yt.MainContent[0].Content)

	brief.ContentType = "tiktok"
	generic := SynthesizeFallback(text, brief).(*models.GenericContent)
	assert.Equal(t, text, generic.Content)
}

func TestSynthesizeFallbackTagsFromKeyword(t *testing.T) {
	brief := twitterBrief()
	brief.Keyword = "remote  work\tlife"

	tw := SynthesizeFallback("", brief).(*models.TwitterThread)
	assert.Equal(t, []string{"#remoteworklife", "#Tips", "#Thread"}, tw.Hashtags)
	assert.Contains(t, tw.Thread, "This can help you help people focus.")
}
