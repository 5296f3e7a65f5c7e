package generation

import (
	"testing"

	"github.com/spacesedan/postcraft/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseContent(t *testing.T) {
	payload, err := ParseContent(`{"hook":"h","thread":["a","b"],"hashtags":["#x"],"cta":"c","extra":true}`, models.ContentTypeTwitter)
	require.NoError(t, err)

	thread, ok := payload.(*models.TwitterThread)
	require.True(t, ok)
	assert.Equal(t, "h", thread.Hook)
	assert.Equal(t, []string{"a", "b"}, thread.Thread)
}

func TestParseContentDoesNotCheckFieldPresence(t *testing.T) {
	payload, err := ParseContent(`{"title":"only a title"}`, models.ContentTypeBlog)
	require.NoError(t, err)

	blog := payload.(*models.BlogPost)
	assert.Equal(t, "only a title", blog.Title)
	assert.NotNil(t, blog.Sections)
}

func TestParseContentFailures(t *testing.T) {
	inputs := map[string]string{
		"empty":        "",
		"prose":        "Sure! Here's your thread",
		"truncated":    `{"hook":"h","thread":["a"`,
		"not object":   `["a","b"]`,
		"null":         "null",
		"wrong types":  `{"thread":"one long string"}`,
		"trailing":     `{"hook":"h"} {"hook":"i"}`,
		"single quote": `{'hook':'h'}`,
	}

	for name, in := range inputs {
		t.Run(name, func(t *testing.T) {
			_, err := ParseContent(in, models.ContentTypeTwitter)
			assert.ErrorIs(t, err, ErrParseFailure)
		})
	}
}
