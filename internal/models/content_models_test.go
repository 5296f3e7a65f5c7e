package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratedContentJSONIsFlat(t *testing.T) {
	at := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	g := GeneratedContent{
		Platform:    ContentTypeTwitter,
		GeneratedAt: at,
		Model:       "Llama 3.3 70B",
		Payload: &TwitterThread{
			Hook:     "hook",
			Thread:   []string{"one"},
			Hashtags: []string{"#a"},
			CTA:      "follow",
		},
	}

	data, err := json.Marshal(g)
	require.NoError(t, err)

	var flat map[string]any
	require.NoError(t, json.Unmarshal(data, &flat))
	assert.Equal(t, "twitter", flat["platform"])
	assert.Equal(t, "hook", flat["hook"])
	assert.Equal(t, "Llama 3.3 70B", flat["model"])
	assert.Equal(t, false, flat["fallback"])
	assert.Equal(t, []any{"one"}, flat["thread"])

	var back GeneratedContent
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, g.Platform, back.Platform)
	assert.True(t, at.Equal(back.GeneratedAt))
	assert.Equal(t, g.Payload, back.Payload)
}

func TestDecodePayloadFillsRequiredCollections(t *testing.T) {
	p, err := DecodePayload(ContentTypeTwitter, []byte(`{"hook":"h"}`))
	require.NoError(t, err)

	thread := p.(*TwitterThread)
	assert.NotNil(t, thread.Thread)
	assert.NotNil(t, thread.Hashtags)

	data, err := json.Marshal(thread)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "null")
}

func TestDecodePayloadUnknownTypeIsGeneric(t *testing.T) {
	p, err := DecodePayload("tiktok", []byte(`{"title":"t","content":"c","hashtags":["#x"]}`))
	require.NoError(t, err)

	generic, ok := p.(*GenericContent)
	require.True(t, ok)
	assert.Equal(t, "t", generic.Title)
	assert.Equal(t, []string{"#x"}, generic.Hashtags)
}

func TestDecodePayloadTypeMismatch(t *testing.T) {
	_, err := DecodePayload(ContentTypeTwitter, []byte(`{"thread":"not a list"}`))
	assert.Error(t, err)
}

func TestHeadline(t *testing.T) {
	assert.Equal(t, "Subject", Headline(&EmailCampaign{Subject: "Subject"}))
	assert.Equal(t, "First line", Headline(&InstagramPost{Caption: "First line\nsecond"}))
	assert.Equal(t, "Guide", Headline(&BlogPost{Title: "Guide"}))
	assert.Equal(t, "", Headline(nil))
}
