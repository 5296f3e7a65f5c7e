package models

import (
	"errors"
	"fmt"
	"strings"
)

type ContentType string

const (
	ContentTypeTwitter   ContentType = "twitter"
	ContentTypeInstagram ContentType = "instagram"
	ContentTypeBlog      ContentType = "blog"
	ContentTypeYouTube   ContentType = "youtube"
	ContentTypeEmail     ContentType = "email"
	ContentTypeLinkedIn  ContentType = "linkedin"
)

// KnownContentTypes lists the platforms with a dedicated schema. Any other
// value is still accepted and handled by the generic shape.
var KnownContentTypes = []ContentType{
	ContentTypeTwitter,
	ContentTypeInstagram,
	ContentTypeBlog,
	ContentTypeYouTube,
	ContentTypeEmail,
	ContentTypeLinkedIn,
}

func (c ContentType) Known() bool {
	for _, k := range KnownContentTypes {
		if c == k {
			return true
		}
	}
	return false
}

type Tone string

const (
	ToneProfessional  Tone = "professional"
	ToneCasual        Tone = "casual"
	ToneFunny         Tone = "funny"
	ToneInspirational Tone = "inspirational"
	ToneSarcastic     Tone = "sarcastic"
	ToneEducational   Tone = "educational"
)

var knownTones = map[Tone]struct{}{
	ToneProfessional:  {},
	ToneCasual:        {},
	ToneFunny:         {},
	ToneInspirational: {},
	ToneSarcastic:     {},
	ToneEducational:   {},
}

// ContentBrief is the user's request for one piece of content.
type ContentBrief struct {
	Keyword           string      `json:"keyword"`
	Goal              string      `json:"goal"`
	Audience          string      `json:"audience,omitempty"`
	Tone              Tone        `json:"tone"`
	Creativity        int         `json:"creativity"`
	ContentType       ContentType `json:"contentType"`
	AdditionalContext string      `json:"additionalContext,omitempty"`
}

var ErrInvalidBrief = errors.New("invalid content brief")

// Validate is the caller-side check run before a brief enters the
// generation pipeline. Unknown content types are allowed.
func (b ContentBrief) Validate() error {
	var missing []string
	if strings.TrimSpace(b.Keyword) == "" {
		missing = append(missing, "keyword")
	}
	if strings.TrimSpace(b.Goal) == "" {
		missing = append(missing, "goal")
	}
	if strings.TrimSpace(string(b.ContentType)) == "" {
		missing = append(missing, "contentType")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidBrief, strings.Join(missing, ", "))
	}
	if b.Tone != "" {
		if _, ok := knownTones[b.Tone]; !ok {
			return fmt.Errorf("%w: unknown tone %q", ErrInvalidBrief, b.Tone)
		}
	}
	if b.Creativity < 0 || b.Creativity > 100 {
		return fmt.Errorf("%w: creativity must be between 0 and 100, got %d", ErrInvalidBrief, b.Creativity)
	}
	return nil
}
