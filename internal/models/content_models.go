package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Payload is the platform-specific body of a GeneratedContent. The set of
// implementations is closed; GenericContent covers unknown platforms.
type Payload interface {
	ContentType() ContentType
	fillCollections()
}

type TwitterThread struct {
	Hook     string   `json:"hook"`
	Thread   []string `json:"thread"`
	Hashtags []string `json:"hashtags"`
	CTA      string   `json:"cta"`
}

type InstagramPost struct {
	Caption     string   `json:"caption"`
	Hashtags    []string `json:"hashtags"`
	CTA         string   `json:"cta"`
	ImagePrompt string   `json:"imagePrompt,omitempty"`
}

type BlogSection struct {
	Heading string `json:"heading"`
	Content string `json:"content"`
}

type BlogPost struct {
	Title           string        `json:"title"`
	MetaDescription string        `json:"metaDescription,omitempty"`
	Introduction    string        `json:"introduction"`
	Sections        []BlogSection `json:"sections"`
	Conclusion      string        `json:"conclusion"`
	Tags            []string      `json:"tags,omitempty"`
}

type VideoSegment struct {
	Timestamp string `json:"timestamp"`
	Section   string `json:"section"`
	Content   string `json:"content"`
}

type YouTubeScript struct {
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Hook         string         `json:"hook"`
	Introduction string         `json:"introduction"`
	MainContent  []VideoSegment `json:"mainContent"`
	Conclusion   string         `json:"conclusion"`
	Tags         []string       `json:"tags,omitempty"`
}

type EmailCampaign struct {
	Subject   string `json:"subject"`
	Preheader string `json:"preheader,omitempty"`
	Greeting  string `json:"greeting"`
	Body      string `json:"body"`
	CTA       string `json:"cta"`
	Signature string `json:"signature"`
	PS        string `json:"ps,omitempty"`
}

type LinkedInPost struct {
	Hook     string   `json:"hook"`
	Story    string   `json:"story"`
	Insights string   `json:"insights"`
	CTA      string   `json:"cta"`
	Hashtags []string `json:"hashtags"`
}

// GenericContent is the catch-all shape for platforms without a schema.
type GenericContent struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Hashtags []string `json:"hashtags"`
	CTA      string   `json:"cta,omitempty"`
}

func (TwitterThread) ContentType() ContentType  { return ContentTypeTwitter }
func (InstagramPost) ContentType() ContentType  { return ContentTypeInstagram }
func (BlogPost) ContentType() ContentType       { return ContentTypeBlog }
func (YouTubeScript) ContentType() ContentType  { return ContentTypeYouTube }
func (EmailCampaign) ContentType() ContentType  { return ContentTypeEmail }
func (LinkedInPost) ContentType() ContentType   { return ContentTypeLinkedIn }
func (GenericContent) ContentType() ContentType { return "" }

// fillCollections replaces nil required collections with empty ones so the
// JSON form never carries null for a required field.
func (p *TwitterThread) fillCollections() {
	p.Thread = nonNil(p.Thread)
	p.Hashtags = nonNil(p.Hashtags)
}

func (p *InstagramPost) fillCollections() { p.Hashtags = nonNil(p.Hashtags) }

func (p *BlogPost) fillCollections() { p.Sections = nonNil(p.Sections) }

func (p *YouTubeScript) fillCollections() { p.MainContent = nonNil(p.MainContent) }

func (p *EmailCampaign) fillCollections() {}

func (p *LinkedInPost) fillCollections() { p.Hashtags = nonNil(p.Hashtags) }

func (p *GenericContent) fillCollections() { p.Hashtags = nonNil(p.Hashtags) }

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// NewPayload returns an empty payload of the shape used for contentType.
func NewPayload(contentType ContentType) Payload {
	switch contentType {
	case ContentTypeTwitter:
		return &TwitterThread{}
	case ContentTypeInstagram:
		return &InstagramPost{}
	case ContentTypeBlog:
		return &BlogPost{}
	case ContentTypeYouTube:
		return &YouTubeScript{}
	case ContentTypeEmail:
		return &EmailCampaign{}
	case ContentTypeLinkedIn:
		return &LinkedInPost{}
	default:
		return &GenericContent{}
	}
}

// DecodePayload decodes a JSON object into the payload shape for
// contentType. Unknown keys are ignored; missing keys stay zero.
func DecodePayload(contentType ContentType, data []byte) (Payload, error) {
	p := NewPayload(contentType)
	if err := json.Unmarshal(data, p); err != nil {
		return nil, err
	}
	p.fillCollections()
	return p, nil
}

// FillCollections is exported for payloads built outside this package.
func FillCollections(p Payload) Payload {
	if p != nil {
		p.fillCollections()
	}
	return p
}

// GeneratedContent is a payload plus provenance. Its JSON form is flat:
// the payload fields sit beside platform, generatedAt, model and fallback.
type GeneratedContent struct {
	Platform    ContentType
	GeneratedAt time.Time
	Model       string
	Fallback    bool
	Payload     Payload
}

type provenance struct {
	Platform    ContentType `json:"platform"`
	GeneratedAt time.Time   `json:"generatedAt"`
	Model       string      `json:"model"`
	Fallback    bool        `json:"fallback"`
}

func (g GeneratedContent) MarshalJSON() ([]byte, error) {
	fields := map[string]json.RawMessage{}
	if g.Payload != nil {
		body, err := json.Marshal(g.Payload)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(body, &fields); err != nil {
			return nil, err
		}
	}

	meta, err := json.Marshal(provenance{
		Platform:    g.Platform,
		GeneratedAt: g.GeneratedAt,
		Model:       g.Model,
		Fallback:    g.Fallback,
	})
	if err != nil {
		return nil, err
	}
	var metaFields map[string]json.RawMessage
	if err := json.Unmarshal(meta, &metaFields); err != nil {
		return nil, err
	}
	for k, v := range metaFields {
		fields[k] = v
	}

	return json.Marshal(fields)
}

func (g *GeneratedContent) UnmarshalJSON(data []byte) error {
	var meta provenance
	if err := json.Unmarshal(data, &meta); err != nil {
		return fmt.Errorf("generated content provenance: %w", err)
	}
	payload, err := DecodePayload(meta.Platform, data)
	if err != nil {
		return fmt.Errorf("generated content payload: %w", err)
	}

	*g = GeneratedContent{
		Platform:    meta.Platform,
		GeneratedAt: meta.GeneratedAt,
		Model:       meta.Model,
		Fallback:    meta.Fallback,
		Payload:     payload,
	}
	return nil
}

// Headline picks the field that best serves as a title for the payload.
func Headline(p Payload) string {
	switch v := p.(type) {
	case *TwitterThread:
		return v.Hook
	case *InstagramPost:
		caption, _, _ := strings.Cut(strings.TrimSpace(v.Caption), "\n")
		return caption
	case *BlogPost:
		return v.Title
	case *YouTubeScript:
		return v.Title
	case *EmailCampaign:
		return v.Subject
	case *LinkedInPost:
		return v.Hook
	case *GenericContent:
		return v.Title
	default:
		return ""
	}
}
