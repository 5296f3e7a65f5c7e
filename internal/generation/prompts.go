package generation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spacesedan/postcraft/internal/models"
)

const (
	defaultAudience = "general audience"
	maxTemperature  = 0.9
)

// Prompt is everything the model invoker sends for one brief.
type Prompt struct {
	System      string
	User        string
	Temperature float32
}

var whitespace = regexp.MustCompile(`\s+`)

// keywordTag turns a keyword into a hashtag: whitespace removed, # prefix.
func keywordTag(keyword string) string {
	return "#" + whitespace.ReplaceAllString(keyword, "")
}

// SamplingTemperature maps the 0-100 creativity dial onto a temperature
// capped at 0.9.
func SamplingTemperature(creativity int) float32 {
	t := float32(creativity) / 100
	if t > maxTemperature {
		return maxTemperature
	}
	if t < 0 {
		return 0
	}
	return t
}

// BuildPrompt composes the system and user prompts for a brief.
func BuildPrompt(brief models.ContentBrief) Prompt {
	return Prompt{
		System:      systemPrompt(brief),
		User:        userPrompt(brief),
		Temperature: SamplingTemperature(brief.Creativity),
	}
}

func systemPrompt(brief models.ContentBrief) string {
	audience := brief.Audience
	if strings.TrimSpace(audience) == "" {
		audience = defaultAudience
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are an expert content creator. Create engaging %s content about %q that helps people %s.\n\n",
		brief.ContentType, brief.Keyword, brief.Goal)
	fmt.Fprintf(&b, "Tone: %s\n", brief.Tone)
	fmt.Fprintf(&b, "Audience: %s\n", audience)
	if brief.AdditionalContext != "" {
		fmt.Fprintf(&b, "Additional context: %s\n", brief.AdditionalContext)
	}
	b.WriteString("\nIMPORTANT: Always respond with valid JSON only. No other text before or after the JSON.")
	return b.String()
}

type promptTemplate func(keyword, tag string) string

var userPrompts = map[models.ContentType]promptTemplate{
	models.ContentTypeTwitter: func(keyword, tag string) string {
		return fmt.Sprintf(`Create a Twitter thread about %s. Return this exact JSON structure:
{
  "hook": "Write a compelling opening tweet (under 280 characters)",
  "thread": [
    "Write tweet 2 content",
    "Write tweet 3 content",
    "Write tweet 4 content",
    "Write tweet 5 content"
  ],
  "hashtags": ["%s", "#ContentCreator", "#Tips"],
  "cta": "Write a call-to-action tweet"
}`, keyword, tag)
	},
	models.ContentTypeInstagram: func(keyword, tag string) string {
		return fmt.Sprintf(`Create an Instagram post about %s. Return this exact JSON structure:
{
  "caption": "Write an engaging Instagram caption with emojis and line breaks",
  "hashtags": ["%s", "#Instagram", "#Content", "#Tips", "#Motivation", "#Success", "#Growth", "#Inspiration", "#Business", "#Life"],
  "cta": "Write a call to action",
  "imagePrompt": "Describe what image would work best for this post"
}`, keyword, tag)
	},
	models.ContentTypeBlog: func(keyword, _ string) string {
		return fmt.Sprintf(`Create a blog post about %[1]s. Return this exact JSON structure:
{
  "title": "Write an SEO-friendly blog title",
  "metaDescription": "Write a 150-character meta description",
  "introduction": "Write an engaging introduction paragraph",
  "sections": [
    {
      "heading": "First section heading",
      "content": "First section content"
    },
    {
      "heading": "Second section heading",
      "content": "Second section content"
    },
    {
      "heading": "Third section heading",
      "content": "Third section content"
    }
  ],
  "conclusion": "Write a conclusion with call to action",
  "tags": [%[2]q, "tips", "guide"]
}`, keyword, keyword)
	},
	models.ContentTypeYouTube: func(keyword, _ string) string {
		return fmt.Sprintf(`Create a YouTube video script about %[1]s. Return this exact JSON structure:
{
  "title": "Write a compelling YouTube title",
  "description": "Write a video description",
  "hook": "Write the first 15 seconds script to hook viewers",
  "introduction": "Write the introduction section",
  "mainContent": [
    {
      "timestamp": "1:00",
      "section": "First main point",
      "content": "What to say in this section"
    },
    {
      "timestamp": "3:00",
      "section": "Second main point",
      "content": "What to say in this section"
    },
    {
      "timestamp": "5:00",
      "section": "Third main point",
      "content": "What to say in this section"
    }
  ],
  "conclusion": "Write conclusion and call to action",
  "tags": [%[2]q, "tutorial", "tips"]
}`, keyword, keyword)
	},
	models.ContentTypeEmail: func(keyword, _ string) string {
		return fmt.Sprintf(`Create an email campaign about %s. Return this exact JSON structure:
{
  "subject": "Write a compelling subject line",
  "preheader": "Write preview text",
  "greeting": "Write a personal greeting",
  "body": "Write the main email content with paragraphs",
  "cta": "Write a clear call-to-action",
  "signature": "Best regards,\nYour Name\nYour Company",
  "ps": "Write an optional P.S. message"
}`, keyword)
	},
	models.ContentTypeLinkedIn: func(keyword, tag string) string {
		return fmt.Sprintf(`Create a LinkedIn post about %s. Return this exact JSON structure:
{
  "hook": "Write an attention-grabbing opening line",
  "story": "Write the main content with professional storytelling",
  "insights": "Write key takeaways or insights",
  "cta": "Write a professional call-to-action",
  "hashtags": ["%s", "#Professional", "#Business", "#Growth", "#Success"]
}`, keyword, tag)
	},
}

func userPrompt(brief models.ContentBrief) string {
	if tmpl, ok := userPrompts[brief.ContentType]; ok {
		return tmpl(brief.Keyword, keywordTag(brief.Keyword))
	}
	return fmt.Sprintf("Create %s content about %s that helps people %s. Return as JSON with title, content, and hashtags fields.",
		brief.ContentType, brief.Keyword, brief.Goal)
}
