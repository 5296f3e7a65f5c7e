package generation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spacesedan/postcraft/internal/models"
)

const ellipsis = "..."

// Excerpt lengths, in runes, taken from the model text per platform.
const (
	twitterExcerpt   = 250
	instagramExcerpt = 300
	blogExcerpt      = 400
	youtubeExcerpt   = 200
	emailExcerpt     = 400
	linkedinExcerpt  = 500
)

// excerpt returns at most limit runes of text, marking truncation with an
// ellipsis. Empty text yields a sentence about the keyword so body fields
// are never blank.
func excerpt(text string, limit int, keyword string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return fmt.Sprintf("Here are the key ideas about %s.", keyword)
	}
	if utf8.RuneCountInString(text) <= limit {
		return text
	}
	runes := []rune(text)
	return strings.TrimRight(string(runes[:limit]), " \n\t") + ellipsis
}

// SynthesizeFallback builds a payload of the right shape for the brief's
// content type from unparseable model text. It never fails.
func SynthesizeFallback(text string, brief models.ContentBrief) models.Payload {
	keyword, goal := brief.Keyword, brief.Goal
	tag := keywordTag(keyword)

	var payload models.Payload
	switch brief.ContentType {
	case models.ContentTypeTwitter:
		payload = &models.TwitterThread{
			Hook: fmt.Sprintf("🧵 Let's talk about %s...", keyword),
			Thread: []string{
				fmt.Sprintf("Here's what you need to know about %s:", keyword),
				excerpt(text, twitterExcerpt, keyword),
				fmt.Sprintf("This can help you %s.", goal),
				"What's your experience with this?",
			},
			Hashtags: []string{tag, "#Tips", "#Thread"},
			CTA:      "Follow for more insights! 🚀",
		}

	case models.ContentTypeInstagram:
		payload = &models.InstagramPost{
			Caption: fmt.Sprintf("✨ %s insights ✨\n\n%s\n\nDouble tap if you agree! 💖",
				keyword, excerpt(text, instagramExcerpt, keyword)),
			Hashtags:    []string{tag, "#Tips", "#Motivation", "#Success", "#Growth"},
			CTA:         "Save this post for later! 📌",
			ImagePrompt: fmt.Sprintf("A motivational image about %s", keyword),
		}

	case models.ContentTypeBlog:
		payload = &models.BlogPost{
			Title:           fmt.Sprintf("The Ultimate Guide to %s", keyword),
			MetaDescription: fmt.Sprintf("Learn everything about %s and how it can help you %s.", keyword, goal),
			Introduction:    fmt.Sprintf("In this comprehensive guide, we'll explore %s and how it can help you %s.", keyword, goal),
			Sections: []models.BlogSection{
				{Heading: fmt.Sprintf("Understanding %s", keyword), Content: excerpt(text, blogExcerpt, keyword)},
				{Heading: "How to Apply This", Content: fmt.Sprintf("Here are practical ways to implement %s in your daily life...", keyword)},
				{Heading: "Next Steps", Content: fmt.Sprintf("Now that you understand %s, here's what to do next...", keyword)},
			},
			Conclusion: fmt.Sprintf("%s is a powerful tool that can help you %s. Start implementing these strategies today!", keyword, goal),
			Tags:       []string{keyword, "guide", "tips"},
		}

	case models.ContentTypeYouTube:
		payload = &models.YouTubeScript{
			Title:        fmt.Sprintf("%s: Everything You Need to Know", keyword),
			Description:  fmt.Sprintf("In this video, we cover %s and how it helps you %s.", keyword, goal),
			Hook:         fmt.Sprintf("What if I told you that %s could change everything?", keyword),
			Introduction: fmt.Sprintf("Welcome back! Today we're diving deep into %s.", keyword),
			MainContent: []models.VideoSegment{
				{Timestamp: "1:00", Section: fmt.Sprintf("What is %s?", keyword), Content: excerpt(text, youtubeExcerpt, keyword)},
				{Timestamp: "3:00", Section: "Practical Applications", Content: fmt.Sprintf("Here's how you can use %s to %s...", keyword, goal)},
				{Timestamp: "5:00", Section: "Common Mistakes", Content: fmt.Sprintf("Avoid these common mistakes when working with %s...", keyword)},
			},
			Conclusion: fmt.Sprintf("That's a wrap on %s! Don't forget to subscribe for more content like this.", keyword),
			Tags:       []string{keyword, "tutorial", "guide"},
		}

	case models.ContentTypeEmail:
		payload = &models.EmailCampaign{
			Subject:   fmt.Sprintf("Your %s Guide is Here!", keyword),
			Preheader: fmt.Sprintf("Everything you need to know about %s", keyword),
			Greeting:  "Hi there!",
			Body: fmt.Sprintf("I wanted to share some insights about %s with you.\n\n%s\n\nThis can really help you %s.",
				keyword, excerpt(text, emailExcerpt, keyword), goal),
			CTA:       "Learn More",
			Signature: "Best regards,\nYour Name\nYour Company",
			PS:        fmt.Sprintf("P.S. Don't miss out on mastering %s!", keyword),
		}

	case models.ContentTypeLinkedIn:
		payload = &models.LinkedInPost{
			Hook:     fmt.Sprintf("Here's what I learned about %s:", keyword),
			Story:    excerpt(text, linkedinExcerpt, keyword),
			Insights: fmt.Sprintf("Key takeaway: %s can significantly help you %s.", keyword, goal),
			CTA:      "What's your experience with this? Share in the comments!",
			Hashtags: []string{tag, "#Professional", "#Growth", "#Success"},
		}

	default:
		content := strings.TrimSpace(text)
		if content == "" {
			content = excerpt(text, 0, keyword)
		}
		payload = &models.GenericContent{
			Title:    fmt.Sprintf("Content about %s", keyword),
			Content:  content,
			Hashtags: []string{tag, "#Content"},
			CTA:      fmt.Sprintf("Ready to master %s?", keyword),
		}
	}

	return models.FillCollections(payload)
}
