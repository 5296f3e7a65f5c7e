// Package render turns generated content into Markdown and HTML documents
// laid out per platform.
package render

import (
	"fmt"
	"strings"

	"github.com/russross/blackfriday/v2"
	"github.com/spacesedan/postcraft/internal/models"
)

// Markdown renders content as a Markdown document. Empty fields are shown
// with placeholder text so the layout stays recognisable.
func Markdown(content models.GeneratedContent) string {
	var b strings.Builder

	switch p := content.Payload.(type) {
	case *models.TwitterThread:
		writeTwitter(&b, p)
	case *models.InstagramPost:
		writeInstagram(&b, p)
	case *models.BlogPost:
		writeBlog(&b, p)
	case *models.YouTubeScript:
		writeYouTube(&b, p)
	case *models.EmailCampaign:
		writeEmail(&b, p)
	case *models.LinkedInPost:
		writeLinkedIn(&b, p)
	case *models.GenericContent:
		writeGeneric(&b, p)
	default:
		b.WriteString("_No content._\n")
	}

	fmt.Fprintf(&b, "\n---\n_Generated by %s", or(content.Model, "unknown model"))
	if !content.GeneratedAt.IsZero() {
		fmt.Fprintf(&b, " at %s", content.GeneratedAt.UTC().Format("2006-01-02 15:04 MST"))
	}
	b.WriteString("_\n")
	return b.String()
}

// HTML renders the Markdown form through blackfriday.
func HTML(content models.GeneratedContent) string {
	return string(blackfriday.Run([]byte(Markdown(content))))
}

func writeTwitter(b *strings.Builder, p *models.TwitterThread) {
	tweets := []string{or(p.Hook, "Your compelling hook tweet here...")}
	if len(p.Thread) == 0 {
		tweets = append(tweets, "Tweet content will be generated here...")
	} else {
		tweets = append(tweets, p.Thread...)
	}
	tweets = append(tweets, or(p.CTA, "Call to action tweet..."))

	b.WriteString("# Twitter Thread\n\n")
	for i, tweet := range tweets {
		fmt.Fprintf(b, "%d. %s\n", i+1, oneLine(tweet))
	}
	writeTags(b, p.Hashtags)
}

func writeInstagram(b *strings.Builder, p *models.InstagramPost) {
	b.WriteString("# Instagram Post\n\n")
	b.WriteString(or(p.Caption, "Your Instagram caption will be generated here..."))
	b.WriteString("\n\n")
	if p.CTA != "" {
		fmt.Fprintf(b, "**%s**\n\n", p.CTA)
	}
	if p.ImagePrompt != "" {
		fmt.Fprintf(b, "> Image idea: %s\n\n", oneLine(p.ImagePrompt))
	}
	writeTags(b, p.Hashtags)
}

func writeBlog(b *strings.Builder, p *models.BlogPost) {
	fmt.Fprintf(b, "# %s\n\n", or(p.Title, "Untitled Post"))
	if p.MetaDescription != "" {
		fmt.Fprintf(b, "_%s_\n\n", oneLine(p.MetaDescription))
	}
	if p.Introduction != "" {
		fmt.Fprintf(b, "%s\n\n", p.Introduction)
	}
	if len(p.Sections) == 0 {
		b.WriteString("Content sections will be generated here...\n\n")
	}
	for i, s := range p.Sections {
		fmt.Fprintf(b, "## %s\n\n%s\n\n",
			or(s.Heading, fmt.Sprintf("Section %d", i+1)),
			or(s.Content, "Section content will be generated here..."))
	}
	if p.Conclusion != "" {
		fmt.Fprintf(b, "## Conclusion\n\n%s\n\n", p.Conclusion)
	}
	writeTags(b, p.Tags)
}

func writeYouTube(b *strings.Builder, p *models.YouTubeScript) {
	fmt.Fprintf(b, "# %s\n\n", or(p.Title, "Untitled Video"))
	if p.Description != "" {
		fmt.Fprintf(b, "%s\n\n", p.Description)
	}
	fmt.Fprintf(b, "## Hook\n\n%s\n\n", or(p.Hook, "Engaging hook will be generated here..."))
	fmt.Fprintf(b, "## Introduction\n\n%s\n\n", or(p.Introduction, "Video introduction will be generated here..."))
	b.WriteString("## Main Content\n\n")
	for i, seg := range p.MainContent {
		fmt.Fprintf(b, "- **[%s] %s**: %s\n",
			or(seg.Timestamp, fmt.Sprintf("%d:00", i+1)),
			or(seg.Section, fmt.Sprintf("Section %d", i+1)),
			oneLine(or(seg.Content, "Content section")))
	}
	fmt.Fprintf(b, "\n## Conclusion\n\n%s\n\n",
		or(p.Conclusion, "Concluding remarks and call to action will be generated here..."))
	writeTags(b, p.Tags)
}

func writeEmail(b *strings.Builder, p *models.EmailCampaign) {
	fmt.Fprintf(b, "# %s\n\n", or(p.Subject, "Email subject will be generated here"))
	if p.Preheader != "" {
		fmt.Fprintf(b, "_%s_\n\n", oneLine(p.Preheader))
	}
	fmt.Fprintf(b, "%s\n\n", or(p.Greeting, "Hello there,"))
	fmt.Fprintf(b, "%s\n\n", or(p.Body, "Email content will be generated here..."))
	fmt.Fprintf(b, "**%s**\n\n", or(p.CTA, "Take Action"))
	for _, line := range strings.Split(or(p.Signature, "Best regards,\nYour Name"), "\n") {
		fmt.Fprintf(b, "%s  \n", line)
	}
	if p.PS != "" {
		fmt.Fprintf(b, "\nP.S. %s\n", p.PS)
	}
}

func writeLinkedIn(b *strings.Builder, p *models.LinkedInPost) {
	b.WriteString("# LinkedIn Post\n\n")
	fmt.Fprintf(b, "**%s**\n\n", oneLine(or(p.Hook, "Your compelling hook will be generated here...")))
	fmt.Fprintf(b, "%s\n\n", or(p.Story, "Your story content will be generated here..."))
	fmt.Fprintf(b, "%s\n\n", or(p.Insights, "Key insights will be generated here..."))
	fmt.Fprintf(b, "%s\n\n", or(p.CTA, "Your call to action will be generated here..."))
	writeTags(b, p.Hashtags)
}

func writeGeneric(b *strings.Builder, p *models.GenericContent) {
	fmt.Fprintf(b, "# %s\n\n", or(p.Title, "Untitled"))
	fmt.Fprintf(b, "%s\n\n", or(p.Content, "Content will be generated here..."))
	if p.CTA != "" {
		fmt.Fprintf(b, "**%s**\n\n", p.CTA)
	}
	writeTags(b, p.Hashtags)
}

func writeTags(b *strings.Builder, tags []string) {
	if len(tags) == 0 {
		return
	}
	quoted := make([]string, 0, len(tags))
	for _, t := range tags {
		quoted = append(quoted, "`"+t+"`")
	}
	fmt.Fprintf(b, "%s\n", strings.Join(quoted, " "))
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func or(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
