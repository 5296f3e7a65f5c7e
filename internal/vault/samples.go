package vault

import (
	"time"

	"github.com/spacesedan/postcraft/internal/models"
)

const sampleModel = "Llama 3.3 70B"

// SampleContent returns the demo library the in-memory vault starts with.
// Timestamps are placed in the days before now so analytics ranges cover
// them.
func SampleContent(now time.Time) []models.SavedContent {
	now = now.UTC().Truncate(time.Hour)
	day := 24 * time.Hour

	return []models.SavedContent{
		sample(
			"1", now.Add(-1*day), models.ContentTypeBlog,
			"10 Productivity Tips for Remote Workers",
			"productivity", "help remote workers be more productive", "remote workers", models.ToneProfessional,
			&models.BlogPost{
				Title:        "10 Productivity Tips for Remote Workers",
				Introduction: "Working from home can be challenging, but with the right strategies, you can boost your productivity and maintain work-life balance.",
				Sections: []models.BlogSection{
					{Heading: "Set Up a Dedicated Workspace", Content: "Having a specific area for work helps create mental boundaries between work and personal life. Choose a quiet corner, invest in good lighting, and keep it organized."},
					{Heading: "Establish a Routine", Content: "Consistency is key to productivity. Wake up at the same time, get dressed as if you're going to the office, and stick to regular work hours."},
					{Heading: "Take Regular Breaks", Content: "Don't forget to step away from your desk. Use the Pomodoro Technique: work for 25 minutes, then take a 5-minute break."},
				},
				Conclusion: "Implementing these tips will boost your productivity and help you thrive in a remote work environment.",
				Tags:       []string{"productivity", "remote work", "tips"},
			},
			models.ContentAnalytics{Views: 3200, Likes: 245, Comments: 89, Shares: 67, EngagementRate: 12.5, ClickThroughRate: 3.2, Impressions: 8500, Reach: 7200},
			"blog-001", "https://yourblog.com/productivity-tips",
			[]string{"productivity", "remote work", "work from home"},
		),
		sample(
			"2", now.Add(-3*day), models.ContentTypeTwitter,
			"The Future of AI in Marketing",
			"AI marketing", "educate about AI in marketing", "marketers", models.ToneProfessional,
			&models.TwitterThread{
				Hook: "🧵 The AI revolution in marketing is here. Here's what you need to know:",
				Thread: []string{
					"AI is transforming how we understand customers through advanced data analysis",
					"Personalization at scale is now possible with machine learning algorithms",
					"Predictive analytics helps forecast trends and customer behavior",
					"Automation frees up time for strategic thinking and creative work",
					"But remember: AI enhances human creativity, it doesn't replace it",
				},
				Hashtags: []string{"#AI", "#Marketing", "#Future", "#Technology", "#Innovation"},
				CTA:      "What's your experience with AI in marketing? Share your thoughts below! 👇",
			},
			models.ContentAnalytics{Views: 1890, Likes: 156, Comments: 34, Shares: 78, EngagementRate: 14.2, ClickThroughRate: 2.8, Impressions: 4200, Reach: 3800},
			"tweet-123456", "https://twitter.com/yourbrand/status/123456",
			[]string{"AI", "marketing", "technology"},
		),
		sample(
			"3", now.Add(-5*day), models.ContentTypeLinkedIn,
			"Building Your Personal Brand on LinkedIn",
			"personal branding", "help professionals build their brand", "professionals", models.ToneInspirational,
			&models.LinkedInPost{
				Hook:     "Your personal brand is your most valuable career asset. Here's how to build it:",
				Story:    "I used to think personal branding was just for influencers. I was wrong.\n\nAfter 5 years of building my presence on LinkedIn, I've learned that authentic personal branding opens doors you never knew existed.\n\nHere's what I wish I knew when I started:",
				Insights: "• Be consistent with your message and values\n• Share your expertise generously\n• Engage authentically with others' content\n• Tell your story, including failures and lessons learned\n• Focus on providing value, not just promoting yourself",
				CTA:      "What's one piece of advice you'd give to someone starting their personal branding journey?",
				Hashtags: []string{"#PersonalBranding", "#LinkedIn", "#CareerGrowth", "#Professional", "#Networking"},
			},
			models.ContentAnalytics{Views: 2100, Likes: 189, Comments: 45, Shares: 23, EngagementRate: 12.2, ClickThroughRate: 1.9, Impressions: 5600, Reach: 4800},
			"linkedin-789", "https://linkedin.com/posts/yourbrand-789",
			[]string{"personal branding", "career", "networking"},
		),
		sample(
			"4", now.Add(-8*day), models.ContentTypeInstagram,
			"Social Media Strategy for 2025",
			"social media strategy", "help creators plan for 2025", "content creators", models.ToneInspirational,
			&models.InstagramPost{
				Caption:     "✨ Ready to dominate social media in 2025? Here's your complete strategy guide ✨\n\n🎯 Focus on authentic storytelling over perfect posts\n📱 Embrace short-form video content\n🤝 Build genuine community, not just followers\n📊 Use data to guide your content decisions\n🔄 Repurpose content across platforms strategically\n\nThe social media landscape is evolving fast. Those who adapt and stay authentic will thrive.\n\nDouble tap if you're ready to level up your social media game! 💪",
				Hashtags:    []string{"#SocialMediaStrategy", "#2025Trends", "#ContentCreator", "#DigitalMarketing", "#SocialMedia", "#Strategy", "#Growth", "#Engagement", "#Community", "#Authentic"},
				CTA:         "Save this post for your 2025 planning! What's your biggest social media goal for next year?",
				ImagePrompt: "A modern, colorful infographic showing social media strategy elements with icons and charts",
			},
			models.ContentAnalytics{Views: 2800, Likes: 234, Comments: 67, Shares: 45, EngagementRate: 12.4, ClickThroughRate: 2.1, Impressions: 6200, Reach: 5400},
			"instagram-456", "https://instagram.com/p/456",
			[]string{"social media", "strategy", "2025"},
		),
	}
}

func sample(
	id string, created time.Time, platform models.ContentType,
	title, keyword, goal, audience string, tone models.Tone,
	payload models.Payload, analytics models.ContentAnalytics,
	postID, url string, tags []string,
) models.SavedContent {
	return models.SavedContent{
		ID:    id,
		Title: title,
		Content: models.GeneratedContent{
			Platform:    platform,
			GeneratedAt: created,
			Model:       sampleModel,
			Payload:     payload,
		},
		Platform:  platform,
		Keyword:   keyword,
		Goal:      goal,
		Audience:  audience,
		Tone:      tone,
		Status:    models.StatusPublished,
		CreatedAt: created,
		UpdatedAt: created,
		Analytics: analytics,
		PublishedTo: []models.Publication{{
			Platform:    string(platform),
			PostID:      postID,
			PublishedAt: created.Add(time.Hour),
			URL:         url,
			Performance: models.PostPerformance{
				Views:    analytics.Views,
				Likes:    analytics.Likes,
				Comments: analytics.Comments,
				Shares:   analytics.Shares,
			},
		}},
		Tags: tags,
	}
}
