package models

import "time"

type ContentStatus string

const (
	StatusDraft     ContentStatus = "draft"
	StatusPublished ContentStatus = "published"
	StatusScheduled ContentStatus = "scheduled"
)

type ContentAnalytics struct {
	Views            int     `json:"views" dynamodbav:"views"`
	Likes            int     `json:"likes" dynamodbav:"likes"`
	Comments         int     `json:"comments" dynamodbav:"comments"`
	Shares           int     `json:"shares" dynamodbav:"shares"`
	EngagementRate   float64 `json:"engagementRate" dynamodbav:"engagement_rate"`
	ClickThroughRate float64 `json:"clickThroughRate" dynamodbav:"click_through_rate"`
	Impressions      int     `json:"impressions" dynamodbav:"impressions"`
	Reach            int     `json:"reach" dynamodbav:"reach"`
}

// Engagement is likes plus comments plus shares.
func (a ContentAnalytics) Engagement() int {
	return a.Likes + a.Comments + a.Shares
}

type PostPerformance struct {
	Views    int `json:"views" dynamodbav:"views"`
	Likes    int `json:"likes" dynamodbav:"likes"`
	Comments int `json:"comments" dynamodbav:"comments"`
	Shares   int `json:"shares" dynamodbav:"shares"`
}

type Publication struct {
	Platform    string          `json:"platform" dynamodbav:"platform"`
	PostID      string          `json:"postId" dynamodbav:"post_id"`
	PublishedAt time.Time       `json:"publishedAt" dynamodbav:"published_at"`
	URL         string          `json:"url,omitempty" dynamodbav:"url,omitempty"`
	Performance PostPerformance `json:"performance" dynamodbav:"performance"`
}

// SavedContent is a vault record.
type SavedContent struct {
	ID           string           `json:"id"`
	Title        string           `json:"title"`
	Content      GeneratedContent `json:"content"`
	Platform     ContentType      `json:"platform"`
	Keyword      string           `json:"keyword"`
	Goal         string           `json:"goal"`
	Audience     string           `json:"audience"`
	Tone         Tone             `json:"tone"`
	Status       ContentStatus    `json:"status"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
	Analytics    ContentAnalytics `json:"analytics"`
	PublishedTo  []Publication    `json:"publishedTo,omitempty"`
	Tags         []string         `json:"tags,omitempty"`
	ScheduledFor *time.Time       `json:"scheduledFor,omitempty"`
}

// NewContent is what callers hand the vault; ids, timestamps and
// analytics are assigned on save.
type NewContent struct {
	Title    string
	Content  GeneratedContent
	Platform ContentType
	Keyword  string
	Goal     string
	Audience string
	Tone     Tone
	Status   ContentStatus
	Tags     []string
}

// NewContentFromBrief pairs a generation result with the brief that
// produced it.
func NewContentFromBrief(brief ContentBrief, content GeneratedContent) NewContent {
	return NewContent{
		Content:  content,
		Platform: brief.ContentType,
		Keyword:  brief.Keyword,
		Goal:     brief.Goal,
		Audience: brief.Audience,
		Tone:     brief.Tone,
		Status:   StatusDraft,
	}
}

type ContentEventType string

const (
	EventContentSaved     ContentEventType = "content.saved"
	EventContentUpdated   ContentEventType = "content.updated"
	EventContentPublished ContentEventType = "content.published"
	EventContentScheduled ContentEventType = "content.scheduled"
	EventContentDeleted   ContentEventType = "content.deleted"
)

type ContentEvent struct {
	Type       ContentEventType `json:"type"`
	ContentID  string           `json:"contentId"`
	Platform   ContentType      `json:"platform"`
	Platforms  []string         `json:"platforms,omitempty"`
	Status     ContentStatus    `json:"status"`
	OccurredAt time.Time        `json:"occurredAt"`
}

type AnalyticsSummary struct {
	TimeRange         string         `json:"timeRange"`
	TotalContent      int            `json:"totalContent"`
	TotalViews        int            `json:"totalViews"`
	TotalEngagement   int            `json:"totalEngagement"`
	AvgEngagementRate float64        `json:"avgEngagementRate"`
	TopPerforming     []SavedContent `json:"topPerforming"`
	PlatformBreakdown map[string]int `json:"platformBreakdown"`
}
