package vault

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spacesedan/postcraft/internal/models"
)

var (
	ErrNoPlatforms    = errors.New("at least one platform is required")
	ErrScheduleInPast = errors.New("scheduled time is in the past")
	ErrInvalidStatus  = errors.New("invalid content status")
)

const topPerformingLimit = 5

// EventPublisher receives vault change events.
type EventPublisher interface {
	PublishContentEvent(ctx context.Context, event models.ContentEvent) error
}

type Service struct {
	repo   Repository
	events EventPublisher
	now    func() time.Time
	newID  func() string
}

// NewService builds a vault over repo. events may be nil.
func NewService(repo Repository, events EventPublisher) *Service {
	return &Service{
		repo:   repo,
		events: events,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

func (s *Service) Save(ctx context.Context, in models.NewContent) (models.SavedContent, error) {
	now := s.now().UTC()
	status := in.Status
	if status == "" {
		status = models.StatusDraft
	}
	if !validStatus(status) {
		return models.SavedContent{}, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		title = models.Headline(in.Content.Payload)
	}
	if title == "" {
		title = in.Keyword
	}

	content := models.SavedContent{
		ID:        s.newID(),
		Title:     title,
		Content:   in.Content,
		Platform:  in.Platform,
		Keyword:   in.Keyword,
		Goal:      in.Goal,
		Audience:  in.Audience,
		Tone:      in.Tone,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
		Tags:      in.Tags,
	}
	if err := s.repo.Save(ctx, content); err != nil {
		return models.SavedContent{}, fmt.Errorf("[Vault] failed to save content: %w", err)
	}

	slog.Info("[Vault] Content saved", slog.String("id", content.ID), slog.String("title", content.Title))
	s.emit(ctx, models.EventContentSaved, content, nil)
	return content, nil
}

func (s *Service) Get(ctx context.Context, id string) (models.SavedContent, error) {
	return s.repo.Get(ctx, id)
}

// Filter narrows List results. Empty fields match everything.
type Filter struct {
	Platform models.ContentType
	Status   models.ContentStatus
	Query    string
}

func (f Filter) matches(c models.SavedContent) bool {
	if f.Platform != "" && c.Platform != f.Platform {
		return false
	}
	if f.Status != "" && c.Status != f.Status {
		return false
	}
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		return strings.Contains(strings.ToLower(c.Title), q) ||
			strings.Contains(strings.ToLower(c.Keyword), q)
	}
	return true
}

// List returns matching records, newest first.
func (s *Service) List(ctx context.Context, filter Filter) ([]models.SavedContent, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("[Vault] failed to list content: %w", err)
	}

	out := make([]models.SavedContent, 0, len(all))
	for _, c := range all {
		if filter.matches(c) {
			out = append(out, c)
		}
	}
	slices.SortStableFunc(out, func(a, b models.SavedContent) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return out, nil
}

// ContentUpdate is a partial update; nil fields are left alone.
type ContentUpdate struct {
	Title   *string
	Status  *models.ContentStatus
	Tags    []string
	Content *models.GeneratedContent
}

func (s *Service) Update(ctx context.Context, id string, update ContentUpdate) (models.SavedContent, error) {
	content, err := s.repo.Get(ctx, id)
	if err != nil {
		return models.SavedContent{}, err
	}

	if update.Title != nil {
		content.Title = *update.Title
	}
	if update.Status != nil {
		if !validStatus(*update.Status) {
			return models.SavedContent{}, fmt.Errorf("%w: %q", ErrInvalidStatus, *update.Status)
		}
		content.Status = *update.Status
	}
	if update.Tags != nil {
		content.Tags = update.Tags
	}
	if update.Content != nil {
		content.Content = *update.Content
	}
	content.UpdatedAt = s.now().UTC()

	if err := s.repo.Save(ctx, content); err != nil {
		return models.SavedContent{}, fmt.Errorf("[Vault] failed to update content: %w", err)
	}

	slog.Info("[Vault] Content updated", slog.String("id", id), slog.String("title", content.Title))
	s.emit(ctx, models.EventContentUpdated, content, nil)
	return content, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	content, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	slog.Info("[Vault] Content deleted", slog.String("id", id), slog.String("title", content.Title))
	s.emit(ctx, models.EventContentDeleted, content, nil)
	return nil
}

// Publish records a mock publication per platform and marks the content
// published.
func (s *Service) Publish(ctx context.Context, id string, platforms []string) (models.SavedContent, error) {
	if len(platforms) == 0 {
		return models.SavedContent{}, ErrNoPlatforms
	}
	content, err := s.repo.Get(ctx, id)
	if err != nil {
		return models.SavedContent{}, err
	}

	now := s.now().UTC()
	for _, platform := range platforms {
		postID := s.newID()
		content.PublishedTo = append(content.PublishedTo, models.Publication{
			Platform:    platform,
			PostID:      fmt.Sprintf("%s-%s", platform, postID),
			PublishedAt: now,
			URL:         fmt.Sprintf("https://%s.com/yourbrand/post/%s", platform, postID),
		})
	}
	content.Status = models.StatusPublished
	content.ScheduledFor = nil
	content.UpdatedAt = now

	if err := s.repo.Save(ctx, content); err != nil {
		return models.SavedContent{}, fmt.Errorf("[Vault] failed to publish content: %w", err)
	}

	slog.Info("[Vault] Content published to platforms",
		slog.String("id", id),
		slog.Any("platforms", platforms))
	s.emit(ctx, models.EventContentPublished, content, platforms)
	return content, nil
}

func (s *Service) Schedule(ctx context.Context, id string, at time.Time, platforms []string) (models.SavedContent, error) {
	if len(platforms) == 0 {
		return models.SavedContent{}, ErrNoPlatforms
	}
	now := s.now().UTC()
	if !at.After(now) {
		return models.SavedContent{}, ErrScheduleInPast
	}
	content, err := s.repo.Get(ctx, id)
	if err != nil {
		return models.SavedContent{}, err
	}

	scheduled := at.UTC()
	content.Status = models.StatusScheduled
	content.ScheduledFor = &scheduled
	content.UpdatedAt = now

	if err := s.repo.Save(ctx, content); err != nil {
		return models.SavedContent{}, fmt.Errorf("[Vault] failed to schedule content: %w", err)
	}

	slog.Info("[Vault] Content scheduled",
		slog.String("id", id),
		slog.Time("scheduled_for", scheduled),
		slog.Any("platforms", platforms))
	s.emit(ctx, models.EventContentScheduled, content, platforms)
	return content, nil
}

var timeRanges = map[string]int{
	"7d":  7,
	"30d": 30,
	"90d": 90,
	"1y":  365,
}

// Analytics aggregates records created within timeRange (7d, 30d, 90d or
// 1y). An empty range means 30d; any other value covers a year.
func (s *Service) Analytics(ctx context.Context, timeRange string) (models.AnalyticsSummary, error) {
	if timeRange == "" {
		timeRange = "30d"
	}
	days, ok := timeRanges[timeRange]
	if !ok {
		days = 365
	}
	since := s.now().Add(-time.Duration(days) * 24 * time.Hour)

	all, err := s.repo.List(ctx)
	if err != nil {
		return models.AnalyticsSummary{}, fmt.Errorf("[Vault] failed to load analytics: %w", err)
	}

	summary := models.AnalyticsSummary{
		TimeRange:         timeRange,
		TopPerforming:     []models.SavedContent{},
		PlatformBreakdown: map[string]int{},
	}
	var rateSum float64
	var inRange []models.SavedContent
	for _, c := range all {
		if c.CreatedAt.Before(since) {
			continue
		}
		inRange = append(inRange, c)
		summary.TotalViews += c.Analytics.Views
		summary.TotalEngagement += c.Analytics.Engagement()
		summary.PlatformBreakdown[string(c.Platform)]++
		rateSum += c.Analytics.EngagementRate
	}

	summary.TotalContent = len(inRange)
	if len(inRange) > 0 {
		summary.AvgEngagementRate = math.Round(rateSum/float64(len(inRange))*100) / 100
	}

	slices.SortStableFunc(inRange, func(a, b models.SavedContent) int {
		return cmp.Compare(b.Analytics.EngagementRate, a.Analytics.EngagementRate)
	})
	if len(inRange) > topPerformingLimit {
		inRange = inRange[:topPerformingLimit]
	}
	summary.TopPerforming = append(summary.TopPerforming, inRange...)

	return summary, nil
}

func (s *Service) emit(ctx context.Context, kind models.ContentEventType, content models.SavedContent, platforms []string) {
	if s.events == nil {
		return
	}
	event := models.ContentEvent{
		Type:       kind,
		ContentID:  content.ID,
		Platform:   content.Platform,
		Platforms:  platforms,
		Status:     content.Status,
		OccurredAt: s.now().UTC(),
	}
	if err := s.events.PublishContentEvent(ctx, event); err != nil {
		slog.Warn("[Vault] Failed to publish content event",
			slog.String("type", string(kind)),
			slog.String("id", content.ID),
			slog.String("error", err.Error()))
	}
}

func validStatus(s models.ContentStatus) bool {
	switch s {
	case models.StatusDraft, models.StatusPublished, models.StatusScheduled:
		return true
	}
	return false
}
