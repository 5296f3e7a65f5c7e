package db

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/spacesedan/postcraft/internal/models"
	"github.com/spacesedan/postcraft/internal/vault"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTable is an in-memory stand-in for one DynamoDB table keyed by "id".
type fakeTable struct {
	mu    sync.Mutex
	items map[string]map[string]types.AttributeValue
}

func newFakeTable() *fakeTable {
	return &fakeTable{items: map[string]map[string]types.AttributeValue{}}
}

func idOf(key map[string]types.AttributeValue) string {
	return key["id"].(*types.AttributeValueMemberS).Value
}

func (f *fakeTable) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[idOf(in.Item)] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeTable) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return &dynamodb.GetItemOutput{Item: f.items[idOf(in.Key)]}, nil
}

func (f *fakeTable) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := idOf(in.Key)
	if _, ok := f.items[id]; !ok {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}
	}
	delete(f.items, id)
	return &dynamodb.DeleteItemOutput{}, nil
}

func (f *fakeTable) Scan(_ context.Context, _ *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := &dynamodb.ScanOutput{}
	for _, item := range f.items {
		out.Items = append(out.Items, item)
	}
	return out, nil
}

func TestVaultRepositoryThroughService(t *testing.T) {
	ctx := context.Background()
	repo := NewVaultRepository(newFakeTable(), "ContentVault")
	svc := vault.NewService(repo, nil)

	brief := models.ContentBrief{
		Keyword:     "productivity",
		Goal:        "help remote workers be more productive",
		Tone:        models.ToneProfessional,
		ContentType: models.ContentTypeBlog,
	}
	generated := models.GeneratedContent{
		Platform:    models.ContentTypeBlog,
		GeneratedAt: time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
		Model:       "Llama 3.3 70B",
		Payload: &models.BlogPost{
			Title:        "10 Productivity Tips for Remote Workers",
			Introduction: "Working from home can be challenging.",
			Sections:     []models.BlogSection{{Heading: "Set Up a Dedicated Workspace", Content: "Choose a quiet corner."}},
			Conclusion:   "Thrive remotely.",
			Tags:         []string{"productivity"},
		},
	}

	saved, err := svc.Save(ctx, models.NewContentFromBrief(brief, generated))
	require.NoError(t, err)

	_, err = svc.Publish(ctx, saved.ID, []string{"blog"})
	require.NoError(t, err)

	got, err := repo.Get(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "10 Productivity Tips for Remote Workers", got.Title)
	assert.Equal(t, models.StatusPublished, got.Status)
	require.Len(t, got.PublishedTo, 1)
	assert.Equal(t, "blog", got.PublishedTo[0].Platform)
	assert.True(t, saved.CreatedAt.Equal(got.CreatedAt))
	assert.Equal(t, generated.Payload, got.Content.Payload)
	assert.Equal(t, "Llama 3.3 70B", got.Content.Model)

	list, err := svc.List(ctx, vault.Filter{Platform: models.ContentTypeBlog})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, svc.Delete(ctx, saved.ID))
	_, err = repo.Get(ctx, saved.ID)
	assert.ErrorIs(t, err, vault.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, saved.ID), vault.ErrNotFound)
}

func TestItemKeepsScheduleAndOmitsEmptyCollections(t *testing.T) {
	at := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	item, err := toItem(models.SavedContent{ID: "1", Status: models.StatusScheduled, ScheduledFor: &at})
	require.NoError(t, err)

	assert.Contains(t, item, "scheduled_for")
	assert.NotContains(t, item, "published_to")
	assert.NotContains(t, item, "tags")

	back, err := fromItem(item)
	require.NoError(t, err)
	require.NotNil(t, back.ScheduledFor)
	assert.True(t, at.Equal(*back.ScheduledFor))
}
