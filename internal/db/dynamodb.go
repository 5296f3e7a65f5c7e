package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/spacesedan/postcraft/internal/models"
	"github.com/spacesedan/postcraft/internal/vault"
)

// DynamoAPI is the subset of the DynamoDB client the vault table needs.
type DynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// VaultRepository stores vault records in a DynamoDB table keyed by "id".
// Generated content is kept as a JSON string attribute.
type VaultRepository struct {
	client DynamoAPI
	table  string
}

var _ vault.Repository = (*VaultRepository)(nil)

func NewVaultRepository(client DynamoAPI, table string) *VaultRepository {
	return &VaultRepository{client: client, table: table}
}

type vaultItem struct {
	ID           string                  `dynamodbav:"id"`
	Title        string                  `dynamodbav:"title"`
	Content      string                  `dynamodbav:"content"`
	Platform     string                  `dynamodbav:"platform"`
	Keyword      string                  `dynamodbav:"keyword"`
	Goal         string                  `dynamodbav:"goal"`
	Audience     string                  `dynamodbav:"audience"`
	Tone         string                  `dynamodbav:"tone"`
	Status       string                  `dynamodbav:"status"`
	CreatedAt    time.Time               `dynamodbav:"created_at"`
	UpdatedAt    time.Time               `dynamodbav:"updated_at"`
	Analytics    models.ContentAnalytics `dynamodbav:"analytics"`
	PublishedTo  []models.Publication    `dynamodbav:"published_to,omitempty"`
	Tags         []string                `dynamodbav:"tags,omitempty"`
	ScheduledFor *time.Time              `dynamodbav:"scheduled_for,omitempty"`
}

func toItem(c models.SavedContent) (map[string]types.AttributeValue, error) {
	content, err := json.Marshal(c.Content)
	if err != nil {
		return nil, fmt.Errorf("marshal generated content: %w", err)
	}
	return attributevalue.MarshalMap(vaultItem{
		ID:           c.ID,
		Title:        c.Title,
		Content:      string(content),
		Platform:     string(c.Platform),
		Keyword:      c.Keyword,
		Goal:         c.Goal,
		Audience:     c.Audience,
		Tone:         string(c.Tone),
		Status:       string(c.Status),
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
		Analytics:    c.Analytics,
		PublishedTo:  c.PublishedTo,
		Tags:         c.Tags,
		ScheduledFor: c.ScheduledFor,
	})
}

func fromItem(av map[string]types.AttributeValue) (models.SavedContent, error) {
	var item vaultItem
	if err := attributevalue.UnmarshalMap(av, &item); err != nil {
		return models.SavedContent{}, fmt.Errorf("unmarshal vault item: %w", err)
	}
	var content models.GeneratedContent
	if item.Content != "" {
		if err := json.Unmarshal([]byte(item.Content), &content); err != nil {
			return models.SavedContent{}, fmt.Errorf("unmarshal generated content for %s: %w", item.ID, err)
		}
	}
	return models.SavedContent{
		ID:           item.ID,
		Title:        item.Title,
		Content:      content,
		Platform:     models.ContentType(item.Platform),
		Keyword:      item.Keyword,
		Goal:         item.Goal,
		Audience:     item.Audience,
		Tone:         models.Tone(item.Tone),
		Status:       models.ContentStatus(item.Status),
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
		Analytics:    item.Analytics,
		PublishedTo:  item.PublishedTo,
		Tags:         item.Tags,
		ScheduledFor: item.ScheduledFor,
	}, nil
}

func (r *VaultRepository) key(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

func (r *VaultRepository) Save(ctx context.Context, content models.SavedContent) error {
	item, err := toItem(content)
	if err != nil {
		return err
	}
	if _, err := r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	}); err != nil {
		return fmt.Errorf("[DynamoDB] Failed to put vault item %s: %w", content.ID, err)
	}
	return nil
}

func (r *VaultRepository) Get(ctx context.Context, id string) (models.SavedContent, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key:       r.key(id),
	})
	if err != nil {
		return models.SavedContent{}, fmt.Errorf("[DynamoDB] Failed to get vault item %s: %w", id, err)
	}
	if out.Item == nil {
		return models.SavedContent{}, vault.ErrNotFound
	}
	return fromItem(out.Item)
}

func (r *VaultRepository) List(ctx context.Context) ([]models.SavedContent, error) {
	var all []models.SavedContent
	paginator := dynamodb.NewScanPaginator(r.client, &dynamodb.ScanInput{
		TableName: aws.String(r.table),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("[DynamoDB] Failed to scan vault: %w", err)
		}
		for _, av := range page.Items {
			c, err := fromItem(av)
			if err != nil {
				slog.Warn("[DynamoDB] Skipping unreadable vault item", slog.String("error", err.Error()))
				continue
			}
			all = append(all, c)
		}
	}
	return all, nil
}

func (r *VaultRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(r.table),
		Key:                 r.key(id),
		ConditionExpression: aws.String("attribute_exists(id)"),
	})
	var conditionErr *types.ConditionalCheckFailedException
	if errors.As(err, &conditionErr) {
		return vault.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("[DynamoDB] Failed to delete vault item %s: %w", id, err)
	}
	return nil
}
