package generation

import (
	"context"

	"github.com/spacesedan/postcraft/internal/models"
	"golang.org/x/sync/errgroup"
)

const maxConcurrentGenerations = 4

type BatchResult struct {
	Brief   models.ContentBrief
	Content models.GeneratedContent
	Err     error
}

// GenerateAll runs independent briefs concurrently. A failure for one brief
// is recorded on its result and does not cancel the others. Results keep
// the input order.
func GenerateAll(ctx context.Context, gen ContentGenerator, briefs []models.ContentBrief) []BatchResult {
	results := make([]BatchResult, len(briefs))

	var g errgroup.Group
	g.SetLimit(maxConcurrentGenerations)
	for i, brief := range briefs {
		g.Go(func() error {
			content, err := gen.Generate(ctx, brief)
			results[i] = BatchResult{Brief: brief, Content: content, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	return results
}
