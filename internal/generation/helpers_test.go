package generation

import (
	"context"
	"sync"

	"github.com/spacesedan/postcraft/internal/models"
)

type fakeModel struct {
	mu      sync.Mutex
	replies []string
	errs    []error
	prompts []Prompt
}

func (f *fakeModel) Invoke(_ context.Context, prompt Prompt) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i := len(f.prompts)
	f.prompts = append(f.prompts, prompt)
	var err error
	if i < len(f.errs) {
		err = f.errs[i]
	}
	if err != nil {
		return "", err
	}
	if i < len(f.replies) {
		return f.replies[i], nil
	}
	if len(f.replies) > 0 {
		return f.replies[len(f.replies)-1], nil
	}
	return "", nil
}

func (f *fakeModel) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.prompts)
}

func twitterBrief() models.ContentBrief {
	return models.ContentBrief{
		Keyword:     "productivity",
		Goal:        "help people focus",
		Tone:        models.ToneProfessional,
		Creativity:  50,
		ContentType: models.ContentTypeTwitter,
	}
}
