package generation

import (
	"fmt"
	"strings"

	"github.com/spacesedan/postcraft/internal/models"
)

// ParseContent decodes normalized model text into the payload shape for
// contentType. It accepts any syntactically valid JSON object whose fields
// have the expected types; field presence is not checked. Any failure is
// reported as ErrParseFailure.
func ParseContent(text string, contentType models.ContentType) (models.Payload, error) {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "{") {
		return nil, fmt.Errorf("%w: no JSON object found", ErrParseFailure)
	}

	payload, err := models.DecodePayload(contentType, []byte(trimmed))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseFailure, err)
	}
	return payload, nil
}
