package generation

import (
	"errors"
	"fmt"
)

// ConfigurationError reports a missing or unusable setting detected before
// any request is sent.
type ConfigurationError struct {
	Setting string
	Reason  string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("generation not configured: %s %s", e.Setting, e.Reason)
}

// GenerationError wraps a failed call to the text model: transport errors,
// non-2xx responses, timeouts and empty completions.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("failed to generate content: %v", e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// ErrParseFailure marks model output that could not be decoded as the
// requested shape. It never leaves the package.
var ErrParseFailure = errors.New("model output is not a JSON object of the requested shape")

func IsConfigurationError(err error) bool {
	var cfgErr *ConfigurationError
	return errors.As(err, &cfgErr)
}

func IsGenerationError(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr)
}
