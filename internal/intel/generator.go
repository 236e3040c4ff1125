// Package intel turns raw study notes into structured combat cards using a
// generative-AI service.
package intel

import (
	"context"
	"errors"

	"github.com/warlord-os/warlord/internal/models"
)

var (
	// ErrEmptyInput is returned when the raw notes are empty or blank.
	ErrEmptyInput = errors.New("empty input")

	// ErrRequestFailed is returned when the service cannot be reached or
	// rejects the request.
	ErrRequestFailed = errors.New("intel request failed")

	// ErrMalformedOutput is returned when the model response does not
	// match the required card payload shape.
	ErrMalformedOutput = errors.New("malformed model output")
)

// Generator produces a structured card payload from free text. On failure the
// caller must not mutate the store.
type Generator interface {
	Generate(ctx context.Context, rawText string) (*models.CardPayload, error)
}
