package driven

import (
	"context"

	"github.com/ericfisherdev/prreview/internal/domain/model"
)

// ModelClient defines the driven port for the language model. Given a fully
// rendered prompt it returns the model's suggestions, or an error covering
// any transport, parsing, or model-side failure. The pipeline treats an
// error (or a nil slice) as zero suggestions for that unit; a single unit's
// failure never aborts the run.
type ModelClient interface {
	Review(ctx context.Context, prompt string) ([]model.Suggestion, error)
}
