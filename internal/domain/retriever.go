package domain

import (
	"context"
	"errors"
)

// ErrEmptyRegion is returned when a lookup is invoked with blank input.
var ErrEmptyRegion = errors.New("region is empty")

// Retriever fetches the raw hackathon payload for a region from the external
// knowledge engine. Implementations return the engine's JSON text verbatim;
// parsing and fallback belong to the pipeline.
type Retriever interface {
	Retrieve(ctx context.Context, region string) ([]byte, error)
}
