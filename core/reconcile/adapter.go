package reconcile

import (
	"context"

	"csv-differ/core/record"
)

// Adapter defines how the engine obtains the key index for each side.
// The default implementation in feature/diff reads delimited text through
// core/loader; tests substitute in-memory indices.
type Adapter interface {
	// Name returns a short label used in logs.
	Name() string

	// LoadIndex builds the key index for one side. It is called once per
	// side and the two calls may run concurrently.
	LoadIndex(ctx context.Context, side Side, input Input) (record.Index, error)
}
