// Package source supplies raw tabular frames to the report pipeline.
//
// A Source is the dataset connection collaborator: given a dataset
// name it returns an all-text Frame with the source's own column
// headers. Type coercion and renaming happen later, in
// dataset.Normalize. Sources are read-only and idempotent; there is no
// teardown to manage.
package source

import (
	"context"

	"github.com/evscope-org/evscope/dataset"
)

// Source returns the raw frame for a named dataset.
type Source interface {
	GetTable(ctx context.Context, name string) (*dataset.Frame, error)
}
