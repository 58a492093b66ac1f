package mock

import (
	"context"

	"github.com/fwojciec/docpack"
)

var _ docpack.Archiver = (*Archiver)(nil)

// Archiver is a mock implementation of docpack.Archiver.
type Archiver struct {
	ArchiveFn func(ctx context.Context, plan *docpack.Plan) (*docpack.Summary, error)
}

func (a *Archiver) Archive(ctx context.Context, plan *docpack.Plan) (*docpack.Summary, error) {
	return a.ArchiveFn(ctx, plan)
}
