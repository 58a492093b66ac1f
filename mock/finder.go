package mock

import (
	"context"

	"github.com/fwojciec/docpack"
)

var _ docpack.RootFinder = (*RootFinder)(nil)

// RootFinder is a mock implementation of docpack.RootFinder.
type RootFinder struct {
	FindRootFn func(ctx context.Context, start string) (string, error)
}

func (f *RootFinder) FindRoot(ctx context.Context, start string) (string, error) {
	return f.FindRootFn(ctx, start)
}
