package mock

import (
	"context"

	"github.com/fwojciec/docpack"
)

var _ docpack.Verifier = (*Verifier)(nil)

// Verifier is a mock implementation of docpack.Verifier.
type Verifier struct {
	VerifyFn func(ctx context.Context, archivePath, sourceDir string) (int, error)
}

func (v *Verifier) Verify(ctx context.Context, archivePath, sourceDir string) (int, error) {
	return v.VerifyFn(ctx, archivePath, sourceDir)
}
