package zip

import (
	"archive/zip"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docpack"
)

// Ensure Verifier implements docpack.Verifier at compile time.
var _ docpack.Verifier = (*Verifier)(nil)

// Verifier re-reads a written archive and checks every file entry
// against the source tree it was produced from. It exists because the
// archive is the copy people edit locally; a silent mismatch at write
// time would clobber their work on the next round-trip.
type Verifier struct{}

// NewVerifier creates a new Verifier.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// Verify compares the xxhash64 of every file entry in the archive with
// the xxhash64 of the corresponding file under sourceDir. It returns the
// number of entries checked, and ECONFLICT on the first mismatch.
// Directory marker entries are skipped.
func (v *Verifier) Verify(ctx context.Context, archivePath, sourceDir string) (int, error) {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return 0, err
	}
	defer r.Close()

	checked := 0
	for _, f := range r.File {
		if strings.HasSuffix(f.Name, "/") {
			continue
		}

		got, err := hashEntry(f)
		if err != nil {
			return checked, err
		}

		want, err := hashFile(filepath.Join(sourceDir, filepath.FromSlash(f.Name)))
		if err != nil {
			return checked, err
		}

		if got != want {
			return checked, docpack.Errorf(docpack.ECONFLICT, "archived copy of %s does not match the source file", f.Name)
		}
		checked++
	}

	return checked, nil
}

func hashEntry(f *zip.File) (uint64, error) {
	rc, err := f.Open()
	if err != nil {
		return 0, err
	}
	defer rc.Close()

	h := xxhash.New()
	if _, err := io.Copy(h, rc); err != nil {
		return 0, err
	}
	return h.Sum64(), nil
}

func hashFile(path string) (uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	h := xxhash.New()
	if _, err := io.Copy(h, f); err != nil {
		return 0, err
	}
	return h.Sum64(), nil
}
