package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docpack/git"
	dpslog "github.com/fwojciec/docpack/slog"
	dpzip "github.com/fwojciec/docpack/zip"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// CLI defines the command-line flags. Everything is optional; with no
// flags the tool zips <repo-root>/export_data/inspection_reports into
// <repo-root>/<stamp>_<repo-name>.zip.
type CLI struct {
	DocsDir string   `help:"Docs folder to zip. Defaults to <repo-root>/export_data/inspection_reports." type:"path"`
	OutDir  string   `help:"Where to write the zip. Defaults to the repo root." type:"path"`
	Stamp   string   `help:"Override the datestamp prefix. Defaults to today's date in Europe/London."`
	Exclude []string `help:"Doublestar glob of source-relative paths to leave out. Repeatable." placeholder:"GLOB"`
	Verify  bool     `help:"Re-read the archive after writing and compare it against the source tree."`
	Verbose bool     `short:"v" help:"Enable debug logging on stderr."`
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docpack"),
		kong.Description("Zip a repository docs folder for offline or local editing"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	logger := newLogger(stderr, cli.Verbose)

	start, err := os.Getwd()
	if err != nil {
		return err
	}

	// Resolve everything up front; the archive file is only created
	// once the whole plan is known to be valid.
	finder := git.NewFinder()
	root, err := finder.FindRoot(ctx, start)
	if err != nil {
		return err
	}

	plan, err := resolvePlan(cli, root, time.Now())
	if err != nil {
		return err
	}

	if err := os.MkdirAll(plan.OutDir, 0o755); err != nil {
		return err
	}

	archiver := dpslog.NewLoggingArchiver(dpzip.NewArchiver(), logger)
	summary, err := archiver.Archive(ctx, plan)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Created: %s\n", summary.ArchivePath)
	fmt.Fprintf(stdout, "Added files: %d, empty dirs also kept: %d\n", summary.FilesAdded, summary.DirsAdded)

	if cli.Verify {
		checked, err := dpzip.NewVerifier().Verify(ctx, summary.ArchivePath, plan.SourceDir)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Verified: %d entries match the source\n", checked)
	}

	return nil
}

// newLogger returns a tinted stderr logger when verbose is set, and a
// discarding logger otherwise.
func newLogger(stderr io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	noColor := true
	if f, ok := stderr.(*os.File); ok {
		noColor = !isatty.IsTerminal(f.Fd())
	}
	return slog.New(tint.NewHandler(stderr, &tint.Options{
		Level:   slog.LevelDebug,
		NoColor: noColor,
	}))
}
