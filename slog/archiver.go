// Package slog provides logging decorators for docpack interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docpack"
)

// Ensure LoggingArchiver implements docpack.Archiver.
var _ docpack.Archiver = (*LoggingArchiver)(nil)

// LoggingArchiver wraps an Archiver with debug logging.
type LoggingArchiver struct {
	next   docpack.Archiver
	logger *slog.Logger
}

// NewLoggingArchiver creates a new LoggingArchiver.
func NewLoggingArchiver(next docpack.Archiver, logger *slog.Logger) *LoggingArchiver {
	return &LoggingArchiver{next: next, logger: logger}
}

// Archive logs the run's source, counts, and duration, and delegates to
// the wrapped archiver.
func (a *LoggingArchiver) Archive(ctx context.Context, plan *docpack.Plan) (summary *docpack.Summary, err error) {
	defer func(begin time.Time) {
		files, dirs := 0, 0
		if summary != nil {
			files, dirs = summary.FilesAdded, summary.DirsAdded
		}
		a.logger.Info("archive",
			"source", plan.SourceDir,
			"archive", plan.ArchivePath(),
			"files", files,
			"empty_dirs", dirs,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.Archive(ctx, plan)
}
