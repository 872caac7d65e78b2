// Package archive stores downloaded reports, either in a local directory or
// in an S3-compatible bucket.
package archive

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/renewadmin/internal/client/config"
	"github.com/dmitrijs2005/renewadmin/internal/filex"
)

// Sink accepts a finished report and returns where it ended up.
type Sink interface {
	Put(ctx context.Context, name, contentType string, data []byte) (string, error)
}

// FileSink writes reports into a directory, never overwriting an older file.
type FileSink struct {
	dir string
}

// NewFileSink creates dir when needed.
func NewFileSink(dir string) (*FileSink, error) {
	abs, err := filex.EnsureDir(dir)
	if err != nil {
		return nil, err
	}
	return &FileSink{dir: abs}, nil
}

func (s *FileSink) Put(ctx context.Context, name, contentType string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	path := filex.UniquePath(s.dir, filepath.Base(name))
	if err := os.WriteFile(path, data, 0o640); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}

// NewSinkFromConfig picks the S3 bucket when one is configured and the
// report directory otherwise.
func NewSinkFromConfig(ctx context.Context, cfg *config.Config) (Sink, error) {
	if cfg.S3Bucket != "" {
		return NewS3Sink(ctx, S3Options{
			Bucket:       cfg.S3Bucket,
			Region:       cfg.S3Region,
			BaseEndpoint: cfg.S3BaseEndpoint,
			AccessKey:    cfg.S3AccessKey,
			SecretKey:    cfg.S3SecretKey,
		})
	}
	return NewFileSink(cfg.ReportDir)
}
