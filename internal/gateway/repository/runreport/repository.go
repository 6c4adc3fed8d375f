// Package runreport stores the JSON report produced at the end of each
// clustering run.
package runreport

import (
	"context"
	"errors"
)

type Store interface {
	Put(ctx context.Context, runID string, content []byte) error
	Get(ctx context.Context, runID string) ([]byte, error)
	List(ctx context.Context) ([]string, error)
}

var ErrNotFound = errors.New("run report not found")
