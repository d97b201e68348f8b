//go:build !linux

package proc

import (
	"context"

	"github.com/codacy-open-source-projects-scans/procps/pkg/model"
)

func captureOS(ctx context.Context, root string) (*model.Snapshot, error) {
	return nil, ErrUnsupported
}
