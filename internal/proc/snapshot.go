package proc

import (
	"context"
	"errors"
	"os"

	"github.com/codacy-open-source-projects-scans/procps/pkg/model"
)

var (
	// ErrNoSnapshot means the process table could not be read at all.
	ErrNoSnapshot = errors.New("unable to load process information")
	// ErrUnsupported is returned on platforms without a /proc filesystem.
	ErrUnsupported = errors.New("not supported on this platform")
)

// Root returns the procfs mount point. HOST_PROC overrides it, the same
// variable gopsutil honours, so both readers agree on one tree.
func Root() string {
	if root := os.Getenv("HOST_PROC"); root != "" {
		return root
	}
	return "/proc"
}

// Capture reads every process on the system once. Processes that exit
// while the table is being read are left out.
func Capture(ctx context.Context) (*model.Snapshot, error) {
	return captureOS(ctx, Root())
}
