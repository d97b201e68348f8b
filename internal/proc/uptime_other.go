//go:build !linux

package proc

import (
	"context"
	"time"
)

func ReadUptime(ctx context.Context, container bool, now time.Time) (Uptime, error) {
	return Uptime{}, ErrUnsupported
}
