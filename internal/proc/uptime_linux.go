//go:build linux

package proc

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/load"
	"golang.org/x/sys/unix"
)

// ReadUptime returns the system uptime, or with container set, the time
// since PID 1 was started.
func ReadUptime(ctx context.Context, container bool, now time.Time) (Uptime, error) {
	var u Uptime
	if container {
		var st unix.Stat_t
		if err := unix.Stat(filepath.Join(Root(), "1"), &st); err != nil {
			return u, fmt.Errorf("cannot get container uptime: %w", err)
		}
		u.Up = now.Sub(time.Unix(st.Ctim.Unix()))
	} else {
		secs, err := host.UptimeWithContext(ctx)
		if err != nil {
			return u, fmt.Errorf("cannot get system uptime: %w", err)
		}
		u.Up = time.Duration(secs) * time.Second
	}

	avg, err := load.AvgWithContext(ctx)
	if err != nil {
		return u, fmt.Errorf("cannot get load average: %w", err)
	}
	u.Load1, u.Load5, u.Load15 = avg.Load1, avg.Load5, avg.Load15
	u.AsOf = now
	return u, nil
}
