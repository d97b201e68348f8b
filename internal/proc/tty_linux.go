//go:build linux

package proc

import (
	"path/filepath"
	"time"

	"golang.org/x/sys/unix"

	"github.com/codacy-open-source-projects-scans/procps/pkg/model"
)

// ttyPrefixes are tried in order for relative terminal names.
var ttyPrefixes = []string{"/dev/", "/dev/tty", "/dev/pts/"}

// TTYResolver maps terminal names to device numbers.
type TTYResolver struct {
	stat func(path string, st *unix.Stat_t) error
}

func NewTTYResolver() *TTYResolver {
	return &TTYResolver{stat: unix.Stat}
}

// Device returns the device number of the terminal called name, encoded
// like the tty_nr field of /proc/<pid>/stat. An absolute name is used as is
// when it exists; otherwise the first prefixed path naming a character device
// wins. ok is false when nothing matches.
func (r *TTYResolver) Device(name string) (dev model.DeviceID, ok bool) {
	if name == "" {
		return 0, false
	}
	var st unix.Stat_t
	if filepath.IsAbs(name) && r.stat(name, &st) == nil {
		return encodeDev(st.Rdev), true
	}
	for _, prefix := range ttyPrefixes {
		path := prefix + name
		if r.stat(path, &st) == nil && st.Mode&unix.S_IFMT == unix.S_IFCHR {
			return encodeDev(st.Rdev), true
		}
	}
	return 0, false
}

// encodeDev converts a stat(2) rdev into the kernel's tty_nr layout:
// minor bits 0-7, major bits 8-19, the rest of minor above.
func encodeDev(rdev uint64) model.DeviceID {
	major := uint64(unix.Major(rdev))
	minor := uint64(unix.Minor(rdev))
	return model.DeviceID(minor&0xff | (major&0xfff)<<8 | (minor&^0xff)<<12)
}

// IdleTime reports how long ago the terminal at path was last read. A
// terminal that cannot be stat'ed counts as never idle. The result is
// negative when the clock went backwards.
func IdleTime(path string, now time.Time) time.Duration {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return 0
	}
	return time.Duration(now.Unix()-int64(st.Atim.Sec)) * time.Second
}
