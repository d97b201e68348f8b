package proc

import "github.com/tklauser/go-sysconf"

const defaultHertz = 100

// Hertz returns the kernel clock tick rate used by /proc time fields.
func Hertz() uint64 {
	hz, err := sysconf.Sysconf(sysconf.SC_CLK_TCK)
	if err != nil || hz <= 0 {
		return defaultHertz
	}
	return uint64(hz)
}
