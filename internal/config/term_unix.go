//go:build linux || darwin || freebsd

package config

import "golang.org/x/sys/unix"

// TerminalWidth returns the column count of the terminal open on fd, or 0
// when fd is not a terminal.
func TerminalWidth(fd int) int {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0
	}
	return int(ws.Col)
}
