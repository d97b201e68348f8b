//go:build !linux && !darwin && !freebsd

package config

func TerminalWidth(fd int) int {
	return 0
}
