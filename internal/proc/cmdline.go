package proc

import "strings"

// joinCmdline renders argv the way ps does: arguments separated by single
// spaces, or the bracketed command name for processes without arguments.
func joinCmdline(argv []string, comm string) string {
	cmdline := strings.TrimSpace(strings.Join(argv, " "))
	if cmdline == "" {
		return "[" + comm + "]"
	}
	return cmdline
}
