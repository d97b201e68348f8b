// Package config builds the immutable run configuration of w from the
// command line and the environment.
package config

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/pflag"
)

const (
	MinUserLen     = 8
	MaxUserLen     = 32
	DefaultUserLen = 8

	MinFromLen     = 8
	MaxFromLen     = 256
	DefaultFromLen = 16

	MinCmdWidth = 7
	MaxCmdWidth = 512
)

// Config is decided once in main and passed down by value.
type Config struct {
	Container  bool
	Header     bool
	IgnoreUser bool
	Long       bool
	From       bool
	OldStyle   bool
	IPAddr     bool
	Pids       bool
	Version    bool

	// User restricts the report to one login name when set.
	User string

	UserLen int
	FromLen int
	// CmdWidth is the room left for the WHAT column.
	CmdWidth int
}

// Options carries everything Parse reads besides the arguments.
type Options struct {
	// DefaultFrom is the initial state of the FROM column; -f flips it.
	DefaultFrom bool
	// Getenv looks up an environment variable.
	Getenv func(key string) (string, bool)
	// TermCols is the width of the terminal on stdout, 0 when stdout is not
	// a terminal.
	TermCols int
	// Logger receives configuration warnings.
	Logger *log.Logger
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("w", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false
	fs.BoolP("container", "c", false, "show container uptime")
	fs.BoolP("no-header", "h", false, "do not print header")
	fs.BoolP("no-current", "u", false, "ignore current process username")
	fs.BoolP("short", "s", false, "short format")
	fs.CountP("from", "f", "show remote hostname field")
	fs.BoolP("old-style", "o", false, "old style output")
	fs.BoolP("ip-addr", "i", false, "display IP address instead of hostname (if possible)")
	fs.BoolP("pids", "p", false, "show the PID(s) of processes in WHAT")
	fs.Bool("help", false, "display this help and exit")
	fs.BoolP("version", "V", false, "output version information and exit")
	return fs
}

// Parse reads the command line and the environment. It returns
// pflag.ErrHelp when --help was given.
func Parse(args []string, opts Options) (Config, error) {
	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if help, _ := fs.GetBool("help"); help {
		return Config{}, pflag.ErrHelp
	}
	if fs.NArg() > 1 {
		return Config{}, fmt.Errorf("unexpected argument %q", fs.Arg(1))
	}

	var cfg Config
	noHeader, _ := fs.GetBool("no-header")
	short, _ := fs.GetBool("short")
	toggles, _ := fs.GetCount("from")
	cfg.Header = !noHeader
	cfg.Long = !short
	cfg.From = opts.DefaultFrom != (toggles%2 == 1)
	cfg.Container, _ = fs.GetBool("container")
	cfg.IgnoreUser, _ = fs.GetBool("no-current")
	cfg.OldStyle, _ = fs.GetBool("old-style")
	cfg.IPAddr, _ = fs.GetBool("ip-addr")
	cfg.Pids, _ = fs.GetBool("pids")
	cfg.Version, _ = fs.GetBool("version")
	if cfg.IPAddr {
		cfg.From = true
	}
	cfg.User = fs.Arg(0)

	getenv := opts.Getenv
	if getenv == nil {
		getenv = func(string) (string, bool) { return "", false }
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	if _, ok := getenv("PROCPS_CONTAINER"); ok {
		cfg.Container = true
	}
	cfg.UserLen = DefaultUserLen
	if v, ok := getenv("PROCPS_USERLEN"); ok {
		cfg.UserLen = Atoi(v)
		if cfg.UserLen < MinUserLen || cfg.UserLen > MaxUserLen {
			logger.Printf("User length environment PROCPS_USERLEN must be between %d and %d, ignoring.", MinUserLen, MaxUserLen)
			cfg.UserLen = DefaultUserLen
		}
	}
	cfg.FromLen = DefaultFromLen
	if v, ok := getenv("PROCPS_FROMLEN"); ok {
		cfg.FromLen = Atoi(v)
		if cfg.FromLen < MinFromLen || cfg.FromLen > MaxFromLen {
			logger.Printf("from length environment PROCPS_FROMLEN must be between %d and %d, ignoring", MinFromLen, MaxFromLen)
			cfg.FromLen = DefaultFromLen
		}
	}

	cols := MaxCmdWidth
	if opts.TermCols > 0 {
		cols = opts.TermCols
	} else if v, ok := getenv("COLUMNS"); ok {
		cols = Atoi(v)
	}
	cfg.CmdWidth = cmdWidth(cols, cfg)
	return cfg, nil
}

func cmdWidth(cols int, cfg Config) int {
	used := 21 + cfg.UserLen
	if cfg.From {
		used += cfg.FromLen
	}
	if cfg.Long {
		used += 20
	}
	return clampCmd(clampCmd(cols) - used)
}

func clampCmd(w int) int {
	return min(max(w, MinCmdWidth), MaxCmdWidth)
}

// Atoi parses like C atoi: optional leading blanks and sign, then as many
// digits as there are. Anything unparsable is 0.
func Atoi(s string) int {
	i := 0
	for i < len(s) && (s[i] == ' ' || (s[i] >= '\t' && s[i] <= '\r')) {
		i++
	}
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	n := 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		if n > MaxFromLen*1000 {
			// saturate, the value is rejected anyway
			break
		}
		n = n*10 + int(s[i]-'0')
	}
	if neg {
		return -n
	}
	return n
}

// Usage writes the option summary.
func Usage(w io.Writer) {
	fmt.Fprintf(w, "\nUsage:\n w [options] [user]\n\nOptions:\n")
	fmt.Fprint(w, newFlagSet().FlagUsages())
	fmt.Fprintf(w, "\nFor more details see w(1).\n")
}
