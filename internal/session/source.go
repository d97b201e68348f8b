// Package session enumerates active login sessions from either the logind
// session registry or the legacy utmp login records.
package session

import (
	"os"
	"path/filepath"

	"github.com/codacy-open-source-projects-scans/procps/pkg/model"
)

// Source lists the sessions currently logged in.
type Source interface {
	Name() string
	Sessions() ([]model.LoginSession, error)
}

const runDir = "/run"

// Detect picks logind on hosts booted with systemd and utmp otherwise.
func Detect() Source {
	return detect(runDir)
}

func detect(run string) Source {
	if fi, err := os.Stat(filepath.Join(run, "systemd", "system")); err == nil && fi.IsDir() {
		return &Logind{Dir: filepath.Join(run, "systemd", "sessions")}
	}
	return &Utmp{Paths: []string{"/var/run/utmp", filepath.Join(run, "utmp")}}
}

// MatchUser reports whether s belongs to want. Login records compare only
// the first utmpUserSize bytes, as their user field holds no more.
func MatchUser(s model.LoginSession, want string) bool {
	if want == "" {
		return true
	}
	if s.Kind == model.SessionUtmp {
		return truncate(s.User, utmpUserSize) == truncate(want, utmpUserSize)
	}
	return s.User == want
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// cleanTTY cuts a terminal name at the first byte that is neither
// alphanumeric nor '/', so garbled records cannot escape /dev.
func cleanTTY(raw string) string {
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '/':
		default:
			return raw[:i]
		}
	}
	return raw
}
