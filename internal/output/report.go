// Package output renders the w report: the uptime header, the column
// titles and one row per live session.
package output

import (
	"fmt"
	"io"
	"time"

	"github.com/codacy-open-source-projects-scans/procps/internal/config"
	"github.com/codacy-open-source-projects-scans/procps/internal/field"
	"github.com/codacy-open-source-projects-scans/procps/internal/proc"
	"github.com/codacy-open-source-projects-scans/procps/pkg/model"
)

// Row is one session ready to print.
type Row struct {
	Session model.LoginSession
	Assoc   model.Association
	// Idle is the time since the session's terminal was last read.
	Idle time.Duration
}

type Report struct {
	p   Printer
	cfg config.Config
	hz  uint64
	now time.Time
}

// NewReport returns a Report laid out by cfg. hz converts CPU ticks to
// seconds; now is the time login times are shown relative to.
func NewReport(w io.Writer, cfg config.Config, hz uint64, now time.Time) *Report {
	return &Report{p: NewPrinter(w), cfg: cfg, hz: hz, now: now}
}

// Header prints the uptime line and the column titles.
func (r *Report) Header(up proc.Uptime, users int) {
	r.p.Printf("%s\n", cell(UptimeLine(up.AsOf, up.Up, users, up.Load1, up.Load5, up.Load15)))
	r.p.Printf("%-*s TTY      ", r.cfg.UserLen, "USER")
	if r.cfg.From {
		r.p.Printf("%-*s", r.cfg.FromLen, "FROM")
	}
	if r.cfg.Long {
		r.p.Printf(" LOGIN@   IDLE   JCPU   PCPU  WHAT\n")
	} else {
		r.p.Printf("   IDLE WHAT\n")
	}
}

// Row prints one session. Stale sessions, whose login process is gone,
// print nothing.
func (r *Report) Row(row Row) {
	s, a := row.Session, row.Assoc
	if !a.Found {
		return
	}

	r.p.Print(column(s.User, r.cfg.UserLen+1, r.cfg.UserLen))
	r.p.Print(column(s.TTY, 9, 8))
	if r.cfg.From {
		r.p.Print(cell(field.From(s, r.cfg.IPAddr, r.cfg.FromLen)))
	}
	if r.cfg.Long {
		r.p.Print(cell(LoginTime(s.Started, r.now)))
	}
	if s.XDM {
		r.p.Print(cell(" ?xdm? "))
	} else {
		r.p.Print(cell(idleText(row.Idle, r.cfg.OldStyle)))
	}
	if r.cfg.Long {
		r.p.Print(cell(cpuText(a.JCPU, r.hz, r.cfg.OldStyle)))
		if a.PCPU > 0 {
			r.p.Print(cell(cpuText(a.PCPU, r.hz, r.cfg.OldStyle)))
		} else {
			r.p.Print(cell(unknownInterval))
		}
	}

	width := r.cfg.CmdWidth
	if r.cfg.Pids {
		pair := fmt.Sprintf(" %d/%d", s.LeaderPID, a.BestPID)
		r.p.Print(cell(pair))
		if len(pair) > width {
			width = 0
		} else {
			width -= len(pair)
		}
	}
	r.p.Printf(" %s\n", cell(truncate(SanitizeTerminal(a.Cmdline), width)))
}
