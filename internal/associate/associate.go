// Package associate ties login sessions to the processes running on their
// terminals: it confirms the login process still exists, sums the CPU time
// spent on the terminal and picks the process that best shows what the user
// is doing.
package associate

import (
	"unicode/utf8"

	"github.com/codacy-open-source-projects-scans/procps/pkg/model"
)

// MaxCmdline bounds the stored command line of the chosen process.
const MaxCmdline = 512

// DeviceResolver maps a terminal name to its device number.
type DeviceResolver interface {
	Device(tty string) (model.DeviceID, bool)
}

// UserResolver maps a login name to a uid.
type UserResolver interface {
	UID(name string) (uint32, error)
}

// Options configures an Associator.
type Options struct {
	// IgnoreUser disables the uid check on candidate processes.
	IgnoreUser bool
}

type Associator struct {
	devices DeviceResolver
	users   UserResolver
	opts    Options
}

func New(devices DeviceResolver, users UserResolver, opts Options) *Associator {
	return &Associator{devices: devices, users: users, opts: opts}
}

// candidate is the best process found so far.
type candidate struct {
	start   uint64
	pid     int
	ticks   uint64
	cmdline string
}

func (c *candidate) take(r *model.ProcessRecord) {
	c.start = r.Start
	c.pid = r.PID
	c.ticks = r.Ticks
	c.cmdline = boundCmdline(r.Cmdline)
}

// Associate scans snap once for s. A result with Found unset means the
// session is stale and must not be reported. When the uid check is on and
// the session's uid cannot be resolved, the session counts as stale too.
func (a *Associator) Associate(s model.LoginSession, snap *model.Snapshot) model.Association {
	res := model.Association{BestPID: -1, Cmdline: model.NoCommand}

	var uid uint32
	if !a.opts.IgnoreUser {
		var ok bool
		if uid, ok = a.sessionUID(s); !ok {
			return res
		}
	}
	tty, ttyOK := a.devices.Device(s.TTY)

	best := candidate{pid: -1, cmdline: model.NoCommand}
	var latest uint64
	for i := range snap.Records {
		r := &snap.Records[i]

		if r.TGID == s.LeaderPID {
			res.Found = true
			// seed with the login process unless a candidate is already set
			if best.start == 0 {
				best.take(r)
			}
		}
		if !ttyOK || r.TTY != tty {
			continue
		}
		res.JCPU += r.Ticks

		// Newest process on the terminal so far, used only while nothing
		// better has been chosen.
		if latest == 0 || r.Start > latest {
			latest = r.Start
			if best.cmdline == model.NoCommand {
				start := best.start
				best.take(r)
				best.start = start
			}
		}

		if !a.opts.IgnoreUser && r.EUID != uid && r.RUID != uid {
			continue
		}
		if r.Pgrp != r.TPGID || r.Start <= best.start {
			continue
		}
		best.take(r)
	}

	res.BestPID = best.pid
	res.PCPU = best.ticks
	res.Cmdline = best.cmdline
	return res
}

func (a *Associator) sessionUID(s model.LoginSession) (uint32, bool) {
	if s.HasUID {
		return s.UID, true
	}
	uid, err := a.users.UID(s.User)
	if err != nil {
		return 0, false
	}
	return uid, true
}

// boundCmdline cuts cmdline to MaxCmdline bytes without splitting a
// UTF-8 sequence.
func boundCmdline(cmdline string) string {
	if len(cmdline) <= MaxCmdline {
		return cmdline
	}
	cut := MaxCmdline
	for cut > 0 && !utf8.RuneStart(cmdline[cut]) {
		cut--
	}
	return cmdline[:cut]
}
