package model

// DeviceID is a terminal device number in the kernel's tty_nr encoding.
type DeviceID uint64

// ProcessRecord is one process as captured in a Snapshot.
type ProcessRecord struct {
	PID  int
	TGID int
	EUID uint32
	RUID uint32

	// TTY is the controlling terminal, 0 when the process has none.
	TTY   DeviceID
	Pgrp  int
	TPGID int

	// Ticks is utime+stime in clock ticks.
	Ticks uint64
	// Start is the start time in clock ticks since boot.
	Start   uint64
	Cmdline string
}

// Snapshot is every process on the system, captured once per run.
type Snapshot struct {
	Records []ProcessRecord
}

// Total returns the number of captured records.
func (s *Snapshot) Total() int {
	if s == nil {
		return 0
	}
	return len(s.Records)
}
