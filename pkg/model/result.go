package model

// NoCommand is the WHAT text used until a candidate process is chosen.
const NoCommand = "-"

// Association is what ProcessAssociator learned about one session.
type Association struct {
	// Found is false for stale sessions whose login process is gone.
	Found bool
	// JCPU is the tick sum over every process on the session's terminal.
	JCPU uint64
	// PCPU is the best process's ticks.
	PCPU    uint64
	BestPID int
	Cmdline string
}
