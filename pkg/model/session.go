package model

import "time"

// SessionKind tells which registry a LoginSession came from.
type SessionKind int

const (
	SessionUtmp SessionKind = iota
	SessionLogind
)

// LoginSession is one active interactive login.
type LoginSession struct {
	Kind SessionKind
	// ID is the logind session id; empty for utmp entries.
	ID        string
	User      string
	UID       uint32
	HasUID    bool
	TTY       string
	LeaderPID int
	Started   time.Time
	// XDM is set for login records whose line is an X display such as ":0".
	XDM bool

	// RemoteHost is the registry's remote host. Only logind sessions have one.
	RemoteHost string
	// Host is the fixed-capacity host field, possibly unterminated or garbled.
	Host []byte
	// Addr is the packed remote address (ut_addr_v6), network byte order.
	Addr [16]byte
}

// AddrKind tags a RemoteAddr.
type AddrKind int

const (
	AddrNone AddrKind = iota
	AddrIPv4
	AddrIPv6
)

// RemoteAddr is a decoded remote address.
type RemoteAddr struct {
	Kind  AddrKind
	Bytes [16]byte
}

// IPv4 returns the four address bytes of an AddrIPv4 value.
func (a RemoteAddr) IPv4() [4]byte {
	return [4]byte{a.Bytes[0], a.Bytes[1], a.Bytes[2], a.Bytes[3]}
}
