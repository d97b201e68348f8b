package session

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codacy-open-source-projects-scans/procps/pkg/model"
)

type utmpEntry struct {
	typ  int16
	pid  int32
	line string
	user string
	host string
	sec  int32
	addr [16]byte
}

func (e utmpEntry) bytes() []byte {
	rec := make([]byte, utmpRecordSize)
	order := binary.NativeEndian
	order.PutUint16(rec[offType:], uint16(e.typ))
	order.PutUint32(rec[offPID:], uint32(e.pid))
	copy(rec[offLine:offLine+utmpLineSize], e.line)
	copy(rec[offUser:offUser+utmpUserSize], e.user)
	copy(rec[offHost:offHost+utmpHostSize], e.host)
	order.PutUint32(rec[offSec:], uint32(e.sec))
	copy(rec[offAddr:], e.addr[:])
	return rec
}

func writeUtmp(t *testing.T, entries ...utmpEntry) string {
	t.Helper()
	var data []byte
	for _, e := range entries {
		data = append(data, e.bytes()...)
	}
	path := filepath.Join(t.TempDir(), "utmp")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestUtmpSessions(t *testing.T) {
	const bootTime = 2
	path := writeUtmp(t,
		utmpEntry{typ: bootTime, line: "~", user: "reboot", sec: 1700000000},
		utmpEntry{typ: utmpUserProcess, pid: 812, line: "tty1", user: "root", sec: 1700000100},
		utmpEntry{typ: utmpUserProcess, pid: 2201, line: "pts/3", user: "alice", host: "10.0.0.5", sec: 1700000200,
			addr: [16]byte{10, 0, 0, 5}},
		utmpEntry{typ: utmpUserProcess, pid: 3000, line: ":0", user: "bob", host: ":0", sec: 1700000300},
		utmpEntry{typ: 8, pid: 4000, line: "pts/4", user: "gone"},
		utmpEntry{typ: utmpUserProcess, pid: 4100, line: "pts/5"},
	)
	// trailing partial record is ignored
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0)
	require.NoError(t, err)
	_, err = f.Write(make([]byte, 100))
	require.NoError(t, err)
	require.NoError(t, f.Close())

	src := &Utmp{Paths: []string{filepath.Join(t.TempDir(), "missing"), path}}
	sessions, err := src.Sessions()
	require.NoError(t, err)
	require.Len(t, sessions, 3)

	root := sessions[0]
	assert.Equal(t, model.SessionUtmp, root.Kind)
	assert.Equal(t, "root", root.User)
	assert.Equal(t, "tty1", root.TTY)
	assert.Equal(t, 812, root.LeaderPID)
	assert.Equal(t, time.Unix(1700000100, 0), root.Started)
	assert.False(t, root.XDM)

	alice := sessions[1]
	assert.Equal(t, "pts/3", alice.TTY)
	assert.Len(t, alice.Host, utmpHostSize)
	assert.Equal(t, "10.0.0.5", cString(alice.Host))
	assert.Equal(t, [16]byte{10, 0, 0, 5}, alice.Addr)

	bob := sessions[2]
	assert.True(t, bob.XDM)
	assert.Equal(t, "", bob.TTY)
}

func TestUtmpNoFiles(t *testing.T) {
	src := &Utmp{Paths: []string{filepath.Join(t.TempDir(), "missing")}}
	_, err := src.Sessions()
	assert.ErrorIs(t, err, ErrNoSessions)
}

func TestCleanTTY(t *testing.T) {
	for name, tc := range map[string]struct {
		raw  string
		want string
	}{
		"pts":     {raw: "pts/12", want: "pts/12"},
		"console": {raw: "tty1", want: "tty1"},
		"display": {raw: ":0", want: ""},
		"garbled": {raw: "pts/1\x1b[2J", want: "pts/1"},
		"dotdot":  {raw: "../etc/passwd", want: ""},
		"empty":   {raw: "", want: ""},
		"space":   {raw: "tty 2", want: "tty"},
	} {
		name := name
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, cleanTTY(tc.raw))
		})
	}
}

func TestMatchUser(t *testing.T) {
	long := "a-very-long-account-name-that-exceeds-utmp"
	utmp := model.LoginSession{Kind: model.SessionUtmp, User: long[:utmpUserSize]}
	logind := model.LoginSession{Kind: model.SessionLogind, User: "alice"}

	assert.True(t, MatchUser(utmp, ""))
	assert.True(t, MatchUser(utmp, long))
	assert.False(t, MatchUser(utmp, "a-very"))
	assert.True(t, MatchUser(logind, "alice"))
	assert.False(t, MatchUser(logind, "alic"))
	assert.False(t, MatchUser(logind, "alice2"))
}
