//go:build linux

package session

import (
	"os"
	"path/filepath"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codacy-open-source-projects-scans/procps/pkg/model"
)

const sshSession = `# This is private data. Do not parse.
UID=1000
USER=alice
ACTIVE=1
IS_DISPLAY=0
STATE=active
REMOTE=1
TYPE=tty
CLASS=user
SCOPE=session-4.scope
FIFO=/run/systemd/sessions/4.ref
TTY=pts/0
REMOTE_HOST=192.168.1.20
SERVICE=sshd
LEADER=1234
REALTIME=1700000000123456
MONOTONIC=52311234
`

const consoleSession = `# This is private data. Do not parse.
UID=0
USER=root
TTY=tty1
SEAT=seat0
LEADER=700
REALTIME=1699990000000000
`

func TestLogindSessions(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "4"), []byte(sshSession), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c1"), []byte(consoleSession), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".#4abcd"), []byte(sshSession), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "9"), []byte("# no user\nLEADER=1\n"), 0o644))
	require.NoError(t, syscall.Mkfifo(filepath.Join(dir, "4.ref"), 0o600))

	src := &Logind{Dir: dir}
	sessions, err := src.Sessions()
	require.NoError(t, err)
	require.Len(t, sessions, 2)

	ssh := sessions[0]
	assert.Equal(t, model.SessionLogind, ssh.Kind)
	assert.Equal(t, "4", ssh.ID)
	assert.Equal(t, "alice", ssh.User)
	assert.True(t, ssh.HasUID)
	assert.Equal(t, uint32(1000), ssh.UID)
	assert.Equal(t, "pts/0", ssh.TTY)
	assert.Equal(t, 1234, ssh.LeaderPID)
	assert.Equal(t, "192.168.1.20", ssh.RemoteHost)
	assert.Equal(t, time.UnixMicro(1700000000123456), ssh.Started)

	console := sessions[1]
	assert.Equal(t, "c1", console.ID)
	assert.Equal(t, uint32(0), console.UID)
	assert.True(t, console.HasUID)
	assert.Equal(t, "", console.RemoteHost)
}

func TestLogindMissingLeader(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "7"), []byte("USER=carol\n"), 0o644))

	sessions, err := (&Logind{Dir: dir}).Sessions()
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, -1, sessions[0].LeaderPID)
	assert.False(t, sessions[0].HasUID)
}

func TestLogindMissingDirectory(t *testing.T) {
	sessions, err := (&Logind{Dir: filepath.Join(t.TempDir(), "sessions")}).Sessions()
	assert.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestDetect(t *testing.T) {
	run := t.TempDir()
	assert.Equal(t, "utmp", detect(run).Name())

	require.NoError(t, os.MkdirAll(filepath.Join(run, "systemd", "system"), 0o755))
	src := detect(run)
	require.Equal(t, "logind", src.Name())
	assert.Equal(t, filepath.Join(run, "systemd", "sessions"), src.(*Logind).Dir)
}
