//go:build linux

package proc

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/unix"

	"github.com/codacy-open-source-projects-scans/procps/pkg/model"
)

type fakeNode struct {
	mode uint32
	rdev uint64
}

func fakeStat(nodes map[string]fakeNode) func(string, *unix.Stat_t) error {
	return func(path string, st *unix.Stat_t) error {
		n, ok := nodes[path]
		if !ok {
			return errors.New("no such file")
		}
		*st = unix.Stat_t{Mode: n.mode, Rdev: n.rdev}
		return nil
	}
}

func TestTTYResolverDevice(t *testing.T) {
	pts3 := unix.Mkdev(136, 3)
	tty1 := unix.Mkdev(4, 1)
	nodes := map[string]fakeNode{
		"/dev/pts/3": {mode: unix.S_IFCHR | 0o620, rdev: pts3},
		"/dev/tty1":  {mode: unix.S_IFCHR | 0o620, rdev: tty1},
		"/dev/pts":   {mode: unix.S_IFDIR | 0o755},
		"/dev/ttyS0": {mode: unix.S_IFCHR | 0o660, rdev: unix.Mkdev(4, 64)},
		"/dev/odd":   {mode: unix.S_IFREG | 0o644, rdev: 7},
	}
	r := &TTYResolver{stat: fakeStat(nodes)}

	for name, tc := range map[string]struct {
		tty string
		dev model.DeviceID
		ok  bool
	}{
		"pts":             {tty: "pts/3", dev: 136<<8 | 3, ok: true},
		"bare pts number": {tty: "3", dev: 136<<8 | 3, ok: true},
		"console":         {tty: "tty1", dev: 4<<8 | 1, ok: true},
		"number as tty":   {tty: "S0", dev: 4<<8 | 64, ok: true},
		"absolute":        {tty: "/dev/pts/3", dev: 136<<8 | 3, ok: true},
		"regular file":    {tty: "odd", ok: false},
		"missing":         {tty: "pts/9", ok: false},
		"empty":           {tty: "", ok: false},
	} {
		name := name
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			dev, ok := r.Device(tc.tty)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.dev, dev)
		})
	}
}

func TestEncodeDevLargeMinor(t *testing.T) {
	// minor 300 spills above bit 20 in tty_nr
	assert.Equal(t, model.DeviceID(136<<8|300&0xff|(300&^0xff)<<12), encodeDev(unix.Mkdev(136, 300)))
}

func TestIdleTimeMissingTerminal(t *testing.T) {
	assert.Equal(t, time.Duration(0), IdleTime("/nonexistent/tty", time.Now()))
}
