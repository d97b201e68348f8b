package session

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/codacy-open-source-projects-scans/procps/pkg/model"
)

// glibc struct utmp, identical on every 64-bit Linux ABI.
const (
	utmpRecordSize  = 384
	utmpUserProcess = 7

	utmpLineSize = 32
	utmpUserSize = 32
	utmpHostSize = 256

	offType = 0
	offPID  = 4
	offLine = 8
	offUser = 44
	offHost = 76
	offSec  = 340
	offAddr = 348
)

// ErrNoSessions means no login record file could be read.
var ErrNoSessions = errors.New("no login records")

// Utmp reads sessions from the first readable login record file.
type Utmp struct {
	Paths []string
}

func (u *Utmp) Name() string { return "utmp" }

func (u *Utmp) Sessions() ([]model.LoginSession, error) {
	for _, path := range u.Paths {
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		return parseUtmp(data), nil
	}
	return nil, ErrNoSessions
}

func parseUtmp(data []byte) []model.LoginSession {
	var sessions []model.LoginSession
	for off := 0; off+utmpRecordSize <= len(data); off += utmpRecordSize {
		if s, ok := parseRecord(data[off : off+utmpRecordSize]); ok {
			sessions = append(sessions, s)
		}
	}
	return sessions
}

func parseRecord(rec []byte) (model.LoginSession, bool) {
	order := binary.NativeEndian
	if int16(order.Uint16(rec[offType:])) != utmpUserProcess {
		return model.LoginSession{}, false
	}
	user := cString(rec[offUser : offUser+utmpUserSize])
	if user == "" {
		return model.LoginSession{}, false
	}
	line := cString(rec[offLine : offLine+utmpLineSize])

	s := model.LoginSession{
		Kind:      model.SessionUtmp,
		User:      user,
		TTY:       cleanTTY(line),
		XDM:       len(line) > 0 && line[0] == ':',
		LeaderPID: int(int32(order.Uint32(rec[offPID:]))),
		Started:   time.Unix(int64(int32(order.Uint32(rec[offSec:]))), 0),
		Host:      bytes.Clone(rec[offHost : offHost+utmpHostSize]),
	}
	copy(s.Addr[:], rec[offAddr:offAddr+16])
	return s, true
}

func cString(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}
