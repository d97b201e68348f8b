package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-ini/ini"

	"github.com/codacy-open-source-projects-scans/procps/pkg/model"
)

// Logind reads the session files systemd-logind keeps under
// /run/systemd/sessions, one KEY=VALUE file per session.
type Logind struct {
	Dir string
}

func (l *Logind) Name() string { return "logind" }

// Sessions returns every session with a readable file. A missing
// directory means nobody is logged in.
func (l *Logind) Sessions() ([]model.LoginSession, error) {
	entries, err := os.ReadDir(l.Dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error getting sessions: %w", err)
	}

	var sessions []model.LoginSession
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".") || strings.HasSuffix(e.Name(), ".ref") || !e.Type().IsRegular() {
			continue
		}
		s, err := readSessionFile(filepath.Join(l.Dir, e.Name()))
		if err != nil {
			continue
		}
		s.ID = e.Name()
		sessions = append(sessions, s)
	}
	return sessions, nil
}

func readSessionFile(path string) (model.LoginSession, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:     true,
		SkipUnrecognizableLines: true,
	}, path)
	if err != nil {
		return model.LoginSession{}, err
	}
	sec := cfg.Section("")

	s := model.LoginSession{
		Kind:       model.SessionLogind,
		User:       sec.Key("USER").String(),
		TTY:        cleanTTY(sec.Key("TTY").String()),
		LeaderPID:  sec.Key("LEADER").MustInt(-1),
		RemoteHost: sec.Key("REMOTE_HOST").String(),
	}
	if s.User == "" {
		return model.LoginSession{}, fmt.Errorf("%s: get user name failed", path)
	}
	if uid, err := strconv.ParseUint(sec.Key("UID").String(), 10, 32); err == nil {
		s.UID, s.HasUID = uint32(uid), true
	}
	if usec, err := sec.Key("REALTIME").Int64(); err == nil {
		s.Started = time.UnixMicro(usec)
	}
	return s, nil
}
