package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/pflag"

	"github.com/codacy-open-source-projects-scans/procps/internal/associate"
	"github.com/codacy-open-source-projects-scans/procps/internal/config"
	"github.com/codacy-open-source-projects-scans/procps/internal/output"
	"github.com/codacy-open-source-projects-scans/procps/internal/proc"
	"github.com/codacy-open-source-projects-scans/procps/internal/session"
	"github.com/codacy-open-source-projects-scans/procps/pkg/model"
)

var version = "dev"

// defaultFrom is the initial state of the FROM column. To build with the
// column hidden, use:
// go build -ldflags "-X main.defaultFrom=off" ./cmd/w
var defaultFrom = "on"

func main() {
	log.SetFlags(0)
	log.SetPrefix("w: ")
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Parse(args, config.Options{
		DefaultFrom: defaultFrom != "off",
		Getenv:      os.LookupEnv,
		TermCols:    config.TerminalWidth(int(os.Stdout.Fd())),
		Logger:      log.Default(),
	})
	if errors.Is(err, pflag.ErrHelp) {
		config.Usage(stdout)
		return 0
	}
	if err != nil {
		log.Print(err)
		config.Usage(stderr)
		return 1
	}
	if cfg.Version {
		fmt.Fprintf(stdout, "w from procps-ng %s\n", version)
		return 0
	}

	ctx := context.Background()
	snap, err := proc.Capture(ctx)
	if err != nil {
		log.Print(err)
		return 1
	}

	src := session.Detect()
	sessions, err := src.Sessions()
	if err != nil && !errors.Is(err, session.ErrNoSessions) {
		log.Print(err)
		return 1
	}

	now := time.Now()
	w := bufio.NewWriter(stdout)
	report := output.NewReport(w, cfg, proc.Hertz(), now)
	if cfg.Header {
		up, err := proc.ReadUptime(ctx, cfg.Container, now)
		if err != nil {
			log.Print(err)
			return 1
		}
		report.Header(up, len(sessions))
	}

	assoc := associate.New(proc.NewTTYResolver(), proc.NewUserResolver(), associate.Options{
		IgnoreUser: cfg.IgnoreUser,
	})
	for _, s := range sessions {
		if !session.MatchUser(s, cfg.User) {
			continue
		}
		res := assoc.Associate(s, snap)
		if !res.Found {
			continue
		}
		report.Row(output.Row{
			Session: s,
			Assoc:   res,
			Idle:    proc.IdleTime(ttyPath(s), now),
		})
	}

	if err := w.Flush(); err != nil {
		log.Print(err)
		return 1
	}
	return 0
}

// ttyPath is the device node whose access time tells how long the session
// has been idle.
func ttyPath(s model.LoginSession) string {
	return filepath.Join("/dev", s.TTY)
}
