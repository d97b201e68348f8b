//go:build linux

package proc

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/codacy-open-source-projects-scans/procps/pkg/model"
)

type stat struct {
	comm  string
	pgrp  int
	tty   model.DeviceID
	tpgid int
	utime uint64
	stime uint64
	start uint64
}

func readStat(root string, pid int) (stat, error) {
	raw, err := os.ReadFile(filepath.Join(root, strconv.Itoa(pid), "stat"))
	if err != nil {
		return stat{}, err
	}
	return parseStat(string(raw))
}

// parseStat decodes /proc/<pid>/stat. The command sits inside the outermost
// parentheses and may itself contain spaces or ')'.
func parseStat(raw string) (stat, error) {
	open := strings.Index(raw, "(")
	close := strings.LastIndex(raw, ")")
	if open == -1 || close == -1 || close < open || close+2 > len(raw) {
		return stat{}, fmt.Errorf("invalid stat format")
	}

	fields := strings.Fields(raw[close+2:])
	if len(fields) < 20 {
		return stat{}, fmt.Errorf("short stat: %d fields", len(fields))
	}

	var (
		st  = stat{comm: raw[open+1 : close]}
		err error
	)
	if st.pgrp, err = strconv.Atoi(fields[2]); err != nil {
		return stat{}, fmt.Errorf("pgrp: %w", err)
	}
	tty, err := strconv.ParseInt(fields[4], 10, 64)
	if err != nil {
		return stat{}, fmt.Errorf("tty_nr: %w", err)
	}
	st.tty = model.DeviceID(uint32(tty))
	if st.tpgid, err = strconv.Atoi(fields[5]); err != nil {
		return stat{}, fmt.Errorf("tpgid: %w", err)
	}
	if st.utime, err = strconv.ParseUint(fields[11], 10, 64); err != nil {
		return stat{}, fmt.Errorf("utime: %w", err)
	}
	if st.stime, err = strconv.ParseUint(fields[12], 10, 64); err != nil {
		return stat{}, fmt.Errorf("stime: %w", err)
	}
	if st.start, err = strconv.ParseUint(fields[19], 10, 64); err != nil {
		return stat{}, fmt.Errorf("starttime: %w", err)
	}
	return st, nil
}
