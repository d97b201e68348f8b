//go:build linux

package proc

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/shirou/gopsutil/v3/process"

	"github.com/codacy-open-source-projects-scans/procps/pkg/model"
)

func captureOS(ctx context.Context, root string) (*model.Snapshot, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoSnapshot, err)
	}

	snap := &model.Snapshot{Records: make([]model.ProcessRecord, 0, len(entries))}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		pid, err := strconv.Atoi(e.Name())
		if err != nil {
			continue
		}
		rec, err := readRecord(ctx, root, pid)
		if err != nil {
			continue
		}
		snap.Records = append(snap.Records, rec)
	}
	return snap, nil
}

func readRecord(ctx context.Context, root string, pid int) (model.ProcessRecord, error) {
	st, err := readStat(root, pid)
	if err != nil {
		return model.ProcessRecord{}, err
	}

	p := &process.Process{Pid: int32(pid)}
	tgid, err := p.TgidWithContext(ctx)
	if err != nil {
		return model.ProcessRecord{}, err
	}
	// real, effective, saved, filesystem
	uids, err := p.UidsWithContext(ctx)
	if err != nil || len(uids) < 2 {
		return model.ProcessRecord{}, fmt.Errorf("pid %d: no uids: %v", pid, err)
	}
	argv, _ := p.CmdlineSliceWithContext(ctx)

	return model.ProcessRecord{
		PID:     pid,
		TGID:    int(tgid),
		RUID:    uint32(uids[0]),
		EUID:    uint32(uids[1]),
		TTY:     st.tty,
		Pgrp:    st.pgrp,
		TPGID:   st.tpgid,
		Ticks:   st.utime + st.stime,
		Start:   st.start,
		Cmdline: joinCmdline(argv, st.comm),
	}, nil
}
