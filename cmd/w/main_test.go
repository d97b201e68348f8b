package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/codacy-open-source-projects-scans/procps/pkg/model"
)

func TestRunHelp(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 0, run([]string{"--help"}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "w [options] [user]")
	assert.Empty(t, stderr.String())
}

func TestRunVersion(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 0, run([]string{"-V"}, &stdout, &stderr))
	assert.Equal(t, "w from procps-ng dev\n", stdout.String())
}

func TestRunBadFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 1, run([]string{"--bogus"}, &stdout, &stderr))
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "Usage:")
}

func TestTTYPath(t *testing.T) {
	assert.Equal(t, "/dev/pts/3", ttyPath(model.LoginSession{TTY: "pts/3"}))
	assert.Equal(t, "/dev", ttyPath(model.LoginSession{}))
}
