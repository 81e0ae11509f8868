package main

import (
	"io"
	"testing"

	"gotest.tools/v3/assert"
)

func executeWithArgs(t *testing.T, args ...string) error {
	t.Helper()
	cmd := newRootCommand()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	return cmd.Execute()
}

func TestShellWithPortIsRejected(t *testing.T) {
	err := executeWithArgs(t, "-t", "legacyshell", "-p", "27017")
	assert.ErrorContains(t, err, "cannot use --port with the legacy shell")
}

func TestUnknownProcessTypeIsRejected(t *testing.T) {
	err := executeWithArgs(t, "--type", "mongoq")
	assert.ErrorContains(t, err, "unknown process type")
}

func TestUnknownServerTypeIsRejected(t *testing.T) {
	err := executeWithArgs(t, "--server-type", "primary")
	assert.ErrorContains(t, err, "unknown server type")
}

func TestPositionalArgsAreRejected(t *testing.T) {
	err := executeWithArgs(t, "27017")
	assert.ErrorContains(t, err, "unknown command")
}
