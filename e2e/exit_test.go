//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestApplicationExit(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	err := tf.StartApp("--no-autostart")
	require.NoError(t, err, "Failed to start app")

	// Wait for TUI to initialize and render
	require.True(t, tf.Ready("swipeshow"), "Should show the sample deck title")
	require.True(t, tf.SeePlain("1/5"), "Should show the slide counter")

	t.Logf("Sending 'q' to quit application...")
	require.NoError(t, tf.Quit())

	exited, exitErr := tf.WaitExit(1500 * time.Millisecond)
	if !exited {
		t.Error("Application did not exit after 'q'")
		tf.DumpTailOnFail(t, "exit-failure", 4096)
		return
	}
	require.NoError(t, exitErr, "Process should exit cleanly")
}

func TestApplicationExitWithCtrlC(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	err := tf.StartApp("--no-autostart")
	require.NoError(t, err, "Failed to start app")
	require.True(t, tf.Ready("swipeshow"), "Should show the sample deck title")

	require.NoError(t, tf.SendCtrlC())

	exited, _ := tf.WaitExit(1500 * time.Millisecond)
	if !exited {
		tf.DumpTailOnFail(t, "ctrlc-failure", 4096)
	}
	require.True(t, exited, "app did not exit after ctrl+c")
}
