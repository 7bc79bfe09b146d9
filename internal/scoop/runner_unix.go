//go:build !windows

package scoop

import (
	"os/exec"
	"syscall"
)

// killProcessTree makes context cancellation terminate the shell and
// everything it spawned. The shell is started as its own process group
// leader and the kill targets the group.
func killProcessTree(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}
}
