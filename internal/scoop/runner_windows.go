//go:build windows

package scoop

import (
	"os/exec"
	"strconv"
	"syscall"
)

// killProcessTree makes context cancellation terminate the shell and
// everything it spawned. There is no process-group kill syscall here, so
// taskkill walks and force-kills the tree rooted at the shell.
func killProcessTree(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{CreationFlags: syscall.CREATE_NEW_PROCESS_GROUP}
	cmd.Cancel = func() error {
		kill := exec.Command("taskkill", "/T", "/F", "/PID", strconv.Itoa(cmd.Process.Pid))
		kill.SysProcAttr = &syscall.SysProcAttr{HideWindow: true}
		return kill.Run()
	}
}
