package scoop

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"time"
)

// Result holds the captured output of a finished command. A non-zero exit
// code is not a runner-level error; callers decide how to interpret it
// together with the stderr text.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// ErrTimeout is returned when a command exceeds its allotted duration. The
// child process has already been killed by the time the caller sees it.
var ErrTimeout = errors.New("command timed out")

// LaunchError wraps a failure to start the command at all (shell or binary
// missing, spawn failure)
type LaunchError struct {
	Err error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("failed to launch command: %v", e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// Runner executes scoop commands through the host shell. Each call spawns an
// independent process; there is no shared state between calls.
type Runner struct {
	// Shell is the command prefix the command line is handed to, e.g.
	// {"powershell", "-NoProfile", "-Command"}.
	Shell []string
}

// NewRunner returns a runner using the platform's default shell
func NewRunner() *Runner {
	if runtime.GOOS == "windows" {
		return &Runner{Shell: []string{"powershell", "-NoProfile", "-Command"}}
	}
	return &Runner{Shell: []string{"sh", "-c"}}
}

// Run executes "scoop <args...>" with the given timeout
func (r *Runner) Run(ctx context.Context, args []string, timeout time.Duration) (*Result, error) {
	return r.RunCommand(ctx, "scoop "+strings.Join(args, " "), timeout)
}

// waitGrace bounds how long Wait may keep collecting output after the
// deadline killed the process tree
const waitGrace = 2 * time.Second

// RunCommand executes an arbitrary command line through the shell, capturing
// stdout and stderr separately. When the timeout fires the whole process
// tree is killed, not just the shell: scoop runs as a grandchild and would
// otherwise survive the shell and keep the output pipes open, stalling Wait
// until it exits on its own.
func (r *Runner) RunCommand(ctx context.Context, commandLine string, timeout time.Duration) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	argv := append(append([]string{}, r.Shell...), commandLine)
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.WaitDelay = waitGrace
	killProcessTree(cmd)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return nil, &LaunchError{Err: err}
	}

	err := cmd.Wait()
	if ctx.Err() == context.DeadlineExceeded {
		return nil, ErrTimeout
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &Result{
				Stdout:   stdout.String(),
				Stderr:   stderr.String(),
				ExitCode: exitErr.ExitCode(),
			}, nil
		}
		return nil, &LaunchError{Err: err}
	}

	return &Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: 0,
	}, nil
}
