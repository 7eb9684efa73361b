// Package runner runs the theme pack's external scripts.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"
)

// SpawnError reports that a process could not be started at all.
type SpawnError struct {
	Path string
	Err  error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to start %s: %v", e.Path, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }

// ExitError reports that a process ran and exited with a nonzero status.
// Diagnostic is the trimmed standard error output.
type ExitError struct {
	Path       string
	Code       int
	Diagnostic string
}

func (e *ExitError) Error() string {
	if e.Diagnostic == "" {
		return fmt.Sprintf("%s exited with status %d", e.Path, e.Code)
	}
	return e.Diagnostic
}

// Process is a started, not yet reaped, external process.
type Process interface {
	PID() int
	// Done is closed once the process has exited.
	Done() <-chan struct{}
	// Wait blocks until exit and returns the wait error.
	Wait() error
	Signal(sig os.Signal) error
}

// Runner starts external processes.
type Runner interface {
	// Run executes name with args and waits for it to exit.
	// It returns *SpawnError or *ExitError on failure.
	Run(ctx context.Context, name string, args ...string) error
	// Start launches name with args without waiting.
	Start(name string, args ...string) (Process, error)
}

// ExecRunner is the os/exec backed Runner.
type ExecRunner struct {
	// Env, when non-nil, replaces the inherited environment.
	Env []string
}

// New returns an ExecRunner using the inherited environment.
func New() *ExecRunner {
	return &ExecRunner{}
}

// Run implements Runner.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	if r.Env != nil {
		cmd.Env = r.Env
	}
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	return mapRunError(name, cmd.Run(), stderr.String())
}

// Start implements Runner.
func (r *ExecRunner) Start(name string, args ...string) (Process, error) {
	cmd := exec.Command(name, args...)
	if r.Env != nil {
		cmd.Env = r.Env
	}
	if err := cmd.Start(); err != nil {
		return nil, &SpawnError{Path: name, Err: err}
	}

	p := &execProcess{cmd: cmd, done: make(chan struct{})}
	go func() {
		p.waitErr = cmd.Wait()
		close(p.done)
	}()
	return p, nil
}

func mapRunError(path string, err error, stderr string) error {
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExitError{
			Path:       path,
			Code:       exitErr.ExitCode(),
			Diagnostic: strings.TrimSpace(stderr),
		}
	}
	return &SpawnError{Path: path, Err: err}
}

// IsMissingExecutable reports whether err means the program does not exist.
func IsMissingExecutable(err error) bool {
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "executable file not found")
}

type execProcess struct {
	cmd     *exec.Cmd
	done    chan struct{}
	waitErr error
	mu      sync.Mutex
}

func (p *execProcess) PID() int { return p.cmd.Process.Pid }

func (p *execProcess) Done() <-chan struct{} { return p.done }

func (p *execProcess) Wait() error {
	<-p.done
	return p.waitErr
}

func (p *execProcess) Signal(sig os.Signal) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	select {
	case <-p.done:
		return os.ErrProcessDone
	default:
	}
	return p.cmd.Process.Signal(sig)
}
