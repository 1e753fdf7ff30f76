// Package process runs external commands and classifies their outcome.
package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	clog "github.com/charmbracelet/log"
)

// Command describes one external process invocation.
type Command struct {
	Name string
	Args []string
	Dir  string   // working directory; empty means the current one
	Env  []string // extra KEY=VALUE pairs appended to the inherited environment
}

func (c Command) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// Runner executes a Command and returns its standard output.
type Runner interface {
	Run(ctx context.Context, cmd Command) ([]byte, error)
}

// ExitError is returned when a process exits with a non-zero code.
type ExitError struct {
	Command Command
	Code    int
	Stderr  string
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("Failed with exit code %d:\n%s", e.Code, e.Stderr)
}

// SpawnError is returned when a process cannot be started at all.
// Its message is the underlying error's message.
type SpawnError struct {
	Command Command
	Err     error
}

func (e *SpawnError) Error() string { return e.Err.Error() }

func (e *SpawnError) Unwrap() error { return e.Err }

// OSRunner runs commands with os/exec.
type OSRunner struct {
	log *clog.Logger
}

var _ Runner = &OSRunner{}

// NewOSRunner creates an OSRunner logging under the given prefix.
func NewOSRunner(logPrefix string) *OSRunner {
	return &OSRunner{log: clog.Default().WithPrefix(logPrefix)}
}

func (r *OSRunner) Run(ctx context.Context, c Command) ([]byte, error) {
	r.log.Debug("Executing command", "cmd", c.Name, "args", c.Args, "workingDir", c.Dir)

	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir
	if len(c.Env) > 0 {
		cmd.Env = append(os.Environ(), c.Env...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if deadline, ok := ctx.Deadline(); ok && errors.Is(ctx.Err(), context.DeadlineExceeded) {
			r.log.Warn("Command timed out", "cmd", c.Name, "args", c.Args, "deadline", deadline, "error", err)
			return nil, fmt.Errorf("%s timed out: %w", c, ctx.Err())
		}

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			r.log.Warn("Command failed", "cmd", c.Name, "args", c.Args, "exitCode", exitErr.ExitCode(), "stderr", stderr.String())
			return nil, &ExitError{Command: c, Code: exitErr.ExitCode(), Stderr: stderr.String()}
		}

		r.log.Warn("Command could not be started", "cmd", c.Name, "args", c.Args, "error", err)
		return nil, &SpawnError{Command: c, Err: err}
	}

	r.log.Debug("Command succeeded", "cmd", c.Name, "args", c.Args, "outputLen", stdout.Len())
	return stdout.Bytes(), nil
}
