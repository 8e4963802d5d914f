package capture

import (
	"bytes"
	"context"
	"os/exec"
)

// Runner abstracts invocation of the external capture utility so tests can
// substitute a scripted fake for the real executable.
type Runner interface {
	// Run executes the command synchronously and returns whatever the
	// process wrote to stderr alongside the exit error, if any.
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
	// Start launches the command detached and returns as soon as the
	// process has started.
	Start(name string, args ...string) error
}

type execRunner struct{}

// NewRunner returns a Runner backed by os/exec.
func NewRunner() Runner { return execRunner{} }

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stderr.Bytes(), err
}

func (execRunner) Start(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	// Reap the process when it eventually exits. No handle is retained,
	// so a launched interactive capture can never be cancelled or awaited.
	go func() { _ = cmd.Wait() }()
	return nil
}
