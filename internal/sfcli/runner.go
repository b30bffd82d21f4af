// Package sfcli shells out to the Salesforce CLI for the describe and
// bulk import steps that bracket row generation.
package sfcli

import (
	"bytes"
	"context"
	"os/exec"
)

// Runner executes an external command and captures its output. It
// exists so command construction can be tested without a Salesforce CLI
// on the machine.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) (stdout, stderr []byte, err error)
}

type execRunner struct{}

// NewRunner returns a Runner backed by os/exec.
func NewRunner() Runner {
	return execRunner{}
}

func (execRunner) Run(ctx context.Context, dir, name string, args ...string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}
