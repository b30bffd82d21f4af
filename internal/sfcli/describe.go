package sfcli

import (
	"context"
	"fmt"
	"os"

	"github.com/TFMV/sfseed/logger"
	"go.uber.org/zap"
)

// Client invokes the sf CLI against one target org.
type Client struct {
	runner Runner
	org    string
	log    *zap.Logger
}

// NewClient creates a client for the given org alias. An empty alias
// uses the CLI's default org.
func NewClient(org string) *Client {
	return NewClientWithRunner(NewRunner(), org)
}

// NewClientWithRunner creates a client with an explicit runner.
func NewClientWithRunner(runner Runner, org string) *Client {
	return &Client{runner: runner, org: org, log: logger.GetLogger()}
}

func (c *Client) orgArgs() []string {
	if c.org == "" {
		return nil
	}
	return []string{"--target-org", c.org}
}

// Describe runs `sf sobject describe` and returns the raw JSON output.
func (c *Client) Describe(ctx context.Context, object string) ([]byte, error) {
	args := append([]string{"sobject", "describe", "--sobject", object}, c.orgArgs()...)

	stdout, stderr, err := c.runner.Run(ctx, "", "sf", args...)
	if err != nil {
		return nil, fmt.Errorf("describe %s: %w: %s", object, err, stderr)
	}
	return stdout, nil
}

// DescribeToFile runs Describe and persists the output.
func (c *Client) DescribeToFile(ctx context.Context, object, path string) ([]byte, error) {
	data, err := c.Describe(ctx, object)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("save describe result: %w", err)
	}
	c.log.Info("describe saved", zap.String("object", object), zap.String("path", path))
	return data, nil
}
