package sfcli

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// bulkEnvelope is the shape of `sf data import bulk --json` output, for
// both the success and the failure path.
type bulkEnvelope struct {
	Status int `json:"status"`
	Result struct {
		JobID string `json:"jobId"`
	} `json:"result"`
	Message  string   `json:"message"`
	Actions  []string `json:"actions"`
	ExitCode int      `json:"exitCode"`
}

// quotedCommand extracts the double-quoted follow-up command the CLI
// suggests inside a failure action message.
var quotedCommand = regexp.MustCompile(`"([^"]+)"`)

// ImportOptions configures one bulk import invocation.
type ImportOptions struct {
	Object      string
	File        string
	LineEnding  string // LF or CRLF
	WaitMinutes int

	// ResultsDir is where suggested follow-up commands and job results
	// are executed and persisted.
	ResultsDir string
}

// Import runs `sf data import bulk` against the generated artifact and
// returns the job id. On failure it executes the CLI's suggested
// follow-up commands in the results directory before reporting the
// error.
func (c *Client) Import(ctx context.Context, opts ImportOptions) (string, error) {
	args := []string{
		"data", "import", "bulk",
		"--sobject", opts.Object,
		"--file", opts.File,
		"--line-ending", opts.LineEnding,
		"--wait", strconv.Itoa(opts.WaitMinutes),
		"--json",
	}
	args = append(args, c.orgArgs()...)

	stdout, stderr, err := c.runner.Run(ctx, "", "sf", args...)
	if err != nil {
		c.runSuggestedActions(ctx, stdout, opts.ResultsDir)

		var env bulkEnvelope
		_ = json.Unmarshal(stdout, &env)
		if env.Message != "" {
			return "", fmt.Errorf("bulk import failed: %s", env.Message)
		}
		return "", fmt.Errorf("bulk import failed: %w: %s", err, stderr)
	}

	var env bulkEnvelope
	if err := json.Unmarshal(stdout, &env); err != nil {
		return "", fmt.Errorf("parse bulk import response: %w", err)
	}
	if env.Result.JobID == "" {
		return "", fmt.Errorf("bulk import response has no job id")
	}

	c.log.Info("bulk import job started",
		zap.String("object", opts.Object),
		zap.String("job_id", env.Result.JobID))
	return env.Result.JobID, nil
}

// runSuggestedActions parses the failure envelope's actions and executes
// each quoted command, persisting whatever they write into resultsDir.
func (c *Client) runSuggestedActions(ctx context.Context, stdout []byte, resultsDir string) {
	var env bulkEnvelope
	if err := json.Unmarshal(stdout, &env); err != nil {
		return
	}
	for _, action := range env.Actions {
		m := quotedCommand.FindStringSubmatch(action)
		if m == nil {
			continue
		}
		parts := strings.Fields(m[1])
		if len(parts) == 0 {
			continue
		}
		c.log.Info("running suggested action", zap.String("command", m[1]))
		out, errOut, err := c.runner.Run(ctx, resultsDir, parts[0], parts[1:]...)
		if err != nil {
			c.log.Warn("suggested action failed",
				zap.String("command", m[1]),
				zap.Error(err),
				zap.ByteString("stderr", errOut))
			continue
		}
		c.log.Info("suggested action completed",
			zap.String("command", m[1]),
			zap.ByteString("output", out))
	}
}

// FetchResults runs `sf data bulk results` for a finished job, writing
// the result files into resultsDir.
func (c *Client) FetchResults(ctx context.Context, jobID, resultsDir string) error {
	args := append([]string{"data", "bulk", "results", "--job-id", jobID}, c.orgArgs()...)

	_, stderr, err := c.runner.Run(ctx, resultsDir, "sf", args...)
	if err != nil {
		return fmt.Errorf("fetch bulk results for job %s: %w: %s", jobID, err, stderr)
	}
	c.log.Info("bulk results saved", zap.String("job_id", jobID), zap.String("dir", resultsDir))
	return nil
}
