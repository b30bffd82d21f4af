package metrics

import (
	"time"

	"github.com/google/uuid"
)

// -----------------------------
// Domain Types & Metadata
// -----------------------------

// RunMetadata captures high-level context for a seeding run.
type RunMetadata struct {
	RunID     string        `json:"run_id"`
	Object    string        `json:"object"`
	OrgAlias  string        `json:"org_alias,omitempty"`
	Seed      int64         `json:"seed"`
	StartTime time.Time     `json:"start_time"`
	EndTime   time.Time     `json:"end_time"`
	Duration  time.Duration `json:"duration"`
}

// GenerationResult holds metrics about the generated artifact.
type GenerationResult struct {
	RowsRequested    int            `json:"rows_requested"`
	RowsWritten      int            `json:"rows_written"`
	FieldCount       int            `json:"field_count"`
	SkippedFields    []string       `json:"skipped_fields,omitempty"`
	FieldTypeCounts  map[string]int `json:"field_type_counts"`
	RecordTypeCounts map[string]int `json:"record_type_counts,omitempty"`
	ArtifactPath     string         `json:"artifact_path"`
	Format           string         `json:"format"`
}

// ImportOutcome holds the result of the bulk import step, if attempted.
type ImportOutcome struct {
	Attempted bool   `json:"attempted"`
	JobID     string `json:"job_id,omitempty"`
	Succeeded bool   `json:"succeeded"`
	Message   string `json:"message,omitempty"`
}

// RunReport is the full record of one seeding run.
type RunReport struct {
	Metadata   RunMetadata      `json:"metadata"`
	Generation GenerationResult `json:"generation"`
	Import     ImportOutcome    `json:"import"`
}

// NewRunID returns a unique identifier for a seeding run.
func NewRunID() string {
	return uuid.NewString()
}
