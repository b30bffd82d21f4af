package metrics

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRunID(t *testing.T) {
	a := NewRunID()
	b := NewRunID()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}

func TestRunReportJSONRoundTrip(t *testing.T) {
	start := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	report := RunReport{
		Metadata: RunMetadata{
			RunID:     NewRunID(),
			Object:    "Account",
			OrgAlias:  "sandbox",
			Seed:      42,
			StartTime: start,
			EndTime:   start.Add(3 * time.Second),
			Duration:  3 * time.Second,
		},
		Generation: GenerationResult{
			RowsRequested:   100,
			RowsWritten:     100,
			FieldCount:      12,
			SkippedFields:   []string{"OwnerId"},
			FieldTypeCounts: map[string]int{"string": 5, "picklist": 2},
			ArtifactPath:    "results/data/Account.csv",
			Format:          "csv",
		},
		Import: ImportOutcome{Attempted: true, JobID: "750xx0000001", Succeeded: true},
	}

	data, err := json.Marshal(report)
	require.NoError(t, err)

	var decoded RunReport
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, report, decoded)
}
