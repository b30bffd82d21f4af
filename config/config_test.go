package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 10, cfg.Rows)
	assert.Equal(t, "csv", cfg.Format)
	assert.Equal(t, "CRLF", cfg.LineEnding)
	assert.Equal(t, "results", cfg.ResultsDir)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sfseed.yaml")
	doc := `
org: mysandbox
rows: 250
format: parquet
skip_fields:
  - OwnerId
  - ParentId
person_record_type: PersonAccount
line_ending: LF
seed: 42
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "mysandbox", cfg.Org)
	assert.Equal(t, 250, cfg.Rows)
	assert.Equal(t, "parquet", cfg.Format)
	assert.Equal(t, []string{"OwnerId", "ParentId"}, cfg.SkipFields)
	assert.Equal(t, "PersonAccount", cfg.PersonRecordType)
	assert.Equal(t, "LF", cfg.LineEnding)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidateConfig(t *testing.T) {
	valid := Default()
	assert.NoError(t, ValidateConfig(valid))

	badRows := Default()
	badRows.Rows = 0
	assert.Error(t, badRows.Validate())

	badFormat := Default()
	badFormat.Format = "xlsx"
	assert.Error(t, badFormat.Validate())

	badEnding := Default()
	badEnding.LineEnding = "CR"
	assert.Error(t, badEnding.Validate())

	badWait := Default()
	badWait.WaitMinutes = -1
	assert.Error(t, badWait.Validate())
}
