package writers

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/TFMV/sfseed/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactoryUnknownType(t *testing.T) {
	_, err := DefaultFactory.Create(core.WriterConfig{Type: "xml", Path: "out.xml"})
	assert.Error(t, err)
}

func TestCSVWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	w, err := DefaultFactory.Create(core.WriterConfig{Type: "csv", Path: path})
	require.NoError(t, err)

	require.NoError(t, w.WriteHeader([]string{"Name", "Phone"}))
	require.NoError(t, w.WriteRow([]string{"あい", "090-1234-5678"}))
	require.NoError(t, w.WriteRow([]string{"", "03-0000-1111"}))
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Name,Phone", lines[0])
	assert.Equal(t, "あい,090-1234-5678", lines[1])
	assert.Equal(t, ",03-0000-1111", lines[2])
}

func TestCSVWriterCRLF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	w, err := NewCSVWriter(core.WriterConfig{Type: "csv", Path: path, UseCRLF: true})
	require.NoError(t, err)

	require.NoError(t, w.WriteHeader([]string{"A"}))
	require.NoError(t, w.WriteRow([]string{"1"}))
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "A\r\n1\r\n", string(data))
}

func TestCSVStreamWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewCSVStreamWriter(&buf, false)

	require.NoError(t, w.WriteHeader([]string{"A", "B"}))
	require.NoError(t, w.WriteRow([]string{"1", "2"}))
	require.NoError(t, w.Close())

	assert.Equal(t, "A,B\n1,2\n", buf.String())
}

func TestArrowWriterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.arrow")
	w, err := DefaultFactory.Create(core.WriterConfig{Type: "arrow", Path: path})
	require.NoError(t, err)

	require.NoError(t, w.WriteHeader([]string{"Name"}))
	require.NoError(t, w.WriteRow([]string{"テスト"}))
	require.NoError(t, w.Close())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestArrowWriterRequiresHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.arrow")
	w, err := NewArrowWriter(core.WriterConfig{Type: "arrow", Path: path})
	require.NoError(t, err)
	defer w.Close()

	assert.Error(t, w.WriteRow([]string{"x"}))
}

func TestParquetWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.parquet")
	w, err := DefaultFactory.Create(core.WriterConfig{Type: "parquet", Path: path})
	require.NoError(t, err)

	require.NoError(t, w.WriteHeader([]string{"Name", "City"}))
	require.NoError(t, w.WriteRow([]string{"あ", "東京"}))
	require.NoError(t, w.Close())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
