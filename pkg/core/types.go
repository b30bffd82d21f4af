// Package core provides the shared types and interfaces for the sfseed
// data generation tool.
package core

// RowWriter defines an interface for writing a tabular artifact of
// string-typed cells to some destination.
type RowWriter interface {
	// WriteHeader writes the column names. Must be called exactly once,
	// before the first WriteRow.
	WriteHeader(header []string) error

	// WriteRow writes one row. Cells align with the header columns.
	WriteRow(row []string) error

	// Close flushes pending data and releases resources.
	Close() error
}

// WriterConfig provides configuration for creating a row writer.
type WriterConfig struct {
	// Type is the type of the writer (csv, arrow, parquet).
	Type string

	// Path is the output file path.
	Path string

	// UseCRLF selects CRLF line endings for writers where that matters
	// (the bulk import consumer is picky about line endings).
	UseCRLF bool
}
