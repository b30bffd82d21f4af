package writers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/TFMV/sfseed/pkg/core"
)

// CSVWriter implements a writer for CSV files.
type CSVWriter struct {
	file *os.File
	w    *csv.Writer
}

// NewCSVWriter creates a new CSV writer.
func NewCSVWriter(config core.WriterConfig) (core.RowWriter, error) {
	if config.Path == "" {
		return nil, errors.New("path is required for CSV writer")
	}

	file, err := os.Create(config.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to create CSV file: %w", err)
	}

	w := csv.NewWriter(file)
	w.UseCRLF = config.UseCRLF

	return &CSVWriter{file: file, w: w}, nil
}

// NewCSVStreamWriter creates a CSV writer over an arbitrary stream.
// Used by the HTTP surface, which writes into a response buffer rather
// than a file.
func NewCSVStreamWriter(dst io.Writer, useCRLF bool) core.RowWriter {
	w := csv.NewWriter(dst)
	w.UseCRLF = useCRLF
	return &CSVWriter{w: w}
}

// WriteHeader writes the header row.
func (w *CSVWriter) WriteHeader(header []string) error {
	if err := w.w.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	return nil
}

// WriteRow writes one data row.
func (w *CSVWriter) WriteRow(row []string) error {
	if err := w.w.Write(row); err != nil {
		return fmt.Errorf("failed to write CSV row: %w", err)
	}
	return nil
}

// Close flushes buffered rows and closes the file.
func (w *CSVWriter) Close() error {
	w.w.Flush()
	err := w.w.Error()

	if w.file != nil {
		if closeErr := w.file.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}

	return err
}
