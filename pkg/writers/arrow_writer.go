package writers

import (
	"errors"
	"fmt"
	"os"

	"github.com/TFMV/sfseed/pkg/core"
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

// ArrowWriter implements a writer for Arrow IPC files. Every generated
// cell is a string, so the schema is all-utf8 columns derived from the
// header.
type ArrowWriter struct {
	file    *os.File
	schema  *arrow.Schema
	builder *array.RecordBuilder
}

// NewArrowWriter creates a new Arrow IPC writer.
func NewArrowWriter(config core.WriterConfig) (core.RowWriter, error) {
	if config.Path == "" {
		return nil, errors.New("path is required for Arrow writer")
	}

	file, err := os.Create(config.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to create Arrow file: %w", err)
	}

	// The schema is built when the header arrives.
	return &ArrowWriter{file: file}, nil
}

// WriteHeader derives the all-string schema from the column names.
func (w *ArrowWriter) WriteHeader(header []string) error {
	fields := make([]arrow.Field, len(header))
	for i, name := range header {
		fields[i] = arrow.Field{Name: name, Type: arrow.BinaryTypes.String, Nullable: true}
	}
	w.schema = arrow.NewSchema(fields, nil)
	w.builder = array.NewRecordBuilder(memory.DefaultAllocator, w.schema)
	return nil
}

// WriteRow appends one row to the pending record batch.
func (w *ArrowWriter) WriteRow(row []string) error {
	if w.builder == nil {
		return errors.New("arrow writer: WriteHeader must be called before WriteRow")
	}
	for i, v := range row {
		w.builder.Field(i).(*array.StringBuilder).Append(v)
	}
	return nil
}

// Close writes the accumulated batch as a single IPC record and closes
// the file.
func (w *ArrowWriter) Close() error {
	var err error

	if w.builder != nil {
		record := w.builder.NewRecord()
		writer, werr := ipc.NewFileWriter(w.file, ipc.WithSchema(w.schema))
		if werr != nil {
			err = fmt.Errorf("failed to create Arrow writer: %w", werr)
		} else {
			if werr := writer.Write(record); werr != nil && err == nil {
				err = fmt.Errorf("failed to write record: %w", werr)
			}
			if werr := writer.Close(); werr != nil && err == nil {
				err = werr
			}
		}
		record.Release()
		w.builder.Release()
		w.builder = nil
	}

	if w.file != nil {
		if closeErr := w.file.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}

	return err
}
