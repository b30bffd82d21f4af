package writers

import (
	"errors"
	"fmt"
	"os"

	"github.com/TFMV/sfseed/pkg/core"
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/compress"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"
)

// ParquetWriter implements a writer for Parquet files with the same
// all-utf8 column layout as the Arrow writer.
type ParquetWriter struct {
	file    *os.File
	schema  *arrow.Schema
	builder *array.RecordBuilder
}

// NewParquetWriter creates a new Parquet writer.
func NewParquetWriter(config core.WriterConfig) (core.RowWriter, error) {
	if config.Path == "" {
		return nil, errors.New("path is required for Parquet writer")
	}

	file, err := os.Create(config.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to create Parquet file: %w", err)
	}

	return &ParquetWriter{file: file}, nil
}

// WriteHeader derives the all-string schema from the column names.
func (w *ParquetWriter) WriteHeader(header []string) error {
	fields := make([]arrow.Field, len(header))
	for i, name := range header {
		fields[i] = arrow.Field{Name: name, Type: arrow.BinaryTypes.String, Nullable: true}
	}
	w.schema = arrow.NewSchema(fields, nil)
	w.builder = array.NewRecordBuilder(memory.DefaultAllocator, w.schema)
	return nil
}

// WriteRow appends one row to the pending record batch.
func (w *ParquetWriter) WriteRow(row []string) error {
	if w.builder == nil {
		return errors.New("parquet writer: WriteHeader must be called before WriteRow")
	}
	for i, v := range row {
		w.builder.Field(i).(*array.StringBuilder).Append(v)
	}
	return nil
}

// Close writes the accumulated batch with SNAPPY compression and closes
// the file.
func (w *ParquetWriter) Close() error {
	var err error

	if w.builder != nil {
		record := w.builder.NewRecord()

		writeProps := parquet.NewWriterProperties(
			parquet.WithCompression(compress.Codecs.Snappy),
			parquet.WithDictionaryDefault(false),
		)
		writer, werr := pqarrow.NewFileWriter(
			w.schema,
			w.file,
			writeProps,
			pqarrow.NewArrowWriterProperties(),
		)
		if werr != nil {
			err = fmt.Errorf("failed to create Parquet writer: %w", werr)
		} else {
			if werr := writer.Write(record); werr != nil && err == nil {
				err = fmt.Errorf("failed to write record: %w", werr)
			}
			if werr := writer.Close(); werr != nil && err == nil {
				err = werr
			}
			// pqarrow's Close also closes the underlying file.
			w.file = nil
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
