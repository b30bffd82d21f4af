// Command inspect_artifact prints the schema and a sample of rows from
// a generated Parquet artifact, for eyeballing output before an import.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet/file"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"
)

const sampleRows = 5

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: inspect_artifact <file.parquet>")
		os.Exit(1)
	}

	if err := inspect(os.Args[1]); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func inspect(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	parquetReader, err := file.NewParquetReader(f)
	if err != nil {
		return fmt.Errorf("open parquet: %w", err)
	}
	defer parquetReader.Close()

	fmt.Printf("Artifact: %s\n", path)
	fmt.Printf("Rows: %d\n", parquetReader.NumRows())

	arrowReader, err := pqarrow.NewFileReader(parquetReader, pqarrow.ArrowReadProperties{}, memory.NewGoAllocator())
	if err != nil {
		return fmt.Errorf("create arrow reader: %w", err)
	}

	schema, err := arrowReader.Schema()
	if err != nil {
		return fmt.Errorf("read schema: %w", err)
	}

	fmt.Println("\nColumns:")
	for i, field := range schema.Fields() {
		fmt.Printf("  %d: %s (%s)\n", i, field.Name, field.Type)
	}

	table, err := arrowReader.ReadTable(context.Background())
	if err != nil {
		return fmt.Errorf("read table: %w", err)
	}
	defer table.Release()

	fmt.Printf("\nFirst %d rows:\n", sampleRows)
	printRows(table, sampleRows)
	return nil
}

func printRows(table arrow.Table, maxRows int) {
	reader := array.NewTableReader(table, int64(maxRows))
	defer reader.Release()

	printed := 0
	for reader.Next() && printed < maxRows {
		record := reader.Record()
		for i := 0; i < int(record.NumRows()) && printed < maxRows; i++ {
			fmt.Printf("Row %d: [", printed)
			for j, col := range record.Columns() {
				if j > 0 {
					fmt.Print(", ")
				}
				if col.IsNull(i) {
					fmt.Print("NULL")
				} else {
					fmt.Printf("%v", col.GetOneForMarshal(i))
				}
			}
			fmt.Println("]")
			printed++
		}
	}
}
