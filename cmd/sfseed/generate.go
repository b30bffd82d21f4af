package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/TFMV/sfseed/pkg/core"
	"github.com/TFMV/sfseed/pkg/describe"
	"github.com/TFMV/sfseed/pkg/generate"
	"github.com/TFMV/sfseed/pkg/writers"
	"github.com/spf13/cobra"
)

// GenerateOptions represents the options for the generate command.
type GenerateOptions struct {
	DescribePath     string
	Rows             int
	OutputPath       string
	Format           string
	SkipFields       []string
	PersonRecordType string
	Seed             int64
	LineEnding       string
}

// newGenerateCommand creates a new generate command.
func newGenerateCommand() *cobra.Command {
	options := &GenerateOptions{
		Rows:       10,
		Format:     "csv",
		LineEnding: "CRLF",
	}

	cmd := &cobra.Command{
		Use:   "generate [flags]",
		Short: "Generate rows from a saved describe file",
		Long: `The generate command reads an object describe saved as JSON (the output
of "sf sobject describe --json") and writes synthesized rows to a file.

It is the offline half of the seed command: no org connection is needed,
which makes it useful for dry runs and for producing fixtures.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if options.OutputPath == "" {
				options.OutputPath = "data." + options.Format
			}
			return runGenerate(options)
		},
	}

	cmd.Flags().StringVarP(&options.DescribePath, "describe", "d", "", "Path to the describe JSON file (required)")
	cmd.Flags().IntVarP(&options.Rows, "rows", "n", options.Rows, "Number of rows to generate")
	cmd.Flags().StringVarP(&options.OutputPath, "out", "o", "", "Output path (defaults to data.<format>)")
	cmd.Flags().StringVarP(&options.Format, "format", "f", options.Format, "Output format (csv, arrow, parquet)")
	cmd.Flags().StringSliceVar(&options.SkipFields, "skip-fields", nil, "Fields to leave empty")
	cmd.Flags().StringVar(&options.PersonRecordType, "person-record-type", "", "Developer name of the person account record type")
	cmd.Flags().Int64Var(&options.Seed, "seed", 0, "Random seed (0 uses the current time)")
	cmd.Flags().StringVar(&options.LineEnding, "line-ending", options.LineEnding, "CSV line ending (LF, CRLF)")
	_ = cmd.MarkFlagRequired("describe")

	return cmd
}

// runGenerate executes the generate command with the given options.
func runGenerate(options *GenerateOptions) error {
	if options.Rows < 1 {
		return fmt.Errorf("rows must be positive, got %d", options.Rows)
	}

	model, err := describe.LoadFile(options.DescribePath)
	if err != nil {
		return fmt.Errorf("failed to load describe: %w", err)
	}

	seed := options.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	gen := generate.New(model, rand.New(rand.NewSource(seed)), generate.Options{
		SkipFields:       options.SkipFields,
		PersonRecordType: options.PersonRecordType,
	})

	writer, err := writers.DefaultFactory.Create(core.WriterConfig{
		Type:    options.Format,
		Path:    options.OutputPath,
		UseCRLF: options.LineEnding == "CRLF",
	})
	if err != nil {
		return fmt.Errorf("failed to create writer: %w", err)
	}

	if err := writeRows(writer, gen, options.Rows); err != nil {
		writer.Close()
		return err
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize output: %w", err)
	}

	fmt.Printf("Wrote %d rows for %s to %s\n", options.Rows, model.Object, options.OutputPath)
	return nil
}

// writeRows streams generated rows into a writer.
func writeRows(writer core.RowWriter, gen *generate.Generator, rows int) error {
	if err := writer.WriteHeader(gen.Header()); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i := 0; i < rows; i++ {
		if err := writer.WriteRow(gen.RowValues()); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}
	return nil
}
