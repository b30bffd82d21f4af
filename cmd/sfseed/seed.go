package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/TFMV/sfseed/config"
	"github.com/TFMV/sfseed/internal/sfcli"
	"github.com/TFMV/sfseed/metrics"
	"github.com/TFMV/sfseed/pkg/core"
	"github.com/TFMV/sfseed/pkg/describe"
	"github.com/TFMV/sfseed/pkg/generate"
	"github.com/TFMV/sfseed/pkg/writers"
	"github.com/TFMV/sfseed/report"
	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

// newSeedCommand creates a new seed command.
func newSeedCommand() *cobra.Command {
	var configPath string
	cfg := config.Default()
	noImport := false

	cmd := &cobra.Command{
		Use:   "seed [flags] OBJECT",
		Short: "Describe an object, generate rows and bulk import them",
		Long: `The seed command runs the full pipeline against a live org:

1. sf sobject describe fetches the object's schema
2. rows conforming to that schema are generated and written out
3. sf data import bulk pushes the artifact into the org
4. job results and a run report land under the results directory

Steps 3 and 4 require the Salesforce CLI to be installed and
authenticated. Use --no-import to stop after generation.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				loaded, err := config.LoadConfig(configPath)
				if err != nil {
					return fmt.Errorf("failed to load config: %w", err)
				}
				cfg = loaded
			}

			// Flags override the config file.
			flags := cmd.Flags()
			if flags.Changed("org") {
				cfg.Org, _ = flags.GetString("org")
			}
			if flags.Changed("rows") {
				cfg.Rows, _ = flags.GetInt("rows")
			}
			if flags.Changed("format") {
				cfg.Format, _ = flags.GetString("format")
			}
			if flags.Changed("skip-fields") {
				cfg.SkipFields, _ = flags.GetStringSlice("skip-fields")
			}
			if flags.Changed("person-record-type") {
				cfg.PersonRecordType, _ = flags.GetString("person-record-type")
			}
			if flags.Changed("seed") {
				cfg.Seed, _ = flags.GetInt64("seed")
			}
			if flags.Changed("results-dir") {
				cfg.ResultsDir, _ = flags.GetString("results-dir")
			}

			if err := config.ValidateConfig(cfg); err != nil {
				return err
			}
			return runSeed(cfg, args[0], noImport)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")
	cmd.Flags().String("org", "", "Target org alias or username (defaults to the CLI default org)")
	cmd.Flags().IntP("rows", "n", cfg.Rows, "Number of rows to generate")
	cmd.Flags().StringP("format", "f", cfg.Format, "Artifact format (csv, arrow, parquet)")
	cmd.Flags().StringSlice("skip-fields", nil, "Fields to leave empty")
	cmd.Flags().String("person-record-type", "", "Developer name of the person account record type")
	cmd.Flags().Int64("seed", 0, "Random seed (0 uses the current time)")
	cmd.Flags().String("results-dir", cfg.ResultsDir, "Root directory for describe, data and job results")
	cmd.Flags().BoolVar(&noImport, "no-import", false, "Generate the artifact but skip the bulk import")

	return cmd
}

// runSeed executes the describe, generate and import pipeline.
func runSeed(cfg *config.Config, object string, noImport bool) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		fmt.Println("\nCancelling operation...")
		cancel()
	}()

	// Lay out the results tree up front.
	descDir := filepath.Join(cfg.ResultsDir, "description")
	dataDir := filepath.Join(cfg.ResultsDir, "data")
	bulkDir := filepath.Join(cfg.ResultsDir, "bulk_result")
	for _, dir := range []string{descDir, dataDir, bulkDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create results directory: %w", err)
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	run := metrics.RunReport{
		Metadata: metrics.RunMetadata{
			RunID:     metrics.NewRunID(),
			Object:    object,
			OrgAlias:  cfg.Org,
			Seed:      seed,
			StartTime: time.Now(),
		},
	}

	client := sfcli.NewClient(cfg.Org)

	// Step 1: describe.
	fmt.Printf("Describing %s...\n", object)
	descPath := filepath.Join(descDir, object+".json")
	data, err := client.DescribeToFile(ctx, object, descPath)
	if err != nil {
		return err
	}

	model, err := describe.Load(data)
	if err != nil {
		return fmt.Errorf("failed to parse describe for %s: %w", object, err)
	}

	// Step 2: generate.
	fmt.Printf("Generating %d rows (%d fields, seed %d)...\n", cfg.Rows, len(model.Fields), seed)
	gen := generate.New(model, rand.New(rand.NewSource(seed)), generate.Options{
		SkipFields:       cfg.SkipFields,
		PersonRecordType: cfg.PersonRecordType,
	})

	artifactPath := filepath.Join(dataDir, object+"."+cfg.Format)
	writer, err := writers.DefaultFactory.Create(core.WriterConfig{
		Type:    cfg.Format,
		Path:    artifactPath,
		UseCRLF: cfg.LineEnding == "CRLF",
	})
	if err != nil {
		return fmt.Errorf("failed to create writer: %w", err)
	}

	rtNames := make(map[string]string, len(model.RecordTypes))
	for _, rt := range model.RecordTypes {
		rtNames[rt.RecordTypeID] = rt.DeveloperName
	}

	written, rtCounts, err := writeSeedRows(writer, gen, model, cfg.Rows, rtNames)
	if err != nil {
		writer.Close()
		return err
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize artifact: %w", err)
	}

	typeCounts := make(map[string]int)
	for i := range model.Fields {
		typeCounts[model.Fields[i].Type.String()]++
	}

	run.Generation = metrics.GenerationResult{
		RowsRequested:    cfg.Rows,
		RowsWritten:      written,
		FieldCount:       len(model.Fields),
		SkippedFields:    cfg.SkipFields,
		FieldTypeCounts:  typeCounts,
		RecordTypeCounts: rtCounts,
		ArtifactPath:     artifactPath,
		Format:           cfg.Format,
	}
	fmt.Printf("Artifact written to %s\n", artifactPath)

	// Step 3: bulk import.
	if noImport {
		fmt.Println("Skipping bulk import (--no-import).")
	} else if cfg.Format != "csv" {
		fmt.Printf("Skipping bulk import: the Bulk API only accepts CSV, not %s.\n", cfg.Format)
	} else {
		run.Import = runImport(ctx, client, cfg, object, artifactPath, bulkDir)
	}

	run.Metadata.EndTime = time.Now()
	run.Metadata.Duration = run.Metadata.EndTime.Sub(run.Metadata.StartTime)

	// Step 4: persist the run report.
	jsonPath := filepath.Join(cfg.ResultsDir, "run_report.json")
	htmlPath := filepath.Join(cfg.ResultsDir, "run_report.html")
	if err := report.SaveReports(run, jsonPath, htmlPath); err != nil {
		return fmt.Errorf("failed to save run report: %w", err)
	}
	fmt.Printf("Run report written to %s\n", jsonPath)

	if run.Import.Attempted && !run.Import.Succeeded {
		return fmt.Errorf("bulk import failed: %s", run.Import.Message)
	}
	return nil
}

// writeSeedRows streams rows into the writer and tallies the record type
// distribution along the way.
func writeSeedRows(writer core.RowWriter, gen *generate.Generator, model *describe.Model, rows int, rtNames map[string]string) (int, map[string]int, error) {
	header := gen.Header()
	if err := writer.WriteHeader(header); err != nil {
		return 0, nil, fmt.Errorf("failed to write header: %w", err)
	}

	rtCounts := make(map[string]int)
	written := 0
	for i := 0; i < rows; i++ {
		row := gen.Row()
		if name, ok := rtNames[row["RecordTypeId"]]; ok {
			rtCounts[name]++
		}
		values := make([]string, len(header))
		for j, col := range header {
			values[j] = row[col]
		}
		if err := writer.WriteRow(values); err != nil {
			return written, rtCounts, fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
		written++
	}
	if len(rtCounts) == 0 {
		rtCounts = nil
	}
	return written, rtCounts, nil
}

// runImport pushes the artifact into the org and collects job results.
// Import failures are reported through the outcome rather than an error
// so the run report still gets written.
func runImport(ctx context.Context, client *sfcli.Client, cfg *config.Config, object, artifactPath, bulkDir string) metrics.ImportOutcome {
	outcome := metrics.ImportOutcome{Attempted: true}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = fmt.Sprintf(" Importing %s (waiting up to %d min)...", object, cfg.WaitMinutes)
	s.Start()

	jobID, err := client.Import(ctx, sfcli.ImportOptions{
		Object:      object,
		File:        artifactPath,
		LineEnding:  cfg.LineEnding,
		WaitMinutes: cfg.WaitMinutes,
		ResultsDir:  bulkDir,
	})
	s.Stop()

	if err != nil {
		outcome.Message = err.Error()
		return outcome
	}

	outcome.JobID = jobID
	outcome.Succeeded = true
	fmt.Printf("Bulk import job %s completed.\n", jobID)

	if err := client.FetchResults(ctx, jobID, bulkDir); err != nil {
		outcome.Message = err.Error()
	} else {
		fmt.Printf("Job results saved under %s\n", bulkDir)
	}
	return outcome
}
