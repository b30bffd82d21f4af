package report

import (
	"bytes"
	"encoding/json"
	"html/template"
	"os"

	"github.com/TFMV/sfseed/metrics"
)

// -----------------------------
// Report Generator Interfaces
// -----------------------------

// ReportGenerator defines the methods for generating run reports.
type ReportGenerator interface {
	GenerateRunReport(run metrics.RunReport) ([]byte, error)
	SaveReportToFile(run metrics.RunReport, filePath string) error
}

// -----------------------------
// JSON Report Generator
// -----------------------------

// JSONReportGenerator generates JSON reports.
type JSONReportGenerator struct{}

// GenerateRunReport serializes the RunReport to JSON.
func (j *JSONReportGenerator) GenerateRunReport(run metrics.RunReport) ([]byte, error) {
	return json.MarshalIndent(run, "", "  ")
}

// SaveReportToFile saves the JSON report to a file.
func (j *JSONReportGenerator) SaveReportToFile(run metrics.RunReport, filePath string) error {
	data, err := j.GenerateRunReport(run)
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, data, 0644)
}

// ReportFromFilePath loads a run report from a file.
func ReportFromFilePath(filePath string) (metrics.RunReport, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return metrics.RunReport{}, err
	}
	var report metrics.RunReport
	if err := json.Unmarshal(data, &report); err != nil {
		return metrics.RunReport{}, err
	}
	return report, nil
}

// -----------------------------
// HTML Report Generator
// -----------------------------

// HTMLReportGenerator generates HTML reports.
type HTMLReportGenerator struct{}

// HTML template for the report.
const htmlTemplate = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Seeding Run Report</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 20px; }
        table { width: 100%; border-collapse: collapse; margin-top: 20px; }
        th, td { border: 1px solid #ddd; padding: 8px; text-align: left; }
        th { background-color: #f4f4f4; }
        .status-pass { color: green; }
        .status-fail { color: red; }
    </style>
</head>
<body>
    <h1>Seeding Run Report</h1>
    <p><strong>Run ID:</strong> {{.Metadata.RunID}}</p>
    <p><strong>Object:</strong> {{.Metadata.Object}}</p>
    {{if .Metadata.OrgAlias}}<p><strong>Org:</strong> {{.Metadata.OrgAlias}}</p>{{end}}
    <p><strong>Seed:</strong> {{.Metadata.Seed}}</p>
    <p><strong>Started:</strong> {{.Metadata.StartTime}}</p>

    <h2>Generation</h2>
    <table>
        <tr>
            <th>Rows Requested</th>
            <th>Rows Written</th>
            <th>Fields</th>
            <th>Format</th>
            <th>Artifact</th>
        </tr>
        <tr>
            <td>{{.Generation.RowsRequested}}</td>
            <td>{{.Generation.RowsWritten}}</td>
            <td>{{.Generation.FieldCount}}</td>
            <td>{{.Generation.Format}}</td>
            <td>{{.Generation.ArtifactPath}}</td>
        </tr>
    </table>

    <h3>Skipped Fields</h3>
    <ul>
        {{range .Generation.SkippedFields}}<li>{{.}}</li>{{else}}<li>None</li>{{end}}
    </ul>

    <h3>Field Types</h3>
    <table>
        <tr><th>Type</th><th>Fields</th></tr>
        {{range $type, $count := .Generation.FieldTypeCounts}}
        <tr><td>{{$type}}</td><td>{{$count}}</td></tr>
        {{end}}
    </table>

    {{if .Generation.RecordTypeCounts}}
    <h3>Record Type Distribution</h3>
    <table>
        <tr><th>Record Type</th><th>Rows</th></tr>
        {{range $rt, $count := .Generation.RecordTypeCounts}}
        <tr><td>{{$rt}}</td><td>{{$count}}</td></tr>
        {{end}}
    </table>
    {{end}}

    <h2>Bulk Import</h2>
    {{if .Import.Attempted}}
    <p><strong>Job:</strong> {{.Import.JobID}}</p>
    <p><strong>Status:</strong> {{if .Import.Succeeded}}<span class="status-pass">SUCCEEDED</span>{{else}}<span class="status-fail">FAILED</span>{{end}}</p>
    {{if .Import.Message}}<p>{{.Import.Message}}</p>{{end}}
    {{else}}
    <p>Not attempted.</p>
    {{end}}

    <footer>
        <p>Generated on {{.Metadata.EndTime}}</p>
    </footer>
</body>
</html>
`

// GenerateRunReport generates an HTML report from the seeding run.
func (h *HTMLReportGenerator) GenerateRunReport(run metrics.RunReport) ([]byte, error) {
	tmpl, err := template.New("report").Parse(htmlTemplate)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, run)
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// SaveReportToFile saves the HTML report to a file.
func (h *HTMLReportGenerator) SaveReportToFile(run metrics.RunReport, filePath string) error {
	data, err := h.GenerateRunReport(run)
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, data, 0644)
}

// SaveReports saves both JSON and HTML reports.
func SaveReports(run metrics.RunReport, jsonPath, htmlPath string) error {
	jsonGen := JSONReportGenerator{}
	htmlGen := HTMLReportGenerator{}

	if err := jsonGen.SaveReportToFile(run, jsonPath); err != nil {
		return err
	}

	return htmlGen.SaveReportToFile(run, htmlPath)
}
