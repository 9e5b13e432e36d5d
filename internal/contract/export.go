package contract

import "time"

type ExportFormat string

const (
	ExportCSV  ExportFormat = "csv"
	ExportJSON ExportFormat = "json"
)

// ExportOptions controls the CSV sheet.
type ExportOptions struct {
	IncludeEmpty    bool
	IncludeSummary bool
	// IncludeStanding adds the standing row to the summary. It has no
	// effect when IncludeSummary is false.
	IncludeStanding bool
	// Now stamps the "Generated on" line; zero means time.Now.
	Now time.Time
}

// NewExportOptions returns the sheet defaults: summary and standing on,
// empty rows off.
func NewExportOptions() ExportOptions {
	return ExportOptions{
		IncludeSummary:  true,
		IncludeStanding: true,
	}
}

// ImportResult summarizes a restored workspace.
type ImportResult struct {
	CoursesImported int
	HasState        bool
	LastUpdated     *time.Time
}
