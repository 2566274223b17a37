package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// BuildResult contains the run summary to be output
type BuildResult struct {
	GeneratedAt time.Time `json:"generated_at"`
	MemberCount int       `json:"member_count"`
	DroppedRows int       `json:"dropped_rows,omitempty"`
	OutputPath  string    `json:"output_path"`
	DryRun      bool      `json:"dry_run,omitempty"`
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *BuildResult, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs the summary as JSON
func writeJSON(w io.Writer, result *BuildResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeText outputs the summary as human-readable text
func writeText(w io.Writer, result *BuildResult) error {
	label := "members"
	if result.MemberCount == 1 {
		label = "member"
	}

	fmt.Fprintf(w, "Roster: %d %s", result.MemberCount, label)
	if result.DroppedRows > 0 {
		fmt.Fprintf(w, " (%d invalid rows dropped)", result.DroppedRows)
	}
	fmt.Fprintln(w)

	if result.DryRun {
		fmt.Fprintln(w, "Dry run: page not written.")
	} else {
		fmt.Fprintf(w, "Generated %s\n", result.OutputPath)
	}

	return nil
}
