package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/qrqcrew/roster-builder/internal/logger"
	"github.com/qrqcrew/roster-builder/internal/member"
	"github.com/qrqcrew/roster-builder/internal/notifier"
	"github.com/qrqcrew/roster-builder/internal/sheet"
	"github.com/qrqcrew/roster-builder/internal/site"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

// rosterPageURL is where the generated page ends up once published
const rosterPageURL = "https://qrqcrew.org/roster.html"

var (
	flagOutput   string
	flagFormat   string
	flagDryRun   bool
	flagAnnounce bool
	flagVerbose  bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roster-build",
		Short: "Build the QRQ Crew membership roster page",
		Long: `A CLI tool that downloads the club's published membership spreadsheet
as CSV, parses the roster out of it, and renders a self-contained
roster.html sorted by QC number. A zero-argument run performs the
full pipeline.`,
		RunE: runBuild,
	}

	// Define flags
	cmd.Flags().StringVar(&flagOutput, "output", site.DefaultOutputPath, "Path for the rendered page")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Summary format: text or json")
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Render the page without writing it")
	cmd.Flags().BoolVar(&flagAnnounce, "announce", false, "Post a roster-update announcement after the build")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	return cmd
}

// runBuild is the main command logic: fetch, parse, sort, render, write.
func runBuild(cmd *cobra.Command, args []string) error {
	// Validate format
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	fmt.Println("Fetching roster CSV...")
	logger.Debug("fetching sheet", logger.Fields{"url": sheet.SheetCSVURL})

	roster, err := sheet.New().FetchRoster()
	if err != nil {
		return fmt.Errorf("fetching roster: %w", err)
	}

	if roster.Dropped > 0 {
		logger.AddCounter("roster.rows_dropped", int64(roster.Dropped))
		logger.Warn("dropped invalid rows", logger.Fields{"count": roster.Dropped})
	}

	// An empty roster means the header was never found or every row failed
	// validity. Either way the sheet is broken and the old page stays put.
	if len(roster.Members) == 0 {
		return fmt.Errorf("no members parsed from CSV")
	}

	fmt.Printf("Parsed %d members\n", len(roster.Members))

	member.Sort(roster.Members)

	generatedAt := time.Now().UTC()
	html, err := site.Render(roster.Members, generatedAt)
	if err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}

	if !flagDryRun {
		if err := site.WriteFile(flagOutput, html); err != nil {
			return fmt.Errorf("writing page: %w", err)
		}
	}

	result := &BuildResult{
		GeneratedAt: generatedAt,
		MemberCount: len(roster.Members),
		DroppedRows: roster.Dropped,
		OutputPath:  flagOutput,
		DryRun:      flagDryRun,
	}
	if err := WriteOutput(os.Stdout, result, format); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}

	if flagAnnounce {
		if err := announce(result); err != nil {
			return fmt.Errorf("announcing update: %w", err)
		}
	}

	return nil
}

// announce posts the roster-update status, or prints it on a dry run.
func announce(result *BuildResult) error {
	var n notifier.Notifier
	if flagDryRun {
		n = notifier.NewDryRunNotifier()
	} else {
		tw, err := notifier.NewTwitterNotifier()
		if err != nil {
			return err
		}
		n = tw
	}

	return n.Announce(notifier.Summary{
		MemberCount: result.MemberCount,
		GeneratedAt: result.GeneratedAt,
		PageURL:     rosterPageURL,
	})
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
