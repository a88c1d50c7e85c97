// Package cli implements bodymapctl, the offline companion to the server:
// it inspects the region catalog and runs the aggregation core over
// exported symptom records.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jengzang/bodymap-backend-go/internal/logging"
	"github.com/jengzang/bodymap-backend-go/internal/models"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
)

// RootOptions holds global CLI flags.
type RootOptions struct {
	LogLevel     string
	OutputFormat string
	Input        string

	logger *zap.Logger
}

// NewRootCommand creates the root command with every subcommand attached.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:     "bodymapctl",
		Short:   "Inspect body regions and aggregate symptom exports",
		Version: fmt.Sprintf("%s (commit: %s)", Version, GitCommit),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(opts.LogLevel, "console")
			if err != nil {
				return err
			}
			opts.logger = logger
			switch opts.OutputFormat {
			case "json", "text":
				return nil
			}
			return fmt.Errorf("unknown output format %q (want json or text)", opts.OutputFormat)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.LogLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	pf.StringVarP(&opts.OutputFormat, "output", "o", "text", "output format (text, json)")
	pf.StringVarP(&opts.Input, "input", "i", "", "symptom records JSON file (default: stdin)")

	cmd.AddCommand(
		newRegionsCmd(opts),
		newLabelCmd(opts),
		newLegendCmd(opts),
		newHeatmapCmd(opts),
		newMarkersCmd(opts),
		newBreakdownCmd(opts),
		newTokenCmd(opts),
		newMigrateCmd(opts),
	)
	return cmd
}

// Execute runs the root command against os.Args.
func Execute() int {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}

// readRecords loads a JSON array of symptom records from --input or stdin.
func (o *RootOptions) readRecords(cmd *cobra.Command) ([]models.SymptomRecord, error) {
	var r io.Reader = cmd.InOrStdin()
	source := "stdin"
	if o.Input != "" && o.Input != "-" {
		f, err := os.Open(o.Input)
		if err != nil {
			return nil, fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		r = f
		source = o.Input
	}

	var records []models.SymptomRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode records from %s: %w", source, err)
	}
	if o.logger != nil {
		o.logger.Debug("records loaded", zap.String("source", source), zap.Int("count", len(records)))
	}
	return records, nil
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
