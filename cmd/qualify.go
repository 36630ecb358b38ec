package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jumbo-cdp/leadqual/internal/config"
	"github.com/jumbo-cdp/leadqual/internal/fetcher"
	"github.com/jumbo-cdp/leadqual/internal/pipeline"
)

var (
	qualifyInput  string
	qualifyOutput string
	qualifyFormat string
	qualifyLimit  int
)

var qualifyCmd = &cobra.Command{
	Use:   "qualify",
	Short: "Run the qualification pipeline on a sales report",
	Long: `Reads a sales report (CSV or XLSX) and produces the qualified lead list.

Examples:
  # CSV export with WhatsApp links (default path from config)
  leadqual qualify --input relatorio.csv --format csv

  # JSON result to stdout
  leadqual qualify --input relatorio.xlsx --format json

  # Semicolon-delimited legacy report
  LEADQUAL_INPUT_DELIMITER=";" leadqual qualify --input relatorio.csv`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		table, err := fetcher.LoadTable(qualifyInput, loadOptions(cfg))
		if err != nil {
			return eris.Wrap(err, "qualify: load report")
		}
		zap.L().Info("report loaded",
			zap.String("path", qualifyInput),
			zap.Int("rows", len(table.Rows)),
			zap.Int("columns", len(table.Header)),
		)

		if qualifyLimit > 0 && qualifyLimit < len(table.Rows) {
			table.Rows = table.Rows[:qualifyLimit]
		}

		p := pipeline.New(cfg)
		result, err := p.Qualify(table)
		if err != nil {
			return eris.Wrap(err, "qualify: run pipeline")
		}

		if len(result.Leads) == 0 {
			zap.L().Info("no leads matched the profile: saved order and never-sent customer")
		}

		switch qualifyFormat {
		case "csv":
			outPath := qualifyOutput
			if outPath == "" {
				outPath = cfg.Export.Path
			}
			if err := p.ExportFile(outPath, result); err != nil {
				return err
			}
			zap.L().Info("lead list written", zap.String("path", outPath), zap.Int("leads", len(result.Leads)))
			return nil
		case "json":
			return writeResultJSON(result, qualifyOutput)
		default:
			return eris.Errorf("qualify: unknown format %q (want json or csv)", qualifyFormat)
		}
	},
}

func init() {
	qualifyCmd.Flags().StringVar(&qualifyInput, "input", "", "path to the sales report CSV/XLSX (required)")
	qualifyCmd.Flags().StringVar(&qualifyOutput, "output", "", "output path (default: stdout for json, config export path for csv)")
	qualifyCmd.Flags().StringVar(&qualifyFormat, "format", "json", "output format: json (default) or csv")
	qualifyCmd.Flags().IntVar(&qualifyLimit, "limit", 0, "max report rows to process (0 = all)")
	_ = qualifyCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(qualifyCmd)
}

// loadOptions maps input configuration to fetcher options.
func loadOptions(cfg *config.Config) fetcher.Options {
	opts := fetcher.Options{
		Encoding: cfg.Input.Encoding,
		Sheet:    cfg.Input.Sheet,
	}
	if d := []rune(cfg.Input.Delimiter); len(d) > 0 {
		opts.Delimiter = d[0]
	}
	return opts
}

// writeResultJSON writes the run result to the output file or stdout.
func writeResultJSON(result any, path string) error {
	var w *os.File
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return eris.Wrap(err, "qualify: create output file")
		}
		defer f.Close() //nolint:errcheck
		w = f
	} else {
		w = os.Stdout
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
