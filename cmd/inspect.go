package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jumbo-cdp/leadqual/internal/fetcher"
	"github.com/jumbo-cdp/leadqual/internal/model"
)

var (
	inspectInput string
	inspectRows  int
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Parse a sales report and print its shape without running the pipeline",
	RunE: func(cmd *cobra.Command, _ []string) error {
		table, err := fetcher.LoadTable(inspectInput, loadOptions(cfg))
		if err != nil {
			return eris.Wrap(err, "inspect: load report")
		}

		zap.L().Info("report parsed",
			zap.String("path", inspectInput),
			zap.Int("rows", len(table.Rows)),
			zap.Strings("columns", table.Header),
		)

		preview := table
		if inspectRows > 0 && inspectRows < len(table.Rows) {
			preview = model.Table{Header: table.Header, Rows: table.Rows[:inspectRows]}
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(preview)
	},
}

func init() {
	inspectCmd.Flags().StringVar(&inspectInput, "input", "", "path to the sales report CSV/XLSX (required)")
	inspectCmd.Flags().IntVar(&inspectRows, "rows", 10, "max rows to print (0 = all)")
	_ = inspectCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(inspectCmd)
}
