package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jumbo-cdp/leadqual/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "leadqual",
	Short: "Sales lead qualification pipeline",
	Long:  "Ingests a sales report (CSV/XLSX), keeps new customers whose only history is a saved order, and produces a WhatsApp-ready outreach list with personalized messages.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
