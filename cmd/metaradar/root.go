package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"meta-radar/internal/config"
	"meta-radar/internal/scan"
	"meta-radar/pkg/anthropic"
	"meta-radar/pkg/dexscreener"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "meta-radar",
	Short: "Detects the dominant theme across newly promoted tokens",
	Long:  "Harvests promoted token feeds from DexScreener, resolves them into a canonical set, detects the dominant lexical theme and asks Claude for a short narrative.",
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

func buildScanner() *scan.Scanner {
	dex := dexscreener.NewClient(
		dexscreener.WithBaseURL(cfg.Dexscreener.BaseURL),
		dexscreener.WithTimeout(time.Duration(cfg.Dexscreener.TimeoutSecs)*time.Second),
	)
	ai := anthropic.NewClient(cfg.Anthropic.Key)
	return scan.New(cfg, dex, ai)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
