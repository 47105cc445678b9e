package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Run one meta scan and print the result envelope",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := buildScanner().Run(cmd.Context())
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
