package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/piwi3910/nestkit/internal/export"
	"github.com/piwi3910/nestkit/internal/model"
)

var reportCmd = &cobra.Command{
	Use:   "report RESULTFILE OUTFILE",
	Short: "write an XLSX statistics report from a saved result document",
	Long: `report reads a result document (the JSON line "nest run" prints to
stdout, saved to RESULTFILE) and writes an XLSX workbook to OUTFILE
with overall statistics, every placement, and any unplaced parts.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("cannot read result document: %w", err)
		}
		var result model.Result
		if err := json.Unmarshal(data, &result); err != nil {
			return fmt.Errorf("malformed result document: %w", err)
		}
		return export.WriteStatisticsReport(args[1], result)
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
