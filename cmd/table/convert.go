// Package table handles table statement conversion commands.
package table

import (
	"statement-extract/cmd/common"
	"statement-extract/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the table command.
var Cmd = &cobra.Command{
	Use:   "table",
	Short: "Extract a ledger from a CSV table statement",
	Long:  `Extract transactions and matched account-summary rows from a statement exported as a row/column table.`,
	Run:   tableFunc,
}

func tableFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Table extract command called")

	err := common.ProcessFile(root.Engine(), common.FrontEndTable,
		root.SharedFlags.Input, root.SharedFlags.Output, root.SharedFlags.JSONOut, root.Log)
	if err != nil {
		root.Log.Fatalf("Error extracting table statement: %v", err)
	}
	root.Log.Info("Table statement extraction completed successfully!")
}
