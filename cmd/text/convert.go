// Package text handles plain-text statement conversion commands.
package text

import (
	"statement-extract/cmd/common"
	"statement-extract/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the text command.
var Cmd = &cobra.Command{
	Use:   "text",
	Short: "Extract a ledger from a plain-text statement",
	Long:  `Extract transactions and an aggregate account summary from a statement flattened to plain text.`,
	Run:   textFunc,
}

func textFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Text extract command called")

	err := common.ProcessFile(root.Engine(), common.FrontEndText,
		root.SharedFlags.Input, root.SharedFlags.Output, root.SharedFlags.JSONOut, root.Log)
	if err != nil {
		root.Log.Fatalf("Error extracting text statement: %v", err)
	}
	root.Log.Info("Text statement extraction completed successfully!")
}
