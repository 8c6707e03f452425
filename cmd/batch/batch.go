// Package batch handles directory-level statement conversion.
package batch

import (
	"path/filepath"
	"strings"

	"statement-extract/cmd/common"
	"statement-extract/cmd/root"
	"statement-extract/internal/fileutils"
	"statement-extract/internal/logging"

	"github.com/spf13/cobra"
)

// Cmd represents the batch command.
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Extract every statement in a directory",
	Long: `Process every .txt and .csv statement in the input directory, writing
one transaction CSV and one summary CSV per statement into the output
directory. The front-end is picked per file from the extension.`,
	Run: batchFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.InputDir, "input-dir", "d", "", "Directory of statement files")
	Cmd.Flags().StringVarP(&root.OutputDir, "output-dir", "t", "", "Directory for extracted CSV files")
	_ = Cmd.MarkFlagRequired("input-dir")
	_ = Cmd.MarkFlagRequired("output-dir")
}

func batchFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Batch extract command called",
		logging.Field{Key: "input_dir", Value: root.InputDir},
		logging.Field{Key: "output_dir", Value: root.OutputDir})

	files, err := fileutils.ListFilesWithExtensions(root.InputDir, ".txt", ".csv", ".tsv")
	if err != nil {
		root.Log.Fatalf("Error listing statement files: %v", err)
	}
	if len(files) == 0 {
		root.Log.Warn("No statement files found in input directory")
		return
	}

	if err := fileutils.EnsureDirectoryExists(root.OutputDir); err != nil {
		root.Log.Fatalf("Error creating output directory: %v", err)
	}

	failures := 0
	for _, inputFile := range files {
		base := strings.TrimSuffix(filepath.Base(inputFile), filepath.Ext(inputFile))
		outputFile := filepath.Join(root.OutputDir, base+".csv")

		err := common.ProcessFile(root.Engine(), common.FrontEndAuto, inputFile, outputFile, "", root.Log)
		if err != nil {
			root.Log.WithError(err).Error("Failed to extract statement",
				logging.Field{Key: logging.FieldInputFile, Value: inputFile})
			failures++
			continue
		}
	}

	root.Log.Info("Batch extraction finished",
		logging.Field{Key: logging.FieldCount, Value: len(files) - failures},
		logging.Field{Key: "failed", Value: failures})
	if failures > 0 {
		root.Log.Fatalf("%d of %d statements failed to extract", failures, len(files))
	}
}
