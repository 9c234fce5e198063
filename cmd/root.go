package cmd

import (
	"fmt"
	"os"

	"csv-differ/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "csv-differ <path1> <path2> <check_field> [output_fields]",
	Short: "Compare two delimited files by key column",
	Long: `csv-differ compares two delimited text files keyed on one column each.

It writes three outputs, appending to them if they already exist:
  a-b.csv        rows of path1 whose key is not in path2
  b-a.csv        rows of path2 whose key is not in path1
  intersect.csv  one row per key found in both files

check_field selects the 1-based key column of each file, e.g. "1:1".
output_fields optionally selects the intersect columns of each file,
e.g. "1,2:3,6,9". Without it both full rows are concatenated.

Inputs may be local paths or s3://bucket/object locations.

Examples:
  # Key on the first column of both files
  csv-differ users-old.csv users-new.csv 1:1

  # Key on column 1 of the first file and column 3 of the second,
  # keep columns 1,2 of the first and 3,6,9 of the second for shared keys
  csv-differ a.csv b.csv 1:3 1,2:3,6,9

  # Write through temporary files and upload the results
  csv-differ a.csv s3://exports/b.csv 1:1 --atomic --publish`,
	Args:          cobra.RangeArgs(3, 4),
	RunE:          runDiff,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with ISO8601 timestamps, like the rest of the CLI output
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
