package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"csv-differ/core/config"
	"csv-differ/core/loader"
	"csv-differ/core/logger"
	"csv-differ/core/output"
	"csv-differ/core/source"
	"csv-differ/core/storage"
	"csv-differ/feature/diff"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags overriding the diff configuration
	delimiterFlag  string
	outputDirFlag  string
	atomicFlag     bool
	duplicatesFlag string
	publishFlag    bool
)

func init() {
	RootCmd.Flags().StringVarP(&delimiterFlag, "delimiter", "d", ",", "Field delimiter for inputs and outputs")
	RootCmd.Flags().StringVarP(&outputDirFlag, "output-dir", "o", ".", "Directory for a-b.csv, b-a.csv and intersect.csv")
	RootCmd.Flags().BoolVar(&atomicFlag, "atomic", false, "Write outputs through temporary files and rename only if the whole run succeeds")
	RootCmd.Flags().StringVar(&duplicatesFlag, "duplicates", string(loader.KeepLast), "Repeated key policy: last, first or error")
	RootCmd.Flags().BoolVar(&publishFlag, "publish", false, "Upload the outputs to the configured storage bucket")
}

func runDiff(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFlags(cmd, &cfg.Diff)

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = l.Sync() }()

	duplicates, err := loader.ParseDuplicatePolicy(cfg.Diff.Duplicates)
	if err != nil {
		return err
	}

	req := diff.Request{
		LeftPath:  args[0],
		RightPath: args[1],
		KeySpec:   args[2],
	}
	if len(args) == 4 {
		req.OutputSpec = args[3]
	}

	// Connect to storage only when something lives there
	var client storage.Client
	if cfg.Diff.Publish || source.IsRemote(req.LeftPath) || source.IsRemote(req.RightPath) {
		client, err = storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to connect to storage: %w", err)
		}
	}

	mode := output.Append
	if cfg.Diff.Atomic {
		mode = output.Atomic
	}

	svc := diff.NewService(source.NewOpener(client), client, l, diff.Options{
		Delimiter: cfg.Diff.Delimiter,
		Paths: output.Paths{
			Left:      filepath.Join(cfg.Diff.OutputDir, cfg.Diff.LeftOutput),
			Right:     filepath.Join(cfg.Diff.OutputDir, cfg.Diff.RightOutput),
			Intersect: filepath.Join(cfg.Diff.OutputDir, cfg.Diff.IntersectOutput),
		},
		Mode:          mode,
		Duplicates:    duplicates,
		Publish:       cfg.Diff.Publish,
		PublishBucket: cfg.Storage.Bucket,
		PublishPrefix: cfg.Diff.PublishPrefix,
	})

	report, err := svc.Run(ctx, req)
	if err != nil {
		return err
	}

	l.Info("Diff complete",
		zap.String("run_id", report.RunID),
		zap.Int("a_minus_b", report.Left.Lines),
		zap.Int("b_minus_a", report.Right.Lines),
		zap.Int("intersect", report.Intersect.Lines),
		zap.Int("published", len(report.Published)),
	)
	return nil
}

// applyFlags copies explicitly set flags over the loaded configuration.
func applyFlags(cmd *cobra.Command, cfg *config.DiffConfig) {
	flags := cmd.Flags()
	if flags.Changed("delimiter") {
		cfg.Delimiter = delimiterFlag
	}
	if flags.Changed("output-dir") {
		cfg.OutputDir = outputDirFlag
	}
	if flags.Changed("atomic") {
		cfg.Atomic = atomicFlag
	}
	if flags.Changed("duplicates") {
		cfg.Duplicates = duplicatesFlag
	}
	if flags.Changed("publish") {
		cfg.Publish = publishFlag
	}
}
