package diff

import (
	"context"
	"fmt"

	"csv-differ/core/fieldspec"
	"csv-differ/core/loader"
	"csv-differ/core/logger"
	"csv-differ/core/output"
	"csv-differ/core/reconcile"
	"csv-differ/core/source"
	"csv-differ/core/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxSampleKeys caps the keys logged per group.
const maxSampleKeys = 5

// Request names the inputs and field specs of one run.
type Request struct {
	// LeftPath is the first input ("a").
	LeftPath string
	// RightPath is the second input ("b").
	RightPath string
	// KeySpec selects the key column of each side, e.g. "1:1".
	KeySpec string
	// OutputSpec optionally selects intersect columns, e.g. "1,2:3". Empty
	// means full rows from both sides.
	OutputSpec string
}

// Options controls how a run reads and writes.
type Options struct {
	Delimiter  string
	Paths      output.Paths
	Mode       output.Mode
	Duplicates loader.DuplicatePolicy
	// Publish enables uploading outputs after a successful commit.
	Publish       bool
	PublishBucket string
	PublishPrefix string
}

// OutputReport describes one written destination.
type OutputReport struct {
	Path  string `json:"path"`
	Lines int    `json:"lines"`
}

// Report summarizes a completed run.
type Report struct {
	RunID      string                `json:"run_id"`
	Summary    reconcile.PlanSummary `json:"summary"`
	LeftStats  loader.Stats          `json:"left_stats"`
	RightStats loader.Stats          `json:"right_stats"`
	Left       OutputReport          `json:"left"`
	Right      OutputReport          `json:"right"`
	Intersect  OutputReport          `json:"intersect"`
	Published  []string              `json:"published,omitempty"`
}

// Service runs two-file reconciliations.
type Service struct {
	opener source.Opener
	client storage.Client
	logger *zap.Logger
	opts   Options
	newRun func() string
}

// NewService creates a new diff service. client may be nil when neither
// s3:// inputs nor publishing are used.
func NewService(opener source.Opener, client storage.Client, logger *zap.Logger, opts Options) *Service {
	if opts.Delimiter == "" {
		opts.Delimiter = ","
	}
	if opts.Paths == (output.Paths{}) {
		opts.Paths = output.DefaultPaths(".")
	}
	return &Service{
		opener: opener,
		client: client,
		logger: logger,
		opts:   opts,
		newRun: uuid.NewString,
	}
}

// Run executes one reconciliation and writes its three outputs.
func (s *Service) Run(ctx context.Context, req Request) (*Report, error) {
	keySpec, err := fieldspec.ParseKey(req.KeySpec)
	if err != nil {
		return nil, fmt.Errorf("invalid check field: %w", err)
	}
	outSpec, err := fieldspec.ParseOptional(req.OutputSpec)
	if err != nil {
		return nil, fmt.Errorf("invalid output fields: %w", err)
	}
	if s.opts.Publish && s.client == nil {
		return nil, fmt.Errorf("publishing requested: %w", source.ErrNoStorage)
	}

	runID := s.newRun()
	log := logger.WithRun(s.logger, runID)
	log.Debug("Parsed field specs",
		zap.String("check_field", keySpec.String()),
		zap.String("output_fields", outSpec.String()),
	)

	adapter := NewAdapter(s.opener, s.opts.Delimiter, s.opts.Duplicates, log)
	spec := &reconcile.Spec{
		Adapter: adapter,
		Left:    reconcile.Input{Location: req.LeftPath, KeyColumn: keySpec.Left[0] - 1},
		Right:   reconcile.Input{Location: req.RightPath, KeyColumn: keySpec.Right[0] - 1},
	}

	plan, err := reconcile.Run(ctx, spec)
	if err != nil {
		return nil, err
	}
	logPlan(log, plan)

	set, err := output.OpenSet(s.opts.Paths, s.opts.Delimiter, s.opts.Mode)
	if err != nil {
		return nil, err
	}
	if err := s.emit(set, plan, output.Projection{Left: outSpec.Left, Right: outSpec.Right}); err != nil {
		if abortErr := set.Abort(); abortErr != nil {
			log.Warn("Failed to release outputs", zap.Error(abortErr))
		}
		return nil, err
	}
	if err := set.Commit(); err != nil {
		return nil, err
	}

	report := &Report{
		RunID:      runID,
		Summary:    plan.Summary,
		LeftStats:  adapter.Stats(reconcile.Left),
		RightStats: adapter.Stats(reconcile.Right),
		Left:       OutputReport{Path: set.Left.Path(), Lines: set.Left.Lines()},
		Right:      OutputReport{Path: set.Right.Path(), Lines: set.Right.Lines()},
		Intersect:  OutputReport{Path: set.Intersect.Path(), Lines: set.Intersect.Lines()},
	}
	for _, o := range []OutputReport{report.Left, report.Right, report.Intersect} {
		log.Info("Wrote output", zap.String("path", o.Path), zap.Int("lines", o.Lines), zap.Stringer("mode", s.opts.Mode))
	}

	if s.opts.Publish {
		pub := NewPublisher(s.client, s.opts.PublishBucket, s.opts.PublishPrefix, log)
		files := []string{report.Left.Path, report.Right.Path, report.Intersect.Path}
		report.Published, err = pub.Publish(ctx, runID, files)
		if err != nil {
			return report, fmt.Errorf("outputs written but publishing failed: %w", err)
		}
	}

	return report, nil
}

func (s *Service) emit(set *output.Set, plan *reconcile.Plan, proj output.Projection) error {
	if err := output.EmitDifference(set.Left, plan.LeftIndex, plan.OnlyLeft); err != nil {
		return err
	}
	if err := output.EmitDifference(set.Right, plan.RightIndex, plan.OnlyRight); err != nil {
		return err
	}
	return output.EmitIntersection(set.Intersect, plan.LeftIndex, plan.RightIndex, plan.Both, proj)
}

// logPlan prints a short reconciliation report.
func logPlan(l *zap.Logger, plan *reconcile.Plan) {
	s := plan.Summary

	l.Info("Reconciliation report",
		zap.Int("left_keys", s.LeftKeys),
		zap.Int("right_keys", s.RightKeys),
		zap.Int("total_keys", s.TotalKeys),
		zap.Int("only_left", s.OnlyLeft),
		zap.Int("only_right", s.OnlyRight),
		zap.Int("both", s.Both),
	)

	groups := []struct {
		name string
		keys []string
	}{
		{"only_left", plan.OnlyLeft},
		{"only_right", plan.OnlyRight},
	}
	for _, g := range groups {
		if len(g.keys) == 0 {
			continue
		}
		n := min(len(g.keys), maxSampleKeys)
		l.Info("Sample keys", zap.String("group", g.name), zap.Strings("keys", g.keys[:n]))
		if len(g.keys) > n {
			l.Info("Additional keys not shown", zap.String("group", g.name), zap.Int("count", len(g.keys)-n))
		}
	}
}
