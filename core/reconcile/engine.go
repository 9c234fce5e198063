package reconcile

import (
	"context"
	"errors"
	"fmt"

	"csv-differ/core/record"

	"golang.org/x/sync/errgroup"
)

// ErrNoAdapter is returned by Run when the spec carries no adapter.
var ErrNoAdapter = errors.New("reconcile: spec has no adapter")

// Run loads both indices and reconciles them.
// The two sides are loaded concurrently; the first failure cancels the other.
func Run(ctx context.Context, spec *Spec) (*Plan, error) {
	if spec.Adapter == nil {
		return nil, ErrNoAdapter
	}

	var leftIndex, rightIndex record.Index
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		leftIndex, err = spec.Adapter.LoadIndex(gctx, Left, spec.Left)
		if err != nil {
			return fmt.Errorf("failed to load %s input: %w", Left, err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		rightIndex, err = spec.Adapter.LoadIndex(gctx, Right, spec.Right)
		if err != nil {
			return fmt.Errorf("failed to load %s input: %w", Right, err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return Reconcile(leftIndex, rightIndex), nil
}

// Reconcile partitions the union of both key sets into keys only on the
// left, keys only on the right, and keys on both sides.
func Reconcile(left, right record.Index) *Plan {
	leftKeys := Keys(left)
	rightKeys := Keys(right)

	onlyLeft := Difference(leftKeys, rightKeys).Sorted()
	onlyRight := Difference(rightKeys, leftKeys).Sorted()
	both := Intersection(leftKeys, rightKeys).Sorted()

	return &Plan{
		LeftIndex:  left,
		RightIndex: right,
		OnlyLeft:   onlyLeft,
		OnlyRight:  onlyRight,
		Both:       both,
		Summary: PlanSummary{
			LeftKeys:  len(leftKeys),
			RightKeys: len(rightKeys),
			TotalKeys: len(onlyLeft) + len(onlyRight) + len(both),
			OnlyLeft:  len(onlyLeft),
			OnlyRight: len(onlyRight),
			Both:      len(both),
		},
	}
}
