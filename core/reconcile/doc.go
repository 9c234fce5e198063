// Package reconcile compares the key sets of two indexed inputs.
//
// Given one record.Index per side, the engine partitions the union of keys
// into three disjoint groups:
//
//   - OnlyLeft: keys found in the first input but not the second
//   - OnlyRight: keys found in the second input but not the first
//   - Both: keys found in both inputs
//
// Every group is sorted so repeated runs over the same inputs produce the
// same output order.
//
// # Architecture
//
// 1. Adapter: loads the index for each side. feature/diff provides the
// delimited-file adapter; tests plug in fixed maps.
//
// 2. Engine: Run loads both sides concurrently with errgroup and hands the
// indices to Reconcile.
//
// 3. Sets: KeySet with Difference, Intersection and Union.
//
// # Usage Example
//
//	spec := &reconcile.Spec{
//	    Adapter: adapter,
//	    Left:    reconcile.Input{Location: "a.csv", KeyColumn: 0},
//	    Right:   reconcile.Input{Location: "b.csv", KeyColumn: 0},
//	}
//	plan, err := reconcile.Run(ctx, spec)
package reconcile
