// Package diff implements the two-file key reconciliation feature.
//
// A run compares two delimited inputs keyed on one column each and writes
// three outputs:
//  1. Left output (a-b.csv): full rows of the first input whose key is absent from the second.
//  2. Right output (b-a.csv): full rows of the second input whose key is absent from the first.
//  3. Intersect output (intersect.csv): one row per shared key, either both
//     full rows concatenated or the selected columns of each side.
//
// # Reconcile Adapter
//
// The package plugs a delimited-file adapter into the `core/reconcile`
// engine. The adapter resolves each input through `core/source` and indexes
// it with `core/loader`.
//
// # Components
//
//   - Service: validates the field specs, runs the engine, projects and writes the outputs.
//   - Adapter: loads one side and records its load statistics.
//   - Publisher: uploads committed outputs to object storage.
//
// # Failure behaviour
//
// Field specs are validated before any input is opened. Any later failure
// aborts the run. In append mode rows flushed before the failure stay in
// the outputs; in atomic mode the outputs are left exactly as they were.
package diff
