// Package loader builds key indices from delimited text inputs.
//
// Each input line is trimmed, split on the configured delimiter and stored
// under the value found in the key column. The whole input is read before
// the index is returned.
//
// # Line policy
//
//   - Lines that are not valid UTF-8 are skipped and logged as warnings.
//   - Lines that are blank after trimming are skipped.
//   - A row with fewer fields than the key column fails the load with a
//     *record.RecordError naming the source and line.
//   - Repeated keys follow the DuplicatePolicy: the last row wins by default,
//     KeepFirst keeps the earliest row, Reject fails with a
//     *record.DuplicateKeyError.
//
// # Usage
//
//	idx, stats, err := loader.LoadPath(ctx, opener, "users.csv", loader.Options{
//	    KeyColumn: 0,
//	    Delimiter: ",",
//	    Logger:    log,
//	})
package loader
