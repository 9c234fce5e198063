// Package output projects reconciled rows and writes them to their
// destinations.
//
// # Projection
//
// Rows for keys found on one side only are written whole. Rows for keys
// found on both sides are either the full left row followed by the full
// right row, or, when a Projection selects columns, the selected left
// fields followed by the selected right fields. Column positions are
// 1-based and checked; a missing column is a *record.RecordError.
//
// # Writers
//
// Two writer flavours share the Writer interface:
//
//   - Append writers open the destination with append-or-create and write
//     straight into it. Abort leaves whatever was flushed on disk.
//   - Atomic writers copy the current destination into a temporary file in
//     the same directory, append there, and rename over the destination on
//     Commit. Abort removes the temporary file.
//
// A Set groups the three destinations of one run so they commit or abort
// together.
package output
