package reconcile

import "csv-differ/core/record"

// Side identifies one of the two inputs.
type Side string

const (
	// Left is the first input ("a").
	Left Side = "left"
	// Right is the second input ("b").
	Right Side = "right"
)

// Input describes one side of a reconciliation.
type Input struct {
	// Location is a local path or an s3://bucket/object URL.
	Location string

	// KeyColumn is the 0-based position of the key field.
	KeyColumn int
}

// Spec defines a reconciliation run over two inputs.
type Spec struct {
	// Adapter loads the key index for each side.
	Adapter Adapter

	// Left is the first input.
	Left Input

	// Right is the second input.
	Right Input
}

// Plan is the outcome of reconciling two indices. Key lists are sorted.
type Plan struct {
	// LeftIndex is the index built from the first input.
	LeftIndex record.Index `json:"-"`

	// RightIndex is the index built from the second input.
	RightIndex record.Index `json:"-"`

	// OnlyLeft holds keys present in the first input only.
	OnlyLeft []string `json:"only_left"`

	// OnlyRight holds keys present in the second input only.
	OnlyRight []string `json:"only_right"`

	// Both holds keys present in both inputs.
	Both []string `json:"both"`

	// Summary provides aggregate counts.
	Summary PlanSummary `json:"summary"`
}

// PlanSummary provides aggregate statistics for a reconcile plan.
type PlanSummary struct {
	// LeftKeys is the number of distinct keys in the first input.
	LeftKeys int `json:"left_keys"`

	// RightKeys is the number of distinct keys in the second input.
	RightKeys int `json:"right_keys"`

	// TotalKeys is the size of the union of both key sets.
	TotalKeys int `json:"total_keys"`

	// OnlyLeft counts keys missing from the second input.
	OnlyLeft int `json:"only_left"`

	// OnlyRight counts keys missing from the first input.
	OnlyRight int `json:"only_right"`

	// Both counts keys present in both inputs.
	Both int `json:"both"`
}
