package domain

// Result holds the outcome of a speech similarity computation.
type Result struct {
	Name string
	// Percent is the similarity score in [0, 100].
	Percent int
	// Score is Percent scaled to [0, 1].
	Score float64
	// Passed is true when Percent exceeds Threshold.
	Passed    bool
	Threshold int
	// ExactMatch is true when either folded form matched exactly.
	ExactMatch bool
	// PhoneticMatch is true when the Soundex floor was applied.
	PhoneticMatch bool
	Details       map[string]interface{}
}
