// Package comparator wires the cleaner, aligner, spelling matcher, name
// modifier, and pronunciation matcher into the four-attempt comparison
// pipeline of spec §4.15 and exposes it as a constructible, reusable
// public API.
package comparator

import "github.com/teranos/namematch/align"

// Attempt records one cascade step's rendered inputs and the alignment
// it produced.
type Attempt struct {
	LeftRendered  string
	RightRendered string
	Alignment     []align.Pair
	ViaSkeleton   bool
	Pronounced    bool
}

// Result is the full diagnostic record of a single comparison, per
// spec §3.
type Result struct {
	Match      bool
	TooShort   bool
	TooGeneric bool

	Attempt1 *Attempt
	Attempt2 *Attempt
	Attempt3 *Attempt
	Attempt4 *Attempt

	// TraceID identifies this comparison for log correlation.
	TraceID string

	// Trace is a free-text log of the pair-aware cleaner's edits, populated
	// only when the Comparator was built WithTrace(). Never consulted by
	// the match decision itself.
	Trace []string
}
