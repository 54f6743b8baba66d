package model

// Suggestion is a single entry from a model response. Both fields are
// untrusted: Line is kept as the raw string the model produced (it may not
// be numeric at all) and Body may be empty or malformed. Validation happens
// during reconciliation, never at decode time.
type Suggestion struct {
	Line string
	Body string
}

// DiscardedSuggestion records a suggestion rejected during reconciliation,
// kept for diagnostic logging. Reason is a short machine-friendly tag.
type DiscardedSuggestion struct {
	Path   string
	Line   string
	Body   string
	Reason string
}

// Discard reasons.
const (
	DiscardNotANumber   = "line_not_a_number"
	DiscardOutOfRange   = "line_outside_hunk"
	DiscardNoTargetPath = "file_has_no_target_path"
)
