package types

// SearchResult is the outcome of one discovery call. Paths are relative
// to the project root, '/'-separated, in traversal order. Count always
// equals len(Paths).
type SearchResult struct {
	Count       int      `json:"count"`
	Paths       []string `json:"paths"`
	Description string   `json:"description"`

	// ErrorNote carries a non-fatal diagnostic, e.g. the verbatim
	// compiler message for a content pattern that failed to compile.
	ErrorNote string `json:"errorNote,omitempty"`
}
