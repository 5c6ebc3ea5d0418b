package serialize

// (Error taxonomy) — malformed input is reported here, at the
// serialization boundary, with a file name and a short diagnostic. The
// resolution core is never entered when decoding fails.

import "fmt"

// ParseError reports a syntactically invalid structured clause document.
// Path is a JSON-pointer-ish location (e.g. "clauses[2].literals[0].args")
// identifying where decoding gave up.
type ParseError struct {
	File    string
	Path    string
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.File, e.Path, e.Message)
}

func parseErrorf(file, path, format string, args ...any) *ParseError {
	return &ParseError{File: file, Path: path, Message: fmt.Sprintf(format, args...)}
}
