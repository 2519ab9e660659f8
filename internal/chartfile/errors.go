package chartfile

import "fmt"

// ParseError reports a value that could not be decoded. Line is 1-based
// and zero when unknown.
type ParseError struct {
	Line  int
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("chartfile: line %d: %s: %v", e.Line, e.Field, e.Err)
	}
	return fmt.Sprintf("chartfile: %s: %v", e.Field, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
