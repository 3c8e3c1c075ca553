package tspio

import (
	"errors"
	"fmt"
)

// ErrMalformedInput is matched by every *MalformedInputError.
var ErrMalformedInput = errors.New("tspio: malformed input")

// MalformedInputError reports where the input stopped following the protocol.
type MalformedInputError struct {
	// Line is the 1-based data row, or 0 for the header holding n.
	Line int
	// Expected and Actual are token counts for a data row.
	Expected int
	Actual   int
	// Token is the offending header text.
	Token string
	// Reason is a short description for header failures.
	Reason string
}

func (e *MalformedInputError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("tspio: invalid N %q: %s", e.Token, e.Reason)
	}

	return fmt.Sprintf("tspio: line %d: expected %d values, got %d", e.Line, e.Expected, e.Actual)
}

// Unwrap makes errors.Is(err, ErrMalformedInput) hold.
func (e *MalformedInputError) Unwrap() error { return ErrMalformedInput }
