package genericdate

import (
	"errors"
	"fmt"
)

var (
	// ErrNoMatch is wrapped by every ParseError.
	ErrNoMatch = errors.New("genericdate: no match")
	// ErrBadPattern is wrapped by every PatternError.
	ErrBadPattern = errors.New("genericdate: bad pattern")
	// ErrNoParser is returned by FromContext when the context carries no Parser.
	ErrNoParser = errors.New("genericdate: no parser in context")
)

const (
	reasonNoDate = "no pattern matched"
	reasonNoTime = "no time pattern matched"
)

// ParseError reports a value that none of the candidate patterns could parse.
type ParseError struct {
	Reason string
	Input  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("genericdate: %s: could not parse %q", e.Reason, e.Input)
}

func (e *ParseError) Unwrap() error { return ErrNoMatch }

// PatternError reports a malformed pattern. Pos is the byte offset of the
// offending character.
type PatternError struct {
	Pattern string
	Pos     int
	Msg     string
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("genericdate: bad pattern %q at %d: %s", e.Pattern, e.Pos, e.Msg)
}

func (e *PatternError) Unwrap() error { return ErrBadPattern }
