package zid

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument reports a non-positive bit count, one that is not a
	// multiple of 8, or one outside the configured Policy.
	ErrInvalidArgument = errors.New("zid: invalid argument")
	// ErrRandomSourceUnavailable reports that the secure random source failed
	// or returned fewer bytes than requested.
	ErrRandomSourceUnavailable = errors.New("zid: random source unavailable")
	// ErrInvalidFormat reports a candidate string that is not a canonical ZID.
	ErrInvalidFormat = errors.New("zid: invalid format")
)

// Reason names the validation rule a candidate string violated.
type Reason string

const (
	// ReasonEmpty: the candidate has no characters.
	ReasonEmpty Reason = "empty"
	// ReasonBadCharacter: a character outside 0-9a-fA-F.
	ReasonBadCharacter Reason = "bad_character"
	// ReasonUppercase: an A-F letter; canonical form is lowercase.
	ReasonUppercase Reason = "uppercase"
	// ReasonOddLength: the candidate does not decode to whole bytes.
	ReasonOddLength Reason = "odd_length"
	// ReasonWrongLength: the decoded length is not allowed by the Policy.
	ReasonWrongLength Reason = "wrong_length"
)

// FormatError describes why a candidate was rejected. Offset is the byte
// position of the offending character for ReasonBadCharacter and
// ReasonUppercase, -1 otherwise. Length is the candidate's length.
type FormatError struct {
	Reason Reason
	Offset int
	Length int
}

func (e *FormatError) Error() string {
	switch e.Reason {
	case ReasonBadCharacter, ReasonUppercase:
		return fmt.Sprintf("%v: %s at offset %d", ErrInvalidFormat, e.Reason, e.Offset)
	case ReasonOddLength, ReasonWrongLength:
		return fmt.Sprintf("%v: %s %d", ErrInvalidFormat, e.Reason, e.Length)
	}
	return fmt.Sprintf("%v: %s", ErrInvalidFormat, e.Reason)
}

// Unwrap lets errors.Is(err, ErrInvalidFormat) match.
func (e *FormatError) Unwrap() error { return ErrInvalidFormat }

func invalidArgument(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
