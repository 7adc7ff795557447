package zid

import (
	"github.com/viant/parsly"
)

// Token codes
const (
	lowerHexCode = iota + 1
	upperHexCode
)

// Token definitions
var (
	lowerHexToken = parsly.NewToken(lowerHexCode, "LowerHex", &hexRunMatcher{})
	upperHexToken = parsly.NewToken(upperHexCode, "UpperHex", &hexRunMatcher{upper: true})
)

// hexRunMatcher matches a run of lowercase hex digits, or with upper set, a
// run of uppercase hex letters.
type hexRunMatcher struct {
	upper bool
}

func (m *hexRunMatcher) Match(cursor *parsly.Cursor) int {
	input := cursor.Input
	size := cursor.InputSize
	matched := 0
	for i := cursor.Pos; i < size; i++ {
		if m.upper && !isUpperHexLetter(input[i]) {
			break
		}
		if !m.upper && !isLowerHex(input[i]) {
			break
		}
		matched++
	}
	return matched
}

func isLowerHex(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f')
}

func isUpperHexLetter(b byte) bool {
	return b >= 'A' && b <= 'F'
}

// scan checks candidate against the canonical grammar [0-9a-f]{2n}, n > 0,
// and reports the first violation.
func scan(candidate string) *FormatError {
	size := len(candidate)
	if size == 0 {
		return &FormatError{Reason: ReasonEmpty, Offset: -1}
	}
	cursor := parsly.NewCursor("", []byte(candidate), 0)
	for cursor.Pos < cursor.InputSize {
		pos := cursor.Pos
		matched := cursor.MatchAny(lowerHexToken, upperHexToken)
		switch matched.Code {
		case lowerHexCode:
		case upperHexCode:
			return &FormatError{Reason: ReasonUppercase, Offset: pos, Length: size}
		default:
			return &FormatError{Reason: ReasonBadCharacter, Offset: pos, Length: size}
		}
	}
	if size%2 != 0 {
		return &FormatError{Reason: ReasonOddLength, Offset: -1, Length: size}
	}
	return nil
}
