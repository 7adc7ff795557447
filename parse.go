package zid

// Validate reports whether candidate is a canonical ZID of any length: non-empty,
// even length, lowercase hex only. It never panics.
func Validate(candidate string) bool {
	return std.Validate(candidate)
}

// Check is Validate returning the *FormatError for rejected candidates.
func Check(candidate string) error {
	return std.Check(candidate)
}

// Parse decodes a canonical ZID. ToString(Parse(s)) == s for every s that
// Validate accepts.
func Parse(candidate string) (ZID, error) {
	return std.Parse(candidate)
}

// MustParse is like Parse but panics on error. Use for constants.
func MustParse(candidate string) ZID {
	return Must(Parse(candidate))
}
