package zid

import "encoding/hex"

// ToString renders data as canonical lowercase hex: two zero-padded digits
// per byte, in byte order, no separators.
func ToString(data []byte) string {
	return hex.EncodeToString(data)
}
