// Package zid generates and formats secure random identifiers.
//
// A ZID is an immutable, fixed-length sequence of bytes read from a
// cryptographically secure random source. Its canonical text form is
// lowercase hexadecimal without separators, exactly two characters per byte:
//
//	id, _ := zid.Create(128)           // 16 random bytes
//	s := id.String()                   // "90f44e35a062479289ff75ab2abc0ed3"
//	back, err := zid.Parse(s)          // byte-identical to id
//	ok := zid.Validate("90F44E35")     // false: uppercase is never canonical
//
// Package level functions use an unconstrained Generator backed by
// crypto/rand. Use NewGenerator or NewFromConfig to fix the allowed lengths
// (see Policy), swap the random Source, or attach logging and tracing.
package zid
