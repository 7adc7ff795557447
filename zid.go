package zid

import (
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// ZID is an immutable random identifier. The zero value is the empty ZID.
// ZIDs are comparable with == and may be used as map keys; equality and
// ordering are byte-wise.
type ZID struct {
	data string
}

// FromBytes returns a ZID holding a copy of data.
func FromBytes(data []byte) (ZID, error) {
	if len(data) == 0 {
		return ZID{}, invalidArgument("empty byte sequence")
	}
	return ZID{data: string(data)}, nil
}

// FromUUID returns the 128-bit ZID holding u's raw bytes. No version or
// variant bits are interpreted.
func FromUUID(u uuid.UUID) ZID {
	return ZID{data: string(u[:])}
}

// Must returns z or panics if err is not nil.
func Must(z ZID, err error) ZID {
	if err != nil {
		panic(err)
	}
	return z
}

// Bytes returns a copy of the identifier bytes.
func (z ZID) Bytes() []byte { return []byte(z.data) }

// Len returns the byte length.
func (z ZID) Len() int { return len(z.data) }

// Bits returns the bit length, always a multiple of 8.
func (z ZID) Bits() int { return len(z.data) * 8 }

// IsZero reports whether z is the empty ZID.
func (z ZID) IsZero() bool { return z.data == "" }

// String returns the canonical lowercase hex form.
func (z ZID) String() string { return ToString([]byte(z.data)) }

// Equal reports whether z and other hold the same bytes.
func (z ZID) Equal(other ZID) bool { return z.data == other.data }

// Compare returns -1, 0 or +1 comparing z and other byte-wise.
func (z ZID) Compare(other ZID) int { return strings.Compare(z.data, other.data) }

// UUID returns the 16 raw bytes of a 128-bit ZID as a uuid.UUID.
func (z ZID) UUID() (uuid.UUID, error) {
	u, err := uuid.FromBytes([]byte(z.data))
	if err != nil {
		return uuid.Nil, invalidArgument("uuid requires 128 bits, got %d", z.Bits())
	}
	return u, nil
}

// MarshalText implements encoding.TextMarshaler.
func (z ZID) MarshalText() ([]byte, error) {
	return []byte(z.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Empty text yields the
// zero ZID; anything else must be canonical.
func (z *ZID) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*z = ZID{}
		return nil
	}
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*z = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (z ZID) MarshalYAML() (interface{}, error) {
	return z.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (z *ZID) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return invalidArgument("expected scalar zid at line %d", node.Line)
	}
	if node.Tag == "!!null" {
		*z = ZID{}
		return nil
	}
	return z.UnmarshalText([]byte(node.Value))
}
