package zid

import (
	"encoding/hex"
	"fmt"
)

// Policy restricts which identifier lengths are acceptable. Bits lists the
// allowed bit lengths; an empty list, or a nil *Policy, allows any positive
// multiple of 8.
type Policy struct {
	Bits []int `json:"bits,omitempty" yaml:"bits,omitempty"`
}

// Policy128 returns a new Policy accepting only 128-bit identifiers (32 hex
// characters).
func Policy128() *Policy { return NewPolicy(128) }

// NewPolicy returns a Policy allowing exactly the supplied bit lengths.
func NewPolicy(bits ...int) *Policy {
	return &Policy{Bits: append([]int(nil), bits...)}
}

// Verify returns an error if any allowed length is not a positive multiple of 8.
func (p *Policy) Verify() error {
	if p == nil {
		return nil
	}
	for _, bits := range p.Bits {
		if err := checkBits(bits); err != nil {
			return fmt.Errorf("invalid policy: %w", err)
		}
	}
	return nil
}

// AllowsBits reports whether bits is an acceptable identifier length.
func (p *Policy) AllowsBits(bits int) bool {
	if checkBits(bits) != nil {
		return false
	}
	if p == nil || len(p.Bits) == 0 {
		return true
	}
	for _, candidate := range p.Bits {
		if candidate == bits {
			return true
		}
	}
	return false
}

// Allows reports whether byteLen is an acceptable identifier length in bytes.
func (p *Policy) Allows(byteLen int) bool {
	return p.AllowsBits(byteLen * 8)
}

// Check returns nil if candidate is a canonical ZID of an allowed length,
// otherwise a *FormatError naming the first rule it breaks.
func (p *Policy) Check(candidate string) error {
	if err := scan(candidate); err != nil {
		return err
	}
	if !p.Allows(len(candidate) / 2) {
		return &FormatError{Reason: ReasonWrongLength, Offset: -1, Length: len(candidate)}
	}
	return nil
}

// Validate reports whether candidate passes Check.
func (p *Policy) Validate(candidate string) bool {
	return p.Check(candidate) == nil
}

// Parse decodes a canonical candidate. Uppercase input is rejected.
func (p *Policy) Parse(candidate string) (ZID, error) {
	if err := p.Check(candidate); err != nil {
		return ZID{}, err
	}
	data, err := hex.DecodeString(candidate)
	if err != nil {
		return ZID{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return ZID{data: string(data)}, nil
}

func checkBits(bits int) error {
	if bits <= 0 {
		return invalidArgument("bit count must be positive, got %d", bits)
	}
	if bits%8 != 0 {
		return invalidArgument("bit count must be divisible by 8, got %d", bits)
	}
	return nil
}
