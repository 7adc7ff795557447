package zid

import (
	"context"
	"fmt"

	"github.com/viant/zid/tracing"
	"go.uber.org/zap"
)

// Generator creates, validates and parses ZIDs under a Policy. A Generator is
// immutable after construction and safe for concurrent use. The zero value
// reads from CryptoSource with no policy, no logging and 128-bit New.
type Generator struct {
	source      Source
	policy      *Policy
	defaultBits int
	logger      *zap.Logger
	tracing     bool
}

// std is the unconstrained crypto/rand backed Generator used by the package
// level functions.
var std = NewGenerator()

// NewGenerator returns a Generator reading from CryptoSource with no length
// policy, unless options say otherwise.
func NewGenerator(options ...Option) *Generator {
	g := &Generator{
		source:      CryptoSource{},
		defaultBits: DefaultBits,
		logger:      zap.NewNop(),
	}
	for _, opt := range options {
		opt(g)
	}
	return g
}

// Create returns a ZID of bits random bits using the package generator.
func Create(bits int) (ZID, error) { return std.Create(bits) }

// New returns a 128-bit ZID using the package generator.
func New() (ZID, error) { return std.New() }

// Policy returns the generator's length policy; nil means unconstrained.
func (g *Generator) Policy() *Policy { return g.policy }

// New returns a ZID of the configured default length.
func (g *Generator) New() (ZID, error) {
	bits := g.defaultBits
	if bits == 0 {
		bits = DefaultBits
	}
	return g.Create(bits)
}

// Create reads bits/8 bytes from the generator's Source. bits must be a
// positive multiple of 8 allowed by the policy, otherwise ErrInvalidArgument
// is returned. Source failures are returned as ErrRandomSourceUnavailable.
func (g *Generator) Create(bits int) (ZID, error) {
	return g.CreateContext(context.Background(), bits)
}

// CreateContext is Create recording a "zid.create" span when tracing is enabled.
func (g *Generator) CreateContext(ctx context.Context, bits int) (id ZID, err error) {
	if g.tracing {
		_, span := tracing.StartSpan(ctx, "zid.create")
		span.WithInt("zid.bits", bits)
		defer func() { tracing.EndSpan(span, err) }()
	}
	return g.create(bits)
}

func (g *Generator) create(bits int) (ZID, error) {
	if err := checkBits(bits); err != nil {
		return ZID{}, err
	}
	if !g.policy.AllowsBits(bits) {
		g.log().Debug("bit count rejected by policy", zap.Int("bits", bits), zap.Ints("allowed", g.policy.Bits))
		return ZID{}, invalidArgument("bit count %d not allowed by policy %v", bits, g.policy.Bits)
	}
	data := make([]byte, bits/8)
	if err := g.randomSource().Read(data); err != nil {
		g.log().Error("secure random source failed", zap.Int("bits", bits), zap.Error(err))
		return ZID{}, fmt.Errorf("%w: %w", ErrRandomSourceUnavailable, err)
	}
	return ZID{data: string(data)}, nil
}

func (g *Generator) randomSource() Source {
	if g.source == nil {
		return CryptoSource{}
	}
	return g.source
}

func (g *Generator) log() *zap.Logger {
	if g.logger == nil {
		return zap.NewNop()
	}
	return g.logger
}

// Validate reports whether candidate is canonical and allowed by the policy.
func (g *Generator) Validate(candidate string) bool {
	return g.policy.Validate(candidate)
}

// Check is Validate returning the *FormatError for rejected candidates.
func (g *Generator) Check(candidate string) error {
	return g.policy.Check(candidate)
}

// Parse decodes candidate after applying the policy.
func (g *Generator) Parse(candidate string) (ZID, error) {
	return g.ParseContext(context.Background(), candidate)
}

// ParseContext is Parse recording a "zid.parse" span when tracing is enabled.
func (g *Generator) ParseContext(ctx context.Context, candidate string) (id ZID, err error) {
	if g.tracing {
		_, span := tracing.StartSpan(ctx, "zid.parse")
		span.WithInt("zid.length", len(candidate))
		defer func() { tracing.EndSpan(span, err) }()
	}
	return g.policy.Parse(candidate)
}
