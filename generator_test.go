package zid

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/zid/internal/entropy"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestGenerator_CryptoSourceUnavailable(t *testing.T) {
	prev := entropy.ReadFunc
	defer func() { entropy.ReadFunc = prev }()
	cause := errors.New("getrandom: not supported")
	entropy.ReadFunc = func(p []byte) error { return cause }

	id, err := NewGenerator().Create(128)
	assert.True(t, errors.Is(err, ErrRandomSourceUnavailable))
	assert.True(t, errors.Is(err, cause))
	assert.True(t, id.IsZero())
}

func TestGenerator_SourceFailures(t *testing.T) {
	testCases := []struct {
		description string
		source      Source
	}{
		{
			description: "failing source func",
			source:      SourceFunc(func(p []byte) error { return errors.New("boom") }),
		},
		{
			description: "short reader",
			source:      ReaderSource{Reader: bytes.NewReader([]byte{1, 2, 3})},
		},
		{
			description: "nil reader",
			source:      ReaderSource{},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			id, err := NewGenerator(WithSource(tc.source)).Create(128)
			assert.True(t, errors.Is(err, ErrRandomSourceUnavailable), "%v", err)
			assert.True(t, id.IsZero())
		})
	}
}

func TestGenerator_ReaderSource(t *testing.T) {
	reader := bytes.NewReader([]byte{0xde, 0xad, 0xbe, 0xef, 0x0a})
	generator := NewGenerator(WithSource(ReaderSource{Reader: reader}))

	id, err := generator.Create(32)
	require.NoError(t, err)
	assert.Equal(t, "deadbeef", id.String())

	_, err = generator.Create(16)
	assert.True(t, errors.Is(err, ErrRandomSourceUnavailable))
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
}

func TestSeededSource(t *testing.T) {
	newGenerator := func(seed string) *Generator {
		source, err := NewSeededSource([]byte(seed))
		require.NoError(t, err)
		return NewGenerator(WithSource(source))
	}
	first, second := newGenerator("fixture"), newGenerator("fixture")
	for i := 0; i < 5; i++ {
		a, err := first.Create(128)
		require.NoError(t, err)
		b, err := second.Create(128)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	}

	a, err := newGenerator("fixture").Create(128)
	require.NoError(t, err)
	b, err := newGenerator("other").Create(128)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)

	next, err := first.Create(128)
	require.NoError(t, err)
	assert.NotEqual(t, a, next)
}

func TestSeededSource_Concurrent(t *testing.T) {
	source, err := NewSeededSource([]byte("concurrent"))
	require.NoError(t, err)
	generator := NewGenerator(WithSource(source))

	const workers, perWorker = 8, 250
	var mux sync.Mutex
	seen := make(map[ZID]struct{}, workers*perWorker)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				id, err := generator.Create(64)
				if !assert.NoError(t, err) {
					return
				}
				mux.Lock()
				seen[id] = struct{}{}
				mux.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Len(t, seen, workers*perWorker)
}

func TestGenerator_Policy(t *testing.T) {
	policy := Policy128()
	generator := NewGenerator(WithPolicy(policy))
	assert.Same(t, policy, generator.Policy())

	id, err := generator.New()
	require.NoError(t, err)
	assert.Equal(t, 128, id.Bits())

	_, err = generator.Create(64)
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	assert.True(t, generator.Validate("90f44e35a062479289ff75ab2abc0ed3"))
	assert.False(t, generator.Validate("90f44e35"))

	_, err = generator.Parse("90f44e35")
	var formatErr *FormatError
	require.True(t, errors.As(err, &formatErr))
	assert.Equal(t, ReasonWrongLength, formatErr.Reason)
	assert.Equal(t, 8, formatErr.Length)
	assert.EqualError(t, generator.Check("90f44e35"), "zid: invalid format: wrong_length 8")

	parsed, err := generator.Parse(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)
}

func TestPolicy128_Fresh(t *testing.T) {
	policy := Policy128()
	policy.Bits[0] = 64
	assert.Equal(t, []int{128}, Policy128().Bits)
	assert.True(t, Policy128().AllowsBits(128))
}

func TestGenerator_ZeroValue(t *testing.T) {
	var generator Generator

	id, err := generator.Create(64)
	require.NoError(t, err)
	assert.Equal(t, 8, id.Len())

	id, err = generator.New()
	require.NoError(t, err)
	assert.Equal(t, DefaultBits, id.Bits())

	_, err = generator.Create(12)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.True(t, generator.Validate(id.String()))
}

func TestPackageFunctions_Concurrent(t *testing.T) {
	const workers, perWorker = 8, 200
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				id, err := Create(128)
				if !assert.NoError(t, err) {
					return
				}
				text := id.String()
				assert.True(t, Validate(text))
				parsed, err := Parse(text)
				if !assert.NoError(t, err) {
					return
				}
				assert.Equal(t, id, parsed)
				assert.False(t, Validate(text[1:]))
			}
		}()
	}
	wg.Wait()
}

func TestPolicy(t *testing.T) {
	testCases := []struct {
		description string
		policy      *Policy
		bits        int
		expected    bool
	}{
		{description: "nil policy any multiple of 8", policy: nil, bits: 24, expected: true},
		{description: "nil policy rejects 127", policy: nil, bits: 127, expected: false},
		{description: "empty policy", policy: &Policy{}, bits: 8, expected: true},
		{description: "fixed policy match", policy: NewPolicy(64, 128), bits: 64, expected: true},
		{description: "fixed policy mismatch", policy: NewPolicy(64, 128), bits: 96, expected: false},
		{description: "non positive", policy: nil, bits: 0, expected: false},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.policy.AllowsBits(tc.bits))
		})
	}

	assert.NoError(t, NewPolicy(8, 256).Verify())
	assert.True(t, errors.Is(NewPolicy(8, 12).Verify(), ErrInvalidArgument))
	var nilPolicy *Policy
	assert.NoError(t, nilPolicy.Verify())
}

func TestGenerator_Logging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	failing := SourceFunc(func(p []byte) error { return errors.New("boom") })
	generator := NewGenerator(WithSource(failing), WithPolicy(NewPolicy(64)), WithLogger(zap.New(core)))

	_, err := generator.Create(64)
	require.Error(t, err)
	entries := logs.FilterMessage("secure random source failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.EqualValues(t, 64, entries[0].ContextMap()["bits"])

	_, err = generator.Create(128)
	require.Error(t, err)
	assert.Equal(t, 1, logs.FilterMessage("bit count rejected by policy").Len())
}

func TestGenerator_Tracing(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	generator := NewGenerator(WithTracingExporter("zid-test", "0.0.1", exporter))
	ctx := context.Background()

	id, err := generator.CreateContext(ctx, 128)
	require.NoError(t, err)
	_, err = generator.ParseContext(ctx, id.String())
	require.NoError(t, err)
	_, err = generator.ParseContext(ctx, "XYZ")
	require.Error(t, err)

	spans := exporter.GetSpans()
	require.Len(t, spans, 3)
	assert.Equal(t, "zid.create", spans[0].Name)
	assert.Equal(t, codes.Ok, spans[0].Status.Code)
	var bits int64
	for _, attr := range spans[0].Attributes {
		if attr.Key == "zid.bits" {
			bits = attr.Value.AsInt64()
		}
	}
	assert.EqualValues(t, 128, bits)
	assert.Equal(t, "zid.parse", spans[1].Name)
	assert.Equal(t, codes.Error, spans[2].Status.Code)
}
