package zid

import (
	"github.com/viant/zid/tracing"
	"go.uber.org/zap"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Option configures a Generator.
type Option func(g *Generator)

// WithSource sets the secure random source. A nil source is ignored.
func WithSource(source Source) Option {
	return func(g *Generator) {
		if source != nil {
			g.source = source
		}
	}
}

// WithPolicy sets the length policy; nil removes any constraint.
func WithPolicy(policy *Policy) Option {
	return func(g *Generator) { g.policy = policy }
}

// WithDefaultBits sets the length used by Generator.New.
func WithDefaultBits(bits int) Option {
	return func(g *Generator) { g.defaultBits = bits }
}

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithTracing enables spans and initialises OpenTelemetry with the stdout
// exporter. If outputFile is empty traces go to stdout. The first successful
// initialisation in the process wins.
func WithTracing(serviceName, serviceVersion, outputFile string) Option {
	return func(g *Generator) {
		_ = tracing.Init(serviceName, serviceVersion, outputFile)
		g.tracing = true
	}
}

// withSpans enables spans without initialising a provider.
func withSpans() Option {
	return func(g *Generator) { g.tracing = true }
}

// WithTracingExporter enables spans exported through a custom SpanExporter.
func WithTracingExporter(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) Option {
	return func(g *Generator) {
		_ = tracing.InitWithExporter(serviceName, serviceVersion, exporter)
		g.tracing = true
	}
}
