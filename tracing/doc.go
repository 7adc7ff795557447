// Package tracing integrates OpenTelemetry with zid so that identifier
// generation and parsing can be observed. All instrumentation is kept in a
// separate package; applications that never enable tracing pay only for a
// no-op tracer lookup.
package tracing
