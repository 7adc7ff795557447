// Package entropy wraps the operating system's secure random source so that it
// can be stubbed in tests. It lives under `internal` because callers should
// go through zid.Source rather than rely on this hook.
package entropy
