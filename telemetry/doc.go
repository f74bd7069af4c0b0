// Package telemetry provides observability primitives for memoized
// functions.
//
// It is a pure instrumentation library: no execution, no transport, no
// I/O beyond exporter setup. Consumers wire the provider into their
// memoization wrappers through call middleware and cache lifecycle
// hooks.
package telemetry
