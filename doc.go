// Package decorator builds composable wrappers around ordinary Go functions
// and methods. A callable is adapted once into a canonical context-first
// shape, converted by FailSafe into a call that cannot fail, and then layered
// with output, timing, guarding, caching or tracing wrappers that all pass
// the underlying Result through unchanged.
//
// Wrappers capture their configuration at construction and hold no mutable
// state of their own, so a wrapped callable can be shared across goroutines
// whenever the underlying callable and sink can.
package decorator
