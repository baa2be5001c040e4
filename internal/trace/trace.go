// Package trace wires the engine's diagnostic output through schuko's
// tracing facility, mirroring engine/frame.T()'s pattern instead of
// reaching for the standard log package.
package trace

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T returns the engine-wide tracer. Every package in shlesha-go traces
// through this single entry point.
func T() tracing.Trace {
	return gtrace.EngineTracer
}
