/*
Package tracing routes the traces of the hangul packages to schuko's core tracer.

Packages of this module never hold a tracer of their own. They call the
functions of this package, which forward to gtrace.CoreTracer, so clients
decide about trace output by setting the core tracer (and its level) once.

Tests redirect traces into the testing log:

	func TestSomething(t *testing.T) {
	    teardown := tracing.SetTestingLog(t)
	    defer teardown()
	    …
	}

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package tracing

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// T returns the tracer all hangul packages trace to.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// P is a shortcut for T().P(key, value), i.e. a trace carrying a key/value pair.
func P(key string, value interface{}) tracing.Trace {
	return T().P(key, value)
}

// Debugf traces at level debug.
func Debugf(format string, args ...interface{}) {
	T().Debugf(format, args...)
}

// Infof traces at level info.
func Infof(format string, args ...interface{}) {
	T().Infof(format, args...)
}

// Errorf traces at level error.
func Errorf(format string, args ...interface{}) {
	T().Errorf(format, args...)
}

// SetTestingLog installs a tracer which writes to the log of t and sets the
// trace level to debug. Clients must call the returned teardown function at
// the end of the test.
func SetTestingLog(t *testing.T) func() {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	return teardown
}

// LevelFromString converts a level name ("error", "info", "debug") to a trace
// level. Unknown names yield tracing.LevelError.
func LevelFromString(name string) tracing.TraceLevel {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return tracing.LevelDebug
	case "info":
		return tracing.LevelInfo
	}
	return tracing.LevelError
}
