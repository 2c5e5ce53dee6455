package functional_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/rs/zerolog"

	"github.com/rogpeppe/sfn/functional"
)

// captureLog directs the package log to a buffer for the
// duration of the test and returns a function that decodes
// the entries logged so far.
func captureLog(t *testing.T) func() []map[string]any {
	var buf bytes.Buffer
	functional.SetLogger(zerolog.New(&buf).Level(zerolog.DebugLevel))
	t.Cleanup(func() {
		functional.SetLogger(zerolog.Nop())
	})
	return func() []map[string]any {
		var entries []map[string]any
		dec := json.NewDecoder(bytes.NewReader(buf.Bytes()))
		for dec.More() {
			var e map[string]any
			qt.Assert(t, qt.IsNil(dec.Decode(&e)))
			entries = append(entries, e)
		}
		return entries
	}
}

func TestLogSynthesized(t *testing.T) {
	entries := captureLog(t)
	functional.Must(functional.BindFront(minus, 1))
	functional.Must(functional.BindFront(minus))

	qt.Assert(t, qt.DeepEquals(entries(), []map[string]any{{
		"level":     "debug",
		"op":        "bind front",
		"signature": "func(int) int",
		"message":   "synthesized callable",
	}}))
}

func TestLogRejected(t *testing.T) {
	entries := captureLog(t)
	_, err := functional.Compose(f, g)
	qt.Assert(t, qt.IsNotNil(err))

	got := entries()
	qt.Assert(t, qt.HasLen(got, 1))
	qt.Assert(t, qt.Equals(got[0]["op"], any("compose")))
	qt.Assert(t, qt.Equals(got[0]["error"], any(err.Error())))
	qt.Assert(t, qt.Equals(got[0]["message"], any("transformation rejected")))
}

func TestLogNoExceptViolation(t *testing.T) {
	entries := captureLog(t)
	fn := functional.Must(functional.Sequence(functional.Nothrow{F: g}, func(int) { panic("oops") }))
	fn = functional.Must(functional.Cast(functional.Nothrow{F: sig[func(int)]()}, fn))

	qt.Assert(t, qt.PanicMatches(func() {
		functional.As[func(int)](fn)(1)
	}, `functional: panic in noexcept cast func\(int\) noexcept: oops`))

	got := entries()
	last := got[len(got)-1]
	qt.Assert(t, qt.Equals(last["level"], any("error")))
	qt.Assert(t, qt.Equals(last["message"], any("panic escaped noexcept callable")))
}

func TestLogDisabled(t *testing.T) {
	var buf bytes.Buffer
	functional.SetLogger(zerolog.New(&buf).Level(zerolog.InfoLevel))
	t.Cleanup(func() {
		functional.SetLogger(zerolog.Nop())
	})
	functional.Must(functional.BindBack(minus, 1))
	qt.Assert(t, qt.Equals(buf.Len(), 0))
}
