package functional

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

var logger atomic.Pointer[zerolog.Logger]

var nopLogger = zerolog.Nop()

// SetLogger sets the logger used to report synthesized callables
// (at debug level), rejected transformations (debug) and panics
// escaping noexcept callables (error). By default nothing is logged.
//
// It is safe to call SetLogger concurrently with other functions
// in this package.
func SetLogger(l zerolog.Logger) {
	logger.Store(&l)
}

func currentLogger() *zerolog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return &nopLogger
}

func logSynthesized(op string, sig Signature) {
	currentLogger().Debug().
		Str("op", op).
		Stringer("signature", sig).
		Msg("synthesized callable")
}

func logRejected(op string, err error) {
	currentLogger().Debug().
		Str("op", op).
		Err(err).
		Msg("transformation rejected")
}
