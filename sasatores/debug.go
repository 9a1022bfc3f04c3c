package sasatores

import (
	"os"
	"strconv"
	"sync/atomic"

	constant "github.com/sasatomo02/sasatoRes/sasatores/constants"
)

// debugMode gates exposure of diagnostic error fields. Default false keeps
// exception types, stack traces, and request details masked. Atomic so the
// latest write is visible immediately to every reader; the value is never
// cached inside an envelope or ErrorDetails instance.
var debugMode atomic.Bool

// SetDebugMode enables or disables exposure of diagnostic error fields.
// The change applies immediately, including to already-built envelopes.
func SetDebugMode(enabled bool) {
	debugMode.Store(enabled)
}

// DebugMode reports whether diagnostic error fields are currently exposed.
func DebugMode() bool {
	return debugMode.Load()
}

// SetDebugModeFromEnv sets debug mode from the SASATORES_DEBUG_MODE
// environment variable, accepting the strconv.ParseBool forms. Unset or
// unparsable values leave the flag untouched. Intended to be called once
// at process startup.
func SetDebugModeFromEnv() {
	raw, ok := os.LookupEnv(constant.EnvDebugMode)
	if !ok {
		return
	}

	enabled, err := strconv.ParseBool(raw)
	if err != nil {
		return
	}

	debugMode.Store(enabled)
}
