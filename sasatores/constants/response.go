package constant

// APIVersion is the library version stamped into every envelope's metadata.
const APIVersion = "1.0.0"

// Literals returned by the gated ErrorDetails accessors while debug mode
// is disabled.
const (
	// HiddenValue replaces the exception type and request details.
	HiddenValue = "Hidden"
	// StackTraceAccessDenied replaces the stack trace.
	StackTraceAccessDenied = "Access Denied: Set debug mode to true to see details."
)

// EnvDebugMode is the environment variable read by SetDebugModeFromEnv.
const EnvDebugMode = "SASATORES_DEBUG_MODE"
