// Package sasatores builds the standardized API response envelope used by
// Sasato backend services.
//
// Every endpoint outcome is wrapped in the same shape: a status code, an
// optional payload, optional error details, and per-response metadata
// (request ID, API version, timestamp, construction cost, optional
// pagination). Envelopes are built through the package factories:
//
//	res := sasatores.Success(users)
//	res := sasatores.SuccessWithPagination(users, total, limit, offset)
//	res := sasatores.Failure[[]User]("VAL001", "name is required")
//	res := sasatores.Error[[]User]("SYS001", "lookup failed", err, details)
//
// Error envelopes capture diagnostics (the wrapped error's concrete type,
// a stack trace, a request-detail string) that stay masked unless the
// process-wide debug mode is enabled. Request details are additionally
// sanitized at capture time by the security subpackage, so credential-like
// key=value pairs never survive in memory regardless of debug mode.
//
// The package performs no I/O and defines no wire format; serializing the
// envelope's visible fields is the caller's responsibility.
package sasatores
