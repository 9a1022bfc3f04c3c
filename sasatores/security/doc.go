// Package security provides credential redaction for free-form request
// detail strings.
//
// The envelope's error details run every request-detail string through
// Sanitize before retaining it, so credential-like key=value pairs are
// blacked out in memory no matter what debug mode later reveals. The
// default sensitive key set is fixed; callers with additional secrets can
// build their own Sanitizer.
package security
