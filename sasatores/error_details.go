package sasatores

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	constant "github.com/sasatomo02/sasatoRes/sasatores/constants"
	"github.com/sasatomo02/sasatoRes/sasatores/security"
)

// maxStackDepth bounds the number of frames captured per error.
const maxStackDepth = 64

// ErrorDetails carries the error surface of a FAILURE or ERROR envelope.
//
// Code and Message are always visible. The three diagnostic fields
// (exception type, stack trace, request details) are captured unmasked at
// construction and gated at access time: every accessor call reads the
// current process-wide debug flag, so toggling debug mode immediately
// changes what already-built instances reveal. Request details are
// sanitized once, at capture; debug mode only decides whether the
// sanitized text is revealed, never whether it is sanitized.
type ErrorDetails struct {
	code           string
	message        string
	exceptionType  string
	stackTrace     string
	requestDetails string
}

func newErrorDetails(code, message string, err error, requestDetails string) *ErrorDetails {
	details := &ErrorDetails{
		code:    code,
		message: message,
	}

	if err != nil {
		details.exceptionType = fmt.Sprintf("%T", err)
		details.stackTrace = renderStack(3)
	}

	if requestDetails != "" {
		details.requestDetails = security.Sanitize(requestDetails)
	}

	return details
}

// renderStack formats the current call stack one frame per line as
// pkg.Func(file.go:123). skip frames are dropped so the trace starts at
// the public factory that captured it and includes its caller. Go errors
// carry no stack of their own, so the capture site stands in for the
// original failure site.
func renderStack(skip int) string {
	pcs := make([]uintptr, maxStackDepth)

	n := runtime.Callers(skip, pcs)
	if n == 0 {
		return ""
	}

	frames := runtime.CallersFrames(pcs[:n])

	var b strings.Builder

	for {
		frame, more := frames.Next()
		if frame.Function != "" {
			if b.Len() > 0 {
				b.WriteByte('\n')
			}

			fmt.Fprintf(&b, "%s(%s:%d)", frame.Function, filepath.Base(frame.File), frame.Line)
		}

		if !more {
			break
		}
	}

	return b.String()
}

// Code returns the error code. Never masked.
func (e *ErrorDetails) Code() string {
	return e.code
}

// Message returns the user-facing message. Never masked.
func (e *ErrorDetails) Message() string {
	return e.message
}

// ExceptionType returns the concrete runtime type of the wrapped error
// when debug mode is enabled, or "Hidden" otherwise. It returns the empty
// string only when debug mode is enabled and no error was captured.
func (e *ErrorDetails) ExceptionType() string {
	if !DebugMode() {
		return constant.HiddenValue
	}

	return e.exceptionType
}

// StackTrace returns the captured stack trace when debug mode is enabled,
// or a fixed denial message otherwise.
func (e *ErrorDetails) StackTrace() string {
	if !DebugMode() {
		return constant.StackTraceAccessDenied
	}

	return e.stackTrace
}

// RequestDetails returns the sanitized request description when debug mode
// is enabled, or "Hidden" otherwise. Sensitive key=value pairs were already
// redacted at capture time regardless of the flag.
func (e *ErrorDetails) RequestDetails() string {
	if !DebugMode() {
		return constant.HiddenValue
	}

	return e.requestDetails
}
