package sasatores

import (
	"time"
)

// Status discriminates the three envelope outcomes.
type Status string

const (
	// StatusSuccess marks an envelope carrying a payload.
	StatusSuccess Status = "SUCCESS"
	// StatusFailure marks a business or validation failure with no underlying error.
	StatusFailure Status = "FAILURE"
	// StatusError marks a failure wrapping a captured error.
	StatusError Status = "ERROR"
)

// Response is the envelope returned to callers for every endpoint outcome.
//
// Exactly one of Data and Error is meaningful, aligned with StatusCode.
// Instances are built by the package factories and must be treated as
// read-only afterwards. The gated diagnostic fields live behind the
// ErrorDetails accessor methods, not exported fields.
type Response[T any] struct {
	StatusCode Status        `json:"statusCode"`
	Data       T             `json:"data,omitempty"`
	Error      *ErrorDetails `json:"error,omitempty"`
	Metadata   *Metadata     `json:"metadata"`
}

// Success builds a SUCCESS envelope carrying data.
// A zero-value payload is legal and passes through unchanged.
func Success[T any](data T) *Response[T] {
	start := time.Now()

	res := &Response[T]{
		StatusCode: StatusSuccess,
		Data:       data,
		Metadata:   newMetadata(),
	}

	return res.build(start)
}

// SuccessWithPagination builds a SUCCESS envelope carrying data plus
// pagination metadata. The three pagination values pass through verbatim;
// range validation is the caller's responsibility.
func SuccessWithPagination[T any](data T, totalCount int64, limit, offset int) *Response[T] {
	start := time.Now()

	res := &Response[T]{
		StatusCode: StatusSuccess,
		Data:       data,
		Metadata:   newMetadata(),
	}
	res.Metadata.Pagination = &PaginationInfo{
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}

	return res.build(start)
}

// Failure builds a FAILURE envelope for a caller-declared business failure.
// No error is captured and no request details are recorded.
func Failure[T any](code, message string) *Response[T] {
	start := time.Now()

	res := &Response[T]{
		StatusCode: StatusFailure,
		Error:      newErrorDetails(code, message, nil, ""),
		Metadata:   newMetadata(),
	}

	return res.build(start)
}

// Error builds an ERROR envelope wrapping a captured error.
//
// Both err and requestDetails are optional: a nil err captures no type or
// stack trace, and an empty requestDetails leaves the field absent. A
// non-empty requestDetails is sanitized immediately and the raw string is
// never retained. Whether the captured diagnostics are revealed is decided
// at access time by debug mode; see ErrorDetails.
func Error[T any](code, message string, err error, requestDetails string) *Response[T] {
	start := time.Now()

	res := &Response[T]{
		StatusCode: StatusError,
		Error:      newErrorDetails(code, message, err, requestDetails),
		Metadata:   newMetadata(),
	}

	return res.build(start)
}

// build finalizes ProcessingTimeMs. The metric covers building the envelope
// itself (library-internal construction cost), not end-to-end request
// latency.
func (r *Response[T]) build(start time.Time) *Response[T] {
	r.Metadata.ProcessingTimeMs = time.Since(start).Milliseconds()

	return r
}
