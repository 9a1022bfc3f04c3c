package sasatores

import (
	"time"

	"github.com/google/uuid"

	constant "github.com/sasatomo02/sasatoRes/sasatores/constants"
)

// Metadata describes a single built envelope. It is always present.
type Metadata struct {
	// RequestID is a fresh UUID generated per envelope.
	RequestID string `json:"requestId"`
	// APIVersion is the library version constant.
	APIVersion string `json:"apiVersion"`
	// Timestamp is the envelope creation time, ISO-8601 with offset.
	Timestamp string `json:"timestamp"`
	// ProcessingTimeMs is the wall-clock cost of building the envelope
	// itself, measured on the monotonic clock. Always >= 0.
	ProcessingTimeMs int64 `json:"processingTimeMs"`
	// Pagination is set only by SuccessWithPagination.
	Pagination *PaginationInfo `json:"pagination,omitempty"`
}

// PaginationInfo echoes the caller-supplied pagination values. The library
// does not validate them; negative or inconsistent values pass through.
type PaginationInfo struct {
	TotalCount int64 `json:"totalCount"`
	Limit      int   `json:"limit"`
	Offset     int   `json:"offset"`
}

func newMetadata() *Metadata {
	return &Metadata{
		RequestID:  uuid.NewString(),
		APIVersion: constant.APIVersion,
		Timestamp:  time.Now().Format(time.RFC3339Nano),
	}
}
