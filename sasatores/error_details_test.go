package sasatores_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sasatomo02/sasatoRes/sasatores"
	constant "github.com/sasatomo02/sasatoRes/sasatores/constants"
)

type gatewayTimeoutError struct {
	upstream string
}

func (e *gatewayTimeoutError) Error() string {
	return fmt.Sprintf("upstream %s timed out", e.upstream)
}

func TestErrorMasksDiagnosticsWhenDebugDisabled(t *testing.T) {
	sasatores.SetDebugMode(false)

	res := sasatores.Error[any]("ERR001", "Error occurred",
		errors.New("secret error"), "user_id=123, password=secret_pass")

	assert.Equal(t, sasatores.StatusError, res.StatusCode)
	require.NotNil(t, res.Error)

	assert.Equal(t, "ERR001", res.Error.Code())
	assert.Equal(t, "Error occurred", res.Error.Message())

	assert.Equal(t, constant.HiddenValue, res.Error.ExceptionType())
	assert.Equal(t, constant.HiddenValue, res.Error.RequestDetails())
	assert.Contains(t, res.Error.StackTrace(), "Access Denied")
	assert.NotContains(t, res.Error.StackTrace(), "error_details_test.go")
}

func TestErrorRevealsDiagnosticsWhenDebugEnabled(t *testing.T) {
	sasatores.SetDebugMode(true)
	t.Cleanup(func() { sasatores.SetDebugMode(false) })

	res := sasatores.Error[any]("ERR001", "Error occurred",
		errors.New("secret error"), "user_id=123")

	assert.Equal(t, "*errors.errorString", res.Error.ExceptionType())
	assert.Contains(t, res.Error.StackTrace(), "TestErrorRevealsDiagnosticsWhenDebugEnabled")
	assert.Equal(t, "user_id=123", res.Error.RequestDetails())
}

func TestExceptionTypeIsConcreteRuntimeType(t *testing.T) {
	sasatores.SetDebugMode(true)
	t.Cleanup(func() { sasatores.SetDebugMode(false) })

	res := sasatores.Error[any]("ERR502", "gateway failed",
		&gatewayTimeoutError{upstream: "billing"}, "")

	assert.Equal(t, "*sasatores_test.gatewayTimeoutError", res.Error.ExceptionType())
}

func TestStackTraceFrameFormat(t *testing.T) {
	sasatores.SetDebugMode(true)
	t.Cleanup(func() { sasatores.SetDebugMode(false) })

	res := sasatores.Error[any]("ERR", "msg", errors.New("boom"), "")

	trace := res.Error.StackTrace()
	require.NotEmpty(t, trace)

	// Every frame renders as pkg.Func(file.go:123), newline joined.
	for _, frame := range strings.Split(trace, "\n") {
		assert.Regexp(t, `^.+\(.+:\d+\)$`, frame)
	}

	assert.Contains(t, trace, "error_details_test.go")
}

func TestErrorWithoutCauseLeavesDiagnosticsAbsent(t *testing.T) {
	sasatores.SetDebugMode(true)
	t.Cleanup(func() { sasatores.SetDebugMode(false) })

	res := sasatores.Error[any]("ERR001", "no cause supplied", nil, "")

	assert.Empty(t, res.Error.ExceptionType())
	assert.Empty(t, res.Error.StackTrace())
	assert.Empty(t, res.Error.RequestDetails())
}

func TestFailureDiagnosticsAreAbsentButStillGated(t *testing.T) {
	sasatores.SetDebugMode(false)

	res := sasatores.Failure[any]("VAL001", "invalid input")

	assert.Equal(t, constant.HiddenValue, res.Error.ExceptionType())
	assert.Equal(t, constant.StackTraceAccessDenied, res.Error.StackTrace())
	assert.Equal(t, constant.HiddenValue, res.Error.RequestDetails())
}

func TestRequestDetailsSanitizedRegardlessOfDebugMode(t *testing.T) {
	sasatores.SetDebugMode(true)
	t.Cleanup(func() { sasatores.SetDebugMode(false) })

	res := sasatores.Error[any]("ERR", "Msg", errors.New("boom"),
		"token=abc-123, password=my_password, user=sasato")

	sanitized := res.Error.RequestDetails()

	assert.Contains(t, sanitized, "token=********")
	assert.Contains(t, sanitized, "password=********")
	assert.Contains(t, sanitized, "user=sasato")
	assert.NotContains(t, sanitized, "abc-123")
	assert.NotContains(t, sanitized, "my_password")
}

func TestTogglingDebugModeAffectsBuiltInstances(t *testing.T) {
	sasatores.SetDebugMode(false)
	t.Cleanup(func() { sasatores.SetDebugMode(false) })

	res := sasatores.Error[any]("ERR", "Msg", errors.New("boom"), "token=abc")

	assert.Equal(t, constant.HiddenValue, res.Error.ExceptionType())
	assert.Equal(t, constant.HiddenValue, res.Error.RequestDetails())

	sasatores.SetDebugMode(true)

	assert.Equal(t, "*errors.errorString", res.Error.ExceptionType())
	assert.Equal(t, "token=********", res.Error.RequestDetails())

	sasatores.SetDebugMode(false)

	assert.Equal(t, constant.HiddenValue, res.Error.ExceptionType())
}

func TestGatedAccessorsDoNotMutateState(t *testing.T) {
	sasatores.SetDebugMode(true)
	t.Cleanup(func() { sasatores.SetDebugMode(false) })

	res := sasatores.Error[any]("ERR", "Msg", errors.New("boom"), "token=abc")

	first := res.Error.RequestDetails()
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, res.Error.RequestDetails())
	}
}
