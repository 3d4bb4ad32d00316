package orders

import (
	"errors"
	"fmt"
	"net/http"

	"fluentedge/internal/metrics"
)

// Each sentinel's text is the message shown to the caller.
var (
	ErrInvalidAmount   = errors.New("Invalid amount. Minimum is 100 paise (₹1)")
	ErrNotConfigured   = errors.New("Payment system not configured")
	ErrUpstreamFailure = errors.New("Failed to create order")
	ErrUnexpected      = errors.New("Internal server error")
)

var errorMap = map[error]int{
	ErrInvalidAmount:   http.StatusBadRequest,
	ErrNotConfigured:   http.StatusInternalServerError,
	ErrUpstreamFailure: http.StatusInternalServerError,
	ErrUnexpected:      http.StatusInternalServerError,
}

var outcomeMap = map[error]string{
	ErrInvalidAmount:   metrics.OutcomeInvalidAmount,
	ErrNotConfigured:   metrics.OutcomeNotConfigured,
	ErrUpstreamFailure: metrics.OutcomeUpstreamFailure,
	ErrUnexpected:      metrics.OutcomeUnexpected,
}

// UpstreamError is a non-2xx reply from Razorpay. Body is for server logs only.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("razorpay returned %d: %s", e.StatusCode, e.Body)
}

func (e *UpstreamError) Is(target error) bool {
	return target == ErrUpstreamFailure
}

// kind returns the sentinel err belongs to, ErrUnexpected when none.
func kind(err error) error {
	for sentinel := range errorMap {
		if errors.Is(err, sentinel) {
			return sentinel
		}
	}
	return ErrUnexpected
}

// GetErrorStatusCode maps an error from this package to an HTTP status.
func GetErrorStatusCode(err error) int {
	return errorMap[kind(err)]
}

// PublicMessage is the only text about err that may be shown to a caller.
func PublicMessage(err error) string {
	return kind(err).Error()
}

func outcome(err error) string {
	if err == nil {
		return metrics.OutcomeCreated
	}
	return outcomeMap[kind(err)]
}
