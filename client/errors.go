package client

import (
	"errors"
	"fmt"
	"net"
	"net/url"
)

// FailureKind classifies what went wrong with an assistant request. The
// UI renders all kinds identically; the taxonomy exists so messages are
// chosen correctly and so a future retry policy can single out timeouts.
type FailureKind int

const (
	// Timeout: no reply arrived within the request bound.
	Timeout FailureKind = iota
	// Unreachable: DNS or connection level fault.
	Unreachable
	// RemoteRejected: non-2xx status with a best-available message.
	RemoteRejected
	// RemoteError: 2xx envelope carrying status "error".
	RemoteError
	// MapperFault: malformed success envelope. Should not occur while
	// the mapper stays total, but degrades like RemoteError if it does.
	MapperFault
)

// Fixed user-safe messages. Raw transport error text never reaches the
// caller.
const (
	timeoutMessage     = "Request timed out. Please try again."
	unreachableMessage = "Unable to connect to backend. Please check if the backend is running and reachable."
	genericMessage     = "Something went wrong. Please try again."
)

// Failure is a typed assistant-request error.
type Failure struct {
	Kind    FailureKind
	Message string
}

func (f *Failure) Error() string { return f.Message }

func (k FailureKind) String() string {
	switch k {
	case Timeout:
		return "timeout"
	case Unreachable:
		return "unreachable"
	case RemoteRejected:
		return "remote_rejected"
	case RemoteError:
		return "remote_error"
	case MapperFault:
		return "mapper_fault"
	default:
		return "unknown"
	}
}

// classifyTransport turns an http.Client error into a Timeout or
// Unreachable failure with its fixed message.
func classifyTransport(err error) *Failure {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return &Failure{Kind: Timeout, Message: timeoutMessage}
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &Failure{Kind: Timeout, Message: timeoutMessage}
	}
	return &Failure{Kind: Unreachable, Message: unreachableMessage}
}

// rejectionMessage picks the best available message for a non-2xx
// response: error.message, then detail, then a synthesized fallback.
func rejectionMessage(body errorBody, statusCode int) string {
	if body.Error != nil && body.Error.Message != "" {
		return body.Error.Message
	}
	if body.Detail != "" {
		return body.Detail
	}
	return fmt.Sprintf("API request failed (%d)", statusCode)
}
