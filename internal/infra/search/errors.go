package search

import (
	"errors"
	"fmt"
)

// Caller-facing error vocabulary. Every error returned by the Gateway matches
// exactly one of these with errors.Is.
var (
	// ErrBadRequest indicates the caller supplied an unusable argument
	// (blank keyword, blank id). No engine call was made.
	ErrBadRequest = errors.New("search: bad request")

	// ErrNotFound indicates the requested document does not exist.
	ErrNotFound = errors.New("search: not found")

	// ErrEngineUnavailable covers transport failures and non-2xx responses.
	ErrEngineUnavailable = errors.New("search: engine unavailable")

	// ErrDecodeFailed indicates a 2xx response whose envelope could not be decoded.
	ErrDecodeFailed = errors.New("search: decode failed")
)

// Kind classifies a gateway failure.
type Kind int

const (
	// KindTransport is a network, DNS, cancellation or deadline failure.
	KindTransport Kind = iota + 1
	// KindStatus is a non-2xx engine response.
	KindStatus
	// KindParse is an undecodable 2xx body.
	KindParse
	// KindNotFound is a missing document.
	KindNotFound
	// KindBadRequest is a rejected argument.
	KindBadRequest
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindStatus:
		return "status"
	case KindParse:
		return "parse"
	case KindNotFound:
		return "not_found"
	case KindBadRequest:
		return "bad_request"
	default:
		return "unknown"
	}
}

// maxErrorBody bounds the engine body kept on an Error.
const maxErrorBody = 512

// Error is a classified gateway failure. Body holds the (truncated) engine
// response for logging and must not be returned to untrusted callers.
type Error struct {
	Kind       Kind
	Op         string
	StatusCode int
	Body       string
	Err        error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindStatus:
		return fmt.Sprintf("search %s: engine returned status %d", e.Op, e.StatusCode)
	case KindNotFound:
		return fmt.Sprintf("search %s: document not found", e.Op)
	default:
		if e.Err != nil {
			return fmt.Sprintf("search %s: %s: %v", e.Op, e.Kind, e.Err)
		}
		return fmt.Sprintf("search %s: %s", e.Op, e.Kind)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Is maps the error onto the caller vocabulary.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrEngineUnavailable:
		return e.Kind == KindTransport || e.Kind == KindStatus
	case ErrDecodeFailed:
		return e.Kind == KindParse
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrBadRequest:
		return e.Kind == KindBadRequest
	}
	return false
}

func transportError(op string, err error) *Error {
	return &Error{Kind: KindTransport, Op: op, Err: err}
}

func statusError(op string, code int, body []byte) *Error {
	return &Error{Kind: KindStatus, Op: op, StatusCode: code, Body: truncate(body)}
}

func parseError(op string, format string, args ...any) *Error {
	return &Error{Kind: KindParse, Op: op, Err: fmt.Errorf(format, args...)}
}

func notFoundError(op string) *Error {
	return &Error{Kind: KindNotFound, Op: op, StatusCode: 404}
}

func badRequestError(op string, msg string) *Error {
	return &Error{Kind: KindBadRequest, Op: op, Err: errors.New(msg)}
}

func truncate(body []byte) string {
	if len(body) <= maxErrorBody {
		return string(body)
	}
	return string(body[:maxErrorBody]) + "...(truncated)"
}

// outcome returns the metrics label for err.
func outcome(err error) string {
	var se *Error
	if err == nil {
		return "success"
	}
	if !errors.As(err, &se) {
		return "unavailable"
	}
	switch se.Kind {
	case KindNotFound:
		return "not_found"
	case KindBadRequest:
		return "bad_request"
	case KindParse:
		return "decode_failed"
	default:
		return "unavailable"
	}
}
