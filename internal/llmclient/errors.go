package llmclient

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a client failure for retry and HTTP-mapping decisions.
type ErrorKind string

const (
	KindConfiguration  ErrorKind = "configuration"
	KindValidation     ErrorKind = "validation"
	KindNetwork        ErrorKind = "network"
	KindTimeout        ErrorKind = "timeout"
	KindRateLimit      ErrorKind = "rate_limit"
	KindAuthentication ErrorKind = "authentication"
	KindServer         ErrorKind = "server"
	KindParse          ErrorKind = "parse"
	KindAborted        ErrorKind = "aborted"
	KindUnknown        ErrorKind = "unknown"
)

// Error carries the classification, retryability and a user-facing message
// distinct from the internal one.
type Error struct {
	Kind        ErrorKind
	Retryable   bool
	StatusCode  int
	Message     string
	UserMessage string
	Err         error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("llmclient: %s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("llmclient: %s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// AsError extracts a classified client error from an error chain.
func AsError(err error) (*Error, bool) {
	var cerr *Error
	if errors.As(err, &cerr) {
		return cerr, true
	}
	return nil, false
}

func newError(kind ErrorKind, retryable bool, status int, msg, userMsg string, cause error) *Error {
	return &Error{
		Kind:        kind,
		Retryable:   retryable,
		StatusCode:  status,
		Message:     msg,
		UserMessage: userMsg,
		Err:         cause,
	}
}

// classifyStatus maps a non-2xx HTTP status to a classified error.
func classifyStatus(status int, body string) *Error {
	msg := fmt.Sprintf("unexpected status %d: %s", status, body)
	switch {
	case status == 401 || status == 403:
		return newError(KindAuthentication, false, status, msg,
			"The AI provider rejected our credentials.", nil)
	case status == 408 || status == 504:
		return newError(KindTimeout, true, status, msg,
			"The AI provider took too long to respond.", nil)
	case status == 429:
		return newError(KindRateLimit, true, status, msg,
			"The AI provider is rate limiting requests. Please try again shortly.", nil)
	case status >= 500:
		return newError(KindServer, true, status, msg,
			"The AI provider is currently unavailable.", nil)
	case status >= 400:
		return newError(KindValidation, false, status, msg,
			"The AI request was rejected as invalid.", nil)
	default:
		return newError(KindUnknown, false, status, msg,
			"An unexpected error occurred while contacting the AI provider.", nil)
	}
}
