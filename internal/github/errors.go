package github

import "fmt"

// ConfigError reports a client that could not be constructed, e.g. a token
// that is not a valid header value.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid client configuration: %v", e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// RateLimitError is returned when GitHub answers 403. Remaining holds the
// x-ratelimit-remaining header, or "unknown" if it was missing.
type RateLimitError struct {
	Remaining string
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limit exceeded, remaining requests: %s", e.Remaining)
}

// HTTPError is any other non-2xx response.
type HTTPError struct {
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("unexpected status %d %s", e.StatusCode, httpStatusText(e.StatusCode))
}

// DecodeError wraps a response body that did not have the expected shape.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IOError wraps a failure writing an output file.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
