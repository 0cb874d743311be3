package services

import (
	"errors"
	"fmt"
)

// Gate failures, mapped to response codes by the handlers
var (
	ErrQuotaCheckFailed = errors.New("rate limit check failed")
	ErrQuotaExhausted   = errors.New("rate limit exceeded")
	ErrNotStarred       = errors.New("star precondition not met")
)

// StatusError carries an upstream HTTP status so handlers can forward it
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}
