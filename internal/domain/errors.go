package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingFields is returned when a required form field is empty.
	ErrMissingFields = errors.New("missing required fields")

	// ErrInvalidEmail is returned when the submitter email is not email-shaped.
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrInvalidName is returned when the submitter name contains characters
	// outside the accepted name alphabet.
	ErrInvalidName = errors.New("invalid name")

	// ErrCaptchaUnavailable means the verification service could not be
	// reached. This is an infrastructure failure, not a rejected token.
	ErrCaptchaUnavailable = errors.New("captcha verification service unavailable")

	// ErrEmailDelivery means the mail transport reported a failure.
	ErrEmailDelivery = errors.New("email delivery failed")
)

// CaptchaFailedError reports a rejected verification. Score is nil when the
// service did not score the token (invalid or malformed token).
type CaptchaFailedError struct {
	Score *float64
}

func (e *CaptchaFailedError) Error() string {
	if e.Score == nil {
		return "captcha verification failed: token rejected"
	}
	return fmt.Sprintf("captcha verification failed: score %.2f below threshold", *e.Score)
}
