package domain

import "context"

// CaptchaResult is the verdict returned by the verification service for one
// interaction token.
type CaptchaResult struct {
	Valid      bool
	Action     string
	Score      float64
	ErrorCodes []string
}

// CaptchaVerifier checks an interaction token with the anti-abuse service.
// A returned error means the service could not be reached, not that the
// token was rejected.
type CaptchaVerifier interface {
	Verify(ctx context.Context, token string) (*CaptchaResult, error)
}
