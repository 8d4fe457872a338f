package captcha

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go-contact-backend/config"
	"go-contact-backend/internal/domain"
)

// siteverifyResponse mirrors Google's reCAPTCHA v3 siteverify payload
type siteverifyResponse struct {
	Success     bool     `json:"success"`
	Score       float64  `json:"score"`
	Action      string   `json:"action"`
	ChallengeTS string   `json:"challenge_ts"`
	Hostname    string   `json:"hostname"`
	ErrorCodes  []string `json:"error-codes"`
}

// Verifier checks interaction tokens against the reCAPTCHA siteverify API.
// A single Verifier is shared by all in-flight requests.
type Verifier struct {
	secret    string
	verifyURL string
	client    *http.Client
}

func NewVerifier(cfg *config.Config) *Verifier {
	return &Verifier{
		secret:    cfg.RecaptchaSecret,
		verifyURL: cfg.RecaptchaVerifyURL,
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Verify sends the token to the siteverify endpoint and returns the verdict.
// A non-nil error means the service itself was unreachable or answered
// outside its contract; a rejected token is reported via the result instead.
func (v *Verifier) Verify(ctx context.Context, token string) (*domain.CaptchaResult, error) {
	form := url.Values{}
	form.Set("secret", v.secret)
	form.Set("response", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create siteverify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("siteverify request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("siteverify returned status %d: %s", resp.StatusCode, string(body))
	}

	var payload siteverifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode siteverify response: %w", err)
	}

	return &domain.CaptchaResult{
		Valid:      payload.Success,
		Action:     payload.Action,
		Score:      payload.Score,
		ErrorCodes: payload.ErrorCodes,
	}, nil
}
