package captcha_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-contact-backend/config"
	"go-contact-backend/pkg/captcha"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVerifier(verifyURL string) *captcha.Verifier {
	return captcha.NewVerifier(&config.Config{
		RecaptchaSecret:    "test-secret",
		RecaptchaVerifyURL: verifyURL,
	})
}

func TestVerifyAcceptedToken(t *testing.T) {
	var gotSecret, gotResponse string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotSecret = r.PostFormValue("secret")
		gotResponse = r.PostFormValue("response")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"score":0.9,"action":"contact_form","hostname":"example.com"}`))
	}))
	defer srv.Close()

	result, err := newVerifier(srv.URL).Verify(context.Background(), "the-token")
	require.NoError(t, err)

	assert.Equal(t, "test-secret", gotSecret)
	assert.Equal(t, "the-token", gotResponse)
	assert.True(t, result.Valid)
	assert.Equal(t, "contact_form", result.Action)
	assert.InDelta(t, 0.9, result.Score, 0.0001)
}

func TestVerifyRejectedToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":false,"error-codes":["invalid-input-response"]}`))
	}))
	defer srv.Close()

	result, err := newVerifier(srv.URL).Verify(context.Background(), "bad-token")
	require.NoError(t, err)

	// A rejected token is a verdict, not a transport error
	assert.False(t, result.Valid)
	assert.Equal(t, []string{"invalid-input-response"}, result.ErrorCodes)
}

func TestVerifyServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	result, err := newVerifier(srv.URL).Verify(context.Background(), "the-token")
	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestVerifyServiceUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	result, err := newVerifier(srv.URL).Verify(context.Background(), "the-token")
	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestVerifyMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	result, err := newVerifier(srv.URL).Verify(context.Background(), "the-token")
	assert.Error(t, err)
	assert.Nil(t, result)
}
