package utils

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEmailEnv(t *testing.T, apiURL string) {
	t.Helper()
	t.Setenv("ZEPTO_API_URL", apiURL)
	t.Setenv("ZEPTO_API_KEY", "Zoho-enczapikey test")
	t.Setenv("EMAIL_FROM", "noreply@healthhub.example")
}

func TestSendEmail(t *testing.T) {
	var got emailRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &got))
		assert.Equal(t, "Zoho-enczapikey test", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()
	setEmailEnv(t, srv.URL)

	err := SendEmail("a@x.com", "Welcome", "<p>hi</p>")
	require.NoError(t, err)

	assert.Equal(t, "noreply@healthhub.example", got.From.Address)
	require.Len(t, got.To, 1)
	assert.Equal(t, "a@x.com", got.To[0].Email.Address)
	assert.Equal(t, "Welcome", got.Subject)
	assert.Equal(t, "<p>hi</p>", got.HtmlBody)
}

func TestSendEmailUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()
	setEmailEnv(t, srv.URL)

	err := SendEmail("a@x.com", "Welcome", "<p>hi</p>")
	assert.Error(t, err)
}

func TestSendEmailMissingConfig(t *testing.T) {
	t.Setenv("ZEPTO_API_URL", "")
	t.Setenv("ZEPTO_API_KEY", "")
	t.Setenv("EMAIL_FROM", "")

	err := SendEmail("a@x.com", "Welcome", "<p>hi</p>")
	assert.Error(t, err)
}

func TestEmailClientHasTimeout(t *testing.T) {
	assert.Positive(t, emailClient.Timeout, "a stalled upstream must not pin the sender")
}
