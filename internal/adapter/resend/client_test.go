package resend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/givewell/donation-service/internal/config/configs"
	"github.com/givewell/donation-service/internal/core/port"
)

func TestSend(t *testing.T) {
	var got sendRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer key-123", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := New(configs.Email{APIKey: "key-123", APIURL: srv.URL, From: "news@example.org"})
	err := c.Send(context.Background(), port.Message{
		To:      "sub@example.com",
		Subject: "Hello",
		HTML:    "<p>hi</p>",
	})
	require.NoError(t, err)

	assert.Equal(t, "news@example.org", got.From)
	assert.Equal(t, []string{"sub@example.com"}, got.To)
	assert.Equal(t, "Hello", got.Subject)
	assert.Equal(t, "<p>hi</p>", got.HTML)
}

func TestSendProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"rate limited"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := New(configs.Email{APIKey: "k", APIURL: srv.URL, From: "news@example.org"})
	err := c.Send(context.Background(), port.Message{To: "sub@example.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
	assert.Contains(t, err.Error(), "rate limited")
}
