//go:build unit

package gateway

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"stayhub/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) *RazorpayClient {
	return NewRazorpayClient(config.GatewayConfig{
		KeyID:     "rzp_test_key",
		KeySecret: "rzp_test_secret",
		BaseURL:   baseURL,
		Timeout:   2 * time.Second,
	})
}

func TestCreateOrder(t *testing.T) {
	t.Run("sends amount in paise with basic auth", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/orders", r.URL.Path)

			user, pass, ok := r.BasicAuth()
			require.True(t, ok)
			assert.Equal(t, "rzp_test_key", user)
			assert.Equal(t, "rzp_test_secret", pass)

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, float64(440000), body["amount"])
			assert.Equal(t, "INR", body["currency"])

			_ = json.NewEncoder(w).Encode(map[string]any{
				"id":       "order_test123",
				"amount":   440000,
				"currency": "INR",
				"receipt":  body["receipt"],
				"status":   "created",
			})
		}))
		defer srv.Close()

		order, err := newTestClient(srv.URL).CreateOrder(context.Background(), 440000, "INR", "rcpt_abc")
		require.NoError(t, err)
		assert.Equal(t, "order_test123", order.ID)
		assert.Equal(t, int64(440000), order.Amount)
		assert.Equal(t, "rcpt_abc", order.Receipt)
	})

	t.Run("surfaces gateway error description", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":{"code":"BAD_REQUEST_ERROR","description":"amount exceeds maximum"}}`))
		}))
		defer srv.Close()

		_, err := newTestClient(srv.URL).CreateOrder(context.Background(), 1, "INR", "rcpt_abc")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "amount exceeds maximum")
	})

	t.Run("times out instead of waiting on slow gateway", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			time.Sleep(200 * time.Millisecond)
			_, _ = w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		client := NewRazorpayClient(config.GatewayConfig{
			KeyID:     "k",
			KeySecret: "s",
			BaseURL:   srv.URL,
			Timeout:   50 * time.Millisecond,
		})

		_, err := client.CreateOrder(context.Background(), 100, "INR", "rcpt")
		require.Error(t, err)
	})
}

func TestRefund(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/payments/pay_123/refund", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(220000), body["amount"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":     "rfnd_456",
			"amount": 220000,
			"status": "processed",
		})
	}))
	defer srv.Close()

	refund, err := newTestClient(srv.URL).Refund(context.Background(), "pay_123", 220000)
	require.NoError(t, err)
	assert.Equal(t, "rfnd_456", refund.ID)
	assert.Equal(t, "processed", refund.Status)
}

func TestVerifySignature(t *testing.T) {
	client := newTestClient("http://unused")

	sign := func(payload string) string {
		mac := hmac.New(sha256.New, []byte("rzp_test_secret"))
		mac.Write([]byte(payload))
		return hex.EncodeToString(mac.Sum(nil))
	}

	t.Run("accepts valid signature", func(t *testing.T) {
		sig := sign("order_abc|pay_xyz")
		assert.True(t, client.VerifySignature("order_abc", "pay_xyz", sig))
	})

	t.Run("rejects signature for different order", func(t *testing.T) {
		sig := sign("order_other|pay_xyz")
		assert.False(t, client.VerifySignature("order_abc", "pay_xyz", sig))
	})

	t.Run("rejects tampered signature", func(t *testing.T) {
		sig := sign("order_abc|pay_xyz")
		tampered := sig[:len(sig)-1] + "0"
		if tampered == sig {
			tampered = sig[:len(sig)-1] + "1"
		}
		assert.False(t, client.VerifySignature("order_abc", "pay_xyz", tampered))
	})

	t.Run("rejects empty signature", func(t *testing.T) {
		assert.False(t, client.VerifySignature("order_abc", "pay_xyz", ""))
	})
}
