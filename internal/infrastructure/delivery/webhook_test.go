package delivery

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	orderapp "github.com/osworks/backend/internal/application/order"
	"github.com/osworks/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestSender(url string) *WebhookSender {
	return NewWebhookSender(config.DeliveryConfig{
		WebhookURL: url,
		Timeout:    time.Second,
	}, zap.NewNop())
}

func TestWebhookSender_SendQuote(t *testing.T) {
	t.Run("posts the quote payload", func(t *testing.T) {
		var got quotePayload
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			require.NoError(t, json.Unmarshal(body, &got))
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		quote := orderapp.OrderResponse{ID: uuid.New(), ClientName: "Maria Silva"}
		err := newTestSender(srv.URL).SendQuote(context.Background(), quote)
		require.NoError(t, err)

		assert.Equal(t, "quote.ready", got.Event)
		assert.Equal(t, quote.ID, got.Quote.ID)
		assert.Equal(t, "Maria Silva", got.Quote.ClientName)
	})

	t.Run("non-2xx status is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		err := newTestSender(srv.URL).SendQuote(context.Background(), orderapp.OrderResponse{ID: uuid.New()})
		assert.ErrorContains(t, err, "status 502")
	})

	t.Run("unreachable endpoint is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		err := newTestSender(srv.URL).SendQuote(context.Background(), orderapp.OrderResponse{ID: uuid.New()})
		assert.Error(t, err)
	})
}
