// Package delivery notifies an external channel when a quote is ready to be
// sent to the client. The only implementation posts a JSON payload to a
// configured webhook.
package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	orderapp "github.com/osworks/backend/internal/application/order"
	"github.com/osworks/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// Sender delivers a quote notification to an external channel.
type Sender interface {
	SendQuote(ctx context.Context, quote orderapp.OrderResponse) error
}

// WebhookSender posts quote notifications to a fixed URL.
type WebhookSender struct {
	url    string
	client *http.Client
	logger *zap.Logger
}

// NewWebhookSender builds a sender from the delivery settings.
func NewWebhookSender(cfg config.DeliveryConfig, log *zap.Logger) *WebhookSender {
	return &WebhookSender{
		url: cfg.WebhookURL,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: log.Named("delivery"),
	}
}

// quotePayload is the webhook body. It carries the quote read model plus an
// event tag so a single endpoint can receive several event kinds.
type quotePayload struct {
	Event  string                 `json:"event"`
	SentAt time.Time              `json:"sent_at"`
	Quote  orderapp.OrderResponse `json:"quote"`
}

// SendQuote posts the quote to the webhook. A non-2xx response is an error.
func (s *WebhookSender) SendQuote(ctx context.Context, quote orderapp.OrderResponse) error {
	body, err := json.Marshal(quotePayload{
		Event:  "quote.ready",
		SentAt: time.Now().UTC(),
		Quote:  quote,
	})
	if err != nil {
		return fmt.Errorf("encoding quote payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("posting quote %s: %w", quote.ID, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook rejected quote %s: status %d", quote.ID, resp.StatusCode)
	}

	s.logger.Info("quote delivered",
		zap.String("order_id", quote.ID.String()),
		zap.Int("status", resp.StatusCode),
	)
	return nil
}

// NoOpSender is used when no webhook is configured.
type NoOpSender struct{}

func (NoOpSender) SendQuote(context.Context, orderapp.OrderResponse) error { return nil }
