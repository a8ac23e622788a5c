// Package notify delivers customer-facing notifications over an outbound
// webhook. The commerce side owns the actual SMS and e-mail channels; this
// service just posts the facts.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/ports"
)

const defaultRequestTimeout = 10 * time.Second

// WebhookNotifier implements ports.Notifier by posting JSON payloads to a
// configured endpoint.
type WebhookNotifier struct {
	endpoint string
	client   *http.Client
}

// NewWebhookNotifier creates a notifier that posts to the given endpoint.
func NewWebhookNotifier(endpoint string) *WebhookNotifier {
	return &WebhookNotifier{
		endpoint: endpoint,
		client:   &http.Client{Timeout: defaultRequestTimeout},
	}
}

type webhookPayload struct {
	Kind           string     `json:"kind"`
	TrackingNumber string     `json:"tracking_number"`
	RecipientName  string     `json:"recipient_name"`
	TokenCode      string     `json:"token_code,omitempty"`
	ExpiresAt      *time.Time `json:"expires_at,omitempty"`
	DeliveredAt    *time.Time `json:"delivered_at,omitempty"`
}

// NotifyTokenIssued tells the recipient their delivery verification code is
// ready.
func (n *WebhookNotifier) NotifyTokenIssued(
	ctx context.Context,
	notification ports.TokenIssuedNotification,
) error {
	expiresAt := notification.ExpiresAt
	return n.post(ctx, webhookPayload{
		Kind:           "token_issued",
		TrackingNumber: notification.TrackingNumber,
		RecipientName:  notification.RecipientName,
		TokenCode:      notification.TokenCode,
		ExpiresAt:      &expiresAt,
	})
}

// NotifyDelivered tells the recipient their parcel has been handed over.
func (n *WebhookNotifier) NotifyDelivered(
	ctx context.Context,
	notification ports.DeliveryCompletedNotification,
) error {
	deliveredAt := notification.DeliveredAt
	return n.post(ctx, webhookPayload{
		Kind:           "delivered",
		TrackingNumber: notification.TrackingNumber,
		RecipientName:  notification.RecipientName,
		DeliveredAt:    &deliveredAt,
	})
}

func (n *WebhookNotifier) post(ctx context.Context, payload webhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("notification webhook returned status %d", resp.StatusCode)
	}

	return nil
}
