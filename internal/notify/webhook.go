package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-table-order/internal/utils"
	"github.com/MKhiriev/go-table-order/models"
)

// ChannelWebhook is the metrics label of the webhook notifier.
const ChannelWebhook = "webhook"

// WebhookNotifier POSTs every accepted order as JSON.
type WebhookNotifier struct {
	client *utils.HTTPClient
	url    string
}

// NewWebhookNotifier returns ErrNotifierNotConfigured for an empty url.
func NewWebhookNotifier(url string, timeout time.Duration) (*WebhookNotifier, error) {
	if url == "" {
		return nil, ErrNotifierNotConfigured
	}
	return &WebhookNotifier{client: utils.NewHTTPClient(timeout), url: url}, nil
}

func (n *WebhookNotifier) Name() string { return ChannelWebhook }

func (n *WebhookNotifier) Notify(ctx context.Context, order models.Order) error {
	resp, err := n.client.R().
		SetContext(ctx).
		SetHeader("X-Event", "order.accepted").
		SetBody(order).
		Post(n.url)
	if err != nil {
		return fmt.Errorf("error posting order webhook: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("order webhook answered %s", resp.Status())
	}
	return nil
}

func (n *WebhookNotifier) Close() error { return nil }
