package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/pepocho/presupuesto-mix/internal/models"
)

// Notifier announces a newly reported missing item to the group.
// Implementations are best-effort: a failed send never fails the save.
type Notifier interface {
	NotifyNewItem(ctx context.Context, item models.MissingItem) error
}

// WebhookNotifier posts new items as JSON to a configured URL.
type WebhookNotifier struct {
	url        string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewWebhookNotifier builds a notifier for the given URL. An empty URL
// yields a notifier that does nothing.
func NewWebhookNotifier(url string, logger *slog.Logger) *WebhookNotifier {
	return &WebhookNotifier{
		url:        url,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
	}
}

// NotifyNewItem sends the item to the webhook.
func (n *WebhookNotifier) NotifyNewItem(ctx context.Context, item models.MissingItem) error {
	if n.url == "" {
		return nil
	}

	body, err := json.Marshal(item)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}
