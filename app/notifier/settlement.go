package notifier

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
)

// Status is the terminal outcome of a single notification attempt. Each
// event gets exactly one attempt; there is no transition out of a terminal
// state and no retry.
type Status string

const (
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Settlement forwards persisted orders to the external settlement endpoint.
// Delivery is best-effort: a failed call is logged with its payload so an
// operator can follow up out-of-band, and is otherwise dropped.
type Settlement struct {
	client *http.Client
	url    string
}

func NewSettlement(client *http.Client, url string) *Settlement {
	return &Settlement{
		client: client,
		url:    url,
	}
}

// Handle adapts Notify to the event bus handler signature.
func (n *Settlement) Handle(ctx context.Context, payload []byte) {
	n.Notify(ctx, payload)
}

func (n *Settlement) Notify(ctx context.Context, payload []byte) Status {
	slog.InfoContext(ctx, "[settlementNotifier] Notify", "payload", string(payload))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(payload))
	if err != nil {
		slog.WarnContext(ctx, "[settlementNotifier] Notify", "newRequest", err, "payload", string(payload))
		return StatusFailed
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		slog.WarnContext(ctx, "[settlementNotifier] Notify", "send", err, "payload", string(payload))
		return StatusFailed
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		slog.WarnContext(ctx, "[settlementNotifier] Notify", "status", resp.StatusCode, "payload", string(payload))
		return StatusFailed
	}

	slog.InfoContext(ctx, "[settlementNotifier] Notify", "sent", resp.StatusCode)
	return StatusSucceeded
}
