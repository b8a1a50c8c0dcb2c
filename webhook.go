package shipengine

import (
	"encoding/json"
	"fmt"
)

// WebhookEvent is the event a webhook subscribes to. Pass it as the "event"
// param of Webhooks.Create.
type WebhookEvent string

const (
	// WebhookEventBatch fires when a batch finishes processing.
	WebhookEventBatch WebhookEvent = "batch"
	// WebhookEventCarrierConnected fires when a carrier account is connected.
	WebhookEventCarrierConnected WebhookEvent = "carrier_connected"
	// WebhookEventRate fires when bulk rates are ready.
	WebhookEventRate WebhookEvent = "rate"
	// WebhookEventReportComplete fires when a requested report is ready.
	WebhookEventReportComplete WebhookEvent = "report_complete"
	// WebhookEventTrack fires on tracking updates for subscribed packages.
	WebhookEventTrack WebhookEvent = "track"
)

// WebhookPayload is the body ShipEngine posts to a webhook URL.
type WebhookPayload struct {
	// ResourceURL points at the changed resource; fetch it with the client.
	ResourceURL string `json:"resource_url"`
	// ResourceType is e.g. API_TRACK or API_BATCH.
	ResourceType string `json:"resource_type"`
	// Data carries the inline event data. Only track events populate it.
	Data Value `json:"data"`
}

// ParseWebhookPayload decodes a webhook delivery body.
func ParseWebhookPayload(body []byte) (*WebhookPayload, error) {
	var p WebhookPayload
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("parse webhook payload: %w", err)
	}
	if p.ResourceType == "" {
		return nil, fmt.Errorf("parse webhook payload: missing resource_type")
	}
	return &p, nil
}
