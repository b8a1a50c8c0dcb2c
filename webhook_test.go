package shipengine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWebhookPayload_Track(t *testing.T) {
	body := []byte(`{
		"resource_url": "https://api.shipengine.com/v1/tracking?carrier_code=usps&tracking_number=9400111298370264401222",
		"resource_type": "API_TRACK",
		"data": {
			"tracking_number": "9400111298370264401222",
			"status_code": "DE",
			"ship_date": "2023-01-05T18:40:00Z",
			"events": [{"occurred_at": "2023-01-06T10:12:00Z", "city_locality": "AUSTIN"}]
		}
	}`)

	p, err := ParseWebhookPayload(body)
	require.NoError(t, err)
	assert.Equal(t, "API_TRACK", p.ResourceType)
	assert.Contains(t, p.ResourceURL, "/v1/tracking")
	assert.Equal(t, "DE", p.Data.Get("status_code").String())
	assert.Equal(t, "AUSTIN", p.Data.Get("events", 0, "city_locality").String())

	shipped, ok := p.Data.Get("ship_date").Time()
	require.True(t, ok)
	assert.Equal(t, 18, shipped.Hour())
}

func TestParseWebhookPayload_Batch(t *testing.T) {
	p, err := ParseWebhookPayload([]byte(`{"resource_url":"https://api.shipengine.com/v1/batches/se-1","resource_type":"API_BATCH"}`))
	require.NoError(t, err)
	assert.Equal(t, "API_BATCH", p.ResourceType)
	assert.False(t, p.Data.Exists())
}

func TestParseWebhookPayload_Invalid(t *testing.T) {
	_, err := ParseWebhookPayload([]byte(`not json`))
	assert.Error(t, err)

	_, err = ParseWebhookPayload([]byte(`{"resource_url":"x"}`))
	assert.ErrorContains(t, err, "resource_type")
}

func TestWebhooks_CreateWithEvent(t *testing.T) {
	client, rec := newRecordingClient(t)

	_, err := client.Webhooks.Create(context.Background(), Params{
		"event": WebhookEventTrack,
		"url":   "https://example.com/hooks/track",
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"event":"track","url":"https://example.com/hooks/track"}`, rec.Last().Body)
}
