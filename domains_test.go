package shipengine

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	Method  string
	Path    string
	RawPath string
	Query   string
	Body    string
}

// recorder is a fake ShipEngine that echoes {"ok": true} and remembers the
// last request it served.
type recorder struct {
	mu   sync.Mutex
	last recordedRequest
	n    int
}

func (rec *recorder) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	rec.mu.Lock()
	rec.last = recordedRequest{
		Method:  r.Method,
		Path:    r.URL.Path,
		RawPath: r.URL.EscapedPath(),
		Query:   r.URL.RawQuery,
		Body:    string(body),
	}
	rec.n++
	rec.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	io.WriteString(w, `{"ok": true}`)
}

func (rec *recorder) Last() recordedRequest {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	return rec.last
}

func (rec *recorder) Count() int {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	return rec.n
}

func newRecordingClient(t *testing.T) (*Client, *recorder) {
	t.Helper()
	rec := &recorder{}
	server := httptest.NewServer(rec)
	t.Cleanup(server.Close)

	client, err := New("test-key", WithBaseURL(server.URL))
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return client, rec
}

type domainCall struct {
	name   string
	call   func(ctx context.Context, c *Client) (*Response, error)
	method string
	path   string
}

func domainCalls() []domainCall {
	p := Params{"k": "v"}
	return []domainCall{
		// addresses
		{"Addresses.Parse", func(ctx context.Context, c *Client) (*Response, error) {
			return c.Addresses.Parse(ctx, p)
		}, "PUT", "/v1/addresses/recognize"},

		// batches
		{"Batches.List", func(ctx context.Context, c *Client) (*Response, error) {
			return c.Batches.List(ctx, p)
		}, "GET", "/v1/batches"},
		{"Batches.Create", func(ctx context.Context, c *Client) (*Response, error) {
			return c.Batches.Create(ctx, p)
		}, "POST", "/v1/batches"},
		{"Batches.ByExternalID", func(ctx context.Context, c *Client) (*Response, error) {
			return c.Batches.ByExternalID(ctx, "ext-1", p)
		}, "GET", "/v1/batches/external_batch_id/ext-1"},
		{"Batches.ByID", func(ctx context.Context, c *Client) (*Response, error) {
			return c.Batches.ByID(ctx, "se-1", p)
		}, "GET", "/v1/batches/se-1"},
		{"Batches.Update", func(ctx context.Context, c *Client) (*Response, error) {
			return c.Batches.Update(ctx, "se-1", p)
		}, "PUT", "/v1/batches/se-1"},
		{"Batches.Delete", func(ctx context.Context, c *Client) (*Response, error) {
			return c.Batches.Delete(ctx, "se-1", p)
		}, "DELETE", "/v1/batches/se-1"},
		{"Batches.Add", func(ctx context.Context, c *Client) (*Response, error) {
			return c.Batches.Add(ctx, "se-1", p)
		}, "POST", "/v1/batches/se-1/add"},
		{"Batches.Remove", func(ctx context.Context, c *Client) (*Response, error) {
			return c.Batches.Remove(ctx, "se-1", p)
		}, "POST", "/v1/batches/se-1/remove"},
		{"Batches.Errors", func(ctx context.Context, c *Client) (*Response, error) {
			return c.Batches.Errors(ctx, "se-1", p)
		}, "GET", "/v1/batches/se-1/errors"},
		{"Batches.Process", func(ctx context.Context, c *Client) (*Response, error) {
			return c.Batches.Process(ctx, "se-1", p)
		}, "POST", "/v1/batches/se-1/process/labels"},

		// carriers
		{"Carriers.List", func(ctx context.Context, c *Client) (*Response, error) {
			return c.Carriers.List(ctx, p)
		}, "GET", "/v1/carriers"},
		{"Carriers.ByID", func(ctx context.Context, c *Client) (*Response, error) {
			return c.Carriers.ByID(ctx, "se-2", p)
		}, "GET", "/v1/carriers/se-2"},
		{"Carriers.Disconnect", func(ctx context.Context, c *Client) (*Response, error) {
			return c.Carriers.Disconnect(ctx, "se-2", p)
		}, "DELETE", "/v1/carriers/se-2"},
		{"Carriers.AddFunds", func(ctx context.Context, c *Client) (*Response, error) {
			return c.Carriers.AddFunds(ctx, "se-2", p)
		}, "PUT", "/v1/carriers/se-2/add_funds"},
		{"Carriers.Options", func(ctx context.Context, c *Client) (*Response, error) {
			return c.Carriers.Options(ctx, "se-2", p)
		}, "GET", "/v1/carriers/se-2/options"},
		{"Carriers.Services", func(ctx context.Context, c *Client) (*Response, error) {
			return c.Carriers.Services(ctx, "se-2", p)
		}, "GET", "/v1/carriers/se-2/services"},
		{"Carriers.PackageTypes", func(ctx context.Context, c *Client) (*Response, error) {
			return c.Carriers.PackageTypes(ctx, "se-2", p)
		}, "GET", "/v1/carriers/se-2/packages"},

		// carrier accounts
		{"CarrierAccounts.Connect", func(ctx context.Context, c *Client) (*Response, error) {
			return c.CarrierAccounts.Connect(ctx, "fedex", p)
		}, "POST", "/v1/connections/carriers/fedex"},
		{"CarrierAccounts.Disconnect", func(ctx context.Context, c *Client) (*Response, error) {
			return c.CarrierAccounts.Disconnect(ctx, "fedex", "se-3", p)
		}, "DELETE", "/v1/connections/carriers/fedex/se-3"},
		{"CarrierAccounts.Settings", func(ctx context.Context, c *Client) (*Response, error) {
			return c.CarrierAccounts.Settings(ctx, "fedex", "se-3", p)
		}, "GET", "/v1/connections/carriers/fedex/se-3/settings"},
		{"CarrierAccounts.UpdateSettings", func(ctx context.Context, c *Client) (*Response, error) {
			return c.CarrierAccounts.UpdateSettings(ctx, "fedex", "se-3", p)
		}, "PUT", "/v1/connections/carriers/fedex/se-3/settings"},

		// shipsurance
		{"Shipsurance.Connect", func(ctx context.Context, c *Client) (*Response, error) {
			return c.Shipsurance.Connect(ctx, p)
		}, "POST", "/v1/connections/insurance/shipsurance"},
		{"Shipsurance.Disconnect", func(ctx context.Context, c *Client) (*Response, error) {
			return c.Shipsurance.Disconnect(ctx, p)
		}, "DELETE", "/v1/connections/insurance/shipsurance"},
		{"Shipsurance.AddFunds", func(ctx context.Context, c *Client) (*Response, error) {
			return c.Shipsurance.AddFunds(ctx, p)
		}, "PATCH", "/v1/insurance/shipsurance/add_funds"},
		{"Shipsurance.Balance", func(ctx context.Context, c *Client) (*Response, error) {
			return c.Shipsurance.Balance(ctx, p)
		}, "GET", "/v1/insurance/shipsurance/balance"},

		// labels
		{"Labels.List", func(ctx context.Context, c *Client) (*Response, error) {
			return c.Labels.List(ctx, p)
		}, "GET", "/v1/labels"},
		{"Labels.Purchase", func(ctx context.Context, c *Client) (*Response, error) {
			return c.Labels.Purchase(ctx, p)
		}, "POST", "/v1/labels"},
		{"Labels.ByID", func(ctx context.Context, c *Client) (*Response, error) {
			return c.Labels.ByID(ctx, "se-4", p)
		}, "GET", "/v1/labels/se-4"},
		{"Labels.ByExternalShipmentID", func(ctx context.Context, c *Client) (*Response, error) {
			return c.Labels.ByExternalShipmentID(ctx, "ext-4", p)
		}, "GET", "/v1/labels/external_shipment_id/ext-4"},
		{"Labels.PurchaseWithRateID", func(ctx context.Context, c *Client) (*Response, error) {
			return c.Labels.PurchaseWithRateID(ctx, "se-r1", p)
		}, "POST", "/v1/labels/rates/se-r1"},
		{"Labels.PurchaseWithShipmentID", func(ctx context.Context, c *Client) (*Response, error) {
			return c.Labels.PurchaseWithShipmentID(ctx, "se-s1", p)
		}, "POST", "/v1/labels/shipment/se-s1"},
		{"Labels.CreateReturn", func(ctx context.Context, c *Client) (*Response, error) {
			return c.Labels.CreateReturn(ctx, "se-4", p)
		}, "POST", "/v1/labels/se-4/return"},
		{"Labels.Track", func(ctx context.Context, c *Client) (*Response, error) {
			return c.Labels.Track(ctx, "se-4", p)
		}, "GET", "/v1/labels/se-4/track"},
		{"Labels.Void", func(ctx context.Context, c *Client) (*Response, error) {
			return c.Labels.Void(ctx, "se-4", p)
		}, "PUT", "/v1/labels/se-4/void"},

		// manifests
		{"Manifests.List", func(ctx context.Context, c *Client) (*Response, error) {
			return c.Manifests.List(ctx, p)
		}, "GET", "/v1/manifests"},
		{"Manifests.Create", func(ctx context.Context, c *Client) (*Response, error) {
			return c.Manifests.Create(ctx, p)
		}, "POST", "/v1/manifests"},
		{"Manifests.ByID", func(ctx context.Context, c *Client) (*Response, error) {
			return c.Manifests.ByID(ctx, "se-5", p)
		}, "GET", "/v1/manifests/se-5"},
		{"Manifests.RequestByID", func(ctx context.Context, c *Client) (*Response, error) {
			return c.Manifests.RequestByID(ctx, "se-6", p)
		}, "GET", "/v1/manifests/requests/se-6"},

		// package pickups
		{"PackagePickups.List", func(ctx context.Context, c *Client) (*Response, error) {
			return c.PackagePickups.List(ctx, p)
		}, "GET", "/v1/pickups"},
		{"PackagePickups.Schedule", func(ctx context.Context, c *Client) (*Response, error) {
			return c.PackagePickups.Schedule(ctx, p)
		}, "POST", "/v1/pickups"},
		{"PackagePickups.ByID", func(ctx context.Context, c *Client) (*Response, error) {
			return c.PackagePickups.ByID(ctx, "pik-1", p)
		}, "GET", "/v1/pickups/pik-1"},
		{"PackagePickups.Delete", func(ctx context.Context, c *Client) (*Response, error) {
			return c.PackagePickups.Delete(ctx, "pik-1", p)
		}, "DELETE", "/v1/pickups/pik-1"},

		// package types
		{"PackageTypes.List", func(ctx context.Context, c *Client) (*Response, error) {
			return c.PackageTypes.List(ctx, p)
		}, "GET", "/v1/packages"},
		{"PackageTypes.Create", func(ctx context.Context, c *Client) (*Response, error) {
			return c.PackageTypes.Create(ctx, p)
		}, "POST", "/v1/packages"},
		{"PackageTypes.ByID", func(ctx context.Context, c *Client) (*Response, error) {
			return c.PackageTypes.ByID(ctx, "se-7", p)
		}, "GET", "/v1/packages/se-7"},
		{"PackageTypes.Update", func(ctx context.Context, c *Client) (*Response, error) {
			return c.PackageTypes.Update(ctx, "se-7", p)
		}, "PUT", "/v1/packages/se-7"},
		{"PackageTypes.Delete", func(ctx context.Context, c *Client) (*Response, error) {
			return c.PackageTypes.Delete(ctx, "se-7", p)
		}, "DELETE", "/v1/packages/se-7"},

		// rates
		{"Rates.Get", func(ctx context.Context, c *Client) (*Response, error) {
			return c.Rates.Get(ctx, p)
		}, "POST", "/v1/rates"},
		{"Rates.Estimate", func(ctx context.Context, c *Client) (*Response, error) {
			return c.Rates.Estimate(ctx, p)
		}, "POST", "/v1/rates/estimate"},
		{"Rates.Bulk", func(ctx context.Context, c *Client) (*Response, error) {
			return c.Rates.Bulk(ctx, p)
		}, "POST", "/v1/rates/bulk"},
		{"Rates.ByID", func(ctx context.Context, c *Client) (*Response, error) {
			return c.Rates.ByID(ctx, "se-r1", p)
		}, "GET", "/v1/rates/se-r1"},

		// service points
		{"ServicePoints.List", func(ctx context.Context, c *Client) (*Response, error) {
			return c.ServicePoints.List(ctx, p)
		}, "POST", "/v1/service_points/list"},
		{"ServicePoints.ByID", func(ctx context.Context, c *Client) (*Response, error) {
			return c.ServicePoints.ByID(ctx, "fedex", "US", "sp-1", p)
		}, "GET", "/v1/service_points/fedex/US/sp-1"},

		// shipments
		{"Shipments.List", func(ctx context.Context, c *Client) (*Response, error) {
			return c.Shipments.List(ctx, p)
		}, "GET", "/v1/shipments"},
		{"Shipments.Create", func(ctx context.Context, c *Client) (*Response, error) {
			return c.Shipments.Create(ctx, p)
		}, "POST", "/v1/shipments"},
		{"Shipments.ByID", func(ctx context.Context, c *Client) (*Response, error) {
			return c.Shipments.ByID(ctx, "se-s1", p)
		}, "GET", "/v1/shipments/se-s1"},
		{"Shipments.ByExternalID", func(ctx context.Context, c *Client) (*Response, error) {
			return c.Shipments.ByExternalID(ctx, "ext-s1", p)
		}, "GET", "/v1/shipments/external_shipment_id/ext-s1"},
		{"Shipments.Parse", func(ctx context.Context, c *Client) (*Response, error) {
			return c.Shipments.Parse(ctx, p)
		}, "PUT", "/v1/shipments/recognize"},
		{"Shipments.Update", func(ctx context.Context, c *Client) (*Response, error) {
			return c.Shipments.Update(ctx, "se-s1", p)
		}, "PUT", "/v1/shipments/se-s1"},
		{"Shipments.Cancel", func(ctx context.Context, c *Client) (*Response, error) {
			return c.Shipments.Cancel(ctx, "se-s1", p)
		}, "PUT", "/v1/shipments/se-s1/cancel"},
		{"Shipments.Rates", func(ctx context.Context, c *Client) (*Response, error) {
			return c.Shipments.Rates(ctx, "se-s1", p)
		}, "GET", "/v1/shipments/se-s1/rates"},
		{"Shipments.AddTag", func(ctx context.Context, c *Client) (*Response, error) {
			return c.Shipments.AddTag(ctx, "se-s1", "vip", p)
		}, "POST", "/v1/shipments/se-s1/tags/vip"},
		{"Shipments.RemoveTag", func(ctx context.Context, c *Client) (*Response, error) {
			return c.Shipments.RemoveTag(ctx, "se-s1", "vip", p)
		}, "DELETE", "/v1/shipments/se-s1/tags/vip"},

		// tags
		{"Tags.List", func(ctx context.Context, c *Client) (*Response, error) {
			return c.Tags.List(ctx, p)
		}, "GET", "/v1/tags"},
		{"Tags.Create", func(ctx context.Context, c *Client) (*Response, error) {
			return c.Tags.Create(ctx, "vip", p)
		}, "POST", "/v1/tags/vip"},
		{"Tags.Delete", func(ctx context.Context, c *Client) (*Response, error) {
			return c.Tags.Delete(ctx, "vip", p)
		}, "DELETE", "/v1/tags/vip"},
		{"Tags.Rename", func(ctx context.Context, c *Client) (*Response, error) {
			return c.Tags.Rename(ctx, "vip", "gold", p)
		}, "PUT", "/v1/tags/vip/gold"},

		// tokens
		{"Tokens.Ephemeral", func(ctx context.Context, c *Client) (*Response, error) {
			return c.Tokens.Ephemeral(ctx, p)
		}, "POST", "/v1/tokens/ephemeral"},

		// tracking
		{"Tracking.Get", func(ctx context.Context, c *Client) (*Response, error) {
			return c.Tracking.Get(ctx, p)
		}, "GET", "/v1/tracking"},

		// warehouses
		{"Warehouses.List", func(ctx context.Context, c *Client) (*Response, error) {
			return c.Warehouses.List(ctx, p)
		}, "GET", "/v1/warehouses"},
		{"Warehouses.Create", func(ctx context.Context, c *Client) (*Response, error) {
			return c.Warehouses.Create(ctx, p)
		}, "POST", "/v1/warehouses"},
		{"Warehouses.ByID", func(ctx context.Context, c *Client) (*Response, error) {
			return c.Warehouses.ByID(ctx, "se-w1", p)
		}, "GET", "/v1/warehouses/se-w1"},
		{"Warehouses.Update", func(ctx context.Context, c *Client) (*Response, error) {
			return c.Warehouses.Update(ctx, "se-w1", p)
		}, "PUT", "/v1/warehouses/se-w1"},
		{"Warehouses.Delete", func(ctx context.Context, c *Client) (*Response, error) {
			return c.Warehouses.Delete(ctx, "se-w1", p)
		}, "DELETE", "/v1/warehouses/se-w1"},
		{"Warehouses.UpdateSettings", func(ctx context.Context, c *Client) (*Response, error) {
			return c.Warehouses.UpdateSettings(ctx, "se-w1", p)
		}, "PUT", "/v1/warehouses/se-w1/settings"},

		// webhooks
		{"Webhooks.List", func(ctx context.Context, c *Client) (*Response, error) {
			return c.Webhooks.List(ctx, p)
		}, "GET", "/v1/environment/webhooks"},
		{"Webhooks.Create", func(ctx context.Context, c *Client) (*Response, error) {
			return c.Webhooks.Create(ctx, p)
		}, "POST", "/v1/environment/webhooks"},
		{"Webhooks.ByID", func(ctx context.Context, c *Client) (*Response, error) {
			return c.Webhooks.ByID(ctx, "se-h1", p)
		}, "GET", "/v1/environment/webhooks/se-h1"},
		{"Webhooks.Update", func(ctx context.Context, c *Client) (*Response, error) {
			return c.Webhooks.Update(ctx, "se-h1", p)
		}, "PUT", "/v1/environment/webhooks/se-h1"},
		{"Webhooks.Delete", func(ctx context.Context, c *Client) (*Response, error) {
			return c.Webhooks.Delete(ctx, "se-h1", p)
		}, "DELETE", "/v1/environment/webhooks/se-h1"},
	}
}

func TestDomains_MethodAndPath(t *testing.T) {
	client, rec := newRecordingClient(t)
	ctx := context.Background()

	for _, tc := range domainCalls() {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := tc.call(ctx, client)
			require.NoError(t, err)
			assert.True(t, resp.Get("ok").Bool())

			got := rec.Last()
			assert.Equal(t, tc.method, got.Method)
			assert.Equal(t, tc.path, got.Path)

			switch tc.method {
			case http.MethodGet, http.MethodDelete:
				assert.Equal(t, "k=v", got.Query)
				assert.Empty(t, got.Body)
			default:
				assert.Empty(t, got.Query)
				assert.JSONEq(t, `{"k":"v"}`, got.Body)
			}
		})
	}
}

func TestDomains_EscapeIdentifiers(t *testing.T) {
	client, rec := newRecordingClient(t)

	_, err := client.Shipments.ByID(context.Background(), "a/b c", nil)
	require.NoError(t, err)

	got := rec.Last()
	assert.Equal(t, "/v1/shipments/a/b c", got.Path)
	assert.Equal(t, "/v1/shipments/a%2Fb%20c", got.RawPath)
}

func TestAddresses_Validate_SendsArray(t *testing.T) {
	client, rec := newRecordingClient(t)
	ctx := context.Background()

	_, err := client.Addresses.Validate(ctx, []Params{
		{"address_line1": "1 E Main St", "country_code": "US"},
		{"address_line1": "4009 Marathon Blvd", "country_code": "US"},
	})
	require.NoError(t, err)

	got := rec.Last()
	assert.Equal(t, http.MethodPost, got.Method)
	assert.Equal(t, "/v1/addresses/validate", got.Path)

	var body []map[string]any
	require.NoError(t, json.Unmarshal([]byte(got.Body), &body))
	require.Len(t, body, 2)
	assert.Equal(t, "4009 Marathon Blvd", body[1]["address_line1"])

	_, err = client.Addresses.Validate(ctx, nil)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, rec.Last().Body)
}

func TestTracking_StartStop_UseQuery(t *testing.T) {
	client, rec := newRecordingClient(t)
	ctx := context.Background()
	params := Params{"carrier_code": "ups", "tracking_number": "1Z999"}

	_, err := client.Tracking.Start(ctx, params)
	require.NoError(t, err)
	got := rec.Last()
	assert.Equal(t, http.MethodPost, got.Method)
	assert.Equal(t, "/v1/tracking/start", got.Path)
	assert.Equal(t, "carrier_code=ups&tracking_number=1Z999", got.Query)
	assert.Empty(t, got.Body)

	_, err = client.Tracking.Stop(ctx, params)
	require.NoError(t, err)
	assert.Equal(t, "/v1/tracking/stop", rec.Last().Path)
}

func TestDomains_ParamsForwardedUnmodified(t *testing.T) {
	client, rec := newRecordingClient(t)

	params := Params{
		"shipment": map[string]any{
			"service_code": "usps_priority_mail",
			"packages":     []any{map[string]any{"weight": map[string]any{"value": 1.5, "unit": "pound"}}},
		},
		"rate_options": map[string]any{"carrier_ids": []string{"se-123"}},
	}
	_, err := client.Rates.Get(context.Background(), params)
	require.NoError(t, err)

	want, err := json.Marshal(params)
	require.NoError(t, err)
	assert.JSONEq(t, string(want), rec.Last().Body)
	assert.Len(t, params, 2)
}

func TestShipments_List_EncodesStructuredQuery(t *testing.T) {
	client, rec := newRecordingClient(t)

	_, err := client.Shipments.List(context.Background(), Params{
		"created_at": map[string]any{"start": "2023-01-01"},
		"ids":        []int{1, 2},
	})
	require.NoError(t, err)

	got, err := url.ParseQuery(rec.Last().Query)
	require.NoError(t, err)
	assert.Equal(t, url.Values{
		"created_at[start]": {"2023-01-01"},
		"ids":               {"1", "2"},
	}, got)
}

func TestDomains_APIErrorPassesThrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"request_id":"req-9","errors":[{"error_source":"shipengine","error_type":"validation","error_code":"not_found","message":"label not found"}]}`)
	}))
	defer server.Close()

	client, err := New("test-key", WithBaseURL(server.URL))
	require.NoError(t, err)

	resp, err := client.Labels.ByID(context.Background(), "se-missing", nil)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrNotFound)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "req-9", apiErr.RequestID)
	require.Len(t, apiErr.Details, 1)
	assert.Equal(t, "not_found", apiErr.Details[0].ErrorCode)
}
