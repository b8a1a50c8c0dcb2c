// Package shipengine provides a Go client SDK for the ShipEngine shipping
// API: address validation, rate shopping, label purchase, tracking, carrier
// management and LTL freight.
//
// Every resource family is a field of [Client]. Each method builds its path
// from the endpoint registry, forwards the caller's [Params] unchanged and
// returns the decoded body as a [Response]:
//
//	client, err := shipengine.New(os.Getenv("API_KEY"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	carrier, err := client.LTL.CarrierByID(ctx, "se-123", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(carrier.Get("carrier_name").String())
//
// Responses can also be decoded into your own types:
//
//	var label struct {
//	    LabelID string `json:"label_id"`
//	}
//	if err := resp.Decode(&label); err != nil {
//	    log.Fatal(err)
//	}
//
// Errors are returned as *[APIError] (non-2xx), *[NetworkError] (transport)
// or *[DecodeError] (malformed body) and match the sentinel errors with
// errors.Is.
package shipengine
