package main

import (
	"context"
	"fmt"
	"sort"
	"strings"

	shipengine "github.com/shipengine/shipengine-go"
	"github.com/shipengine/shipengine-go/validate"
)

// input is what the command line supplies to an operation.
type input struct {
	ids    []string
	params shipengine.Params
	list   []shipengine.Params
}

type (
	call0 = func(context.Context, shipengine.Params) (*shipengine.Response, error)
	call1 = func(context.Context, string, shipengine.Params) (*shipengine.Response, error)
	call2 = func(context.Context, string, string, shipengine.Params) (*shipengine.Response, error)
	call3 = func(context.Context, string, string, string, shipengine.Params) (*shipengine.Response, error)
)

type operation struct {
	args  []string
	list  bool
	check func(input) error
	run   func(context.Context, *shipengine.Client, input) (*shipengine.Response, error)
}

func op0(pick func(*shipengine.Client) call0) operation {
	return operation{run: func(ctx context.Context, c *shipengine.Client, in input) (*shipengine.Response, error) {
		return pick(c)(ctx, in.params)
	}}
}

func op1(arg string, pick func(*shipengine.Client) call1) operation {
	return operation{args: []string{arg}, run: func(ctx context.Context, c *shipengine.Client, in input) (*shipengine.Response, error) {
		return pick(c)(ctx, in.ids[0], in.params)
	}}
}

func op2(a, b string, pick func(*shipengine.Client) call2) operation {
	return operation{args: []string{a, b}, run: func(ctx context.Context, c *shipengine.Client, in input) (*shipengine.Response, error) {
		return pick(c)(ctx, in.ids[0], in.ids[1], in.params)
	}}
}

func op3(a, b, d string, pick func(*shipengine.Client) call3) operation {
	return operation{args: []string{a, b, d}, run: func(ctx context.Context, c *shipengine.Client, in input) (*shipengine.Response, error) {
		return pick(c)(ctx, in.ids[0], in.ids[1], in.ids[2], in.params)
	}}
}

func listing(op operation) operation {
	op.list = true
	return op
}

func validateAddresses(ctx context.Context, c *shipengine.Client, in input) (*shipengine.Response, error) {
	addresses := in.list
	if addresses == nil && len(in.params) > 0 {
		addresses = []shipengine.Params{in.params}
	}
	return c.Addresses.Validate(ctx, addresses)
}

func checkServicePointCountry(in input) error {
	if err := validate.CheckCountry(in.ids[1]); err != nil {
		return fmt.Errorf("service point %s: %w", in.ids[2], err)
	}
	return nil
}

// operations maps "family" and "operation" command words to client methods.
var operations = map[string]map[string]operation{
	"addresses": {
		"parse":    op0(func(c *shipengine.Client) call0 { return c.Addresses.Parse }),
		"validate": {run: validateAddresses},
	},
	"batches": {
		"list":           listing(op0(func(c *shipengine.Client) call0 { return c.Batches.List })),
		"create":         op0(func(c *shipengine.Client) call0 { return c.Batches.Create }),
		"by-external-id": op1("external_batch_id", func(c *shipengine.Client) call1 { return c.Batches.ByExternalID }),
		"by-id":          op1("batch_id", func(c *shipengine.Client) call1 { return c.Batches.ByID }),
		"update":         op1("batch_id", func(c *shipengine.Client) call1 { return c.Batches.Update }),
		"delete":         op1("batch_id", func(c *shipengine.Client) call1 { return c.Batches.Delete }),
		"add":            op1("batch_id", func(c *shipengine.Client) call1 { return c.Batches.Add }),
		"remove":         op1("batch_id", func(c *shipengine.Client) call1 { return c.Batches.Remove }),
		"errors":         listing(op1("batch_id", func(c *shipengine.Client) call1 { return c.Batches.Errors })),
		"process":        op1("batch_id", func(c *shipengine.Client) call1 { return c.Batches.Process }),
	},
	"carrier-accounts": {
		"connect":         op1("carrier_name", func(c *shipengine.Client) call1 { return c.CarrierAccounts.Connect }),
		"disconnect":      op2("carrier_name", "carrier_id", func(c *shipengine.Client) call2 { return c.CarrierAccounts.Disconnect }),
		"settings":        op2("carrier_name", "carrier_id", func(c *shipengine.Client) call2 { return c.CarrierAccounts.Settings }),
		"update-settings": op2("carrier_name", "carrier_id", func(c *shipengine.Client) call2 { return c.CarrierAccounts.UpdateSettings }),
	},
	"carriers": {
		"list":          op0(func(c *shipengine.Client) call0 { return c.Carriers.List }),
		"by-id":         op1("carrier_id", func(c *shipengine.Client) call1 { return c.Carriers.ByID }),
		"disconnect":    op1("carrier_id", func(c *shipengine.Client) call1 { return c.Carriers.Disconnect }),
		"add-funds":     op1("carrier_id", func(c *shipengine.Client) call1 { return c.Carriers.AddFunds }),
		"options":       op1("carrier_id", func(c *shipengine.Client) call1 { return c.Carriers.Options }),
		"services":      op1("carrier_id", func(c *shipengine.Client) call1 { return c.Carriers.Services }),
		"package-types": op1("carrier_id", func(c *shipengine.Client) call1 { return c.Carriers.PackageTypes }),
	},
	"shipsurance": {
		"connect":    op0(func(c *shipengine.Client) call0 { return c.Shipsurance.Connect }),
		"disconnect": op0(func(c *shipengine.Client) call0 { return c.Shipsurance.Disconnect }),
		"add-funds":  op0(func(c *shipengine.Client) call0 { return c.Shipsurance.AddFunds }),
		"balance":    op0(func(c *shipengine.Client) call0 { return c.Shipsurance.Balance }),
	},
	"labels": {
		"list":                      listing(op0(func(c *shipengine.Client) call0 { return c.Labels.List })),
		"purchase":                  op0(func(c *shipengine.Client) call0 { return c.Labels.Purchase }),
		"by-id":                     op1("label_id", func(c *shipengine.Client) call1 { return c.Labels.ByID }),
		"by-external-shipment-id":   op1("external_shipment_id", func(c *shipengine.Client) call1 { return c.Labels.ByExternalShipmentID }),
		"purchase-with-rate-id":     op1("rate_id", func(c *shipengine.Client) call1 { return c.Labels.PurchaseWithRateID }),
		"purchase-with-shipment-id": op1("shipment_id", func(c *shipengine.Client) call1 { return c.Labels.PurchaseWithShipmentID }),
		"create-return":             op1("label_id", func(c *shipengine.Client) call1 { return c.Labels.CreateReturn }),
		"track":                     op1("label_id", func(c *shipengine.Client) call1 { return c.Labels.Track }),
		"void":                      op1("label_id", func(c *shipengine.Client) call1 { return c.Labels.Void }),
	},
	"manifests": {
		"list":          listing(op0(func(c *shipengine.Client) call0 { return c.Manifests.List })),
		"create":        op0(func(c *shipengine.Client) call0 { return c.Manifests.Create }),
		"by-id":         op1("manifest_id", func(c *shipengine.Client) call1 { return c.Manifests.ByID }),
		"request-by-id": op1("manifest_request_id", func(c *shipengine.Client) call1 { return c.Manifests.RequestByID }),
	},
	"package-pickups": {
		"list":     listing(op0(func(c *shipengine.Client) call0 { return c.PackagePickups.List })),
		"schedule": op0(func(c *shipengine.Client) call0 { return c.PackagePickups.Schedule }),
		"by-id":    op1("pickup_id", func(c *shipengine.Client) call1 { return c.PackagePickups.ByID }),
		"delete":   op1("pickup_id", func(c *shipengine.Client) call1 { return c.PackagePickups.Delete }),
	},
	"package-types": {
		"list":   op0(func(c *shipengine.Client) call0 { return c.PackageTypes.List }),
		"create": op0(func(c *shipengine.Client) call0 { return c.PackageTypes.Create }),
		"by-id":  op1("package_id", func(c *shipengine.Client) call1 { return c.PackageTypes.ByID }),
		"update": op1("package_id", func(c *shipengine.Client) call1 { return c.PackageTypes.Update }),
		"delete": op1("package_id", func(c *shipengine.Client) call1 { return c.PackageTypes.Delete }),
	},
	"rates": {
		"get":      op0(func(c *shipengine.Client) call0 { return c.Rates.Get }),
		"estimate": op0(func(c *shipengine.Client) call0 { return c.Rates.Estimate }),
		"bulk":     op0(func(c *shipengine.Client) call0 { return c.Rates.Bulk }),
		"by-id":    op1("rate_id", func(c *shipengine.Client) call1 { return c.Rates.ByID }),
	},
	"service-points": {
		"list": op0(func(c *shipengine.Client) call0 { return c.ServicePoints.List }),
		"by-id": func() operation {
			op := op3("carrier_code", "country_code", "service_point_id", func(c *shipengine.Client) call3 { return c.ServicePoints.ByID })
			op.check = checkServicePointCountry
			return op
		}(),
	},
	"shipments": {
		"list":           listing(op0(func(c *shipengine.Client) call0 { return c.Shipments.List })),
		"create":         op0(func(c *shipengine.Client) call0 { return c.Shipments.Create }),
		"by-id":          op1("shipment_id", func(c *shipengine.Client) call1 { return c.Shipments.ByID }),
		"by-external-id": op1("external_shipment_id", func(c *shipengine.Client) call1 { return c.Shipments.ByExternalID }),
		"parse":          op0(func(c *shipengine.Client) call0 { return c.Shipments.Parse }),
		"update":         op1("shipment_id", func(c *shipengine.Client) call1 { return c.Shipments.Update }),
		"cancel":         op1("shipment_id", func(c *shipengine.Client) call1 { return c.Shipments.Cancel }),
		"rates":          op1("shipment_id", func(c *shipengine.Client) call1 { return c.Shipments.Rates }),
		"add-tag":        op2("shipment_id", "tag_name", func(c *shipengine.Client) call2 { return c.Shipments.AddTag }),
		"remove-tag":     op2("shipment_id", "tag_name", func(c *shipengine.Client) call2 { return c.Shipments.RemoveTag }),
	},
	"tags": {
		"list":   op0(func(c *shipengine.Client) call0 { return c.Tags.List }),
		"create": op1("tag_name", func(c *shipengine.Client) call1 { return c.Tags.Create }),
		"delete": op1("tag_name", func(c *shipengine.Client) call1 { return c.Tags.Delete }),
		"rename": op2("tag_name", "new_tag_name", func(c *shipengine.Client) call2 { return c.Tags.Rename }),
	},
	"tokens": {
		"ephemeral": op0(func(c *shipengine.Client) call0 { return c.Tokens.Ephemeral }),
	},
	"tracking": {
		"get":   op0(func(c *shipengine.Client) call0 { return c.Tracking.Get }),
		"start": op0(func(c *shipengine.Client) call0 { return c.Tracking.Start }),
		"stop":  op0(func(c *shipengine.Client) call0 { return c.Tracking.Stop }),
	},
	"warehouses": {
		"list":            op0(func(c *shipengine.Client) call0 { return c.Warehouses.List }),
		"create":          op0(func(c *shipengine.Client) call0 { return c.Warehouses.Create }),
		"by-id":           op1("warehouse_id", func(c *shipengine.Client) call1 { return c.Warehouses.ByID }),
		"update":          op1("warehouse_id", func(c *shipengine.Client) call1 { return c.Warehouses.Update }),
		"delete":          op1("warehouse_id", func(c *shipengine.Client) call1 { return c.Warehouses.Delete }),
		"update-settings": op1("warehouse_id", func(c *shipengine.Client) call1 { return c.Warehouses.UpdateSettings }),
	},
	"webhooks": {
		"list":   op0(func(c *shipengine.Client) call0 { return c.Webhooks.List }),
		"create": op0(func(c *shipengine.Client) call0 { return c.Webhooks.Create }),
		"by-id":  op1("webhook_id", func(c *shipengine.Client) call1 { return c.Webhooks.ByID }),
		"update": op1("webhook_id", func(c *shipengine.Client) call1 { return c.Webhooks.Update }),
		"delete": op1("webhook_id", func(c *shipengine.Client) call1 { return c.Webhooks.Delete }),
	},
	"ltl": {
		"carrier-by-id":              op1("carrier_id", func(c *shipengine.Client) call1 { return c.LTL.CarrierByID }),
		"shipping-quote":             op1("carrier_id", func(c *shipengine.Client) call1 { return c.LTL.ShippingQuote }),
		"spot-quote":                 op1("carrier_id", func(c *shipengine.Client) call1 { return c.LTL.SpotQuote }),
		"schedule-pickup":            op1("quote_id", func(c *shipengine.Client) call1 { return c.LTL.SchedulePickupByQuoteID }),
		"bill-of-lading-by-quote-id": op1("quote_id", func(c *shipengine.Client) call1 { return c.LTL.BillOfLadingByQuoteID }),
		"bill-of-lading-by-pickup-id": op1("pickup_id", func(c *shipengine.Client) call1 {
			return c.LTL.BillOfLadingByPickupID
		}),
		"tracking": op0(func(c *shipengine.Client) call0 { return c.LTL.Tracking }),
	},
}

func lookupOperation(family, name string) (operation, error) {
	ops, ok := operations[family]
	if !ok {
		return operation{}, fmt.Errorf("unknown command: %s (families: %s)", family, strings.Join(sortedKeys(operations), ", "))
	}
	op, ok := ops[name]
	if !ok {
		return operation{}, fmt.Errorf("unknown command: %s %s (operations: %s)", family, name, strings.Join(sortedKeys(ops), ", "))
	}
	return op, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
