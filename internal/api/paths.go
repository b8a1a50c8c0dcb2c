package api

import (
	"reflect"
)

// Registry is the table of ShipEngine endpoint paths. Every operation is a
// struct field, so a missing entry is a compile error rather than a runtime
// lookup failure. The path tags name the entry for enumeration.
type Registry struct {
	V1    V1Paths    `path:"v1"`
	VBeta VBetaPaths `path:"v-beta"`
}

// V1Paths groups the /v1 resource families.
type V1Paths struct {
	Addresses       AddressPaths        `path:"addresses"`
	Batches         BatchPaths          `path:"batches"`
	CarrierAccounts CarrierAccountPaths `path:"carriers_accounts"`
	Carriers        CarrierPaths        `path:"carriers"`
	Shipsurance     ShipsurancePaths    `path:"shipsurance"`
	Labels          LabelPaths          `path:"labels"`
	Manifests       ManifestPaths       `path:"manifests"`
	PackagePickups  RootPath            `path:"package_pickups"`
	PackageTypes    RootPath            `path:"package_types"`
	Rates           RootPath            `path:"rates"`
	ServicePoints   RootPath            `path:"service_points"`
	Shipments       ShipmentPaths       `path:"shipments"`
	Tags            RootPath            `path:"tags"`
	Tokens          RootPath            `path:"tokens"`
	Tracking        RootPath            `path:"tracking"`
	Warehouses      RootPath            `path:"warehouses"`
	Webhooks        RootPath            `path:"webhooks"`
}

// VBetaPaths groups the /v-beta resource families.
type VBetaPaths struct {
	LTL LTLPaths `path:"ltl"`
}

// RootPath is a family addressed only through its collection path.
type RootPath struct {
	Root string `path:"root"`
}

// AddressPaths holds the address endpoints.
type AddressPaths struct {
	ParseAddress    string `path:"parse_address"`
	ValidateAddress string `path:"validate_address"`
}

// BatchPaths holds the batch endpoints.
type BatchPaths struct {
	Root              string `path:"root"`
	BatchByExternalID string `path:"batch_by_external_id"`
}

// CarrierAccountPaths holds the carrier connection endpoints.
type CarrierAccountPaths struct {
	Root string `path:"root"`
}

// CarrierPaths holds the carrier endpoints.
type CarrierPaths struct {
	Root string `path:"root"`
}

// ShipsurancePaths holds the Shipsurance insurance endpoints.
type ShipsurancePaths struct {
	Root     string `path:"root"`
	AddFunds string `path:"add_funds"`
	Balance  string `path:"balance"`
}

// LabelPaths holds the label endpoints.
type LabelPaths struct {
	Root                        string `path:"root"`
	LabelByExternalShipmentID   string `path:"label_by_external_shipment_id"`
	PurchaseLabelWithRateID     string `path:"purchase_label_with_rate_id"`
	PurchaseLabelWithShipmentID string `path:"purchase_label_with_shipment_id"`
}

// ManifestPaths holds the manifest endpoints.
type ManifestPaths struct {
	Root            string `path:"root"`
	ManifestRequest string `path:"manifest_request"`
}

// ShipmentPaths holds the shipment endpoints.
type ShipmentPaths struct {
	Root                 string `path:"root"`
	ShipmentByExternalID string `path:"shipment_by_external_id"`
	ParseShippingInfo    string `path:"parse_shipping_info"`
}

// LTLPaths holds the less-than-truckload freight endpoints.
type LTLPaths struct {
	Carriers   string `path:"carriers"`
	Quotes     string `path:"quotes"`
	SpotQuotes string `path:"spot_quotes"`
	Pickups    string `path:"pickups"`
	Tracking   string `path:"tracking"`
}

var registry = Registry{
	V1: V1Paths{
		Addresses: AddressPaths{
			ParseAddress:    "/v1/addresses/recognize",
			ValidateAddress: "/v1/addresses/validate",
		},
		Batches: BatchPaths{
			Root:              "/v1/batches",
			BatchByExternalID: "/v1/batches/external_batch_id",
		},
		CarrierAccounts: CarrierAccountPaths{
			Root: "/v1/connections/carriers",
		},
		Carriers: CarrierPaths{
			Root: "/v1/carriers",
		},
		Shipsurance: ShipsurancePaths{
			Root:     "/v1/connections/insurance/shipsurance",
			AddFunds: "/v1/insurance/shipsurance/add_funds",
			Balance:  "/v1/insurance/shipsurance/balance",
		},
		Labels: LabelPaths{
			Root:                        "/v1/labels",
			LabelByExternalShipmentID:   "/v1/labels/external_shipment_id",
			PurchaseLabelWithRateID:     "/v1/labels/rates",
			PurchaseLabelWithShipmentID: "/v1/labels/shipment",
		},
		Manifests: ManifestPaths{
			Root:            "/v1/manifests",
			ManifestRequest: "/v1/manifests/requests",
		},
		PackagePickups: RootPath{Root: "/v1/pickups"},
		PackageTypes:   RootPath{Root: "/v1/packages"},
		Rates:          RootPath{Root: "/v1/rates"},
		ServicePoints:  RootPath{Root: "/v1/service_points"},
		Shipments: ShipmentPaths{
			Root:                 "/v1/shipments",
			ShipmentByExternalID: "/v1/shipments/external_shipment_id",
			ParseShippingInfo:    "/v1/shipments/recognize",
		},
		Tags:       RootPath{Root: "/v1/tags"},
		Tokens:     RootPath{Root: "/v1/tokens/ephemeral"},
		Tracking:   RootPath{Root: "/v1/tracking"},
		Warehouses: RootPath{Root: "/v1/warehouses"},
		Webhooks:   RootPath{Root: "/v1/environment/webhooks"},
	},
	VBeta: VBetaPaths{
		LTL: LTLPaths{
			Carriers:   "/v-beta/ltl/carriers",
			Quotes:     "/v-beta/ltl/quotes",
			SpotQuotes: "/v-beta/ltl/spot-quotes",
			Pickups:    "/v-beta/ltl/pickups",
			Tracking:   "/v-beta/ltl/tracking",
		},
	},
}

// Paths returns the endpoint registry. The registry holds only value types,
// so the returned copy cannot be used to alter the table seen by other callers.
func Paths() Registry {
	return registry
}

// PathEntry is one (version, family, operation) row of the registry.
type PathEntry struct {
	Version   string
	Family    string
	Operation string
	Path      string
}

// Entries lists every registry row in declaration order.
func (r Registry) Entries() []PathEntry {
	var entries []PathEntry
	rv := reflect.ValueOf(r)
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		version := rt.Field(i).Tag.Get("path")
		ns := rv.Field(i)
		for j := 0; j < ns.NumField(); j++ {
			family := ns.Type().Field(j).Tag.Get("path")
			ops := ns.Field(j)
			for k := 0; k < ops.NumField(); k++ {
				entries = append(entries, PathEntry{
					Version:   version,
					Family:    family,
					Operation: ops.Type().Field(k).Tag.Get("path"),
					Path:      ops.Field(k).String(),
				})
			}
		}
	}
	return entries
}

// Lookup resolves a registry row by its tag names. It exists for callers that
// receive the operation as text (the CLI); code should use field selectors.
func (r Registry) Lookup(version, family, operation string) (string, bool) {
	for _, e := range r.Entries() {
		if e.Version == version && e.Family == family && e.Operation == operation {
			return e.Path, true
		}
	}
	return "", false
}
