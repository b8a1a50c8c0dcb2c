package validate

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrInvalidCountry is returned by CheckCountry for codes outside the set.
var ErrInvalidCountry = errors.New("invalid country code")

// countryCodes are the ISO 3166-1 alpha-2 codes ShipEngine accepts.
var countryCodes = []string{
	"AF", "AX", "AL", "DZ", "AS", "AD", "AO", "AI", "AQ", "AG", "AR", "AM",
	"AW", "AU", "AT", "AZ", "BS", "BH", "BD", "BB", "BY", "BE", "BZ", "BJ",
	"BM", "BT", "BO", "BA", "BW", "BV", "BR", "IO", "BN", "BG", "BF", "BI",
	"KH", "CM", "CA", "CV", "KY", "CF", "TD", "CL", "CN", "CX", "CC", "CO",
	"KM", "CG", "CD", "CK", "CR", "CI", "HR", "CU", "CY", "CZ", "DK", "DJ",
	"DM", "DO", "EC", "EG", "SV", "GQ", "ER", "EE", "ET", "FK", "FO", "FJ",
	"FI", "FR", "GF", "PF", "TF", "GA", "GM", "GE", "DE", "GH", "GI", "GR",
	"GL", "GD", "GP", "GU", "GT", "GG", "GN", "GW", "GY", "HT", "HM", "VA",
	"HN", "HK", "HU", "IS", "IN", "ID", "IR", "IQ", "IE", "IM", "IL", "IT",
	"JM", "JP", "JE", "JO", "KZ", "KE", "KI", "KR", "KW", "KG", "LA", "LV",
	"LB", "LS", "LR", "LY", "LI", "LT", "LU", "MO", "MK", "MG", "MW", "MY",
	"MV", "ML", "MT", "MH", "MQ", "MR", "MU", "YT", "MX", "FM", "MD", "MC",
	"MN", "ME", "MS", "MA", "MZ", "MM", "NA", "NR", "NP", "NL", "NC", "NZ",
	"NI", "NE", "NG", "NU", "NF", "MP", "NO", "OM", "PK", "PW", "PS", "PA",
	"PG", "PY", "PE", "PH", "PN", "PL", "PT", "PR", "QA", "RE", "RO", "RU",
	"RW", "BL", "SH", "KN", "LC", "MF", "PM", "VC", "WS", "SM", "ST", "SA",
	"SN", "RS", "SC", "SL", "SG", "SK", "SI", "SB", "SO", "ZA", "GS", "ES",
	"LK", "SD", "SR", "SJ", "SZ", "SE", "CH", "SY", "TW", "TJ", "TZ", "TH",
	"TL", "TG", "TK", "TO", "TT", "TN", "TR", "TM", "TC", "TV", "UG", "UA",
	"AE", "GB", "US", "UM", "UY", "UZ", "VU", "VE", "VN", "VG", "VI", "WF",
	"EH", "YE", "ZM", "ZW",
}

var countrySet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(countryCodes))
	for _, c := range countryCodes {
		set[c] = struct{}{}
	}
	return set
}()

// Country reports whether code is a known two-letter country code. The
// comparison is case-insensitive; malformed input simply returns false.
func Country(code string) bool {
	_, ok := countrySet[strings.ToUpper(code)]
	return ok
}

// CheckCountry is Country in error form, for callers that collect errors.
func CheckCountry(code string) error {
	if Country(code) {
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidCountry, code)
}

// Countries returns the known codes in alphabetical order.
func Countries() []string {
	out := slices.Clone(countryCodes)
	slices.Sort(out)
	return out
}
