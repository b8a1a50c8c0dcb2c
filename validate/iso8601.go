package validate

import "regexp"

const isoDateTime = `^(-?(?:[1-9][0-9]*)?[0-9]{4})-(1[0-2]|0[1-9])-(3[01]|0[1-9]|[12][0-9])` +
	`T(2[0-3]|[01][0-9]):([0-5][0-9]):([0-5][0-9])(\.[0-9]+)?`

var (
	// ISOWithTimezonePattern matches an ISO-8601 date-time carrying Z or a
	// ±hh:mm offset.
	ISOWithTimezonePattern = regexp.MustCompile(isoDateTime + `(Z|[+-](?:2[0-3]|[01][0-9]):[0-5][0-9])$`)

	// ISONoTimezonePattern matches an ISO-8601 date-time without the Z
	// designator. A numeric offset is tolerated.
	ISONoTimezonePattern = regexp.MustCompile(isoDateTime + `([+-](?:2[0-3]|[01][0-9]):[0-5][0-9])?$`)
)

// ISOWithTimezone reports whether s is a date-time with an explicit timezone.
func ISOWithTimezone(s string) bool {
	return ISOWithTimezonePattern.MatchString(s)
}

// ISONoTimezone reports whether s is a date-time that does not use the Z
// designator.
func ISONoTimezone(s string) bool {
	return ISONoTimezonePattern.MatchString(s)
}
