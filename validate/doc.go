// Package validate holds the input checks shared across the SDK: the
// two-letter country code set and the ISO-8601 date-time patterns.
//
// None of these functions return errors for malformed input except
// [CheckCountry]; an invalid value is an ordinary outcome, not a failure.
package validate
