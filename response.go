package shipengine

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shipengine/shipengine-go/internal/api"
	"github.com/shipengine/shipengine-go/internal/apierrors"
	"github.com/shipengine/shipengine-go/validate"
)

// Response is the decoded body of a successful API call. Field access goes
// through the embedded Value; Decode converts it into a typed struct.
type Response struct {
	Value
	StatusCode int
	Header     http.Header
}

func newResponse(result *api.Result) (*Response, error) {
	v, err := ParseValue(result.Body)
	if err != nil {
		return nil, &apierrors.DecodeError{Err: err, StatusCode: result.StatusCode}
	}
	return &Response{Value: v, StatusCode: result.StatusCode, Header: result.Header}, nil
}

// Kind identifies the JSON type held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "null"
	}
}

// Value is a read-only view over a decoded JSON tree. Numbers keep their
// literal form, so amounts survive without float rounding. Accessors never
// panic: a missing key or a type mismatch yields the zero value.
type Value struct {
	raw any
}

// ParseValue decodes JSON into a Value. Empty or whitespace-only input is a
// null Value, which is what ShipEngine returns for 204 responses.
func ParseValue(data []byte) (Value, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Value{}, nil
	}
	var v Value
	if err := v.UnmarshalJSON(data); err != nil {
		return Value{}, err
	}
	return v, nil
}

// Get walks the tree. Each step is a string object key or an int array index.
//
//	resp.Get("rate_response", "rates", 0, "shipping_amount", "amount")
func (v Value) Get(path ...any) Value {
	cur := v.raw
	for _, step := range path {
		switch key := step.(type) {
		case string:
			obj, ok := cur.(map[string]any)
			if !ok {
				return Value{}
			}
			cur = obj[key]
		case int:
			arr, ok := cur.([]any)
			if !ok || key < 0 || key >= len(arr) {
				return Value{}
			}
			cur = arr[key]
		default:
			return Value{}
		}
	}
	return Value{raw: cur}
}

// Exists reports whether the value is present and not JSON null.
func (v Value) Exists() bool {
	return v.raw != nil
}

// Kind returns the JSON type of the value.
func (v Value) Kind() Kind {
	switch v.raw.(type) {
	case bool:
		return KindBool
	case json.Number:
		return KindNumber
	case string:
		return KindString
	case []any:
		return KindArray
	case map[string]any:
		return KindObject
	default:
		return KindNull
	}
}

// String returns strings as-is and numbers and booleans in their JSON form.
func (v Value) String() string {
	switch x := v.raw.(type) {
	case string:
		return x
	case json.Number:
		return x.String()
	case bool:
		return strconv.FormatBool(x)
	default:
		return ""
	}
}

// Int returns the value as an integer, truncating fractions. Numeric strings
// are parsed. Numbers outside the int64 range yield 0.
func (v Value) Int() int64 {
	switch x := v.raw.(type) {
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return n
		}
		f, _ := x.Float64()
		if f >= math.MaxInt64 || f < math.MinInt64 {
			return 0
		}
		return int64(f)
	case string:
		n, err := strconv.ParseInt(x, 10, 64)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// Float returns the value as a float64. Numeric strings are parsed.
func (v Value) Float() float64 {
	switch x := v.raw.(type) {
	case json.Number:
		f, _ := x.Float64()
		return f
	case string:
		f, _ := strconv.ParseFloat(x, 64)
		return f
	default:
		return 0
	}
}

// Bool returns the value as a boolean. The strings "true" and "false" are
// accepted.
func (v Value) Bool() bool {
	switch x := v.raw.(type) {
	case bool:
		return x
	case string:
		b, _ := strconv.ParseBool(x)
		return b
	default:
		return false
	}
}

// Decimal returns the value as an exact decimal.
func (v Value) Decimal() decimal.Decimal {
	var s string
	switch x := v.raw.(type) {
	case json.Number:
		s = x.String()
	case string:
		s = x
	default:
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Money is ShipEngine's monetary value object.
type Money struct {
	Currency string
	Amount   decimal.Decimal
}

// Money reads a {"currency", "amount"} object.
func (v Value) Money() (Money, bool) {
	if v.Kind() != KindObject || !v.Get("amount").Exists() {
		return Money{}, false
	}
	return Money{
		Currency: v.Get("currency").String(),
		Amount:   v.Get("amount").Decimal(),
	}, true
}

const localDateTime = "2006-01-02T15:04:05.999999999"

// Time parses an ISO-8601 date-time string. Values without a timezone are
// interpreted as UTC.
func (v Value) Time() (time.Time, bool) {
	s, ok := v.raw.(string)
	if !ok {
		return time.Time{}, false
	}
	var (
		t   time.Time
		err error
	)
	switch {
	case validate.ISOWithTimezone(s):
		t, err = time.Parse(time.RFC3339Nano, s)
	case validate.ISONoTimezone(s):
		t, err = time.ParseInLocation(localDateTime, s, time.UTC)
	default:
		return time.Time{}, false
	}
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Array returns the elements of an array, or nil.
func (v Value) Array() []Value {
	arr, ok := v.raw.([]any)
	if !ok {
		return nil
	}
	out := make([]Value, len(arr))
	for i, item := range arr {
		out[i] = Value{raw: item}
	}
	return out
}

// Map returns the members of an object, or nil.
func (v Value) Map() map[string]Value {
	obj, ok := v.raw.(map[string]any)
	if !ok {
		return nil
	}
	out := make(map[string]Value, len(obj))
	for k, item := range obj {
		out[k] = Value{raw: item}
	}
	return out
}

// Keys returns the sorted member names of an object.
func (v Value) Keys() []string {
	obj, ok := v.raw.(map[string]any)
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of elements or members, or the length of a string.
func (v Value) Len() int {
	switch x := v.raw.(type) {
	case []any:
		return len(x)
	case map[string]any:
		return len(x)
	case string:
		return len(x)
	default:
		return 0
	}
}

// Raw returns the underlying tree: nil, bool, json.Number, string, []any or
// map[string]any.
func (v Value) Raw() any {
	return v.raw
}

// Decode converts the value into a typed structure using its json tags.
func (v Value) Decode(dst any) error {
	data, err := json.Marshal(v.raw)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dst)
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.raw)
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	if _, err := dec.Token(); err != io.EOF {
		return errors.New("unexpected data after JSON value")
	}
	v.raw = raw
	return nil
}
