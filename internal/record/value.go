package record

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Kind is the scalar kind of a cell value.
type Kind int

const (
	KindNull Kind = iota
	KindNumber
	KindText
	KindBool
)

// String returns the kind name used in diagnostics.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	case KindBool:
		return "bool"
	default:
		return "unknown"
	}
}

// Value is a single cell value.
type Value struct {
	Kind Kind
	// Num holds the canonical decimal form of a number (json.Number syntax).
	Num json.Number
	// Text holds the value of a text cell.
	Text string
	// Bool holds the value of a bool cell.
	Bool bool
}

// Null returns the empty value.
func Null() Value { return Value{Kind: KindNull} }

// Text returns a text value.
func Text(s string) Value { return Value{Kind: KindText, Text: s} }

// Bool returns a bool value.
func Bool(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// Int returns a number value holding an integer.
func Int(n int64) Value {
	return Value{Kind: KindNumber, Num: json.Number(strconv.FormatInt(n, 10))}
}

// Float returns a number value. Integral floats are stored without a
// fractional part so 3.0 and 3 encode identically.
func Float(f float64) (Value, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}, fmt.Errorf("number %v is not representable in JSON", f)
	}

	return Value{Kind: KindNumber, Num: json.Number(FormatNumber(f))}, nil
}

// ParseNumber parses decimal text into a number value.
func ParseNumber(s string) (Value, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Value{}, err
	}

	return Float(f)
}

// FormatNumber renders f in plain decimal notation, dropping ".0" from
// integral values.
func FormatNumber(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatInt(int64(f), 10)
	}

	return strconv.FormatFloat(f, 'f', -1, 64)
}

// IsNull reports whether the value is empty.
func (v Value) IsNull() bool { return v.Kind == KindNull }

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindNull:
		return []byte("null"), nil
	case KindNumber:
		return []byte(v.Num), nil
	case KindBool:
		return strconv.AppendBool(nil, v.Bool), nil
	case KindText:
		return encodeString(v.Text)
	default:
		return nil, fmt.Errorf("unknown value kind %d", v.Kind)
	}
}

// UnmarshalJSON implements json.Unmarshaler for scalar JSON values.
func (v *Value) UnmarshalJSON(data []byte) error {
	dec := newDecoder(data)

	tok, err := dec.Token()
	if err != nil {
		return err
	}

	return v.fromToken(tok)
}

func (v *Value) fromToken(tok json.Token) error {
	switch t := tok.(type) {
	case nil:
		*v = Null()
	case json.Number:
		*v = Value{Kind: KindNumber, Num: t}
	case string:
		*v = Text(t)
	case bool:
		*v = Bool(t)
	default:
		return fmt.Errorf("expected scalar value, got %v", tok)
	}

	return nil
}
