package record

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// Field is one column of a Record.
type Field struct {
	Key   string
	Value Value
}

// Record is one spreadsheet row. Fields keep column order; keys are unique.
type Record struct {
	Fields []Field
}

// New builds a record from fields in column order.
func New(fields ...Field) Record {
	return Record{Fields: fields}
}

// Get returns the value stored under key.
func (r Record) Get(key string) (Value, bool) {
	for _, f := range r.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}

	return Value{}, false
}

// Set replaces the value under key or appends a new column.
func (r *Record) Set(key string, v Value) {
	for i := range r.Fields {
		if r.Fields[i].Key == key {
			r.Fields[i].Value = v
			return
		}
	}

	r.Fields = append(r.Fields, Field{Key: key, Value: v})
}

// Keys returns the column names in order.
func (r Record) Keys() []string {
	keys := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		keys[i] = f.Key
	}

	return keys
}

// Len returns the number of columns.
func (r Record) Len() int { return len(r.Fields) }

// MarshalJSON writes the record as a JSON object in column order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, f := range r.Fields {
		if i > 0 {
			buf.WriteByte(',')
		}

		k, err := encodeString(f.Key)
		if err != nil {
			return nil, err
		}

		v, err := f.Value.MarshalJSON()
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", f.Key, err)
		}

		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object keeping key order. Nested objects and
// arrays are rejected: Raw Records hold scalars only.
func (r *Record) UnmarshalJSON(data []byte) error {
	dec := newDecoder(data)

	tok, err := dec.Token()
	if err != nil {
		return err
	}

	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("expected object, got %v", tok)
	}

	r.Fields = r.Fields[:0]
	seen := make(map[string]struct{})

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}

		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", keyTok)
		}

		valTok, err := dec.Token()
		if err != nil {
			return err
		}

		var v Value
		if err := v.fromToken(valTok); err != nil {
			return fmt.Errorf("column %q: %w", key, err)
		}

		if _, dup := seen[key]; dup {
			return fmt.Errorf("duplicate column %q", key)
		}

		seen[key] = struct{}{}
		r.Fields = append(r.Fields, Field{Key: key, Value: v})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	return nil
}

func newDecoder(data []byte) *json.Decoder {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	return dec
}

// encodeString JSON-encodes s without escaping <, > and &.
func encodeString(s string) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(s); err != nil {
		return nil, err
	}

	return UnescapeLineSeparators(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}

// UnescapeLineSeparators turns the \u2028 and \u2029 escapes encoding/json
// always writes back into raw characters, so encoded text keeps every
// non-ASCII character as written. Other escapes are left alone.
func UnescapeLineSeparators(b []byte) []byte {
	if !bytes.Contains(b, []byte(`\u202`)) {
		return b
	}

	out := make([]byte, 0, len(b))

	for i := 0; i < len(b); i++ {
		if b[i] != '\\' {
			out = append(out, b[i])
			continue
		}

		if i+5 < len(b) && b[i+1] == 'u' && string(b[i+2:i+5]) == "202" && (b[i+5] == '8' || b[i+5] == '9') {
			out = utf8.AppendRune(out, '\u2028'+rune(b[i+5]-'8'))
			i += 5

			continue
		}

		out = append(out, b[i])
		if i+1 < len(b) {
			i++
			out = append(out, b[i])
		}
	}

	return out
}

// ErrNotArray is returned when the intermediate document is not a JSON array.
var ErrNotArray = errors.New("intermediate document is not a JSON array")

// Decode reads a JSON array of records.
func Decode(r io.Reader) ([]Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, ErrNotArray
	}

	var records []Record
	if err := json.Unmarshal(trimmed, &records); err != nil {
		return nil, err
	}

	if records == nil {
		records = []Record{}
	}

	return records, nil
}

// Encode writes records as a 2-space indented JSON array with non-ASCII and
// HTML characters left unescaped. No trailing newline is written.
func Encode(w io.Writer, records []Record) error {
	if records == nil {
		records = []Record{}
	}

	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(records); err != nil {
		return err
	}

	_, err := w.Write(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))

	return err
}
