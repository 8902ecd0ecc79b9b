package ir

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Value is a sealed interface over the record value types.
// Only Null, String, Number, Bool, Array and *Object implement it.
type Value interface {
	value() // Sealed - only these types implement it
}

// Null represents a JSON null that is present in a record.
// A missing member is a nil Value, not Null.
type Null struct{}

func (Null) value() {}

// String is a string value.
type String string

func (String) value() {}

// Number is a numeric value. Datasets carry fractional points and levels,
// so numbers are float64 throughout.
type Number float64

func (Number) value() {}

// Bool is a boolean value.
type Bool bool

func (Bool) value() {}

// Array is an ordered list of values.
type Array []Value

func (Array) value() {}

// Member is one named entry of an Object.
type Member struct {
	Key   string
	Value Value
}

// O is a shorthand for Member for ergonomic construction.
// Example: NewObject(O("task", String("Cut a log")), O("points", Number(10)))
func O(key string, v Value) Member {
	return Member{Key: key, Value: v}
}

// Object is a mapping of member names to values that remembers insertion
// order. The zero value is an empty object ready to use.
type Object struct {
	members []Member
	index   map[string]int
}

func (*Object) value() {}

// NewObject creates an Object from members in the given order.
// A repeated key keeps its first position and takes the last value.
func NewObject(members ...Member) *Object {
	obj := &Object{}
	for _, m := range members {
		obj.Set(m.Key, m.Value)
	}
	return obj
}

// Set assigns a member, appending it when the key is new.
func (o *Object) Set(key string, v Value) {
	if o.index == nil {
		o.index = make(map[string]int)
	}
	if i, ok := o.index[key]; ok {
		o.members[i].Value = v
		return
	}
	o.index[key] = len(o.members)
	o.members = append(o.members, Member{Key: key, Value: v})
}

// Get returns the member with exactly this key.
func (o *Object) Get(key string) (Value, bool) {
	if o == nil {
		return nil, false
	}
	i, ok := o.index[key]
	if !ok {
		return nil, false
	}
	return o.members[i].Value, true
}

// GetFold returns the first member, in insertion order, whose key equals
// name under case folding. An exact match later in the object does not win
// over an earlier folded one.
func (o *Object) GetFold(name string) (Value, bool) {
	if o == nil {
		return nil, false
	}
	for _, m := range o.members {
		if strings.EqualFold(m.Key, name) {
			return m.Value, true
		}
	}
	return nil, false
}

// Keys returns member names in insertion order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	keys := make([]string, len(o.members))
	for i, m := range o.members {
		keys[i] = m.Key
	}
	return keys
}

// Members returns a copy of the members in insertion order.
func (o *Object) Members() []Member {
	if o == nil {
		return nil
	}
	return append([]Member(nil), o.members...)
}

// MarshalJSON writes the object in insertion order using the canonical
// encoding.
func (o *Object) MarshalJSON() ([]byte, error) {
	return MarshalCanonical(o)
}

// MarshalJSON implements json.Marshaler for Null.
func (Null) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

// MarshalJSON implements json.Marshaler for Number. Non-finite numbers
// encode as null, matching the canonical form.
func (n Number) MarshalJSON() ([]byte, error) {
	return MarshalCanonical(n)
}

// MarshalJSON implements json.Marshaler for Array.
func (a Array) MarshalJSON() ([]byte, error) {
	return MarshalCanonical(a)
}

// DecodeJSON parses a JSON document into a Value, keeping object members in
// document order. Trailing data after the first value is an error.
func DecodeJSON(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decodeJSONValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unexpected data after top-level value")
	}
	return v, nil
}

// decodeJSONValue reads exactly one value from the token stream.
func decodeJSONValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			obj := &Object{}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("object key must be a string, got %T", keyTok)
				}
				val, err := decodeJSONValue(dec)
				if err != nil {
					return nil, fmt.Errorf("object[%q]: %w", key, err)
				}
				obj.Set(key, val)
			}
			if _, err := dec.Token(); err != nil { // closing '}'
				return nil, err
			}
			return obj, nil
		case '[':
			arr := Array{}
			for dec.More() {
				val, err := decodeJSONValue(dec)
				if err != nil {
					return nil, fmt.Errorf("array[%d]: %w", len(arr), err)
				}
				arr = append(arr, val)
			}
			if _, err := dec.Token(); err != nil { // closing ']'
				return nil, err
			}
			return arr, nil
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", t)
		}
	case string:
		return String(t), nil
	case json.Number:
		f, err := strconv.ParseFloat(t.String(), 64)
		if err != nil {
			// Out-of-range literals saturate to +Inf or -Inf.
			var numErr *strconv.NumError
			if !errors.As(err, &numErr) || !errors.Is(numErr.Err, strconv.ErrRange) {
				return nil, fmt.Errorf("invalid number %s: %w", t, err)
			}
		}
		return Number(f), nil
	case bool:
		return Bool(t), nil
	case nil:
		return Null{}, nil
	default:
		return nil, fmt.Errorf("unsupported JSON token %T", tok)
	}
}
