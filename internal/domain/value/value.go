// Package value holds the typed metadata value stored in run containers.
package value

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"
)

// Kind is the closed set of value shapes.
type Kind uint8

// Value kinds. KindInvalid is the zero Value.
const (
	KindInvalid Kind = iota
	KindNumber
	KindString
	KindBool
	KindList
	KindStruct
)

// String returns the kind discriminator used by every storage backend.
func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindList:
		return "list"
	case KindStruct:
		return "struct"
	default:
		return "invalid"
	}
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "number":
		return KindNumber, nil
	case "string":
		return KindString, nil
	case "bool":
		return KindBool, nil
	case "list":
		return KindList, nil
	case "struct":
		return KindStruct, nil
	default:
		return KindInvalid, fmt.Errorf("unknown value kind %q", s)
	}
}

// Scalar reports whether values of this kind can appear in a predicate.
func (k Kind) Scalar() bool {
	return k == KindNumber || k == KindString || k == KindBool
}

// Value is an immutable tagged union. Only the field selected by kind is meaningful.
type Value struct {
	kind   Kind
	num    float64
	str    string
	b      bool
	list   []Value
	fields map[string]Value
}

// Number creates a number value.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// String creates a string value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Bool creates a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// List creates a list value. The slice is copied.
func List(items ...Value) Value {
	c := make([]Value, len(items))
	copy(c, items)
	return Value{kind: KindList, list: c}
}

// Struct creates a nested structure value. The map is copied.
func Struct(fields map[string]Value) Value {
	c := make(map[string]Value, len(fields))
	for k, v := range fields {
		c[k] = v
	}
	return Value{kind: KindStruct, fields: c}
}

// Kind returns the value shape.
func (v Value) Kind() Kind { return v.kind }

// IsValid reports whether v holds a value.
func (v Value) IsValid() bool { return v.kind != KindInvalid }

// Num returns the number payload (0 for other kinds).
func (v Value) Num() float64 { return v.num }

// Str returns the string payload ("" for other kinds).
func (v Value) Str() string { return v.str }

// Bool returns the boolean payload (false for other kinds).
func (v Value) Bool() bool { return v.b }

// Items returns the list elements.
func (v Value) Items() []Value { return v.list }

// Fields returns the struct fields.
func (v Value) Fields() map[string]Value { return v.fields }

// Validate rejects the zero value and non-finite numbers anywhere inside v.
// JSON cannot carry NaN or infinities, so no backend ever stores them.
func (v Value) Validate() error {
	switch v.kind {
	case KindNumber:
		if math.IsNaN(v.num) || math.IsInf(v.num, 0) {
			return fmt.Errorf("non-finite number %v is not supported", v.num)
		}
		return nil
	case KindString, KindBool:
		return nil
	case KindList:
		for i, item := range v.list {
			if err := item.Validate(); err != nil {
				return fmt.Errorf("list item %d: %w", i, err)
			}
		}
		return nil
	case KindStruct:
		for name, f := range v.fields {
			if err := f.Validate(); err != nil {
				return fmt.Errorf("field %q: %w", name, err)
			}
		}
		return nil
	default:
		return fmt.Errorf("value is empty")
	}
}

// Interface converts v to plain Go values: float64, string, bool, []any, map[string]any.
func (v Value) Interface() any {
	switch v.kind {
	case KindNumber:
		return v.num
	case KindString:
		return v.str
	case KindBool:
		return v.b
	case KindList:
		out := make([]any, len(v.list))
		for i, item := range v.list {
			out[i] = item.Interface()
		}
		return out
	case KindStruct:
		out := make(map[string]any, len(v.fields))
		for k, f := range v.fields {
			out[k] = f.Interface()
		}
		return out
	default:
		return nil
	}
}

// FromInterface converts decoded JSON-like data into a Value.
func FromInterface(x any) (Value, error) {
	switch t := x.(type) {
	case float64:
		return Number(t), nil
	case float32:
		return Number(float64(t)), nil
	case int:
		return Number(float64(t)), nil
	case int32:
		return Number(float64(t)), nil
	case int64:
		return Number(float64(t)), nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("parse number %q: %w", t.String(), err)
		}
		return Number(f), nil
	case string:
		return String(t), nil
	case bool:
		return Bool(t), nil
	case []any:
		items := make([]Value, len(t))
		for i, raw := range t {
			item, err := FromInterface(raw)
			if err != nil {
				return Value{}, fmt.Errorf("list item %d: %w", i, err)
			}
			items[i] = item
		}
		return Value{kind: KindList, list: items}, nil
	case map[string]any:
		fields := make(map[string]Value, len(t))
		for k, raw := range t {
			f, err := FromInterface(raw)
			if err != nil {
				return Value{}, fmt.Errorf("field %q: %w", k, err)
			}
			fields[k] = f
		}
		return Value{kind: KindStruct, fields: fields}, nil
	case nil:
		return Value{}, fmt.Errorf("null values are not supported")
	default:
		return Value{}, fmt.Errorf("unsupported value type %T", x)
	}
}

// MarshalJSON encodes v as a plain JSON value.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.kind == KindInvalid {
		return []byte("null"), nil
	}
	return json.Marshal(v.Interface())
}

// UnmarshalJSON decodes a plain JSON value.
func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("decode value: %w", err)
	}
	parsed, err := FromInterface(raw)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// String renders v for logs and error messages.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return fmt.Sprintf("%q", v.str)
	case KindInvalid:
		return "<invalid>"
	case KindStruct:
		keys := make([]string, 0, len(v.fields))
		for k := range v.fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return fmt.Sprintf("struct%v", keys)
	default:
		b, err := json.Marshal(v.Interface())
		if err != nil {
			return "<unprintable>"
		}
		return string(b)
	}
}

// KeyValue is a single named entry of a run container.
type KeyValue struct {
	Key   string `json:"key"`
	Value Value  `json:"value"`
}

// Validate checks the key and the value.
func (kv KeyValue) Validate() error {
	if kv.Key == "" {
		return fmt.Errorf("key is required")
	}
	if err := kv.Value.Validate(); err != nil {
		return fmt.Errorf("key %q: %w", kv.Key, err)
	}
	return nil
}
