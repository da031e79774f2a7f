package resp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Type is the leading marker byte of a RESP frame.
type Type byte

// resp type define
const (
	TypeSimple  Type = '+'
	TypeError   Type = '-'
	TypeInteger Type = ':'
	TypeBulk    Type = '$'
	TypeArray   Type = '*'
)

var typeNames = map[Type]string{
	TypeSimple:  "simple",
	TypeError:   "error",
	TypeInteger: "integer",
	TypeBulk:    "bulk",
	TypeArray:   "array",
}

// String returns the type name.
func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return "unknown(" + strconv.Quote(string(rune(t))) + ")"
}

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) {
	s, ok := typeNames[t]
	if !ok {
		return nil, errors.Errorf("resp: unknown type %d", t)
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Type) UnmarshalText(b []byte) error {
	for tp, s := range typeNames {
		if s == string(b) {
			*t = tp
			return nil
		}
	}
	return errors.Errorf("resp: unknown type %q", b)
}

// Error is an error reply sent by the server.
type Error string

func (e Error) Error() string {
	return string(e)
}

// Value is one decoded RESP frame.
// Str holds the payload of simple strings, errors and bulk strings.
// Null marks the nil bulk string and the nil array.
type Value struct {
	Type  Type    `json:"type" msgpack:"type"`
	Str   string  `json:"str,omitempty" msgpack:"str,omitempty"`
	Int   int64   `json:"int,omitempty" msgpack:"int,omitempty"`
	Array []Value `json:"array,omitempty" msgpack:"array,omitempty"`
	Null  bool    `json:"null,omitempty" msgpack:"null,omitempty"`
}

// SimpleString returns a '+' value.
func SimpleString(s string) Value { return Value{Type: TypeSimple, Str: s} }

// ErrorValue returns a '-' value.
func ErrorValue(s string) Value { return Value{Type: TypeError, Str: s} }

// Integer returns a ':' value.
func Integer(i int64) Value { return Value{Type: TypeInteger, Int: i} }

// BulkString returns a '$' value.
func BulkString(s string) Value { return Value{Type: TypeBulk, Str: s} }

// NilBulk returns the nil bulk string.
func NilBulk() Value { return Value{Type: TypeBulk, Null: true} }

// Array returns a '*' value holding vs.
func Array(vs ...Value) Value {
	if len(vs) == 0 {
		vs = nil
	}
	return Value{Type: TypeArray, Array: vs}
}

// NilArray returns the nil array.
func NilArray() Value { return Value{Type: TypeArray, Null: true} }

// IsError reports whether v is an error reply.
func (v Value) IsError() bool {
	return v.Type == TypeError
}

// Interface converts v into plain Go values: string, int64, []interface{},
// Error or nil.
func (v Value) Interface() interface{} {
	switch v.Type {
	case TypeSimple:
		return v.Str
	case TypeError:
		return Error(v.Str)
	case TypeInteger:
		return v.Int
	case TypeBulk:
		if v.Null {
			return nil
		}
		return v.Str
	case TypeArray:
		if v.Null {
			return nil
		}
		out := make([]interface{}, len(v.Array))
		for i, e := range v.Array {
			out[i] = e.Interface()
		}
		return out
	}
	return nil
}

// String renders v on a single line for logs.
func (v Value) String() string {
	var sb strings.Builder
	v.format(&sb)
	return sb.String()
}

func (v Value) format(sb *strings.Builder) {
	switch v.Type {
	case TypeSimple:
		sb.WriteString(v.Str)
	case TypeError:
		sb.WriteString("(error) ")
		sb.WriteString(v.Str)
	case TypeInteger:
		sb.WriteString("(integer) ")
		sb.WriteString(strconv.FormatInt(v.Int, 10))
	case TypeBulk:
		if v.Null {
			sb.WriteString("(nil)")
			return
		}
		sb.WriteString(strconv.Quote(v.Str))
	case TypeArray:
		if v.Null {
			sb.WriteString("(nil array)")
			return
		}
		sb.WriteByte('[')
		for i, e := range v.Array {
			if i > 0 {
				sb.WriteString(", ")
			}
			e.format(sb)
		}
		sb.WriteByte(']')
	default:
		fmt.Fprintf(sb, "(%s)", v.Type)
	}
}

// UnmarshalJSON decodes v either from its own tagged form or from a plain
// JSON value: null, a string, a number, a list, or {"error": "..."}.
func (v *Value) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return errors.WithStack(err)
	}
	if m, ok := raw.(map[string]interface{}); ok {
		if _, tagged := m["type"]; tagged {
			type value Value
			var tv value
			if err := json.Unmarshal(b, &tv); err != nil {
				return errors.WithStack(err)
			}
			*v = Value(tv)
			return nil
		}
	}
	pv, err := fromPlain(raw)
	if err != nil {
		return err
	}
	*v = pv
	return nil
}

func fromPlain(raw interface{}) (Value, error) {
	switch x := raw.(type) {
	case nil:
		return NilBulk(), nil
	case string:
		return BulkString(x), nil
	case bool:
		if x {
			return Integer(1), nil
		}
		return Integer(0), nil
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return Integer(i), nil
		}
		return BulkString(x.String()), nil
	case []interface{}:
		vs := make([]Value, len(x))
		for i, e := range x {
			ev, err := fromPlain(e)
			if err != nil {
				return Value{}, err
			}
			vs[i] = ev
		}
		return Array(vs...), nil
	case map[string]interface{}:
		if e, ok := x["error"].(string); ok {
			return ErrorValue(e), nil
		}
	}
	return Value{}, errors.Errorf("unsupported reply value %v", raw)
}
