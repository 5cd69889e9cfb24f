package boxcutter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/goccy/go-yaml"
	"github.com/gopasspw/gopass/pkg/debug"
	"github.com/gopasspw/gopass/pkg/set"
)

var reJSONNumber = regexp.MustCompile(`^-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)

// DecodeJSON reads a single JSON value from r. Object member order and the
// literal text of numbers are preserved. Trailing data after the value is an
// error.
func DecodeJSON(r io.Reader) (*Node, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	n, err := decodeValue(dec)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty input", ErrDecode)
		}

		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	if tok, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecode, err)
		}

		return nil, fmt.Errorf("%w: unexpected trailing data %v", ErrDecode, tok)
	}

	return n, nil
}

func decodeValue(dec *json.Decoder) (*Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", t)
		}
	case nil:
		return NewNull(), nil
	case bool:
		return NewBool(t), nil
	case json.Number:
		return NewNumber(t), nil
	case string:
		return NewString(t), nil
	default:
		return nil, fmt.Errorf("unexpected token %v (%T)", tok, tok)
	}
}

func decodeObject(dec *json.Decoder) (*Node, error) {
	obj := NewObject()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key %v", tok)
		}
		v, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		obj.SetMember(key, v)
	}
	// closing brace
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return obj, nil
}

func decodeArray(dec *json.Decoder) (*Node, error) {
	arr := NewArray()
	for dec.More() {
		v, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		arr.Elems = append(arr.Elems, v)
	}
	// closing bracket
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return arr, nil
}

// EncodeJSON renders n as JSON text indented by indent spaces per level.
// An indent of zero or less produces compact output. HTML characters are
// not escaped and no trailing newline is added.
func EncodeJSON(n *Node, indent int) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, n); err != nil {
		return nil, err
	}
	if indent <= 0 {
		return buf.Bytes(), nil
	}

	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", strings.Repeat(" ", indent)); err != nil {
		return nil, fmt.Errorf("failed to indent document: %w", err)
	}

	return out.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, n *Node) error {
	if n == nil {
		buf.WriteString("null")

		return nil
	}

	switch n.Kind {
	case NullKind:
		buf.WriteString("null")
	case BoolKind:
		buf.WriteString(strconv.FormatBool(n.Bool))
	case NumberKind:
		if n.Number == "" {
			buf.WriteString("0")

			return nil
		}
		if !reJSONNumber.MatchString(n.Number.String()) {
			return fmt.Errorf("invalid number literal %q", n.Number)
		}
		buf.WriteString(n.Number.String())
	case StringKind:
		return writeJSONString(buf, n.String)
	case ArrayKind:
		buf.WriteByte('[')
		for i, e := range n.Elems {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, e); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case ObjectKind:
		buf.WriteByte('{')
		for i, f := range n.Fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONString(buf, f.Key); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeJSON(buf, f.Value); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("unknown node kind %s", n.Kind)
	}

	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	// Encode always terminates the value with a newline
	buf.Truncate(buf.Len() - 1)

	return nil
}

// MarshalJSON implements json.Marshaler.
func (n *Node) MarshalJSON() ([]byte, error) {
	return EncodeJSON(n, 0)
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *Node) UnmarshalJSON(data []byte) error {
	d, err := DecodeJSON(bytes.NewReader(data))
	if err != nil {
		return err
	}
	*n = *d

	return nil
}

// Equal reports whether n and other hold the same JSON value. Member order
// is not significant.
func (n *Node) Equal(other *Node) bool {
	a, err := n.MarshalJSON()
	if err != nil {
		return false
	}
	b, err := other.MarshalJSON()
	if err != nil {
		return false
	}

	return jsonpatch.Equal(a, b)
}

// FromValue converts a Go value into a node.
//
// Nodes are deep copied so the result never shares structure with v.
// Supported without a JSON round trip are nil, *Node, bool, string,
// json.Number, the builtin integer and float types, []any, []string,
// map[string]any, map[string]string and yaml.MapSlice. Plain maps are
// converted with their keys sorted so the result is deterministic. Anything
// else is marshaled with encoding/json and decoded again.
func FromValue(v any) (*Node, error) {
	switch t := v.(type) {
	case nil:
		return NewNull(), nil
	case *Node:
		if t == nil {
			return NewNull(), nil
		}

		return t.Clone(), nil
	case Node:
		return t.Clone(), nil
	case bool:
		return NewBool(t), nil
	case string:
		return NewString(t), nil
	case json.Number:
		return NewNumber(t), nil
	case int:
		return NewInt(int64(t)), nil
	case int8:
		return NewInt(int64(t)), nil
	case int16:
		return NewInt(int64(t)), nil
	case int32:
		return NewInt(int64(t)), nil
	case int64:
		return NewInt(t), nil
	case uint:
		return NewNumber(json.Number(strconv.FormatUint(uint64(t), 10))), nil
	case uint8:
		return NewInt(int64(t)), nil
	case uint16:
		return NewInt(int64(t)), nil
	case uint32:
		return NewInt(int64(t)), nil
	case uint64:
		return NewNumber(json.Number(strconv.FormatUint(t, 10))), nil
	case float32:
		return NewFloat(float64(t)), nil
	case float64:
		return NewFloat(t), nil
	case []any:
		arr := NewArray()
		for _, e := range t {
			en, err := FromValue(e)
			if err != nil {
				return nil, err
			}
			arr.Elems = append(arr.Elems, en)
		}

		return arr, nil
	case []string:
		arr := NewArray()
		for _, e := range t {
			arr.Elems = append(arr.Elems, NewString(e))
		}

		return arr, nil
	case map[string]any:
		obj := NewObject()
		for _, k := range set.SortedKeys(t) {
			vn, err := FromValue(t[k])
			if err != nil {
				return nil, err
			}
			obj.SetMember(k, vn)
		}

		return obj, nil
	case map[string]string:
		obj := NewObject()
		for _, k := range set.SortedKeys(t) {
			obj.SetMember(k, NewString(t[k]))
		}

		return obj, nil
	case yaml.MapSlice:
		obj := NewObject()
		for _, item := range t {
			vn, err := FromValue(item.Value)
			if err != nil {
				return nil, err
			}
			obj.SetMember(fmt.Sprint(item.Key), vn)
		}

		return obj, nil
	}

	debug.V(3).Log("converting %T through encoding/json", v)

	buf, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("can not convert %T: %w", v, err)
	}

	return DecodeJSON(bytes.NewReader(buf))
}

// Interface converts n back into plain Go values: nil, bool, json.Number,
// string, []any and map[string]any. Member order is lost in the conversion.
func (n *Node) Interface() any {
	if n == nil {
		return nil
	}

	switch n.Kind {
	case BoolKind:
		return n.Bool
	case NumberKind:
		return n.Number
	case StringKind:
		return n.String
	case ArrayKind:
		out := make([]any, 0, len(n.Elems))
		for _, e := range n.Elems {
			out = append(out, e.Interface())
		}

		return out
	case ObjectKind:
		out := make(map[string]any, len(n.Fields))
		for _, f := range n.Fields {
			out[f.Key] = f.Value.Interface()
		}

		return out
	default:
		return nil
	}
}
