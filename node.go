package boxcutter

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Kind is the type tag of a Node.
type Kind int

const (
	// NullKind is the JSON null value.
	NullKind Kind = iota
	// BoolKind is a JSON boolean.
	BoolKind
	// NumberKind is a JSON number.
	NumberKind
	// StringKind is a JSON string.
	StringKind
	// ArrayKind is an ordered sequence of nodes.
	ArrayKind
	// ObjectKind is an ordered mapping from string keys to nodes.
	ObjectKind
)

func (k Kind) String() string {
	switch k {
	case NullKind:
		return "null"
	case BoolKind:
		return "bool"
	case NumberKind:
		return "number"
	case StringKind:
		return "string"
	case ArrayKind:
		return "array"
	case ObjectKind:
		return "object"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Node is one node of a document tree.
//
// Only the fields matching Kind are meaningful:
//   - BoolKind uses Bool
//   - NumberKind uses Number, which keeps the literal text (e.g. "1.0")
//   - StringKind uses String
//   - ArrayKind uses Elems
//   - ObjectKind uses Fields, in insertion order
//
// Note: Node is not thread-safe. Concurrent reads of an unmodified tree are
// fine, but callers must serialize any mutation.
type Node struct {
	Kind   Kind
	Bool   bool
	Number json.Number
	String string
	Elems  []*Node
	Fields []*Field
}

// Field is a member of an object node.
type Field struct {
	Key   string
	Value *Node
}

// NewNull returns a null node.
func NewNull() *Node {
	return &Node{Kind: NullKind}
}

// NewBool returns a boolean node.
func NewBool(b bool) *Node {
	return &Node{Kind: BoolKind, Bool: b}
}

// NewNumber returns a number node holding the given literal.
func NewNumber(n json.Number) *Node {
	return &Node{Kind: NumberKind, Number: n}
}

// NewInt returns a number node for an integer.
func NewInt(i int64) *Node {
	return NewNumber(json.Number(strconv.FormatInt(i, 10)))
}

// NewFloat returns a number node for a float.
func NewFloat(f float64) *Node {
	return NewNumber(json.Number(strconv.FormatFloat(f, 'g', -1, 64)))
}

// NewString returns a string node.
func NewString(s string) *Node {
	return &Node{Kind: StringKind, String: s}
}

// NewArray returns an array node with the given elements.
func NewArray(elems ...*Node) *Node {
	if elems == nil {
		elems = []*Node{}
	}

	return &Node{Kind: ArrayKind, Elems: elems}
}

// NewObject returns an empty object node.
func NewObject() *Node {
	return &Node{Kind: ObjectKind, Fields: []*Field{}}
}

// IsScalar returns true for null, bool, number and string nodes.
func (n *Node) IsScalar() bool {
	return n.Kind != ArrayKind && n.Kind != ObjectKind
}

// Len returns the number of elements or members. Scalars have length 0.
func (n *Node) Len() int {
	switch n.Kind {
	case ArrayKind:
		return len(n.Elems)
	case ObjectKind:
		return len(n.Fields)
	default:
		return 0
	}
}

// Member returns the value stored under key. It returns false if n is not an
// object or has no such member.
func (n *Node) Member(key string) (*Node, bool) {
	if n.Kind != ObjectKind {
		return nil, false
	}
	for _, f := range n.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}

	return nil, false
}

// SetMember stores value under key. An existing member keeps its position,
// a new member is appended. It is a no-op for non-object nodes.
func (n *Node) SetMember(key string, value *Node) {
	if n.Kind != ObjectKind {
		return
	}
	for _, f := range n.Fields {
		if f.Key == key {
			f.Value = value

			return
		}
	}
	n.Fields = append(n.Fields, &Field{Key: key, Value: value})
}

// DeleteMember removes key from an object. It returns true if the key was present.
func (n *Node) DeleteMember(key string) bool {
	if n.Kind != ObjectKind {
		return false
	}
	for i, f := range n.Fields {
		if f.Key == key {
			n.Fields = append(n.Fields[:i], n.Fields[i+1:]...)

			return true
		}
	}

	return false
}

// Keys returns the member names of an object in insertion order.
func (n *Node) Keys() []string {
	if n.Kind != ObjectKind {
		return nil
	}
	keys := make([]string, 0, len(n.Fields))
	for _, f := range n.Fields {
		keys = append(keys, f.Key)
	}

	return keys
}

// Elem returns the element at index i. It returns false if n is not an
// array or i is out of range.
func (n *Node) Elem(i int) (*Node, bool) {
	if n.Kind != ArrayKind || i < 0 || i >= len(n.Elems) {
		return nil, false
	}

	return n.Elems[i], true
}

// SetElem stores value at index i, growing the array with null elements if
// i is past the end. It is a no-op for non-array nodes or negative indices.
func (n *Node) SetElem(i int, value *Node) {
	if n.Kind != ArrayKind || i < 0 {
		return
	}
	for len(n.Elems) <= i {
		n.Elems = append(n.Elems, NewNull())
	}
	n.Elems[i] = value
}

// Text renders a scalar the way it would be printed on a command line:
// strings without quotes, numbers as their literal, booleans and null as
// keywords. Arrays and objects are rendered as compact JSON.
func (n *Node) Text() string {
	switch n.Kind {
	case NullKind:
		return "null"
	case BoolKind:
		return strconv.FormatBool(n.Bool)
	case NumberKind:
		return n.Number.String()
	case StringKind:
		return n.String
	default:
		b, err := n.MarshalJSON()
		if err != nil {
			return ""
		}

		return string(b)
	}
}

// Clone returns a deep copy of n.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := *n
	if n.Elems != nil {
		c.Elems = make([]*Node, len(n.Elems))
		for i, e := range n.Elems {
			c.Elems[i] = e.Clone()
		}
	}
	if n.Fields != nil {
		c.Fields = make([]*Field, len(n.Fields))
		for i, f := range n.Fields {
			c.Fields[i] = &Field{Key: f.Key, Value: f.Value.Clone()}
		}
	}

	return &c
}
