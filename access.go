package boxcutter

import (
	"fmt"

	"github.com/gopasspw/gopass/pkg/debug"
)

// Get returns the node at the path expression expr below root.
//
// Returns (node, true) if the path resolves, (nil, false) otherwise. A path
// that does not resolve is not an error: missing members, out of range
// indices, type mismatches and malformed expressions all report absence.
// A stored JSON null is found and returned as a NullKind node.
//
// Example:
//
//	v, ok := boxcutter.Get(root, "config.test")
//	if ok {
//	  fmt.Println(v.Text())
//	}
func Get(root *Node, expr string) (*Node, bool) {
	p, err := ParsePath(expr)
	if err != nil {
		debug.V(1).Log("can not resolve %q: %s", expr, err)

		return nil, false
	}

	return p.Get(root)
}

// Set stores value at the path expression expr below root, creating missing
// intermediate objects along the way. root is modified in place.
//
// See Path.Set for the exact semantics and errors.
func Set(root *Node, expr string, value *Node) error {
	p, err := ParsePath(expr)
	if err != nil {
		return err
	}

	return p.Set(root, value)
}

// Get walks the path starting at root and returns the node it reaches.
func (p Path) Get(root *Node) (*Node, bool) {
	cur := root
	for i, s := range p {
		if cur == nil {
			return nil, false
		}

		var found bool
		switch s.Kind {
		case KeyStep:
			cur, found = cur.Member(s.Key)
		case IndexStep:
			cur, found = cur.Elem(s.Index)
		}
		if !found {
			debug.V(3).Log("%q does not resolve at step %d (%s)", p.String(), i, s)

			return nil, false
		}
	}

	if cur == nil || len(p) == 0 {
		return nil, false
	}

	return cur, true
}

// MaxArrayGrowth is the largest number of null elements Set inserts to reach
// an index past the end of an array.
const MaxArrayGrowth = 1024

// Set stores value at the location described by the path. value is stored
// without copying, pass a Clone to store a node that is already part of the
// tree.
//
// Behavior:
//   - Missing members named by non-terminal key steps are created as empty objects
//   - Non-terminal index steps must address an existing array element
//   - A terminal key step overwrites or appends the member
//   - A terminal index step past the end of an array grows it, filling gaps with null,
//     by at most MaxArrayGrowth elements
//   - A nil value stores null
//
// A failing Set leaves the tree unchanged.
//
// Errors:
//   - ErrInvalidPath for an empty path, an unresolvable non-terminal index step
//     or a terminal index too far past the end of an array
//   - ErrMaterialize if an existing node has the wrong shape for the next step,
//     e.g. a key step into a string or an index step into an object
func (p Path) Set(root *Node, value *Node) error {
	if len(p) == 0 {
		return fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	if root == nil {
		return fmt.Errorf("%w: no document", ErrMaterialize)
	}
	if value == nil {
		value = NewNull()
	}

	// the first materialized member, removed again if the path turns out
	// to be unusable so a failed Set leaves the tree as it was
	var createdKey string
	var createdIn *Node
	rollback := func(err error) error {
		if createdIn != nil {
			createdIn.DeleteMember(createdKey)
		}

		return err
	}

	cur := root
	last := len(p) - 1
	for i, s := range p[:last] {
		next, isNew, err := descend(cur, s, p[:i+1])
		if err != nil {
			return rollback(err)
		}
		if isNew && createdIn == nil {
			createdKey = s.Key
			createdIn = cur
		}
		cur = next
	}

	s := p[last]
	switch s.Kind {
	case KeyStep:
		if cur.Kind != ObjectKind {
			return rollback(fmt.Errorf("%w: can not set key %q on %s at %q", ErrMaterialize, s.Key, cur.Kind, p[:last].String()))
		}
		cur.SetMember(s.Key, value)
	case IndexStep:
		if cur.Kind != ArrayKind {
			return rollback(fmt.Errorf("%w: can not set index %d on %s at %q", ErrMaterialize, s.Index, cur.Kind, p[:last].String()))
		}
		if s.Index-len(cur.Elems) > MaxArrayGrowth {
			return rollback(fmt.Errorf("%w: index %d at %q is more than %d past the end of the array (length %d)", ErrInvalidPath, s.Index, p[:last].String(), MaxArrayGrowth, len(cur.Elems)))
		}
		cur.SetElem(s.Index, value)
	}

	debug.V(3).Log("set %q to %s", p.String(), value.Kind)

	return nil
}

// descend performs one non-terminal step of Set, materializing a missing
// object member if needed. The bool reports whether the node was just created.
func descend(cur *Node, s Step, prefix Path) (*Node, bool, error) {
	switch s.Kind {
	case KeyStep:
		if cur.Kind != ObjectKind {
			return nil, false, fmt.Errorf("%w: %q is a %s, not an object", ErrMaterialize, prefix[:len(prefix)-1].String(), cur.Kind)
		}
		if next, found := cur.Member(s.Key); found {
			return next, false, nil
		}

		debug.V(3).Log("materializing object at %q", prefix.String())
		next := NewObject()
		cur.SetMember(s.Key, next)

		return next, true, nil
	case IndexStep:
		if cur.Kind != ArrayKind {
			return nil, false, fmt.Errorf("%w: %q is a %s, not an array", ErrMaterialize, prefix[:len(prefix)-1].String(), cur.Kind)
		}
		if next, found := cur.Elem(s.Index); found {
			return next, false, nil
		}

		return nil, false, fmt.Errorf("%w: index %d out of range at %q", ErrInvalidPath, s.Index, prefix.String())
	default:
		return nil, false, fmt.Errorf("%w: unknown step kind %s", ErrInvalidPath, s.Kind)
	}
}
