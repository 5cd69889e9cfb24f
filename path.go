package boxcutter

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/gopasspw/gopass/pkg/debug"
)

// reIndexedKey matches a segment of the form key[index]. Whitespace is
// allowed inside the brackets and only one index per segment is recognized.
var reIndexedKey = regexp.MustCompile(`^([^\[\]]+)\[\s*([0-9]+)\s*\]$`)

// StepKind distinguishes object member access from array element access.
type StepKind int

const (
	// KeyStep addresses a member of an object.
	KeyStep StepKind = iota
	// IndexStep addresses an element of an array.
	IndexStep
)

func (k StepKind) String() string {
	switch k {
	case KeyStep:
		return "key"
	case IndexStep:
		return "index"
	default:
		return fmt.Sprintf("StepKind(%d)", int(k))
	}
}

// Step is a single hop of a Path.
type Step struct {
	Kind  StepKind
	Key   string
	Index int
}

// String renders the step the way it would appear in a path expression.
func (s Step) String() string {
	if s.Kind == IndexStep {
		return "[" + strconv.Itoa(s.Index) + "]"
	}

	return s.Key
}

// Path is a parsed path expression. A valid Path always has at least one step.
type Path []Step

// String returns the canonical path expression, e.g. "a.b[2].c".
func (p Path) String() string {
	var sb strings.Builder
	for i, s := range p {
		if s.Kind == KeyStep && i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(s.String())
	}

	return sb.String()
}

// ParsePath splits a path expression into its steps.
//
// The expression is split on '.' and each segment becomes a key step. A
// segment of the form key[N] (with optional whitespace around N) becomes a
// key step followed by an index step. Any other segment, including ones with
// unmatched or chained brackets, is used verbatim as a key.
//
// Empty expressions and empty segments (e.g. "a..b" or "a.") are rejected
// with ErrInvalidPath.
//
// Examples:
//   - "config.test" -> [key config, key test]
//   - "array[ 0 ]" -> [key array, index 0]
//   - "a.b[2].c" -> [key a, key b, index 2, key c]
func ParsePath(expr string) (Path, error) {
	if expr == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidPath)
	}

	segments := strings.Split(expr, ".")
	p := make(Path, 0, len(segments))
	for i, seg := range segments {
		if seg == "" {
			return nil, fmt.Errorf("%w: empty segment %d in %q", ErrInvalidPath, i, expr)
		}

		m := reIndexedKey.FindStringSubmatch(seg)
		if m == nil {
			p = append(p, Step{Kind: KeyStep, Key: seg})

			continue
		}

		idx, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, fmt.Errorf("%w: index %q in %q: %w", ErrInvalidPath, m[2], expr, err)
		}
		p = append(p, Step{Kind: KeyStep, Key: m[1]}, Step{Kind: IndexStep, Index: idx})
	}

	debug.V(3).Log("parsed path %q into %d steps", expr, len(p))

	return p, nil
}

// MustParsePath is like ParsePath but panics on invalid input. It is meant
// for package level variables and tests.
func MustParsePath(expr string) Path {
	p, err := ParsePath(expr)
	if err != nil {
		panic(err)
	}

	return p
}
