package boxcutter

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
)

// Format is an on-disk document encoding.
type Format int

const (
	// JSONFormat is the default format.
	JSONFormat Format = iota
	// YAMLFormat is used for .yaml and .yml files.
	YAMLFormat
)

func (f Format) String() string {
	switch f {
	case YAMLFormat:
		return "yaml"
	default:
		return "json"
	}
}

// ParseFormat parses a format name: json/j or yaml/yml/y.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json", "j":
		return JSONFormat, nil
	case "yaml", "yml", "y":
		return YAMLFormat, nil
	default:
		return JSONFormat, fmt.Errorf("unknown format %q", s)
	}
}

// FormatFor picks the format from the extension of fn. Anything that is not
// a YAML extension is treated as JSON.
func FormatFor(fn string) Format {
	switch strings.ToLower(filepath.Ext(fn)) {
	case ".yaml", ".yml":
		return YAMLFormat
	default:
		return JSONFormat
	}
}

// Decode reads a document in the given format.
func Decode(r io.Reader, f Format) (*Node, error) {
	if f == JSONFormat {
		return DecodeJSON(r)
	}

	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	var v any
	if err := yaml.UnmarshalWithOptions(buf, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	n, err := FromValue(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return n, nil
}

// Encode renders a document in the given format with indent spaces per
// level. YAML output falls back to two spaces if indent is zero or less and
// always ends with a newline.
func Encode(n *Node, f Format, indent int) ([]byte, error) {
	if f == JSONFormat {
		return EncodeJSON(n, indent)
	}

	if indent <= 0 {
		indent = 2
	}

	buf, err := yaml.MarshalWithOptions(toYAML(n), yaml.Indent(indent))
	if err != nil {
		return nil, fmt.Errorf("failed to encode yaml: %w", err)
	}
	if !bytes.HasSuffix(buf, []byte("\n")) {
		buf = append(buf, '\n')
	}

	return buf, nil
}

// toYAML converts a node into values the yaml encoder understands while
// keeping member order.
func toYAML(n *Node) any {
	if n == nil {
		return nil
	}

	switch n.Kind {
	case BoolKind:
		return n.Bool
	case NumberKind:
		s := n.Number.String()
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return i
		}
		if u, err := strconv.ParseUint(s, 10, 64); err == nil {
			return u
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}

		return s
	case StringKind:
		return n.String
	case ArrayKind:
		out := make([]any, 0, len(n.Elems))
		for _, e := range n.Elems {
			out = append(out, toYAML(e))
		}

		return out
	case ObjectKind:
		out := make(yaml.MapSlice, 0, len(n.Fields))
		for _, f := range n.Fields {
			out = append(out, yaml.MapItem{Key: f.Key, Value: toYAML(f.Value)})
		}

		return out
	default:
		return nil
	}
}
