package boxcutter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gopasspw/gopass/pkg/debug"
)

// DefaultIndent is the indentation used when saving a document unless
// another one is requested.
const DefaultIndent = 2

// Document is a JSON (or YAML) document loaded from a single file.
//
// Document offers path based access to the tree and takes care of
// persisting it again. Set only changes the in-memory tree; call Write or
// Save to persist the changes.
//
// Note: Document is not thread-safe. Concurrent Get calls are fine as long
// as nothing modifies the document, but Set, Unset and Load must not run
// concurrently with anything else.
//
// Typical Usage:
//
//	doc, err := Load("package.json")
//	if err != nil { ... }
//	v, ok := doc.Get("config.test")
//	if err := doc.Set("version", "1.0.1"); err != nil { ... }
//	if err := doc.Write(); err != nil { ... }
type Document struct {
	path   string
	format Format
	indent int
	root   *Node
}

// NewDocument returns an empty document holding an empty object.
func NewDocument() *Document {
	return &Document{
		indent: DefaultIndent,
		root:   NewObject(),
	}
}

// Load reads the document stored at fn. The format is picked from the file
// extension.
func Load(fn string) (*Document, error) {
	fh, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer fh.Close() //nolint:errcheck

	d, err := ParseDocument(fh, FormatFor(fn))
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", fn, err)
	}
	d.path = fn

	debug.V(1).Log("loaded %s document from %s", d.format, fn)

	return d, nil
}

// ParseDocument reads a document from r.
func ParseDocument(r io.Reader, f Format) (*Document, error) {
	root, err := Decode(r, f)
	if err != nil {
		return nil, err
	}

	return &Document{
		format: f,
		indent: DefaultIndent,
		root:   root,
	}, nil
}

// Path returns the file the document was loaded from, if any.
func (d *Document) Path() string {
	return d.path
}

// Format returns the on-disk format of the document.
func (d *Document) Format() Format {
	return d.format
}

// Root returns the root node of the document. The returned node is shared,
// changes to it are changes to the document.
func (d *Document) Root() *Node {
	d.ensureRoot()

	return d.root
}

// SetIndent changes the indentation used by Bytes, Write and Save.
func (d *Document) SetIndent(indent int) {
	d.indent = indent
}

// IsEmpty returns true if the document holds nothing or an empty object.
func (d *Document) IsEmpty() bool {
	if d == nil || d.root == nil {
		return true
	}

	return d.root.Kind == ObjectKind && len(d.root.Fields) == 0
}

func (d *Document) ensureRoot() {
	if d.root == nil {
		d.root = NewObject()
	}
}

// Get returns the value at the path expression key.
//
// Returns (node, true) if the key is found, (nil, false) otherwise. A stored
// null is reported as found.
//
// Example:
//
//	v, ok := doc.Get("array[0]")
//	if ok {
//	  fmt.Printf("first: %s\n", v.Text())
//	}
func (d *Document) Get(key string) (*Node, bool) {
	d.ensureRoot()

	return Get(d.root, key)
}

// GetString returns the value at key rendered as text. Strings are returned
// without quotes, objects and arrays as compact JSON.
func (d *Document) GetString(key string) (string, bool) {
	v, found := d.Get(key)
	if !found {
		return "", false
	}

	return v.Text(), true
}

// IsSet returns true if key resolves to a value, even if it is null.
func (d *Document) IsSet(key string) bool {
	_, found := d.Get(key)

	return found
}

// Set stores value at the path expression key, creating missing
// intermediate objects. value is converted with FromValue, a *Node is
// stored as a copy.
//
// If key already holds an equal value the document is left untouched.
//
// Errors:
//   - ErrInvalidPath if key is malformed or an index step does not resolve
//   - ErrMaterialize if an existing value is in the way
//
// Example:
//
//	if err := doc.Set("config.test", "BAR"); err != nil {
//	  log.Fatal(err)
//	}
func (d *Document) Set(key string, value any) error {
	p, err := ParsePath(key)
	if err != nil {
		return err
	}

	n, err := FromValue(value)
	if err != nil {
		return fmt.Errorf("can not set %q: %w", key, err)
	}

	d.ensureRoot()

	// already present at the same value, nothing to change
	if cur, found := p.Get(d.root); found && cur.Equal(n) {
		debug.V(1).Log("key %q already holds this %s. Not updating.", key, n.Kind)

		return nil
	}

	if err := p.Set(d.root, n); err != nil {
		return err
	}

	debug.V(3).Log("set %q to %s", key, n.Kind)

	return nil
}

// Unset removes the value at key. Removing a key that does not exist is a
// no-op. Array elements are removed and later elements move up.
func (d *Document) Unset(key string) error {
	p, err := ParsePath(key)
	if err != nil {
		return err
	}

	d.ensureRoot()

	parent := d.root
	if len(p) > 1 {
		var found bool
		parent, found = p[:len(p)-1].Get(d.root)
		if !found {
			return nil
		}
	}

	s := p[len(p)-1]
	switch s.Kind {
	case KeyStep:
		parent.DeleteMember(s.Key)
	case IndexStep:
		if _, found := parent.Elem(s.Index); found {
			parent.Elems = append(parent.Elems[:s.Index], parent.Elems[s.Index+1:]...)
		}
	}

	return nil
}

// Bytes renders the document in its format with the configured indentation.
func (d *Document) Bytes() ([]byte, error) {
	d.ensureRoot()

	return Encode(d.root, d.format, d.indent)
}

// SaveOption customizes Save.
type SaveOption func(*saveOptions)

type saveOptions struct {
	indent *int
	format *Format
}

// WithIndent overrides the indentation for one Save call.
func WithIndent(indent int) SaveOption {
	return func(o *saveOptions) {
		o.indent = &indent
	}
}

// WithFormat overrides the format for one Save call.
func WithFormat(f Format) SaveOption {
	return func(o *saveOptions) {
		o.format = &f
	}
}

// Write persists the document to the file it was loaded from.
func (d *Document) Write() error {
	if d.path == "" {
		return fmt.Errorf("%w: document has no path", ErrWriteDocument)
	}

	return d.Save(d.path)
}

// Save writes the document to fn, creating the parent directory if needed.
// The permissions of an existing file are kept.
func (d *Document) Save(fn string, opts ...SaveOption) error {
	o := &saveOptions{}
	for _, opt := range opts {
		opt(o)
	}

	indent := d.indent
	if o.indent != nil {
		indent = *o.indent
	}
	format := d.format
	if o.format != nil {
		format = *o.format
	}

	d.ensureRoot()

	buf, err := Encode(d.root, format, indent)
	if err != nil {
		return fmt.Errorf("%w to %s: %w", ErrWriteDocument, fn, err)
	}

	return writeFile(fn, buf)
}

func writeFile(fn string, buf []byte) error {
	if err := os.MkdirAll(filepath.Dir(fn), 0o700); err != nil {
		return fmt.Errorf("%w %q for %q: %w", ErrCreateDir, filepath.Dir(fn), fn, err)
	}

	mode := os.FileMode(0o644)
	if fi, err := os.Stat(fn); err == nil {
		mode = fi.Mode().Perm()
	}

	debug.V(3).Log("writing document to %s: \n--------------\n%s\n--------------", fn, string(buf))

	if err := os.WriteFile(fn, buf, mode); err != nil {
		return fmt.Errorf("%w to %s: %w", ErrWriteDocument, fn, err)
	}

	debug.V(1).Log("wrote document to %s (%d bytes)", fn, len(buf))

	return nil
}

// Diff renders the document before and after fn runs. It is used to preview
// changes without writing them.
func (d *Document) Diff(fn func(*Document) error) (before, after []byte, err error) { //nolint:nonamedreturns
	before, err = d.Bytes()
	if err != nil {
		return nil, nil, err
	}
	if err := fn(d); err != nil {
		return nil, nil, err
	}
	after, err = d.Bytes()
	if err != nil {
		return nil, nil, err
	}

	return before, after, nil
}
