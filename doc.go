// Package boxcutter reads and writes values inside JSON documents, typically
// project manifests such as package.json, using simple path expressions.
//
// # Path expressions
//
// A path expression is a list of keys separated by dots. A key may carry a
// single array index in brackets, whitespace inside the brackets is ignored:
//
//   - `version` - the top-level member "version"
//   - `config.test` - the member "test" of the object "config"
//   - `array[0]` or `array[ 0 ]` - the first element of the array "array"
//   - `a.b[2].c` - the member "c" of the third element of "a.b"
//
// Chained indices (`a[0][1]`) and leading indices (`[0]`) are not supported,
// such segments are used verbatim as keys. Empty expressions and empty
// segments (`a..b`, `a.`) are rejected with ErrInvalidPath.
//
// # Usage
//
// Load a document, read and modify it and write it back:
//
//	doc, err := boxcutter.Load("package.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//	if v, ok := doc.Get("config.test"); ok {
//		fmt.Println(v.Text())
//	}
//	if err := doc.Set("version", "1.0.1"); err != nil {
//		log.Fatal(err)
//	}
//	if err := doc.Write(); err != nil {
//		log.Fatal(err)
//	}
//
// Get reports absence with a false second return value, a stored null is
// found like any other value. Set creates missing intermediate objects and
// modifies the tree in place.
//
// The functions Get and Set work on any *Node tree, independent of a
// Document:
//
//	root, _ := boxcutter.DecodeJSON(strings.NewReader(`{"a":{}}`))
//	_ = boxcutter.Set(root, "a.b.c", boxcutter.NewString("x"))
//
// # Locating manifests
//
// FindManifest walks from a directory up to the filesystem root and returns
// the first file whose name matches a glob pattern (default package.json).
//
// # Error Handling
//
// Use errors.Is to detect common error categories:
//
//	if err := doc.Set("name.first", "x"); err != nil {
//		if errors.Is(err, boxcutter.ErrMaterialize) {
//			// "name" holds a scalar
//		}
//	}
//
// # Known limitations
//
// * Set can not grow an array through a non-terminal index step
// * Set grows an array by at most MaxArrayGrowth null elements
// * Documents are not safe for concurrent modification
// * YAML comments are not preserved
package boxcutter
