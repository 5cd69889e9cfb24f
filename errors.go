package boxcutter

import "errors"

var (
	// ErrInvalidPath indicates a malformed path expression or an index step
	// that does not resolve while setting a value.
	ErrInvalidPath = errors.New("invalid path")
	// ErrMaterialize indicates an existing node whose shape conflicts with the
	// next step of a path (e.g. a key step into a string).
	ErrMaterialize = errors.New("can not materialize path")
	// ErrManifestNotFound indicates no manifest was found in any parent directory.
	ErrManifestNotFound = errors.New("manifest not found")
	// ErrDecode indicates a document could not be decoded.
	ErrDecode = errors.New("failed to decode document")
	// ErrCreateDir indicates a document directory could not be created.
	ErrCreateDir = errors.New("failed to create document directory")
	// ErrWriteDocument indicates a document could not be written.
	ErrWriteDocument = errors.New("failed to write document")
)
