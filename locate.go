package boxcutter

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gobwas/glob"
	"github.com/gopasspw/gopass/pkg/debug"
)

// DefaultManifest is the manifest name searched for by default.
const DefaultManifest = "package.json"

// FindManifest searches dir and all of its parents for a regular file whose
// name matches pattern and returns the path of the first match.
//
// pattern is a glob (e.g. "package.json" or "*.manifest.json"). Within a
// single directory the lexically first matching name wins. An empty pattern
// means DefaultManifest.
//
// Returns ErrManifestNotFound if the filesystem root is reached without a
// match.
func FindManifest(dir, pattern string) (string, error) {
	if pattern == "" {
		pattern = DefaultManifest
	}

	g, err := glob.Compile(pattern)
	if err != nil {
		return "", fmt.Errorf("invalid manifest pattern %q: %w", pattern, err)
	}

	dir, err = filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for {
		if fn, found := matchInDir(dir, g); found {
			debug.V(1).Log("found manifest %s", fn)

			return fn, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("%w: no %s in any parent directory", ErrManifestNotFound, pattern)
}

func matchInDir(dir string, g glob.Glob) (string, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		debug.V(3).Log("can not read %s: %s", dir, err)

		return "", false
	}

	// ReadDir returns the entries sorted by name
	for _, e := range entries {
		if !g.Match(e.Name()) {
			continue
		}

		fn := filepath.Join(dir, e.Name())
		fi, err := os.Stat(fn)
		if err != nil || !fi.Mode().IsRegular() {
			debug.V(3).Log("skipping %s, not a regular file", fn)

			continue
		}

		return fn, true
	}

	return "", false
}
