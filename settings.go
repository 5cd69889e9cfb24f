package boxcutter

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gopasspw/gopass/pkg/appdir"
	"github.com/gopasspw/gopass/pkg/debug"
)

const (
	name      = "boxcutter"
	envPrefix = "BOXCUTTER"
)

// Settings are the user preferences of the command line tool.
//
// Settings are read in this order (later ones take precedence):
//   - built-in defaults (DefaultSettings)
//   - the per-user settings file `$XDG_CONFIG_HOME/boxcutter/config.json`
//   - the BOXCUTTER_INDENT and BOXCUTTER_MANIFEST environment variables
//
// The settings file is a JSON document, e.g.
//
//	{"indent": 4, "manifest": "*.manifest.json"}
type Settings struct {
	Indent   int
	Manifest string
}

// DefaultSettings returns the built-in settings.
func DefaultSettings() Settings {
	return Settings{
		Indent:   DefaultIndent,
		Manifest: DefaultManifest,
	}
}

// SettingsFile returns the location of the per-user settings file.
func SettingsFile() string {
	return filepath.Join(appdir.New(name).UserConfig(), "config.json")
}

// LoadSettings returns the effective settings. It never fails, unreadable or
// invalid input is logged and ignored.
func LoadSettings() Settings {
	s := DefaultSettings()
	s.LoadFile(SettingsFile())
	s.LoadEnv(envPrefix)

	return s
}

// LoadFile overlays the settings found in the JSON document at fn.
func (s *Settings) LoadFile(fn string) {
	doc, err := Load(fn)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			debug.V(3).Log("no settings file at %s", fn)
		} else {
			debug.Log("ignoring settings file %s: %s", fn, err)
		}

		return
	}

	if v, found := doc.Get("indent"); found {
		i, err := strconv.Atoi(v.Text())
		if err != nil || i < 0 {
			debug.Log("ignoring invalid indent %q in %s", v.Text(), fn)
		} else {
			s.Indent = i
		}
	}

	if v, found := doc.Get("manifest"); found && v.Kind == StringKind && v.String != "" {
		s.Manifest = v.String
	}

	debug.V(1).Log("loaded settings from %s: %+v", fn, *s)
}

// LoadEnv overlays the settings found in the environment variables
// <prefix>_INDENT and <prefix>_MANIFEST.
func (s *Settings) LoadEnv(prefix string) {
	if v := os.Getenv(prefix + "_INDENT"); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil || i < 0 {
			debug.Log("ignoring invalid %s_INDENT %q", prefix, v)
		} else {
			s.Indent = i
		}
	}

	if v := os.Getenv(prefix + "_MANIFEST"); v != "" {
		s.Manifest = v
	}
}
