package boxcutter

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSettings(t *testing.T) {
	t.Parallel()

	s := DefaultSettings()
	assert.Equal(t, 2, s.Indent)
	assert.Equal(t, "package.json", s.Manifest)
}

func TestSettingsLoadFile(t *testing.T) {
	t.Parallel()

	td := t.TempDir()

	testCases := []struct {
		name    string
		content string
		want    Settings
	}{
		{
			name:    "full",
			content: `{"indent":4,"manifest":"*.manifest.json"}`,
			want:    Settings{Indent: 4, Manifest: "*.manifest.json"},
		},
		{
			name:    "indent as string",
			content: `{"indent":"0"}`,
			want:    Settings{Indent: 0, Manifest: "package.json"},
		},
		{
			name:    "invalid indent",
			content: `{"indent":-1,"manifest":""}`,
			want:    DefaultSettings(),
		},
		{
			name:    "non string manifest",
			content: `{"manifest":42}`,
			want:    DefaultSettings(),
		},
		{
			name:    "broken file",
			content: `{"indent":`,
			want:    DefaultSettings(),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			fn := writeManifest(t, td, tc.name+".json", tc.content)
			s := DefaultSettings()
			s.LoadFile(fn)
			assert.Equal(t, tc.want, s)
		})
	}
}

func TestSettingsLoadMissingFile(t *testing.T) {
	t.Parallel()

	s := DefaultSettings()
	s.LoadFile("/nonexistent/boxcutter/config.json")
	assert.Equal(t, DefaultSettings(), s)
}

func TestSettingsLoadEnv(t *testing.T) {
	t.Setenv("BCTEST_INDENT", "4")
	t.Setenv("BCTEST_MANIFEST", "composer.json")

	s := DefaultSettings()
	s.LoadEnv("BCTEST")
	assert.Equal(t, Settings{Indent: 4, Manifest: "composer.json"}, s)

	t.Setenv("BCTEST_INDENT", "four")
	s = DefaultSettings()
	s.LoadEnv("BCTEST")
	assert.Equal(t, 2, s.Indent)
	assert.Equal(t, "composer.json", s.Manifest)
}

func TestLoadSettings(t *testing.T) {
	td := t.TempDir()
	t.Setenv("GOPASS_HOMEDIR", "")
	t.Setenv("XDG_CONFIG_HOME", td)
	t.Setenv("BOXCUTTER_INDENT", "")
	t.Setenv("BOXCUTTER_MANIFEST", "")

	rel, err := filepath.Rel(td, SettingsFile())
	if err != nil || strings.HasPrefix(rel, "..") {
		t.Skipf("settings file %s is not below XDG_CONFIG_HOME on this platform", SettingsFile())
	}

	assert.Equal(t, DefaultSettings(), LoadSettings())

	writeManifest(t, td, rel, `{"indent":4}`)
	t.Setenv("BOXCUTTER_MANIFEST", "bower.json")
	assert.Equal(t, Settings{Indent: 4, Manifest: "bower.json"}, LoadSettings())
}
