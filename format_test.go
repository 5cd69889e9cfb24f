package boxcutter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFor(t *testing.T) {
	t.Parallel()

	for fn, f := range map[string]Format{
		"package.json":       JSONFormat,
		"/a/b/composer.json": JSONFormat,
		"pubspec.yaml":       YAMLFormat,
		"CHART.YML":          YAMLFormat,
		"manifest":           JSONFormat,
	} {
		assert.Equal(t, f, FormatFor(fn), fn)
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]Format{
		"json": JSONFormat,
		"J":    JSONFormat,
		"yaml": YAMLFormat,
		"yml":  YAMLFormat,
		"y":    YAMLFormat,
	} {
		f, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, f, in)
	}

	_, err := ParseFormat("toml")
	require.Error(t, err)

	assert.Equal(t, "json", JSONFormat.String())
	assert.Equal(t, "yaml", YAMLFormat.String())
}

func TestDecodeYAML(t *testing.T) {
	t.Parallel()

	in := `name: demo
version: 1.0.0
config:
  test: FOO
  retries: 3
array:
  - a
  - b
`
	root, err := Decode(strings.NewReader(in), YAMLFormat)
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "version", "config", "array"}, root.Keys())

	v, found := Get(root, "config.test")
	require.True(t, found)
	assert.Equal(t, "FOO", v.Text())

	v, found = Get(root, "config.retries")
	require.True(t, found)
	assert.Equal(t, NumberKind, v.Kind)
	assert.Equal(t, "3", v.Text())

	v, found = Get(root, "array[1]")
	require.True(t, found)
	assert.Equal(t, "b", v.Text())
}

func TestDecodeYAMLInvalid(t *testing.T) {
	t.Parallel()

	_, err := Decode(strings.NewReader("a: [1, 2"), YAMLFormat)
	require.ErrorIs(t, err, ErrDecode)
}

func TestEncodeYAMLRoundTrip(t *testing.T) {
	t.Parallel()

	root := mustDecode(t, `{"name":"demo","config":{"test":"FOO","n":3,"f":1.5,"ok":true,"none":null},"array":["a","b"]}`)

	buf, err := Encode(root, YAMLFormat, 2)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(buf), "\n"))
	assert.True(t, strings.HasPrefix(string(buf), "name: demo\n"), string(buf))

	again, err := Decode(strings.NewReader(string(buf)), YAMLFormat)
	require.NoError(t, err)
	assert.True(t, root.Equal(again), string(buf))
	assert.Equal(t, root.Keys(), again.Keys())
}

func TestEncodeJSONFormat(t *testing.T) {
	t.Parallel()

	root := mustDecode(t, `{"a":1}`)
	buf, err := Encode(root, JSONFormat, 0)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(buf))
}
