package resources

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/dottify/core"
	"github.com/npillmayer/dottify/core/fontregistry"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePackagedFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dottify.resources")
	defer teardown()
	//
	conf := testconfig.Conf{
		"app-key": "dottify-test",
	}
	f, err := ResolveFont(conf, "digits").Font()
	require.NoError(t, err)
	assert.Equal(t, 5, f.Height())
	assert.Equal(t, 3, f.Width())
	assert.True(t, f.Has('7'))
	assert.False(t, f.Has('a'))
	_, ok := fontregistry.GlobalRegistry().Lookup("digits")
	assert.True(t, ok, "expected resolved font to be registered")
}

func TestResolveFromFontDir(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dottify.resources")
	defer teardown()
	//
	dir := t.TempDir()
	writeFile(t, dir, "wedge.yaml", "\"<\": [\" O\", \"O \", \" O\"]\n\"\\0\": [\"OO\", \"OO\", \"OO\"]\n")
	conf := testconfig.Conf{
		"font-dir": filepath.Join(dir, "does-not-exist") + string(filepath.ListSeparator) + dir,
	}
	f, err := ResolveFont(conf, "Wedge").Font()
	require.NoError(t, err)
	assert.Equal(t, []string{" O", "O ", " O"}, f.GlyphFor('<').Rows())
}

func TestResolveFromPath(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dottify.resources")
	defer teardown()
	//
	fname := writeFile(t, t.TempDir(), "bar-font.json", `{"|": ["O", "O"], "\u0000": [" ", "O"]}`)
	f, err := ResolveFont(testconfig.Conf{}, fname).Font()
	require.NoError(t, err)
	assert.Equal(t, 2, f.Height())
	assert.True(t, f.Has('|'))
}

func TestResolveSameBaseNameFromDifferentDirs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dottify.resources")
	defer teardown()
	//
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "a"), 0755))
	require.NoError(t, os.Mkdir(filepath.Join(root, "b"), 0755))
	fa := writeFile(t, filepath.Join(root, "a"), "twin-font.json", `{"x": ["O"], "\u0000": ["O"]}`)
	fb := writeFile(t, filepath.Join(root, "b"), "twin-font.json", `{"x": ["O", "O"], "\u0000": ["O", "O"]}`)
	f, err := ResolveFont(testconfig.Conf{}, fa).Font()
	require.NoError(t, err)
	assert.Equal(t, 1, f.Height())
	f, err = ResolveFont(testconfig.Conf{}, fb).Font()
	require.NoError(t, err)
	assert.Equal(t, 2, f.Height(), "expected font of b/, not the one registered from a/")
}

func TestResolveBrokenFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dottify.resources")
	defer teardown()
	//
	fname := writeFile(t, t.TempDir(), "broken-font.json", `{"a": ["O", "OO"], "\u0000": ["O", "O"]}`)
	f, err := ResolveFont(testconfig.Conf{}, fname).Font()
	assert.Nil(t, f)
	assert.True(t, core.IsConfigurationError(err), "expected configuration error, got %v", err)
}

func TestResolveMissingFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dottify.resources")
	defer teardown()
	//
	f, err := ResolveFont(testconfig.Conf{}, "no-such-dot-font").Font()
	require.NotNil(t, f, "expected built-in font as a substitute")
	assert.Equal(t, 7, f.Height())
	assert.Equal(t, core.EMISSING, core.Code(err))
	//
	f, err = ResolveFont(nil, "").Font()
	require.NoError(t, err)
	assert.Equal(t, 7, f.Height())
}

// ---------------------------------------------------------------------------

func writeFile(t *testing.T, dir, name, content string) string {
	fname := filepath.Join(dir, name)
	if err := os.WriteFile(fname, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return fname
}
