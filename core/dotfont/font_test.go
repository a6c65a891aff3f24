package dotfont

import (
	"strings"
	"testing"

	"github.com/npillmayer/dottify/core"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"
)

func TestDefaultFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dottify.fonts")
	defer teardown()
	//
	f := Default()
	assert.Equal(t, 7, f.Height())
	assert.Equal(t, 5, f.Width())
	assert.True(t, f.Has('a'))
	assert.True(t, f.Has('A'))
	assert.True(t, f.Has(' '))
	assert.False(t, f.Has(Fallback), "fallback sentinel should not count as mapped")
	assert.True(t, f.GlyphFor('q').Equal(f.GlyphFor('Q')))
	assert.Equal(t, []string{
		"  O  ",
		" O O ",
		"O   O",
		"O   O",
		"OOOOO",
		"O   O",
		"O   O",
	}, f.GlyphFor('A').Rows())
	assert.Len(t, f.Runes(), 2*26+4)
}

func TestUnmappedCharactersGetFallback(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dottify.fonts")
	defer teardown()
	//
	f := Default()
	fb := f.FallbackGlyph()
	assert.Equal(t, "OO OO", fb.Rows()[2])
	for _, r := range "#1~é\x01€😀" {
		assert.True(t, f.GlyphFor(r).Equal(fb), "expected fallback glyph for %#U", r)
	}
	assert.False(t, f.GlyphFor('x').Equal(fb))
}

func TestMultiCharacterKeys(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dottify.fonts")
	defer teardown()
	//
	f, err := LoadSpec(Spec{
		{"xyz", []string{"O ", " O"}},
		{"z", []string{"OO", "  "}},
		{string(Fallback), []string{"OO", "OO"}},
	})
	require.NoError(t, err)
	assert.True(t, f.GlyphFor('x').Equal(f.GlyphFor('y')))
	assert.Equal(t, []string{"OO", "  "}, f.GlyphFor('z').Rows(), "later entry should win")
	assert.Equal(t, []rune{'x', 'y', 'z'}, f.Runes())
}

func TestLoadSpecFailures(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dottify.fonts")
	defer teardown()
	//
	fallback := Entry{string(Fallback), []string{"OO", "OO"}}
	cases := map[string]Spec{
		"missing fallback": {{"a", []string{"OO", "OO"}}},
		"ragged rows":      {{"a", []string{"OO", "O"}}, fallback},
		"empty glyph":      {{"a", []string{}}, fallback},
		"empty key":        {{"", []string{"OO", "OO"}}, fallback},
		"height differs":   {{"a", []string{"OO", "OO", "OO"}}, fallback},
		"width differs":    {{"a", []string{"OOO", "OOO"}}, fallback},
		"empty table":      {},
	}
	for name, spec := range cases {
		f, err := LoadSpec(spec)
		assert.Nil(t, f, name)
		if assert.Error(t, err, name) {
			assert.True(t, core.IsConfigurationError(err), "%s: expected configuration error, got %v", name, err)
		}
	}
}

func TestRowsAreCopies(t *testing.T) {
	f := Default()
	rows := f.GlyphFor('i').Rows()
	rows[0] = "OOOOO"
	assert.Equal(t, "  O  ", f.GlyphFor('i').Rows()[0])
}

func TestGlyphCellAccess(t *testing.T) {
	g := Default().GlyphFor('l')
	assert.True(t, g.Dot(0, 0))
	assert.False(t, g.Dot(0, 1))
	assert.True(t, g.Dot(6, 4))
	assert.False(t, g.Dot(7, 0))
	assert.False(t, g.Dot(0, -1))
}

func TestLoadJSON(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dottify.fonts")
	defer teardown()
	//
	table := `{
  "xX":     ["O O", " O ", "O O"],
  "-":      ["   ", "OOO", "   "],
  "\u0000": ["OOO", "O O", "OOO"]
}`
	f, err := Load(strings.NewReader(table))
	require.NoError(t, err)
	assert.Equal(t, 3, f.Height())
	assert.Equal(t, 3, f.Width())
	assert.Equal(t, []string{"O O", " O ", "O O"}, f.GlyphFor('X').Rows())
	assert.Equal(t, []string{"OOO", "O O", "OOO"}, f.GlyphFor('?').Rows())
}

func TestLoadYAML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dottify.fonts")
	defer teardown()
	//
	table := `
"!":
  - " # "
  - "   "
  - " # "
"\0":
  - "###"
  - "# #"
  - "###"
`
	f, err := Load(strings.NewReader(table))
	require.NoError(t, err)
	assert.Equal(t, []string{" O ", "   ", " O "}, f.GlyphFor('!').Rows(), "any non-space marks a dot")
}

func TestSingleQuotedFallbackKey(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dottify.fonts")
	defer teardown()
	//
	_, err := Load(strings.NewReader(`{'aA': ['O'], '\u0000': ['O']}`))
	require.Error(t, err)
	assert.True(t, core.IsConfigurationError(err))
	assert.Contains(t, err.Error(), "double-quoted")
	//
	f, err := Load(strings.NewReader(`{'aA': ['O'], "\u0000": ['O']}`))
	require.NoError(t, err)
	assert.True(t, f.Has('a'))
}

func TestLoadMalformed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dottify.fonts")
	defer teardown()
	//
	inputs := []string{
		``,
		`{ "a": [`,
		`["OO", "OO"]`,
		`{"a": "OO", "\u0000": ["OO"]}`,
		`{"a": [["O"]], "\u0000": ["O"]}`,
		`{"a": ["O", "OO"], "\u0000": ["O", "O"]}`,
		`{"a": ["O", "O"]}`,
	}
	for i, in := range inputs {
		_, err := Load(strings.NewReader(in))
		if assert.Error(t, err, "input #%d", i) {
			assert.True(t, core.IsConfigurationError(err), "input #%d: %v", i, err)
		}
	}
}

func TestFromFace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dottify.fonts")
	defer teardown()
	//
	f, err := FromFace(basicfont.Face7x13, []rune("AI ä"))
	require.NoError(t, err)
	assert.Equal(t, 13, f.Height())
	assert.Equal(t, 7, f.Width())
	assert.True(t, f.Has('A'))
	assert.True(t, f.Has(' '))
	assert.False(t, f.Has('ä'), "basic face has no glyph for ä")
	assert.Equal(t, "OOOOOOO", f.FallbackGlyph().Rows()[0])
	assert.Equal(t, "O     O", f.FallbackGlyph().Rows()[5])
	//
	dots := func(g Glyph) (n int) {
		for r := 0; r < g.Height(); r++ {
			for c := 0; c < g.Width(); c++ {
				if g.Dot(r, c) {
					n++
				}
			}
		}
		return
	}
	assert.Greater(t, dots(f.GlyphFor('A')), 0)
	assert.Equal(t, 0, dots(f.GlyphFor(' ')))
	//
	_, err = FromFace(nil, []rune("A"))
	assert.True(t, core.IsConfigurationError(err))
}
