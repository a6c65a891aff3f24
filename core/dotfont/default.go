package dotfont

// DefaultSpec returns the glyph table of the built-in font: 5x7 glyphs for
// the Latin letters (case-insensitive), space, '.', '?' and '!'.
// Every call returns a fresh table.
func DefaultSpec() Spec {
	return Spec{
		{"aA", []string{
			"  O  ",
			" O O ",
			"O   O",
			"O   O",
			"OOOOO",
			"O   O",
			"O   O",
		}},
		{"bB", []string{
			"OOOO ",
			"O   O",
			"O   O",
			"OOOO ",
			"O   O",
			"O   O",
			"OOOO ",
		}},
		{"cC", []string{
			" OOO ",
			"O   O",
			"O    ",
			"O    ",
			"O    ",
			"O   O",
			" OOO ",
		}},
		{"dD", []string{
			"OOOO ",
			"O   O",
			"O   O",
			"O   O",
			"O   O",
			"O   O",
			"OOOO ",
		}},
		{"eE", []string{
			"OOOOO",
			"O    ",
			"O    ",
			"OOO  ",
			"O    ",
			"O    ",
			"OOOOO",
		}},
		{"fF", []string{
			"OOOOO",
			"O    ",
			"O    ",
			"OOO  ",
			"O    ",
			"O    ",
			"O    ",
		}},
		{"gG", []string{
			" OOO ",
			"O   O",
			"O    ",
			"O OO ",
			"O   O",
			"O   O",
			" OOO ",
		}},
		{"hH", []string{
			"O   O",
			"O   O",
			"O   O",
			"OOOOO",
			"O   O",
			"O   O",
			"O   O",
		}},
		{"iI", []string{
			"  O  ",
			"  O  ",
			"  O  ",
			"  O  ",
			"  O  ",
			"  O  ",
			"  O  ",
		}},
		{"jJ", []string{
			"    O",
			"    O",
			"    O",
			"    O",
			"O   O",
			"O   O",
			" OOO ",
		}},
		{"kK", []string{
			"O   O",
			"O   O",
			"O  O ",
			"OOO  ",
			"O  O ",
			"O   O",
			"O   O",
		}},
		{"lL", []string{
			"O    ",
			"O    ",
			"O    ",
			"O    ",
			"O    ",
			"O    ",
			"OOOOO",
		}},
		{"mM", []string{
			"O   O",
			"OO OO",
			"O O O",
			"O   O",
			"O   O",
			"O   O",
			"O   O",
		}},
		{"nN", []string{
			"O   O",
			"O   O",
			"OO  O",
			"O O O",
			"O  OO",
			"O   O",
			"O   O",
		}},
		{"oO", []string{
			" OOO ",
			"O   O",
			"O   O",
			"O   O",
			"O   O",
			"O   O",
			" OOO ",
		}},
		{"pP", []string{
			"OOOO ",
			"O   O",
			"O   O",
			"OOOO ",
			"O    ",
			"O    ",
			"O    ",
		}},
		{"qQ", []string{
			" OOO ",
			"O   O",
			"O   O",
			"O   O",
			"O O O",
			"O  OO",
			" OOO ",
		}},
		{"rR", []string{
			"OOOO ",
			"O   O",
			"O   O",
			"OOOO ",
			"O O  ",
			"O  O ",
			"O   O",
		}},
		{"sS", []string{
			" OOO ",
			"O   O",
			"O    ",
			" OOO ",
			"    O",
			"O   O",
			" OOO ",
		}},
		{"tT", []string{
			"OOOOO",
			"  O  ",
			"  O  ",
			"  O  ",
			"  O  ",
			"  O  ",
			"  O  ",
		}},
		{"uU", []string{
			"O   O",
			"O   O",
			"O   O",
			"O   O",
			"O   O",
			"O   O",
			" OOO ",
		}},
		{"vV", []string{
			"O   O",
			"O   O",
			"O   O",
			"O   O",
			"O   O",
			" O O ",
			"  O  ",
		}},
		{"wW", []string{
			"O   O",
			"O   O",
			"O   O",
			"O   O",
			"O O O",
			"O O O",
			" O O ",
		}},
		{"xX", []string{
			"O   O",
			"O   O",
			" O O ",
			"  O  ",
			" O O ",
			"O   O",
			"O   O",
		}},
		{"yY", []string{
			"O   O",
			"O   O",
			" O O ",
			"  O  ",
			"  O  ",
			"  O  ",
			"  O  ",
		}},
		{"zZ", []string{
			"OOOOO",
			"    O",
			"   O ",
			"  O  ",
			" O   ",
			"O    ",
			"OOOOO",
		}},
		{" ", []string{
			"     ",
			"     ",
			"     ",
			"     ",
			"     ",
			"     ",
			"     ",
		}},
		{".", []string{
			"     ",
			"     ",
			"     ",
			"     ",
			"     ",
			"     ",
			"  O  ",
		}},
		{"?", []string{
			" OOO ",
			"O   O",
			"    O",
			"   O ",
			"  O  ",
			"     ",
			"  O  ",
		}},
		{"!", []string{
			"  O  ",
			"  O  ",
			"  O  ",
			"  O  ",
			"  O  ",
			"     ",
			"  O  ",
		}},
		{string(Fallback), []string{
			"OOOOO",
			"O   O",
			"OO OO",
			"O O O",
			"OO OO",
			"O   O",
			"OOOOO",
		}},
	}
}
