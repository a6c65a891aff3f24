package fontregistry

import (
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/npillmayer/dottify/core"
	"github.com/npillmayer/dottify/core/dotfont"
	"github.com/npillmayer/schuko/tracing"
)

// DefaultName is the name the built-in font is registered under.
const DefaultName = "default"

// Registry is a type for holding loaded dot fonts by name.
// A registry always knows the built-in font, under DefaultName.
type Registry struct {
	sync.Mutex
	fonts map[string]*dotfont.Font
}

var globalFontRegistry *Registry

var globalRegistryCreation sync.Once

// GlobalRegistry is an application-wide singleton to hold loaded fonts.
func GlobalRegistry() *Registry {
	globalRegistryCreation.Do(func() {
		globalFontRegistry = NewRegistry()
	})
	return globalFontRegistry
}

// NewRegistry creates a registry containing the built-in font.
func NewRegistry() *Registry {
	fr := &Registry{
		fonts: make(map[string]*dotfont.Font),
	}
	fr.fonts[DefaultName] = dotfont.Default()
	return fr
}

// StoreFont pushes a font into the registry if it isn't contained yet.
//
// The font will be stored using the normalized font name as a key. If this
// key is already associated with a font, that font will not be overridden.
func (fr *Registry) StoreFont(name string, f *dotfont.Font) {
	if f == nil {
		tracer().Errorf("registry cannot store null font")
		return
	}
	key := NormalizeFontname(name)
	fr.Lock()
	defer fr.Unlock()
	if _, ok := fr.fonts[key]; !ok {
		tracer().Debugf("registry stores font %s as %s", name, key)
		fr.fonts[key] = f
	}
}

// Lookup returns the font stored under name, if any.
func (fr *Registry) Lookup(name string) (*dotfont.Font, bool) {
	fr.Lock()
	defer fr.Unlock()
	f, ok := fr.fonts[NormalizeFontname(name)]
	return f, ok
}

// Font returns the font stored under name. An empty name selects the
// built-in font.
//
// If no font is stored under name, Font returns the built-in font together
// with an error (core.EMISSING).
func (fr *Registry) Font(name string) (*dotfont.Font, error) {
	if strings.TrimSpace(name) == "" {
		name = DefaultName
	}
	tracer().Debugf("registry searches for font %s", name)
	if f, ok := fr.Lookup(name); ok {
		return f, nil
	}
	tracer().Infof("registry does not contain font %s", name)
	fr.Lock()
	defer fr.Unlock()
	return fr.fonts[DefaultName], core.Error(core.EMISSING, "font %s not found in registry", name)
}

// Names lists the keys of all registered fonts in ascending order.
func (fr *Registry) Names() []string {
	fr.Lock()
	defer fr.Unlock()
	names := make([]string, 0, len(fr.fonts))
	for k := range fr.fonts {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// LogFontList is a helper function to dump the list of known fonts
// to the trace-file (log-level Info).
func (fr *Registry) LogFontList() {
	level := tracer().GetTraceLevel()
	tracer().SetTraceLevel(tracing.LevelInfo)
	tracer().Infof("--- registered fonts ---")
	for _, k := range fr.Names() {
		f, _ := fr.Lookup(k)
		tracer().Infof("font [%s] = %d glyphs of %dx%d", k, len(f.Runes()), f.Width(), f.Height())
	}
	tracer().Infof("------------------------")
	tracer().SetTraceLevel(level)
}

// NormalizeFontname derives a registry key from a font name or a font file
// name: directories and the file extension are stripped, blanks are
// replaced by underscores, and the result is lower-cased.
func NormalizeFontname(fname string) string {
	if fname = strings.TrimSpace(fname); fname == "" {
		return ""
	}
	fname = path.Base(fname)
	if ext := path.Ext(fname); ext != "" && ext != fname {
		fname = fname[:len(fname)-len(ext)]
	}
	fname = strings.ReplaceAll(fname, " ", "_")
	return strings.ToLower(fname)
}
