package resources

import (
	"context"
	"embed"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/npillmayer/dottify/core"
	"github.com/npillmayer/dottify/core/dotfont"
	"github.com/npillmayer/dottify/core/fontregistry"
	"github.com/npillmayer/schuko"
)

// Extensions of glyph table files, in order of preference.
var fontExtensions = []string{".json", ".yaml", ".yml"}

// NotFound returns an application error for a missing font.
func NotFound(name string) error {
	e := fmt.Errorf("resource missing: %v", name)
	return core.WrapError(e, core.EMISSING, "font not found: %s, using the built-in font instead", name)
}

//go:embed packaged/*
var packaged embed.FS

type fontPlusErr struct {
	font *dotfont.Font
	err  error
}

// FontPromise is returned by ResolveFont; calling Font blocks until the font
// is loaded.
type FontPromise interface {
	Font() (*dotfont.Font, error)
}

type fontLoader struct {
	await func(ctx context.Context) (*dotfont.Font, error)
}

func (loader fontLoader) Font() (*dotfont.Font, error) {
	return loader.await(context.Background())
}

// ResolveFont resolves a dot font by name or file path. Fonts loaded from
// files are stored in the global font registry. A name which is the path of
// an existing file is always read from that file, even if the registry holds
// a font of the same base name.
//
// If no font can be found, the promise delivers the built-in font together
// with an error of code core.EMISSING. If a font file is found but broken,
// it delivers no font and an error of code core.ECONFIG.
func ResolveFont(conf schuko.Configuration, name string) FontPromise {
	ch := make(chan fontPlusErr)
	go func(ch chan<- fontPlusErr) {
		result := fontPlusErr{}
		registry := fontregistry.GlobalRegistry()
		_, known := registry.Lookup(name)
		if name == "" || (known && !isFile(name)) {
			result.font, result.err = registry.Font(name)
			tracer().Debugf("font %q found in registry", name)
			ch <- result
			close(ch)
			return
		}
		var f *dotfont.Font
		if src, fname := locate(conf, name); src != nil {
			tracer().Infof("loading font %s from %s", name, fname)
			f, result.err = dotfont.Load(src)
			src.Close()
			if result.err != nil {
				result.err = core.WrapError(result.err, core.ECONFIG, "font file %s is broken", fname)
			}
		}
		switch {
		case result.err != nil:
		case f != nil:
			registry.StoreFont(name, f)
			result.font = f
		default:
			result.font, _ = registry.Font("")
			result.err = NotFound(name)
		}
		ch <- result
		close(ch)
	}(ch)
	return fontLoader{
		await: func(ctx context.Context) (*dotfont.Font, error) {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case r := <-ch:
				return r.font, r.err
			}
		},
	}
}

// isFile is true if name is the path of an existing regular file. Such names
// are always loaded from disk, as the registry keys fonts by base name only.
func isFile(name string) bool {
	fi, err := os.Stat(name)
	return err == nil && !fi.IsDir()
}

// locate opens the first glyph table file matching name.
func locate(conf schuko.Configuration, name string) (io.ReadCloser, string) {
	if isFile(name) {
		if file, err := os.Open(name); err == nil {
			return file, name
		}
	}
	var dirs []string
	if conf != nil {
		if fontdir := conf.GetString("font-dir"); fontdir != "" {
			dirs = append(dirs, filepath.SplitList(fontdir)...)
		}
		if appkey := conf.GetString("app-key"); appkey != "" {
			if uconfdir, err := os.UserConfigDir(); err == nil {
				dirs = append(dirs, filepath.Join(uconfdir, appkey, "fonts"))
			}
		}
	}
	base := fontregistry.NormalizeFontname(name)
	for _, dir := range dirs {
		for _, ext := range fontExtensions {
			fname := filepath.Join(dir, base+ext)
			if file, err := os.Open(fname); err == nil {
				return file, fname
			}
		}
	}
	for _, ext := range fontExtensions {
		fname := path.Join("packaged/fonts", base+ext)
		if file, err := packaged.Open(fname); err == nil {
			tracer().Debugf("found font as packaged font file %s", fname)
			return file, fname
		}
	}
	return nil, ""
}
