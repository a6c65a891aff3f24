package dotfont

import (
	"io"

	"github.com/npillmayer/dottify/core"
	"gopkg.in/yaml.v3"
)

// Entry is a single line of a glyph table: every character of Key maps to
// the glyph drawn by Rows.
type Entry struct {
	Key  string
	Rows []string
}

// Spec is a glyph table. The order of entries is significant, see LoadSpec.
type Spec []Entry

// Load reads a glyph table from r and creates a font from it.
// The table is a mapping of strings to lists of strings, written either as
// JSON or as YAML. Keys are kept in document order.
func Load(r io.Reader) (*Font, error) {
	spec, err := DecodeSpec(r)
	if err != nil {
		return nil, err
	}
	return LoadSpec(spec)
}

// DecodeSpec reads a glyph table from r without validating glyph shapes.
func DecodeSpec(r io.Reader) (Spec, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, core.WrapError(err, core.ECONFIG, "cannot decode font table")
	}
	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, core.ConfigurationError("font table must be a mapping, is %s", kindName(root.Kind))
	}
	spec := make(Spec, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		k, v := root.Content[i], root.Content[i+1]
		if k.Kind != yaml.ScalarNode {
			return nil, core.ConfigurationError("font table key at line %d is not a string", k.Line)
		}
		if v.Kind != yaml.SequenceNode {
			return nil, core.ConfigurationError("glyph for key %q (line %d) is not a list of rows", k.Value, v.Line)
		}
		rows := make([]string, 0, len(v.Content))
		for _, row := range v.Content {
			if row.Kind != yaml.ScalarNode {
				return nil, core.ConfigurationError("glyph for key %q has a non-string row at line %d",
					k.Value, row.Line)
			}
			rows = append(rows, row.Value)
		}
		spec = append(spec, Entry{Key: k.Value, Rows: rows})
	}
	return spec, nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "empty"
	case yaml.SequenceNode:
		return "a list"
	case yaml.ScalarNode:
		return "a scalar"
	case yaml.AliasNode:
		return "an alias"
	}
	return "unknown"
}
