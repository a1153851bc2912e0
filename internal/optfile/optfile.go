// Package optfile is a reference config-file loader: it implements
// option.IncludeFunc by decoding a flat TOML table of name = value
// assignments and applying each through the setter pipeline, in
// the file's declared order.
package optfile

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"optcore/internal/option"
)

// Loader resolves `include` meta-option filenames against a base
// directory. A host wires Loader.Load into option.Root.SetIncludeCallback.
type Loader struct {
	BaseDir string
}

// New returns a Loader that resolves relative filenames against baseDir.
func New(baseDir string) *Loader {
	return &Loader{BaseDir: baseDir}
}

// Load implements option.IncludeFunc. Nested TOML tables are ignored —
// only top-level key = value pairs are treated as option assignments,
// read in the file's own declared order via toml.MetaData.Keys (plain
// map iteration would scramble it).
func (l *Loader) Load(root *option.Root, filename string, flags option.SetFlags) error {
	path := filename
	if l.BaseDir != "" && !filepath.IsAbs(filename) {
		path = filepath.Join(l.BaseDir, filename)
	}

	var doc map[string]any
	meta, err := toml.DecodeFile(path, &doc)
	if err != nil {
		return fmt.Errorf("optfile: decode %q: %w", path, err)
	}

	for _, key := range meta.Keys() {
		if len(key) != 1 {
			continue
		}
		name := key.String()
		val, ok := doc[name]
		if !ok {
			continue
		}
		switch val.(type) {
		case map[string]any, []map[string]any:
			continue
		}
		if err := root.Set(name, fmt.Sprint(val), flags); err != nil {
			return fmt.Errorf("optfile: %s: %w", name, err)
		}
	}
	return nil
}
