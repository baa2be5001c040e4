package registry

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/shlesha-go/shlesha/core"
	"github.com/shlesha-go/shlesha/engine/schema"
	"github.com/shlesha-go/shlesha/internal/trace"
)

// packaged holds the 19 built-in schema definitions, embedded at build
// time mirroring core/locate/resources/resolve.go's //go:embed
// packaged/* pattern: a sibling directory of the embedding source file,
// never a parent-relative path.
//
//go:embed schemas/*.schema
var packaged embed.FS

// NewWithBuiltins returns a Registry pre-seeded with every schema under
// schemas/*.schema. A failure loading or registering any one of them is
// a programmer error in the embedded data itself, not a runtime
// condition callers can meaningfully recover from, so it is returned
// rather than panicked -- but it should never actually occur outside of
// a broken build.
func NewWithBuiltins() (*Registry, error) {
	r := New()
	entries, err := fs.Glob(packaged, "schemas/*.schema")
	if err != nil {
		return nil, core.Wrap(core.KindSchemaParse, err, "scanning embedded schemas")
	}
	sort.Strings(entries)
	for _, name := range entries {
		f, err := packaged.Open(name)
		if err != nil {
			return nil, core.Wrap(core.KindSchemaParse, err, "opening embedded schema %s", name)
		}
		s, err := schema.Load(f)
		closeErr := f.Close()
		if err != nil {
			return nil, core.Wrap(core.KindSchemaParse, err, "loading embedded schema %s", name)
		}
		if closeErr != nil {
			return nil, core.Wrap(core.KindSchemaParse, closeErr, "closing embedded schema %s", name)
		}
		if err := r.RegisterSchema(s); err != nil {
			return nil, fmt.Errorf("registering built-in schema %s: %w", name, err)
		}
		trace.T().Debugf("registry: loaded built-in script %s from %s", s.Name, name)
	}
	return r, nil
}
