// Package registry implements the Registry & Dispatcher: the
// process-wide (or test-scoped) table of registered scripts, the alias
// map, and the lazily-built Direct Shortcut cache sitting on top of
// engine/convert and engine/hub.
package registry

import (
	"sync"

	"github.com/shlesha-go/shlesha/core"
	"github.com/shlesha-go/shlesha/engine/convert"
	"github.com/shlesha-go/shlesha/engine/hub"
	"github.com/shlesha-go/shlesha/engine/schema"
	"github.com/shlesha-go/shlesha/engine/table"
	"github.com/shlesha-go/shlesha/internal/trace"
)

// pairKey identifies a directed (from, to) script pair in the shortcut
// cache.
type pairKey struct {
	from, to string
}

// Registry holds every registered script's Converter, the alias ->
// canonical-name map, and a lazily-populated Direct Shortcut cache.
// All mutable state is guarded by mu; readers take RLock, the writers
// (RegisterSchema/RemoveSchema, and directTable when it fills the
// shortcut cache) take Lock.
type Registry struct {
	mu sync.RWMutex

	converters map[string]*convert.Converter
	aliases    map[string]string // alias (or canonical name) -> canonical name

	// direct caches built shortcut tables. A present key with a nil
	// value means "already tried, no shortcut exists" (BuildShortcut
	// returned ok == false); an absent key means "not yet attempted".
	direct map[pairKey]*convert.ShortcutTable
}

// New returns an empty Registry with no scripts registered.
func New() *Registry {
	return &Registry{
		converters: make(map[string]*convert.Converter),
		aliases:    make(map[string]string),
		direct:     make(map[pairKey]*convert.ShortcutTable),
	}
}

// RegisterSchema builds s's ConverterTable, validates that every
// canonical value the table produces has a hub-side interpretation
// (a HubKeyUnknown check), and adds the resulting Converter under
// s.Name and every declared alias. Registering a name that already
// exists in the registry (as a canonical name or an alias) replaces the
// prior binding and invalidates any cached shortcut that touched the
// old converter.
func (r *Registry) RegisterSchema(s *schema.Schema) error {
	tbl, err := table.Build(s)
	if err != nil {
		return err
	}
	if err := validateHubKeys(s, tbl); err != nil {
		return err
	}
	c := convert.New(tbl)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.invalidateShortcutsLocked(s.Name)
	r.converters[s.Name] = c
	r.aliases[s.Name] = s.Name
	for _, a := range s.Aliases {
		r.invalidateShortcutsLocked(a)
		r.aliases[a] = s.Name
	}
	trace.T().Debugf("registry: registered script %s (%d aliases)", s.Name, len(s.Aliases))
	return nil
}

// validateHubKeys checks every canonical value the table can produce
// (forward direction, which is what the Converter hands to the hub) is
// recognized by the Hub Projector on s's declared hub side. It is a
// context-free, per-rune/per-token check -- see engine/hub/validate.go
// for why full reassembly is the wrong tool here.
func validateHubKeys(s *schema.Schema, tbl *table.ConverterTable) error {
	check := hub.ValidPhonemicHubKey
	if s.TargetHub == schema.HubDevanagari {
		check = hub.ValidDevanagariHubKey
	}
	for _, key := range tbl.ForwardKeys() {
		canonical, ok := tbl.Forward(key)
		if !ok {
			continue
		}
		if !check(canonical) {
			return core.Wrap(core.KindHubKeyUnknown, nil,
				"schema %s: canonical value %q (from source key %q) has no %s hub interpretation",
				s.Name, canonical, key, s.TargetHub)
		}
	}
	return nil
}

// RemoveSchema unregisters name (a canonical name, not an alias) and
// every alias pointing at it, invalidating any cached shortcut that
// involved it. Removing an unknown name is a no-op.
func (r *Registry) RemoveSchema(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.converters[name]; !ok {
		return nil
	}
	delete(r.converters, name)
	for alias, canonical := range r.aliases {
		if canonical == name {
			delete(r.aliases, alias)
		}
	}
	r.invalidateShortcutsLocked(name)
	trace.T().Debugf("registry: removed script %s", name)
	return nil
}

// resolveLocked resolves an alias or canonical name to its registered
// Converter. Caller must hold r.mu for reading or writing.
func (r *Registry) resolveLocked(name string) (*convert.Converter, error) {
	canonical, ok := r.aliases[name]
	if !ok {
		return nil, core.Wrap(core.KindUnknownScript, nil, "script %q is not registered", name)
	}
	c, ok := r.converters[canonical]
	if !ok {
		return nil, core.Wrap(core.KindUnknownScript, nil, "script %q is not registered", name)
	}
	return c, nil
}

// invalidateShortcutsLocked drops every cached shortcut entry touching
// script (by canonical name or alias being rebound). Caller must hold
// r.mu for writing.
func (r *Registry) invalidateShortcutsLocked(script string) {
	for k := range r.direct {
		if k.from == script || k.to == script {
			delete(r.direct, k)
		}
	}
}

// Aliases returns a snapshot of the alias -> canonical-name map.
func (r *Registry) Aliases() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]string, len(r.aliases))
	for k, v := range r.aliases {
		out[k] = v
	}
	return out
}

// SupportedScripts returns the canonical names of every registered
// script, in no particular order.
func (r *Registry) SupportedScripts() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.converters))
	for name := range r.converters {
		out = append(out, name)
	}
	return out
}

// SupportsScript reports whether name (canonical or alias) resolves to
// a registered script.
func (r *Registry) SupportsScript(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.aliases[name]
	return ok
}
