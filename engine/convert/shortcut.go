package convert

import (
	"sort"

	"github.com/derekparker/trie"

	"github.com/shlesha-go/shlesha/internal/trace"
)

// ShortcutTable is a pre-composed direct table from one schema's
// source alphabet straight to another's, bypassing per-call hub
// projection: `B.reverse ∘ HubProjector ∘ A.forward`.
type ShortcutTable struct {
	FromScript string
	ToScript   string

	t         *trie.Trie
	keys      []string
	maxKeyLen int
}

// Find implements tokenizer.Lookup.
func (s *ShortcutTable) Find(key string) (string, bool) {
	n, ok := s.t.Find(key)
	if !ok {
		return "", false
	}
	v, ok := n.Meta().(string)
	return v, ok
}

// MaxKeyLen implements tokenizer.Lookup.
func (s *ShortcutTable) MaxKeyLen() int { return s.maxKeyLen }

// BuildShortcut walks every key of a's forward table and looks its
// canonical value up directly in b's reverse table. The result is a
// direct table that a Tokenizer can consume without ever touching the
// hub at call time.
//
// Building a shortcut is all-or-nothing: if any canonical value has no
// corresponding entry in b's reverse table, BuildShortcut returns
// ok == false and the caller must keep dispatching that pair through
// the two-step hub path, which is always correct with or without a
// shortcut present -- a shortcut is strictly a performance
// optimization, never a semantic one.
//
// Composing per forward key is only sound when a and b share a hub
// side: the canonical value is then substituted atom-for-atom with no
// reassembly, so word-level context never matters. When the hub sides
// differ, the real Hub Projector reassembles consonant clusters and
// implicit vowels across an entire joined hub string -- a composition
// that key-by-key substitution cannot reproduce -- so BuildShortcut
// declines and leaves that pair on the two-step path.
func BuildShortcut(a, b *Converter) (shortcut *ShortcutTable, ok bool, err error) {
	if a.Table.ScriptName == b.Table.ScriptName {
		return nil, false, nil
	}
	if a.HubVariant() != b.HubVariant() {
		return nil, false, nil
	}

	pairs := make(map[string]string)

	for _, key := range a.Table.ForwardKeys() {
		// a and b share a hub side (checked above), so a's canonical
		// value is already expressed in b's hub side too -- no
		// projection step is needed, just a straight reverse lookup.
		canonical, found := a.Table.Forward(key)
		if !found {
			continue
		}
		bSource, found := b.Table.Reverse(canonical)
		if !found {
			trace.T().Debugf("convert: shortcut %s->%s abandoned: no reverse entry for %q",
				a.SchemaName, b.SchemaName, canonical)
			return nil, false, nil
		}
		pairs[key] = bSource
	}
	if len(pairs) == 0 {
		return nil, false, nil
	}

	type kv struct{ key, value string }
	ordered := make([]kv, 0, len(pairs))
	for k, v := range pairs {
		ordered = append(ordered, kv{k, v})
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		li, lj := len([]rune(ordered[i].key)), len([]rune(ordered[j].key))
		if li != lj {
			return li > lj
		}
		return ordered[i].key < ordered[j].key
	})

	st := &ShortcutTable{FromScript: a.SchemaName, ToScript: b.SchemaName, t: trie.New()}
	for _, e := range ordered {
		st.t.Add(e.key, e.value)
		st.keys = append(st.keys, e.key)
		if n := len([]rune(e.key)); n > st.maxKeyLen {
			st.maxKeyLen = n
		}
	}
	if st.maxKeyLen == 0 {
		st.maxKeyLen = 1
	}
	return st, true, nil
}
