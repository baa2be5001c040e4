// Package table builds the two lookup tables (forward and reverse)
// that a Converter uses from a loaded schema.Schema.
package table

import (
	"sort"

	"github.com/derekparker/trie"
	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/emirpasic/gods/sets/hashset"

	"github.com/shlesha-go/shlesha/core"
	"github.com/shlesha-go/shlesha/engine/schema"
	"github.com/shlesha-go/shlesha/engine/tokenizer"
	"github.com/shlesha-go/shlesha/internal/trace"
)

// ConverterTable is the derived, build-time-immutable form of one
// schema: a forward trie (source key -> canonical value) and a reverse
// trie (canonical key -> preferred source value), both keyed for
// longest-prefix-match tokenization.
type ConverterTable struct {
	ScriptName   string
	ScriptType   schema.ScriptType
	HasImplicitA bool
	HubSide      schema.HubSide

	forward *trie.Trie
	reverse *trie.Trie

	// forwardKeys/reverseKeys are maintained in longest-key-first,
	// then-lexicographic order, matching the builder ordering rules;
	// they back Stats(), ForwardKeys() and the WithSelfCheck pass.
	forwardKeys []string
	reverseKeys []string

	maxForwardKeyLen int // in runes
	maxReverseKeyLen int // in runes
}

// Stats is a read-only introspection snapshot.
type Stats struct {
	ForwardKeys int
	ReverseKeys int
	MaxKeyLen   int
}

// Stats reports the size of the built table.
func (t *ConverterTable) Stats() Stats {
	return Stats{
		ForwardKeys: len(t.forwardKeys),
		ReverseKeys: len(t.reverseKeys),
		MaxKeyLen:   t.maxForwardKeyLen,
	}
}

// MaxKeyLen returns the length, in runes, of the longest forward source
// key -- the bounded lookahead window the Tokenizer uses.
func (t *ConverterTable) MaxKeyLen() int { return t.maxForwardKeyLen }

// ForwardLookup adapts the forward direction to tokenizer.Lookup.
func (t *ConverterTable) ForwardLookup() tokenizer.Lookup { return forwardView{t} }

// ReverseLookup adapts the reverse direction to tokenizer.Lookup.
func (t *ConverterTable) ReverseLookup() tokenizer.Lookup { return reverseView{t} }

type forwardView struct{ t *ConverterTable }

func (f forwardView) Find(key string) (string, bool) { return f.t.Forward(key) }
func (f forwardView) MaxKeyLen() int                 { return f.t.maxForwardKeyLen }

type reverseView struct{ t *ConverterTable }

func (r reverseView) Find(key string) (string, bool) { return r.t.Reverse(key) }
func (r reverseView) MaxKeyLen() int                 { return r.t.maxReverseKeyLen }

// MaxReverseKeyLen returns the length, in runes, of the longest reverse
// (canonical) key.
func (t *ConverterTable) MaxReverseKeyLen() int { return t.maxReverseKeyLen }

// ForwardKeys returns the forward source keys in build order (longest
// key first), for callers that need to walk the whole table -- notably
// the Direct Shortcut Table composition in engine/convert.
func (t *ConverterTable) ForwardKeys() []string {
	out := make([]string, len(t.forwardKeys))
	copy(out, t.forwardKeys)
	return out
}

// Forward returns the canonical value bound to key, and whether key is
// present in the forward table.
func (t *ConverterTable) Forward(key string) (string, bool) {
	n, ok := t.forward.Find(key)
	if !ok {
		return "", false
	}
	v, ok := n.Meta().(string)
	return v, ok
}

// Reverse returns the source value bound to canonical key, and whether
// key is present in the reverse table.
func (t *ConverterTable) Reverse(key string) (string, bool) {
	n, ok := t.reverse.Find(key)
	if !ok {
		return "", false
	}
	v, ok := n.Meta().(string)
	return v, ok
}

// Option configures an optional post-build validation pass on Build.
type Option func(*buildOptions)

type buildOptions struct {
	selfCheck bool
}

// WithSelfCheck re-tokenizes every reverse (canonical) key through the
// freshly built reverse table and then back through the forward table,
// asserting the result reproduces the original canonical key -- the
// preferred-form fixed point a schema's declaration order is supposed
// to guarantee. It costs two extra tokenizer passes over every reverse
// key, so callers building tables on a hot path should leave it off and
// rely on whatever validates the schema ahead of time (tests, a
// schema-authoring tool).
func WithSelfCheck() Option {
	return func(o *buildOptions) { o.selfCheck = true }
}

// Build derives a ConverterTable from s. It is deterministic: the same
// schema (same bytes, parsed identically) always yields a
// byte-identical table, because every ordering decision below is a pure
// function of the schema's entries.
func Build(s *schema.Schema, opts ...Option) (*ConverterTable, error) {
	var cfg buildOptions
	for _, opt := range opts {
		opt(&cfg)
	}

	// Only the well-known categories feed the tables; any other category
	// stays on the Schema unmapped.
	var entries []schema.Entry
	for _, c := range []schema.Category{
		schema.CategoryVowels, schema.CategoryVowelSigns, schema.CategoryConsonants,
		schema.CategoryMarks, schema.CategorySpecial, schema.CategoryDigits,
	} {
		entries = append(entries, s.Category(c)...)
	}
	if len(entries) == 0 {
		trace.T().Debugf("table: schema %s has no mapping entries", s.Name)
	}

	t := &ConverterTable{
		ScriptName:   s.Name,
		ScriptType:   s.ScriptType,
		HasImplicitA: s.HasImplicitA,
		HubSide:      s.TargetHub,
		forward:      trie.New(),
		reverse:      trie.New(),
	}

	// --- forward table: longest-key-first, then lexicographic -------
	fwd := linkedhashmap.New()
	forwardOrder := append([]schema.Entry(nil), entries...)
	sort.SliceStable(forwardOrder, func(i, j int) bool {
		li, lj := runeLen(forwardOrder[i].Key), runeLen(forwardOrder[j].Key)
		if li != lj {
			return li > lj
		}
		return forwardOrder[i].Key < forwardOrder[j].Key
	})
	for _, e := range forwardOrder {
		if e.Key == "" {
			return nil, core.Wrap(core.KindSchemaInvalid, nil,
				"schema %s: empty source key", s.Name)
		}
		fwd.Put(e.Key, e.Canonical)
	}
	fwd.Each(func(k, v interface{}) {
		key := k.(string)
		t.forward.Add(key, v)
		t.forwardKeys = append(t.forwardKeys, key)
		if n := runeLen(key); n > t.maxForwardKeyLen {
			t.maxForwardKeyLen = n
		}
	})
	if t.maxForwardKeyLen == 0 {
		t.maxForwardKeyLen = 1
	}

	// --- reverse table: resolve preference, detect ambiguity ---------
	preferred, err := resolvePreferred(s.Name, entries)
	if err != nil {
		return nil, err
	}

	type revCandidate struct {
		canonical string
		source    string
	}
	var revCandidates []revCandidate
	for canonical, e := range preferred {
		revCandidates = append(revCandidates, revCandidate{canonical: canonical, source: e.Key})
	}
	// Reverse precedence list: insert longer canonical keys before keys
	// that are a proper prefix of them, so a later, shorter match can
	// never shadow an already-bound longer one.
	sort.SliceStable(revCandidates, func(i, j int) bool {
		li, lj := runeLen(revCandidates[i].canonical), runeLen(revCandidates[j].canonical)
		if li != lj {
			return li > lj
		}
		return revCandidates[i].canonical < revCandidates[j].canonical
	})

	rev := linkedhashmap.New()
	bound := hashset.New()
	for _, c := range revCandidates {
		if bound.Contains(c.canonical) {
			// Already bound by an earlier (longer-or-equal, by the sort
			// above never actually shorter) candidate; the precedence
			// list rule says fill remaining entries only if not already
			// bound.
			continue
		}
		rev.Put(c.canonical, c.source)
		bound.Add(c.canonical)
	}
	rev.Each(func(k, v interface{}) {
		key := k.(string)
		t.reverse.Add(key, v)
		t.reverseKeys = append(t.reverseKeys, key)
		if n := runeLen(key); n > t.maxReverseKeyLen {
			t.maxReverseKeyLen = n
		}
	})
	if t.maxReverseKeyLen == 0 {
		t.maxReverseKeyLen = 1
	}

	if cfg.selfCheck {
		if err := checkPreferredFormRoundTrip(t); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// checkPreferredFormRoundTrip is the WithSelfCheck validation pass: every
// reverse key, tokenized against the reverse table and then re-tokenized
// against the forward table, must come back unchanged.
func checkPreferredFormRoundTrip(t *ConverterTable) error {
	for _, canonical := range t.reverseKeys {
		revRes := tokenizer.Tokenize(canonical, t.ReverseLookup())
		fwdRes := tokenizer.Tokenize(revRes.Output, t.ForwardLookup())
		if fwdRes.Output != canonical {
			return core.Wrap(core.KindSchemaInvalid, nil,
				"table %s: preferred-form round trip failed for %q: got %q",
				t.ScriptName, canonical, fwdRes.Output)
		}
	}
	return nil
}

// resolvePreferred groups entries by canonical value and picks exactly
// one preferred source entry per canonical value: an explicitly marked
// entry (schema file trailing '*') if exactly one exists, otherwise the
// first-declared entry (schema.Entry.Preferred, computed at load time).
// Two explicit markers on the same canonical value is an
// core.KindAmbiguousCanonical build error.
func resolvePreferred(scriptName string, entries []schema.Entry) (map[string]schema.Entry, error) {
	groups := make(map[string][]schema.Entry)
	var order []string
	for _, e := range entries {
		if _, ok := groups[e.Canonical]; !ok {
			order = append(order, e.Canonical)
		}
		groups[e.Canonical] = append(groups[e.Canonical], e)
	}
	result := make(map[string]schema.Entry, len(order))
	for _, canonical := range order {
		group := groups[canonical]
		var explicit []schema.Entry
		for _, e := range group {
			if e.ExplicitPreferred {
				explicit = append(explicit, e)
			}
		}
		switch {
		case len(explicit) > 1:
			return nil, core.Wrap(core.KindAmbiguousCanonical, nil,
				"schema %s: canonical value %q has %d conflicting explicit preferences",
				scriptName, canonical, len(explicit))
		case len(explicit) == 1:
			result[canonical] = explicit[0]
		default:
			chosen := group[0]
			for _, e := range group {
				if e.Preferred {
					chosen = e
					break
				}
			}
			result[canonical] = chosen
		}
	}
	return result, nil
}

func runeLen(s string) int {
	return len([]rune(s))
}
