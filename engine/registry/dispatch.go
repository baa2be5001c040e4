package registry

import (
	"github.com/shlesha-go/shlesha/engine/convert"
	"github.com/shlesha-go/shlesha/engine/hub"
	"github.com/shlesha-go/shlesha/engine/tokenizer"
	"github.com/shlesha-go/shlesha/internal/trace"
)

// UnknownStage names which dispatch pipeline stage produced an unknown
// fragment.
type UnknownStage string

const (
	// StageSource is the source-script Tokenizer (Converter.ToHub).
	StageSource UnknownStage = "source"
	// StageHub is the Hub Projector's own reassembly (only reached when
	// the two scripts sit on opposite hub sides).
	StageHub UnknownStage = "hub"
	// StageTarget is the target-script Tokenizer (Converter.FromHub).
	StageTarget UnknownStage = "target"
)

// PositionedUnknown is one coalesced unknown fragment, annotated with
// the stage that produced it. Position is a rune index into the
// original input text when the originating stage's output is the
// original text's own index space (StageSource always is; StageTarget
// is too whenever source and target share a hub side, since then no
// hub projection happened and the reverse Tokenizer ran directly over
// the forward Tokenizer's output, which Span-maps back to the input).
// When source and target sit on opposite hub sides, a StageHub or
// StageTarget fragment's Position is expressed in the hub payload's own
// index space instead: the Hub Projector's context-sensitive consonant
// reassembly means a hub-string rune does not correspond to a fixed
// span of input runes the way a Tokenizer match does, so no exact
// backward mapping exists.
type PositionedUnknown struct {
	Stage    UnknownStage
	Position int
	Text     string
}

// Metadata is the positioned unknown-fragment diagnostic payload
// returned alongside the converted text.
type Metadata struct {
	Unknowns []PositionedUnknown
}

// Result is the output of TransliterateWithMetadata.
type Result struct {
	Output   string
	Metadata Metadata
}

// Transliterate converts text from one registered script to another,
// discarding unknown-fragment metadata. See TransliterateWithMetadata
// for the full result.
func (r *Registry) Transliterate(text, from, to string, opts ...tokenizer.Option) (string, error) {
	res, err := r.TransliterateWithMetadata(text, from, to, opts...)
	if err != nil {
		return "", err
	}
	return res.Output, nil
}

// TransliterateWithMetadata implements the dispatcher's resolution
// algorithm:
//
//  1. resolve from/to through the alias map;
//  2. identity fast path when both resolve to the same script;
//  3. a cached or newly-built Direct Shortcut Table, when one exists
//     for this pair;
//  4. otherwise the two-step hub path: source.ToHub, project across
//     hub sides if needed, target.FromHub;
//  5. collect and position-annotate every unknown fragment encountered
//     along the way.
func (r *Registry) TransliterateWithMetadata(text, from, to string, opts ...tokenizer.Option) (Result, error) {
	r.mu.RLock()
	fromConv, err := r.resolveLocked(from)
	if err != nil {
		r.mu.RUnlock()
		return Result{}, err
	}
	toConv, err := r.resolveLocked(to)
	if err != nil {
		r.mu.RUnlock()
		return Result{}, err
	}
	r.mu.RUnlock()

	if fromConv.SchemaName == toConv.SchemaName {
		return Result{Output: text}, nil
	}

	if st, ok := r.directTable(fromConv, toConv); ok {
		// A shortcut fragment that fails to tokenize is an unrecognized
		// source-script grapheme, the same role the forward Tokenizer
		// plays in the two-step hub path; its Position is already in
		// the original input's own index space.
		res := tokenizer.Tokenize(text, st, opts...)
		return Result{Output: res.Output, Metadata: Metadata{Unknowns: annotate(StageSource, res.Unknowns)}}, nil
	}

	return r.viaHub(text, fromConv, toConv, opts...)
}

// viaHub implements the two-step hub path: source.ToHub, project across
// hub sides if needed, target.FromHub.
func (r *Registry) viaHub(text string, fromConv, toConv *convert.Converter, opts ...tokenizer.Option) (Result, error) {
	fromForm, fromRes := fromConv.ToHubDetailed(text, opts...)
	var unknowns []PositionedUnknown
	unknowns = append(unknowns, annotate(StageSource, fromRes.Unknowns)...)

	projected := fromForm
	if fromConv.HubVariant() != toConv.HubVariant() {
		p, hubUnknowns, err := projectHub(fromForm, toConv.HubVariant())
		if err != nil {
			return Result{}, err
		}
		projected = p
		for _, u := range hubUnknowns {
			// The source Tokenizer copies its own unknown fragments into
			// the hub payload verbatim, so the projector meets them again;
			// such an echo of an already-reported fragment is skipped.
			echo := false
			if mapped, ok := tokenizer.MapOutputPosition(fromRes.Spans, u.Position); ok {
				for _, su := range fromRes.Unknowns {
					echo = echo || (su.Position == mapped && su.Text == u.Text)
				}
			}
			if echo {
				continue
			}
			unknowns = append(unknowns, PositionedUnknown{Stage: StageHub, Position: u.Position, Text: u.Text})
		}
	}

	out, targetUnknowns, err := toConv.FromHub(projected, opts...)
	if err != nil {
		return Result{}, err
	}
	for _, u := range targetUnknowns {
		pos := u.Position
		stage := StageTarget
		if fromConv.HubVariant() == toConv.HubVariant() {
			if mapped, ok := tokenizer.MapOutputPosition(fromRes.Spans, u.Position); ok {
				pos = mapped
			}
		}
		unknowns = append(unknowns, PositionedUnknown{Stage: stage, Position: pos, Text: u.Text})
	}

	return Result{Output: out, Metadata: Metadata{Unknowns: unknowns}}, nil
}

// projectHub runs the Hub Projector in the direction needed to express
// h on the `to` side.
func projectHub(h hub.Form, to hub.Variant) (hub.Form, []tokenizer.Unknown, error) {
	if h.Variant == to {
		return h, nil, nil
	}
	if h.Variant == hub.Devanagari {
		return hub.PhonemicToDevanagari(h.Payload)
	}
	return hub.DevanagariToPhonemic(h.Payload)
}

func annotate(stage UnknownStage, us []tokenizer.Unknown) []PositionedUnknown {
	if len(us) == 0 {
		return nil
	}
	out := make([]PositionedUnknown, len(us))
	for i, u := range us {
		out[i] = PositionedUnknown{Stage: stage, Position: u.Position, Text: u.Text}
	}
	return out
}

// directTable returns the cached Direct Shortcut Table for (from, to),
// building and caching it on first use. A cached nil
// result (ok == true, table == nil returned as not-ok here) means a
// prior build attempt found no viable shortcut; callers fall back to
// the hub path without retrying the build.
func (r *Registry) directTable(from, to *convert.Converter) (*convert.ShortcutTable, bool) {
	key := pairKey{from: from.SchemaName, to: to.SchemaName}

	r.mu.RLock()
	st, tried := r.direct[key]
	r.mu.RUnlock()
	if tried {
		return st, st != nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	// Double-checked: another writer may have built it while we waited
	// for the write lock.
	if st, tried := r.direct[key]; tried {
		return st, st != nil
	}

	st, ok, err := convert.BuildShortcut(from, to)
	if err != nil {
		trace.T().Debugf("registry: shortcut %s->%s build error, falling back to hub path: %v",
			from.SchemaName, to.SchemaName, err)
		r.direct[key] = nil
		return nil, false
	}
	if !ok {
		r.direct[key] = nil
		return nil, false
	}
	r.direct[key] = st
	return st, true
}
