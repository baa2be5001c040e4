// Package tokenizer implements a bounded-window longest-prefix-match
// scan over a table.ConverterTable's forward or reverse trie.
package tokenizer

import (
	"strings"
	"unicode"

	"github.com/shlesha-go/shlesha/internal/trace"
)

// Lookup is the narrow interface the tokenizer needs from a table: a
// bounded-window longest-prefix key lookup. Both
// table.ConverterTable.Forward and .Reverse satisfy this signature, as
// does any ad-hoc table (e.g. a Direct Shortcut table).
type Lookup interface {
	Find(key string) (string, bool)
	MaxKeyLen() int
}

// Unknown is one coalesced run of untokenizable input, positioned in
// the index space of the original input string.
type Unknown struct {
	Position int // rune index into the original input
	Text     string
}

// Span records that the InputLen runes of input starting at InputPos
// produced the OutputLen runes of output starting at OutputPos. A
// caller that discovers a position of interest in Output (e.g. the
// Hub Projector reporting an unknown fragment in a hub string) can
// walk Spans with MapOutputPosition to recover the corresponding
// position in the original input.
type Span struct {
	InputPos  int
	InputLen  int
	OutputPos int
	OutputLen int
}

// Result is the tokenizer's output: the concatenated canonical/target
// text, the unknown fragments encountered along the way, and the
// input/output position spans backing MapOutputPosition.
type Result struct {
	Output   string
	Unknowns []Unknown
	Spans    []Span
}

// MapOutputPosition finds the input rune index whose matched or
// passed-through unit produced the output rune at outPos. Returns
// false if outPos falls outside every recorded span.
func MapOutputPosition(spans []Span, outPos int) (int, bool) {
	for _, sp := range spans {
		if outPos >= sp.OutputPos && outPos < sp.OutputPos+sp.OutputLen {
			return sp.InputPos, true
		}
	}
	return 0, false
}

// Option configures a Tokenize call.
type Option func(*options)

type options struct {
	reportAllUnknowns bool
}

// WithReportAllUnknowns makes the tokenizer record every untokenizable
// rune as unknown, including whitespace, ASCII punctuation and digits
// that would otherwise pass through silently. Adjacent unknown runes
// still coalesce into a single Unknown fragment.
func WithReportAllUnknowns() Option {
	return func(o *options) { o.reportAllUnknowns = true }
}

// Tokenize performs the bounded-window longest-prefix-match scan of
// input against table. At each cursor position it tries windows of
// length min(table.MaxKeyLen(), remaining runes) down to 1; on the
// first hit it emits the canonical value and advances the cursor by
// the matched rune count. On no match at any length it consumes one
// code point, appends it verbatim to the output, and folds it into the
// current (possibly multi-rune) run of unknown fragments.
//
// Tokenize is a pure function of (input, table, opts): rerunning it on
// the same arguments always yields a byte-identical Result.
func Tokenize(input string, table Lookup, opts ...Option) Result {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	runes := []rune(input)
	n := len(runes)
	maxLen := table.MaxKeyLen()
	if maxLen < 1 {
		maxLen = 1
	}

	var out strings.Builder
	var unknowns []Unknown
	var spans []Span
	var pendingUnknown strings.Builder
	pendingStart := -1
	outPos := 0

	flushUnknown := func() {
		if pendingStart >= 0 {
			text := pendingUnknown.String()
			unknowns = append(unknowns, Unknown{Position: pendingStart, Text: text})
			n := len([]rune(text))
			spans = append(spans, Span{InputPos: pendingStart, InputLen: n, OutputPos: outPos, OutputLen: n})
			outPos += n
			pendingUnknown.Reset()
			pendingStart = -1
		}
	}

	i := 0
	for i < n {
		w := maxLen
		if n-i < w {
			w = n - i
		}
		matched := false
		for k := w; k >= 1; k-- {
			candidate := string(runes[i : i+k])
			if v, ok := table.Find(candidate); ok {
				flushUnknown()
				out.WriteString(v)
				vLen := len([]rune(v))
				spans = append(spans, Span{InputPos: i, InputLen: k, OutputPos: outPos, OutputLen: vLen})
				outPos += vLen
				i += k
				matched = true
				break
			}
		}
		if matched {
			continue
		}
		r := runes[i]
		out.WriteRune(r)
		if o.reportAllUnknowns || reasonablyExpected(r) {
			if pendingStart < 0 {
				pendingStart = i
			}
			pendingUnknown.WriteRune(r)
		} else {
			flushUnknown()
			spans = append(spans, Span{InputPos: i, InputLen: 1, OutputPos: outPos, OutputLen: 1})
			outPos++
		}
		i++
	}
	flushUnknown()

	if len(unknowns) > 0 {
		trace.T().Debugf("tokenizer: %d unknown fragment(s) in input of length %d", len(unknowns), n)
	}

	return Result{Output: out.String(), Unknowns: unknowns, Spans: spans}
}

// reasonablyExpected reports whether r is the kind of character a
// schema would reasonably be expected to cover -- letters and combining
// marks. Whitespace, ASCII punctuation and digits absent from the table
// pass through unchanged without being recorded, unless
// WithReportAllUnknowns is set.
func reasonablyExpected(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsMark(r)
}
