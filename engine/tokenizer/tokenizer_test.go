package tokenizer

import (
	"testing"

	"github.com/npillmayer/schuko/testconfig"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func config(t *testing.T) func() {
	return testconfig.QuickConfig(t)
}

// mapLookup is a minimal Lookup for testing the tokenizer in isolation
// from engine/table.
type mapLookup struct {
	m      map[string]string
	maxLen int
}

func (l mapLookup) Find(key string) (string, bool) { v, ok := l.m[key]; return v, ok }
func (l mapLookup) MaxKeyLen() int                  { return l.maxLen }

func newLookup(m map[string]string) mapLookup {
	maxLen := 1
	for k := range m {
		if n := len([]rune(k)); n > maxLen {
			maxLen = n
		}
	}
	return mapLookup{m: m, maxLen: maxLen}
}

func TestTokenizeLongestMatchWins(t *testing.T) {
	teardown := config(t)
	defer teardown()

	l := newLookup(map[string]string{
		"k":  "k",
		"kh": "kh",
		"a":  "a",
	})
	res := Tokenize("khaka", l)
	assert.Equal(t, "khaka", res.Output)
	assert.Empty(t, res.Unknowns)
}

func TestTokenizeDeterministic(t *testing.T) {
	teardown := config(t)
	defer teardown()

	l := newLookup(map[string]string{"dh": "DH", "a": "A", "r": "R", "m": "M"})
	r1 := Tokenize("dharma", l)
	r2 := Tokenize("dharma", l)
	assert.Equal(t, r1, r2)
	assert.Equal(t, "DHARMA", r1.Output)
}

func TestTokenizeUnknownFragmentCoalesced(t *testing.T) {
	teardown := config(t)
	defer teardown()

	l := newLookup(map[string]string{"dh": "dh", "a": "a", "r": "r", "m": "m"})
	res := Tokenize("dharmakr", l)
	assert.Equal(t, "dharmakr", res.Output)
	// "k" and "r" are letters absent from the table: they pass through
	// verbatim and coalesce into one unknown fragment at rune offset 6.
	if assert.Len(t, res.Unknowns, 1) {
		assert.Equal(t, 6, res.Unknowns[0].Position)
		assert.Equal(t, "kr", res.Unknowns[0].Text)
	}
}

func TestTokenizeWhitespaceAndDigitsPassThroughWithoutUnknown(t *testing.T) {
	teardown := config(t)
	defer teardown()

	l := newLookup(map[string]string{"a": "a"})
	res := Tokenize("a 5 a", l)
	assert.Equal(t, "a 5 a", res.Output)
	assert.Empty(t, res.Unknowns)
}

func TestTokenizeWithReportAllUnknowns(t *testing.T) {
	teardown := config(t)
	defer teardown()

	l := newLookup(map[string]string{"a": "a"})
	res := Tokenize("a 5", l, WithReportAllUnknowns())
	assert.Equal(t, "a 5", res.Output)
	// The space and the digit are adjacent, so they coalesce into one
	// fragment like any other run of unknown runes.
	if assert.Len(t, res.Unknowns, 1) {
		assert.Equal(t, 1, res.Unknowns[0].Position)
		assert.Equal(t, " 5", res.Unknowns[0].Text)
	}
}

func TestTokenizeConsumesCodepointsNotBytes(t *testing.T) {
	teardown := config(t)
	defer teardown()

	l := newLookup(map[string]string{"a": "a"})
	// U+0905 (Devanagari 'a') is multi-byte in UTF-8; it is absent from
	// the table and must be recorded as exactly one unknown code point,
	// not split across bytes.
	res := Tokenize("aअa", l)
	assert.Equal(t, "aअa", res.Output)
	if assert.Len(t, res.Unknowns, 1) {
		assert.Equal(t, "अ", res.Unknowns[0].Text)
		assert.Equal(t, 1, res.Unknowns[0].Position)
	}
}

func TestTokenizeSpansMapOutputPositionBackToInput(t *testing.T) {
	teardown := config(t)
	defer teardown()

	l := newLookup(map[string]string{"dh": "DH", "a": "A", "r": "R", "m": "M"})
	res := Tokenize("dharma", l)
	// "DH" occupies output runes [0,2); both must map back to input
	// position 0, where "dh" started.
	pos, ok := MapOutputPosition(res.Spans, 0)
	require.True(t, ok)
	assert.Equal(t, 0, pos)
	pos, ok = MapOutputPosition(res.Spans, 1)
	require.True(t, ok)
	assert.Equal(t, 0, pos)
	// "R" (output rune 3) maps back to input position 3 ("r").
	pos, ok = MapOutputPosition(res.Spans, 3)
	require.True(t, ok)
	assert.Equal(t, 3, pos)
}

func TestTokenizeEmptyInput(t *testing.T) {
	teardown := config(t)
	defer teardown()

	l := newLookup(map[string]string{"a": "a"})
	res := Tokenize("", l)
	assert.Equal(t, "", res.Output)
	assert.Empty(t, res.Unknowns)
}
