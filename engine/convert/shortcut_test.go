package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shlesha-go/shlesha/engine/tokenizer"
)

const slp1LikeSrc = `
[metadata]
name = testslp1
script_type = roman
has_implicit_a = false
target_hub = phonemic

[mappings.vowels]
a = a
A = ā

[mappings.consonants]
D = dh
r = r
m = m
`

func TestBuildShortcutSameHubSideComposesKeyByKey(t *testing.T) {
	teardown := config(t)
	defer teardown()

	iast := mustConverter(t, phonemicRomanSrc)
	slp1 := mustConverter(t, slp1LikeSrc)

	st, ok, err := BuildShortcut(iast, slp1)
	require.NoError(t, err)
	require.True(t, ok, "both schemas share the phonemic hub side; the shortcut must build")

	res := tokenizer.Tokenize("dharma", st)
	assert.Equal(t, "Darma", res.Output)
	assert.Empty(t, res.Unknowns)
}

func TestBuildShortcutDeclinesAcrossHubSides(t *testing.T) {
	teardown := config(t)
	defer teardown()

	devaSrc := `
[metadata]
name = testdevashort
script_type = abugida
has_implicit_a = true
target_hub = devanagari

[mappings.consonants]
ध = ध
`
	deva := mustConverter(t, devaSrc)
	iast := mustConverter(t, phonemicRomanSrc)

	_, ok, err := BuildShortcut(iast, deva)
	require.NoError(t, err)
	assert.False(t, ok, "differing hub sides require context-sensitive reassembly the shortcut cannot provide")
}

func TestBuildShortcutSameScriptIsNoop(t *testing.T) {
	teardown := config(t)
	defer teardown()

	iast := mustConverter(t, phonemicRomanSrc)
	_, ok, err := BuildShortcut(iast, iast)
	require.NoError(t, err)
	assert.False(t, ok)
}
