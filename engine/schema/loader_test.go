package schema

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/testconfig"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func config(t *testing.T) func() {
	return testconfig.QuickConfig(t)
}

const miniSchema = `
[metadata]
name = testiast
script_type = roman
has_implicit_a = false
target_hub = phonemic
aliases = ti, test-iast

[mappings.vowels]
a = a
A = ā
ai = ai
E = ai*

[mappings.consonants]
k = k
kh = kh

[mappings.marks]
M = ṁ

[mappings.digits]
0 = 0
1 = 1
`

func TestLoadParsesMetadataAndMappings(t *testing.T) {
	teardown := config(t)
	defer teardown()

	s, err := Load(strings.NewReader(miniSchema))
	require.NoError(t, err)
	assert.Equal(t, "testiast", s.Name)
	assert.Equal(t, Roman, s.ScriptType)
	assert.False(t, s.HasImplicitA)
	assert.Equal(t, HubPhonemic, s.TargetHub)
	assert.Equal(t, []string{"ti", "test-iast"}, s.Aliases)

	vowels := s.Category(CategoryVowels)
	require.Len(t, vowels, 4)
	assert.Equal(t, Entry{Key: "a", Canonical: "a", Preferred: true}, vowels[0])
}

func TestLoadExplicitPreferredMarker(t *testing.T) {
	teardown := config(t)
	defer teardown()

	s, err := Load(strings.NewReader(miniSchema))
	require.NoError(t, err)
	vowels := s.Category(CategoryVowels)
	var e Entry
	for _, v := range vowels {
		if v.Key == "E" {
			e = v
		}
	}
	assert.Equal(t, "ai", e.Canonical)
	assert.True(t, e.ExplicitPreferred)
}

func TestLoadRejectsEmptyKey(t *testing.T) {
	teardown := config(t)
	defer teardown()

	bad := "[metadata]\nname = x\nscript_type = roman\ntarget_hub = phonemic\n[mappings.vowels]\n = a\n"
	_, err := Load(strings.NewReader(bad))
	require.Error(t, err)
}

func TestLoadRejectsDuplicateKey(t *testing.T) {
	teardown := config(t)
	defer teardown()

	bad := "[metadata]\nname = x\nscript_type = roman\ntarget_hub = phonemic\n[mappings.vowels]\na = a\na = aa\n"
	_, err := Load(strings.NewReader(bad))
	require.Error(t, err)
}

func TestLoadRejectsUnknownScriptType(t *testing.T) {
	teardown := config(t)
	defer teardown()

	bad := "[metadata]\nname = x\nscript_type = weird\ntarget_hub = phonemic\n"
	_, err := Load(strings.NewReader(bad))
	require.Error(t, err)
}

func TestLoadRequiresName(t *testing.T) {
	teardown := config(t)
	defer teardown()

	bad := "[metadata]\nscript_type = roman\ntarget_hub = phonemic\n"
	_, err := Load(strings.NewReader(bad))
	require.Error(t, err)
}

func TestLoadFoldsDependentVowelsIntoVowelSigns(t *testing.T) {
	teardown := config(t)
	defer teardown()

	src := "[metadata]\nname = x\nscript_type = abugida\ntarget_hub = devanagari\n" +
		"[mappings.dependent_vowels]\nा = ā\n"
	s, err := Load(strings.NewReader(src))
	require.NoError(t, err)
	assert.Len(t, s.Category(CategoryVowelSigns), 1)
	assert.Len(t, s.Category(Category("dependent_vowels")), 0)
}

func TestLoadNormalizesToNFC(t *testing.T) {
	teardown := config(t)
	defer teardown()

	// "a" (U+0061) + combining macron (U+0304), decomposed, must
	// normalize to the single precomposed code point U+0101 on load.
	decomposed := "a\u0304"
	precomposed := "\u0101"
	src := "[metadata]\nname = x\nscript_type = roman\ntarget_hub = phonemic\n" +
		"[mappings.vowels]\n" + decomposed + " = " + decomposed + "\n"
	s, err := Load(strings.NewReader(src))
	require.NoError(t, err)
	vowels := s.Category(CategoryVowels)
	require.Len(t, vowels, 1)
	assert.Equal(t, precomposed, vowels[0].Key)
	assert.Equal(t, 1, len([]rune(vowels[0].Key)))
}
