package registry

import (
	"testing"

	"github.com/npillmayer/schuko/testconfig"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func config(t *testing.T) func() {
	return testconfig.QuickConfig(t)
}

const testSlp1Src = `
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

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	r := New()
	require.NoError(t, r.RegisterSchema(mustSchema(t, testIastSrc)))
	require.NoError(t, r.RegisterSchema(mustSchema(t, testDevaSrc)))
	require.NoError(t, r.RegisterSchema(mustSchema(t, testSlp1Src)))
	return r
}

func TestTransliterateIdentityFastPath(t *testing.T) {
	teardown := config(t)
	defer teardown()

	r := newTestRegistry(t)
	out, err := r.Transliterate("dharma", "testiast", "testiast")
	require.NoError(t, err)
	assert.Equal(t, "dharma", out)
}

func TestTransliterateSameHubSideUsesDirectShortcut(t *testing.T) {
	teardown := config(t)
	defer teardown()

	r := newTestRegistry(t)
	out, err := r.Transliterate("dharma", "testiast", "testslp1")
	require.NoError(t, err)
	assert.Equal(t, "Darma", out)

	// The shortcut is now cached; a second call must produce the same
	// result without rebuilding it.
	out2, err := r.Transliterate("dharma", "testiast", "testslp1")
	require.NoError(t, err)
	assert.Equal(t, out, out2)
}

func TestTransliterateCrossHubSideRoundTrip(t *testing.T) {
	teardown := config(t)
	defer teardown()

	r := newTestRegistry(t)
	// "धर्म" devanagari -> testiast roman, via the two-step hub path.
	out, err := r.Transliterate("धर्म", "testdeva", "testiast")
	require.NoError(t, err)
	assert.Equal(t, "dharma", out)

	back, err := r.Transliterate(out, "testiast", "testdeva")
	require.NoError(t, err)
	assert.Equal(t, "धर्म", back)
}

func TestTransliterateWithMetadataReportsSourceUnknownAtInputPosition(t *testing.T) {
	teardown := config(t)
	defer teardown()

	r := newTestRegistry(t)
	res, err := r.TransliterateWithMetadata("dha#ma", "testiast", "testslp1")
	require.NoError(t, err)
	if assert.Len(t, res.Metadata.Unknowns, 1) {
		u := res.Metadata.Unknowns[0]
		assert.Equal(t, StageSource, u.Stage)
		assert.Equal(t, 3, u.Position)
		assert.Equal(t, "#", u.Text)
	}
}

func TestTransliterateUnknownScriptName(t *testing.T) {
	teardown := config(t)
	defer teardown()

	r := newTestRegistry(t)
	_, err := r.Transliterate("dharma", "bogus", "testiast")
	require.Error(t, err)
}
