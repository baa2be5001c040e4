package convert

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/testconfig"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shlesha-go/shlesha/core"
	"github.com/shlesha-go/shlesha/engine/hub"
	"github.com/shlesha-go/shlesha/engine/schema"
	"github.com/shlesha-go/shlesha/engine/table"
)

func config(t *testing.T) func() {
	return testconfig.QuickConfig(t)
}

func mustConverter(t *testing.T, src string) *Converter {
	t.Helper()
	s, err := schema.Load(strings.NewReader(src))
	require.NoError(t, err)
	tbl, err := table.Build(s)
	require.NoError(t, err)
	return New(tbl)
}

const phonemicRomanSrc = `
[metadata]
name = testiast
script_type = roman
has_implicit_a = false
target_hub = phonemic

[mappings.vowels]
a = a
ā = ā

[mappings.consonants]
dh = dh
r = r
m = m
`

func TestConverterToHubWrapsDeclaredSide(t *testing.T) {
	teardown := config(t)
	defer teardown()

	c := mustConverter(t, phonemicRomanSrc)
	form, unk := c.ToHub("dharma")
	assert.Empty(t, unk)
	assert.Equal(t, hub.Phonemic, form.Variant)
	assert.Equal(t, "dharma", form.Payload)
}

func TestConverterFromHubRejectsWrongSide(t *testing.T) {
	teardown := config(t)
	defer teardown()

	c := mustConverter(t, phonemicRomanSrc)
	_, _, err := c.FromHub(hub.Form{Variant: hub.Devanagari, Payload: "धर्म"})
	require.Error(t, err)
	assert.Equal(t, core.KindWrongHubSide, core.KindOf(err))
}

func TestConverterRoundTripsThroughItsOwnHub(t *testing.T) {
	teardown := config(t)
	defer teardown()

	c := mustConverter(t, phonemicRomanSrc)
	form, unk := c.ToHub("dharma")
	require.Empty(t, unk)
	back, unk2, err := c.FromHub(form)
	require.NoError(t, err)
	require.Empty(t, unk2)
	assert.Equal(t, "dharma", back)
}
