package hub

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidDevanagariHubKeyAcceptsKnownRunes(t *testing.T) {
	teardown := config(t)
	defer teardown()

	assert.True(t, ValidDevanagariHubKey("धर्म"))
	assert.True(t, ValidDevanagariHubKey("्")) // bare virama, complete in isolation or not
}

func TestValidDevanagariHubKeyRejectsUnknownRune(t *testing.T) {
	teardown := config(t)
	defer teardown()

	assert.False(t, ValidDevanagariHubKey("dharma")) // Latin letters, not Devanagari
}

func TestValidPhonemicHubKeyAcceptsKnownPhonemes(t *testing.T) {
	teardown := config(t)
	defer teardown()

	assert.True(t, ValidPhonemicHubKey("dharma"))
	assert.True(t, ValidPhonemicHubKey("ṁ"))
}

func TestValidPhonemicHubKeyRejectsUnknownFragment(t *testing.T) {
	teardown := config(t)
	defer teardown()

	assert.False(t, ValidPhonemicHubKey("dh#rma"))
}
