// Package hub implements the Hub Projector: the single component that
// understands the implicit-vowel/virama mechanics and converts between
// the two canonical hub representations.
package hub

import "github.com/shlesha-go/shlesha/engine/schema"

// Variant names one of the two hub representations.
type Variant int

const (
	// Devanagari is the abugida-side hub: Devanagari code points.
	Devanagari Variant = iota
	// Phonemic is the roman-side hub: an ISO-15919-like phoneme string.
	Phonemic
)

func (v Variant) String() string {
	if v == Devanagari {
		return "devanagari"
	}
	return "phonemic"
}

// HubSideOf maps a schema.HubSide onto the corresponding Variant.
func HubSideOf(h schema.HubSide) Variant {
	if h == schema.HubDevanagari {
		return Devanagari
	}
	return Phonemic
}

// Form is a value in one of the two hub spaces.
type Form struct {
	Variant Variant
	Payload string
}
