package hub

import "golang.org/x/text/unicode/norm"

// RecognizedDevanagariRune reports whether r is a code point the Hub
// Projector's built-in Devanagari classification understands: an
// independent vowel, a consonant, a dependent vowel sign, the virama,
// the nukta, the avagraha, a combining mark, or a digit.
func RecognizedDevanagariRune(r rune) bool {
	if isDevanagariConsonant(r) || isDevanagariIndependentVowel(r) || isDevanagariVowelSign(r) {
		return true
	}
	switch r {
	case virama, nukta, avagraha:
		return true
	}
	if combiningMarks[r] != "" {
		return true
	}
	if _, ok := devanagariDigits[r]; ok {
		return true
	}
	return false
}

// ValidDevanagariHubKey reports whether every rune of payload is
// individually recognized by the Hub Projector (a HubKeyUnknown check
// on the Devanagari hub side). This is a context-free,
// per-rune check: it does not run the full DevanagariToPhonemic
// reassembly, because a canonical value declared by a schema (e.g. a
// bare virama entry used only to keep the Tokenizer's forward table
// complete) may be orthographically incomplete in isolation without
// being an unrecognized code point.
func ValidDevanagariHubKey(payload string) bool {
	for _, r := range norm.NFC.String(payload) {
		if !RecognizedDevanagariRune(r) {
			return false
		}
	}
	return true
}

// ValidPhonemicHubKey reports whether payload tokenizes completely
// against the phonemic phoneme vocabulary with no unrecognized
// fragment (a HubKeyUnknown check on the phonemic hub side).
func ValidPhonemicHubKey(payload string) bool {
	_, unknowns := scanPhonemes(norm.NFC.String(payload))
	return len(unknowns) == 0
}
