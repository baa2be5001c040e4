// Code generated by a data-table build step for the built-in Devanagari
// classification the Hub Projector needs. Hand-edit with care: every rune
// is written as a \u escape rather than a literal glyph so the exact code
// point is unambiguous in source.
package hub

// independentVowels maps a Devanagari independent-vowel code point to its
// phonemic spelling.
var independentVowels = map[rune]string{
	'\u0905': "\u0061",
	'\u0906': "\u0101",
	'\u0907': "\u0069",
	'\u0908': "\u012b",
	'\u0909': "\u0075",
	'\u090a': "\u016b",
	'\u090b': "\u0072\u0325",
	'\u0960': "\u0072\u0325\u0304",
	'\u090c': "\u006c\u0325",
	'\u0961': "\u006c\u0325\u0304",
	'\u090f': "\u0065",
	'\u0910': "\u0061\u0069",
	'\u0913': "\u006f",
	'\u0914': "\u0061\u0075",
}

// dependentVowelSigns maps a Devanagari dependent vowel sign (matra) code
// point to its phonemic spelling.
var dependentVowelSigns = map[rune]string{
	'\u093e': "\u0101",
	'\u093f': "\u0069",
	'\u0940': "\u012b",
	'\u0941': "\u0075",
	'\u0942': "\u016b",
	'\u0943': "\u0072\u0325",
	'\u0944': "\u0072\u0325\u0304",
	'\u0962': "\u006c\u0325",
	'\u0963': "\u006c\u0325\u0304",
	'\u0947': "\u0065",
	'\u0948': "\u0061\u0069",
	'\u094b': "\u006f",
	'\u094c': "\u0061\u0075",
}

// consonants maps a Devanagari consonant code point to its bare phonemic
// consonant (no inherent vowel).
var consonants = map[rune]string{
	'\u0915': "\u006b",
	'\u0916': "\u006b\u0068",
	'\u0917': "\u0067",
	'\u0918': "\u0067\u0068",
	'\u0919': "\u1e45",
	'\u091a': "\u0063",
	'\u091b': "\u0063\u0068",
	'\u091c': "\u006a",
	'\u091d': "\u006a\u0068",
	'\u091e': "\u00f1",
	'\u091f': "\u1e6d",
	'\u0920': "\u1e6d\u0068",
	'\u0921': "\u1e0d",
	'\u0922': "\u1e0d\u0068",
	'\u0923': "\u1e47",
	'\u0924': "\u0074",
	'\u0925': "\u0074\u0068",
	'\u0926': "\u0064",
	'\u0927': "\u0064\u0068",
	'\u0928': "\u006e",
	'\u092a': "\u0070",
	'\u092b': "\u0070\u0068",
	'\u092c': "\u0062",
	'\u092d': "\u0062\u0068",
	'\u092e': "\u006d",
	'\u092f': "\u0079",
	'\u0930': "\u0072",
	'\u0932': "\u006c",
	'\u0935': "\u0076",
	'\u0936': "\u015b",
	'\u0937': "\u1e63",
	'\u0938': "\u0073",
	'\u0939': "\u0068",
	'\u0933': "\u1e37",
}

// combiningMarks maps anusvara/visarga/candrabindu to their phonemic form.
var combiningMarks = map[rune]string{
	'\u0902': "\u1e41",
	'\u0903': "\u1e25",
	'\u0901': "\u006d\u0310",
}

// nuktaConsonants maps a base consonant code point (when followed by the
// nukta sign) to the phonemic consonant it actually represents.
var nuktaConsonants = map[rune]string{
	'\u0915': "\u0071",
	'\u0916': "\u0071\u0068",
	'\u0917': "\u0121",
	'\u091c': "\u007a",
	'\u0921': "\u1e5b",
	'\u0922': "\u1e5b\u0068",
	'\u092b': "\u0066",
	'\u092f': "\u1e8f",
}

const (
	virama     = '\u094d'
	nukta      = '\u093c'
	avagraha   = '\u093d'
	avagrahaPh = "\u0027"
)

// devanagariDigits maps '0'-'9' worth of Devanagari digit code points to
// their ASCII digit.
var devanagariDigits = map[rune]rune{
	'\u0966': '\u0030',
	'\u0967': '\u0031',
	'\u0968': '\u0032',
	'\u0969': '\u0033',
	'\u096a': '\u0034',
	'\u096b': '\u0035',
	'\u096c': '\u0036',
	'\u096d': '\u0037',
	'\u096e': '\u0038',
	'\u096f': '\u0039',
}

func isDevanagariConsonant(r rune) bool { _, ok := consonants[r]; return ok }
func isDevanagariIndependentVowel(r rune) bool { _, ok := independentVowels[r]; return ok }
func isDevanagariVowelSign(r rune) bool { _, ok := dependentVowelSigns[r]; return ok }

// asciiDigits is the reverse of devanagariDigits, built once at init
// time so PhonemicToDevanagari can translate an ASCII digit back into
// its Devanagari code point.
var asciiDigits = map[rune]rune{}


type vowelInfo struct {
	IndependentRune rune
	SignRune        rune // 0 means the implicit vowel /a/, no sign
}

// vowelPhonemes maps a phonemic vowel spelling to its Devanagari
// independent-vowel and dependent-vowel-sign code points.
var vowelPhonemes = map[string]vowelInfo{
	"\u0061": {IndependentRune: '\u0905', SignRune: 0},
	"\u0101": {IndependentRune: '\u0906', SignRune: '\u093e'},
	"\u0069": {IndependentRune: '\u0907', SignRune: '\u093f'},
	"\u012b": {IndependentRune: '\u0908', SignRune: '\u0940'},
	"\u0075": {IndependentRune: '\u0909', SignRune: '\u0941'},
	"\u016b": {IndependentRune: '\u090a', SignRune: '\u0942'},
	"\u0072\u0325": {IndependentRune: '\u090b', SignRune: '\u0943'},
	"\u0072\u0325\u0304": {IndependentRune: '\u0960', SignRune: '\u0944'},
	"\u006c\u0325": {IndependentRune: '\u090c', SignRune: '\u0962'},
	"\u006c\u0325\u0304": {IndependentRune: '\u0961', SignRune: '\u0963'},
	"\u0065": {IndependentRune: '\u090f', SignRune: '\u0947'},
	"\u0061\u0069": {IndependentRune: '\u0910', SignRune: '\u0948'},
	"\u006f": {IndependentRune: '\u0913', SignRune: '\u094b'},
	"\u0061\u0075": {IndependentRune: '\u0914', SignRune: '\u094c'},
}

// consonantPhonemes is the reverse of consonants: phonemic consonant
// spelling to Devanagari consonant code point.
var consonantPhonemes = map[string]rune{}

// consonantNuktaPhonemes is the reverse of nuktaConsonants: a
// nukta-bearing phonemic consonant spelling to the base Devanagari
// consonant code point it is written against, with the nukta sign
// appended. Kept separate from consonantPhonemes so a matching lookup
// can tell the two cases apart and emit the trailing nukta rune.
var consonantNuktaPhonemes = map[string]rune{}

// markPhonemes is the reverse of combiningMarks.
var markPhonemes = map[string]rune{}

func init() {
	for r, p := range consonants {
		consonantPhonemes[p] = r
	}
	for r, p := range nuktaConsonants {
		consonantNuktaPhonemes[p] = r
	}
	for r, p := range combiningMarks {
		markPhonemes[p] = r
	}
	for r, a := range devanagariDigits {
		asciiDigits[a] = r
	}
}

