package hub

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/shlesha-go/shlesha/core"
	"github.com/shlesha-go/shlesha/engine/tokenizer"
	"github.com/shlesha-go/shlesha/internal/trace"
)

// Unknown mirrors tokenizer.Unknown in the hub's own index space (rune
// offsets into the projector's input, which for DevanagariToPhonemic and
// PhonemicToDevanagari is always one of the two hub forms, never the
// original user-facing text; the
// Registry is responsible for translating back to the caller's index
// space).
type Unknown = tokenizer.Unknown

// MalformedInputError reports an orthographically impossible
// Devanagari construct (core.KindMalformedInput).
type MalformedInputError struct {
	Position int
	Detail   string
}

func (e *MalformedInputError) Error() string {
	return core.New(core.KindMalformedInput, "position %d: %s", e.Position, e.Detail).Error()
}

// Option configures a projection call.
type Option func(*options)

type options struct {
	strict bool
}

// WithStrict makes malformed Devanagari constructs (a dependent vowel
// sign or virama with no preceding consonant) fail with a
// *MalformedInputError instead of being downgraded to an unknown
// fragment.
func WithStrict() Option { return func(o *options) { o.strict = true } }

// DevanagariToPhonemic performs a left-to-right walk over Devanagari
// text that reconstructs the implicit /a/ and resolves viramas and
// vowel signs against the preceding consonant.
func DevanagariToPhonemic(input string, opts ...Option) (Form, []Unknown, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	input = norm.NFC.String(input)
	runes := []rune(input)

	var out strings.Builder
	var unknowns []Unknown
	pending := rune(0)     // pending consonant, or 0 if none
	pendingNukta := false  // true if a nukta immediately followed pending

	record := func(pos int, text string) {
		unknowns = append(unknowns, Unknown{Position: pos, Text: text})
	}

	phonemeOf := func(c rune, withNukta bool) string {
		if withNukta {
			if ph, ok := nuktaConsonants[c]; ok {
				return ph
			}
		}
		return consonants[c]
	}

	flushPendingAsA := func() {
		if pending != 0 {
			out.WriteString(phonemeOf(pending, pendingNukta))
			out.WriteRune('a')
			pending = 0
			pendingNukta = false
		}
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case isDevanagariIndependentVowel(r):
			flushPendingAsA()
			out.WriteString(independentVowels[r])
		case r == nukta:
			// Nukta modifies the immediately preceding consonant in
			// place; it never stands alone as pending and is never
			// itself emitted.
			if pending != 0 {
				pendingNukta = true
			} else {
				record(i, string(r))
			}
		case isDevanagariConsonant(r):
			flushPendingAsA()
			pending = r
		case isDevanagariVowelSign(r):
			if pending == 0 {
				if o.strict {
					return Form{}, nil, &MalformedInputError{Position: i, Detail: "dependent vowel sign with no preceding consonant"}
				}
				out.WriteString(dependentVowelSigns[r])
				record(i, string(r))
				continue
			}
			out.WriteString(phonemeOf(pending, pendingNukta))
			out.WriteString(dependentVowelSigns[r])
			pending = 0
			pendingNukta = false
		case r == virama:
			if pending == 0 {
				if o.strict {
					return Form{}, nil, &MalformedInputError{Position: i, Detail: "virama with no preceding consonant"}
				}
				record(i, string(r))
				continue
			}
			out.WriteString(phonemeOf(pending, pendingNukta))
			pending = 0
			pendingNukta = false
		case r == avagraha:
			flushPendingAsA()
			out.WriteString(avagrahaPh)
		case combiningMarks[r] != "":
			flushPendingAsA()
			out.WriteString(combiningMarks[r])
		case devanagariDigits[r] != 0:
			flushPendingAsA()
			out.WriteRune(devanagariDigits[r])
		case unicode.IsDigit(r):
			flushPendingAsA()
			out.WriteRune(r)
		default:
			flushPendingAsA()
			out.WriteRune(r)
			if unicode.IsLetter(r) || unicode.IsMark(r) {
				record(i, string(r))
			}
		}
	}
	flushPendingAsA()

	if len(unknowns) > 0 {
		trace.T().Debugf("hub: devanagari->phonemic recorded %d unknown fragment(s)", len(unknowns))
	}
	return Form{Variant: Phonemic, Payload: out.String()}, coalesce(unknowns), nil
}

func avagrahaRune() rune { return []rune(avagrahaPh)[0] }

// maxPhonemeLen is the bounded lookahead window scanPhonemes uses
// against the phoneme vocabulary built in tables.go, applying the
// longest-prefix rule to the hub's own table.
func maxPhonemeLen() int {
	max := 1
	for p := range vowelPhonemes {
		if n := len([]rune(p)); n > max {
			max = n
		}
	}
	for p := range consonantPhonemes {
		if n := len([]rune(p)); n > max {
			max = n
		}
	}
	for p := range consonantNuktaPhonemes {
		if n := len([]rune(p)); n > max {
			max = n
		}
	}
	for p := range markPhonemes {
		if n := len([]rune(p)); n > max {
			max = n
		}
	}
	return max
}

// PhonemicToDevanagari tokenizes the phonemic string into a phoneme
// sequence, then emits consonant clusters (virama-joined),
// dependent-vowel-sign syllables, independent vowels at utterance
// start, and attaches mark phonemes to the preceding syllable.
func PhonemicToDevanagari(input string, opts ...Option) (Form, []Unknown, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	input = norm.NFC.String(input)

	tokens, unknowns := scanPhonemes(input)

	var out strings.Builder
	pendingConsonant := rune(0) // a just-emitted-as-bare consonant awaiting a vowel or virama
	pendingNukta := false       // true if pendingConsonant takes a trailing nukta sign

	writeConsonant := func() {
		out.WriteRune(pendingConsonant)
		if pendingNukta {
			out.WriteRune(nukta)
		}
	}

	flushConsonantAlone := func() {
		if pendingConsonant != 0 {
			writeConsonant()
			pendingConsonant = 0
			pendingNukta = false
		}
	}

	for _, tok := range tokens {
		switch tok.kind {
		case tokConsonant:
			if pendingConsonant != 0 {
				// Two consonants with no vowel between: join with virama.
				writeConsonant()
				out.WriteRune(virama)
			}
			pendingConsonant = tok.rune
			pendingNukta = tok.nukta
		case tokVowel:
			info := tok.vowel
			if pendingConsonant != 0 {
				if info.SignRune == 0 {
					// implicit /a/: consonant alone
					writeConsonant()
				} else {
					writeConsonant()
					out.WriteRune(info.SignRune)
				}
				pendingConsonant = 0
				pendingNukta = false
			} else {
				out.WriteRune(info.IndependentRune)
			}
		case tokMark:
			flushConsonantAlone()
			out.WriteRune(tok.rune)
		case tokAvagraha:
			flushConsonantAlone()
			out.WriteRune(avagraha)
		case tokDigit:
			flushConsonantAlone()
			if d, ok := asciiDigits[tok.rune]; ok {
				out.WriteRune(d)
			} else {
				out.WriteRune(tok.rune)
			}
		case tokUnknown:
			flushConsonantAlone()
			out.WriteRune(tok.rune)
		}
	}
	flushConsonantAlone()

	if o.strict && len(unknowns) > 0 {
		u := unknowns[0]
		return Form{}, nil, &MalformedInputError{Position: u.Position, Detail: "unrecognized phonemic fragment " + u.Text}
	}

	return Form{Variant: Devanagari, Payload: out.String()}, coalesce(unknowns), nil
}

type phonemeKind int

const (
	tokConsonant phonemeKind = iota
	tokVowel
	tokMark
	tokAvagraha
	tokDigit
	tokUnknown
)

type phonemeToken struct {
	kind  phonemeKind
	rune  rune // the devanagari rune for consonant/mark/avagraha/digit
	nukta bool // tokConsonant only: rune takes a trailing nukta sign
	vowel vowelInfo
}

// scanPhonemes performs the bounded-window longest-prefix scan against
// the hub's own phoneme vocabulary.
func scanPhonemes(input string) ([]phonemeToken, []Unknown) {
	runes := []rune(input)
	n := len(runes)
	maxLen := maxPhonemeLen()

	var tokens []phonemeToken
	var unknowns []Unknown
	var pendingStart = -1
	var pendingText strings.Builder

	flush := func() {
		if pendingStart >= 0 {
			unknowns = append(unknowns, Unknown{Position: pendingStart, Text: pendingText.String()})
			pendingText.Reset()
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
			cand := string(runes[i : i+k])
			if info, ok := vowelPhonemes[cand]; ok {
				flush()
				tokens = append(tokens, phonemeToken{kind: tokVowel, vowel: info})
				i += k
				matched = true
				break
			}
			if r, ok := consonantNuktaPhonemes[cand]; ok {
				flush()
				tokens = append(tokens, phonemeToken{kind: tokConsonant, rune: r, nukta: true})
				i += k
				matched = true
				break
			}
			if r, ok := consonantPhonemes[cand]; ok {
				flush()
				tokens = append(tokens, phonemeToken{kind: tokConsonant, rune: r})
				i += k
				matched = true
				break
			}
			if r, ok := markPhonemes[cand]; ok {
				flush()
				tokens = append(tokens, phonemeToken{kind: tokMark, rune: r})
				i += k
				matched = true
				break
			}
		}
		if matched {
			continue
		}
		r := runes[i]
		if r == avagrahaRune() {
			flush()
			tokens = append(tokens, phonemeToken{kind: tokAvagraha})
			i++
			continue
		}
		if unicode.IsDigit(r) {
			flush()
			tokens = append(tokens, phonemeToken{kind: tokDigit, rune: r})
			i++
			continue
		}
		tokens = append(tokens, phonemeToken{kind: tokUnknown, rune: r})
		if pendingStart < 0 {
			pendingStart = i
		}
		pendingText.WriteRune(r)
		i++
	}
	flush()
	return tokens, unknowns
}

// coalesce merges adjacent Unknown fragments (by rune-adjacency of
// Position+len(Text)) into single runs, matching the tokenizer's own
// coalescing behavior for consistency across packages.
func coalesce(us []Unknown) []Unknown {
	if len(us) < 2 {
		return us
	}
	out := []Unknown{us[0]}
	for _, u := range us[1:] {
		last := &out[len(out)-1]
		if last.Position+len([]rune(last.Text)) == u.Position {
			last.Text += u.Text
			continue
		}
		out = append(out, u)
	}
	return out
}
