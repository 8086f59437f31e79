// SPDX-License-Identifier: EPL-2.0

package code

import "strings"

const wordSeparatorToken = " " + WordSeparator + " "

// Transducer encodes and decodes with a fixed Alphabet.
// It holds no mutable state and is safe for concurrent use.
type Transducer struct {
	alphabet *Alphabet
}

var defaultTransducer = NewTransducer(International)

// NewTransducer returns a Transducer over a. A nil alphabet selects
// International.
func NewTransducer(a *Alphabet) *Transducer {
	if a == nil {
		a = International
	}
	return &Transducer{alphabet: a}
}

func (t *Transducer) Alphabet() *Alphabet { return t.alphabet }

// Encode converts text to a Morse string. Characters are upper-cased first;
// those without a symbol are written as Unknown.
func (t *Transducer) Encode(text string) string {
	var b strings.Builder
	b.Grow(len(text) * 4)

	for _, r := range strings.ToUpper(text) {
		sym, ok := t.alphabet.Symbol(r)
		if !ok {
			sym = Unknown
		}
		b.WriteString(sym)
		b.WriteByte(' ')
	}

	return strings.TrimSpace(b.String())
}

// Decode converts a Morse string to text. Words are separated by " / ",
// symbols by spaces. Unknown symbols are written as Unknown.
func (t *Transducer) Decode(morse string) string {
	words := strings.Split(morse, wordSeparatorToken)

	var b strings.Builder
	b.Grow(len(morse) / 2)

	for i, word := range words {
		if i > 0 {
			b.WriteByte(' ')
		}
		// Fields drops the empty tokens runs of spaces would produce.
		for _, sym := range strings.Fields(word) {
			r, ok := t.alphabet.Char(sym)
			if !ok {
				b.WriteString(Unknown)
				continue
			}
			b.WriteRune(r)
		}
	}

	return strings.TrimSpace(b.String())
}

// Encode converts text to Morse with the International alphabet.
func Encode(text string) string { return defaultTransducer.Encode(text) }

// Decode converts Morse to text with the International alphabet.
func Decode(morse string) string { return defaultTransducer.Decode(morse) }
