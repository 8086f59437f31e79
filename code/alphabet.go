// SPDX-License-Identifier: EPL-2.0

package code

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
)

const (
	// WordSeparator is the symbol of the space character.
	WordSeparator = "/"
	// Unknown replaces characters and symbols that have no mapping.
	Unknown = "?"
)

// International is the built-in alphabet: A-Z, 0-9 and space.
var International = mustAlphabet(map[rune]string{
	'A': ".-", 'B': "-...", 'C': "-.-.", 'D': "-..", 'E': ".",
	'F': "..-.", 'G': "--.", 'H': "....", 'I': "..", 'J': ".---",
	'K': "-.-", 'L': ".-..", 'M': "--", 'N': "-.", 'O': "---",
	'P': ".--.", 'Q': "--.-", 'R': ".-.", 'S': "...", 'T': "-",
	'U': "..-", 'V': "...-", 'W': ".--", 'X': "-..-", 'Y': "-.--",
	'Z': "--..",

	'0': "-----", '1': ".----", '2': "..---", '3': "...--", '4': "....-",
	'5': ".....", '6': "-....", '7': "--...", '8': "---..", '9': "----.",

	' ': WordSeparator,
})

// Alphabet is an immutable two way mapping between characters and Morse
// symbols.
type Alphabet struct {
	forward map[rune]string
	reverse map[string]rune
}

// NewAlphabet builds an Alphabet from a character to symbol table.
// Keys are stored upper-cased. Every symbol must be unique and made of '.'
// and '-' only, except the word separator "/".
func NewAlphabet(table map[rune]string) (*Alphabet, error) {
	if len(table) == 0 {
		return nil, ErrEmptyAlphabet
	}

	a := &Alphabet{
		forward: make(map[rune]string, len(table)),
		reverse: make(map[string]rune, len(table)),
	}

	for r, sym := range table {
		if !validSymbol(sym) {
			return nil, fmt.Errorf("%q -> %q: %w", r, sym, ErrInvalidSymbol)
		}

		r = unicode.ToUpper(r)
		if prev, ok := a.reverse[sym]; ok && prev != r {
			return nil, fmt.Errorf("%q used by %q and %q: %w", sym, prev, r, ErrDuplicateSymbol)
		}
		if prev, ok := a.forward[r]; ok && prev != sym {
			return nil, fmt.Errorf("%q maps to %q and %q: %w", r, prev, sym, ErrDuplicateSymbol)
		}

		a.forward[r] = sym
		a.reverse[sym] = r
	}

	return a, nil
}

func mustAlphabet(table map[rune]string) *Alphabet {
	a, err := NewAlphabet(table)
	if err != nil {
		panic(err)
	}
	return a
}

func validSymbol(sym string) bool {
	if sym == WordSeparator {
		return true
	}
	if sym == "" {
		return false
	}
	return strings.Trim(sym, ".-") == ""
}

// Symbol returns the Morse symbol for r.
func (a *Alphabet) Symbol(r rune) (string, bool) {
	sym, ok := a.forward[r]
	return sym, ok
}

// Char returns the character for a Morse symbol.
func (a *Alphabet) Char(sym string) (rune, bool) {
	r, ok := a.reverse[sym]
	return r, ok
}

// Len is the number of characters in the alphabet.
func (a *Alphabet) Len() int { return len(a.forward) }

// Runes lists the characters of the alphabet in ascending order.
func (a *Alphabet) Runes() []rune {
	runes := make([]rune, 0, len(a.forward))
	for r := range a.forward {
		runes = append(runes, r)
	}
	slices.Sort(runes)
	return runes
}
