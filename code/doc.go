// SPDX-License-Identifier: EPL-2.0

// Package code maps text to Morse code and back.
//
// The package holds a fixed alphabet (letters A-Z, digits 0-9 and the space
// character) and a Transducer that uses it to encode and decode.
//
// # Alphabet
//
// International is the built-in table. It is created once when the package
// is loaded and is never modified afterwards, so it can be shared by any
// number of goroutines:
//
//	sym, ok := code.International.Symbol('S') // "...", true
//	r, ok := code.International.Char("---")   // 'O', true
//
// The space character maps to the word separator "/".
//
// Custom tables can be built with NewAlphabet, which checks that the mapping
// is a bijection made of dots and dashes.
//
// # Encoding
//
// Encode upper-cases the input and joins the symbol of every character with
// a single space. Characters outside the alphabet become "?":
//
//	code.Encode("SOS")    // "... --- ..."
//	code.Encode("hi all") // ".... .. / .- .-.. .-.."
//	code.Encode("HI!")    // ".... .. ?"
//
// # Decoding
//
// Decode splits the input on the " / " word separator, then splits every word
// on spaces. Unknown symbols become "?". A bare "/" token is read as the
// space character:
//
//	code.Decode("... --- ...")       // "SOS"
//	code.Decode(".... .. / .- .-..") // "HI AL"
//	code.Decode("...... ...")        // "?S"
//
// For text made only of supported characters, Decode(Encode(s)) returns s
// upper-cased and trimmed.
//
// # Errors
//
// Encoding and decoding never fail; "?" marks what could not be translated.
// Only NewAlphabet returns errors, see errors.go.
package code
