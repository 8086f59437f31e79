// SPDX-License-Identifier: EPL-2.0

package code_test

import (
	"fmt"

	"github.com/Katlego-Ram2/MorseCodeTranslator/code"
)

func Example_encode() {
	fmt.Println(code.Encode("SOS"))
	fmt.Println(code.Encode("Hi all"))
	fmt.Println(code.Encode("HI!"))
	// Output:
	// ... --- ...
	// .... .. / .- .-.. .-..
	// .... .. ?
}

func Example_decode() {
	fmt.Println(code.Decode("... --- ..."))
	fmt.Println(code.Decode(".... .. / .- .-.. .-.."))
	fmt.Println(code.Decode("...... ..."))
	// Output:
	// SOS
	// HI ALL
	// ?S
}

func Example_customAlphabet() {
	binary, err := code.NewAlphabet(map[rune]string{'0': ".", '1': "-", ' ': code.WordSeparator})
	if err != nil {
		fmt.Println(err)
		return
	}

	tr := code.NewTransducer(binary)
	fmt.Println(tr.Encode("101 1"))
	fmt.Println(tr.Decode("- . - / -"))
	// Output:
	// - . - / -
	// 101 1
}
