// SPDX-License-Identifier: EPL-2.0

// Command morse translates text to and from Morse code, renders it as audio
// and serves it over HTTP. Run "morse help" for the subcommands.
package main

import (
	"fmt"
	"os"

	"github.com/Katlego-Ram2/MorseCodeTranslator/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
