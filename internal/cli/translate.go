// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Katlego-Ram2/MorseCodeTranslator/code"
)

func newEncodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "encode [text...]",
		Short: "Convert text to Morse code",
		Long: `Convert text to International Morse code. Arguments are joined with a
space; without arguments the text is read from standard input.

Characters without a Morse symbol are written as "?".`,
		Example: `  morse encode SOS
  echo "hello world" | morse encode`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := input(cmd, args)
			if err != nil {
				return err
			}
			morse := code.Encode(text)
			a.logger.Debug("Encoded text", slog.Int("chars", len(text)), slog.Int("symbols", len(strings.Fields(morse))))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), morse)
			return err
		},
	}
}

func newDecodeCmd(a *app) *cobra.Command {
	var (
		symbols []string
		help    bool
	)

	return &cobra.Command{
		Use:   "decode [--config file] [--log-level level] [--log-format format] [--] [code...]",
		Short: "Convert Morse code to text",
		Long: `Convert Morse code to text. Symbols are separated by spaces and words
by " / ". Without arguments the code is read from standard input.

Arguments are not parsed as flags, so dashes need no quoting. Global flags
are only recognised before the code; a "--" ends them.`,
		Example: `  morse decode ... --- ...
  morse decode "-- --- .-. ... ."
  morse decode --log-level debug -- -- ---`,
		DisableFlagParsing: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			symbols, help, err = a.leadingGlobalFlags(args)
			if err != nil {
				return err
			}
			return a.setup(cmd, symbols)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if help {
				return cmd.Help()
			}

			morse, err := input(cmd, symbols)
			if err != nil {
				return err
			}
			text := code.Decode(morse)
			a.logger.Debug("Decoded code", slog.Int("symbols", len(strings.Fields(morse))), slog.Int("chars", len(text)))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
			return err
		},
	}
}

// input joins args, or reads standard input when there are none. One
// trailing line break is dropped.
func input(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	s := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(s, "\r"), nil
}
