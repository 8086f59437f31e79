// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	morse "github.com/Katlego-Ram2/MorseCodeTranslator"
)

func newListenCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "listen <file>",
		Short: "Decode Morse tones from an audio file",
		Long: `Detect keyed Morse tones in a WAV, AIFF, MP3 or Ogg Vorbis file and
print the Morse code followed by the decoded text.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, text, err := morse.ListenFile(args[0])
			if err != nil {
				return fmt.Errorf("listen %s: %w", args[0], err)
			}

			a.logger.Debug("Detected Morse", slog.String("file", args[0]), slog.String("code", code))

			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintln(out, code); err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, text)
			return err
		},
	}
}
