// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	morse "github.com/Katlego-Ram2/MorseCodeTranslator"
	"github.com/Katlego-Ram2/MorseCodeTranslator/formats/wav"
)

const defaultConvertRate = 8000

func newConvertCmd(a *app) *cobra.Command {
	var rate int

	cmd := &cobra.Command{
		Use:   "convert <input> <output.wav>",
		Short: "Convert an audio file to mono 16-bit WAV",
		Long: `Decode a WAV, AIFF, MP3 or Ogg Vorbis file, mix it down to mono,
resample it and write it as 16-bit PCM WAV. Useful for preparing recordings
for "morse listen".`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			inPath, outPath := args[0], args[1]
			if rate <= 0 {
				return fmt.Errorf("rate must be positive, got %d", rate)
			}

			dec, err := morse.DefaultRegistry().ForPath(inPath)
			if err != nil {
				return err
			}

			in, err := os.Open(inPath)
			if err != nil {
				return err
			}
			defer in.Close()

			src, err := dec.Decode(in)
			if err != nil {
				return fmt.Errorf("decode %s: %w", inPath, err)
			}
			defer src.Close()

			pcm, outRate, err := morse.ResampleToMono16(src, rate, 0)
			if err != nil {
				return fmt.Errorf("resample %s: %w", inPath, err)
			}

			data, err := wav.Bytes16(outRate, pcm)
			if err != nil {
				return err
			}
			if err := os.WriteFile(outPath, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", outPath, err)
			}

			a.logger.Info("Converted audio",
				slog.String("input", inPath),
				slog.String("output", outPath),
				slog.Int("source_rate", src.SampleRate()),
				slog.Int("source_channels", src.Channels()),
				slog.Int("sample_rate", outRate),
				slog.Int("samples", len(pcm)),
			)
			return nil
		},
	}

	cmd.Flags().IntVar(&rate, "rate", defaultConvertRate, "output sample rate in Hz")
	return cmd
}
