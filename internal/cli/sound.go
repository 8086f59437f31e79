// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	morse "github.com/Katlego-Ram2/MorseCodeTranslator"
	"github.com/Katlego-Ram2/MorseCodeTranslator/formats/wav"
	"github.com/Katlego-Ram2/MorseCodeTranslator/internal/player"
	"github.com/Katlego-Ram2/MorseCodeTranslator/synth"
)

const stdoutPath = "-"

func newSoundCmd(a *app) *cobra.Command {
	var (
		output string
		bits   int
		rate   int
	)

	cmd := &cobra.Command{
		Use:   "sound [text...]",
		Short: "Render text as a Morse WAV file",
		Long: `Render text as a mono WAV file of Morse tones. The tone, speed and
sample format come from the audio section of the configuration; --bits and
--rate override it. Use "-o -" to write to standard output.`,
		Example: `  morse sound -o sos.wav SOS
  morse sound --bits 16 --rate 8000 -o cq.wav "CQ CQ DE K1ABC"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := input(cmd, args)
			if err != nil {
				return err
			}

			audio := a.cfg.Audio
			if cmd.Flags().Changed("bits") {
				audio.BitDepth = bits
			}
			if cmd.Flags().Changed("rate") {
				audio.SampleRate = rate
			}
			if err := audio.Validate(); err != nil {
				return err
			}

			data, err := render(audio.Synth(), audio.BitDepth, text)
			if err != nil {
				return err
			}

			if output == stdoutPath {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}

			a.logger.Info("Wrote Morse audio",
				slog.String("file", output),
				slog.Int("bytes", len(data)),
				slog.Int("sample_rate", audio.SampleRate),
				slog.Int("bit_depth", audio.BitDepth),
			)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", `output file ("-" for stdout)`)
	cmd.Flags().IntVar(&bits, "bits", 8, "bits per sample: 8 or 16")
	cmd.Flags().IntVar(&rate, "rate", synth.DefaultSampleRate, "sample rate in Hz")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

// render encodes text as a WAV file of the given bit depth.
func render(cfg synth.Config, bitDepth int, text string) ([]byte, error) {
	s := synth.New(cfg)
	if bitDepth == 8 {
		return s.Synthesize(text)
	}

	pcm, rate, err := morse.ResampleToMono16(s.Source(text), s.SampleRate(), 0)
	if err != nil {
		return nil, err
	}
	if len(pcm) == 0 {
		return nil, synth.ErrEmptyWaveform
	}
	return wav.Bytes16(rate, pcm)
}

func newPlayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "play [text...]",
		Short: "Play text as Morse tones",
		Long: `Render text with the configured audio settings and play it through the
audio device, or through a system audio player (afplay, paplay, aplay,
ffplay or PowerShell) when the device is not available.
Interrupt to stop playback.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := input(cmd, args)
			if err != nil {
				return err
			}

			data, err := synth.New(a.cfg.Audio.Synth()).Synthesize(text)
			if err != nil {
				return err
			}

			p, err := a.newPlayer()
			if err != nil {
				return err
			}
			if cp, ok := p.(*player.Player); ok {
				cp.Stderr = cmd.ErrOrStderr()
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			a.logger.Debug("Playing Morse audio", slog.String("player", p.Name()), slog.Int("bytes", len(data)))

			err = <-player.Start(ctx, p, data)
			if errors.Is(err, context.Canceled) {
				a.logger.Info("Playback interrupted")
				return nil
			}
			return err
		},
	}
}
