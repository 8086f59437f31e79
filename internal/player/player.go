// SPDX-License-Identifier: EPL-2.0

// Package player plays WAV data. Open prefers the audio device (ebiten/oto)
// and falls back to a command line player found on the host (afplay, paplay,
// aplay, ffplay or PowerShell).
//
// The device backend is compiled on macOS and Windows; on other systems it
// needs the playdevice build tag and the platform audio headers (ALSA on
// Linux).
package player

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

var (
	// ErrNoPlayer is returned when no known audio player is installed.
	ErrNoPlayer = errors.New("no audio player found")
	// ErrNoDevice is returned when the device backend is not available.
	ErrNoDevice = errors.New("audio device playback not available")
	// ErrNothingToPlay is returned for empty WAV data.
	ErrNothingToPlay = errors.New("nothing to play")
)

// Backend plays one complete WAV file, blocking until playback ends or ctx
// is done.
type Backend interface {
	Name() string
	Play(ctx context.Context, wav []byte) error
}

// Open returns the device backend when it is available, otherwise the first
// command line player on PATH.
func Open() (Backend, error) {
	return open(
		func() (Backend, error) { return NewDevice() },
		func() (Backend, error) { return New() },
	)
}

func open(device, command func() (Backend, error)) (Backend, error) {
	b, devErr := device()
	if devErr == nil {
		return b, nil
	}
	b, err := command()
	if err != nil {
		return nil, errors.Join(devErr, err)
	}
	return b, nil
}

// Start plays wav on b in the background. The channel yields the result of
// Play once and is then closed.
func Start(ctx context.Context, b Backend, wav []byte) <-chan error {
	done := make(chan error, 1)
	go func() {
		defer close(done)
		done <- b.Play(ctx, wav)
	}()
	return done
}

// FilePlaceholder in an argument is replaced by the path of the WAV file.
// Without one, the path is appended as the last argument.
const FilePlaceholder = "{file}"

type candidate struct {
	name string
	args []string
}

func candidates(goos string) []candidate {
	switch goos {
	case "darwin":
		return []candidate{{name: "afplay"}}
	case "windows":
		return []candidate{{
			name: "powershell",
			args: []string{"-NoProfile", "-Command",
				"(New-Object Media.SoundPlayer '" + FilePlaceholder + "').PlaySync()"},
		}}
	default:
		return []candidate{
			{name: "paplay"},
			{name: "aplay", args: []string{"-q"}},
			{name: "ffplay", args: []string{"-nodisp", "-autoexit", "-loglevel", "quiet"}},
		}
	}
}

// Player runs one external command per playback.
type Player struct {
	command string
	args    []string

	// Stdout and Stderr receive the player output. Nil discards it.
	Stdout io.Writer
	Stderr io.Writer
}

// New returns a Player for the first audio command found on PATH.
func New() (*Player, error) {
	for _, c := range candidates(runtime.GOOS) {
		path, err := exec.LookPath(c.name)
		if err != nil {
			continue
		}
		return &Player{command: path, args: c.args}, nil
	}
	return nil, fmt.Errorf("%w (tried %s)", ErrNoPlayer, names(runtime.GOOS))
}

func names(goos string) string {
	var out []string
	for _, c := range candidates(goos) {
		out = append(out, c.name)
	}
	return strings.Join(out, ", ")
}

// NewWithCommand returns a Player running name with args.
func NewWithCommand(name string, args ...string) *Player {
	return &Player{command: name, args: args}
}

func (p *Player) Command() string { return p.command }

func (p *Player) Name() string { return filepath.Base(p.command) }

func (p *Player) argv(path string) []string {
	out := make([]string, 0, len(p.args)+1)
	replaced := false
	for _, a := range p.args {
		if strings.Contains(a, FilePlaceholder) {
			a = strings.ReplaceAll(a, FilePlaceholder, path)
			replaced = true
		}
		out = append(out, a)
	}
	if !replaced {
		out = append(out, path)
	}
	return out
}

// Play writes wav to a temporary file and blocks until the player exits or
// ctx is done. Cancelling ctx kills the player.
func (p *Player) Play(ctx context.Context, wav []byte) error {
	if len(wav) == 0 {
		return ErrNothingToPlay
	}

	f, err := os.CreateTemp("", "morse-*.wav")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(f.Name())

	if _, err := f.Write(wav); err != nil {
		f.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	cmd := exec.CommandContext(ctx, p.command, p.argv(f.Name())...)
	cmd.Stdout = p.Stdout
	cmd.Stderr = p.Stderr

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%s: %w", p.command, err)
	}
	return nil
}

// Start plays wav in the background.
func (p *Player) Start(ctx context.Context, wav []byte) <-chan error {
	return Start(ctx, p, wav)
}
