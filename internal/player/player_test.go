// SPDX-License-Identifier: EPL-2.0

package player

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestArgv(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"appended", nil, []string{"/tmp/a.wav"}},
		{"after flags", []string{"-q"}, []string{"-q", "/tmp/a.wav"}},
		{"placeholder", []string{"-c", "play '{file}' now"}, []string{"-c", "play '/tmp/a.wav' now"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := NewWithCommand("x", tt.args...)
			assert.Equal(t, tt.want, p.argv("/tmp/a.wav"))
		})
	}
}

func TestCandidates(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "afplay", names("darwin"))
	assert.Equal(t, "powershell", names("windows"))
	assert.Equal(t, "paplay, aplay, ffplay", names("linux"))

	ps := candidates("windows")[0]
	assert.Contains(t, strings.Join(ps.args, " "), FilePlaceholder)
}

func TestPlay(t *testing.T) {
	t.Parallel()
	requireShell(t)

	var out bytes.Buffer
	p := NewWithCommand("sh", "-c", `test -s "$1" && wc -c < "$1" && echo "$1"`, "sh")
	p.Stdout = &out

	require.NoError(t, p.Play(context.Background(), []byte("RIFF0000WAVE")))

	lines := strings.Fields(out.String())
	require.Len(t, lines, 2)
	assert.Equal(t, "12", lines[0])

	_, err := os.Stat(lines[1])
	assert.True(t, errors.Is(err, os.ErrNotExist), "temp file removed")
}

func TestPlay_CommandFails(t *testing.T) {
	t.Parallel()
	requireShell(t)

	p := NewWithCommand("sh", "-c", "exit 3", "sh")
	err := p.Play(context.Background(), []byte{1})
	require.Error(t, err)

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 3, exitErr.ExitCode())
}

func TestPlay_Empty(t *testing.T) {
	t.Parallel()

	err := NewWithCommand("sh").Play(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNothingToPlay)
}

func TestPlay_MissingCommand(t *testing.T) {
	t.Parallel()

	err := NewWithCommand("definitely-not-an-audio-player").Play(context.Background(), []byte{1})
	assert.Error(t, err)
}

func TestStart_Cancel(t *testing.T) {
	t.Parallel()
	requireShell(t)

	ctx, cancel := context.WithCancel(context.Background())
	p := NewWithCommand("sh", "-c", "sleep 10", "sh")

	done := p.Start(ctx, []byte{1})
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("player was not stopped")
	}

	_, open := <-done
	assert.False(t, open)
}

func TestStart_Completes(t *testing.T) {
	t.Parallel()
	requireShell(t)

	done := NewWithCommand("sh", "-c", "true", "sh").Start(context.Background(), []byte{1})
	assert.NoError(t, <-done)
}

type fakeBackend struct{ name string }

func (f fakeBackend) Name() string                       { return f.name }
func (f fakeBackend) Play(context.Context, []byte) error { return nil }

func TestOpen_Fallback(t *testing.T) {
	t.Parallel()

	device := func() (Backend, error) { return fakeBackend{"device"}, nil }
	noDevice := func() (Backend, error) { return nil, ErrNoDevice }
	command := func() (Backend, error) { return fakeBackend{"command"}, nil }
	noCommand := func() (Backend, error) { return nil, ErrNoPlayer }

	b, err := open(device, command)
	require.NoError(t, err)
	assert.Equal(t, "device", b.Name())

	b, err = open(noDevice, command)
	require.NoError(t, err)
	assert.Equal(t, "command", b.Name())

	_, err = open(noDevice, noCommand)
	assert.ErrorIs(t, err, ErrNoDevice)
	assert.ErrorIs(t, err, ErrNoPlayer)
}

func TestPlayer_Name(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "aplay", NewWithCommand("/usr/bin/aplay").Name())
}

func TestStart_Backend(t *testing.T) {
	t.Parallel()

	done := Start(context.Background(), fakeBackend{"x"}, []byte{1})
	assert.NoError(t, <-done)
	_, open := <-done
	assert.False(t, open)
}
