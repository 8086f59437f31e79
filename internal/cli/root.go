// SPDX-License-Identifier: EPL-2.0

// Package cli implements the morse command.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Katlego-Ram2/MorseCodeTranslator/internal/config"
	"github.com/Katlego-Ram2/MorseCodeTranslator/internal/player"
)

// app is the state shared by the subcommands of one invocation.
type app struct {
	cfgFile   string
	logLevel  string
	logFormat string

	cfg    *config.Config
	logger *slog.Logger
	logOut io.Closer

	// newPlayer is replaced in tests.
	newPlayer func() (player.Backend, error)
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{newPlayer: player.Open})
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "morse",
		Short: "Translate text to and from Morse code",
		Long: `morse converts text to International Morse code and back, renders
Morse as a WAV tone, listens to recorded Morse and serves all of it over HTTP.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.logOut != nil {
				return a.logOut.Close()
			}
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (YAML)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&a.logFormat, "log-format", "", "log format: text, json")

	rootCmd.AddCommand(
		newEncodeCmd(a),
		newDecodeCmd(a),
		newSoundCmd(a),
		newPlayCmd(a),
		newListenCmd(a),
		newConvertCmd(a),
		newServeCmd(a),
		newConfigCmd(a),
	)

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}

	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Logging.Format = a.logFormat
	}
	if err := cfg.Logging.Validate(); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}

	a.cfg = cfg
	a.logger, a.logOut = initLogger(cfg.Logging, cmd.OutOrStdout(), cmd.ErrOrStderr())
	a.logger.Debug("Configuration loaded", slog.String("file", a.cfgFile))
	return nil
}

// leadingGlobalFlags consumes the persistent flags at the start of args for
// commands that do not let cobra parse their arguments. Parsing stops at the
// first other argument; a "--" stops it and is dropped.
func (a *app) leadingGlobalFlags(args []string) (rest []string, help bool, err error) {
	targets := map[string]*string{
		"config":     &a.cfgFile,
		"log-level":  &a.logLevel,
		"log-format": &a.logFormat,
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return args[i+1:], help, nil
		case arg == "-h" || arg == "--help":
			help = true
			continue
		case strings.HasPrefix(arg, "--"):
			name, value, hasValue := strings.Cut(arg[2:], "=")
			target, ok := targets[name]
			if !ok {
				return args[i:], help, nil
			}
			if !hasValue {
				if i+1 >= len(args) {
					return nil, false, fmt.Errorf("flag needs an argument: --%s", name)
				}
				i++
				value = args[i]
			}
			*target = value
			continue
		}
		return args[i:], help, nil
	}

	return nil, help, nil
}
