// SPDX-License-Identifier: EPL-2.0

// Package config loads the settings of the morse command.
//
// Values come, in increasing precedence, from Defaults, an optional YAML
// file and MORSE_* environment variables (MORSE_SERVER_ADDRESS,
// MORSE_AUDIO_WPM, MORSE_LOGGING_LEVEL, ...):
//
//	server:
//	  address: ":8080"
//	  read_timeout: 10s
//	  write_timeout: 30s
//	  cache_ttl: 10m
//	audio:
//	  sample_rate: 44100
//	  frequency: 800
//	  wpm: 0        # 0 keeps the 100 ms dot
//	  bit_depth: 8
//	logging:
//	  level: info   # debug, info, warn, error
//	  format: text  # text, json
//	  output: stderr
package config
