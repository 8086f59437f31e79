// SPDX-License-Identifier: EPL-2.0

// Package server exposes the translator over HTTP.
//
// # Routes
//
//	GET /api/morse/encode?text=SOS      text/plain "... --- ..."
//	GET /api/morse/decode?code=...      text/plain "SOS"
//	GET /api/morse/sound?text=SOS       audio as morse_code.wav attachment
//	GET /health                         JSON status
//	GET /metrics                        Prometheus exposition
//
// A missing query parameter is answered with 400 and any method other than
// GET with 405. Every response carries an X-Request-ID header; an incoming
// one is echoed, otherwise a fresh UUID is assigned.
//
// Rendered audio is cached by its Morse string for the configured TTL, so
// texts that differ only in letter case share one entry.
package server
