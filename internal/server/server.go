// SPDX-License-Identifier: EPL-2.0

package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/Katlego-Ram2/MorseCodeTranslator/code"
	"github.com/Katlego-Ram2/MorseCodeTranslator/internal/config"
	"github.com/Katlego-Ram2/MorseCodeTranslator/internal/metrics"
	"github.com/Katlego-Ram2/MorseCodeTranslator/synth"
)

const (
	BasePath        = "/api/morse"
	RequestIDHeader = "X-Request-ID"
	SoundFilename   = "morse_code.wav"
)

// Server is the HTTP API. Build it with New, then either mount Handler or
// call Start.
type Server struct {
	server  *http.Server
	handler http.Handler
	logger  *slog.Logger
	metrics *metrics.Metrics
	synth   *synth.Synthesizer
	tr      *code.Transducer
	audio   *cache.Cache

	startTime time.Time
}

// New wires the routes. A nil synthesizer selects the default one; a nil
// logger discards; a nil metrics set gets a private one.
func New(cfg config.ServerConfig, s *synth.Synthesizer, logger *slog.Logger, m *metrics.Metrics) *Server {
	if s == nil {
		s = synth.New(synth.Config{})
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if m == nil {
		m = metrics.New()
	}

	h := &Server{
		logger:    logger,
		metrics:   m,
		synth:     s,
		tr:        s.Transducer(),
		startTime: time.Now(),
	}
	if cfg.CacheTTL > 0 {
		h.audio = cache.New(cfg.CacheTTL, 2*cfg.CacheTTL)
	}

	mux := http.NewServeMux()
	h.setupRoutes(mux)
	h.handler = mux

	h.server = &http.Server{
		Addr:         cfg.Address,
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	return h
}

func (h *Server) setupRoutes(mux *http.ServeMux) {
	mux.HandleFunc(BasePath+"/encode", h.withMetrics(BasePath+"/encode", h.handleEncode))
	mux.HandleFunc(BasePath+"/decode", h.withMetrics(BasePath+"/decode", h.handleDecode))
	mux.HandleFunc(BasePath+"/sound", h.withMetrics(BasePath+"/sound", h.handleSound))
	mux.HandleFunc("/health", h.withMetrics("/health", h.handleHealth))

	// not instrumented
	mux.Handle("/metrics", h.metrics.Handler())
}

func (h *Server) Handler() http.Handler { return h.handler }

// withMetrics tags the request with an id, checks the method, logs and
// records the outcome.
func (h *Server) withMetrics(endpoint string, handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		startTime := time.Now()

		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)

		ww := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		if r.Method != http.MethodGet {
			ww.Header().Set("Allow", http.MethodGet)
			http.Error(ww, "Method not allowed", http.StatusMethodNotAllowed)
		} else {
			handler(ww, r.WithContext(withRequestID(r.Context(), id)))
		}

		duration := time.Since(startTime)
		h.metrics.RecordHTTPRequest(r.Method, endpoint, strconv.Itoa(ww.statusCode), duration.Seconds())

		if ww.statusCode >= 400 {
			errorType := "client_error"
			if ww.statusCode >= 500 {
				errorType = "server_error"
			}
			h.metrics.RecordHTTPError(r.Method, endpoint, errorType)
		}

		h.logger.Info("HTTP request",
			slog.String("request_id", id),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.statusCode),
			slog.Int("bytes", ww.written),
			slog.Duration("duration", duration),
		)
	}
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(p []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(p)
	rw.written += n
	return n, err
}

type requestIDKey struct{}

func withRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the id withMetrics attached to ctx.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// requireParam reports whether name is present in the query, answering 400
// when it is not. An empty value is present.
func requireParam(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	q := r.URL.Query()
	if !q.Has(name) {
		http.Error(w, fmt.Sprintf("missing query parameter %q", name), http.StatusBadRequest)
		return "", false
	}
	return q.Get(name), true
}

func writeText(w http.ResponseWriter, s string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(s))
}

func (h *Server) handleEncode(w http.ResponseWriter, r *http.Request) {
	text, ok := requireParam(w, r, "text")
	if !ok {
		return
	}
	writeText(w, h.tr.Encode(text))
}

func (h *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	morse, ok := requireParam(w, r, "code")
	if !ok {
		return
	}
	writeText(w, h.tr.Decode(morse))
}

func (h *Server) handleSound(w http.ResponseWriter, r *http.Request) {
	text, ok := requireParam(w, r, "text")
	if !ok {
		return
	}

	wav := h.render(r.Context(), text)

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", SoundFilename))
	w.Header().Set("Content-Length", strconv.Itoa(len(wav)))
	_, _ = w.Write(wav)
}

// render returns the WAV bytes for text, or an empty slice when the text
// renders to nothing. The cache key is the Morse string the synthesizer
// itself renders.
func (h *Server) render(ctx context.Context, text string) []byte {
	key := h.tr.Encode(text)

	if h.audio != nil {
		if v, found := h.audio.Get(key); found {
			h.metrics.RecordCache(true)
			return v.([]byte)
		}
		h.metrics.RecordCache(false)
	}

	wav, err := h.synth.Synthesize(text)
	if err != nil {
		h.logger.Warn("Audio rendering produced no data",
			slog.String("request_id", RequestID(ctx)),
			slog.String("morse", key),
			slog.String("error", err.Error()),
		)
		h.metrics.RecordRender(0)
		return []byte{}
	}
	h.metrics.RecordRender(len(wav))

	if h.audio != nil {
		h.audio.SetDefault(key, wav)
	}
	return wav
}

func (h *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	health := map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"uptime":    time.Since(h.startTime).String(),
		"audio": map[string]any{
			"sample_rate": h.synth.SampleRate(),
			"frequency":   h.synth.Schedule().Frequency,
			"dot":         h.synth.Schedule().Dot.String(),
		},
	}
	if h.audio != nil {
		health["cached_sounds"] = h.audio.ItemCount()
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(health); err != nil {
		h.logger.Error("Failed to encode health response", slog.String("error", err.Error()))
	}
}

// Start listens on the configured address and serves in the background.
// It returns once the listener is bound.
func (h *Server) Start() error {
	ln, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", h.server.Addr, err)
	}
	h.server.Addr = ln.Addr().String()

	h.logger.Info("Starting HTTP API server",
		slog.String("address", h.server.Addr),
	)

	go func() {
		if err := h.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			h.logger.Error("HTTP server error", slog.String("error", err.Error()))
		}
	}()

	return nil
}

// Addr is the bound address after Start.
func (h *Server) Addr() string { return h.server.Addr }

// Stop gracefully stops the HTTP server
func (h *Server) Stop(ctx context.Context) error {
	h.logger.Info("Stopping HTTP API server...")

	return h.server.Shutdown(ctx)
}
