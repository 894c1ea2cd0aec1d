package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"

	"github.com/aretw0/morse"
	"github.com/aretw0/morse/internal/logging"
	"github.com/aretw0/morse/pkg/alphabet"
	"github.com/aretw0/morse/pkg/domain"
	"github.com/aretw0/morse/pkg/ports"
	"github.com/aretw0/morse/pkg/runner"
	"github.com/aretw0/morse/pkg/session"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

// maxBodyBytes bounds request bodies before the input guard sees them.
// JSON escaping can inflate a payload, so it is larger than the guard limit.
const maxBodyBytes = 8 << 20

// Server serves the transcoder over HTTP.
type Server struct {
	Translator ports.Translator
	Sessions   *session.Manager
	Metrics    http.Handler
	Logger     *slog.Logger

	upgrader websocket.Upgrader
}

// Option configures the Server.
type Option func(*Server)

// WithSessions sets the manager backing /v1/live.
func WithSessions(m *session.Manager) Option {
	return func(s *Server) {
		s.Sessions = m
	}
}

// WithMetrics mounts a metrics handler at /metrics.
func WithMetrics(h http.Handler) Option {
	return func(s *Server) {
		s.Metrics = h
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = logger
	}
}

// TranslateRequest is the JSON body of /v1/encode and /v1/decode.
type TranslateRequest struct {
	Text string `json:"text"`
}

// AlphabetEntry is one row of the /v1/alphabet response.
type AlphabetEntry struct {
	Symbol  string `json:"symbol"`
	Code    string `json:"code"`
	Pattern string `json:"pattern"`
}

// AlphabetResponse is the body of /v1/alphabet.
type AlphabetResponse struct {
	Name    string          `json:"name"`
	Entries []AlphabetEntry `json:"entries"`
}

// NewServer creates a Server. A session manager over translator is created
// when none is given.
func NewServer(translator ports.Translator, opts ...Option) *Server {
	s := &Server{
		Translator: translator,
		Logger:     logging.NewNop(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // CORS is open as well
			},
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.Sessions == nil {
		s.Sessions = session.NewManager(translator, session.WithLogger(s.Logger))
	}
	return s
}

// NewHandler creates a new HTTP handler for the translator.
func NewHandler(translator ports.Translator, opts ...Option) http.Handler {
	return NewServer(translator, opts...).Routes()
}

// Routes builds the router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(rawSpec)
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(swaggerHTML))
	})

	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	if s.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.Metrics)
	}

	r.Route("/v1", func(r chi.Router) {
		r.Post("/encode", s.translate(domain.ToMorse))
		r.Post("/decode", s.translate(domain.ToEnglish))
		r.Get("/alphabet", s.GetAlphabet)
		r.Get("/live", s.Live)
	})

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Morse API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`

// translate handles POST /v1/encode and /v1/decode. The body is either
// {"text": "..."} or, with Content-Type text/plain, the raw text.
func (s *Server) translate(dir domain.Direction) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		text, err := readText(w, r)
		if err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			s.Logger.Warn("translate: invalid request body", "direction", dir, "error", err)
			return
		}

		res, err := s.Translator.Translate(r.Context(), dir, text)
		if err != nil {
			status := statusFor(err)
			http.Error(w, fmt.Sprintf("Invalid input: %v", err), status)
			s.Logger.Warn("translate: input rejected", "direction", dir, "size", len(text), "error", err)
			return
		}

		writeJSON(w, s.Logger, res)
	}
}

func readText(w http.ResponseWriter, r *http.Request) (string, error) {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "text/plain" {
		data, err := io.ReadAll(body)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	var req TranslateRequest
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		return "", err
	}
	return req.Text, nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, runner.ErrInputTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, runner.ErrInvalidUTF8), errors.Is(err, domain.ErrUnknownDirection):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// GetAlphabet handles the GET /v1/alphabet request.
func (s *Server) GetAlphabet(w http.ResponseWriter, r *http.Request) {
	table := s.Translator.Alphabet()
	resp := AlphabetResponse{Name: table.Name()}
	for _, e := range table.Entries() {
		pattern, err := alphabet.Compact(e.Code)
		if err != nil {
			// Legacy codes are not always expressible in compact form
			pattern = ""
		}
		resp.Entries = append(resp.Entries, AlphabetEntry{
			Symbol:  strings.ToUpper(string(e.Symbol)),
			Code:    e.Code,
			Pattern: pattern,
		})
	}
	writeJSON(w, s.Logger, resp)
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Logger, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	apiVersion := "unknown"
	if swagger, err := GetSwagger(); err == nil && swagger.Info != nil {
		apiVersion = swagger.Info.Version
	} else if err != nil {
		s.Logger.Error("failed to load OpenAPI document", "error", err)
	}

	writeJSON(w, s.Logger, map[string]string{
		"app":         "morse-http",
		"version":     strings.TrimSpace(morse.Version),
		"api_version": apiVersion,
		"alphabet":    s.Translator.Alphabet().Name(),
	})
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("response encode failed", "error", err)
	}
}
