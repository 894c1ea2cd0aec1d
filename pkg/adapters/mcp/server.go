package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/morse"
	"github.com/aretw0/morse/internal/logging"
	"github.com/aretw0/morse/pkg/alphabet"
	"github.com/aretw0/morse/pkg/codec"
	"github.com/aretw0/morse/pkg/domain"
	"github.com/aretw0/morse/pkg/ports"
	"github.com/aretw0/morse/pkg/runner"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// AlphabetURI is the resource exposing the active table.
const AlphabetURI = "morse://alphabet"

// TextArgs is the argument object shared by every tool.
type TextArgs struct {
	Text string `json:"text"`
}

// SanitizeResult is the structured output of the sanitize tool.
type SanitizeResult struct {
	Text string `json:"text" jsonschema_description:"Canonical text: lowercase letters, digits and single spaces"`
}

// Server wraps a Translator and exposes it as an MCP Server.
type Server struct {
	translator ports.Translator
	mcpServer  *server.MCPServer
	logger     *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a new MCP Server instance.
func NewServer(translator ports.Translator, opts ...Option) *Server {
	s := &Server{
		translator: translator,
		logger:     logging.NewNop(),
		mcpServer: server.NewMCPServer("morse-mcp", strings.TrimSpace(morse.Version),
			server.WithToolCapabilities(false),
			server.WithResourceCapabilities(false, false),
		),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	s.registerResources()
	return s
}

// MCPServer returns the underlying protocol server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and stops it when
// ctx is done.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("shutdown signal received, stopping MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	encodeTool := mcp.NewTool("english_to_morse",
		mcp.WithDescription("Translate english text into International Morse code. "+
			"Only letters and digits are translated; letters are separated by three spaces and words by seven."),
		mcp.WithString("text", mcp.Required(), mcp.Description("Text to encode")),
		mcp.WithOutputSchema[domain.Translation](),
	)
	s.mcpServer.AddTool(encodeTool, mcp.NewStructuredToolHandler(s.translateHandler(domain.ToMorse)))

	decodeTool := mcp.NewTool("morse_to_english",
		mcp.WithDescription("Translate a Morse stream ('.' dot, '---' dash, 1/3/7 space separators) into english. "+
			"Unknown tokens are skipped."),
		mcp.WithString("text", mcp.Required(), mcp.Description("Morse stream to decode")),
		mcp.WithOutputSchema[domain.Translation](),
	)
	s.mcpServer.AddTool(decodeTool, mcp.NewStructuredToolHandler(s.translateHandler(domain.ToEnglish)))

	sanitizeTool := mcp.NewTool("sanitize",
		mcp.WithDescription("Show the canonical form of a text as the encoder sees it."),
		mcp.WithString("text", mcp.Required(), mcp.Description("Text to sanitize")),
		mcp.WithOutputSchema[SanitizeResult](),
	)
	s.mcpServer.AddTool(sanitizeTool, mcp.NewStructuredToolHandler(s.handleSanitize))
}

func (s *Server) translateHandler(dir domain.Direction) func(context.Context, mcp.CallToolRequest, TextArgs) (domain.Translation, error) {
	return func(ctx context.Context, request mcp.CallToolRequest, args TextArgs) (domain.Translation, error) {
		res, err := s.translator.Translate(ctx, dir, args.Text)
		if err != nil {
			s.logger.Warn("MCP translate: input rejected", "direction", dir, "error", err, "size", len(args.Text))
			return domain.Translation{}, fmt.Errorf("input rejected: %w", err)
		}
		return *res, nil
	}
}

func (s *Server) handleSanitize(ctx context.Context, request mcp.CallToolRequest, args TextArgs) (SanitizeResult, error) {
	clean, err := runner.SanitizeInput(args.Text)
	if err != nil {
		return SanitizeResult{}, fmt.Errorf("input rejected: %w", err)
	}
	return SanitizeResult{Text: codec.Sanitize(clean)}, nil
}

// alphabetDocument is the JSON body of the alphabet resource.
type alphabetDocument struct {
	Name    string          `json:"name"`
	Entries []alphabetEntry `json:"entries"`
}

type alphabetEntry struct {
	Symbol  string `json:"symbol"`
	Code    string `json:"code"`
	Pattern string `json:"pattern,omitempty"`
}

func newAlphabetDocument(table *alphabet.Table) alphabetDocument {
	doc := alphabetDocument{Name: table.Name()}
	for _, e := range table.Entries() {
		pattern, _ := alphabet.Compact(e.Code)
		doc.Entries = append(doc.Entries, alphabetEntry{
			Symbol:  strings.ToUpper(string(e.Symbol)),
			Code:    e.Code,
			Pattern: pattern,
		})
	}
	return doc
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(AlphabetURI, "Active Morse alphabet",
		mcp.WithResourceDescription("Symbol to code table used by the translation tools"),
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, err := json.Marshal(newAlphabetDocument(s.translator.Alphabet()))
		if err != nil {
			return nil, fmt.Errorf("failed to encode alphabet: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      AlphabetURI,
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
