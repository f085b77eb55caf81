package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bvik/typeahead/pkg/config"
	"github.com/bvik/typeahead/pkg/dictionary"
	"github.com/bvik/typeahead/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles the IPC for prefix completions
type Server struct {
	completer *suggest.Completer
	loader    *dictionary.Loader
	cfg       *config.Config
	dec       *msgpack.Decoder
	enc       *msgpack.Encoder
}

// NewServer creates a new completion server using stdin/stdout for IPC
func NewServer(completer *suggest.Completer, loader *dictionary.Loader, cfg *config.Config) *Server {
	return NewServerWithIO(completer, loader, cfg, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server over arbitrary streams; used by tests
func NewServerWithIO(completer *suggest.Completer, loader *dictionary.Loader, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	return &Server{
		completer: completer,
		loader:    loader,
		cfg:       cfg,
		dec:       msgpack.NewDecoder(r),
		enc:       msgpack.NewEncoder(w),
	}
}

// Start begins listening for IPC requests
func (s *Server) Start() error {
	log.Debug("Starting Server.")

	// Signal that the server is ready
	s.send(StatusResponse{Status: "ready"})

	for {
		var request Request
		if err := s.dec.Decode(&request); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			log.Errorf("Decoding request: %v", err)
			return err
		}
		s.handleRequest(request)
	}
}

// handleRequest dispatches one decoded message
func (s *Server) handleRequest(request Request) {
	if request.Action != "" {
		s.handleControl(request)
		return
	}
	s.handleComplete(request)
}

// send marshals the given response and writes it to the client stream
func (s *Server) send(response interface{}) {
	if err := s.enc.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) {
	s.send(CompletionError{
		ID:    id,
		Error: message,
		Code:  code,
	})
}

// handleComplete processes a completion request. It validates the prefix
// against the configured length bounds, clamps the limit, asks the
// completer for suggestions and replies with the ranked list plus timing.
func (s *Server) handleComplete(request Request) {
	prefix := request.Prefix

	if prefix == "" {
		s.sendError(request.ID, "Missing 'p' parameter", 400)
		log.Debug("Prefix is empty in request")
		return
	}
	if len(prefix) < s.cfg.Server.MinPrefix {
		s.sendError(request.ID, fmt.Sprintf("Prefix must be at least %d characters", s.cfg.Server.MinPrefix), 400)
		log.Debug("Prefix is too short in request")
		return
	}
	if len(prefix) > s.cfg.Server.MaxPrefix {
		s.sendError(request.ID, fmt.Sprintf("Prefix exceeds maximum length of %d characters", s.cfg.Server.MaxPrefix), 400)
		log.Debug("Prefix is too long in request")
		return
	}

	limit := request.Limit
	if limit < 1 {
		limit = s.cfg.CLI.DefaultLimit
	}
	if limit > s.cfg.Server.MaxLimit {
		limit = s.cfg.Server.MaxLimit
	}

	start := time.Now()
	suggestions := s.completer.Complete(prefix, limit)
	elapsed := time.Since(start)

	out := make([]CompletionSuggestion, len(suggestions))
	for i, sg := range suggestions {
		out[i] = CompletionSuggestion{
			Word:    sg.Text,
			Display: sg.Display,
			Rank:    uint16(i + 1),
		}
	}

	s.send(CompletionResponse{
		ID:          request.ID,
		Suggestions: out,
		Count:       len(out),
		TimeTaken:   elapsed.Microseconds(),
	})
}

// handleControl processes reload/stats/ping actions
func (s *Server) handleControl(request Request) {
	switch request.Action {
	case "reload":
		s.handleReload(request)
	case "stats":
		s.send(StatusResponse{
			ID:     request.ID,
			Status: "ok",
			Stats:  s.completer.Stats(),
		})
	case "ping":
		s.send(StatusResponse{ID: request.ID, Status: "ok"})
	default:
		s.send(StatusResponse{
			ID:     request.ID,
			Status: "error",
			Error:  fmt.Sprintf("Unknown action: %s", request.Action),
		})
	}
}

// handleReload re-reads the data directory and swaps in a fresh index.
// Queries arriving during the rebuild keep hitting the old index.
func (s *Server) handleReload(request Request) {
	if s.loader == nil {
		s.send(StatusResponse{
			ID:     request.ID,
			Status: "error",
			Error:  "No data directory configured",
		})
		return
	}

	entries, err := s.loader.Load()
	if err != nil {
		log.Errorf("Reload failed: %v", err)
		s.send(StatusResponse{
			ID:     request.ID,
			Status: "error",
			Error:  err.Error(),
		})
		return
	}

	items := make([]suggest.Suggestion, len(entries))
	for i, e := range entries {
		items[i] = suggest.Suggestion{Text: e.Text, Display: e.Display}
	}
	s.completer.RebuildWith(items)

	s.send(StatusResponse{
		ID:     request.ID,
		Status: "ok",
		Stats:  s.completer.Stats(),
	})
}
