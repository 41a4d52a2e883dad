package api

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
)

// Server wraps the HTTP server for the preview page.
type Server struct {
	httpServer *http.Server
	watcher    *FileWatcher
	wsHub      *WebSocketHub
	logger     *log.Logger
}

// NewServer creates a server on port. When watchDir is non-empty, changes
// under it are pushed to open pages over /api/v1/ws so they reload.
func NewServer(handler *Handler, port int, watchDir string, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}

	mux := http.NewServeMux()

	var watcher *FileWatcher
	var wsHub *WebSocketHub

	if watchDir != "" {
		wsHub = NewWebSocketHub(logger)
		mux.HandleFunc("GET /api/v1/ws", wsHub.ServeWS)

		var err error
		watcher, err = NewFileWatcher(watchDir, logger)
		if err != nil {
			logger.Warn("failed to create file watcher", "err", err)
		} else {
			watcher.Subscribe(wsHub)
		}
	}

	handler.RegisterRoutes(mux)

	return &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%d", port),
			Handler:      Logging(logger, Cors(mux)),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
		watcher: watcher,
		wsHub:   wsHub,
		logger:  logger,
	}
}

// Start begins listening for HTTP requests. Blocks until shutdown.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ln)
}

// Serve accepts connections on ln. Blocks until shutdown.
func (s *Server) Serve(ln net.Listener) error {
	if s.watcher != nil {
		if err := s.watcher.Start(); err != nil {
			s.logger.Warn("live reload disabled", "err", err)
		}
	}

	err := s.httpServer.Serve(ln)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.watcher != nil {
		s.watcher.Stop()
	}

	return s.httpServer.Shutdown(ctx)
}

// Addr returns the address the server is listening on.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// LiveReload reports whether asset changes are being pushed to pages.
func (s *Server) LiveReload() bool {
	return s.wsHub != nil && s.watcher != nil
}
