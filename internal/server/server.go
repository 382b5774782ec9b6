// Package server serves the joke page: embedded shells and assets plus the
// compiled wasm module from disk.
package server

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vcrobe/jokepage/internal/config"
	"github.com/vcrobe/jokepage/internal/pagecheck"
	"github.com/vcrobe/jokepage/web"
)

// Files served from the wasm directory rather than the embedded tree.
const (
	WasmFile     = "main.wasm"
	WasmExecFile = "wasm_exec.js"
)

const shutdownTimeout = 5 * time.Second

// Server is the dev HTTP server.
type Server struct {
	cfg    config.Config
	log    logrus.FieldLogger
	assets fs.FS
	wasm   fs.FS
}

// Option configures a Server.
type Option func(*Server)

// WithAssets replaces the embedded asset tree.
func WithAssets(assets fs.FS) Option {
	return func(s *Server) { s.assets = assets }
}

// WithWasmFS replaces the on-disk wasm directory.
func WithWasmFS(wasm fs.FS) Option {
	return func(s *Server) { s.wasm = wasm }
}

// New creates a Server. A nil logger uses the logrus standard logger.
func New(cfg config.Config, log logrus.FieldLogger, opts ...Option) *Server {
	if log == nil {
		log = logrus.StandardLogger()
	}
	s := &Server{
		cfg:    cfg,
		log:    log,
		assets: web.Static,
		wasm:   os.DirFS(cfg.WasmDir),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the request handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /"+WasmFile, s.serveWasm(WasmFile, "application/wasm"))
	mux.HandleFunc("GET /"+WasmExecFile, s.serveWasm(WasmExecFile, "text/javascript; charset=utf-8"))
	mux.Handle("GET /", http.FileServerFS(s.assets))
	return s.logRequests(mux)
}

func (s *Server) serveWasm(name, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := fs.Stat(s.wasm, name); err != nil {
			s.log.WithError(err).WithField("file", name).
				Warn("wasm build output missing; run: GOOS=js GOARCH=wasm go build -o " + s.cfg.WasmDir + "/" + WasmFile + " ./cmd/jokepage")
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "no-cache")
		http.ServeFileFS(w, r, s.wasm, name)
	}
}

// CheckShells verifies every embedded page shell and logs the result.
// It returns the joined problems, if any.
func (s *Server) CheckShells() error {
	var errs []error
	for _, name := range web.Shells {
		f, err := s.assets.Open(name)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			continue
		}
		rep, err := pagecheck.CheckShell(f)
		f.Close()
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			continue
		}

		entry := s.log.WithFields(logrus.Fields{"shell": name, "mode": rep.Mode})
		if !rep.OK() {
			entry.WithField("missing", rep.Missing).Warn("Page shell is missing elements")
			errs = append(errs, fmt.Errorf("%s: %w", name, rep.Err()))
			continue
		}
		entry.Debug("Page shell OK")
	}
	return errors.Join(errs...)
}

// Run listens on the configured address until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.WithFields(logrus.Fields{
			"addr":     s.cfg.Addr,
			"wasm_dir": s.cfg.WasmDir,
		}).Info("Serving joke page")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
