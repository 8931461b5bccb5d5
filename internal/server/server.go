// Package server exposes outline extraction as an HTTP service.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/tsawler/contour"
	"github.com/tsawler/contour/format"
	"github.com/tsawler/contour/model"
	"github.com/tsawler/contour/pdfdoc"
	"github.com/tsawler/contour/stextdoc"
)

// Config controls the HTTP service.
type Config struct {
	// Addr is the listen address. Default ":8080".
	Addr string
	// MaxUploadBytes caps the request body. Default 50 MiB.
	MaxUploadBytes int64
	// MaxPages caps page count per uploaded document. Zero means no cap.
	MaxPages int
	// Logger receives request and job log records. Default slog.Default().
	Logger *slog.Logger
}

// DefaultConfig returns the standard service settings.
func DefaultConfig() Config {
	return Config{
		Addr:           ":8080",
		MaxUploadBytes: 50 << 20,
	}
}

// Server is the HTTP service for outline extraction.
type Server struct {
	router chi.Router
	config Config
	logger *slog.Logger
}

// NewServer creates and configures the HTTP server.
func NewServer(config Config) *Server {
	if config.Addr == "" {
		config.Addr = ":8080"
	}
	if config.MaxUploadBytes <= 0 {
		config.MaxUploadBytes = 50 << 20
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{config: config, logger: logger}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(s.logger))

	r.Get("/healthz", s.handleHealth)
	r.Post("/v1/outline", s.handleOutline)

	s.router = r
}

// Run serves until the context is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.config.Addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.config.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// handleOutline accepts a document as a multipart "file" field or a raw
// request body and responds with its extraction result. The format comes
// from the uploaded filename, the "format" query parameter ("pdf" or
// "stext"), or content sniffing, in that order.
func (s *Server) handleOutline(w http.ResponseWriter, r *http.Request) {
	jobID := uuid.NewString()
	logger := s.logger.With("job", jobID)

	data, filename, err := s.readUpload(w, r)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			jsonError(w, fmt.Sprintf("upload exceeds %d bytes", s.config.MaxUploadBytes),
				http.StatusRequestEntityTooLarge)
			return
		}
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	doc, err := s.decode(data, filename, r.URL.Query().Get("format"))
	if err != nil {
		logger.Warn("undecodable upload", "file", filename, "error", err)
		jsonError(w, "document could not be decoded", http.StatusUnprocessableEntity)
		return
	}

	result, err := contour.FromDocument(doc).
		WithLogger(logger).
		WithMaxPages(s.config.MaxPages).
		Result()
	if err != nil {
		var resErr *model.ResourceError
		if errors.As(err, &resErr) {
			jsonError(w, resErr.Limit, http.StatusRequestEntityTooLarge)
			return
		}
		logger.Error("extraction failed", "error", err)
		jsonError(w, "extraction failed", http.StatusInternalServerError)
		return
	}

	logger.Info("processed", "file", filename, "headings", len(result.Outline))
	w.Header().Set("Content-Type", "application/json")
	if err := contour.EncodeResult(w, result); err != nil {
		logger.Error("write response", "error", err)
	}
}

// readUpload returns the document bytes and, for multipart requests, the
// uploaded filename.
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) ([]byte, string, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.config.MaxUploadBytes)

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			return nil, "", fmt.Errorf("invalid multipart form: %w", err)
		}
		defer r.MultipartForm.RemoveAll()

		file, header, err := r.FormFile("file")
		if err != nil {
			return nil, "", fmt.Errorf("file field is required: %w", err)
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			return nil, "", err
		}
		return data, header.Filename, nil
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, "", err
	}
	if len(data) == 0 {
		return nil, "", fmt.Errorf("empty request body")
	}
	return data, "", nil
}

func (s *Server) decode(data []byte, filename, formatParam string) (*model.Document, error) {
	f := format.Unknown
	switch formatParam {
	case "pdf":
		f = format.PDF
	case "stext", "json":
		f = format.StextJSON
	default:
		if filename != "" {
			f = format.Detect(filename)
		}
		if f == format.Unknown {
			f = format.DetectFromMagic(data)
		}
	}

	switch f {
	case format.PDF:
		return pdfdoc.OpenReader(bytes.NewReader(data), int64(len(data)))
	case format.StextJSON:
		return stextdoc.Parse(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("unrecognized document format")
	}
}

func jsonError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// requestLogger logs incoming requests.
func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r)
			logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", sw.status,
				"duration_ms", time.Since(start).Milliseconds(),
			)
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
