// Package web serves the single-page header formatter and its JSON API.
package web

import (
	"context"
	"embed"
	"errors"
	"net"
	"net/http"
	"time"

	"hdrfmt/pkg/config"
	"hdrfmt/pkg/headers"
	"hdrfmt/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

//go:embed static/index.html
var static embed.FS

const (
	requestIDHeader     = "X-Request-Id"
	shutdownTimeout     = 5 * time.Second
	defaultMaxBodyBytes = 1 << 20
)

// Options configures a Server.
type Options struct {
	Addr         string
	MaxBodyBytes int64
	// SensitiveHeaders extends the names masked when a request asks for it.
	SensitiveHeaders []string
}

// FormatRequest is the body of POST /api/format.
type FormatRequest struct {
	Input     string `json:"input"`
	Canonical bool   `json:"canonical"`
	Mask      bool   `json:"mask"`
}

// FormatResponse is returned by POST /api/format.
type FormatResponse struct {
	Output string         `json:"output"`
	Pairs  []headers.Pair `json:"pairs"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type Server struct {
	opts   Options
	engine *gin.Engine
	page   []byte
}

func New(opts Options) (*Server, error) {
	page, err := static.ReadFile("static/index.html")
	if err != nil {
		return nil, err
	}

	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = defaultMaxBodyBytes
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery(), requestID(), accessLog())

	s := &Server{opts: opts, engine: engine, page: page}
	engine.GET("/", s.handleIndex)
	engine.GET("/healthz", s.handleHealth)
	engine.POST("/api/format", s.handleFormat)
	return s, nil
}

// Handler returns the HTTP handler for the page and API.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// ListenAndServe serves on opts.Addr until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.opts.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errC := make(chan error, 1)
	go func() {
		errC <- srv.Serve(ln)
	}()
	logger.Info().Str("addr", ln.Addr().String()).Msg("serving header formatter")

	select {
	case err := <-errC:
		return err
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errC; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) handleIndex(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", s.page)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

func (s *Server) handleFormat(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.opts.MaxBodyBytes)

	var req FormatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, errorResponse{Error: "input too large"})
			return
		}
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid JSON: " + err.Error()})
		return
	}

	cfg := config.Config{
		Canonical:        req.Canonical,
		Mask:             req.Mask,
		SensitiveHeaders: s.opts.SensitiveHeaders,
	}
	pairs, stats := headers.ParseWithStats(req.Input)
	pairs = headers.Apply(pairs, cfg.Transforms()...)

	logger.Debug().
		Str("request_id", c.GetString(requestIDHeader)).
		Int("pairs", stats.Pairs).
		Int("dropped", stats.Dropped).
		Msg("formatted headers")

	if pairs == nil {
		pairs = []headers.Pair{}
	}
	c.JSON(http.StatusOK, FormatResponse{Output: headers.Join(pairs), Pairs: pairs})
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set(requestIDHeader, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info().
			Str("request_id", c.GetString(requestIDHeader)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	}
}
