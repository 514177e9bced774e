// Package api configures the loopback HTTP server exposing the navigation
// guard, its metrics and its documentation.
package api

import (
	"bowshell/internal/api/handler/v1handler"
	"bowshell/internal/config"
	"bowshell/pkg/controller"
	"bowshell/pkg/logger"
	"context"
	_ "embed"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
)

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

// Options holds configuration for the HTTP server.
type Options struct {
	// Addr is the TCP address the server listens on, e.g. "127.0.0.1:7411".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout bounds the handling of a single request.
	RequestTimeout time.Duration
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// Debug mounts pprof under /debug/pprof/.
	Debug bool
}

// NewOptions maps the HTTP section of the configuration to Options.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MetricsPath:       cfg.HTTP.MetricsPath,
		Debug:             cfg.HTTP.Debug,
	}
}

type Deps struct {
	v1handler.Deps

	// Origins decides which browser origins get CORS headers.
	Origins controller.OriginAllower
}

// NewServer wires up and returns a configured *http.Server:
//   - v1 API routes under /v1
//   - embedded OpenAPI v1 spec and Swagger UI
//   - Prometheus metrics at MetricsPath
//   - pprof endpoints when Debug is set
//
// The router is wrapped with CORS (origins checked by the navigation guard)
// and logging middlewares, and each request is bounded by RequestTimeout.
func NewServer(ctx context.Context, deps Deps, opts Options) *http.Server {
	r := chi.NewRouter()

	r.Handle(opts.MetricsPath, promhttp.Handler())

	r.Get("/specs/v1.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	r.Handle("/v1/docs/*", v5emb.New(
		"Bow Shell Navigation API",
		"/specs/v1.yaml",
		"/v1/docs/",
	))
	r.Mount("/v1", v1handler.New(deps.Deps).Routes())

	if opts.Debug {
		r.Mount("/debug/pprof", http.StripPrefix("/debug/pprof", controller.PprofMux()))
	}

	var handler http.Handler = controller.WithCORS(deps.Origins, r)
	handler = controller.WithLogger(handler)

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           http.TimeoutHandler(handler, opts.RequestTimeout, `{"error":"request timed out"}`),
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		ErrorLog:          logger.StdLogger(ctx),
	}
}
