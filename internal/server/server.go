package server

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"github.com/AlainEkh/heloc-calculator/internal/brand"
	"github.com/AlainEkh/heloc-calculator/internal/calculator"
	"github.com/AlainEkh/heloc-calculator/pkg/constants"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

//go:embed static/*
var staticFiles embed.FS

//go:embed templates/*.html
var templateFiles embed.FS

// Options configures the handler. Zero values fall back to defaults.
type Options struct {
	Brands        *brand.Registry
	DefaultLocale string
	MaxBodySize   int64
	Version       string
	// Metrics mounts the prometheus handler on /metrics.
	Metrics bool
}

type handler struct {
	logger        *zap.Logger
	calc          *calculator.Calculator
	brands        *brand.Registry
	defaultLocale string
	maxBodySize   int64
	version       string
	page          *template.Template
}

// NewHandler constructs the HTTP handler that serves the calculator page and API.
func NewHandler(logger *zap.Logger, calc *calculator.Calculator, opts Options) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if calc == nil {
		calc = calculator.New(logger)
	}

	brands := opts.Brands
	if brands == nil {
		var err error
		brands, err = brand.NewRegistry(nil, "")
		if err != nil {
			panic(fmt.Sprintf("failed to build default brands: %v", err))
		}
	}

	maxBodySize := opts.MaxBodySize
	if maxBodySize <= 0 {
		maxBodySize = constants.DefaultMaxBodySizeBytes
	}

	trimmedVersion := strings.TrimSpace(opts.Version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	defaultLocale := opts.DefaultLocale
	if defaultLocale == "" {
		defaultLocale = constants.DefaultLocale
	}

	page, err := template.ParseFS(templateFiles, "templates/*.html")
	if err != nil {
		panic(fmt.Sprintf("failed to parse embedded templates: %v", err))
	}

	h := &handler{
		logger:        logger,
		calc:          calc,
		brands:        brands,
		defaultLocale: defaultLocale,
		maxBodySize:   maxBodySize,
		version:       trimmedVersion,
		page:          page,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.requestLogger)
	r.Use(middleware.Recoverer)

	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to prepare embedded static files: %v", err))
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(sub))))

	r.Get("/", h.handlePage)
	r.Post("/", h.handleSubmit)

	r.Post("/api/calculate", h.handleCalculate)
	r.Get("/api/version", h.handleVersion)
	r.Get("/healthz", h.handleHealth)

	if opts.Metrics {
		r.Handle("/metrics", promhttp.Handler())
	}

	return r
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
	}
}
