package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/qrgen/pkg/httpserver"
)

func newRouter(h *handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/", h.index)
	r.Post("/generate", h.generate)
	r.Get("/files/{filename}", h.file)
	r.Get("/health", httpserver.HealthCheckHandler(h.log))

	return r
}
