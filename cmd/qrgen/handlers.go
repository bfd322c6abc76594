package main

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/base64"
	"encoding/json"
	"errors"
	"html/template"
	"image"
	"image/png"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/qrgen/pkg/colorx"
	"github.com/dmitrymomot/qrgen/pkg/logger"
	"github.com/dmitrymomot/qrgen/pkg/qrcode"
	"github.com/dmitrymomot/qrgen/pkg/storage"
	"github.com/dmitrymomot/qrgen/svc/generator"
)

//go:embed index.html
var indexHTML string

var indexTmpl = template.Must(template.New("index").Parse(indexHTML))

// maxUploadBytes caps the multipart form size, dominated by the logo upload.
const maxUploadBytes = 10 << 20

type handlers struct {
	svc   *generator.Service
	store storage.Storage
	log   *slog.Logger
}

type generateResponse struct {
	Preview     *string `json:"preview"`      // data URI of the rendered PNG, null when nothing was generated
	DownloadURL *string `json:"download_url"` // public URL of the stored artifact
	Filename    *string `json:"filename"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *handlers) index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTmpl.Execute(w, map[string]string{
		"FillColor": generator.DefaultFillColor,
		"BackColor": generator.DefaultBackColor,
	}); err != nil {
		h.log.ErrorContext(r.Context(), "failed to render index page",
			logger.Component("http"), logger.Error(err))
	}
}

func (h *handlers) generate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed form data"})
		return
	}

	req := generator.Request{
		Text:      r.FormValue("text"),
		FillColor: r.FormValue("fill_color"),
		BackColor: r.FormValue("back_color"),
	}

	logo, _, err := r.FormFile("logo")
	switch {
	case err == nil:
		defer logo.Close()
		req.Logo = logo
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		// No logo uploaded.
	default:
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed logo upload"})
		return
	}

	res, err := h.svc.Generate(r.Context(), req)
	if err != nil {
		h.writeGenerateError(w, r, err)
		return
	}
	if res == nil {
		// Empty payload: nothing encoded, nothing stored.
		writeJSON(w, http.StatusOK, generateResponse{})
		return
	}

	preview, err := dataURI(res.Image)
	if err != nil {
		h.log.ErrorContext(r.Context(), "failed to encode preview",
			logger.Component("http"), logger.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to encode preview"})
		return
	}

	writeJSON(w, http.StatusOK, generateResponse{
		Preview:     &preview,
		DownloadURL: &res.Artifact.URL,
		Filename:    &res.Artifact.Filename,
	})
}

func (h *handlers) writeGenerateError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, colorx.ErrInvalidColorFormat):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "invalid color format"})
	case errors.Is(err, qrcode.ErrInvalidLogo):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "invalid logo image"})
	case errors.Is(err, qrcode.ErrCapacityExceeded):
		writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "content exceeds QR code capacity"})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		writeJSON(w, http.StatusRequestTimeout, errorResponse{Error: "request cancelled"})
	default:
		h.log.ErrorContext(r.Context(), "generation failed",
			logger.Component("http"), logger.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to generate QR code"})
	}
}

func (h *handlers) file(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")

	rc, err := h.store.Open(r.Context(), filename)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrInvalidFilename):
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid artifact name"})
		case errors.Is(err, storage.ErrArtifactNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "artifact not found"})
		default:
			h.log.ErrorContext(r.Context(), "failed to open artifact",
				logger.Component("http"), logger.Error(err),
				slog.String("filename", filename))
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to read artifact"})
		}
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	if _, err := io.Copy(w, rc); err != nil {
		h.log.ErrorContext(r.Context(), "failed to stream artifact",
			logger.Component("http"), logger.Error(err),
			slog.String("filename", filename))
	}
}

// dataURI renders img as an inline PNG suitable for an <img src> attribute.
func dataURI(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
