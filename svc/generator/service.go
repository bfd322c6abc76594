package generator

import (
	"context"
	"errors"
	"image"
	"image/color"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/dmitrymomot/qrgen/pkg/colorx"
	"github.com/dmitrymomot/qrgen/pkg/logger"
	"github.com/dmitrymomot/qrgen/pkg/qrcode"
	"github.com/dmitrymomot/qrgen/pkg/storage"
)

// ErrNilStorage is returned by New when no artifact storage is supplied.
var ErrNilStorage = errors.New("artifact storage is required")

// Defaults applied when a color field is left empty, matching the form
// defaults of the web UI.
const (
	DefaultFillColor = "#000000"
	DefaultBackColor = "#ffffff"
)

// Request describes one generation call.
type Request struct {
	Text      string    // payload to encode; empty means "nothing requested"
	FillColor string    // hex or rgba(...) string; empty falls back to DefaultFillColor
	BackColor string    // hex or rgba(...) string; empty falls back to DefaultBackColor
	Logo      io.Reader // optional logo image stream, nil when absent
}

// Result pairs the in-memory image with its persisted artifact.
type Result struct {
	Image    image.Image
	Artifact *storage.Artifact
}

// Service runs the generation pipeline.
type Service struct {
	storage storage.Storage
	log     *slog.Logger
}

// Option configures the Service.
type Option func(*Service)

// WithLogger supplies a logger. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// New creates a generation service backed by the given artifact storage.
func New(st storage.Storage, opts ...Option) (*Service, error) {
	if st == nil {
		return nil, ErrNilStorage
	}
	s := &Service{
		storage: st,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Generate runs one synchronous pass of the pipeline.
//
// An empty or whitespace-only payload returns (nil, nil): nothing is encoded
// and nothing is written. Any failure in color parsing, encoding, logo
// decoding, or persistence aborts the call; the returned error wraps the
// originating sentinel.
func (s *Service) Generate(ctx context.Context, req Request) (*Result, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, nil
	}

	fill, err := normalizeColor(req.FillColor, DefaultFillColor)
	if err != nil {
		return nil, err
	}
	back, err := normalizeColor(req.BackColor, DefaultBackColor)
	if err != nil {
		return nil, err
	}

	opts := []qrcode.Option{
		qrcode.WithForeground(fill),
		qrcode.WithBackground(back),
	}

	if req.Logo != nil {
		logo, err := qrcode.DecodeLogo(req.Logo)
		if err != nil {
			return nil, err
		}
		opts = append(opts, qrcode.WithLogo(logo))
	}

	// Interruptible between steps when the caller imposes a deadline.
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	started := time.Now()
	img, err := qrcode.Generate(req.Text, opts...)
	if err != nil {
		s.log.ErrorContext(ctx, "QR generation failed",
			logger.Component("generator"), logger.Error(err))
		return nil, err
	}

	artifact, err := s.storage.Save(ctx, img)
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to persist QR artifact",
			logger.Component("generator"), logger.Error(err))
		return nil, err
	}

	s.log.InfoContext(ctx, "QR code generated",
		logger.Component("generator"),
		slog.String("artifact", artifact.Filename),
		slog.Int64("size_bytes", artifact.Size),
		slog.Bool("logo", req.Logo != nil),
		logger.Duration(time.Since(started)),
	)

	return &Result{Image: img, Artifact: artifact}, nil
}

// normalizeColor parses a color string, substituting the default for empty
// input. Numeric channels are resolved eagerly so a malformed value fails
// here, before any encoding work happens.
func normalizeColor(s, fallback string) (color.RGBA, error) {
	if strings.TrimSpace(s) == "" {
		s = fallback
	}
	c, err := colorx.Parse(s)
	if err != nil {
		return color.RGBA{}, err
	}
	return c.RGBA()
}
