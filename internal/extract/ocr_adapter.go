package extract

import (
	"context"
	"log/slog"

	"github.com/jmonzon-gt/distribuidores/internal/ocr"
)

// OCRAdapter exposes the ocr.Extractor through the TextExtractor contract.
type OCRAdapter struct {
	e   *ocr.Extractor
	log *slog.Logger
}

func NewOCRAdapter(e *ocr.Extractor, logger *slog.Logger) *OCRAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &OCRAdapter{e: e, log: logger}
}

func (a *OCRAdapter) Extract(ctx context.Context, path string) (TextExtractionResult, error) {
	r, err := a.e.Extract(ctx, path)
	if err == nil {
		a.log.Debug("text extracted",
			"path", path, "method", r.Method, "pages", r.Pages, "chars", len(r.Text))
	}
	return TextExtractionResult{
		Text:       r.Text,
		Pages:      r.Pages,
		SourceType: r.SourceType,
		Method:     r.Method,
		Language:   r.Language,
		Duration:   r.Duration,
		Warnings:   r.Warnings,
	}, err
}
