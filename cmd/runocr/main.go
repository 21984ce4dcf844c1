// runocr runs the extraction pipeline against a local file without touching
// the database. Useful for tuning OCR settings on sample documents.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jmonzon-gt/distribuidores/constants"
	"github.com/jmonzon-gt/distribuidores/internal/extract"
	"github.com/jmonzon-gt/distribuidores/internal/ocr"
	"github.com/jmonzon-gt/distribuidores/internal/pipeline"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 3 {
		logger.Error("usage", "cmd", "runocr <document-type> <path>")
		os.Exit(2)
	}
	docType := constants.DocumentType(os.Args[1])
	if !docType.IsValid() {
		logger.Error("unknown document type", "arg", os.Args[1], "known", constants.DocumentTypeStrings())
		os.Exit(2)
	}
	path := os.Args[2]

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	extractor := ocr.NewExtractor(ocr.Config{
		TesseractLang: getenv("TESSERACT_LANG", "spa"),
		TessdataDir:   os.Getenv("TESSDATA_PREFIX"),
	}, logger)
	textExtractor := extract.NewOCRAdapter(extractor, logger)
	processor := pipeline.NewProcessor(textExtractor, nil, logger)

	start := time.Now()
	res, err := processor.Process(ctx, path, docType)
	if err != nil {
		logger.Error("extraction failed", "path", path, "error", err,
			"duration_ms", time.Since(start).Milliseconds())
		os.Exit(1)
	}

	logger.Info("extraction finished",
		"path", path,
		"status", res.Status,
		"score", res.Score,
		"fields", len(res.Fields),
		"branches", len(res.Branches),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	for k, v := range res.Fields {
		fmt.Printf("%s=%s\n", k, v)
	}
	for _, b := range res.Branches {
		fmt.Printf("branch: %s | %s\n", b.Name, b.Address)
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
