package extract

import (
	"context"
	"time"
)

// TextExtractor is Stage 1: file -> text.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (TextExtractionResult, error)
}

type TextExtractionResult struct {
	Text       string
	Pages      int
	SourceType string // "PDF" | "IMAGE"
	Method     string // "pdf-text" | "pdf-ocr" | "image-ocr"
	Language   string
	Duration   time.Duration
	Warnings   []string
}

// Fields is the typed field map produced by the document rules. Keys are
// stable per document type (see dpi.go, rtu.go, patente.go).
type Fields map[string]string

// BranchCandidate is one establishment block scraped from a tax-registry
// document. Address is the assembled human-readable form.
type BranchCandidate struct {
	Name         string
	Department   string
	Municipality string
	Zone         string
	Street       string
	HouseNumber  string
	Address      string
	Status       string
	StartDate    string
}

// ParseResult is Stage 2 output: text -> structured fields, plus any branch
// candidates a tax-registry document declares.
type ParseResult struct {
	Fields   Fields
	Branches []BranchCandidate
}
