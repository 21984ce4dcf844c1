// Package pipeline runs the document-understanding stages for one uploaded
// file: text extraction, field rules, validity scoring, and the optional
// registry cross-check. The outcome is an explicit Result value; a returned
// error always means a technical fault the coordinator may retry.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/jmonzon-gt/distribuidores/constants"
	"github.com/jmonzon-gt/distribuidores/internal/extract"
	"github.com/jmonzon-gt/distribuidores/internal/registry"
	"github.com/jmonzon-gt/distribuidores/internal/validity"
)

// MinUsableTextLen is the rune count under which extraction output counts as
// no usable text at all.
const MinUsableTextLen = 20

// CrossChecker is the optional online registry validation seam.
type CrossChecker interface {
	Check(ctx context.Context, imagePath string, fields extract.Fields) registry.CheckResult
}

// Result is the pipeline outcome handed back to the task coordinator.
// INCORRECT and UNREADABLE still carry whatever data was recovered so a
// human can inspect it.
type Result struct {
	Status   constants.TaskStatus // SUCCESS | INCORRECT | UNREADABLE
	RawText  string
	Fields   extract.Fields
	Branches []extract.BranchCandidate
	Score    int
	Valid    bool
	Cross    registry.CheckResult
	Message  string
}

type Processor struct {
	text   extract.TextExtractor
	cross  CrossChecker // nil disables the online check
	logger *slog.Logger
}

func NewProcessor(text extract.TextExtractor, cross CrossChecker, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{text: text, cross: cross, logger: logger}
}

// Process runs the full pipeline for one file. Technical faults (I/O,
// decoding) come back as errors; readable-but-suspect documents come back as
// INCORRECT results.
func (p *Processor) Process(ctx context.Context, path string, docType constants.DocumentType) (Result, error) {
	tx, err := p.text.Extract(ctx, path)
	if err != nil {
		return Result{}, fmt.Errorf("text extraction: %w", err)
	}
	p.logger.Info("text extracted",
		"path", path, "doc_type", docType, "method", tx.Method, "pages", tx.Pages, "bytes", len(tx.Text))

	if utf8.RuneCountInString(tx.Text) < MinUsableTextLen {
		return Result{
			Status:  constants.TaskUnreadable,
			RawText: tx.Text,
			Message: "no usable text recovered from document",
		}, nil
	}

	parsed, err := extract.ParseFields(docType, tx.Text)
	if err != nil {
		return Result{}, fmt.Errorf("parse fields: %w", err)
	}

	res := Result{
		RawText:  tx.Text,
		Fields:   parsed.Fields,
		Branches: parsed.Branches,
	}

	if err := extract.ValidatePayload(docType, parsed.Fields); err != nil {
		p.logger.Warn("extracted payload failed schema", "doc_type", docType, "error", err)
		res.Status = constants.TaskIncorrect
		res.Message = "extracted fields failed schema validation"
		return res, nil
	}

	score := validity.Score(docType, tx.Text)
	res.Score = score.Score
	res.Valid = score.Valid
	if !score.Valid {
		res.Status = constants.TaskIncorrect
		res.Message = fmt.Sprintf("validity score %d below threshold %d", score.Score, validity.ValidScore)
		return res, nil
	}

	if p.cross != nil && docType == constants.DocCommerceLicense {
		res.Cross = p.cross.Check(ctx, path, parsed.Fields)
		if res.Cross.Performed && !res.Cross.Match {
			res.Status = constants.TaskIncorrect
			res.Message = "registry cross-check disagrees: " + res.Cross.Detail
			return res, nil
		}
	}

	res.Status = constants.TaskSuccess
	return res, nil
}
