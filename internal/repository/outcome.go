package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmonzon-gt/distribuidores/constants"
	"github.com/jmonzon-gt/distribuidores/gen/ent"
	entdoc "github.com/jmonzon-gt/distribuidores/gen/ent/requestdocument"
	"github.com/jmonzon-gt/distribuidores/internal/entity"
	"github.com/jmonzon-gt/distribuidores/internal/extract"
	"github.com/jmonzon-gt/distribuidores/internal/tasks"
)

// SaveOutcome upserts the extraction result onto the request's document row
// and folds the structured fields into the request. Resubmissions overwrite
// the previous row and put it back in front of the reviewer.
func (s *Store) SaveOutcome(ctx context.Context, o tasks.Outcome) error {
	return s.withinTx(ctx, func(ctx context.Context, txs *Store) error {
		return txs.saveOutcomeTx(ctx, o)
	})
}

func (s *Store) saveOutcomeTx(ctx context.Context, o tasks.Outcome) error {
	status, err := extractionStatus(o.Result.Status)
	if err != nil {
		return err
	}

	existing, err := s.ent.RequestDocument.Query().
		Where(
			entdoc.RequestIDEQ(o.RequestID),
			entdoc.DocumentTypeEQ(string(o.DocumentType)),
		).
		Only(ctx)
	switch {
	case err == nil:
		merged := extract.Merge(existing.StructuredFields, o.Result.Fields)
		if _, err := s.ent.RequestDocument.UpdateOneID(existing.ID).
			SetExtractionStatus(string(status)).
			SetRawText(o.Result.RawText).
			SetStructuredFields(merged).
			SetScore(o.Result.Score).
			SetReviewStatus(string(constants.ReviewPending)).
			SetReviewNotes("").
			Save(ctx); err != nil {
			return err
		}
	case ent.IsNotFound(err):
		if _, err := s.ent.RequestDocument.Create().
			SetRequestID(o.RequestID).
			SetDocumentType(string(o.DocumentType)).
			SetExtractionStatus(string(status)).
			SetRawText(o.Result.RawText).
			SetStructuredFields(map[string]string(o.Result.Fields)).
			SetScore(o.Result.Score).
			Save(ctx); err != nil {
			return err
		}
	default:
		return err
	}

	if err := s.mergeRequestData(ctx, o); err != nil {
		return err
	}

	for _, cand := range o.Result.Branches {
		if _, err := s.CreateBranch(ctx, &entity.RequestBranch{
			RequestID:    o.RequestID,
			Name:         cand.Name,
			Address:      cand.Address,
			Department:   cand.Department,
			Municipality: cand.Municipality,
			Zone:         cand.Zone,
			Status:       cand.Status,
			StartDate:    cand.StartDate,
		}); err != nil {
			return err
		}
	}

	s.log.Info("extraction outcome saved",
		"request_id", o.RequestID, "doc_type", o.DocumentType,
		"status", status, "fields", len(o.Result.Fields), "branches", len(o.Result.Branches))
	return nil
}

// mergeRequestData accumulates the per-document fields on the request row.
func (s *Store) mergeRequestData(ctx context.Context, o tasks.Outcome) error {
	// take the request row lock before the read-modify-write; without it two
	// concurrent outcomes for different document types of the same request
	// would each write a full map and the last commit would drop the other
	if err := s.ent.Request.UpdateOneID(o.RequestID).
		SetUpdatedAt(time.Now()).
		Exec(ctx); err != nil {
		return err
	}
	row, err := s.ent.Request.Get(ctx, o.RequestID)
	if err != nil {
		return err
	}
	data := row.ExtractedData
	if data == nil {
		data = make(map[string]map[string]string)
	}
	data[string(o.DocumentType)] = extract.Merge(data[string(o.DocumentType)], o.Result.Fields)

	_, err = s.ent.Request.UpdateOneID(o.RequestID).
		SetExtractedData(data).
		Save(ctx)
	return err
}

func extractionStatus(ts constants.TaskStatus) (constants.ExtractionStatus, error) {
	switch ts {
	case constants.TaskSuccess:
		return constants.ExtractionCompleted, nil
	case constants.TaskIncorrect:
		return constants.ExtractionIncorrect, nil
	case constants.TaskUnreadable:
		return constants.ExtractionUnreadable, nil
	default:
		return "", fmt.Errorf("no document status for task status %q", ts)
	}
}
