package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/jmonzon-gt/distribuidores/constants"
	"github.com/jmonzon-gt/distribuidores/gen/ent"
	entbranch "github.com/jmonzon-gt/distribuidores/gen/ent/requestbranch"
	entdoc "github.com/jmonzon-gt/distribuidores/gen/ent/requestdocument"
	entref "github.com/jmonzon-gt/distribuidores/gen/ent/requestreference"
	entrev "github.com/jmonzon-gt/distribuidores/gen/ent/requestrevision"
	"github.com/jmonzon-gt/distribuidores/internal/common"
	"github.com/jmonzon-gt/distribuidores/internal/entity"
)

// GetChildren loads every reviewer-visible sub-record of a request.
func (s *Store) GetChildren(ctx context.Context, requestID uuid.UUID) (*entity.Children, error) {
	docs, err := s.ent.RequestDocument.Query().
		Where(entdoc.RequestIDEQ(requestID)).
		Order(ent.Asc(entdoc.FieldDocumentType)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	branches, err := s.ent.RequestBranch.Query().
		Where(entbranch.RequestIDEQ(requestID)).
		Order(ent.Asc(entbranch.FieldName)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	refs, err := s.ent.RequestReference.Query().
		Where(entref.RequestIDEQ(requestID)).
		Order(ent.Asc(entref.FieldName)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	revs, err := s.ent.RequestRevision.Query().
		Where(entrev.RequestIDEQ(requestID)).
		Order(ent.Asc(entrev.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, err
	}

	out := &entity.Children{}
	for _, d := range docs {
		out.Documents = append(out.Documents, documentFromEnt(d))
	}
	for _, b := range branches {
		out.Branches = append(out.Branches, branchFromEnt(b))
	}
	for _, r := range refs {
		out.References = append(out.References, referenceFromEnt(r))
	}
	for _, r := range revs {
		out.Revisions = append(out.Revisions, revisionFromEnt(r))
	}
	return out, nil
}

// CreateReference attaches a declared reference to a request.
func (s *Store) CreateReference(ctx context.Context, ref *entity.RequestReference) (*entity.RequestReference, error) {
	row, err := s.ent.RequestReference.Create().
		SetRequestID(ref.RequestID).
		SetName(ref.Name).
		SetRelationship(ref.Relationship).
		SetPhone(ref.Phone).
		Save(ctx)
	if err != nil {
		return nil, err
	}
	out := referenceFromEnt(row)
	return &out, nil
}

// CreateBranch attaches a declared establishment to a request. Duplicates by
// (name, address) are skipped and the existing row returned.
func (s *Store) CreateBranch(ctx context.Context, br *entity.RequestBranch) (*entity.RequestBranch, error) {
	existing, err := s.ent.RequestBranch.Query().
		Where(
			entbranch.RequestIDEQ(br.RequestID),
			entbranch.NameEqualFold(strings.TrimSpace(br.Name)),
			entbranch.AddressEqualFold(strings.TrimSpace(br.Address)),
		).
		First(ctx)
	if err == nil {
		out := branchFromEnt(existing)
		return &out, nil
	}
	if !ent.IsNotFound(err) {
		return nil, err
	}
	row, err := s.ent.RequestBranch.Create().
		SetRequestID(br.RequestID).
		SetName(strings.TrimSpace(br.Name)).
		SetAddress(strings.TrimSpace(br.Address)).
		SetDepartment(br.Department).
		SetMunicipality(br.Municipality).
		SetZone(br.Zone).
		SetStatus(br.Status).
		SetStartDate(br.StartDate).
		Save(ctx)
	if err != nil {
		return nil, err
	}
	out := branchFromEnt(row)
	return &out, nil
}

func (s *Store) SetDocumentReview(ctx context.Context, docID uuid.UUID, status constants.ReviewStatus, notes string) error {
	_, err := s.ent.RequestDocument.UpdateOneID(docID).
		SetReviewStatus(string(status)).
		SetReviewNotes(notes).
		Save(ctx)
	if ent.IsNotFound(err) {
		return common.ErrNotFound
	}
	return err
}

func (s *Store) SetBranchReview(ctx context.Context, branchID uuid.UUID, status constants.ReviewStatus, notes string) error {
	_, err := s.ent.RequestBranch.UpdateOneID(branchID).
		SetReviewStatus(string(status)).
		SetReviewNotes(notes).
		Save(ctx)
	if ent.IsNotFound(err) {
		return common.ErrNotFound
	}
	return err
}

func (s *Store) SetReferenceReview(ctx context.Context, refID uuid.UUID, status constants.ReviewStatus, notes string) error {
	_, err := s.ent.RequestReference.UpdateOneID(refID).
		SetReviewStatus(string(status)).
		SetReviewNotes(notes).
		Save(ctx)
	if ent.IsNotFound(err) {
		return common.ErrNotFound
	}
	return err
}

// AddRevision appends one immutable reviewer verdict.
func (s *Store) AddRevision(ctx context.Context, r entity.RequestRevision) error {
	create := s.ent.RequestRevision.Create().
		SetRequestID(r.RequestID).
		SetSection(r.Section).
		SetApproved(r.Approved).
		SetObservation(r.Observation)
	if r.Actor != nil {
		create = create.SetActor(*r.Actor)
	}
	_, err := create.Save(ctx)
	return err
}

func documentFromEnt(row *ent.RequestDocument) entity.RequestDocument {
	return entity.RequestDocument{
		ID:               row.ID,
		RequestID:        row.RequestID,
		DocumentType:     constants.DocumentType(row.DocumentType),
		ExtractionStatus: constants.ExtractionStatus(row.ExtractionStatus),
		RawText:          row.RawText,
		StructuredFields: row.StructuredFields,
		Score:            row.Score,
		ReviewStatus:     constants.ReviewStatus(row.ReviewStatus),
		ReviewNotes:      row.ReviewNotes,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}
}

func branchFromEnt(row *ent.RequestBranch) entity.RequestBranch {
	return entity.RequestBranch{
		ID:           row.ID,
		RequestID:    row.RequestID,
		Name:         row.Name,
		Address:      row.Address,
		Department:   row.Department,
		Municipality: row.Municipality,
		Zone:         row.Zone,
		Status:       row.Status,
		StartDate:    row.StartDate,
		ReviewStatus: constants.ReviewStatus(row.ReviewStatus),
		ReviewNotes:  row.ReviewNotes,
	}
}

func referenceFromEnt(row *ent.RequestReference) entity.RequestReference {
	return entity.RequestReference{
		ID:           row.ID,
		RequestID:    row.RequestID,
		Name:         row.Name,
		Relationship: row.Relationship,
		Phone:        row.Phone,
		ReviewStatus: constants.ReviewStatus(row.ReviewStatus),
		ReviewNotes:  row.ReviewNotes,
	}
}

func revisionFromEnt(row *ent.RequestRevision) entity.RequestRevision {
	return entity.RequestRevision{
		ID:          row.ID,
		RequestID:   row.RequestID,
		Section:     row.Section,
		Approved:    row.Approved,
		Observation: row.Observation,
		Actor:       row.Actor,
		CreatedAt:   row.CreatedAt,
	}
}
