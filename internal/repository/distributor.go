package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jmonzon-gt/distribuidores/gen/ent"
	entdist "github.com/jmonzon-gt/distribuidores/gen/ent/distributor"
	"github.com/jmonzon-gt/distribuidores/internal/common"
	"github.com/jmonzon-gt/distribuidores/internal/entity"
	"github.com/jmonzon-gt/distribuidores/internal/graduation"
)

// DistributorFieldTaken probes production-side uniqueness for one field.
func (s *Store) DistributorFieldTaken(ctx context.Context, field, value string) (bool, error) {
	q := s.ent.Distributor.Query().Where(entdist.DeletedEQ(false))
	switch field {
	case "nit":
		q = q.Where(entdist.NitEQ(value))
	case "dpi":
		q = q.Where(entdist.DpiEQ(value))
	case "email":
		q = q.Where(entdist.EmailEQ(value))
	default:
		return false, fmt.Errorf("unknown uniqueness field %q", field)
	}
	return q.Exist(ctx)
}

// CreateDistributor writes the full graduation bundle. Callers run this
// inside the graduating transaction.
func (s *Store) CreateDistributor(ctx context.Context, b *graduation.Bundle) error {
	d := b.Distributor
	create := s.ent.Distributor.Create().
		SetID(d.ID).
		SetRequestID(d.RequestID).
		SetBusinessName(d.BusinessName).
		SetOwnerName(d.OwnerName).
		SetPhone(d.Phone).
		SetAddress(d.Address).
		SetDepartment(d.Department).
		SetMunicipality(d.Municipality).
		SetBankName(d.BankName).
		SetBankAccount(d.BankAccount)
	// empty strings would collide on the partial uniques
	if d.NIT != "" {
		create = create.SetNit(d.NIT)
	}
	if d.DPI != "" {
		create = create.SetDpi(d.DPI)
	}
	if d.Email != "" {
		create = create.SetEmail(d.Email)
	}
	if _, err := create.Save(ctx); err != nil {
		s.log.Error("distributor create failed", "request_id", d.RequestID, "err", err)
		if ent.IsConstraintError(err) {
			return integrityError(err, d)
		}
		return err
	}

	for _, doc := range b.Documents {
		if _, err := s.ent.DistributorDocument.Create().
			SetID(doc.ID).
			SetDistributorID(d.ID).
			SetDocumentType(string(doc.DocumentType)).
			SetRawText(doc.RawText).
			SetStructuredFields(doc.StructuredFields).
			Save(ctx); err != nil {
			return err
		}
	}
	for _, br := range b.Branches {
		if _, err := s.ent.DistributorBranch.Create().
			SetID(br.ID).
			SetDistributorID(d.ID).
			SetName(br.Name).
			SetAddress(br.Address).
			SetDepartment(br.Department).
			SetMunicipality(br.Municipality).
			SetZone(br.Zone).
			SetStatus(br.Status).
			SetStartDate(br.StartDate).
			Save(ctx); err != nil {
			return err
		}
	}
	for _, ref := range b.References {
		if _, err := s.ent.DistributorReference.Create().
			SetID(ref.ID).
			SetDistributorID(d.ID).
			SetName(ref.Name).
			SetRelationship(ref.Relationship).
			SetPhone(ref.Phone).
			Save(ctx); err != nil {
			return err
		}
	}
	s.log.Info("distributor created", "distributor_id", d.ID, "request_id", d.RequestID)
	return nil
}

// integrityError turns a unique-index violation into the field-level error
// the API reports. Concurrent graduations can race past DistributorFieldTaken
// and only the index catches the loser.
func integrityError(err error, d *entity.Distributor) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "nit"):
		return &common.IntegrityError{Field: "nit", Value: d.NIT}
	case strings.Contains(msg, "dpi"):
		return &common.IntegrityError{Field: "dpi", Value: d.DPI}
	case strings.Contains(msg, "email"):
		return &common.IntegrityError{Field: "email", Value: d.Email}
	case strings.Contains(msg, "request_id"):
		return &common.IntegrityError{Field: "request_id", Value: d.RequestID.String()}
	default:
		return err
	}
}

// GetDistributor loads one production record.
func (s *Store) GetDistributor(ctx context.Context, id uuid.UUID) (*entity.Distributor, error) {
	row, err := s.ent.Distributor.Query().
		Where(entdist.IDEQ(id), entdist.DeletedEQ(false)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return distributorFromEnt(row), nil
}

// ListDistributors returns non-deleted production records, newest first.
func (s *Store) ListDistributors(ctx context.Context) ([]*entity.Distributor, error) {
	rows, err := s.ent.Distributor.Query().
		Where(entdist.DeletedEQ(false)).
		Order(ent.Desc(entdist.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Distributor, 0, len(rows))
	for _, row := range rows {
		out = append(out, distributorFromEnt(row))
	}
	return out, nil
}

func distributorFromEnt(row *ent.Distributor) *entity.Distributor {
	return &entity.Distributor{
		ID:           row.ID,
		RequestID:    row.RequestID,
		BusinessName: row.BusinessName,
		OwnerName:    row.OwnerName,
		NIT:          row.Nit,
		DPI:          row.Dpi,
		Email:        row.Email,
		Phone:        row.Phone,
		Address:      row.Address,
		Department:   row.Department,
		Municipality: row.Municipality,
		BankName:     row.BankName,
		BankAccount:  row.BankAccount,
		Deleted:      row.Deleted,
		CreatedAt:    row.CreatedAt,
	}
}
