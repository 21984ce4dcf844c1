package utils

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	distpb "github.com/jmonzon-gt/distribuidores/gen/proto/distribuidores/v1"
	"github.com/jmonzon-gt/distribuidores/internal/entity"
	"github.com/jmonzon-gt/distribuidores/internal/tasks"
)

func uuidOrEmpty(p *uuid.UUID) string {
	if p == nil {
		return ""
	}
	return p.String()
}

// ParseUUID parses a required UUID field, naming the field in the error.
func ParseUUID(field, s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s must be a UUID: %w", field, err)
	}
	return id, nil
}

// ParseOptionalUUID returns nil for an empty string.
func ParseOptionalUUID(field, s string) (*uuid.UUID, error) {
	if s == "" {
		return nil, nil
	}
	id, err := ParseUUID(field, s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func ToPBRequest(r *entity.Request) *distpb.Request {
	score := int32(0)
	if r.MatchScore != nil {
		score = int32(*r.MatchScore)
	}
	return &distpb.Request{
		Id:               r.ID.String(),
		State:            string(r.State),
		AssignedReviewer: uuidOrEmpty(r.AssignedReviewer),
		BusinessName:     r.BusinessName,
		OwnerName:        r.OwnerName,
		Nit:              r.NIT,
		Dpi:              r.DPI,
		Email:            r.Email,
		Phone:            r.Phone,
		Address:          r.Address,
		Department:       r.Department,
		Municipality:     r.Municipality,
		BankName:         r.BankName,
		BankAccount:      r.BankAccount,
		MatchScore:       score,
		CreatedAt:        r.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:        r.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBDocument(d *entity.RequestDocument) *distpb.RequestDocument {
	return &distpb.RequestDocument{
		Id:               d.ID.String(),
		RequestId:        d.RequestID.String(),
		DocumentType:     string(d.DocumentType),
		ExtractionStatus: string(d.ExtractionStatus),
		StructuredFields: d.StructuredFields,
		Score:            int32(d.Score),
		ReviewStatus:     string(d.ReviewStatus),
		ReviewNotes:      d.ReviewNotes,
	}
}

func ToPBBranch(b *entity.RequestBranch) *distpb.RequestBranch {
	return &distpb.RequestBranch{
		Id:           b.ID.String(),
		RequestId:    b.RequestID.String(),
		Name:         b.Name,
		Address:      b.Address,
		Department:   b.Department,
		Municipality: b.Municipality,
		Zone:         b.Zone,
		Status:       b.Status,
		StartDate:    b.StartDate,
		ReviewStatus: string(b.ReviewStatus),
		ReviewNotes:  b.ReviewNotes,
	}
}

func ToPBReference(r *entity.RequestReference) *distpb.RequestReference {
	return &distpb.RequestReference{
		Id:           r.ID.String(),
		RequestId:    r.RequestID.String(),
		Name:         r.Name,
		Relationship: r.Relationship,
		Phone:        r.Phone,
		ReviewStatus: string(r.ReviewStatus),
		ReviewNotes:  r.ReviewNotes,
	}
}

func ToPBDistributor(d *entity.Distributor) *distpb.Distributor {
	return &distpb.Distributor{
		Id:           d.ID.String(),
		RequestId:    d.RequestID.String(),
		BusinessName: d.BusinessName,
		OwnerName:    d.OwnerName,
		Nit:          d.NIT,
		Dpi:          d.DPI,
		Email:        d.Email,
		Phone:        d.Phone,
		Address:      d.Address,
		Department:   d.Department,
		Municipality: d.Municipality,
		BankName:     d.BankName,
		BankAccount:  d.BankAccount,
		CreatedAt:    d.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBTracking(e *entity.TrackingEntry) *distpb.TrackingEntry {
	return &distpb.TrackingEntry{
		Id:            e.ID.String(),
		RequestId:     e.RequestID.String(),
		PreviousState: string(e.PreviousState),
		NewState:      string(e.NewState),
		Actor:         uuidOrEmpty(e.Actor),
		Comment:       e.Comment,
		CreatedAt:     e.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBTask(s tasks.Snapshot) *distpb.TaskSnapshot {
	return &distpb.TaskSnapshot{
		TaskId:  s.TaskID.String(),
		Status:  string(s.Status),
		Score:   int32(s.Score),
		Message: s.Message,
		Fields:  s.Fields,
	}
}
