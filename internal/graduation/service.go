// Package graduation atomically promotes an authorized onboarding request
// into the production distributor tables. The whole promotion runs in one
// transaction: the distributor and its mirrored children appear together with
// the request's move to APROBADO, or not at all.
package graduation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jmonzon-gt/distribuidores/constants"
	"github.com/jmonzon-gt/distribuidores/internal/common"
	"github.com/jmonzon-gt/distribuidores/internal/entity"
	"github.com/jmonzon-gt/distribuidores/internal/workflow"
)

// Bundle is everything written to the production side in one graduation.
type Bundle struct {
	Distributor *entity.Distributor
	Documents   []entity.DistributorDocument
	Branches    []entity.DistributorBranch
	References  []entity.DistributorReference
}

// Store is the persistence surface graduation needs. Uniqueness probes and
// the create run inside the same WithinTx as the request's state change.
type Store interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, s Store) error) error

	GetRequestForUpdate(ctx context.Context, id uuid.UUID) (*entity.Request, error)
	GetChildren(ctx context.Context, requestID uuid.UUID) (*entity.Children, error)
	DistributorFieldTaken(ctx context.Context, field, value string) (bool, error)
	CreateDistributor(ctx context.Context, b *Bundle) error
	UpdateRequestState(ctx context.Context, id uuid.UUID, state constants.RequestState) error
	AddTracking(ctx context.Context, e entity.TrackingEntry) error
}

type Service struct {
	store  Store
	logger *slog.Logger
}

func NewService(store Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, logger: logger}
}

// Graduate promotes one request. The request must sit in
// ENVIADO_AUTORIZACION, every child must be settled, and the NIT, DPI and
// email must be unused on the production side.
func (s *Service) Graduate(ctx context.Context, requestID uuid.UUID, actor *uuid.UUID) (*entity.Distributor, error) {
	var out *entity.Distributor
	err := s.store.WithinTx(ctx, func(ctx context.Context, tx Store) error {
		req, err := tx.GetRequestForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		if req.State != constants.StateEnviadoAutorizacion {
			return &common.StateTransitionError{
				From:    req.State,
				To:      constants.StateAprobado,
				Message: fmt.Sprintf("graduation requires state %s", constants.StateEnviadoAutorizacion),
			}
		}

		children, err := tx.GetChildren(ctx, requestID)
		if err != nil {
			return err
		}
		// Children were checked when the request entered final validation,
		// but verdicts could have changed since. Re-check before copying.
		if offenders := workflow.ReadinessOffenders(children); len(offenders) > 0 {
			return &common.GraduationBlockedError{
				RequestID: requestID.String(),
				Offenders: offenders,
			}
		}

		if err := s.checkUniqueness(ctx, tx, req); err != nil {
			return err
		}

		bundle := buildBundle(req, children)
		if err := tx.CreateDistributor(ctx, bundle); err != nil {
			return err
		}
		if err := tx.UpdateRequestState(ctx, requestID, constants.StateAprobado); err != nil {
			return err
		}
		if err := tx.AddTracking(ctx, entity.TrackingEntry{
			ID:            uuid.New(),
			RequestID:     requestID,
			PreviousState: req.State,
			NewState:      constants.StateAprobado,
			Actor:         actor,
			Comment:       "graduated to distributor " + bundle.Distributor.ID.String(),
			CreatedAt:     time.Now(),
		}); err != nil {
			return err
		}

		out = bundle.Distributor
		s.logger.Info("request graduated",
			"request_id", requestID, "distributor_id", bundle.Distributor.ID,
			"documents", len(bundle.Documents), "branches", len(bundle.Branches), "references", len(bundle.References))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) checkUniqueness(ctx context.Context, tx Store, req *entity.Request) error {
	for _, probe := range []struct {
		field, value string
	}{
		{"nit", req.NIT},
		{"dpi", req.DPI},
		{"email", req.Email},
	} {
		if probe.value == "" {
			continue
		}
		taken, err := tx.DistributorFieldTaken(ctx, probe.field, probe.value)
		if err != nil {
			return err
		}
		if taken {
			return &common.IntegrityError{Field: probe.field, Value: probe.value}
		}
	}
	return nil
}

// buildBundle copies the request and its settled children into production
// shapes. Only settled children exist at this point; the copy is total.
func buildBundle(req *entity.Request, children *entity.Children) *Bundle {
	d := &entity.Distributor{
		ID:           uuid.New(),
		RequestID:    req.ID,
		BusinessName: req.BusinessName,
		OwnerName:    req.OwnerName,
		NIT:          req.NIT,
		DPI:          req.DPI,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		Department:   req.Department,
		Municipality: req.Municipality,
		BankName:     req.BankName,
		BankAccount:  req.BankAccount,
		CreatedAt:    time.Now(),
	}
	b := &Bundle{Distributor: d}
	for _, doc := range children.Documents {
		b.Documents = append(b.Documents, entity.DistributorDocument{
			ID:               uuid.New(),
			DistributorID:    d.ID,
			DocumentType:     doc.DocumentType,
			RawText:          doc.RawText,
			StructuredFields: doc.StructuredFields,
		})
	}
	for _, br := range children.Branches {
		b.Branches = append(b.Branches, entity.DistributorBranch{
			ID:            uuid.New(),
			DistributorID: d.ID,
			Name:          br.Name,
			Address:       br.Address,
			Department:    br.Department,
			Municipality:  br.Municipality,
			Zone:          br.Zone,
			Status:        br.Status,
			StartDate:     br.StartDate,
		})
	}
	for _, ref := range children.References {
		b.References = append(b.References, entity.DistributorReference{
			ID:            uuid.New(),
			DistributorID: d.ID,
			Name:          ref.Name,
			Relationship:  ref.Relationship,
			Phone:         ref.Phone,
		})
	}
	return b
}
