// Package workflow drives the reviewer state machine for onboarding
// requests. Every transition locks the request row, validates the state
// graph, and appends a tracking entry in the same transaction.
package workflow

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jmonzon-gt/distribuidores/constants"
	"github.com/jmonzon-gt/distribuidores/internal/common"
	"github.com/jmonzon-gt/distribuidores/internal/entity"
)

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

// Transition moves a request to a new state. ASIGNADA records the acting
// reviewer on the request; EN_VALIDACION_FINAL and ENVIADO_AUTORIZACION
// additionally require every child record and field verdict to be settled.
func (s *Service) Transition(ctx context.Context, requestID uuid.UUID, to constants.RequestState, actor *uuid.UUID, comment string) (*entity.Request, error) {
	var out *entity.Request
	err := s.store.WithinTx(ctx, func(ctx context.Context, tx Store) error {
		req, err := tx.GetRequestForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		if err := ValidateTransition(req, to); err != nil {
			return err
		}

		if to == constants.StateEnValidacionFinal || to == constants.StateEnviadoAutorizacion {
			children, err := tx.GetChildren(ctx, requestID)
			if err != nil {
				return err
			}
			if offenders := ReadinessOffenders(children); len(offenders) > 0 {
				return &common.StateTransitionError{
					From:    req.State,
					To:      to,
					Message: "unsettled children: " + strings.Join(offenders, "; "),
				}
			}
		}

		reviewer := req.AssignedReviewer
		if to == constants.StateAsignada {
			if actor == nil {
				return common.NewValidationError("actor", "is required to assign a reviewer")
			}
			reviewer = actor
		}

		if err := tx.UpdateRequestState(ctx, requestID, to, reviewer); err != nil {
			return err
		}
		if err := tx.AddTracking(ctx, entity.TrackingEntry{
			ID:            uuid.New(),
			RequestID:     requestID,
			PreviousState: req.State,
			NewState:      to,
			Actor:         actor,
			Comment:       comment,
			CreatedAt:     time.Now(),
		}); err != nil {
			return err
		}

		prev := req.State
		req.State = to
		req.AssignedReviewer = reviewer
		out = req
		s.logger.Info("request transitioned",
			"request_id", requestID, "from", prev, "to", to, "actor", actorString(actor))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateApplicantData patches applicant-editable fields. Only allowed while
// the request sits in an editable state.
func (s *Service) UpdateApplicantData(ctx context.Context, requestID uuid.UUID, patch *entity.Request) (*entity.Request, error) {
	var out *entity.Request
	err := s.store.WithinTx(ctx, func(ctx context.Context, tx Store) error {
		req, err := tx.GetRequestForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		if !req.State.IsEditable() {
			return &common.StateTransitionError{
				From:    req.State,
				To:      req.State,
				Message: "request is not editable in this state",
			}
		}
		applyPatch(req, patch)
		if err := tx.UpdateRequestFields(ctx, req); err != nil {
			return err
		}
		out = req
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ReviewField records a reviewer verdict on a named request field or section.
// The verdict is an append-only revision; rejection requires an observation.
func (s *Service) ReviewField(ctx context.Context, requestID uuid.UUID, section string, approved bool, observation string, actor *uuid.UUID) error {
	if section == "" {
		return common.NewValidationError("section", "is required")
	}
	if err := requireObservation(approved, observation); err != nil {
		return err
	}
	return s.store.WithinTx(ctx, func(ctx context.Context, tx Store) error {
		req, err := tx.GetRequestForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		if err := reviewable(req); err != nil {
			return err
		}
		return tx.AddRevision(ctx, entity.RequestRevision{
			ID:          uuid.New(),
			RequestID:   requestID,
			Section:     section,
			Approved:    approved,
			Observation: observation,
			Actor:       actor,
			CreatedAt:   time.Now(),
		})
	})
}

// ReviewDocument settles one uploaded document and records the revision.
func (s *Service) ReviewDocument(ctx context.Context, requestID, docID uuid.UUID, approved bool, observation string, actor *uuid.UUID) error {
	return s.reviewChild(ctx, requestID, "document", approved, observation, actor,
		func(ctx context.Context, tx Store, status constants.ReviewStatus) error {
			return tx.SetDocumentReview(ctx, docID, status, observation)
		})
}

// ReviewBranch settles one declared establishment.
func (s *Service) ReviewBranch(ctx context.Context, requestID, branchID uuid.UUID, approved bool, observation string, actor *uuid.UUID) error {
	return s.reviewChild(ctx, requestID, "branch", approved, observation, actor,
		func(ctx context.Context, tx Store, status constants.ReviewStatus) error {
			return tx.SetBranchReview(ctx, branchID, status, observation)
		})
}

// ReviewReference settles one reference. References use VERIFIED on the
// approving side because a human confirmed them out of band.
func (s *Service) ReviewReference(ctx context.Context, requestID, refID uuid.UUID, approved bool, observation string, actor *uuid.UUID) error {
	return s.reviewChild(ctx, requestID, "reference", approved, observation, actor,
		func(ctx context.Context, tx Store, status constants.ReviewStatus) error {
			if approved {
				status = constants.ReviewVerified
			}
			return tx.SetReferenceReview(ctx, refID, status, observation)
		})
}

func (s *Service) reviewChild(ctx context.Context, requestID uuid.UUID, section string, approved bool, observation string, actor *uuid.UUID,
	apply func(ctx context.Context, tx Store, status constants.ReviewStatus) error) error {
	if err := requireObservation(approved, observation); err != nil {
		return err
	}
	status := constants.ReviewApproved
	if !approved {
		status = constants.ReviewRejected
	}
	return s.store.WithinTx(ctx, func(ctx context.Context, tx Store) error {
		req, err := tx.GetRequestForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		if err := reviewable(req); err != nil {
			return err
		}
		if err := apply(ctx, tx, status); err != nil {
			return err
		}
		return tx.AddRevision(ctx, entity.RequestRevision{
			ID:          uuid.New(),
			RequestID:   requestID,
			Section:     section,
			Approved:    approved,
			Observation: observation,
			Actor:       actor,
			CreatedAt:   time.Now(),
		})
	})
}

// reviewable refuses verdicts on requests nobody is reviewing anymore.
func reviewable(req *entity.Request) error {
	if req.State.IsTerminal() {
		return &common.StateTransitionError{
			From:    req.State,
			To:      req.State,
			Message: "request is in a terminal state",
		}
	}
	return nil
}

func requireObservation(approved bool, observation string) error {
	if !approved && strings.TrimSpace(observation) == "" {
		return common.NewValidationError("observation", "is required when rejecting")
	}
	return nil
}

func applyPatch(req, patch *entity.Request) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&req.BusinessName, patch.BusinessName)
	set(&req.OwnerName, patch.OwnerName)
	set(&req.NIT, patch.NIT)
	set(&req.DPI, patch.DPI)
	set(&req.Email, patch.Email)
	set(&req.Phone, patch.Phone)
	set(&req.Address, patch.Address)
	set(&req.Department, patch.Department)
	set(&req.Municipality, patch.Municipality)
	set(&req.BankName, patch.BankName)
	set(&req.BankAccount, patch.BankAccount)
}

func actorString(actor *uuid.UUID) string {
	if actor == nil {
		return "system"
	}
	return actor.String()
}
