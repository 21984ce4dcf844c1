// Package repository persists the onboarding domain through Ent. A single
// Store carries all aggregate operations; thin wrappers expose the
// transactional surfaces the workflow and graduation services expect.
package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jmonzon-gt/distribuidores/constants"
	"github.com/jmonzon-gt/distribuidores/gen/ent"
	entrequest "github.com/jmonzon-gt/distribuidores/gen/ent/request"
	"github.com/jmonzon-gt/distribuidores/internal/common"
	"github.com/jmonzon-gt/distribuidores/internal/entity"
)

type Store struct {
	ent *ent.Client
	log *slog.Logger
}

func NewStore(entc *ent.Client, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{ent: entc, log: log}
}

// withinTx runs fn against a transaction-bound copy of the store.
func (s *Store) withinTx(ctx context.Context, fn func(ctx context.Context, txs *Store) error) error {
	tx, err := s.ent.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	txs := &Store{ent: tx.Client(), log: s.log}
	if err := fn(ctx, txs); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			s.log.Error("tx rollback failed", "error", rerr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// CreateRequest inserts a new application in PENDIENTE.
func (s *Store) CreateRequest(ctx context.Context, req *entity.Request) (*entity.Request, error) {
	row, err := s.ent.Request.Create().
		SetBusinessName(req.BusinessName).
		SetOwnerName(req.OwnerName).
		SetNit(req.NIT).
		SetDpi(req.DPI).
		SetEmail(req.Email).
		SetPhone(req.Phone).
		SetAddress(req.Address).
		SetDepartment(req.Department).
		SetMunicipality(req.Municipality).
		SetBankName(req.BankName).
		SetBankAccount(req.BankAccount).
		Save(ctx)
	if err != nil {
		s.log.Error("request create failed", "business_name", req.BusinessName, "err", err)
		return nil, err
	}
	s.log.Info("request created", "request_id", row.ID, "business_name", row.BusinessName)
	return requestFromEnt(row), nil
}

// GetRequest loads one request without locking.
func (s *Store) GetRequest(ctx context.Context, id uuid.UUID) (*entity.Request, error) {
	row, err := s.ent.Request.Query().
		Where(entrequest.IDEQ(id), entrequest.DeletedEQ(false)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return requestFromEnt(row), nil
}

// GetRequestForUpdate loads one request with a row lock. Only meaningful
// inside withinTx.
func (s *Store) GetRequestForUpdate(ctx context.Context, id uuid.UUID) (*entity.Request, error) {
	row, err := s.ent.Request.Query().
		Where(entrequest.IDEQ(id), entrequest.DeletedEQ(false)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return requestFromEnt(row), nil
}

// ListRequests returns non-deleted requests, optionally filtered by state.
func (s *Store) ListRequests(ctx context.Context, state constants.RequestState) ([]*entity.Request, error) {
	q := s.ent.Request.Query().
		Where(entrequest.DeletedEQ(false)).
		Order(ent.Desc(entrequest.FieldCreatedAt))
	if state != "" {
		q = q.Where(entrequest.StateEQ(string(state)))
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Request, 0, len(rows))
	for _, row := range rows {
		out = append(out, requestFromEnt(row))
	}
	return out, nil
}

func (s *Store) setState(ctx context.Context, id uuid.UUID, state constants.RequestState, reviewer *uuid.UUID) error {
	upd := s.ent.Request.UpdateOneID(id).SetState(string(state))
	if reviewer != nil {
		upd = upd.SetAssignedReviewer(*reviewer)
	}
	if _, err := upd.Save(ctx); err != nil {
		s.log.Error("request state update failed", "request_id", id, "state", state, "err", err)
		return err
	}
	return nil
}

// UpdateRequestFields persists the applicant-editable columns.
func (s *Store) UpdateRequestFields(ctx context.Context, req *entity.Request) error {
	_, err := s.ent.Request.UpdateOneID(req.ID).
		SetBusinessName(req.BusinessName).
		SetOwnerName(req.OwnerName).
		SetNit(req.NIT).
		SetDpi(req.DPI).
		SetEmail(req.Email).
		SetPhone(req.Phone).
		SetAddress(req.Address).
		SetDepartment(req.Department).
		SetMunicipality(req.Municipality).
		SetBankName(req.BankName).
		SetBankAccount(req.BankAccount).
		Save(ctx)
	if err != nil {
		s.log.Error("request fields update failed", "request_id", req.ID, "err", err)
	}
	return err
}

// SoftDeleteRequest hides a request from listings without destroying the
// ledger behind it.
func (s *Store) SoftDeleteRequest(ctx context.Context, id uuid.UUID) error {
	n, err := s.ent.Request.Update().
		Where(entrequest.IDEQ(id), entrequest.DeletedEQ(false)).
		SetDeleted(true).
		Save(ctx)
	if err != nil {
		return err
	}
	if n == 0 {
		return common.ErrNotFound
	}
	s.log.Info("request soft-deleted", "request_id", id)
	return nil
}

func requestFromEnt(row *ent.Request) *entity.Request {
	return &entity.Request{
		ID:               row.ID,
		State:            constants.RequestState(row.State),
		AssignedReviewer: row.AssignedReviewer,
		BusinessName:     row.BusinessName,
		OwnerName:        row.OwnerName,
		NIT:              row.Nit,
		DPI:              row.Dpi,
		Email:            row.Email,
		Phone:            row.Phone,
		Address:          row.Address,
		Department:       row.Department,
		Municipality:     row.Municipality,
		BankName:         row.BankName,
		BankAccount:      row.BankAccount,
		ExtractedData:    row.ExtractedData,
		MatchScore:       row.MatchScore,
		Deleted:          row.Deleted,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}
}
