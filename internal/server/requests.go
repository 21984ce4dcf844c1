package server

import (
	"context"
	"log/slog"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/jmonzon-gt/distribuidores/constants"
	distpb "github.com/jmonzon-gt/distribuidores/gen/proto/distribuidores/v1"
	"github.com/jmonzon-gt/distribuidores/internal/entity"
	"github.com/jmonzon-gt/distribuidores/internal/repository"
	"github.com/jmonzon-gt/distribuidores/internal/utils"
	"github.com/jmonzon-gt/distribuidores/internal/workflow"
)

type RequestsService struct {
	distpb.UnimplementedRequestsServiceServer
	store  *repository.Store
	flow   *workflow.Service
	logger *slog.Logger
}

func NewRequestsService(store *repository.Store, flow *workflow.Service, logger *slog.Logger) *RequestsService {
	return &RequestsService{store: store, flow: flow, logger: logger}
}

func (s *RequestsService) CreateRequest(ctx context.Context, req *distpb.CreateRequestRequest) (*distpb.CreateRequestResponse, error) {
	if strings.TrimSpace(req.GetBusinessName()) == "" {
		return nil, status.Error(codes.InvalidArgument, "business_name is required")
	}

	created, err := s.store.CreateRequest(ctx, &entity.Request{
		BusinessName: strings.TrimSpace(req.GetBusinessName()),
		OwnerName:    req.GetOwnerName(),
		NIT:          req.GetNit(),
		DPI:          req.GetDpi(),
		Email:        req.GetEmail(),
		Phone:        req.GetPhone(),
		Address:      req.GetAddress(),
		Department:   req.GetDepartment(),
		Municipality: req.GetMunicipality(),
		BankName:     req.GetBankName(),
		BankAccount:  req.GetBankAccount(),
	})
	if err != nil {
		s.logger.Error("create request failed", "business_name", req.GetBusinessName(), "error", err)
		return nil, toStatus(err)
	}
	return &distpb.CreateRequestResponse{Request: utils.ToPBRequest(created)}, nil
}

func (s *RequestsService) GetRequest(ctx context.Context, req *distpb.GetRequestRequest) (*distpb.GetRequestResponse, error) {
	id, err := utils.ParseUUID("request_id", req.GetRequestId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	r, err := s.store.GetRequest(ctx, id)
	if err != nil {
		return nil, toStatus(err)
	}
	children, err := s.store.GetChildren(ctx, id)
	if err != nil {
		return nil, toStatus(err)
	}

	out := &distpb.GetRequestResponse{Request: utils.ToPBRequest(r)}
	for i := range children.Documents {
		out.Documents = append(out.Documents, utils.ToPBDocument(&children.Documents[i]))
	}
	for i := range children.Branches {
		out.Branches = append(out.Branches, utils.ToPBBranch(&children.Branches[i]))
	}
	for i := range children.References {
		out.References = append(out.References, utils.ToPBReference(&children.References[i]))
	}
	return out, nil
}

func (s *RequestsService) ListRequests(ctx context.Context, req *distpb.ListRequestsRequest) (*distpb.ListRequestsResponse, error) {
	state := constants.RequestState(req.GetState())
	if state != "" && !state.IsValid() {
		return nil, status.Errorf(codes.InvalidArgument, "unknown state %q", req.GetState())
	}

	rows, err := s.store.ListRequests(ctx, state)
	if err != nil {
		s.logger.Error("list requests failed", "state", state, "error", err)
		return nil, toStatus(err)
	}
	out := make([]*distpb.Request, 0, len(rows))
	for _, r := range rows {
		out = append(out, utils.ToPBRequest(r))
	}
	return &distpb.ListRequestsResponse{Requests: out}, nil
}

func (s *RequestsService) UpdateRequest(ctx context.Context, req *distpb.UpdateRequestRequest) (*distpb.UpdateRequestResponse, error) {
	id, err := utils.ParseUUID("request_id", req.GetRequestId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	p := req.GetPatch()
	if p == nil {
		return nil, status.Error(codes.InvalidArgument, "patch is required")
	}

	updated, err := s.flow.UpdateApplicantData(ctx, id, &entity.Request{
		BusinessName: p.GetBusinessName(),
		OwnerName:    p.GetOwnerName(),
		NIT:          p.GetNit(),
		DPI:          p.GetDpi(),
		Email:        p.GetEmail(),
		Phone:        p.GetPhone(),
		Address:      p.GetAddress(),
		Department:   p.GetDepartment(),
		Municipality: p.GetMunicipality(),
		BankName:     p.GetBankName(),
		BankAccount:  p.GetBankAccount(),
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &distpb.UpdateRequestResponse{Request: utils.ToPBRequest(updated)}, nil
}

func (s *RequestsService) TransitionRequest(ctx context.Context, req *distpb.TransitionRequestRequest) (*distpb.TransitionRequestResponse, error) {
	id, err := utils.ParseUUID("request_id", req.GetRequestId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	actor, err := utils.ParseOptionalUUID("actor", req.GetActor())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	updated, err := s.flow.Transition(ctx, id, constants.RequestState(req.GetToState()), actor, req.GetComment())
	if err != nil {
		return nil, toStatus(err)
	}
	return &distpb.TransitionRequestResponse{Request: utils.ToPBRequest(updated)}, nil
}

func (s *RequestsService) AddReference(ctx context.Context, req *distpb.AddReferenceRequest) (*distpb.AddReferenceResponse, error) {
	id, err := utils.ParseUUID("request_id", req.GetRequestId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if strings.TrimSpace(req.GetName()) == "" {
		return nil, status.Error(codes.InvalidArgument, "name is required")
	}

	ref, err := s.store.CreateReference(ctx, &entity.RequestReference{
		RequestID:    id,
		Name:         strings.TrimSpace(req.GetName()),
		Relationship: req.GetRelationship(),
		Phone:        req.GetPhone(),
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &distpb.AddReferenceResponse{Reference: utils.ToPBReference(ref)}, nil
}
