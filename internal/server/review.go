package server

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	distpb "github.com/jmonzon-gt/distribuidores/gen/proto/distribuidores/v1"
	"github.com/jmonzon-gt/distribuidores/internal/utils"
	"github.com/jmonzon-gt/distribuidores/internal/workflow"
)

type ReviewService struct {
	distpb.UnimplementedReviewServiceServer
	flow   *workflow.Service
	logger *slog.Logger
}

func NewReviewService(flow *workflow.Service, logger *slog.Logger) *ReviewService {
	return &ReviewService{flow: flow, logger: logger}
}

func (s *ReviewService) ReviewField(ctx context.Context, req *distpb.ReviewFieldRequest) (*distpb.ReviewResponse, error) {
	requestID, actor, err := parseReviewIDs(req.GetRequestId(), req.GetActor())
	if err != nil {
		return nil, err
	}
	if err := s.flow.ReviewField(ctx, requestID, req.GetSection(), req.GetApproved(), req.GetObservation(), actor); err != nil {
		return nil, toStatus(err)
	}
	return &distpb.ReviewResponse{}, nil
}

func (s *ReviewService) ReviewDocument(ctx context.Context, req *distpb.ReviewChildRequest) (*distpb.ReviewResponse, error) {
	return s.reviewChild(ctx, req, s.flow.ReviewDocument)
}

func (s *ReviewService) ReviewBranch(ctx context.Context, req *distpb.ReviewChildRequest) (*distpb.ReviewResponse, error) {
	return s.reviewChild(ctx, req, s.flow.ReviewBranch)
}

func (s *ReviewService) ReviewReference(ctx context.Context, req *distpb.ReviewChildRequest) (*distpb.ReviewResponse, error) {
	return s.reviewChild(ctx, req, s.flow.ReviewReference)
}

func (s *ReviewService) reviewChild(ctx context.Context, req *distpb.ReviewChildRequest,
	apply func(ctx context.Context, requestID, childID uuid.UUID, approved bool, observation string, actor *uuid.UUID) error) (*distpb.ReviewResponse, error) {
	requestID, actor, err := parseReviewIDs(req.GetRequestId(), req.GetActor())
	if err != nil {
		return nil, err
	}
	childID, perr := utils.ParseUUID("child_id", req.GetChildId())
	if perr != nil {
		return nil, status.Error(codes.InvalidArgument, perr.Error())
	}
	if err := apply(ctx, requestID, childID, req.GetApproved(), req.GetObservation(), actor); err != nil {
		return nil, toStatus(err)
	}
	return &distpb.ReviewResponse{}, nil
}

func parseReviewIDs(requestID, actor string) (uuid.UUID, *uuid.UUID, error) {
	id, err := utils.ParseUUID("request_id", requestID)
	if err != nil {
		return uuid.Nil, nil, status.Error(codes.InvalidArgument, err.Error())
	}
	a, err := utils.ParseOptionalUUID("actor", actor)
	if err != nil {
		return uuid.Nil, nil, status.Error(codes.InvalidArgument, err.Error())
	}
	return id, a, nil
}
