package server

import (
	"context"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	distpb "github.com/jmonzon-gt/distribuidores/gen/proto/distribuidores/v1"
	"github.com/jmonzon-gt/distribuidores/internal/graduation"
	"github.com/jmonzon-gt/distribuidores/internal/repository"
	"github.com/jmonzon-gt/distribuidores/internal/utils"
)

type DistributorsService struct {
	distpb.UnimplementedDistributorsServiceServer
	grad   *graduation.Service
	store  *repository.Store
	logger *slog.Logger
}

func NewDistributorsService(grad *graduation.Service, store *repository.Store, logger *slog.Logger) *DistributorsService {
	return &DistributorsService{grad: grad, store: store, logger: logger}
}

func (s *DistributorsService) GraduateRequest(ctx context.Context, req *distpb.GraduateRequestRequest) (*distpb.GraduateRequestResponse, error) {
	requestID, err := utils.ParseUUID("request_id", req.GetRequestId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	actor, err := utils.ParseOptionalUUID("actor", req.GetActor())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	dist, err := s.grad.Graduate(ctx, requestID, actor)
	if err != nil {
		s.logger.Warn("graduation refused", "request_id", requestID, "error", err)
		return nil, toStatus(err)
	}
	return &distpb.GraduateRequestResponse{Distributor: utils.ToPBDistributor(dist)}, nil
}

func (s *DistributorsService) ListDistributors(ctx context.Context, _ *distpb.ListDistributorsRequest) (*distpb.ListDistributorsResponse, error) {
	rows, err := s.store.ListDistributors(ctx)
	if err != nil {
		s.logger.Error("list distributors failed", "error", err)
		return nil, toStatus(err)
	}
	out := make([]*distpb.Distributor, 0, len(rows))
	for _, d := range rows {
		out = append(out, utils.ToPBDistributor(d))
	}
	return &distpb.ListDistributorsResponse{Distributors: out}, nil
}
