package server

import (
	"context"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	distpb "github.com/jmonzon-gt/distribuidores/gen/proto/distribuidores/v1"
	"github.com/jmonzon-gt/distribuidores/internal/export"
	"github.com/jmonzon-gt/distribuidores/internal/repository"
	"github.com/jmonzon-gt/distribuidores/internal/utils"
)

type TrackingService struct {
	distpb.UnimplementedTrackingServiceServer
	store    *repository.Store
	exporter *export.Service
	logger   *slog.Logger
}

func NewTrackingService(store *repository.Store, exporter *export.Service, logger *slog.Logger) *TrackingService {
	return &TrackingService{store: store, exporter: exporter, logger: logger}
}

func (s *TrackingService) GetTracking(ctx context.Context, req *distpb.GetTrackingRequest) (*distpb.GetTrackingResponse, error) {
	requestID, err := utils.ParseUUID("request_id", req.GetRequestId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	entries, err := s.store.ListTracking(ctx, requestID)
	if err != nil {
		return nil, toStatus(err)
	}
	out := make([]*distpb.TrackingEntry, 0, len(entries))
	for i := range entries {
		out = append(out, utils.ToPBTracking(&entries[i]))
	}
	return &distpb.GetTrackingResponse{Entries: out}, nil
}

func (s *TrackingService) ExportTracking(ctx context.Context, req *distpb.ExportTrackingRequest) (*distpb.ExportTrackingResponse, error) {
	requestID, err := utils.ParseUUID("request_id", req.GetRequestId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	data, err := s.exporter.ExportTrackingXLSX(ctx, requestID)
	if err != nil {
		s.logger.Error("tracking export failed", "request_id", requestID, "error", err)
		return nil, toStatus(err)
	}
	return &distpb.ExportTrackingResponse{Xlsx: data}, nil
}
