package server

import (
	"context"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/jmonzon-gt/distribuidores/constants"
	distpb "github.com/jmonzon-gt/distribuidores/gen/proto/distribuidores/v1"
	"github.com/jmonzon-gt/distribuidores/internal/tasks"
	"github.com/jmonzon-gt/distribuidores/internal/utils"
)

type DocumentsService struct {
	distpb.UnimplementedDocumentsServiceServer
	coordinator *tasks.Coordinator
	logger      *slog.Logger
}

func NewDocumentsService(coordinator *tasks.Coordinator, logger *slog.Logger) *DocumentsService {
	return &DocumentsService{coordinator: coordinator, logger: logger}
}

// SubmitDocument accepts an upload, validates it synchronously, and returns
// the task to poll. Extraction runs in the background.
func (s *DocumentsService) SubmitDocument(ctx context.Context, req *distpb.SubmitDocumentRequest) (*distpb.SubmitDocumentResponse, error) {
	requestID, err := utils.ParseUUID("request_id", req.GetRequestId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	snap, err := s.coordinator.Submit(ctx, tasks.Upload{
		RequestID:    requestID,
		DocumentType: constants.DocumentType(req.GetDocumentType()),
		Filename:     req.GetFilename(),
		Content:      req.GetContent(),
	})
	if err != nil {
		s.logger.Warn("document submit rejected",
			"request_id", requestID, "doc_type", req.GetDocumentType(), "error", err)
		return nil, toStatus(err)
	}
	return &distpb.SubmitDocumentResponse{Task: utils.ToPBTask(snap)}, nil
}

func (s *DocumentsService) PollTask(ctx context.Context, req *distpb.PollTaskRequest) (*distpb.PollTaskResponse, error) {
	taskID, err := utils.ParseUUID("task_id", req.GetTaskId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	snap, err := s.coordinator.Poll(ctx, taskID)
	if err != nil {
		return nil, toStatus(err)
	}
	return &distpb.PollTaskResponse{Task: utils.ToPBTask(snap)}, nil
}

// AwaitTask blocks until the task turns terminal or the server-side polling
// ceiling reports it as failed.
func (s *DocumentsService) AwaitTask(ctx context.Context, req *distpb.AwaitTaskRequest) (*distpb.AwaitTaskResponse, error) {
	taskID, err := utils.ParseUUID("task_id", req.GetTaskId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	snap, err := s.coordinator.Await(ctx, taskID)
	if err != nil {
		return nil, toStatus(err)
	}
	return &distpb.AwaitTaskResponse{Task: utils.ToPBTask(snap)}, nil
}
