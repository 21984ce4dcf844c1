package server

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/jmonzon-gt/distribuidores/internal/common"
)

// toStatus maps domain errors onto gRPC codes so clients can react without
// string matching.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	var (
		verr *common.ValidationError
		terr *common.StateTransitionError
		gerr *common.GraduationBlockedError
		ierr *common.IntegrityError
	)
	switch {
	case errors.As(err, &verr):
		return status.Error(codes.InvalidArgument, verr.Error())
	case errors.As(err, &terr):
		return status.Error(codes.FailedPrecondition, terr.Error())
	case errors.As(err, &gerr):
		return status.Error(codes.FailedPrecondition, gerr.Error())
	case errors.As(err, &ierr):
		return status.Error(codes.AlreadyExists, ierr.Error())
	case errors.Is(err, common.ErrNotFound):
		return status.Error(codes.NotFound, "not found")
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
