package grpc

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/healthgate/internal/common"
	"github.com/dmitrijs2005/healthgate/internal/validation"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus maps domain errors to gRPC statuses. Messages of user-facing
// errors are passed through; anything unexpected becomes a bare Internal.
func toStatus(err error) error {
	var ve *validation.ValidationError
	switch {
	case errors.As(err, &ve):
		return status.Error(codes.InvalidArgument, ve.Error())
	case errors.Is(err, common.ErrDuplicateUsername):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, common.ErrUnauthorized),
		errors.Is(err, common.ErrInvalidCredentials),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, common.ErrUnknownDiseaseType),
		errors.Is(err, common.ErrEmptyCredentials),
		errors.Is(err, common.ErrPasswordTooLong):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrModelUnavailable):
		return status.Error(codes.Unavailable, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, common.ErrorInternal.Error())
	}
}

// RemoteError is a failed call as seen by the client. It matches the common
// sentinels through errors.Is so callers can treat local and remote failures
// alike.
type RemoteError struct {
	Code    codes.Code
	Message string
}

func (e *RemoteError) Error() string { return e.Message }

func (e *RemoteError) Is(target error) bool {
	switch target {
	case common.ErrDuplicateUsername:
		return e.Code == codes.AlreadyExists
	case common.ErrUnauthorized:
		return e.Code == codes.Unauthenticated
	case common.ErrModelUnavailable:
		return e.Code == codes.Unavailable && strings.HasPrefix(e.Message, target.Error())
	case common.ErrInvalidCredentials, common.ErrTokenExpired, common.ErrInvalidToken,
		common.ErrUnknownDiseaseType, common.ErrEmptyCredentials, common.ErrPasswordTooLong:
		return strings.HasPrefix(e.Message, target.Error())
	}
	return false
}

func fromStatus(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	return &RemoteError{Code: st.Code(), Message: st.Message()}
}
