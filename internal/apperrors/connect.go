package apperrors

import (
	"errors"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/structpb"
)

var codes = map[ErrorType]connect.Code{
	NotFoundError:   connect.CodeNotFound,
	ValidationError: connect.CodeInvalidArgument,
	ParseError:      connect.CodeInvalidArgument,
	AuthError:       connect.CodeUnauthenticated,
	ForbiddenError:  connect.CodePermissionDenied,
	ConflictError:   connect.CodeAlreadyExists,
}

// Code maps err to the Connect status code the API reports for it.
func Code(err error) connect.Code {
	if code, ok := codes[TypeOf(err)]; ok {
		return code
	}
	return connect.CodeInternal
}

// ToConnect converts err into a *connect.Error. NotFound errors carry a
// {entity, id} detail so clients can tell which reference was missing.
func ToConnect(err error) error {
	if err == nil {
		return nil
	}
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return connectErr
	}

	cerr := connect.NewError(Code(err), err)

	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Type == NotFoundError && appErr.Entity != "" {
		detail, derr := structpb.NewStruct(map[string]any{
			"entity": appErr.Entity,
			"id":     appErr.ID,
		})
		if derr == nil {
			if d, derr := connect.NewErrorDetail(detail); derr == nil {
				cerr.AddDetail(d)
			}
		}
	}
	return cerr
}
