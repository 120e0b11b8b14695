package client

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/touchbase/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	ErrUnavailable    = errors.New("server unavailable")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrNotSignedIn    = errors.New("not signed in")
	ErrSessionExpired = errors.New("session expired, please sign in again")
)

// AuthError carries an authentication failure message from the store. It
// prints the message unchanged so the user sees exactly what the store said.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

var authMessages = map[string]bool{
	common.MsgInvalidCredentials:  true,
	common.MsgAlreadyRegistered:   true,
	common.MsgEmailNotConfirmed:   true,
	common.MsgInvalidConfirmation: true,
}

func isTokenExpired(err error) bool {
	st, ok := status.FromError(err)
	return ok && st.Code() == codes.Unauthenticated && st.Message() == common.ErrTokenExpired.Error()
}

// mapError turns a gRPC status into the errors callers match on.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	if authMessages[st.Message()] {
		return &AuthError{Message: st.Message()}
	}
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.NotFound:
		return common.ErrorNotFound
	case codes.AlreadyExists:
		return common.ErrorAlreadyExists
	case codes.InvalidArgument:
		msg := strings.TrimPrefix(st.Message(), common.ErrorValidation.Error()+": ")
		return fmt.Errorf("%w: %s", common.ErrorValidation, msg)
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
