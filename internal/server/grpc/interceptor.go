package grpc

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"github.com/dmitrijs2005/touchbase/internal/common"
	pb "github.com/dmitrijs2005/touchbase/internal/proto"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const UserIDKey ctxKey = "userID"

// publicMethods may be called without an access token.
var publicMethods = map[string]bool{
	pb.Store_Ping_FullMethodName:    true,
	pb.Store_SignUp_FullMethodName:  true,
	pb.Store_Confirm_FullMethodName: true,
	pb.Store_SignIn_FullMethodName:  true,
	pb.Store_Refresh_FullMethodName: true,
}

func firstMetadata(ctx context.Context, key string) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(key); len(values) > 0 {
			return values[0]
		}
	}
	return ""
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)

	args := []any{"method", info.FullMethod, "code", status.Code(err).String(), "duration", time.Since(start), "request_id", uuid.NewString()}
	if err != nil && status.Code(err) == codes.Internal {
		s.logger.Error(ctx, "request failed", args...)
	} else {
		s.logger.Debug(ctx, "request", args...)
	}
	return resp, err
}

// apiKeyInterceptor rejects calls that do not present the store public key.
func (s *GRPCServer) apiKeyInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	key := firstMetadata(ctx, common.APIKeyHeaderName)
	if key == "" || subtle.ConstantTimeCompare([]byte(key), []byte(s.publicKey)) != 1 {
		return nil, status.Error(codes.Unauthenticated, "invalid api key")
	}
	return handler(ctx, req)
}

// accessTokenInterceptor resolves the access token into a user id for every
// method outside publicMethods.
func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if publicMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	accessToken := firstMetadata(ctx, common.AccessTokenHeaderName)
	if accessToken == "" {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	userID, err := s.users.UserIDFromAccessToken(accessToken)
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			return nil, status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
		}
		return nil, status.Error(codes.Unauthenticated, common.ErrInvalidToken.Error())
	}

	return handler(context.WithValue(ctx, UserIDKey, userID), req)
}

func userIDFromContext(ctx context.Context) (string, error) {
	userID, ok := ctx.Value(UserIDKey).(string)
	if !ok || userID == "" {
		return "", status.Error(codes.Unauthenticated, "unauthenticated")
	}
	return userID, nil
}
