package grpc

import (
	"context"

	pb "github.com/dmitrijs2005/touchbase/internal/proto"
	"github.com/dmitrijs2005/touchbase/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// fail logs unexpected errors and converts err to a gRPC status.
func (s *GRPCServer) fail(ctx context.Context, op string, err error) error {
	st := toStatus(err)
	if status.Code(st) == codes.Internal {
		s.logger.Error(ctx, op+" failed", "error", err)
	}
	return st
}

func sessionResponse(sess *services.Session) *pb.SessionResponse {
	return &pb.SessionResponse{
		AccessToken:  sess.AccessToken,
		RefreshToken: sess.RefreshToken,
		ExpiresAt:    timestamppb.New(sess.ExpiresAt),
		User:         &pb.User{Id: sess.UserID, Email: sess.Email},
	}
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) SignUp(ctx context.Context, req *pb.SignUpRequest) (*pb.SignUpResponse, error) {
	user, pending, err := s.users.SignUp(ctx, req.GetEmail(), req.GetPassword())
	if err != nil {
		return nil, s.fail(ctx, "sign up", err)
	}
	s.logger.Info(ctx, "Registered", "user_id", user.ID)
	return &pb.SignUpResponse{UserId: user.ID, ConfirmationRequired: pending}, nil
}

func (s *GRPCServer) Confirm(ctx context.Context, req *pb.ConfirmRequest) (*emptypb.Empty, error) {
	if err := s.users.Confirm(ctx, req.GetToken()); err != nil {
		return nil, s.fail(ctx, "confirm", err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) SignIn(ctx context.Context, req *pb.SignInRequest) (*pb.SessionResponse, error) {
	sess, err := s.users.SignIn(ctx, req.GetEmail(), req.GetPassword())
	if err != nil {
		return nil, s.fail(ctx, "sign in", err)
	}
	return sessionResponse(sess), nil
}

func (s *GRPCServer) Refresh(ctx context.Context, req *pb.RefreshRequest) (*pb.SessionResponse, error) {
	sess, err := s.users.Refresh(ctx, req.GetRefreshToken())
	if err != nil {
		return nil, s.fail(ctx, "refresh", err)
	}
	return sessionResponse(sess), nil
}

func (s *GRPCServer) SignOut(ctx context.Context, req *pb.SignOutRequest) (*emptypb.Empty, error) {
	if _, err := userIDFromContext(ctx); err != nil {
		return nil, err
	}
	if err := s.users.SignOut(ctx, req.GetRefreshToken()); err != nil {
		return nil, s.fail(ctx, "sign out", err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) ListContacts(ctx context.Context, req *pb.ListRequest) (*pb.ListContactsResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	list, err := s.data.ListContacts(ctx, userID)
	if err != nil {
		return nil, s.fail(ctx, "list contacts", err)
	}
	resp := &pb.ListContactsResponse{Contacts: make([]*pb.Contact, 0, len(list))}
	for i := range list {
		resp.Contacts = append(resp.Contacts, contactToPB(&list[i]))
	}
	return resp, nil
}

func (s *GRPCServer) CreateContact(ctx context.Context, req *pb.Contact) (*pb.Contact, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	c, err := s.data.CreateContact(ctx, userID, contactFromPB(req))
	if err != nil {
		return nil, s.fail(ctx, "create contact", err)
	}
	return contactToPB(c), nil
}

func (s *GRPCServer) UpdateContact(ctx context.Context, req *pb.Contact) (*pb.Contact, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	c, err := s.data.UpdateContact(ctx, userID, contactFromPB(req))
	if err != nil {
		return nil, s.fail(ctx, "update contact", err)
	}
	return contactToPB(c), nil
}

func (s *GRPCServer) DeleteContact(ctx context.Context, req *pb.DeleteRequest) (*emptypb.Empty, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.data.DeleteContact(ctx, userID, req.GetId()); err != nil {
		return nil, s.fail(ctx, "delete contact", err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) ListOccasions(ctx context.Context, req *pb.ListRequest) (*pb.ListOccasionsResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	list, err := s.data.ListOccasions(ctx, userID)
	if err != nil {
		return nil, s.fail(ctx, "list occasions", err)
	}
	resp := &pb.ListOccasionsResponse{Occasions: make([]*pb.Occasion, 0, len(list))}
	for i := range list {
		resp.Occasions = append(resp.Occasions, occasionToPB(&list[i]))
	}
	return resp, nil
}

func (s *GRPCServer) CreateOccasion(ctx context.Context, req *pb.Occasion) (*pb.Occasion, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	in, err := occasionFromPB(req)
	if err != nil {
		return nil, s.fail(ctx, "create occasion", err)
	}
	o, err := s.data.CreateOccasion(ctx, userID, in)
	if err != nil {
		return nil, s.fail(ctx, "create occasion", err)
	}
	return occasionToPB(o), nil
}

func (s *GRPCServer) UpdateOccasion(ctx context.Context, req *pb.Occasion) (*pb.Occasion, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	in, err := occasionFromPB(req)
	if err != nil {
		return nil, s.fail(ctx, "update occasion", err)
	}
	o, err := s.data.UpdateOccasion(ctx, userID, in)
	if err != nil {
		return nil, s.fail(ctx, "update occasion", err)
	}
	return occasionToPB(o), nil
}

func (s *GRPCServer) DeleteOccasion(ctx context.Context, req *pb.DeleteRequest) (*emptypb.Empty, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.data.DeleteOccasion(ctx, userID, req.GetId()); err != nil {
		return nil, s.fail(ctx, "delete occasion", err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) ListMessages(ctx context.Context, req *pb.ListRequest) (*pb.ListMessagesResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	list, err := s.data.ListMessages(ctx, userID, int(req.GetLimit()))
	if err != nil {
		return nil, s.fail(ctx, "list messages", err)
	}
	resp := &pb.ListMessagesResponse{Messages: make([]*pb.Message, 0, len(list))}
	for i := range list {
		resp.Messages = append(resp.Messages, messageToPB(&list[i]))
	}
	return resp, nil
}

func (s *GRPCServer) CreateMessage(ctx context.Context, req *pb.Message) (*pb.Message, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	m, err := s.data.CreateMessage(ctx, userID, messageFromPB(req))
	if err != nil {
		return nil, s.fail(ctx, "create message", err)
	}
	return messageToPB(m), nil
}
