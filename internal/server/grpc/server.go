// Package grpc exposes the store services over gRPC as the touchbase.v1.Store
// service generated into internal/proto.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/touchbase/internal/logging"
	pb "github.com/dmitrijs2005/touchbase/internal/proto"
	"github.com/dmitrijs2005/touchbase/internal/server/models"
	"github.com/dmitrijs2005/touchbase/internal/server/services"
	"google.golang.org/grpc"
)

type userSvc interface {
	SignUp(ctx context.Context, email, password string) (*models.User, bool, error)
	Confirm(ctx context.Context, token string) error
	SignIn(ctx context.Context, email, password string) (*services.Session, error)
	Refresh(ctx context.Context, refreshToken string) (*services.Session, error)
	SignOut(ctx context.Context, refreshToken string) error
	UserIDFromAccessToken(token string) (string, error)
}

type dataSvc interface {
	ListContacts(ctx context.Context, userID string) ([]models.Contact, error)
	CreateContact(ctx context.Context, userID string, c *models.Contact) (*models.Contact, error)
	UpdateContact(ctx context.Context, userID string, c *models.Contact) (*models.Contact, error)
	DeleteContact(ctx context.Context, userID, id string) error

	ListOccasions(ctx context.Context, userID string) ([]models.Occasion, error)
	CreateOccasion(ctx context.Context, userID string, o *models.Occasion) (*models.Occasion, error)
	UpdateOccasion(ctx context.Context, userID string, o *models.Occasion) (*models.Occasion, error)
	DeleteOccasion(ctx context.Context, userID, id string) error

	ListMessages(ctx context.Context, userID string, limit int) ([]models.Message, error)
	CreateMessage(ctx context.Context, userID string, m *models.Message) (*models.Message, error)
}

type GRPCServer struct {
	pb.UnimplementedStoreServer
	address   string
	users     userSvc
	data      dataSvc
	logger    logging.Logger
	publicKey string
}

var _ pb.StoreServer = (*GRPCServer)(nil)

func NewGRPCServer(address string, l logging.Logger, us userSvc, ds dataSvc, publicKey string) *GRPCServer {
	return &GRPCServer{
		address:   address,
		logger:    l.With("module", "grpc_server"),
		users:     us,
		data:      ds,
		publicKey: publicKey,
	}
}

// NewServer builds a grpc.Server with the interceptor chain and the store
// service registered. Run uses it; tests serve it on a bufconn listener.
func (s *GRPCServer) NewServer(opts ...grpc.ServerOption) *grpc.Server {
	opts = append(opts, grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.apiKeyInterceptor, s.accessTokenInterceptor))
	srv := grpc.NewServer(opts...)
	pb.RegisterStoreServer(srv, s)
	return srv
}

// Run serves until ctx is cancelled, then stops gracefully.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := s.NewServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil {
		return err
	}
	return nil
}
