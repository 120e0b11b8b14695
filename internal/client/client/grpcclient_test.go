package client

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/touchbase/internal/client/models"
	"github.com/dmitrijs2005/touchbase/internal/common"
	"github.com/dmitrijs2005/touchbase/internal/logging"
	pb "github.com/dmitrijs2005/touchbase/internal/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// fakeStore is an in-memory store. Methods a test does not need answer
// Unimplemented.
type fakeStore struct {
	pb.UnimplementedStoreServer

	mu        sync.Mutex
	access    string
	refresh   string
	rotations int
	apiKeys   []string
	revoked   []string
	contacts  []*pb.Contact
	occasions []*pb.Occasion
	messages  []*pb.Message
	lastLimit int32
}

func (f *fakeStore) md(ctx context.Context, key string) string {
	md, _ := metadata.FromIncomingContext(ctx)
	if v := md.Get(key); len(v) > 0 {
		return v[0]
	}
	return ""
}

func (f *fakeStore) authorize(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.apiKeys = append(f.apiKeys, f.md(ctx, common.APIKeyHeaderName))
	tok := f.md(ctx, common.AccessTokenHeaderName)
	switch {
	case tok == "":
		return status.Error(codes.Unauthenticated, "unauthorized")
	case tok != f.access:
		return status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
	}
	return nil
}

func (f *fakeStore) session() *pb.SessionResponse {
	return &pb.SessionResponse{
		AccessToken:  f.access,
		RefreshToken: f.refresh,
		ExpiresAt:    timestamppb.New(time.Now().Add(time.Hour)),
		User:         &pb.User{Id: "u-1", Email: "a@b.co"},
	}
}

func (f *fakeStore) Ping(ctx context.Context, _ *pb.PingRequest) (*pb.PingResponse, error) {
	f.mu.Lock()
	f.apiKeys = append(f.apiKeys, f.md(ctx, common.APIKeyHeaderName))
	f.mu.Unlock()
	return &pb.PingResponse{Status: "OK"}, nil
}

func (f *fakeStore) SignUp(_ context.Context, req *pb.SignUpRequest) (*pb.SignUpResponse, error) {
	if req.GetEmail() == "taken@b.co" {
		return nil, status.Error(codes.AlreadyExists, common.MsgAlreadyRegistered)
	}
	return &pb.SignUpResponse{UserId: "u-2", ConfirmationRequired: true}, nil
}

func (f *fakeStore) SignIn(_ context.Context, req *pb.SignInRequest) (*pb.SessionResponse, error) {
	if req.GetPassword() != "pw" {
		return nil, status.Error(codes.Unauthenticated, common.MsgInvalidCredentials)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.access, f.refresh = "access-0", "refresh-0"
	return f.session(), nil
}

func (f *fakeStore) Refresh(_ context.Context, req *pb.RefreshRequest) (*pb.SessionResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if req.GetRefreshToken() == "" || req.GetRefreshToken() != f.refresh {
		return nil, status.Error(codes.Unauthenticated, common.ErrRefreshTokenExpired.Error())
	}
	f.rotations++
	f.access = fmt.Sprintf("access-%d", f.rotations)
	f.refresh = fmt.Sprintf("refresh-%d", f.rotations)
	return f.session(), nil
}

func (f *fakeStore) SignOut(ctx context.Context, req *pb.SignOutRequest) (*emptypb.Empty, error) {
	if err := f.authorize(ctx); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.revoked = append(f.revoked, req.GetRefreshToken())
	return &emptypb.Empty{}, nil
}

func (f *fakeStore) ListContacts(ctx context.Context, _ *pb.ListRequest) (*pb.ListContactsResponse, error) {
	if err := f.authorize(ctx); err != nil {
		return nil, err
	}
	return &pb.ListContactsResponse{Contacts: f.contacts}, nil
}

func (f *fakeStore) CreateContact(ctx context.Context, c *pb.Contact) (*pb.Contact, error) {
	if err := f.authorize(ctx); err != nil {
		return nil, err
	}
	if c.GetName() == "" {
		return nil, status.Error(codes.InvalidArgument, "validation error: Name is required")
	}
	out := proto.Clone(c).(*pb.Contact)
	out.Id = "c-new"
	out.UserId = "u-1"
	return out, nil
}

func (f *fakeStore) DeleteContact(ctx context.Context, req *pb.DeleteRequest) (*emptypb.Empty, error) {
	if err := f.authorize(ctx); err != nil {
		return nil, err
	}
	if req.GetId() != "c-1" {
		return nil, status.Error(codes.NotFound, "not found")
	}
	return &emptypb.Empty{}, nil
}

func (f *fakeStore) ListOccasions(ctx context.Context, _ *pb.ListRequest) (*pb.ListOccasionsResponse, error) {
	if err := f.authorize(ctx); err != nil {
		return nil, err
	}
	return &pb.ListOccasionsResponse{Occasions: f.occasions}, nil
}

func (f *fakeStore) CreateOccasion(ctx context.Context, o *pb.Occasion) (*pb.Occasion, error) {
	if err := f.authorize(ctx); err != nil {
		return nil, err
	}
	out := proto.Clone(o).(*pb.Occasion)
	out.Id = "o-new"
	return out, nil
}

func (f *fakeStore) ListMessages(ctx context.Context, req *pb.ListRequest) (*pb.ListMessagesResponse, error) {
	if err := f.authorize(ctx); err != nil {
		return nil, err
	}
	f.mu.Lock()
	f.lastLimit = req.GetLimit()
	f.mu.Unlock()
	return &pb.ListMessagesResponse{Messages: f.messages}, nil
}

func (f *fakeStore) CreateMessage(ctx context.Context, m *pb.Message) (*pb.Message, error) {
	if err := f.authorize(ctx); err != nil {
		return nil, err
	}
	out := proto.Clone(m).(*pb.Message)
	out.Id = "m-new"
	return out, nil
}

type eventLog struct {
	mu     sync.Mutex
	events []models.SessionEvent
}

func (l *eventLog) add(ev models.SessionEvent) {
	l.mu.Lock()
	l.events = append(l.events, ev)
	l.mu.Unlock()
}

func (l *eventLog) kinds() []models.SessionEventKind {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]models.SessionEventKind, 0, len(l.events))
	for _, ev := range l.events {
		out = append(out, ev.Kind)
	}
	return out
}

func newTestClient(t *testing.T, store *fakeStore) (*GRPCClient, *eventLog) {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	pb.RegisterStoreServer(srv, store)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	c, err := NewGRPCClient("passthrough:///bufnet", "pub", logging.Nop{},
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	log := &eventLog{}
	c.Subscribe(log.add)
	return c, log
}

func TestGRPCClient_PingSendsAPIKey(t *testing.T) {
	store := &fakeStore{}
	c, _ := newTestClient(t, store)

	require.NoError(t, c.Ping(context.Background()))
	assert.Equal(t, []string{"pub"}, store.apiKeys)
}

func TestGRPCClient_SignInPublishesAndAuthorizes(t *testing.T) {
	store := &fakeStore{contacts: []*pb.Contact{{Id: "c-1", Name: "Alex", PhoneNumber: "+1", RelationshipTier: "close_friends"}}}
	c, log := newTestClient(t, store)
	ctx := context.Background()

	sess, err := c.SignIn(ctx, "a@b.co", "pw")
	require.NoError(t, err)
	assert.Equal(t, models.Identity{UserID: "u-1", Email: "a@b.co"}, sess.Identity)
	assert.Equal(t, []models.SessionEventKind{models.SignedIn}, log.kinds())

	contacts, err := c.ListContacts(ctx)
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, models.TierCloseFriends, contacts[0].RelationshipTier)
}

func TestGRPCClient_AuthErrorsAreVerbatim(t *testing.T) {
	c, log := newTestClient(t, &fakeStore{})
	ctx := context.Background()

	_, err := c.SignIn(ctx, "a@b.co", "wrong")
	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "invalid login credentials", err.Error())

	_, err = c.SignUp(ctx, "taken@b.co", "pw")
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "user already registered", err.Error())

	assert.Empty(t, log.kinds())
}

func TestGRPCClient_SignUp(t *testing.T) {
	c, _ := newTestClient(t, &fakeStore{})

	pending, err := c.SignUp(context.Background(), "new@b.co", "pw")
	require.NoError(t, err)
	assert.True(t, pending)
}

func TestGRPCClient_RefreshesExpiredTokenOnce(t *testing.T) {
	store := &fakeStore{}
	c, log := newTestClient(t, store)
	ctx := context.Background()

	_, err := c.SignIn(ctx, "a@b.co", "pw")
	require.NoError(t, err)

	// The store rotates behind the client's back, so the next call sees
	// "token expired" and must refresh.
	store.mu.Lock()
	store.access = "rotated-elsewhere"
	store.mu.Unlock()

	_, err = c.ListContacts(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, store.rotations)
	assert.Equal(t, []models.SessionEventKind{models.SignedIn, models.TokenRefreshed}, log.kinds())
	access, refresh := c.tokens()
	assert.Equal(t, "access-1", access)
	assert.Equal(t, "refresh-1", refresh)
}

func TestGRPCClient_ConcurrentExpiryRefreshesOnce(t *testing.T) {
	store := &fakeStore{}
	c, _ := newTestClient(t, store)
	ctx := context.Background()

	_, err := c.SignIn(ctx, "a@b.co", "pw")
	require.NoError(t, err)
	store.mu.Lock()
	store.access = "rotated-elsewhere"
	store.mu.Unlock()

	var wg sync.WaitGroup
	errs := make([]error, 3)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = c.ListContacts(ctx)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	assert.Equal(t, 1, store.rotations)
}

func TestGRPCClient_RejectedRefreshExpiresSession(t *testing.T) {
	store := &fakeStore{}
	c, log := newTestClient(t, store)
	ctx := context.Background()

	_, err := c.SignIn(ctx, "a@b.co", "pw")
	require.NoError(t, err)
	store.mu.Lock()
	store.access, store.refresh = "elsewhere", "elsewhere"
	store.mu.Unlock()

	_, err = c.ListContacts(ctx)
	require.ErrorIs(t, err, ErrSessionExpired)
	assert.Equal(t, []models.SessionEventKind{models.SignedIn, models.SessionExpired}, log.kinds())

	access, refresh := c.tokens()
	assert.Empty(t, access)
	assert.Empty(t, refresh)
}

func TestGRPCClient_RefreshSession(t *testing.T) {
	store := &fakeStore{refresh: "stored"}
	c, log := newTestClient(t, store)

	sess, err := c.RefreshSession(context.Background(), "stored")
	require.NoError(t, err)
	assert.Equal(t, "refresh-1", sess.RefreshToken)
	assert.Equal(t, []models.SessionEventKind{models.TokenRefreshed}, log.kinds())

	_, err = c.RefreshSession(context.Background(), "stale")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestGRPCClient_SignOut(t *testing.T) {
	store := &fakeStore{}
	c, log := newTestClient(t, store)
	ctx := context.Background()

	require.ErrorIs(t, c.SignOut(ctx), ErrNotSignedIn)

	_, err := c.SignIn(ctx, "a@b.co", "pw")
	require.NoError(t, err)
	require.NoError(t, c.SignOut(ctx))

	assert.Equal(t, []string{"refresh-0"}, store.revoked)
	assert.Equal(t, []models.SessionEventKind{models.SignedIn, models.SignedOut}, log.kinds())

	_, err = c.ListContacts(ctx)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestGRPCClient_SignOutAfterExpiryRevokesRotatedToken(t *testing.T) {
	store := &fakeStore{}
	c, _ := newTestClient(t, store)
	ctx := context.Background()

	_, err := c.SignIn(ctx, "a@b.co", "pw")
	require.NoError(t, err)
	store.mu.Lock()
	store.access = "elsewhere"
	store.mu.Unlock()

	require.NoError(t, c.SignOut(ctx))
	assert.Equal(t, []string{"refresh-1"}, store.revoked)
}

func TestGRPCClient_DataCalls(t *testing.T) {
	sent := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	store := &fakeStore{
		occasions: []*pb.Occasion{{Id: "o-1", ContactId: "c-1", OccasionType: "birthday", OccasionName: "Birthday", Date: "2024-06-01"}},
		messages:  []*pb.Message{{Id: "m-1", ContactId: "c-1", MessageText: "hi", Style: "warm", Status: "sent", SentAt: timestamppb.New(sent)}},
	}
	c, _ := newTestClient(t, store)
	ctx := context.Background()
	_, err := c.SignIn(ctx, "a@b.co", "pw")
	require.NoError(t, err)

	occ, err := c.ListOccasions(ctx)
	require.NoError(t, err)
	require.Len(t, occ, 1)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), occ[0].Date)
	assert.Equal(t, models.OccasionBirthday, occ[0].OccasionType)

	created, err := c.CreateOccasion(ctx, models.Occasion{ContactID: "c-1", OccasionType: models.OccasionHoliday, OccasionName: "New Year", Date: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	assert.Equal(t, "o-new", created.ID)
	assert.Equal(t, "2025-01-01", created.Date.Format(models.DateLayout))

	msgs, err := c.ListMessages(ctx, 10)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, models.StatusSent, msgs[0].Status)
	assert.True(t, msgs[0].SentAt.Equal(sent))
	assert.EqualValues(t, 10, store.lastLimit)

	m, err := c.CreateMessage(ctx, models.Message{ContactID: "c-1", MessageText: "yo", Style: models.StyleCasual, Status: models.StatusSent, SentAt: &sent})
	require.NoError(t, err)
	assert.Equal(t, "m-new", m.ID)

	ct, err := c.CreateContact(ctx, models.Contact{Name: "Sam", PhoneNumber: "+2", RelationshipTier: models.TierFriends})
	require.NoError(t, err)
	assert.Equal(t, "c-new", ct.ID)

	_, err = c.CreateContact(ctx, models.Contact{PhoneNumber: "+2"})
	require.ErrorIs(t, err, common.ErrorValidation)
	assert.Equal(t, "validation error: Name is required", err.Error())

	require.NoError(t, c.DeleteContact(ctx, "c-1"))
	assert.ErrorIs(t, c.DeleteContact(ctx, "c-9"), common.ErrorNotFound)
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		is   error
		text string
	}{
		{name: "nil", in: nil},
		{name: "plain", in: errors.New("x"), text: "x"},
		{name: "unavailable", in: status.Error(codes.Unavailable, "down"), is: ErrUnavailable},
		{name: "deadline", in: status.Error(codes.DeadlineExceeded, "slow"), is: ErrUnavailable},
		{name: "unauthenticated", in: status.Error(codes.Unauthenticated, "invalid token"), is: ErrUnauthorized},
		{name: "not found", in: status.Error(codes.NotFound, "not found"), is: common.ErrorNotFound},
		{name: "exists", in: status.Error(codes.AlreadyExists, "already exists"), is: common.ErrorAlreadyExists},
		{name: "email", in: status.Error(codes.Unauthenticated, common.MsgEmailNotConfirmed), text: "email not confirmed"},
		{name: "confirmation", in: status.Error(codes.InvalidArgument, common.MsgInvalidConfirmation), text: "invalid confirmation token"},
		{name: "internal", in: status.Error(codes.Internal, "internal error"), text: "rpc error: rpc error: code = Internal desc = internal error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapError(tt.in)
			if tt.in == nil {
				assert.NoError(t, got)
				return
			}
			if tt.is != nil {
				assert.ErrorIs(t, got, tt.is)
			}
			if tt.text != "" {
				assert.Equal(t, tt.text, got.Error())
			}
		})
	}
}
