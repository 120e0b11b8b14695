package client

import (
	"context"
	"math"
	"sync"

	"github.com/dmitrijs2005/touchbase/internal/client/models"
	"github.com/dmitrijs2005/touchbase/internal/common"
	"github.com/dmitrijs2005/touchbase/internal/logging"
	pb "github.com/dmitrijs2005/touchbase/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	publicKey   string
	logger      logging.Logger

	conn  *grpc.ClientConn
	store pb.StoreClient

	mu           sync.Mutex
	accessToken  string
	refreshToken string

	// refreshMu serialises refreshes so concurrent calls that all see an
	// expired token rotate it only once.
	refreshMu sync.Mutex

	subMu       sync.Mutex
	subscribers map[uint64]func(models.SessionEvent)
	nextSubID   uint64
}

var _ Client = (*GRPCClient)(nil)

func withMetadata(ctx context.Context, key, value string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(key, value)
	return metadata.NewOutgoingContext(ctx, md)
}

// NewGRPCClient connects lazily to endpointURL. Extra dial options are
// appended after the defaults, which is how tests plug in bufconn.
func NewGRPCClient(endpointURL, publicKey string, logger logging.Logger, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{
		endpointURL: endpointURL,
		publicKey:   publicKey,
		logger:      logger,
		subscribers: make(map[uint64]func(models.SessionEvent)),
	}

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.authInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(endpointURL, dialOpts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.store = pb.NewStoreClient(conn)
	return c, nil
}

func (c *GRPCClient) tokens() (string, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.accessToken, c.refreshToken
}

func (c *GRPCClient) setTokens(access, refresh string) {
	c.mu.Lock()
	c.accessToken, c.refreshToken = access, refresh
	c.mu.Unlock()
}

// authInterceptor attaches the api key and the access token. When the store
// reports an expired access token it refreshes once and retries.
func (c *GRPCClient) authInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	ctx = withMetadata(ctx, common.APIKeyHeaderName, c.publicKey)

	access, _ := c.tokens()
	callCtx := ctx
	if access != "" {
		callCtx = withMetadata(ctx, common.AccessTokenHeaderName, access)
	}

	err := invoker(callCtx, method, req, reply, cc, opts...)
	if err == nil || method == pb.Store_Refresh_FullMethodName || !isTokenExpired(err) {
		return err
	}

	fresh, rerr := c.refresh(ctx, access)
	if rerr != nil {
		return rerr
	}

	// The old refresh token is gone after rotation; revoke the new one.
	if so, ok := req.(*pb.SignOutRequest); ok {
		_, so.RefreshToken = c.tokens()
	}

	return invoker(withMetadata(ctx, common.AccessTokenHeaderName, fresh), method, req, reply, cc, opts...)
}

// refresh exchanges the refresh token unless another call already did so
// after used was issued. A rejected refresh ends the session.
func (c *GRPCClient) refresh(ctx context.Context, used string) (string, error) {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	access, refresh := c.tokens()
	if access != "" && access != used {
		return access, nil
	}
	if refresh == "" {
		return "", ErrSessionExpired
	}

	resp, err := c.store.Refresh(ctx, &pb.RefreshRequest{RefreshToken: refresh})
	if err != nil {
		if status.Code(err) == codes.Unauthenticated {
			c.logger.Warn(ctx, "session refresh rejected", "error", err)
			c.setTokens("", "")
			c.publish(models.SessionEvent{Kind: models.SessionExpired})
			return "", ErrSessionExpired
		}
		return "", err
	}

	sess := sessionFromPB(resp)
	c.setTokens(sess.AccessToken, sess.RefreshToken)
	c.publish(models.SessionEvent{Kind: models.TokenRefreshed, Session: sess})
	return sess.AccessToken, nil
}

func (c *GRPCClient) Subscribe(fn func(models.SessionEvent)) func() {
	c.subMu.Lock()
	id := c.nextSubID
	c.nextSubID++
	c.subscribers[id] = fn
	c.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.subMu.Lock()
			delete(c.subscribers, id)
			c.subMu.Unlock()
		})
	}
}

func (c *GRPCClient) publish(ev models.SessionEvent) {
	c.subMu.Lock()
	fns := make([]func(models.SessionEvent), 0, len(c.subscribers))
	for _, fn := range c.subscribers {
		fns = append(fns, fn)
	}
	c.subMu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}

func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

func (c *GRPCClient) Ping(ctx context.Context) error {
	resp, err := c.store.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return mapError(err)
	}
	if resp.GetStatus() != "OK" {
		return ErrUnavailable
	}
	return nil
}

func (c *GRPCClient) SignUp(ctx context.Context, email, password string) (bool, error) {
	resp, err := c.store.SignUp(ctx, &pb.SignUpRequest{Email: email, Password: password})
	if err != nil {
		return false, mapError(err)
	}
	return resp.GetConfirmationRequired(), nil
}

func (c *GRPCClient) Confirm(ctx context.Context, token string) error {
	_, err := c.store.Confirm(ctx, &pb.ConfirmRequest{Token: token})
	return mapError(err)
}

func (c *GRPCClient) SignIn(ctx context.Context, email, password string) (*models.Session, error) {
	resp, err := c.store.SignIn(ctx, &pb.SignInRequest{Email: email, Password: password})
	if err != nil {
		return nil, mapError(err)
	}

	sess := sessionFromPB(resp)
	c.setTokens(sess.AccessToken, sess.RefreshToken)
	c.publish(models.SessionEvent{Kind: models.SignedIn, Session: sess})
	return sess, nil
}

// RefreshSession resumes a session from a refresh token kept by an earlier
// run. Subscribers see it as TokenRefreshed.
func (c *GRPCClient) RefreshSession(ctx context.Context, refreshToken string) (*models.Session, error) {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	resp, err := c.store.Refresh(ctx, &pb.RefreshRequest{RefreshToken: refreshToken})
	if err != nil {
		return nil, mapError(err)
	}

	sess := sessionFromPB(resp)
	c.setTokens(sess.AccessToken, sess.RefreshToken)
	c.publish(models.SessionEvent{Kind: models.TokenRefreshed, Session: sess})
	return sess, nil
}

// SignOut revokes the refresh token on the store. Local tokens are dropped
// and SignedOut is published even when the remote call fails.
func (c *GRPCClient) SignOut(ctx context.Context) error {
	access, refresh := c.tokens()
	if access == "" && refresh == "" {
		return ErrNotSignedIn
	}

	_, err := c.store.SignOut(ctx, &pb.SignOutRequest{RefreshToken: refresh})

	c.setTokens("", "")
	c.publish(models.SessionEvent{Kind: models.SignedOut})
	return mapError(err)
}

func (c *GRPCClient) ListContacts(ctx context.Context) ([]models.Contact, error) {
	resp, err := c.store.ListContacts(ctx, &pb.ListRequest{})
	if err != nil {
		return nil, mapError(err)
	}
	out := make([]models.Contact, 0, len(resp.GetContacts()))
	for _, item := range resp.GetContacts() {
		out = append(out, contactFromPB(item))
	}
	return out, nil
}

func (c *GRPCClient) CreateContact(ctx context.Context, contact models.Contact) (*models.Contact, error) {
	resp, err := c.store.CreateContact(ctx, contactToPB(contact))
	if err != nil {
		return nil, mapError(err)
	}
	created := contactFromPB(resp)
	return &created, nil
}

func (c *GRPCClient) UpdateContact(ctx context.Context, contact models.Contact) (*models.Contact, error) {
	resp, err := c.store.UpdateContact(ctx, contactToPB(contact))
	if err != nil {
		return nil, mapError(err)
	}
	updated := contactFromPB(resp)
	return &updated, nil
}

func (c *GRPCClient) DeleteContact(ctx context.Context, id string) error {
	_, err := c.store.DeleteContact(ctx, &pb.DeleteRequest{Id: id})
	return mapError(err)
}

func (c *GRPCClient) ListOccasions(ctx context.Context) ([]models.Occasion, error) {
	resp, err := c.store.ListOccasions(ctx, &pb.ListRequest{})
	if err != nil {
		return nil, mapError(err)
	}
	out := make([]models.Occasion, 0, len(resp.GetOccasions()))
	for _, item := range resp.GetOccasions() {
		o, err := occasionFromPB(item)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

func (c *GRPCClient) CreateOccasion(ctx context.Context, o models.Occasion) (*models.Occasion, error) {
	resp, err := c.store.CreateOccasion(ctx, occasionToPB(o))
	if err != nil {
		return nil, mapError(err)
	}
	created, err := occasionFromPB(resp)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *GRPCClient) UpdateOccasion(ctx context.Context, o models.Occasion) (*models.Occasion, error) {
	resp, err := c.store.UpdateOccasion(ctx, occasionToPB(o))
	if err != nil {
		return nil, mapError(err)
	}
	updated, err := occasionFromPB(resp)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *GRPCClient) DeleteOccasion(ctx context.Context, id string) error {
	_, err := c.store.DeleteOccasion(ctx, &pb.DeleteRequest{Id: id})
	return mapError(err)
}

func (c *GRPCClient) ListMessages(ctx context.Context, limit int) ([]models.Message, error) {
	resp, err := c.store.ListMessages(ctx, &pb.ListRequest{Limit: int32(min(limit, math.MaxInt32))})
	if err != nil {
		return nil, mapError(err)
	}
	out := make([]models.Message, 0, len(resp.GetMessages()))
	for _, item := range resp.GetMessages() {
		out = append(out, messageFromPB(item))
	}
	return out, nil
}

func (c *GRPCClient) CreateMessage(ctx context.Context, m models.Message) (*models.Message, error) {
	resp, err := c.store.CreateMessage(ctx, messageToPB(m))
	if err != nil {
		return nil, mapError(err)
	}
	created := messageFromPB(resp)
	return &created, nil
}
