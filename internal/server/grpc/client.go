package grpc

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/healthgate/internal/common"
	"github.com/dmitrijs2005/healthgate/internal/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/structpb"
)

// Client talks to a gateway server and keeps the caller's access token.
type Client struct {
	conn *grpc.ClientConn

	mu          sync.RWMutex
	username    string
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	md.Set(common.AccessTokenHeaderName, token)
	return metadata.NewOutgoingContext(ctx, md)
}

func (c *Client) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	c.mu.RLock()
	token := c.accessToken
	c.mu.RUnlock()

	if token != "" {
		ctx = withAccessToken(ctx, token)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

// NewClient connects to target without transport security. Extra dial
// options are appended, e.g. a bufconn dialer in tests.
func NewClient(target string, opts ...grpc.DialOption) (*Client, error) {
	c := &Client{}
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(target, opts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	return c, nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}

func (c *Client) call(ctx context.Context, method string, in *structpb.Struct) (*structpb.Struct, error) {
	if in == nil {
		in = &structpb.Struct{}
	}
	out := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, method, in, out); err != nil {
		return nil, fromStatus(err)
	}
	return out, nil
}

func (c *Client) authenticate(ctx context.Context, method, username string, password []byte) error {
	if _, ok := c.Identity(); ok {
		return common.ErrAlreadyAuthenticated
	}

	in, err := credentialsToStruct(username, password)
	if err != nil {
		return err
	}
	out, err := c.call(ctx, method, in)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.username = stringField(out, fieldUsername)
	c.accessToken = stringField(out, fieldAccessToken)
	c.mu.Unlock()
	return nil
}

// Register creates an account and keeps the returned token.
func (c *Client) Register(ctx context.Context, username string, password []byte) error {
	return c.authenticate(ctx, MethodRegister, username, password)
}

func (c *Client) Login(ctx context.Context, username string, password []byte) error {
	return c.authenticate(ctx, MethodLogin, username, password)
}

// Logout forgets the token. Tokens are stateless, so the server is not told.
func (c *Client) Logout(context.Context) {
	c.mu.Lock()
	c.username, c.accessToken = "", ""
	c.mu.Unlock()
}

// Identity reports the logged-in username.
func (c *Client) Identity() (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.username, c.accessToken != ""
}

func (c *Client) Predict(ctx context.Context, disease models.DiseaseType, fields []string) (*models.PredictionResult, error) {
	in, err := predictRequestToStruct(&models.PredictionRequest{Disease: disease, Fields: fields})
	if err != nil {
		return nil, err
	}
	out, err := c.call(ctx, MethodPredict, in)
	if err != nil {
		return nil, err
	}
	return predictionResultFromStruct(out), nil
}

func (c *Client) Diseases(ctx context.Context) ([]DiseaseStatus, error) {
	out, err := c.call(ctx, MethodListDiseases, nil)
	if err != nil {
		return nil, err
	}
	return diseasesFromStruct(out), nil
}

func (c *Client) Ping(ctx context.Context) error {
	_, err := c.call(ctx, MethodPing, nil)
	return err
}
