package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/morvin2701/pixelwalls/internal/client/models"
	"github.com/morvin2701/pixelwalls/internal/common"
	pb "github.com/morvin2701/pixelwalls/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const saltTimeout = 12 * time.Second

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.WallpaperServiceClient

	mu           sync.RWMutex
	accessToken  string
	refreshToken string
	userID       string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	if token != "" {
		md.Set(common.AccessTokenHeaderName, token)
	}

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) tokens() (access, refresh string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken, s.refreshToken
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	access, refresh := s.tokens()

	err := invoker(withAccessToken(ctx, access), method, req, reply, cc, opts...)
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok || st.Code() != codes.Unauthenticated || st.Message() != common.ErrTokenExpired.Error() {
		return err
	}
	if refresh == "" || method == pb.WallpaperService_RefreshToken_FullMethodName {
		return err
	}

	resp, rerr := s.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: refresh})
	if rerr != nil {
		// refresh token rejected: the session is over
		if status.Code(rerr) == codes.Unauthenticated {
			s.Logout()
		}
		return rerr
	}

	s.mu.Lock()
	s.accessToken = resp.AccessToken
	s.refreshToken = resp.RefreshToken
	s.mu.Unlock()

	return invoker(withAccessToken(ctx, resp.AccessToken), method, req, reply, cc, opts...)
}

// NewGRPCClient creates a client for endpointURL. The connection is
// established lazily on the first call.
func NewGRPCClient(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	if err := c.InitGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {
	conn, err := grpc.NewClient(s.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewWallpaperServiceClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}
	if resp.Status != "OK" {
		return ErrUnavailable
	}
	return nil
}

func (s *GRPCClient) Register(ctx context.Context, userName string, salt []byte, verifier []byte) error {
	req := &pb.RegisterUserRequest{Username: userName, Salt: salt, Verifier: verifier}
	if _, err := s.client.RegisterUser(ctx, req); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) GetSalt(ctx context.Context, userName string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, saltTimeout)
	defer cancel()

	resp, err := s.client.GetSalt(ctx, &pb.GetSaltRequest{Username: userName})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Salt, nil
}

// Login stores the token pair and returns the user id.
func (s *GRPCClient) Login(ctx context.Context, userName string, verifier []byte) (string, error) {
	resp, err := s.client.Login(ctx, &pb.LoginRequest{Username: userName, VerifierCandidate: verifier})
	if err != nil {
		return "", s.mapError(err)
	}

	s.mu.Lock()
	s.accessToken = resp.AccessToken
	s.refreshToken = resp.RefreshToken
	s.userID = resp.UserId
	s.mu.Unlock()

	return resp.UserId, nil
}

// Logout drops the tokens held in memory.
func (s *GRPCClient) Logout() {
	s.mu.Lock()
	s.accessToken, s.refreshToken, s.userID = "", "", ""
	s.mu.Unlock()
}

func (s *GRPCClient) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken != "" && s.userID != ""
}

// checkUser guards against reading or writing another user's collection
// with this session's token.
func (s *GRPCClient) checkUser(userID string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.accessToken == "" || s.userID == "" || s.userID != userID {
		return ErrUnauthorized
	}
	return nil
}

func (s *GRPCClient) ReadAll(ctx context.Context, userID string) ([]models.Wallpaper, error) {
	if err := s.checkUser(userID); err != nil {
		return nil, err
	}
	resp, err := s.client.ListWallpapers(ctx, &pb.ListWallpapersRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}

	out := make([]models.Wallpaper, 0, len(resp.Wallpapers))
	for _, w := range resp.Wallpapers {
		if w == nil {
			continue
		}
		out = append(out, fromPB(w))
	}
	return out, nil
}

func (s *GRPCClient) Insert(ctx context.Context, userID string, w models.Wallpaper) error {
	if err := s.checkUser(userID); err != nil {
		return err
	}
	if _, err := s.client.InsertWallpaper(ctx, &pb.InsertWallpaperRequest{Wallpaper: toPB(w)}); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) Update(ctx context.Context, userID string, w models.Wallpaper) error {
	if err := s.checkUser(userID); err != nil {
		return err
	}
	if _, err := s.client.UpdateWallpaper(ctx, &pb.UpdateWallpaperRequest{Wallpaper: toPB(w)}); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) Delete(ctx context.Context, userID string, id string) error {
	if err := s.checkUser(userID); err != nil {
		return err
	}
	if _, err := s.client.DeleteWallpaper(ctx, &pb.DeleteWallpaperRequest{Id: id}); err != nil {
		return s.mapError(err)
	}
	return nil
}

// GetUploadURL asks the server for a presigned PUT slot.
func (s *GRPCClient) GetUploadURL(ctx context.Context, contentType string) (UploadTarget, error) {
	resp, err := s.client.GetUploadURL(ctx, &pb.GetUploadURLRequest{ContentType: contentType})
	if err != nil {
		return UploadTarget{}, s.mapError(err)
	}
	return UploadTarget{Key: resp.Key, UploadURL: resp.UploadUrl, PublicURL: resp.PublicUrl}, nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded, codes.Canceled:
		return ErrUnavailable
	case codes.NotFound:
		return ErrNotFound
	case codes.AlreadyExists:
		return ErrAlreadyExists
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

func toPB(w models.Wallpaper) *pb.Wallpaper {
	tags := w.Tags
	if tags == nil {
		tags = []string{}
	}
	return &pb.Wallpaper{
		Id:          w.ID,
		Url:         w.URL,
		Prompt:      w.Prompt,
		Resolution:  string(w.Resolution),
		AspectRatio: string(w.AspectRatio),
		CreatedAt:   w.CreatedAt,
		Favorite:    w.Favorite,
		Category:    w.Category,
		Tags:        tags,
	}
}

func fromPB(w *pb.Wallpaper) models.Wallpaper {
	tags := w.Tags
	if tags == nil {
		tags = []string{}
	}
	return models.Wallpaper{
		ID:          w.Id,
		URL:         w.Url,
		Prompt:      w.Prompt,
		Resolution:  models.Resolution(w.Resolution),
		AspectRatio: models.AspectRatio(w.AspectRatio),
		CreatedAt:   w.CreatedAt,
		Favorite:    w.Favorite,
		Category:    w.Category,
		Tags:        tags,
	}
}
