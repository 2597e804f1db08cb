// Package grpc exposes the server services over the WallpaperService gRPC
// API.
package grpc

import (
	"context"
	"net"

	"github.com/morvin2701/pixelwalls/internal/logging"
	pb "github.com/morvin2701/pixelwalls/internal/proto"
	"github.com/morvin2701/pixelwalls/internal/server/models"
	"github.com/morvin2701/pixelwalls/internal/server/services"
	"google.golang.org/grpc"
)

type userSvc interface {
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	Register(ctx context.Context, username string, salt, verifier []byte) (*models.User, error)
	GetSalt(ctx context.Context, userName string) ([]byte, error)
	Login(ctx context.Context, userName string, verifierCandidate []byte) (*services.TokenPair, error)
}

type wallpaperSvc interface {
	List(ctx context.Context, userID string) ([]*models.Wallpaper, error)
	Insert(ctx context.Context, userID string, w *models.Wallpaper) error
	Update(ctx context.Context, userID string, w *models.Wallpaper) error
	Delete(ctx context.Context, userID, id string) error
}

type imageSvc interface {
	GetUploadURL(ctx context.Context, userID, contentType string) (*services.UploadTarget, error)
}

type GRPCServer struct {
	pb.UnimplementedWallpaperServiceServer
	address    string
	users      userSvc
	wallpapers wallpaperSvc
	images     imageSvc
	logger     logging.Logger
	jwtSecret  []byte
}

func NewGRPCServer(a string, l logging.Logger, us userSvc, ws wallpaperSvc, is imageSvc, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:    a,
		logger:     l.With("module", "grpc_server"),
		users:      us,
		wallpapers: ws,
		images:     is,
		jwtSecret:  []byte(secretKey),
	}
}

// newServer builds the grpc.Server with the auth interceptor and the
// service registered.
func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))
	pb.RegisterWallpaperServiceServer(srv, s)
	return srv
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on l until ctx is done, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, l net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", l.Addr().String())

	if err := srv.Serve(l); err != nil {
		return err
	}

	return nil
}
