package grpc

import (
	"context"
	"errors"

	"github.com/morvin2701/pixelwalls/internal/common"
	pb "github.com/morvin2701/pixelwalls/internal/proto"
	"github.com/morvin2701/pixelwalls/internal/server/models"
	"github.com/morvin2701/pixelwalls/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus maps service errors to gRPC codes. Unknown errors are logged and
// reported as Internal without detail.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidArgument):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, common.ErrorAlreadyExists):
		return status.Error(codes.AlreadyExists, "already exists")
	case errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.Unauthenticated, "unauthorized")
	case errors.Is(err, common.ErrRefreshTokenExpired):
		return status.Error(codes.Unauthenticated, common.ErrRefreshTokenExpired.Error())
	}
	s.logger.Error(ctx, "request failed", "error", err)
	return status.Error(codes.Internal, "internal error")
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) RegisterUser(ctx context.Context, req *pb.RegisterUserRequest) (*pb.RegisterUserResponse, error) {

	s.logger.Info(ctx, "Registration request")

	result, err := s.users.Register(ctx, req.Username, req.Salt, req.Verifier)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	s.logger.Info(ctx, "Registered", "username", result.UserName, "id", result.ID)
	return &pb.RegisterUserResponse{}, nil
}

func (s *GRPCServer) GetSalt(ctx context.Context, req *pb.GetSaltRequest) (*pb.GetSaltResponse, error) {
	result, err := s.users.GetSalt(ctx, req.Username)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.GetSaltResponse{Salt: result}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	tokens, err := s.users.Login(ctx, req.Username, req.VerifierCandidate)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.LoginResponse{UserId: tokens.UserID, AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.RefreshTokenResponse, error) {
	tokens, err := s.users.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, status.Error(codes.Unauthenticated, "unknown refresh token")
		}
		return nil, s.toStatus(ctx, err)
	}
	return &pb.RefreshTokenResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) ListWallpapers(ctx context.Context, req *pb.ListWallpapersRequest) (*pb.ListWallpapersResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	items, err := s.wallpapers.List(ctx, userID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	out := make([]*pb.Wallpaper, 0, len(items))
	for _, w := range items {
		out = append(out, toPB(w))
	}
	return &pb.ListWallpapersResponse{Wallpapers: out}, nil
}

func (s *GRPCServer) InsertWallpaper(ctx context.Context, req *pb.InsertWallpaperRequest) (*pb.InsertWallpaperResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.wallpapers.Insert(ctx, userID, fromPB(req.Wallpaper)); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.InsertWallpaperResponse{}, nil
}

func (s *GRPCServer) UpdateWallpaper(ctx context.Context, req *pb.UpdateWallpaperRequest) (*pb.UpdateWallpaperResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.wallpapers.Update(ctx, userID, fromPB(req.Wallpaper)); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.UpdateWallpaperResponse{}, nil
}

func (s *GRPCServer) DeleteWallpaper(ctx context.Context, req *pb.DeleteWallpaperRequest) (*pb.DeleteWallpaperResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.wallpapers.Delete(ctx, userID, req.Id); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.DeleteWallpaperResponse{}, nil
}

func (s *GRPCServer) GetUploadURL(ctx context.Context, req *pb.GetUploadURLRequest) (*pb.GetUploadURLResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	target, err := s.images.GetUploadURL(ctx, userID, req.ContentType)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.GetUploadURLResponse{Key: target.Key, UploadUrl: target.UploadURL, PublicUrl: target.PublicURL}, nil
}

func toPB(w *models.Wallpaper) *pb.Wallpaper {
	tags := w.Tags
	if tags == nil {
		tags = []string{}
	}
	return &pb.Wallpaper{
		Id:          w.ID,
		Url:         w.URL,
		Prompt:      w.Prompt,
		Resolution:  w.Resolution,
		AspectRatio: w.AspectRatio,
		CreatedAt:   w.CreatedAt,
		Favorite:    w.Favorite,
		Category:    w.Category,
		Tags:        tags,
	}
}

// fromPB returns nil for a nil message; the service rejects it.
func fromPB(w *pb.Wallpaper) *models.Wallpaper {
	if w == nil {
		return nil
	}
	return &models.Wallpaper{
		ID:          w.Id,
		URL:         w.Url,
		Prompt:      w.Prompt,
		Resolution:  w.Resolution,
		AspectRatio: w.AspectRatio,
		CreatedAt:   w.CreatedAt,
		Favorite:    w.Favorite,
		Category:    w.Category,
		Tags:        w.Tags,
	}
}
