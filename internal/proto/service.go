// Package proto defines the PixelWalls gRPC service: its message types, a
// typed client, and the service descriptor used to register a server.
//
// Messages are encoded as google.protobuf.Struct so the standard proto codec
// carries them without generated code.
package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

const ServiceName = "pixelwalls.WallpaperService"

const (
	WallpaperService_Ping_FullMethodName            = "/" + ServiceName + "/Ping"
	WallpaperService_RegisterUser_FullMethodName    = "/" + ServiceName + "/RegisterUser"
	WallpaperService_GetSalt_FullMethodName         = "/" + ServiceName + "/GetSalt"
	WallpaperService_Login_FullMethodName           = "/" + ServiceName + "/Login"
	WallpaperService_RefreshToken_FullMethodName    = "/" + ServiceName + "/RefreshToken"
	WallpaperService_ListWallpapers_FullMethodName  = "/" + ServiceName + "/ListWallpapers"
	WallpaperService_InsertWallpaper_FullMethodName = "/" + ServiceName + "/InsertWallpaper"
	WallpaperService_UpdateWallpaper_FullMethodName = "/" + ServiceName + "/UpdateWallpaper"
	WallpaperService_DeleteWallpaper_FullMethodName = "/" + ServiceName + "/DeleteWallpaper"
	WallpaperService_GetUploadURL_FullMethodName    = "/" + ServiceName + "/GetUploadURL"
)

type WallpaperServiceClient interface {
	Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error)
	RegisterUser(ctx context.Context, in *RegisterUserRequest, opts ...grpc.CallOption) (*RegisterUserResponse, error)
	GetSalt(ctx context.Context, in *GetSaltRequest, opts ...grpc.CallOption) (*GetSaltResponse, error)
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error)
	RefreshToken(ctx context.Context, in *RefreshTokenRequest, opts ...grpc.CallOption) (*RefreshTokenResponse, error)
	ListWallpapers(ctx context.Context, in *ListWallpapersRequest, opts ...grpc.CallOption) (*ListWallpapersResponse, error)
	InsertWallpaper(ctx context.Context, in *InsertWallpaperRequest, opts ...grpc.CallOption) (*InsertWallpaperResponse, error)
	UpdateWallpaper(ctx context.Context, in *UpdateWallpaperRequest, opts ...grpc.CallOption) (*UpdateWallpaperResponse, error)
	DeleteWallpaper(ctx context.Context, in *DeleteWallpaperRequest, opts ...grpc.CallOption) (*DeleteWallpaperResponse, error)
	GetUploadURL(ctx context.Context, in *GetUploadURLRequest, opts ...grpc.CallOption) (*GetUploadURLResponse, error)
}

type wallpaperServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewWallpaperServiceClient(cc grpc.ClientConnInterface) WallpaperServiceClient {
	return &wallpaperServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts ...grpc.CallOption) (*Resp, error) {
	req, err := ToStruct(in)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	out := new(structpb.Struct)
	if err := cc.Invoke(ctx, method, req, out, opts...); err != nil {
		return nil, err
	}
	resp := new(Resp)
	if err := FromStruct(out, resp); err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return resp, nil
}

func (c *wallpaperServiceClient) Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error) {
	return invoke[PingResponse](ctx, c.cc, WallpaperService_Ping_FullMethodName, in, opts...)
}

func (c *wallpaperServiceClient) RegisterUser(ctx context.Context, in *RegisterUserRequest, opts ...grpc.CallOption) (*RegisterUserResponse, error) {
	return invoke[RegisterUserResponse](ctx, c.cc, WallpaperService_RegisterUser_FullMethodName, in, opts...)
}

func (c *wallpaperServiceClient) GetSalt(ctx context.Context, in *GetSaltRequest, opts ...grpc.CallOption) (*GetSaltResponse, error) {
	return invoke[GetSaltResponse](ctx, c.cc, WallpaperService_GetSalt_FullMethodName, in, opts...)
}

func (c *wallpaperServiceClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	return invoke[LoginResponse](ctx, c.cc, WallpaperService_Login_FullMethodName, in, opts...)
}

func (c *wallpaperServiceClient) RefreshToken(ctx context.Context, in *RefreshTokenRequest, opts ...grpc.CallOption) (*RefreshTokenResponse, error) {
	return invoke[RefreshTokenResponse](ctx, c.cc, WallpaperService_RefreshToken_FullMethodName, in, opts...)
}

func (c *wallpaperServiceClient) ListWallpapers(ctx context.Context, in *ListWallpapersRequest, opts ...grpc.CallOption) (*ListWallpapersResponse, error) {
	return invoke[ListWallpapersResponse](ctx, c.cc, WallpaperService_ListWallpapers_FullMethodName, in, opts...)
}

func (c *wallpaperServiceClient) InsertWallpaper(ctx context.Context, in *InsertWallpaperRequest, opts ...grpc.CallOption) (*InsertWallpaperResponse, error) {
	return invoke[InsertWallpaperResponse](ctx, c.cc, WallpaperService_InsertWallpaper_FullMethodName, in, opts...)
}

func (c *wallpaperServiceClient) UpdateWallpaper(ctx context.Context, in *UpdateWallpaperRequest, opts ...grpc.CallOption) (*UpdateWallpaperResponse, error) {
	return invoke[UpdateWallpaperResponse](ctx, c.cc, WallpaperService_UpdateWallpaper_FullMethodName, in, opts...)
}

func (c *wallpaperServiceClient) DeleteWallpaper(ctx context.Context, in *DeleteWallpaperRequest, opts ...grpc.CallOption) (*DeleteWallpaperResponse, error) {
	return invoke[DeleteWallpaperResponse](ctx, c.cc, WallpaperService_DeleteWallpaper_FullMethodName, in, opts...)
}

func (c *wallpaperServiceClient) GetUploadURL(ctx context.Context, in *GetUploadURLRequest, opts ...grpc.CallOption) (*GetUploadURLResponse, error) {
	return invoke[GetUploadURLResponse](ctx, c.cc, WallpaperService_GetUploadURL_FullMethodName, in, opts...)
}

type WallpaperServiceServer interface {
	Ping(context.Context, *PingRequest) (*PingResponse, error)
	RegisterUser(context.Context, *RegisterUserRequest) (*RegisterUserResponse, error)
	GetSalt(context.Context, *GetSaltRequest) (*GetSaltResponse, error)
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
	RefreshToken(context.Context, *RefreshTokenRequest) (*RefreshTokenResponse, error)
	ListWallpapers(context.Context, *ListWallpapersRequest) (*ListWallpapersResponse, error)
	InsertWallpaper(context.Context, *InsertWallpaperRequest) (*InsertWallpaperResponse, error)
	UpdateWallpaper(context.Context, *UpdateWallpaperRequest) (*UpdateWallpaperResponse, error)
	DeleteWallpaper(context.Context, *DeleteWallpaperRequest) (*DeleteWallpaperResponse, error)
	GetUploadURL(context.Context, *GetUploadURLRequest) (*GetUploadURLResponse, error)
}

// UnimplementedWallpaperServiceServer can be embedded to satisfy
// WallpaperServiceServer; every method returns codes.Unimplemented.
type UnimplementedWallpaperServiceServer struct{}

func (UnimplementedWallpaperServiceServer) Ping(context.Context, *PingRequest) (*PingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Ping not implemented")
}
func (UnimplementedWallpaperServiceServer) RegisterUser(context.Context, *RegisterUserRequest) (*RegisterUserResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RegisterUser not implemented")
}
func (UnimplementedWallpaperServiceServer) GetSalt(context.Context, *GetSaltRequest) (*GetSaltResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetSalt not implemented")
}
func (UnimplementedWallpaperServiceServer) Login(context.Context, *LoginRequest) (*LoginResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Login not implemented")
}
func (UnimplementedWallpaperServiceServer) RefreshToken(context.Context, *RefreshTokenRequest) (*RefreshTokenResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RefreshToken not implemented")
}
func (UnimplementedWallpaperServiceServer) ListWallpapers(context.Context, *ListWallpapersRequest) (*ListWallpapersResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListWallpapers not implemented")
}
func (UnimplementedWallpaperServiceServer) InsertWallpaper(context.Context, *InsertWallpaperRequest) (*InsertWallpaperResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method InsertWallpaper not implemented")
}
func (UnimplementedWallpaperServiceServer) UpdateWallpaper(context.Context, *UpdateWallpaperRequest) (*UpdateWallpaperResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateWallpaper not implemented")
}
func (UnimplementedWallpaperServiceServer) DeleteWallpaper(context.Context, *DeleteWallpaperRequest) (*DeleteWallpaperResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteWallpaper not implemented")
}
func (UnimplementedWallpaperServiceServer) GetUploadURL(context.Context, *GetUploadURLRequest) (*GetUploadURLResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetUploadURL not implemented")
}

func RegisterWallpaperServiceServer(s grpc.ServiceRegistrar, srv WallpaperServiceServer) {
	s.RegisterService(&WallpaperService_ServiceDesc, srv)
}

// unaryHandler decodes the Struct into Req, runs the interceptor chain with
// the typed request and encodes the typed response.
func unaryHandler[Req, Resp any](fullMethod string, call func(WallpaperServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		req := new(Req)
		if err := FromStruct(in, req); err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}

		handler := func(ctx context.Context, r any) (any, error) {
			resp, err := call(srv.(WallpaperServiceServer), ctx, r.(*Req))
			if err != nil {
				return nil, err
			}
			out, err := ToStruct(resp)
			if err != nil {
				return nil, status.Error(codes.Internal, err.Error())
			}
			return out, nil
		}
		if interceptor == nil {
			return handler(ctx, req)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		return interceptor(ctx, req, info, handler)
	}
}

var WallpaperService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*WallpaperServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Ping", Handler: unaryHandler(WallpaperService_Ping_FullMethodName, WallpaperServiceServer.Ping)},
		{MethodName: "RegisterUser", Handler: unaryHandler(WallpaperService_RegisterUser_FullMethodName, WallpaperServiceServer.RegisterUser)},
		{MethodName: "GetSalt", Handler: unaryHandler(WallpaperService_GetSalt_FullMethodName, WallpaperServiceServer.GetSalt)},
		{MethodName: "Login", Handler: unaryHandler(WallpaperService_Login_FullMethodName, WallpaperServiceServer.Login)},
		{MethodName: "RefreshToken", Handler: unaryHandler(WallpaperService_RefreshToken_FullMethodName, WallpaperServiceServer.RefreshToken)},
		{MethodName: "ListWallpapers", Handler: unaryHandler(WallpaperService_ListWallpapers_FullMethodName, WallpaperServiceServer.ListWallpapers)},
		{MethodName: "InsertWallpaper", Handler: unaryHandler(WallpaperService_InsertWallpaper_FullMethodName, WallpaperServiceServer.InsertWallpaper)},
		{MethodName: "UpdateWallpaper", Handler: unaryHandler(WallpaperService_UpdateWallpaper_FullMethodName, WallpaperServiceServer.UpdateWallpaper)},
		{MethodName: "DeleteWallpaper", Handler: unaryHandler(WallpaperService_DeleteWallpaper_FullMethodName, WallpaperServiceServer.DeleteWallpaper)},
		{MethodName: "GetUploadURL", Handler: unaryHandler(WallpaperService_GetUploadURL_FullMethodName, WallpaperServiceServer.GetUploadURL)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "pixelwalls.proto",
}
