package proto

// Messages travel as google.protobuf.Struct; the json tags are the wire
// field names.

type PingRequest struct{}

type PingResponse struct {
	Status string `json:"status"`
}

type RegisterUserRequest struct {
	Username string `json:"username"`
	Salt     []byte `json:"salt"`
	Verifier []byte `json:"verifier"`
}

type RegisterUserResponse struct{}

type GetSaltRequest struct {
	Username string `json:"username"`
}

type GetSaltResponse struct {
	Salt []byte `json:"salt"`
}

type LoginRequest struct {
	Username          string `json:"username"`
	VerifierCandidate []byte `json:"verifierCandidate"`
}

type LoginResponse struct {
	UserId       string `json:"userId"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type Wallpaper struct {
	Id          string   `json:"id"`
	Url         string   `json:"url"`
	Prompt      string   `json:"prompt"`
	Resolution  string   `json:"resolution"`
	AspectRatio string   `json:"aspectRatio"`
	CreatedAt   int64    `json:"createdAt"`
	Favorite    bool     `json:"favorite"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
}

type ListWallpapersRequest struct{}

type ListWallpapersResponse struct {
	Wallpapers []*Wallpaper `json:"wallpapers"`
}

type InsertWallpaperRequest struct {
	Wallpaper *Wallpaper `json:"wallpaper"`
}

type InsertWallpaperResponse struct{}

type UpdateWallpaperRequest struct {
	Wallpaper *Wallpaper `json:"wallpaper"`
}

type UpdateWallpaperResponse struct{}

type DeleteWallpaperRequest struct {
	Id string `json:"id"`
}

type DeleteWallpaperResponse struct{}

type GetUploadURLRequest struct {
	ContentType string `json:"contentType"`
}

type GetUploadURLResponse struct {
	Key       string `json:"key"`
	UploadUrl string `json:"uploadUrl"`
	PublicUrl string `json:"publicUrl"`
}
