package dto

// ── auth requests ──

// LoginRequest is the login payload. NIPs are accepted with or without
// zero-padding.
type LoginRequest struct {
	NIP        string `json:"nip"      binding:"required"`
	Password   string `json:"password" binding:"required"`
	RememberMe bool   `json:"remember_me"`
}

// RefreshTokenRequest asks for a new access token.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// ── auth responses ──

// TokenResponse is the token pair returned on login and refresh.
type TokenResponse struct {
	AccessToken  string         `json:"access_token"`
	RefreshToken string         `json:"refresh_token,omitempty"`
	ExpiresIn    int            `json:"expires_in"` // access token TTL in seconds
	Worker       WorkerResponse `json:"worker"`
}

// WorkerResponse is a worker's public profile.
type WorkerResponse struct {
	NIP      string `json:"nip"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Role     string `json:"role"`
}
