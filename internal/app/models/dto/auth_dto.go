package dto

// LoginRequest carries credentials for any of the three login flows.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"user@srit.ac.in"`
	Password string `json:"password" binding:"required" example:"Secret123"`
}

// RefreshTokenRequest asks for a new access token.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// LogoutRequest revokes a refresh token.
type LogoutRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenResponse is returned on successful authentication.
type TokenResponse struct {
	AccessToken      string `json:"accessToken"`
	RefreshToken     string `json:"refreshToken"`
	ExpiresIn        int    `json:"expiresIn" example:"3600"`
	RefreshExpiresIn int    `json:"refreshExpiresIn" example:"2592000"`
	TokenType        string `json:"tokenType" example:"Bearer"`
}

// UserResponse is the identity payload attached to dashboards.
type UserResponse struct {
	ID          int64  `json:"id" example:"1"`
	Email       string `json:"email" example:"user@srit.ac.in"`
	FullName    string `json:"fullName" example:"D Anil Kumar"`
	IsStaff     bool   `json:"isStaff"`
	IsSuperuser bool   `json:"isSuperuser"`
}

// LoginResponse bundles tokens with the authenticated identity.
type LoginResponse struct {
	Tokens TokenResponse `json:"tokens"`
	User   UserResponse  `json:"user"`
}
