package dto

type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Name     string `json:"name"     validate:"required,max=100"`
	Password string `json:"password" validate:"required,strongpassword"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type GoogleAuthRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"  validate:"required,max=100"`
}

type ValidateTokenRequest struct {
	AccessToken string `json:"access_token"`
}

type User struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// SessionResponse is the shared response shape of the register, login, and
// google-auth endpoints. Status false carries a human-readable message.
type SessionResponse struct {
	Status      bool   `json:"status"`
	AccessToken string `json:"accessToken,omitempty"`
	User        *User  `json:"user,omitempty"`
	Message     string `json:"message,omitempty"`
}

type ValidateTokenResponse struct {
	Status bool  `json:"status"`
	User   *User `json:"user,omitempty"`
}
