// Package transport defines the wire-level request and response shapes for
// the auth module.
package transport

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	FirstName string  `json:"firstName" validate:"required,max=255"`
	LastName  string  `json:"lastName" validate:"required,max=255"`
	Email     string  `json:"email" validate:"required,email,max=255"`
	Password  string  `json:"password" validate:"required,min=8,max=72"`
	Phone     *string `json:"phone" validate:"omitempty,max=32"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserPayload is the user object embedded in auth and user responses.
type UserPayload struct {
	UserID    string  `json:"userId"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone"`
}

// AuthData is the data payload of register and login responses.
type AuthData struct {
	AccessToken string      `json:"accessToken"`
	User        UserPayload `json:"user"`
}
