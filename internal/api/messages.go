package api

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type VerifyRequest struct {
	Token string `json:"token" validate:"required"`
}

// PublicUser is a user as seen by callers. It has no password field.
type PublicUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type AuthData struct {
	User  PublicUser `json:"user"`
	Token string     `json:"token"`
}

// AuthResult answers registerUserAuth and loginUserAuth.
type AuthResult struct {
	OK      bool     `json:"ok"`
	Message string   `json:"message"`
	Data    AuthData `json:"data"`
}

// VerifyResult answers verifyUserAuth with the token identity and a
// freshly signed token.
type VerifyResult struct {
	User  PublicUser `json:"user"`
	Token string     `json:"token"`
}
