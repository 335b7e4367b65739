package api

const (
	ServiceName = "gophauth.AuthService"

	// Message patterns. They double as gRPC method names.
	PatternRegister = "registerUserAuth"
	PatternLogin    = "loginUserAuth"
	PatternVerify   = "verifyUserAuth"

	FullMethodRegister = "/" + ServiceName + "/" + PatternRegister
	FullMethodLogin    = "/" + ServiceName + "/" + PatternLogin
	FullMethodVerify   = "/" + ServiceName + "/" + PatternVerify

	// ErrorDomain tags the ErrorInfo detail attached to failed calls.
	ErrorDomain = "gophauth"
)
