// Package client talks to the gophauth service over gRPC.
//
// GRPCClient invokes registerUserAuth, loginUserAuth and verifyUserAuth
// with the JSON codec and probes liveness through the standard health
// service. Failed calls come back as *common.AuthError carrying the kind
// and message the service attached; transport failures and deadlines are
// reported as ErrUnavailable so callers can tell them apart with errors.Is.
package client
