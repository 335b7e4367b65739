// Package api defines the RPC surface shared by the auth server and its
// clients: the service and method names (the message patterns), the JSON
// request/response messages, and the JSON gRPC codec that carries them.
package api
