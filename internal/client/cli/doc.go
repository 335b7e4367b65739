// Package cli provides the interactive gophauth command-line client.
//
// It wires configuration, the RPC client and a session service into a small
// REPL: register, login, verify (which also refreshes the held token),
// whoami and logout. A background watcher pings the service health endpoint
// and flips the prompt between online and offline.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits,
// stdin closes, or ctx is cancelled.
package cli
