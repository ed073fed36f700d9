// Package api exposes the vowvenues HTTP surface: login, register, logout,
// current-user lookup and the venue listing endpoints, all speaking JSON.
// Handlers program against the store interfaces, so the same surface runs
// on mongo in production and in memory under test.
package api

import (
	"context"

	"github.com/vowvenues/vowvenues/internal/auth"
	"github.com/vowvenues/vowvenues/internal/store"
)

type (
	// PingFunc reports whether the backing database is reachable.
	PingFunc func(ctx context.Context) error

	// Server wires the credential, token and storage components into
	// request handlers. It holds no per-request state.
	Server struct {
		users   store.Users
		venues  store.Venues
		tokens  *auth.Tokens
		ping    PingFunc
		listing *listingCache
	}
)

// NewServer builds a Server. ping may be nil, in which case the health
// endpoint only reports that the process is up.
func NewServer(users store.Users, venues store.Venues, tokens *auth.Tokens, ping PingFunc) *Server {
	return &Server{
		users:   users,
		venues:  venues,
		tokens:  tokens,
		ping:    ping,
		listing: newListingCache(),
	}
}
