package domain

import "context"

// Identity is the resolved request identity. In local mode it is backed by a
// row in the users table; in remote mode it is whatever the peer deployment
// reported, which is not guaranteed to exist in the local store.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// TokenPair is the access/refresh token pair minted by a local-mode
// deployment. The refresh token travels in an HTTP-only cookie.
type TokenPair struct {
	Access  string `json:"access_token"`
	Refresh string `json:"-"`
}

type AuthUsecase interface {
	Register(ctx context.Context, name, email, password, role string) (*User, *TokenPair, error)
	Login(ctx context.Context, email, password string) (*User, *TokenPair, error)
	// Refresh rotates a refresh token: the presented token is verified and a
	// brand-new pair is issued. There is no server-side revocation list; the
	// old token is invalidated purely by cookie replacement.
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	GetCurrentUser(ctx context.Context, id string) (*User, error)
}
