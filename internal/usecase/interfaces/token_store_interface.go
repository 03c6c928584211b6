package interfaces

import "context"

// Session is the principal bound to an opaque bearer token.
type Session struct {
	Token    string
	UserID   string
	Username string
	Role     string
}

// ITokenStore abstracts session-token bookkeeping.
//
// The default implementation is an in-process map; keeping it behind an
// interface lets a durable store replace it without touching callers.
type ITokenStore interface {
	Put(ctx context.Context, s Session) error
	Get(ctx context.Context, token string) (Session, bool, error)
	Delete(ctx context.Context, token string) error
}
