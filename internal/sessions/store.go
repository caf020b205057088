package sessions

import (
	"context"
	"errors"
	"time"
)

// Store keeps server-side sessions keyed by an opaque token.
type Store interface {
	Create(ctx context.Context, userID uint, ttl time.Duration) (string, error)

	Resolve(ctx context.Context, token string) (uint, error)

	Destroy(ctx context.Context, token string) error
}

var ErrSessionNotFound = errors.New("session not found")
