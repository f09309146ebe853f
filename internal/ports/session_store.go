package ports

import (
	"context"

	"github.com/bnema/recitebot/internal/domain"
)

// SessionStore owns per-user session state. Do runs fn with exclusive access to
// the user's state, creating it on first contact.
type SessionStore interface {
	Do(ctx context.Context, userID int64, fn func(state *domain.SessionState) error) error
	Len() int
}
