package repository

import (
	"context"

	"github.com/AweFilko/PIB-SQL-injection/internal/domain/entity"
)

// Querier is the per-request query surface of the store. Both construction
// strategies (parameter-bound and string-interpolated) implement it, so the
// route layer stays identical and only the strategy is swapped at startup.
type Querier interface {
	// Login resolves a username/credential pair to an identity, or nil when
	// the credentials do not match. How the credential participates in the
	// lookup is strategy-specific.
	Login(ctx context.Context, username, credential string) (*entity.Identity, error)

	// JoinedProfile returns every row of the users/comments/orders/profiles
	// join for the given username.
	JoinedProfile(ctx context.Context, username string) ([]entity.JoinedRow, error)

	// SearchUsers performs a substring match against username or email,
	// bounded by limit.
	SearchUsers(ctx context.Context, q string, limit int) ([]entity.UserSummary, error)
}

// Store hands out a Querier scoped to a single database connection. All
// statements for one HTTP request run on that connection; the release func
// must be called on every exit path.
type Store interface {
	Acquire(ctx context.Context) (Querier, func(), error)
}
