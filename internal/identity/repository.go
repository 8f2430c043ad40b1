package identity

import "context"

// Repository persists users. Implementations must enforce username
// uniqueness atomically at insert time (unique index, not a prior
// existence check) so racing registrations cannot both succeed, and
// map a duplicate insert to ErrUsernameTaken.
type Repository interface {
	Create(ctx context.Context, user User) error
	FindByUsername(ctx context.Context, username string) (User, error)
	FindByID(ctx context.Context, id string) (User, error)
}
