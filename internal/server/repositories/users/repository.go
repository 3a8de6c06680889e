package users

import (
	"context"

	"github.com/avelichko/authgate/internal/server/models"
)

// Repository is the user-record read/write contract consumed by the service
// layer.
type Repository interface {
	// Create inserts a new record and returns it with the store-assigned id.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByUsername returns the record for the given username or
	// common.ErrNotFound.
	GetByUsername(ctx context.Context, username string) (*models.User, error)

	// GetByUsernameOrEmail returns every record whose username or email
	// matches; 0, 1, or 2 rows since the two fields are checked independently.
	GetByUsernameOrEmail(ctx context.Context, username, email string) ([]*models.User, error)

	// GetByID returns the record for the given id or common.ErrNotFound.
	GetByID(ctx context.Context, id int64) (*models.User, error)
}
