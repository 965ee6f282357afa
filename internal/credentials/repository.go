// Package credentials stores username/password-hash pairs and verifies
// login attempts against them.
package credentials

import (
	"context"

	"github.com/dmitrijs2005/healthgate/internal/models"
)

// Repository persists credentials. Create must fail with
// common.ErrDuplicateUsername when the username already exists, using the
// storage uniqueness constraint. GetByUsername returns common.ErrorNotFound
// for unknown users.
type Repository interface {
	Create(ctx context.Context, c *models.Credential) error
	GetByUsername(ctx context.Context, username string) (*models.Credential, error)
}
