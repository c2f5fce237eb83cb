// internal/portfolio/store.go
package portfolio

import (
	"context"
	stderrors "errors"

	"unihub-api/internal/common/errors"
	"unihub-api/internal/models"
)

// Store is the storage port for student portfolios. The scoring path only
// reads through this interface, so backends can be swapped without touching
// the engine.
type Store interface {
	Load(ctx context.Context, userID string) (*models.Portfolio, error)
	Save(ctx context.Context, userID string, p *models.Portfolio) error
	Clear(ctx context.Context, userID string) error
}

// IsNotFound reports whether err marks an absent portfolio.
func IsNotFound(err error) bool {
	var se *errors.StandardError
	if stderrors.As(err, &se) {
		return se.Code == errors.ErrCodePortfolioNotFound
	}
	return false
}
