// internal/portfolio/postgres.go
package portfolio

import (
	"context"
	"database/sql"
	"encoding/json"
	stderrors "errors"
	"time"

	"unihub-api/internal/common/errors"
	"unihub-api/internal/common/logger"
	"unihub-api/internal/models"
)

// PostgresStore persists portfolios as whole JSON snapshots, one row per user.
type PostgresStore struct {
	db     *sql.DB
	logger logger.Logger
}

func NewPostgresStore(db *sql.DB, log logger.Logger) *PostgresStore {
	return &PostgresStore{
		db:     db,
		logger: log.WithFields(map[string]interface{}{"component": "portfolio-store"}),
	}
}

func (s *PostgresStore) Load(ctx context.Context, userID string) (*models.Portfolio, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT data FROM portfolios WHERE user_id = $1`, userID)

	var raw []byte
	if err := row.Scan(&raw); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NewPortfolioNotFoundError(userID)
		}
		return nil, errors.NewPortfolioStoreFailedError("load", err)
	}

	var p models.Portfolio
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, errors.NewPortfolioStoreFailedError("load", err)
	}
	return &p, nil
}

func (s *PostgresStore) Save(ctx context.Context, userID string, p *models.Portfolio) error {
	data, err := json.Marshal(p)
	if err != nil {
		return errors.NewPortfolioStoreFailedError("save", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO portfolios (user_id, data, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET data = $2, updated_at = $3`,
		userID, data, time.Now().UTC())
	if err != nil {
		return errors.NewPortfolioStoreFailedError("save", err)
	}
	return nil
}

func (s *PostgresStore) Clear(ctx context.Context, userID string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM portfolios WHERE user_id = $1`, userID)
	if err != nil {
		return errors.NewPortfolioStoreFailedError("clear", err)
	}
	return nil
}
