package store

import (
	"context"
	"fmt"

	"questclub/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Accounts live in the identity schema, not in public. Only the contact
// email is ever read from here.
const accountTableName = "auth.users"

type AccountRepository struct {
	pool *pgxpool.Pool
}

func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

func (r *AccountRepository) Account(ctx context.Context, userID string) (*types.Account, error) {
	query, args, err := psql().
		Select("id", "email").
		From(accountTableName).
		Where(sq.Eq{"id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate account query: %w", err)
	}

	var account types.Account
	err = pgxscan.Get(ctx, r.pool, &account, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, types.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to fetch account: %w", err)
	}

	return &account, nil
}
