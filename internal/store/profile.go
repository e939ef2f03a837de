package store

import (
	"context"
	"fmt"

	"questclub/internal/utils"
	"questclub/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

const profileTableName = "public.profiles"

var profileColumns = utils.StructTagValues(types.Profile{})

type ProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

func (r *ProfileRepository) Profile(ctx context.Context, profileID int64) (*types.Profile, error) {
	query, args, err := psql().
		Select(profileColumns...).
		From(profileTableName).
		Where(sq.Eq{"id": profileID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate profile query: %w", err)
	}

	var profile types.Profile
	err = pgxscan.Get(ctx, r.pool, &profile, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, types.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}

	return &profile, nil
}

// CreateProfile exists for the seed command.
func (r *ProfileRepository) CreateProfile(ctx context.Context, profile *types.Profile) error {
	query, args, err := psql().
		Insert(profileTableName).
		SetMap(utils.StructToMap(profile)).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate create profile query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}

	return nil
}
