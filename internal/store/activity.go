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

const activityTableName = "public.activities"

var activityColumns = utils.StructTagValues(types.Activity{})

type ActivityRepository struct {
	pool *pgxpool.Pool
}

func NewActivityRepository(pool *pgxpool.Pool) *ActivityRepository {
	return &ActivityRepository{pool: pool}
}

func (r *ActivityRepository) Activity(ctx context.Context, activityID int64) (*types.Activity, error) {
	query, args, err := psql().
		Select(activityColumns...).
		From(activityTableName).
		Where(sq.Eq{"id": activityID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate activity query: %w", err)
	}

	var activity types.Activity
	err = pgxscan.Get(ctx, r.pool, &activity, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, types.ErrActivityNotFound
		}
		return nil, fmt.Errorf("failed to fetch activity: %w", err)
	}

	return &activity, nil
}

// CreateActivity exists for the seed command.
func (r *ActivityRepository) CreateActivity(ctx context.Context, activity *types.Activity) error {
	query, args, err := psql().
		Insert(activityTableName).
		SetMap(utils.StructToMap(activity)).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate create activity query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to create activity: %w", err)
	}

	return nil
}
