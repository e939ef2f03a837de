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

const photoTableName = "public.photos"

var photoColumns = utils.StructTagValues(types.Photo{})

type PhotoRepository struct {
	pool *pgxpool.Pool
}

func NewPhotoRepository(pool *pgxpool.Pool) *PhotoRepository {
	return &PhotoRepository{pool: pool}
}

func (r *PhotoRepository) Photo(ctx context.Context, photoID int64) (*types.Photo, error) {
	query, args, err := psql().
		Select(photoColumns...).
		From(photoTableName).
		Where(sq.Eq{"id": photoID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate photo query: %w", err)
	}

	var photo types.Photo
	err = pgxscan.Get(ctx, r.pool, &photo, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, types.ErrPhotoNotFound
		}
		return nil, fmt.Errorf("failed to fetch photo: %w", err)
	}

	return &photo, nil
}

func (r *PhotoRepository) PhotoURL(ctx context.Context, photoID int64) (string, error) {
	query, args, err := psql().
		Select("photo_url").
		From(photoTableName).
		Where(sq.Eq{"id": photoID}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to generate photo url query: %w", err)
	}

	var photoURL string
	err = pgxscan.Get(ctx, r.pool, &photoURL, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return "", types.ErrPhotoNotFound
		}
		return "", fmt.Errorf("failed to fetch photo url: %w", err)
	}

	return photoURL, nil
}

func (r *PhotoRepository) PhotoURLs(ctx context.Context, photoIDs []int64) (map[int64]string, error) {
	urls := make(map[int64]string, len(photoIDs))
	if len(photoIDs) == 0 {
		return urls, nil
	}

	query, args, err := psql().
		Select("id", "photo_url").
		From(photoTableName).
		Where(sq.Eq{"id": photoIDs}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate photo urls query: %w", err)
	}

	var rows []struct {
		ID       int64  `db:"id"`
		PhotoURL string `db:"photo_url"`
	}
	err = pgxscan.Select(ctx, r.pool, &rows, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch photo urls: %w", err)
	}

	for _, row := range rows {
		urls[row.ID] = row.PhotoURL
	}

	return urls, nil
}

// SetStatus applies one atomic set-update over every matched photo. The
// reason column is only touched when reason is non-nil, so return-to-review
// leaves any stored reason as-is.
func (r *PhotoRepository) SetStatus(ctx context.Context, photoIDs []int64, status types.PhotoStatus, reason *string) (int64, error) {
	if len(photoIDs) == 0 {
		return 0, nil
	}

	builder := psql().
		Update(photoTableName).
		Set("status", string(status))

	if reason != nil {
		builder = builder.Set("reason", *reason)
	}

	query, args, err := builder.
		Where(sq.Eq{"id": photoIDs}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to generate status update query: %w", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to update photo status: %w", err)
	}

	return tag.RowsAffected(), nil
}

// DeletePhotos removes every matched photo record in one atomic set-delete.
func (r *PhotoRepository) DeletePhotos(ctx context.Context, photoIDs []int64) (int64, error) {
	if len(photoIDs) == 0 {
		return 0, nil
	}

	query, args, err := psql().
		Delete(photoTableName).
		Where(sq.Eq{"id": photoIDs}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to generate photo delete query: %w", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete photos: %w", err)
	}

	return tag.RowsAffected(), nil
}

// PhotosByStatus returns the ordered scan backing both the review queue and
// the gallery feed, oldest upload first.
func (r *PhotoRepository) PhotosByStatus(ctx context.Context, status types.PhotoStatus) ([]*types.Photo, error) {
	query, args, err := psql().
		Select(photoColumns...).
		From(photoTableName).
		Where(sq.Eq{"status": string(status)}).
		OrderBy("uploaded_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate photos-by-status query: %w", err)
	}

	photos := make([]*types.Photo, 0)
	err = pgxscan.Select(ctx, r.pool, &photos, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch photos by status: %w", err)
	}

	return photos, nil
}

// CreatePhoto inserts a photo record. The upload flow lives outside this
// service; this exists for the seed command.
func (r *PhotoRepository) CreatePhoto(ctx context.Context, photo *types.Photo) error {
	query, args, err := psql().
		Insert(photoTableName).
		SetMap(utils.StructToMap(photo)).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate create photo query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to create photo: %w", err)
	}

	return nil
}
