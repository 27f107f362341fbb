package photo

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/orgball2608/mini-insta/internal/domain"
	"github.com/orgball2608/mini-insta/internal/repositories"
	"github.com/orgball2608/mini-insta/pkg/logger"
)

type PgxRepository struct {
	pool   *pgxpool.Pool
	logger logger.Logger
}

func NewPgxRepository(pool *pgxpool.Pool, logger logger.Logger) *PgxRepository {
	return &PgxRepository{
		pool:   pool,
		logger: logger,
	}
}

func (r *PgxRepository) GetByPostID(ctx context.Context, postID int64) ([]*domain.Photo, error) {
	byPost, err := r.GetByPostIDs(ctx, []int64{postID})
	if err != nil {
		return nil, err
	}

	photos := byPost[postID]
	if photos == nil {
		photos = []*domain.Photo{}
	}
	return photos, nil
}

func (r *PgxRepository) GetByPostIDs(ctx context.Context, postIDs []int64) (map[int64][]*domain.Photo, error) {
	byPost := make(map[int64][]*domain.Photo, len(postIDs))
	if len(postIDs) == 0 {
		return byPost, nil
	}

	query, args, err := repositories.SqBuilder.
		Select("id", "post_id", "image_url", "image_file", "created_at").
		From("photos").
		Where(sq.Eq{"post_id": postIDs}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query photos: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var photo domain.Photo
		err := rows.Scan(
			&photo.ID,
			&photo.PostID,
			&photo.ImageURL,
			&photo.ImageFile,
			&photo.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan photo row: %w", err)
		}
		byPost[photo.PostID] = append(byPost[photo.PostID], &photo)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating photo rows: %w", err)
	}

	return byPost, nil
}

var _ Repository = (*PgxRepository)(nil)
