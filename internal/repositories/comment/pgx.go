package comment

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

func (r *PgxRepository) Create(ctx context.Context, c domain.Comment) (*domain.Comment, error) {
	query, args, err := repositories.SqBuilder.
		Insert("comments").
		Columns("post_id", "profile_id", "text").
		Values(c.PostID, c.ProfileID, c.Text).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&c.ID, &c.CreatedAt); err != nil {
		if repositories.IsForeignKeyViolation(err) {
			return nil, repositories.ErrMissingReference
		}
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return &c, nil
}

func (r *PgxRepository) GetByPostID(ctx context.Context, postID int64) ([]*domain.Comment, error) {
	query, args, err := repositories.SqBuilder.
		Select("id", "post_id", "profile_id", "text", "created_at").
		From("comments").
		Where(sq.Eq{"post_id": postID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments by post: %w", err)
	}
	defer rows.Close()

	comments := make([]*domain.Comment, 0)
	for rows.Next() {
		var c domain.Comment
		err := rows.Scan(
			&c.ID,
			&c.PostID,
			&c.ProfileID,
			&c.Text,
			&c.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment row: %w", err)
		}
		comments = append(comments, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comment rows: %w", err)
	}

	return comments, nil
}

func (r *PgxRepository) CountByPostID(ctx context.Context, postID int64) (int, error) {
	query, args, err := repositories.SqBuilder.
		Select("count(*)").
		From("comments").
		Where(sq.Eq{"post_id": postID}).
		ToSql()
	if err != nil {
		return 0, repositories.ErrBadQuery
	}

	var n int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count comments: %w", err)
	}

	return n, nil
}

var _ Repository = (*PgxRepository)(nil)
