package like

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/orgball2608/mini-insta/internal/domain"
	"github.com/orgball2608/mini-insta/internal/repositories"
	"github.com/orgball2608/mini-insta/internal/repositories/profile"
	"github.com/orgball2608/mini-insta/pkg/logger"
)

type PgxRepository struct {
	pool   *pgxpool.Pool
	logger logger.Logger
}

func NewPgxRepository(pool *pgxpool.Pool, logger logger.Logger) *PgxRepository {
	return &PgxRepository{
		pool:   pool,
		logger: logger.WithComponent("LikeRepo"),
	}
}

var _ Repository = (*PgxRepository)(nil)

func InsertQuery(postID, profileID int64) sq.InsertBuilder {
	return repositories.SqBuilder.
		Insert("likes").
		Columns("post_id", "profile_id").
		Values(postID, profileID).
		Suffix("ON CONFLICT (post_id, profile_id) DO NOTHING")
}

func (r *PgxRepository) Create(ctx context.Context, postID, profileID int64) (bool, error) {
	query, args, err := InsertQuery(postID, profileID).ToSql()
	if err != nil {
		return false, repositories.ErrBadQuery
	}

	result, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		if repositories.IsForeignKeyViolation(err) {
			return false, repositories.ErrMissingReference
		}
		return false, fmt.Errorf("failed to insert like: %w", err)
	}

	return result.RowsAffected() == 1, nil
}

func (r *PgxRepository) Delete(ctx context.Context, postID, profileID int64) (bool, error) {
	query, args, err := repositories.SqBuilder.
		Delete("likes").
		Where(sq.Eq{"post_id": postID, "profile_id": profileID}).
		ToSql()
	if err != nil {
		return false, repositories.ErrBadQuery
	}

	result, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to delete like: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *PgxRepository) Exists(ctx context.Context, postID, profileID int64) (bool, error) {
	query, args, err := repositories.SqBuilder.
		Select("1").
		From("likes").
		Where(sq.Eq{"post_id": postID, "profile_id": profileID}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, repositories.ErrBadQuery
	}

	var exists bool
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check like: %w", err)
	}

	return exists, nil
}

func (r *PgxRepository) CountByPostID(ctx context.Context, postID int64) (int, error) {
	query, args, err := repositories.SqBuilder.
		Select("count(*)").
		From("likes").
		Where(sq.Eq{"post_id": postID}).
		ToSql()
	if err != nil {
		return 0, repositories.ErrBadQuery
	}

	var n int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}

	return n, nil
}

// MostRecentQuery picks the newest like; equal timestamps fall back to the later insert.
func MostRecentQuery(postID int64) sq.SelectBuilder {
	return repositories.SqBuilder.
		Select("id", "post_id", "profile_id", "created_at").
		From("likes").
		Where(sq.Eq{"post_id": postID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(1)
}

func (r *PgxRepository) GetMostRecent(ctx context.Context, postID int64) (*domain.Like, error) {
	query, args, err := MostRecentQuery(postID).ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	var l domain.Like
	err = r.pool.QueryRow(ctx, query, args...).Scan(&l.ID, &l.PostID, &l.ProfileID, &l.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get most recent like: %w", err)
	}

	return &l, nil
}

func (r *PgxRepository) GetLikers(ctx context.Context, postID int64) ([]*domain.Profile, error) {
	query, args, err := repositories.SqBuilder.
		Select(profile.QualifiedColumns("p")...).
		From("likes l").
		Join("profiles p ON p.id = l.profile_id").
		Where(sq.Eq{"l.post_id": postID}).
		OrderBy("l.created_at DESC", "l.id DESC").
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query likers: %w", err)
	}
	defer rows.Close()

	return profile.ScanAll(rows)
}
