package follow

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
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
		logger: logger.WithComponent("FollowRepo"),
	}
}

var _ Repository = (*PgxRepository)(nil)

// InsertQuery relies on the (profile_id, follower_id) unique constraint so concurrent
// duplicate requests cannot create a second edge.
func InsertQuery(profileID, followerID int64) sq.InsertBuilder {
	return repositories.SqBuilder.
		Insert("follows").
		Columns("profile_id", "follower_id").
		Values(profileID, followerID).
		Suffix("ON CONFLICT (profile_id, follower_id) DO NOTHING")
}

func (r *PgxRepository) Create(ctx context.Context, profileID, followerID int64) (bool, error) {
	query, args, err := InsertQuery(profileID, followerID).ToSql()
	if err != nil {
		return false, repositories.ErrBadQuery
	}

	result, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		if repositories.IsForeignKeyViolation(err) {
			return false, repositories.ErrMissingReference
		}
		return false, fmt.Errorf("failed to insert follow: %w", err)
	}

	return result.RowsAffected() == 1, nil
}

func (r *PgxRepository) Delete(ctx context.Context, profileID, followerID int64) (bool, error) {
	query, args, err := repositories.SqBuilder.
		Delete("follows").
		Where(sq.Eq{"profile_id": profileID, "follower_id": followerID}).
		ToSql()
	if err != nil {
		return false, repositories.ErrBadQuery
	}

	result, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to delete follow: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *PgxRepository) Exists(ctx context.Context, profileID, followerID int64) (bool, error) {
	query, args, err := repositories.SqBuilder.
		Select("1").
		From("follows").
		Where(sq.Eq{"profile_id": profileID, "follower_id": followerID}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, repositories.ErrBadQuery
	}

	var exists bool
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check follow: %w", err)
	}

	return exists, nil
}

// GetFollowers joins on follower_id: the rows where profileID is the followed side.
func (r *PgxRepository) GetFollowers(ctx context.Context, profileID int64) ([]*domain.Profile, error) {
	return r.profiles(ctx, "f.follower_id", sq.Eq{"f.profile_id": profileID})
}

// GetFollowing joins on profile_id: the rows where followerID is the follower side.
func (r *PgxRepository) GetFollowing(ctx context.Context, followerID int64) ([]*domain.Profile, error) {
	return r.profiles(ctx, "f.profile_id", sq.Eq{"f.follower_id": followerID})
}

func (r *PgxRepository) profiles(ctx context.Context, joinColumn string, where sq.Eq) ([]*domain.Profile, error) {
	query, args, err := repositories.SqBuilder.
		Select(profile.QualifiedColumns("p")...).
		From("follows f").
		Join("profiles p ON p.id = " + joinColumn).
		Where(where).
		OrderBy("f.id ASC").
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query follows: %w", err)
	}
	defer rows.Close()

	return profile.ScanAll(rows)
}

func (r *PgxRepository) CountFollowers(ctx context.Context, profileID int64) (int, error) {
	return r.count(ctx, sq.Eq{"profile_id": profileID})
}

func (r *PgxRepository) CountFollowing(ctx context.Context, followerID int64) (int, error) {
	return r.count(ctx, sq.Eq{"follower_id": followerID})
}

func (r *PgxRepository) count(ctx context.Context, where sq.Eq) (int, error) {
	query, args, err := repositories.SqBuilder.
		Select("count(*)").
		From("follows").
		Where(where).
		ToSql()
	if err != nil {
		return 0, repositories.ErrBadQuery
	}

	var n int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count follows: %w", err)
	}

	return n, nil
}
