package profile

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/orgball2608/mini-insta/internal/domain"
	"github.com/orgball2608/mini-insta/internal/repositories"
	"github.com/orgball2608/mini-insta/pkg/logger"
)

// Columns is the select list matching Scan.
var Columns = []string{"id", "account_id", "username", "display_name", "bio", "image_url", "joined_at"}

// QualifiedColumns prefixes Columns with a table alias for joins.
func QualifiedColumns(alias string) []string {
	cols := make([]string, len(Columns))
	for i, c := range Columns {
		cols[i] = alias + "." + c
	}
	return cols
}

type PgxRepository struct {
	pool   *pgxpool.Pool
	logger logger.Logger
}

func NewPgxRepository(pool *pgxpool.Pool, logger logger.Logger) *PgxRepository {
	return &PgxRepository{
		pool:   pool,
		logger: logger.WithComponent("ProfileRepo"),
	}
}

var _ Repository = (*PgxRepository)(nil)

func (r *PgxRepository) Create(ctx context.Context, p domain.Profile) (*domain.Profile, error) {
	query, args, err := repositories.SqBuilder.
		Insert("profiles").
		Columns("account_id", "username", "display_name", "bio", "image_url").
		Values(p.AccountID, p.Username, p.DisplayName, p.Bio, p.ImageURL).
		Suffix("RETURNING id, joined_at").
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	err = r.pool.QueryRow(ctx, query, args...).Scan(&p.ID, &p.JoinedAt)
	if err != nil {
		if repositories.IsUniqueViolation(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	return &p, nil
}

func (r *PgxRepository) GetByID(ctx context.Context, id int64) (*domain.Profile, error) {
	return r.getOne(ctx, sq.Eq{"id": id})
}

func (r *PgxRepository) GetByAccountID(ctx context.Context, accountID int64) (*domain.Profile, error) {
	return r.getOne(ctx, sq.Eq{"account_id": accountID})
}

func (r *PgxRepository) getOne(ctx context.Context, where sq.Eq) (*domain.Profile, error) {
	query, args, err := repositories.SqBuilder.
		Select(Columns...).
		From("profiles").
		Where(where).
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	p, err := Scan(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return p, nil
}

func (r *PgxRepository) List(ctx context.Context) ([]*domain.Profile, error) {
	query, args, err := repositories.SqBuilder.
		Select(Columns...).
		From("profiles").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	return r.query(ctx, query, args...)
}

func (r *PgxRepository) Update(ctx context.Context, p domain.Profile) (*domain.Profile, error) {
	query, args, err := repositories.SqBuilder.
		Update("profiles").
		Set("display_name", p.DisplayName).
		Set("bio", p.Bio).
		Set("image_url", p.ImageURL).
		Where(sq.Eq{"id": p.ID}).
		Suffix("RETURNING " + strings.Join(Columns, ", ")).
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	updated, err := Scan(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return updated, nil
}

func (r *PgxRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := repositories.SqBuilder.
		Delete("profiles").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return repositories.ErrBadQuery
	}

	result, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete profile %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	r.logger.Info("Profile deleted", "profile_id", id)
	return nil
}

func (r *PgxRepository) Search(ctx context.Context, q string) ([]*domain.Profile, error) {
	query, args, err := SearchQuery(q).ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	return r.query(ctx, query, args...)
}

// SearchQuery matches q literally, strpos sidesteps LIKE wildcards in user input.
func SearchQuery(q string) sq.SelectBuilder {
	return repositories.SqBuilder.
		Select(Columns...).
		From("profiles").
		Where(sq.Or{
			sq.Expr("strpos(username, ?) > 0", q),
			sq.Expr("strpos(display_name, ?) > 0", q),
			sq.Expr("strpos(bio, ?) > 0", q),
		}).
		OrderBy("id ASC")
}

func (r *PgxRepository) query(ctx context.Context, query string, args ...any) ([]*domain.Profile, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query profiles: %w", err)
	}
	defer rows.Close()

	return ScanAll(rows)
}

// Scan reads one profile row selected with Columns.
func Scan(row pgx.Row) (*domain.Profile, error) {
	var p domain.Profile
	err := row.Scan(&p.ID, &p.AccountID, &p.Username, &p.DisplayName, &p.Bio, &p.ImageURL, &p.JoinedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ScanAll drains rows selected with Columns.
func ScanAll(rows pgx.Rows) ([]*domain.Profile, error) {
	profiles := make([]*domain.Profile, 0)
	for rows.Next() {
		p, err := Scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan profile row: %w", err)
		}
		profiles = append(profiles, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating profile rows: %w", err)
	}

	return profiles, nil
}
