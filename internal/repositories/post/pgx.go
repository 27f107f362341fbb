package post

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/orgball2608/mini-insta/internal/domain"
	"github.com/orgball2608/mini-insta/internal/repositories"
	"github.com/orgball2608/mini-insta/pkg/logger"
)

var columns = []string{"id", "profile_id", "caption", "created_at"}

type Pgx struct {
	pg     *pgxpool.Pool
	logger logger.Logger
}

func NewPgx(pg *pgxpool.Pool, logger logger.Logger) *Pgx {
	return &Pgx{
		pg:     pg,
		logger: logger.WithComponent("PostRepo"),
	}
}

var _ Repository = (*Pgx)(nil)

// Create adds a post and its photos atomically
func (p *Pgx) Create(ctx context.Context, post domain.Post, photos []domain.Photo) (*domain.Post, []*domain.Photo, error) {
	postQuery, postArgs, err := repositories.SqBuilder.
		Insert("posts").
		Columns("profile_id", "caption").
		Values(post.ProfileID, post.Caption).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, nil, repositories.ErrBadQuery
	}

	created := make([]*domain.Photo, 0, len(photos))
	err = pgx.BeginFunc(ctx, p.pg, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, postQuery, postArgs...).Scan(&post.ID, &post.CreatedAt); err != nil {
			return fmt.Errorf("failed to insert post: %w", err)
		}

		for _, photo := range photos {
			photo.PostID = post.ID
			query, args, err := repositories.SqBuilder.
				Insert("photos").
				Columns("post_id", "image_url", "image_file").
				Values(photo.PostID, photo.ImageURL, photo.ImageFile).
				Suffix("RETURNING id, created_at").
				ToSql()
			if err != nil {
				return repositories.ErrBadQuery
			}

			if err := tx.QueryRow(ctx, query, args...).Scan(&photo.ID, &photo.CreatedAt); err != nil {
				return fmt.Errorf("failed to insert photo: %w", err)
			}
			created = append(created, &photo)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return &post, created, nil
}

// GetByID returns a single post
func (p *Pgx) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	query, args, err := repositories.SqBuilder.
		Select(columns...).
		From("posts").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	post, err := scan(p.pg.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return post, nil
}

// GetByProfileID returns all posts of a profile, most recent first
func (p *Pgx) GetByProfileID(ctx context.Context, profileID int64) ([]*domain.Post, error) {
	query, args, err := repositories.SqBuilder.
		Select(columns...).
		From("posts").
		Where(sq.Eq{"profile_id": profileID}).
		OrderBy("created_at DESC", "id ASC").
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	return p.query(ctx, query, args...)
}

// GetByProfileIDs returns the posts written by any of the given profiles
func (p *Pgx) GetByProfileIDs(ctx context.Context, profileIDs []int64) ([]*domain.Post, error) {
	if len(profileIDs) == 0 {
		return []*domain.Post{}, nil
	}

	query, args, err := repositories.SqBuilder.
		Select(columns...).
		From("posts").
		Where(sq.Eq{"profile_id": profileIDs}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	return p.query(ctx, query, args...)
}

// UpdateCaption replaces the caption and returns the stored post
func (p *Pgx) UpdateCaption(ctx context.Context, id int64, caption string) (*domain.Post, error) {
	query, args, err := repositories.SqBuilder.
		Update("posts").
		Set("caption", caption).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, profile_id, caption, created_at").
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	post, err := scan(p.pg.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return post, nil
}

// Delete removes a post by id
func (p *Pgx) Delete(ctx context.Context, id int64) error {
	query, args, err := repositories.SqBuilder.
		Delete("posts").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return repositories.ErrBadQuery
	}

	result, err := p.pg.Exec(ctx, query, args...)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	p.logger.Info("Post deleted", "post_id", id)
	return nil
}

// Search returns posts whose caption contains q
func (p *Pgx) Search(ctx context.Context, q string) ([]*domain.Post, error) {
	query, args, err := SearchQuery(q).ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	return p.query(ctx, query, args...)
}

func SearchQuery(q string) sq.SelectBuilder {
	return repositories.SqBuilder.
		Select(columns...).
		From("posts").
		Where(sq.Expr("strpos(caption, ?) > 0", q)).
		OrderBy("created_at DESC", "id ASC")
}

func (p *Pgx) query(ctx context.Context, query string, args ...any) ([]*domain.Post, error) {
	rows, err := p.pg.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := make([]*domain.Post, 0)
	for rows.Next() {
		post, err := scan(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}

func scan(row pgx.Row) (*domain.Post, error) {
	var post domain.Post
	if err := row.Scan(&post.ID, &post.ProfileID, &post.Caption, &post.CreatedAt); err != nil {
		return nil, err
	}
	return &post, nil
}
