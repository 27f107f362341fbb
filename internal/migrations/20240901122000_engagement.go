package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upEngagement, downEngagement)
}

func upEngagement(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
	CREATE TABLE comments (
		id         BIGSERIAL PRIMARY KEY,
		post_id    BIGINT NOT NULL REFERENCES posts(id) ON DELETE CASCADE,
		profile_id BIGINT NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
		text       TEXT NOT NULL CHECK (text <> ''),
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now()
	);
	CREATE INDEX comments_post_id_idx ON comments (post_id, created_at DESC);

	CREATE TABLE likes (
		id         BIGSERIAL PRIMARY KEY,
		post_id    BIGINT NOT NULL REFERENCES posts(id) ON DELETE CASCADE,
		profile_id BIGINT NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now(),
		CONSTRAINT likes_post_profile_key UNIQUE (post_id, profile_id)
	);
	CREATE INDEX likes_post_id_created_at_idx ON likes (post_id, created_at DESC, id DESC);
	`)
	return err
}

func downEngagement(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
	DROP TABLE likes;
	DROP TABLE comments;
	`)
	return err
}
