package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upPosts, downPosts)
}

func upPosts(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
	CREATE TABLE posts (
		id         BIGSERIAL PRIMARY KEY,
		profile_id BIGINT NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
		caption    TEXT NOT NULL CHECK (caption <> ''),
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now()
	);
	CREATE INDEX posts_profile_id_created_at_idx ON posts (profile_id, created_at DESC);

	CREATE TABLE photos (
		id         BIGSERIAL PRIMARY KEY,
		post_id    BIGINT NOT NULL REFERENCES posts(id) ON DELETE CASCADE,
		image_url  TEXT NOT NULL DEFAULT '',
		image_file TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now(),
		CONSTRAINT photos_one_image_ref CHECK ((image_url = '') <> (image_file = ''))
	);
	CREATE INDEX photos_post_id_idx ON photos (post_id);
	`)
	return err
}

func downPosts(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
	DROP TABLE photos;
	DROP TABLE posts;
	`)
	return err
}
