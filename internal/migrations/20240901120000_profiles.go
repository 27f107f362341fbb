package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upProfiles, downProfiles)
}

func upProfiles(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
	CREATE TABLE profiles (
		id           BIGSERIAL PRIMARY KEY,
		account_id   BIGINT NOT NULL UNIQUE,
		username     TEXT NOT NULL UNIQUE,
		display_name TEXT NOT NULL DEFAULT '',
		bio          TEXT NOT NULL DEFAULT '',
		image_url    TEXT NOT NULL DEFAULT '',
		joined_at    TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now()
	);

	CREATE TABLE follows (
		id          BIGSERIAL PRIMARY KEY,
		profile_id  BIGINT NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
		follower_id BIGINT NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
		created_at  TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now(),
		CONSTRAINT follows_profile_follower_key UNIQUE (profile_id, follower_id)
	);
	CREATE INDEX follows_follower_id_idx ON follows (follower_id);
	`)
	return err
}

func downProfiles(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
	DROP TABLE follows;
	DROP TABLE profiles;
	`)
	return err
}
