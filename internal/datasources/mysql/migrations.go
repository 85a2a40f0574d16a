package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jbeshir/set-ranker/internal/domain"
)

type migration struct {
	name       string
	statements []string
}

var migrations = []migration{
	{
		name: "2024-06-01_create_user_item_ratings",
		statements: []string{`
CREATE TABLE IF NOT EXISTS user_item_ratings (
	user_id          VARCHAR(255) NOT NULL,
	item_id          CHAR(36) NOT NULL,
	elo_rating       INT NOT NULL DEFAULT 1500,
	sentiment_bucket ENUM('liked', 'neutral', 'disliked') NOT NULL,
	comparison_count INT NOT NULL DEFAULT 0,
	created_at       DATETIME(6) NOT NULL,
	updated_at       DATETIME(6) NOT NULL,
	PRIMARY KEY (user_id, item_id),
	KEY idx_user_bucket_elo (user_id, sentiment_bucket, elo_rating)
)`,
		},
	},
	{
		name: "2024-06-01_create_comparisons",
		statements: []string{`
CREATE TABLE IF NOT EXISTS comparisons (
	id             CHAR(36) NOT NULL,
	user_id        VARCHAR(255) NOT NULL,
	winner_item_id CHAR(36) NOT NULL,
	loser_item_id  CHAR(36) NOT NULL,
	pair_low       CHAR(36) NOT NULL,
	pair_high      CHAR(36) NOT NULL,
	created_at     DATETIME(6) NOT NULL,
	PRIMARY KEY (id),
	UNIQUE KEY uq_user_pair (user_id, pair_low, pair_high),
	KEY idx_user_created (user_id, created_at)
)`,
		},
	},
}

// Migrate applies every migration not yet recorded in schema_migrations.
func Migrate(ctx context.Context, db *sql.DB) error {
	logger := domain.LoggerFromContext(ctx)

	if _, err := db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS schema_migrations (
	name         VARCHAR(190) NOT NULL PRIMARY KEY,
	applied_at_s BIGINT NOT NULL
)`); err != nil {
		return fmt.Errorf("creating migrations table: %w", err)
	}

	for _, m := range migrations {
		var name string
		err := db.QueryRowContext(ctx, "SELECT name FROM schema_migrations WHERE name = ?", m.name).Scan(&name)
		if err == nil {
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("checking migration %s: %w", m.name, err)
		}

		for _, stmt := range m.statements {
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("applying migration %s: %w", m.name, err)
			}
		}

		if _, err := db.ExecContext(ctx,
			"INSERT INTO schema_migrations (name, applied_at_s) VALUES (?, ?)",
			m.name, time.Now().UTC().Unix(),
		); err != nil {
			return fmt.Errorf("recording migration %s: %w", m.name, err)
		}

		logger.InfoContext(ctx, "database migration applied", "migration", m.name)
	}

	return nil
}
