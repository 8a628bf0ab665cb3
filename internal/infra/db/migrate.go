package db

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"tenancy-service/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrEmptyMigration = errs.New("empty migration file")

type MigrationStatus struct {
	Name      string
	AppliedAt *time.Time
}

const createMigrationsTable = `
CREATE TABLE IF NOT EXISTS schema_migrations (
	filename   TEXT PRIMARY KEY,
	applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// ApplyMigrations runs every *.sql file in dir that is not yet recorded in
// schema_migrations, in lexical order, each in its own transaction.
func ApplyMigrations(ctx context.Context, pool *pgxpool.Pool, dir string) ([]string, error) {
	if _, err := pool.Exec(ctx, createMigrationsTable); err != nil {
		return nil, errs.Wrap(err, "failed to create schema_migrations")
	}

	files, err := migrationFiles(dir)
	if err != nil {
		return nil, err
	}

	var applied []string
	for _, f := range files {
		name := filepath.Base(f)

		var exists bool
		if err := pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE filename = $1)`, name).Scan(&exists); err != nil {
			return applied, errs.Wrapf(err, "failed to check migration %s", name)
		}
		if exists {
			continue
		}

		if err := applyFile(ctx, pool, f, name); err != nil {
			return applied, err
		}
		applied = append(applied, name)
	}
	return applied, nil
}

func Status(ctx context.Context, pool *pgxpool.Pool, dir string) ([]MigrationStatus, error) {
	if _, err := pool.Exec(ctx, createMigrationsTable); err != nil {
		return nil, errs.Wrap(err, "failed to create schema_migrations")
	}

	files, err := migrationFiles(dir)
	if err != nil {
		return nil, err
	}

	rows, err := pool.Query(ctx, `SELECT filename, applied_at FROM schema_migrations`)
	if err != nil {
		return nil, errs.Wrap(err, "failed to read schema_migrations")
	}
	defer rows.Close()

	appliedAt := make(map[string]time.Time)
	for rows.Next() {
		var name string
		var at time.Time
		if err := rows.Scan(&name, &at); err != nil {
			return nil, errs.Wrap(err, "failed to scan schema_migrations")
		}
		appliedAt[name] = at
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Wrap(err, "failed to read schema_migrations")
	}

	out := make([]MigrationStatus, 0, len(files))
	for _, f := range files {
		st := MigrationStatus{Name: filepath.Base(f)}
		if at, ok := appliedAt[st.Name]; ok {
			st.AppliedAt = &at
		}
		out = append(out, st)
	}
	return out, nil
}

func applyFile(ctx context.Context, pool *pgxpool.Pool, path, name string) error {
	sqlBytes, err := os.ReadFile(path)
	if err != nil {
		return errs.Wrapf(err, "failed to read migration %s", name)
	}
	sqlText := strings.TrimSpace(string(sqlBytes))
	if sqlText == "" {
		return errs.Wrapf(ErrEmptyMigration, "migration %s", name)
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return errs.Wrap(err, "failed to begin migration transaction")
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, sqlText); err != nil {
		return errs.Wrapf(err, "migration %s failed", name)
	}
	if _, err := tx.Exec(ctx, `INSERT INTO schema_migrations(filename) VALUES ($1)`, name); err != nil {
		return errs.Wrapf(err, "failed to record migration %s", name)
	}
	return tx.Commit(ctx)
}

func migrationFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, werr error) error {
		if werr != nil {
			return werr
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".sql") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, errs.Wrapf(err, "failed to list migrations in %s", dir)
	}
	slices.Sort(files)
	return files, nil
}
