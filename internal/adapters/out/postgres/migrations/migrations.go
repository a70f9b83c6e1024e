// Package migrations applies the versioned PostgreSQL schema. Scripts live in
// sql/ and follow the pattern
//
//	0001_name.up.sql / 0001_name.down.sql
//
// Applied versions are recorded in schema_migrations. Every version runs in
// its own transaction together with its bookkeeping row.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"regexp"
	"sort"
	"strconv"

	_ "github.com/lib/pq"
)

//go:embed sql/*.sql
var scripts embed.FS

var fileRe = regexp.MustCompile(`^([0-9]{4})_(.+)\.(up|down)\.sql$`)

// Migration is one version with its scripts.
type Migration struct {
	Version  int
	Name     string
	upFile   string
	downFile string
}

// Open connects to PostgreSQL through lib/pq.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// Load lists the embedded migrations in version order.
func Load() ([]Migration, error) {
	return load(scripts, "sql")
}

func load(fsys fs.FS, dir string) ([]Migration, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}

	byVersion := map[int]Migration{}
	for _, de := range entries {
		if de.IsDir() {
			continue
		}
		m := fileRe.FindStringSubmatch(de.Name())
		if m == nil {
			continue
		}
		version, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}

		item := byVersion[version]
		item.Version = version
		item.Name = m[2]
		path := dir + "/" + de.Name()
		if m[3] == "up" {
			item.upFile = path
		} else {
			item.downFile = path
		}
		byVersion[version] = item
	}

	out := make([]Migration, 0, len(byVersion))
	for _, m := range byVersion {
		if m.upFile == "" {
			return nil, fmt.Errorf("missing up migration for version %04d", m.Version)
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Version < out[j].Version })
	return out, nil
}

// Up applies every migration not yet recorded and returns the versions it applied.
func Up(ctx context.Context, db *sql.DB) ([]int, error) {
	migs, err := Load()
	if err != nil {
		return nil, err
	}
	applied, err := appliedVersions(ctx, db)
	if err != nil {
		return nil, err
	}

	var done []int
	for _, m := range migs {
		if applied[m.Version] {
			continue
		}
		text, err := fs.ReadFile(scripts, m.upFile)
		if err != nil {
			return done, err
		}
		if err := inTx(ctx, db, string(text), `INSERT INTO schema_migrations (version) VALUES ($1)`, m.Version); err != nil {
			return done, fmt.Errorf("migration %04d_%s failed: %w", m.Version, m.Name, err)
		}
		done = append(done, m.Version)
	}
	return done, nil
}

// RollbackLast reverts the most recently applied migration. It returns 0 when
// nothing is applied.
func RollbackLast(ctx context.Context, db *sql.DB) (int, error) {
	if err := ensureTable(ctx, db); err != nil {
		return 0, err
	}

	var version int
	err := db.QueryRowContext(ctx, `SELECT version FROM schema_migrations ORDER BY version DESC LIMIT 1`).Scan(&version)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	migs, err := Load()
	if err != nil {
		return 0, err
	}
	for _, m := range migs {
		if m.Version != version {
			continue
		}
		if m.downFile == "" {
			break
		}
		text, err := fs.ReadFile(scripts, m.downFile)
		if err != nil {
			return 0, err
		}
		if err := inTx(ctx, db, string(text), `DELETE FROM schema_migrations WHERE version = $1`, version); err != nil {
			return 0, fmt.Errorf("rollback %04d_%s failed: %w", m.Version, m.Name, err)
		}
		return version, nil
	}
	return 0, fmt.Errorf("no down migration found for version %04d", version)
}

func inTx(ctx context.Context, db *sql.DB, script, bookkeeping string, version int) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, script); err != nil {
		_ = tx.Rollback()
		return err
	}
	if _, err := tx.ExecContext(ctx, bookkeeping, version); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func ensureTable(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
        version    INTEGER PRIMARY KEY,
        applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
    )`)
	return err
}

func appliedVersions(ctx context.Context, db *sql.DB) (map[int]bool, error) {
	if err := ensureTable(ctx, db); err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx, `SELECT version FROM schema_migrations`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	got := map[int]bool{}
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		got[v] = true
	}
	return got, rows.Err()
}
