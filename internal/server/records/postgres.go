package records

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/hrconsole/internal/common"
	"github.com/dmitrijs2005/hrconsole/internal/dbx"
	"github.com/dmitrijs2005/hrconsole/internal/server/migrations"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded schema.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, ".")
}

// OpenPostgres connects to dsn and migrates the schema.
func OpenPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}
	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db migration error: %w", err)
	}
	return db, nil
}

func (r *PostgresRepository) List(ctx context.Context, entity string) ([]Record, error) {
	query :=
		`SELECT id, doc FROM records
		 WHERE entity = $1
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, entity)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	out := make([]Record, 0)
	for rows.Next() {
		var (
			rec Record
			raw []byte
		)
		if err := rows.Scan(&rec.ID, &raw); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		if err := json.Unmarshal(raw, &rec.Doc); err != nil {
			return nil, fmt.Errorf("decode %s %d: %w", entity, rec.ID, err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

func (r *PostgresRepository) Get(ctx context.Context, entity string, id int64) (Document, error) {
	query :=
		`SELECT doc FROM records
		 WHERE entity = $1 AND id = $2
		 `

	var raw []byte
	err := r.db.QueryRowContext(ctx, query, entity, id).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode %s %d: %w", entity, id, err)
	}
	return doc, nil
}

func (r *PostgresRepository) Insert(ctx context.Context, entity string, id int64, doc Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	query :=
		`INSERT INTO records (entity, id, doc)
		 VALUES ($1, $2, $3::jsonb)
		 ON CONFLICT (entity, id) DO NOTHING
		 `

	res, err := r.db.ExecContext(ctx, query, entity, id, string(raw))
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorConflict
	}
	return nil
}

// InsertNext serializes allocations per collection with a transaction-scoped
// advisory lock.
func (r *PostgresRepository) InsertNext(ctx context.Context, entity string, doc Document) (int64, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return 0, err
	}

	var id int64
	err = dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, entity); err != nil {
			return err
		}

		query :=
			`INSERT INTO records (entity, id, doc)
			 SELECT $1, COALESCE(MAX(id), 0) + 1, $2::jsonb FROM records WHERE entity = $1
			 RETURNING id
			 `
		return tx.QueryRowContext(ctx, query, entity, string(raw)).Scan(&id)
	})
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return id, nil
}

func (r *PostgresRepository) Update(ctx context.Context, entity string, id int64, doc Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	query :=
		`UPDATE records SET doc = $3::jsonb, updated_at = now()
		 WHERE entity = $1 AND id = $2
		 `

	return r.affectOne(ctx, query, entity, id, string(raw))
}

func (r *PostgresRepository) Delete(ctx context.Context, entity string, id int64) error {
	query :=
		`DELETE FROM records
		 WHERE entity = $1 AND id = $2
		 `

	return r.affectOne(ctx, query, entity, id)
}

func (r *PostgresRepository) affectOne(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
