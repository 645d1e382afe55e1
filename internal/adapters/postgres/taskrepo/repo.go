package taskrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/console-catalog/catalog-api/internal/domain"
	"github.com/console-catalog/catalog-api/internal/ports/out/taskrepo"
)

// DB is the subset of *pgxpool.Pool the repository uses.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repo is a Postgres implementation of taskrepo.Repository. Tasks are stored
// as their JSON manifest next to the columns they are looked up by.
type Repo struct {
	db DB
}

func NewRepo(db DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) Upsert(ctx context.Context, t *domain.TaskResource) error {
	if r.db == nil {
		return errors.New("nil postgres pool")
	}
	if err := taskrepo.Validate(t); err != nil {
		return err
	}
	manifest, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("encode task manifest: %w", err)
	}
	key := taskrepo.KeyOf(t)

	_, err = r.db.Exec(ctx, `
		INSERT INTO tasks (kind, namespace, name, uid, manifest, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		ON CONFLICT (kind, namespace, name) DO UPDATE
		SET uid = EXCLUDED.uid,
		    manifest = EXCLUDED.manifest,
		    created_at = EXCLUDED.created_at,
		    updated_at = now()
	`,
		string(key.Kind),
		key.Namespace,
		key.Name,
		string(t.UID),
		manifest,
		t.CreationTimestamp.UTC(),
	)
	return err
}

func (r *Repo) Get(ctx context.Context, key taskrepo.Key) (*domain.TaskResource, error) {
	if r.db == nil {
		return nil, errors.New("nil postgres pool")
	}
	row := r.db.QueryRow(ctx, `
		SELECT manifest
		FROM tasks
		WHERE kind = $1 AND namespace = $2 AND name = $3
	`, string(key.Kind), key.Namespace, key.Name)
	return scanTask(row)
}

func (r *Repo) Delete(ctx context.Context, key taskrepo.Key) error {
	if r.db == nil {
		return errors.New("nil postgres pool")
	}
	ct, err := r.db.Exec(ctx, `
		DELETE FROM tasks
		WHERE kind = $1 AND namespace = $2 AND name = $3
	`, string(key.Kind), key.Namespace, key.Name)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return taskrepo.ErrNotFound
	}
	return nil
}

func (r *Repo) ListNamespaced(ctx context.Context, namespace string) ([]*domain.TaskResource, error) {
	if r.db == nil {
		return nil, errors.New("nil postgres pool")
	}
	rows, err := r.db.Query(ctx, `
		SELECT manifest
		FROM tasks
		WHERE kind = $1 AND namespace = $2
		ORDER BY name ASC
	`, string(domain.KindTask), namespace)
	if err != nil {
		return nil, err
	}
	return collectTasks(rows)
}

func (r *Repo) ListCluster(ctx context.Context) ([]*domain.TaskResource, error) {
	if r.db == nil {
		return nil, errors.New("nil postgres pool")
	}
	rows, err := r.db.Query(ctx, `
		SELECT manifest
		FROM tasks
		WHERE kind = $1
		ORDER BY name ASC
	`, string(domain.KindClusterTask))
	if err != nil {
		return nil, err
	}
	return collectTasks(rows)
}

// --- helpers ---

func collectTasks(rows pgx.Rows) ([]*domain.TaskResource, error) {
	defer rows.Close()

	out := make([]*domain.TaskResource, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanTask(row interface {
	Scan(dest ...any) error
}) (*domain.TaskResource, error) {
	var manifest []byte
	if err := row.Scan(&manifest); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, taskrepo.ErrNotFound
		}
		return nil, err
	}
	var t domain.TaskResource
	if err := json.Unmarshal(manifest, &t); err != nil {
		return nil, fmt.Errorf("decode task manifest: %w", err)
	}
	return &t, nil
}
