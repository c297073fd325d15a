package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/neonthreads/storefront/internal/cart/app"
	"github.com/neonthreads/storefront/internal/cart/domain"
	"github.com/neonthreads/storefront/internal/cart/infra/snapshot"
)

// SnapshotRepo stores one snapshot row per client id. It is the durable
// backend used when a Postgres DSN is configured; the payload is the same
// JSON record the file store writes.
//
// Expected schema:
//
//	CREATE TABLE cart_snapshots (
//	    client_id  text PRIMARY KEY,
//	    payload    jsonb NOT NULL,
//	    updated_at timestamptz NOT NULL DEFAULT now()
//	);
type SnapshotRepo struct {
	db       *sql.DB
	clientID string
}

func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func NewSnapshotRepo(db *sql.DB, clientID string) *SnapshotRepo {
	return &SnapshotRepo{db: db, clientID: clientID}
}

func (r *SnapshotRepo) Load(ctx context.Context) ([]domain.LineItem, error) {
	var payload []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT payload FROM cart_snapshots WHERE client_id = $1`,
		r.clientID,
	).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, app.ErrNoSnapshot
		}
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	items, err := snapshot.Decode(payload)
	if err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return items, nil
}

func (r *SnapshotRepo) Save(ctx context.Context, items []domain.LineItem) error {
	payload, err := snapshot.Encode(items)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO cart_snapshots (client_id, payload, updated_at)
		 VALUES ($1, $2, now())
		 ON CONFLICT (client_id) DO UPDATE SET payload = $2, updated_at = now()`,
		r.clientID, payload,
	)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}
