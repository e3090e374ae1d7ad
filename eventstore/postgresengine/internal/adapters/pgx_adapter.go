package adapters

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/AntonStoeckl/library-circulation-go/eventstore"
)

// PGXAdapter implements DBAdapter for pgxpool.Pool or anything else that behaves like it.
type PGXAdapter struct {
	primary PGXQuerier
	replica PGXQuerier // optional
}

// NewPGXAdapter creates a PGX adapter without a replica.
func NewPGXAdapter(primary PGXQuerier) *PGXAdapter {
	return &PGXAdapter{primary: primary}
}

// NewPGXAdapterWithReplica creates a PGX adapter that reads from replica under eventual consistency.
func NewPGXAdapterWithReplica(primary PGXQuerier, replica PGXQuerier) *PGXAdapter {
	return &PGXAdapter{primary: primary, replica: replica}
}

// Query executes a query on the replica if ctx allows it, otherwise on the primary.
func (p *PGXAdapter) Query(ctx context.Context, query string) (DBRows, error) {
	db := p.primary

	if p.replica != nil && eventstore.GetConsistencyLevel(ctx) == eventstore.EventualConsistency {
		db = p.replica
	}

	rows, err := db.Query(ctx, query)
	if err != nil {
		return nil, err
	}

	return &pgxRows{rows: rows}, nil
}

// Exec executes a statement on the primary.
func (p *PGXAdapter) Exec(ctx context.Context, query string) (DBResult, error) {
	tag, err := p.primary.Exec(ctx, query)
	if err != nil {
		return nil, err
	}

	return &pgxResult{tag: tag}, nil
}

type pgxRows struct {
	rows pgx.Rows
}

func (p *pgxRows) Next() bool {
	return p.rows.Next()
}

func (p *pgxRows) Scan(dest ...any) error {
	return p.rows.Scan(dest...)
}

// Close closes the rows and reports the error the iteration ended with, if any.
func (p *pgxRows) Close() error {
	p.rows.Close()

	return p.rows.Err()
}

type pgxResult struct {
	tag pgconn.CommandTag
}

func (p *pgxResult) RowsAffected() (int64, error) {
	return p.tag.RowsAffected(), nil
}
