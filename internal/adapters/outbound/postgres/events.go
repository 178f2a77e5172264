package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/abdidvp/siteaudit/internal/domain"
)

// EventStore implements domain.EventStore on the events table.
type EventStore struct {
	db *DB
}

func NewEventStore(db *DB) *EventStore {
	return &EventStore{db: db}
}

func (s *EventStore) Record(ctx context.Context, e domain.Event) error {
	_, err := s.db.Pool.Exec(ctx, `
        INSERT INTO events (id, category, label, domain, value, metadata, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `, e.ID, e.Category, e.Label, e.Domain, e.Value, []byte(e.Metadata), e.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting event: %w", err)
	}
	return nil
}

// Recent returns up to limit events of category, newest first. A
// non-positive limit returns every matching event.
func (s *EventStore) Recent(ctx context.Context, category string, limit int) ([]domain.Event, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if limit > 0 {
		rows, err = s.db.Pool.Query(ctx, `
            SELECT id::text, category, label, domain, value, metadata, created_at
            FROM events WHERE category = $1
            ORDER BY created_at DESC LIMIT $2
        `, category, limit)
	} else {
		rows, err = s.db.Pool.Query(ctx, `
            SELECT id::text, category, label, domain, value, metadata, created_at
            FROM events WHERE category = $1
            ORDER BY created_at DESC
        `, category)
	}
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}

	events, err := pgx.CollectRows(rows, scanEvent)
	if err != nil {
		return nil, fmt.Errorf("scanning events: %w", err)
	}
	if events == nil {
		events = []domain.Event{}
	}
	return events, nil
}

func scanEvent(row pgx.CollectableRow) (domain.Event, error) {
	var (
		e    domain.Event
		meta []byte
	)
	err := row.Scan(&e.ID, &e.Category, &e.Label, &e.Domain, &e.Value, &meta, &e.CreatedAt)
	e.Metadata = meta
	e.CreatedAt = e.CreatedAt.UTC()
	return e, err
}
