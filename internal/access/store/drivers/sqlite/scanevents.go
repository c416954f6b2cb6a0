package sqlite

import (
	"context"
	"time"

	"github.com/barzolagym/gymos/internal/access/domain"
	"github.com/barzolagym/gymos/internal/access/store"
)

type scanEventsRepo struct {
	q querier
}

func (r *scanEventsRepo) CreateScanEvent(ctx context.Context, e domain.ScanEvent) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO scan_events (id, payload, received_at, consumed) VALUES (?, ?, ?, 0)`,
		e.ID, e.Payload, fmtTime(e.ReceivedAt),
	)
	return err
}

// GetOldestUnconsumed orders by received_at with the ULID id as tiebreak, so
// events submitted within the same instant still drain in submission order.
func (r *scanEventsRepo) GetOldestUnconsumed(ctx context.Context) (domain.ScanEvent, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT id, payload, received_at, consumed FROM scan_events
		 WHERE consumed = 0 ORDER BY received_at ASC, id ASC LIMIT 1`)

	var (
		e          domain.ScanEvent
		receivedAt string
		consumed   int
	)
	err := row.Scan(&e.ID, &e.Payload, &receivedAt, &consumed)
	if err != nil {
		return domain.ScanEvent{}, mapNotFound(err)
	}
	if e.ReceivedAt, err = parseTime(receivedAt); err != nil {
		return domain.ScanEvent{}, err
	}
	e.Consumed = consumed != 0
	return e, nil
}

// MarkConsumed guards on consumed = 0 so a racing poller observes ErrConflict
// instead of double-delivering the event.
func (r *scanEventsRepo) MarkConsumed(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE scan_events SET consumed = 1 WHERE id = ? AND consumed = 0`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrConflict
	}
	return nil
}

func (r *scanEventsRepo) DeleteConsumedBefore(ctx context.Context, cutoff time.Time) error {
	_, err := r.q.ExecContext(ctx,
		`DELETE FROM scan_events WHERE consumed = 1 AND received_at < ?`, fmtTime(cutoff))
	return err
}
