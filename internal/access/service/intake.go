package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/barzolagym/gymos/internal/access/domain"
	"github.com/barzolagym/gymos/internal/access/store"
	"github.com/barzolagym/gymos/pkg/idx"
	"github.com/barzolagym/gymos/pkg/slogx"
)

// IntakeService is the hand-off queue between a scanning device and the
// front-desk terminal that polls for decisions. Consumption state lives in
// the store, never in process memory, so any number of pollers stay safe.
type IntakeService struct {
	Store store.Store
}

// Submit appends a scan payload to the queue. Payload validity is not this
// queue's concern; the validator judges it at consumption time.
func (s *IntakeService) Submit(ctx context.Context, payload string, receivedAt time.Time) (string, error) {
	event := domain.ScanEvent{
		ID:         idx.New().String(),
		Payload:    payload,
		ReceivedAt: receivedAt,
	}
	if err := s.Store.ScanEvents().CreateScanEvent(ctx, event); err != nil {
		return "", fmt.Errorf("failed to store scan event: %w", err)
	}

	slogx.FromContext(ctx).Debug("scan event queued", "event_id", event.ID)
	return event.ID, nil
}

// Poll hands out the oldest unconsumed event, at most once, and returns
// ok=false on an empty queue. Select-and-mark runs in a single transaction
// with a consumed-flag guard, so two concurrent polls never return the same
// event: the loser of the race sees an empty queue.
func (s *IntakeService) Poll(ctx context.Context) (domain.ScanEvent, bool, error) {
	var (
		event domain.ScanEvent
		found bool
	)

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		e, err := tx.ScanEvents().GetOldestUnconsumed(ctx)
		if errors.Is(err, store.ErrNotFound) {
			return nil // drained
		}
		if err != nil {
			return err
		}

		if err := tx.ScanEvents().MarkConsumed(ctx, e.ID); err != nil {
			return err
		}

		e.Consumed = true
		event, found = e, true
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			// Another poller claimed the head between our select and mark.
			return domain.ScanEvent{}, false, nil
		}
		return domain.ScanEvent{}, false, fmt.Errorf("failed to poll scan events: %w", err)
	}

	if found {
		slogx.FromContext(ctx).Debug("scan event consumed", "event_id", event.ID)
	}
	return event, found, nil
}
