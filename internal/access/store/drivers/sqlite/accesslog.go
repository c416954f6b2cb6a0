package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/barzolagym/gymos/internal/access/domain"
)

type accessLogRepo struct {
	q querier
}

func (r *accessLogRepo) AppendDecision(ctx context.Context, d domain.AccessDecision) error {
	var reason sql.NullString
	if d.Reason != "" {
		reason = sql.NullString{String: string(d.Reason), Valid: true}
	}

	_, err := r.q.ExecContext(ctx,
		`INSERT INTO access_log (id, member_id, outcome, reason, decided_at)
		 VALUES (?, ?, ?, ?, ?)`,
		d.ID, mapOptionalString(d.MemberID), string(d.Outcome), reason, fmtTime(d.DecidedAt),
	)
	return err
}

func (r *accessLogRepo) ListRecentDecisions(ctx context.Context, limit int) ([]domain.AccessDecision, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT id, member_id, outcome, reason, decided_at
		 FROM access_log ORDER BY decided_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var decisions []domain.AccessDecision
	for rows.Next() {
		var (
			d                domain.AccessDecision
			memberID, reason sql.NullString
			decidedAt        string
		)
		if err := rows.Scan(&d.ID, &memberID, (*string)(&d.Outcome), &reason, &decidedAt); err != nil {
			return nil, err
		}
		d.MemberID = mapNullStringPtr(memberID)
		if reason.Valid {
			d.Reason = domain.DenyReason(reason.String)
		}
		if d.DecidedAt, err = parseTime(decidedAt); err != nil {
			return nil, err
		}
		decisions = append(decisions, d)
	}
	return decisions, rows.Err()
}

func (r *accessLogRepo) DeleteDecisionsBefore(ctx context.Context, cutoff time.Time) error {
	_, err := r.q.ExecContext(ctx,
		`DELETE FROM access_log WHERE decided_at < ?`, fmtTime(cutoff))
	return err
}
