package sqlite

import (
	"context"

	"github.com/barzolagym/gymos/internal/access/domain"
	"github.com/barzolagym/gymos/internal/access/store"
)

type paymentsRepo struct {
	q querier
}

const paymentColumns = `id, member_id, months, amount_cents, applied_at, created_at`

func (r *paymentsRepo) CreatePayment(ctx context.Context, p domain.Payment) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO payments (id, member_id, months, amount_cents, applied_at, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		p.ID, p.MemberID, p.Months, p.AmountCents, fmtTime(p.AppliedAt), fmtTime(p.CreatedAt),
	)
	return err
}

func (r *paymentsRepo) GetPaymentByID(ctx context.Context, id string) (domain.Payment, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE id = ?`, id)
	return scanPayment(row)
}

func (r *paymentsRepo) ListPaymentsByMember(ctx context.Context, memberID string) ([]domain.Payment, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE member_id = ? ORDER BY applied_at DESC, id DESC`,
		memberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func (r *paymentsRepo) DeletePayment(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM payments WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func scanPayment(row rowScanner) (domain.Payment, error) {
	var (
		p                    domain.Payment
		appliedAt, createdAt string
	)
	err := row.Scan(&p.ID, &p.MemberID, &p.Months, &p.AmountCents, &appliedAt, &createdAt)
	if err != nil {
		return domain.Payment{}, mapNotFound(err)
	}

	if p.AppliedAt, err = parseTime(appliedAt); err != nil {
		return domain.Payment{}, err
	}
	if p.CreatedAt, err = parseTime(createdAt); err != nil {
		return domain.Payment{}, err
	}
	return p, nil
}
