package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/barzolagym/gymos/internal/access/domain"
	"github.com/barzolagym/gymos/internal/access/store"
)

type membersRepo struct {
	q querier
}

const memberColumns = `id, member_no, name, pin_hash, totp_secret, expires_at, created_at, updated_at`

func (r *membersRepo) GetMemberByID(ctx context.Context, id string) (domain.Member, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+memberColumns+` FROM members WHERE id = ?`, id)
	return scanMember(row)
}

func (r *membersRepo) GetMemberByNumber(ctx context.Context, memberNo string) (domain.Member, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+memberColumns+` FROM members WHERE member_no = ?`, memberNo)
	return scanMember(row)
}

func (r *membersRepo) CreateMember(ctx context.Context, m domain.Member) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO members (id, member_no, name, pin_hash, totp_secret, expires_at, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.MemberNo, m.Name, m.PINHash, m.TOTPSecret,
		fmtOptionalTime(m.ExpiresAt), fmtTime(m.CreatedAt), fmtTime(m.UpdatedAt),
	)
	return mapUnique(err)
}

func (r *membersRepo) ListMembers(ctx context.Context) ([]domain.Member, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+memberColumns+` FROM members ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []domain.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

// UpdateExpiration guards on the previously observed expires_at. SQLite's IS
// operator compares NULLs as equal, so the guard covers both the never-paid
// and already-expiring cases.
func (r *membersRepo) UpdateExpiration(ctx context.Context, memberID string, old, updated *time.Time) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE members SET expires_at = ?, updated_at = ? WHERE id = ? AND expires_at IS ?`,
		fmtOptionalTime(updated), fmtTime(time.Now()), memberID, fmtOptionalTime(old),
	)
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

// rowScanner lets scanMember serve both QueryRow and Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanMember(row rowScanner) (domain.Member, error) {
	var (
		m                    domain.Member
		expiresAt            sql.NullString
		createdAt, updatedAt string
	)
	err := row.Scan(&m.ID, &m.MemberNo, &m.Name, &m.PINHash, &m.TOTPSecret,
		&expiresAt, &createdAt, &updatedAt)
	if err != nil {
		return domain.Member{}, mapNotFound(err)
	}

	if m.ExpiresAt, err = parseOptionalTime(expiresAt); err != nil {
		return domain.Member{}, err
	}
	if m.CreatedAt, err = parseTime(createdAt); err != nil {
		return domain.Member{}, err
	}
	if m.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return domain.Member{}, err
	}
	return m, nil
}
