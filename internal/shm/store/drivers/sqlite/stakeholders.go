package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/shm/internal/shm/domain"
)

type stakeholdersRepo struct {
	db dbtx
}

const stakeholderColumns = `id, first_name, last_name, email, created_at`

func (r *stakeholdersRepo) GetStakeholderByID(ctx context.Context, id string) (domain.Stakeholder, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+stakeholderColumns+` FROM stakeholders WHERE id = ?`, id)
	s, err := scanStakeholder(row)
	if err != nil {
		return domain.Stakeholder{}, mapError("get stakeholder", err)
	}
	return s, nil
}

func (r *stakeholdersRepo) GetStakeholderByEmail(ctx context.Context, email string) (domain.Stakeholder, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+stakeholderColumns+` FROM stakeholders WHERE email = ?`, email)
	s, err := scanStakeholder(row)
	if err != nil {
		return domain.Stakeholder{}, mapError("get stakeholder by email", err)
	}
	return s, nil
}

func (r *stakeholdersRepo) CreateStakeholder(ctx context.Context, s domain.Stakeholder) error {
	createdAt := s.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO stakeholders (id, first_name, last_name, email, created_at) VALUES (?, ?, ?, ?, ?)`,
		s.ID, s.FirstName, s.LastName, s.Email, toMillis(createdAt),
	)
	return mapError("create stakeholder", err)
}

func (r *stakeholdersRepo) ListStakeholders(ctx context.Context) ([]domain.Stakeholder, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+stakeholderColumns+` FROM stakeholders ORDER BY rowid`)
	if err != nil {
		return nil, mapError("list stakeholders", err)
	}
	defer rows.Close()

	var out []domain.Stakeholder
	for rows.Next() {
		s, err := scanStakeholder(rows)
		if err != nil {
			return nil, mapError("list stakeholders", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("list stakeholders", err)
	}
	return out, nil
}

func (r *stakeholdersRepo) DeleteStakeholder(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM stakeholders WHERE id = ?`, id)
	return mapError("delete stakeholder", err)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanStakeholder(row rowScanner) (domain.Stakeholder, error) {
	var (
		s         domain.Stakeholder
		createdAt int64
	)
	if err := row.Scan(&s.ID, &s.FirstName, &s.LastName, &s.Email, &createdAt); err != nil {
		return domain.Stakeholder{}, err
	}
	s.CreatedAt = fromMillis(createdAt)
	return s, nil
}
