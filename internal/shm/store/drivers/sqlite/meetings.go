package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/shm/internal/shm/domain"
	"github.com/aussiebroadwan/shm/internal/shm/store"
)

type meetingsRepo struct {
	db dbtx
}

func (r *meetingsRepo) CreateMeeting(ctx context.Context, m domain.Meeting) error {
	now := time.Now()
	createdAt, updatedAt := m.CreatedAt, m.UpdatedAt
	if createdAt.IsZero() {
		createdAt = now
	}
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO meetings (id, title, date, notes, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		m.ID, m.Title, toMillis(m.Date), m.Notes, toMillis(createdAt), toMillis(updatedAt),
	)
	return mapError("create meeting", err)
}

func (r *meetingsRepo) GetMeetingByID(ctx context.Context, id string) (domain.Meeting, error) {
	var (
		m                          domain.Meeting
		date, createdAt, updatedAt int64
	)

	err := r.db.QueryRowContext(ctx,
		`SELECT id, title, date, notes, created_at, updated_at FROM meetings WHERE id = ?`, id,
	).Scan(&m.ID, &m.Title, &date, &m.Notes, &createdAt, &updatedAt)
	if err != nil {
		return domain.Meeting{}, mapError("get meeting", err)
	}

	m.Date = fromMillis(date)
	m.CreatedAt = fromMillis(createdAt)
	m.UpdatedAt = fromMillis(updatedAt)
	return m, nil
}

func (r *meetingsRepo) ListMeetings(ctx context.Context) ([]domain.MeetingSummary, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, title, date FROM meetings ORDER BY rowid`)
	if err != nil {
		return nil, mapError("list meetings", err)
	}
	defer rows.Close()

	var out []domain.MeetingSummary
	for rows.Next() {
		var (
			m    domain.MeetingSummary
			date int64
		)
		if err := rows.Scan(&m.ID, &m.Title, &date); err != nil {
			return nil, mapError("list meetings", err)
		}
		m.Date = fromMillis(date)
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("list meetings", err)
	}
	return out, nil
}

func (r *meetingsRepo) UpdateMeetingNotes(ctx context.Context, id string, notes string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE meetings SET notes = ?, updated_at = ? WHERE id = ?`,
		notes, toMillis(time.Now()), id,
	)
	if err != nil {
		return mapError("update meeting notes", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return mapError("update meeting notes", err)
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *meetingsRepo) DeleteMeeting(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM meetings WHERE id = ?`, id)
	return mapError("delete meeting", err)
}
