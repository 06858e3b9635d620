package sqlite

import (
	"context"
)

type attendanceRepo struct {
	db dbtx
}

func (r *attendanceRepo) AddAttendee(ctx context.Context, meetingID, stakeholderID string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO stakeholder_meetings (stakeholder_id, meeting_id) VALUES (?, ?)`,
		stakeholderID, meetingID,
	)
	return mapError("add attendee", err)
}

func (r *attendanceRepo) ListAttendees(ctx context.Context, meetingID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT stakeholder_id FROM stakeholder_meetings WHERE meeting_id = ? ORDER BY rowid`,
		meetingID,
	)
	if err != nil {
		return nil, mapError("list attendees", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, mapError("list attendees", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("list attendees", err)
	}
	return ids, nil
}

func (r *attendanceRepo) ClearAttendees(ctx context.Context, meetingID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM stakeholder_meetings WHERE meeting_id = ?`, meetingID)
	return mapError("clear attendees", err)
}
