package store

import (
	"context"

	"github.com/aussiebroadwan/shm/internal/shm/domain"
)

// Store is the root data access interface. Concrete drivers (sqlite)
// implement this. It exposes sub-repositories so a transaction can hand out
// the same repositories scoped to itself, and so nobody starts a transaction
// inside a transaction.
type Store interface {
	Stakeholders() Stakeholders
	Meetings() Meetings
	Attendance() Attendance

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back and nothing fn wrote is kept, otherwise it
	// is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Stakeholders interface {
	// GetStakeholderByID returns a stakeholder by id.
	GetStakeholderByID(ctx context.Context, id string) (domain.Stakeholder, error)

	// GetStakeholderByEmail does an exact, case-sensitive email match.
	GetStakeholderByEmail(ctx context.Context, email string) (domain.Stakeholder, error)

	// CreateStakeholder inserts a new stakeholder (id is provided by the app
	// via ULID). A duplicate email is an IntegrityError.
	CreateStakeholder(ctx context.Context, s domain.Stakeholder) error

	// ListStakeholders returns every stakeholder in insertion order.
	ListStakeholders(ctx context.Context) ([]domain.Stakeholder, error)

	// DeleteStakeholder cascades to attendance rows (per schema).
	DeleteStakeholder(ctx context.Context, id string) error
}

type Meetings interface {
	// CreateMeeting inserts a meeting row (id is provided by the app via ULID).
	CreateMeeting(ctx context.Context, m domain.Meeting) error

	// GetMeetingByID returns a meeting by id.
	GetMeetingByID(ctx context.Context, id string) (domain.Meeting, error)

	// ListMeetings returns (id, title, date) in insertion order.
	ListMeetings(ctx context.Context) ([]domain.MeetingSummary, error)

	// UpdateMeetingNotes overwrites notes and bumps updated_at. Returns
	// ErrNotFound when no meeting has the id.
	UpdateMeetingNotes(ctx context.Context, id string, notes string) error

	// DeleteMeeting cascades to attendance rows (per schema).
	DeleteMeeting(ctx context.Context, id string) error
}

type Attendance interface {
	// AddAttendee links a stakeholder to a meeting. Unknown ids and
	// duplicate pairs are IntegrityErrors.
	AddAttendee(ctx context.Context, meetingID, stakeholderID string) error

	// ListAttendees returns the stakeholder ids linked to a meeting in the
	// order they were linked. An unknown meeting has no attendees.
	ListAttendees(ctx context.Context, meetingID string) ([]string, error)

	// ClearAttendees unlinks every stakeholder from a meeting.
	ClearAttendees(ctx context.Context, meetingID string) error
}
