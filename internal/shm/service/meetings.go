package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/shm/internal/shm/domain"
	"github.com/aussiebroadwan/shm/internal/shm/store"
	"github.com/aussiebroadwan/shm/pkg/slogx"
)

// MeetingService owns meetings and their attendance.
type MeetingService struct {
	Store store.Store
	NewID IDFunc
}

type CreateMeetingInput struct {
	Title string
	Date  time.Time
	Notes string

	// AttendeeIDs are the stakeholders picked by hand, InviteAttendeeIDs the
	// ones resolved from an imported invite. The meeting gets their union.
	AttendeeIDs       []string
	InviteAttendeeIDs []string
}

// Create stores the meeting and its attendance in one transaction. If any
// attendee cannot be linked nothing is stored, not even the meeting.
func (s *MeetingService) Create(ctx context.Context, in CreateMeetingInput) (string, error) {
	log := slogx.FromContext(ctx)

	if in.Date.IsZero() {
		log.Warn("rejected meeting without date", slog.String("title", in.Title))
		return "", ErrInvalidMeeting
	}

	meeting := domain.Meeting{
		ID:    s.NewID.next(),
		Title: in.Title,
		Date:  in.Date,
		Notes: in.Notes,
	}
	attendees := uniqueIDs(in.AttendeeIDs, in.InviteAttendeeIDs)

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Meetings().CreateMeeting(ctx, meeting); err != nil {
			return err
		}
		return addAttendees(ctx, tx, meeting.ID, attendees)
	})
	if err != nil {
		log.Error("failed to create meeting",
			slog.String("meeting_id", meeting.ID),
			slog.Any("error", err),
		)
		return "", err
	}

	log.Info("meeting created",
		slog.String("meeting_id", meeting.ID),
		slog.Int("attendees", len(attendees)),
	)
	return meeting.ID, nil
}

// Get returns store.ErrNotFound for an unknown id.
func (s *MeetingService) Get(ctx context.Context, id string) (domain.Meeting, error) {
	return s.Store.Meetings().GetMeetingByID(ctx, id)
}

// ListAll returns every meeting in the order it was created.
func (s *MeetingService) ListAll(ctx context.Context) ([]domain.MeetingSummary, error) {
	return s.Store.Meetings().ListMeetings(ctx)
}

// GetAttendees returns the stakeholder ids attending a meeting. An unknown
// meeting has none.
func (s *MeetingService) GetAttendees(ctx context.Context, id string) ([]string, error) {
	return s.Store.Attendance().ListAttendees(ctx, id)
}

// UpdateNotesAndAttendees overwrites the notes and replaces the whole
// attendance set with attendeeIDs. Stakeholders not in attendeeIDs are
// detached, however they were attached.
func (s *MeetingService) UpdateNotesAndAttendees(ctx context.Context, id, notes string, attendeeIDs []string) error {
	log := slogx.FromContext(ctx)
	attendees := uniqueIDs(attendeeIDs)

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Meetings().UpdateMeetingNotes(ctx, id, notes); err != nil {
			return err
		}
		if err := tx.Attendance().ClearAttendees(ctx, id); err != nil {
			return err
		}
		return addAttendees(ctx, tx, id, attendees)
	})
	if err != nil {
		log.Error("failed to update meeting",
			slog.String("meeting_id", id),
			slog.Any("error", err),
		)
		return err
	}

	log.Info("meeting updated",
		slog.String("meeting_id", id),
		slog.Int("attendees", len(attendees)),
	)
	return nil
}

func addAttendees(ctx context.Context, tx store.Tx, meetingID string, stakeholderIDs []string) error {
	for _, stakeholderID := range stakeholderIDs {
		if err := tx.Attendance().AddAttendee(ctx, meetingID, stakeholderID); err != nil {
			return err
		}
	}
	return nil
}
