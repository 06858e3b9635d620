package service

import (
	"context"
	"log/slog"

	"github.com/aussiebroadwan/shm/internal/shm/domain"
	"github.com/aussiebroadwan/shm/internal/shm/invite"
	"github.com/aussiebroadwan/shm/internal/shm/store"
	"github.com/aussiebroadwan/shm/pkg/slogx"
)

// ImportService turns calendar invites into drafts and resolves their
// attendees against the stakeholder directory.
type ImportService struct {
	Store  store.Store
	Parser *invite.Parser
	NewID  IDFunc
}

type ResolvedAttendee struct {
	domain.InviteAttendee
	StakeholderID string
	Created       bool // false when the email was already in the directory
}

type ImportResult struct {
	Draft     domain.InviteDraft
	Attendees []ResolvedAttendee // one per draft attendee, document order

	// StakeholderIDs are the distinct resolved ids in document order, ready
	// to be passed as CreateMeetingInput.InviteAttendeeIDs.
	StakeholderIDs []string
}

// Parse decodes payload without touching the store.
func (s *ImportService) Parse(ctx context.Context, payload []byte) (domain.InviteDraft, error) {
	draft, err := s.parser().Parse(payload)
	if err != nil {
		slogx.FromContext(ctx).Warn("invite rejected", slog.Any("error", err))
		return domain.InviteDraft{}, err
	}
	return draft, nil
}

// Import parses payload and finds or creates a stakeholder for every
// attendee. All attendees are resolved in one transaction so a failure
// leaves the directory untouched.
func (s *ImportService) Import(ctx context.Context, payload []byte) (ImportResult, error) {
	log := slogx.FromContext(ctx)

	draft, err := s.Parse(ctx, payload)
	if err != nil {
		return ImportResult{}, err
	}

	result := ImportResult{
		Draft:     draft,
		Attendees: make([]ResolvedAttendee, 0, len(draft.Attendees)),
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		for _, a := range draft.Attendees {
			id, created, err := findOrCreateStakeholder(ctx, tx.Stakeholders(), s.NewID, a)
			if err != nil {
				return err
			}
			result.Attendees = append(result.Attendees, ResolvedAttendee{
				InviteAttendee: a,
				StakeholderID:  id,
				Created:        created,
			})
		}
		return nil
	})
	if err != nil {
		log.Error("failed to resolve invite attendees", slog.Any("error", err))
		return ImportResult{}, err
	}

	ids := make([]string, 0, len(result.Attendees))
	for _, a := range result.Attendees {
		ids = append(ids, a.StakeholderID)
	}
	result.StakeholderIDs = uniqueIDs(ids)

	log.Info("invite imported",
		slog.String("title", draft.Title),
		slog.Int("attendees", len(draft.Attendees)),
		slog.Int("stakeholders", len(result.StakeholderIDs)),
	)
	return result, nil
}

func (s *ImportService) parser() *invite.Parser {
	if s.Parser != nil {
		return s.Parser
	}
	return &invite.Parser{MaxBytes: invite.DefaultMaxBytes}
}
