package http

import (
	"github.com/aussiebroadwan/shm/internal/shm/domain"
	"github.com/aussiebroadwan/shm/internal/shm/service"
	"github.com/aussiebroadwan/shm/pkg/shmsdk"
)

func toStakeholder(s domain.Stakeholder) shmsdk.Stakeholder {
	dir := domain.NewDirectory([]domain.Stakeholder{s})
	return shmsdk.Stakeholder{
		ID:          s.ID,
		FirstName:   s.FirstName,
		LastName:    s.LastName,
		Email:       s.Email,
		DisplayName: domain.FormatDisplayName(dir, s.ID),
		CreatedAt:   s.CreatedAt,
	}
}

func toInviteAttendee(a domain.InviteAttendee) shmsdk.InviteAttendee {
	return shmsdk.InviteAttendee{
		Email:     a.Email,
		FirstName: a.FirstName,
		LastName:  a.LastName,
	}
}

func toInviteDraft(d domain.InviteDraft) shmsdk.InviteDraft {
	attendees := make([]shmsdk.InviteAttendee, len(d.Attendees))
	for i, a := range d.Attendees {
		attendees[i] = toInviteAttendee(a)
	}
	return shmsdk.InviteDraft{
		Title:     d.Title,
		Date:      d.Date,
		Notes:     d.Notes,
		Attendees: attendees,
	}
}

func toImportResponse(res service.ImportResult) shmsdk.ImportInviteResponse {
	attendees := make([]shmsdk.ResolvedAttendee, len(res.Attendees))
	for i, a := range res.Attendees {
		attendees[i] = shmsdk.ResolvedAttendee{
			InviteAttendee: toInviteAttendee(a.InviteAttendee),
			StakeholderID:  a.StakeholderID,
			Created:        a.Created,
		}
	}
	return shmsdk.ImportInviteResponse{
		Draft:          toInviteDraft(res.Draft),
		Attendees:      attendees,
		StakeholderIDs: res.StakeholderIDs,
	}
}

func toMeeting(m domain.Meeting, dir domain.Directory, attendeeIDs []string) shmsdk.Meeting {
	attendees := make([]shmsdk.Attendee, len(attendeeIDs))
	for i, id := range attendeeIDs {
		attendees[i] = shmsdk.Attendee{
			StakeholderID: id,
			DisplayName:   domain.FormatDisplayName(dir, id),
		}
	}
	return shmsdk.Meeting{
		ID:        m.ID,
		Title:     m.Title,
		Date:      m.Date,
		Notes:     m.Notes,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		Attendees: attendees,
	}
}
