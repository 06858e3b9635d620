package shm_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/aussiebroadwan/shm/pkg/shmsdk"
	"github.com/stretchr/testify/require"
)

// TestInviteToMeetingFlow walks the main workflow: import an invite, create
// the meeting with an extra manual attendee, then edit notes and attendance.
func TestInviteToMeetingFlow(t *testing.T) {
	baseURL, cleanup := setupContainer(t, nil)
	defer cleanup()

	client := shmsdk.NewSDKClient(baseURL)
	ctx := t.Context()

	manual, err := client.FindOrCreateStakeholder(ctx, shmsdk.CreateStakeholderRequest{
		Email:     "pm@example.com",
		FirstName: "Project",
		LastName:  "Manager",
	})
	require.NoError(t, err)

	ics := inviteICS("Design review", "20240611T040000Z",
		"ATTENDEE;CN=Ada Lovelace:mailto:ada@example.com",
		"ATTENDEE:mailto:pm@example.com",
		"ATTENDEE;CN=Meeting Room:urn:room:7",
	)

	// Parsing is side-effect free.
	draft, err := client.ParseInvite(ctx, ics)
	require.NoError(t, err)
	require.Equal(t, "Design review", draft.Title)
	require.Len(t, draft.Attendees, 2)

	list, err := client.ListStakeholders(ctx)
	require.NoError(t, err)
	require.Len(t, list.Stakeholders, 1)

	imported, err := client.ImportInvite(ctx, ics)
	require.NoError(t, err)
	require.True(t, time.Date(2024, 6, 11, 4, 0, 0, 0, time.UTC).Equal(imported.Draft.Date))
	require.Len(t, imported.StakeholderIDs, 2)
	require.True(t, imported.Attendees[0].Created)
	require.False(t, imported.Attendees[1].Created)
	require.Equal(t, manual.ID, imported.Attendees[1].StakeholderID)

	created, err := client.CreateMeeting(ctx, shmsdk.CreateMeetingRequest{
		Title:                imported.Draft.Title,
		Date:                 imported.Draft.Date,
		Notes:                imported.Draft.Notes,
		StakeholderIDs:       []string{manual.ID},
		InviteStakeholderIDs: imported.StakeholderIDs,
	})
	require.NoError(t, err)

	meeting, err := client.GetMeeting(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Imported from e2e", meeting.Notes)
	require.Len(t, meeting.Attendees, 2)

	names := []string{meeting.Attendees[0].DisplayName, meeting.Attendees[1].DisplayName}
	require.ElementsMatch(t, []string{"Project Manager", "Ada Lovelace"}, names)

	err = client.UpdateMeeting(ctx, created.ID, shmsdk.UpdateMeetingRequest{
		Notes:          "Decided on option B",
		StakeholderIDs: []string{manual.ID},
	})
	require.NoError(t, err)

	attendees, err := client.GetMeetingAttendees(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, []string{manual.ID}, attendees.StakeholderIDs)

	meetings, err := client.ListMeetings(ctx)
	require.NoError(t, err)
	require.Len(t, meetings.Meetings, 1)
	require.Equal(t, "Design review", meetings.Meetings[0].Title)
}

// TestCreateMeetingIsAtomic verifies that an unknown attendee rejects the
// whole meeting.
func TestCreateMeetingIsAtomic(t *testing.T) {
	baseURL, cleanup := setupContainer(t, nil)
	defer cleanup()

	client := shmsdk.NewSDKClient(baseURL)
	ctx := t.Context()

	known, err := client.FindOrCreateStakeholder(ctx, shmsdk.CreateStakeholderRequest{Email: "known@example.com"})
	require.NoError(t, err)

	_, err = client.CreateMeeting(ctx, shmsdk.CreateMeetingRequest{
		Title:          "Should not exist",
		Date:           time.Now(),
		StakeholderIDs: []string{known.ID, "01ARZ3NDEKTSV4RRFFQ69G5FAV"},
	})
	assertAPIError(t, err, http.StatusConflict, shmsdk.ErrorCodeIntegrityViolation)

	meetings, err := client.ListMeetings(ctx)
	require.NoError(t, err)
	require.Empty(t, meetings.Meetings)
}

// TestInvalidInvites verifies invite rejections surface as typed errors.
func TestInvalidInvites(t *testing.T) {
	baseURL, cleanup := setupContainer(t, map[string]string{
		"SHM_MAX_INVITE_BYTES": "1024",
	})
	defer cleanup()

	client := shmsdk.NewSDKClient(baseURL)
	ctx := t.Context()

	_, err := client.ParseInvite(ctx, []byte("hello"))
	assertAPIError(t, err, http.StatusUnprocessableEntity, shmsdk.ErrorCodeInvalidInvite)

	big := make([]byte, 2048)
	for i := range big {
		big[i] = 'x'
	}
	_, err = client.ImportInvite(ctx, big)
	assertAPIError(t, err, http.StatusRequestEntityTooLarge, shmsdk.ErrorCodeInviteTooLarge)
}

// TestUnknownMeeting verifies missing meetings are reported as not_found.
func TestUnknownMeeting(t *testing.T) {
	baseURL, cleanup := setupContainer(t, nil)
	defer cleanup()

	client := shmsdk.NewSDKClient(baseURL)

	_, err := client.GetMeeting(t.Context(), "01ARZ3NDEKTSV4RRFFQ69G5FAV")
	assertAPIError(t, err, http.StatusNotFound, shmsdk.ErrorCodeNotFound)

	err = client.UpdateMeeting(t.Context(), "01ARZ3NDEKTSV4RRFFQ69G5FAV", shmsdk.UpdateMeetingRequest{})
	assertAPIError(t, err, http.StatusNotFound, shmsdk.ErrorCodeNotFound)
}
