package shmsdk

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewSDKClientTrimsTrailingSlash(t *testing.T) {
	t.Parallel()

	client := NewSDKClient("http://localhost:8080/")
	require.Equal(t, "http://localhost:8080", client.BaseURL)
	require.Equal(t, "http://localhost:8080/livez", client.url("/livez"))
}

func TestAPIErrorRoundTrip(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ErrNotFound.WriteError(w)
	}))
	t.Cleanup(srv.Close)

	client := NewSDKClient(srv.URL)
	_, err := client.GetMeeting(context.Background(), "missing")

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	require.Equal(t, ErrorCodeNotFound, apiErr.Code)
	require.Equal(t, "resource not found", apiErr.Description)
}

func TestParseErrorResponseFallback(t *testing.T) {
	t.Parallel()

	err := parseErrorResponse(&http.Response{StatusCode: http.StatusBadGateway}, []byte("<html>"))

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, ErrorCodeServerError, apiErr.Code)
	require.Equal(t, "HTTP 502: Bad Gateway", apiErr.Description)

	require.NoError(t, parseErrorResponse(&http.Response{StatusCode: http.StatusOK}, nil))
}

func TestImportInviteSendsCalendarBody(t *testing.T) {
	t.Parallel()

	ics := []byte("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/invites/import", r.URL.Path)
		require.Equal(t, calendarContentType, r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.Equal(t, ics, body)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(ImportInviteResponse{
			Draft: InviteDraft{Title: "Sync"},
			Attendees: []ResolvedAttendee{{
				InviteAttendee: InviteAttendee{Email: "ada@example.com", FirstName: "Ada"},
				StakeholderID:  "s1",
				Created:        true,
			}},
			StakeholderIDs: []string{"s1"},
		})
	}))
	t.Cleanup(srv.Close)

	imported, err := NewSDKClient(srv.URL).ImportInvite(context.Background(), ics)
	require.NoError(t, err)
	require.Equal(t, "Sync", imported.Draft.Title)
	require.Equal(t, "ada@example.com", imported.Attendees[0].Email)
	require.True(t, imported.Attendees[0].Created)
	require.Equal(t, []string{"s1"}, imported.StakeholderIDs)
}

func TestCreateAndUpdateMeeting(t *testing.T) {
	t.Parallel()

	date := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method + " " + r.URL.Path {
		case "POST /v1/meetings":
			var req CreateMeetingRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.Equal(t, "Kickoff", req.Title)
			require.True(t, date.Equal(req.Date))
			require.Equal(t, []string{"a", "b"}, req.StakeholderIDs)

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(CreateMeetingResponse{ID: "m1"})
		case "PUT /v1/meetings/m1":
			var req UpdateMeetingRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.Equal(t, "notes", req.Notes)
			w.WriteHeader(http.StatusNoContent)
		default:
			ErrNotFound.WriteError(w)
		}
	}))
	t.Cleanup(srv.Close)

	client := NewSDKClient(srv.URL)
	created, err := client.CreateMeeting(context.Background(), CreateMeetingRequest{
		Title:          "Kickoff",
		Date:           date,
		StakeholderIDs: []string{"a", "b"},
	})
	require.NoError(t, err)
	require.Equal(t, "m1", created.ID)

	require.NoError(t, client.UpdateMeeting(context.Background(), "m1", UpdateMeetingRequest{Notes: "notes"}))

	err = client.UpdateMeeting(context.Background(), "m2", UpdateMeetingRequest{})
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}
