package shmsdk

import (
	"context"
	"net/http"
	"net/url"
)

// ListMeetings returns every meeting in the order it was created.
func (c *SDKClient) ListMeetings(ctx context.Context) (*ListMeetingsResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/meetings", nil, nil)
	if err != nil {
		return nil, err
	}

	var list ListMeetingsResponse
	if err := decodeJSON(resp, &list, http.StatusOK); err != nil {
		return nil, err
	}

	return &list, nil
}

// CreateMeeting stores a meeting and its attendance. An unknown stakeholder
// id fails the whole request with ErrorCodeIntegrityViolation.
func (c *SDKClient) CreateMeeting(ctx context.Context, req CreateMeetingRequest) (*CreateMeetingResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/meetings", req)
	if err != nil {
		return nil, err
	}

	var created CreateMeetingResponse
	if err := decodeJSON(resp, &created, http.StatusCreated); err != nil {
		return nil, err
	}

	return &created, nil
}

// GetMeeting returns a meeting with its attendees' display names.
func (c *SDKClient) GetMeeting(ctx context.Context, id string) (*Meeting, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, meetingPath(id), nil, nil)
	if err != nil {
		return nil, err
	}

	var m Meeting
	if err := decodeJSON(resp, &m, http.StatusOK); err != nil {
		return nil, err
	}

	return &m, nil
}

func (c *SDKClient) GetMeetingAttendees(ctx context.Context, id string) (*MeetingAttendeesResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, meetingPath(id)+"/attendees", nil, nil)
	if err != nil {
		return nil, err
	}

	var attendees MeetingAttendeesResponse
	if err := decodeJSON(resp, &attendees, http.StatusOK); err != nil {
		return nil, err
	}

	return &attendees, nil
}

// UpdateMeeting overwrites the notes and replaces the attendance set.
func (c *SDKClient) UpdateMeeting(ctx context.Context, id string, req UpdateMeetingRequest) error {
	resp, err := c.doJSON(ctx, http.MethodPut, meetingPath(id), req)
	if err != nil {
		return err
	}

	return checkStatusNoContent(resp)
}

func meetingPath(id string) string {
	return "/v1/meetings/" + url.PathEscape(id)
}
