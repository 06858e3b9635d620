package shmsdk

import (
	"bytes"
	"context"
	"net/http"
)

const calendarContentType = "text/calendar"

// ParseInvite decodes an .ics document into a draft without storing anything.
func (c *SDKClient) ParseInvite(ctx context.Context, ics []byte) (*InviteDraft, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/invites/parse", bytes.NewReader(ics), map[string]string{
		"Content-Type": calendarContentType,
	})
	if err != nil {
		return nil, err
	}

	var draft InviteDraft
	if err := decodeJSON(resp, &draft, http.StatusOK); err != nil {
		return nil, err
	}

	return &draft, nil
}

// ImportInvite parses an .ics document and finds or creates a stakeholder
// for every attendee.
func (c *SDKClient) ImportInvite(ctx context.Context, ics []byte) (*ImportInviteResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/invites/import", bytes.NewReader(ics), map[string]string{
		"Content-Type": calendarContentType,
	})
	if err != nil {
		return nil, err
	}

	var imported ImportInviteResponse
	if err := decodeJSON(resp, &imported, http.StatusOK); err != nil {
		return nil, err
	}

	return &imported, nil
}
