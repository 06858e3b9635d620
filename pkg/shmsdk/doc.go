/*
Package shmsdk provides a client SDK for the stakeholder meeting hub HTTP API.

# Overview

The API is unauthenticated and single-user. SDKClient exposes one method per
route and shares its request and response types with the server, so both
sides agree on the wire format.

	client := shmsdk.NewSDKClient("http://localhost:8080")

	// Check service health
	health, err := client.GetReadiness(ctx)

	// Import an invite: attendees become stakeholders
	imported, err := client.ImportInvite(ctx, icsBytes)

	// Create the meeting from the draft
	created, err := client.CreateMeeting(ctx, shmsdk.CreateMeetingRequest{
		Title:                imported.Draft.Title,
		Date:                 imported.Draft.Date,
		Notes:                imported.Draft.Notes,
		InviteStakeholderIDs: imported.StakeholderIDs,
	})

# Error Handling

Non-2xx responses are returned as *APIError carrying the HTTP status and the
machine readable code from the response body:

	_, err := client.GetMeeting(ctx, id)
	var apiErr *shmsdk.APIError
	if errors.As(err, &apiErr) && apiErr.Code == shmsdk.ErrorCodeNotFound {
		// no such meeting
	}
*/
package shmsdk
