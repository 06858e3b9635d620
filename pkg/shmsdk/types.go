package shmsdk

import "time"

// ============================================================================
// Error Types
// ============================================================================

// ErrorResponse is the JSON body of every error response. Client code should
// use the APIError type from errors.go instead.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse represents the response structure for health check endpoints.
// Used by both /livez and /readyz endpoints (readyz includes additional Checks field).
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks contains readiness check results (only for /readyz)
	Checks *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	// Database indicates the database connection status
	Database string `json:"database"`
}

// ============================================================================
// Stakeholder Types
// ============================================================================

type Stakeholder struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateStakeholderRequest finds the stakeholder with Email or creates one
// with the given names. Names are ignored for an existing stakeholder.
type CreateStakeholderRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type ListStakeholdersResponse struct {
	Stakeholders []Stakeholder `json:"stakeholders"`
}

// ============================================================================
// Invite Types
// ============================================================================

type InviteAttendee struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// InviteDraft is a parsed invite. Nothing is stored until it is turned into
// a meeting.
type InviteDraft struct {
	Title     string           `json:"title"`
	Date      time.Time        `json:"date"`
	Notes     string           `json:"notes"`
	Attendees []InviteAttendee `json:"attendees"`
}

type ResolvedAttendee struct {
	InviteAttendee
	StakeholderID string `json:"stakeholder_id"`

	// Created is false when the email already belonged to a stakeholder.
	Created bool `json:"created"`
}

type ImportInviteResponse struct {
	Draft     InviteDraft        `json:"draft"`
	Attendees []ResolvedAttendee `json:"attendees"`

	// StakeholderIDs are the distinct resolved ids, in document order.
	StakeholderIDs []string `json:"stakeholder_ids"`
}

// ============================================================================
// Meeting Types
// ============================================================================

type MeetingSummary struct {
	ID    string    `json:"id"`
	Title string    `json:"title"`
	Date  time.Time `json:"date"`
}

type ListMeetingsResponse struct {
	Meetings []MeetingSummary `json:"meetings"`
}

type Attendee struct {
	StakeholderID string `json:"stakeholder_id"`
	DisplayName   string `json:"display_name"`
}

type Meeting struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Date      time.Time  `json:"date"`
	Notes     string     `json:"notes"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	Attendees []Attendee `json:"attendees"`
}

// CreateMeetingRequest creates a meeting attended by the union of
// StakeholderIDs and InviteStakeholderIDs.
type CreateMeetingRequest struct {
	Title                string    `json:"title"`
	Date                 time.Time `json:"date"`
	Notes                string    `json:"notes"`
	StakeholderIDs       []string  `json:"stakeholder_ids"`
	InviteStakeholderIDs []string  `json:"invite_stakeholder_ids,omitempty"`
}

type CreateMeetingResponse struct {
	ID string `json:"id"`
}

// UpdateMeetingRequest overwrites the notes and replaces the attendance set.
type UpdateMeetingRequest struct {
	Notes          string   `json:"notes"`
	StakeholderIDs []string `json:"stakeholder_ids"`
}

type MeetingAttendeesResponse struct {
	StakeholderIDs []string `json:"stakeholder_ids"`
}
