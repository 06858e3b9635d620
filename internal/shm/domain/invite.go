package domain

import "time"

// InviteDraft is the parsed, unpersisted content of a calendar invite. It only
// lives for the duration of a single import.
type InviteDraft struct {
	Title     string
	Date      time.Time
	Notes     string
	Attendees []InviteAttendee // document order
}

type InviteAttendee struct {
	Email     string
	FirstName string
	LastName  string
}
