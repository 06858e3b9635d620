package domain

import "time"

type Meeting struct {
	ID        string
	Title     string
	Date      time.Time
	Notes     string // overwritten on every save
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MeetingSummary is the listing projection of a meeting.
type MeetingSummary struct {
	ID    string
	Title string
	Date  time.Time
}
