package domain

import (
	"fmt"
	"strings"
	"time"
)

type Stakeholder struct {
	ID        string
	FirstName string
	LastName  string
	Email     string // unique, compared byte for byte
	CreatedAt time.Time
}

// Directory is a point-in-time snapshot of the stakeholder table keyed by ID.
type Directory map[string]Stakeholder

// NewDirectory indexes the given stakeholders by ID.
func NewDirectory(stakeholders []Stakeholder) Directory {
	dir := make(Directory, len(stakeholders))
	for _, s := range stakeholders {
		dir[s.ID] = s
	}
	return dir
}

// FormatDisplayName renders "First Last" for id using the snapshot dir.
//
// A stakeholder with a blank name renders as "Stakeholder {id}" while an id
// missing from the snapshot renders as "Unknown Stakeholder {id}", so callers
// can tell a stale snapshot apart from an unnamed record.
func FormatDisplayName(dir Directory, id string) string {
	s, ok := dir[id]
	if !ok {
		return fmt.Sprintf("Unknown Stakeholder %s", id)
	}

	name := strings.TrimSpace(s.FirstName + " " + s.LastName)
	if name == "" {
		return fmt.Sprintf("Stakeholder %s", id)
	}
	return name
}
