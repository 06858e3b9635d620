// Package invite decodes calendar invites (.ics) into meeting drafts.
package invite

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/mail"
	"strings"
	"time"
	"unicode"

	"github.com/aussiebroadwan/shm/internal/shm/domain"
	"github.com/emersion/go-ical"
)

// DefaultMaxBytes caps the size of an invite accepted by the default parser.
const DefaultMaxBytes = 1 << 20

var defaultParser = &Parser{MaxBytes: DefaultMaxBytes}

// Parse decodes payload with the default parser.
func Parse(payload []byte) (domain.InviteDraft, error) {
	return defaultParser.Parse(payload)
}

// Parser turns an iCalendar payload into a domain.InviteDraft. The zero value
// is usable: it reads the wall clock, interprets floating times as local time
// and accepts payloads of any size.
type Parser struct {
	Now      func() time.Time // used when the event has no DTSTART
	Location *time.Location   // used for floating date-times
	MaxBytes int64            // zero disables the limit
}

// Parse consumes the first VEVENT of the document. Missing SUMMARY,
// DESCRIPTION and DTSTART fall back to "", "" and now; attendees without a
// mailto: address are dropped. Everything else that cannot be read is a
// *ParseError and no draft is returned.
func (p *Parser) Parse(payload []byte) (domain.InviteDraft, error) {
	if p.MaxBytes > 0 && int64(len(payload)) > p.MaxBytes {
		return domain.InviteDraft{}, &ParseError{
			Reason: fmt.Sprintf("invite is larger than %d bytes", p.MaxBytes),
			Err:    ErrTooLarge,
		}
	}
	if len(bytes.TrimSpace(payload)) == 0 {
		return domain.InviteDraft{}, &ParseError{Reason: "invite is empty", Err: ErrMalformed}
	}

	cal, err := ical.NewDecoder(bytes.NewReader(payload)).Decode()
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return domain.InviteDraft{}, &ParseError{
			Reason: "invite is not a readable calendar",
			Err:    fmt.Errorf("%w: %w", ErrMalformed, err),
		}
	}

	event := firstEvent(cal.Component)
	if event == nil {
		return domain.InviteDraft{}, &ParseError{Reason: "invite contains no event", Err: ErrNoEvent}
	}

	draft := domain.InviteDraft{
		Title: propText(event, ical.PropSummary),
		Notes: propText(event, ical.PropDescription),
	}

	if start := event.Props.Get(ical.PropDateTimeStart); start != nil {
		t, err := parseDateTimeProperty(start, p.location())
		if err != nil {
			return domain.InviteDraft{}, &ParseError{
				Reason: "event start time is unreadable",
				Err:    fmt.Errorf("%w: %w", ErrMalformedStart, err),
			}
		}
		draft.Date = t
	} else {
		draft.Date = p.now()
	}

	for _, prop := range event.Props.Values(ical.PropAttendee) {
		if attendee, ok := parseAttendee(prop); ok {
			draft.Attendees = append(draft.Attendees, attendee)
		}
	}

	return draft, nil
}

func (p *Parser) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}

func (p *Parser) location() *time.Location {
	if p.Location != nil {
		return p.Location
	}
	return time.Local
}

func firstEvent(root *ical.Component) *ical.Component {
	if root == nil {
		return nil
	}
	for _, child := range root.Children {
		if child.Name == ical.CompEvent {
			return child
		}
	}
	return nil
}

func propText(comp *ical.Component, name string) string {
	prop := comp.Props.Get(name)
	if prop == nil {
		return ""
	}
	text, err := prop.Text()
	if err != nil {
		text = prop.Value
	}
	return strings.ToValidUTF8(text, "\uFFFD")
}

func parseDateTimeProperty(prop *ical.Prop, loc *time.Location) (time.Time, error) {
	if t, err := prop.DateTime(loc); err == nil {
		return t, nil
	}

	// Some exporters omit VALUE=DATE or mix in ISO 8601.
	formats := []string{
		"20060102T150405",
		"20060102T150405Z",
		"20060102",
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02",
	}
	value := strings.TrimSpace(prop.Value)
	for _, format := range formats {
		if t, err := time.ParseInLocation(format, value, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse datetime value %q", prop.Value)
}

func parseAttendee(prop ical.Prop) (domain.InviteAttendee, bool) {
	email, ok := mailtoAddress(prop.Value)
	if !ok {
		return domain.InviteAttendee{}, false
	}

	first, last := splitName(strings.ToValidUTF8(prop.Params.Get(ical.ParamCommonName), "\uFFFD"))
	if first == "" {
		first, _, _ = strings.Cut(email, "@")
		last = ""
	}

	return domain.InviteAttendee{
		Email:     email,
		FirstName: first,
		LastName:  last,
	}, true
}

const mailtoScheme = "mailto:"

// mailtoAddress extracts the address of a mailto: URI. The scheme is matched
// case-insensitively. The remainder must be a bare addr-spec, so display names
// and comments are rejected rather than stored as part of the email.
func mailtoAddress(value string) (string, bool) {
	value = strings.TrimSpace(value)
	if len(value) <= len(mailtoScheme) || !strings.EqualFold(value[:len(mailtoScheme)], mailtoScheme) {
		return "", false
	}

	addr := strings.TrimSpace(value[len(mailtoScheme):])
	parsed, err := mail.ParseAddress(addr)
	if err != nil || parsed.Address != addr {
		return "", false
	}
	return addr, true
}

// splitName splits a common name on its first whitespace.
func splitName(cn string) (first, last string) {
	cn = strings.TrimSpace(cn)
	i := strings.IndexFunc(cn, unicode.IsSpace)
	if i < 0 {
		return cn, ""
	}
	return cn[:i], strings.TrimSpace(cn[i:])
}
