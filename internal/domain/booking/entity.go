package booking

import (
	"fmt"
	"time"
)

type Service struct {
	ID   int64
	Name string
}

// Slot is one bookable interval of a service; its ID is what a reservation submits.
type Slot struct {
	ID    int64
	Date  Date
	Start TimeOfDay
	End   TimeOfDay
}

// Label renders "HH:MM - HH:MM".
func (s Slot) Label() string {
	return s.Start.Short() + " - " + s.End.Short()
}

// IsElapsed reports whether the slot can no longer be picked on the selected day. Only
// today's slots can elapse; the start minute is compared inclusively against now.
func (s Slot) IsElapsed(selected Date, now time.Time) bool {
	if selected != DateOf(now) {
		return false
	}
	return s.Start.MinuteOfDay() <= TimeOfDayOf(now).MinuteOfDay()
}

// Schedule is the embedded date and time of a booked slot; any part may be missing on
// admin listings.
type Schedule struct {
	Date  Date
	Start TimeOfDay
	End   TimeOfDay
}

func (s Schedule) IsKnown() bool {
	return !s.Date.IsZero() && !s.Start.IsZero()
}

// StartsAt returns the scheduled start in loc.
func (s Schedule) StartsAt(loc *time.Location) (time.Time, bool) {
	if !s.IsKnown() {
		return time.Time{}, false
	}
	return s.Date.At(s.Start, loc), true
}

func (s Schedule) Label() string {
	if s.Start.IsZero() && s.End.IsZero() {
		return "--"
	}
	return s.Start.Short() + " - " + s.End.Short()
}

type Booking struct {
	ID             int64
	ServiceID      int64
	AvailabilityID int64
	Status         Status
	Notes          string
	Schedule       Schedule
	OwnerUsername  string
}

// Reservation is the payload of a booking request.
type Reservation struct {
	ServiceID      int64
	AvailabilityID int64
	Notes          string
}

// Filter narrows the admin listing; zero fields are omitted from the query.
type Filter struct {
	ServiceID int64
	Status    Status
	Date      Date
	Username  string
}

// ServiceName resolves a service id against a catalogue, falling back to "Service #<id>".
func ServiceName(services []Service, id int64) string {
	for _, s := range services {
		if s.ID == id {
			return s.Name
		}
	}
	return fmt.Sprintf("Service #%d", id)
}
