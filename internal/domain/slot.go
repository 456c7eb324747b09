package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/peycheff-com/mariia-hub-booking/pkg/types"
)

// DayOfWeek identifies a weekday of a recurring slot, 0 = Sunday .. 6 = Saturday
type DayOfWeek int

const (
	Sunday DayOfWeek = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// Valid returns true if the value is within 0..6
func (d DayOfWeek) Valid() bool {
	return d >= Sunday && d <= Saturday
}

// Weekday converts to the standard library weekday
func (d DayOfWeek) Weekday() time.Weekday {
	return time.Weekday(d)
}

// DayOfWeekFromDate returns the DayOfWeek of a calendar date
func DayOfWeekFromDate(date time.Time) DayOfWeek {
	return DayOfWeek(date.Weekday())
}

func (d DayOfWeek) String() string {
	if !d.Valid() {
		return "invalid"
	}
	return d.Weekday().String()
}

// Location is a bookable resource the platform schedules appointments at.
// Locations are mutually exclusive: one location cannot host two simultaneous
// appointments, so slot overlap is scoped per (day, location).
type Location string

const (
	LocationStudio  Location = "studio"
	LocationOnline  Location = "online"
	LocationFitness Location = "fitness-location"
)

// AllLocations closed set of known location tags
var AllLocations = []Location{LocationStudio, LocationOnline, LocationFitness}

// Valid returns true if the location belongs to the closed set
func (l Location) Valid() bool {
	for _, known := range AllLocations {
		if l == known {
			return true
		}
	}
	return false
}

// ServiceType is the service category of a slot. Informational only:
// it is never part of the overlap logic.
type ServiceType string

const (
	ServiceBeauty  ServiceType = "beauty"
	ServiceFitness ServiceType = "fitness"
)

// Valid returns true if the service type is known
func (s ServiceType) Valid() bool {
	return s == ServiceBeauty || s == ServiceFitness
}

// TimeSlot is a recurring weekly availability slot: a half-open time-of-day
// interval [StartTime, EndTime) on a given weekday at a given location.
type TimeSlot struct {
	ID          uuid.UUID
	DayOfWeek   DayOfWeek
	StartTime   types.TimeString
	EndTime     types.TimeString
	Location    Location
	ServiceType ServiceType

	// IsAvailable marks whether the slot is offered for booking. An
	// unavailable slot still occupies the calendar and participates in
	// overlap detection.
	IsAvailable bool

	// Notes free text, no semantic effect
	Notes *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Overlaps reports whether the slot's interval intersects [start, end)
// using half-open semantics: exact abutment is not an overlap.
func (s *TimeSlot) Overlaps(start, end types.TimeString) bool {
	return start.Before(s.EndTime) && s.StartTime.Before(end)
}
