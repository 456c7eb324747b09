package domain

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// AllStatuses closed set of booking statuses. There is no transition matrix:
// any status may follow any other (admin actions are authoritative).
var AllStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
}

// Valid returns true if the status belongs to the closed set
func (s BookingStatus) Valid() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Booking is a client appointment on an absolute date-time. Bookings are
// independent of the recurring TimeSlot model: slots are advisory display
// data, the booking record is the source of truth for the calendar.
type Booking struct {
	ID          uuid.UUID
	BookingDate time.Time
	Status      BookingStatus

	// ServiceRef references the booked service in the catalog
	ServiceRef  string
	ServiceType ServiceType
	Location    Location

	ClientName  string
	ClientEmail string
	ClientPhone *string

	AmountPaid float64
	Currency   string

	Notes      *string
	AdminNotes *string

	CancelledAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsActive returns true if the booking still occupies the calendar
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	StartDate        *time.Time     // Начало периода (включительно)
	EndDate          *time.Time     // Конец периода (включительно)
	Status           *BookingStatus // Фильтр по статусу (опционально)
	Location         *Location      // Фильтр по локации (опционально)
	IncludeCancelled bool           // Включать ли отмененные бронирования
}
