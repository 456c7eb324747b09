package domain

import (
	"github.com/google/uuid"

	"github.com/peycheff-com/mariia-hub-booking/pkg/types"
)

// SlotCandidate is a slot about to be created or updated, checked against
// the existing schedule before any write is attempted.
// StartTime < EndTime is the caller's responsibility (validated at the
// usecase layer); the checker itself does not re-validate the range.
type SlotCandidate struct {
	DayOfWeek DayOfWeek
	StartTime types.TimeString
	EndTime   types.TimeString
	Location  Location
}

// ConflictResult is the outcome of a conflict check. A detected conflict is
// a normal decision outcome, not an error.
type ConflictResult struct {
	HasConflict      bool
	ConflictingSlots []*TimeSlot
}

// CheckSlotConflict decides whether inserting the candidate would violate the
// non-overlap invariant: within one (DayOfWeek, Location) pair no two slots'
// [StartTime, EndTime) intervals may overlap.
//
// excludeID ignores one existing slot, used when a slot is edited against
// itself: re-submitting a slot unchanged must not conflict with its own row.
//
// The check is a pure read-only predicate over the passed snapshot. It is
// order-independent and scoped per (day, location): slots at different
// locations or on different days never conflict. Slots marked unavailable
// still occupy the calendar and are considered.
func CheckSlotConflict(existing []*TimeSlot, candidate SlotCandidate, excludeID *uuid.UUID) ConflictResult {
	var conflicting []*TimeSlot

	for _, slot := range existing {
		if slot.DayOfWeek != candidate.DayOfWeek || slot.Location != candidate.Location {
			continue
		}
		if excludeID != nil && slot.ID == *excludeID {
			continue
		}
		if slot.Overlaps(candidate.StartTime, candidate.EndTime) {
			conflicting = append(conflicting, slot)
		}
	}

	return ConflictResult{
		HasConflict:      len(conflicting) > 0,
		ConflictingSlots: conflicting,
	}
}
