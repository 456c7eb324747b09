package domain

import (
	"sort"
	"time"
)

// WeekSchedule is a day-keyed snapshot of recurring slots, built once from a
// repository read and queried in memory. It owns no caching or invalidation:
// it reflects the collection it was constructed from and nothing else.
type WeekSchedule struct {
	byDay map[DayOfWeek][]*TimeSlot
}

// NewWeekSchedule groups the slots by weekday
func NewWeekSchedule(slots []*TimeSlot) *WeekSchedule {
	byDay := make(map[DayOfWeek][]*TimeSlot, 7)
	for _, slot := range slots {
		byDay[slot.DayOfWeek] = append(byDay[slot.DayOfWeek], slot)
	}
	return &WeekSchedule{byDay: byDay}
}

// SlotsForDay returns all recurring slots for the weekday. Order is not
// guaranteed; callers sort by start time for display.
func (w *WeekSchedule) SlotsForDay(day DayOfWeek) []*TimeSlot {
	return w.byDay[day]
}

// SortSlotsByStart sorts slots in place by start time, earliest first
func SortSlotsByStart(slots []*TimeSlot) {
	sort.Slice(slots, func(i, j int) bool {
		return slots[i].StartTime.Before(slots[j].StartTime)
	})
}

// BookingsForDate returns bookings whose BookingDate falls on the calendar
// date (exact day match, not day-of-week)
func BookingsForDate(bookings []*Booking, date time.Time) []*Booking {
	result := make([]*Booking, 0)
	for _, b := range bookings {
		if sameDay(b.BookingDate, date) {
			result = append(result, b)
		}
	}
	return result
}

// GroupBookingsByDate groups bookings by calendar date (formatted as
// YYYY-MM-DD) for calendar-style display
func GroupBookingsByDate(bookings []*Booking) map[string][]*Booking {
	grouped := make(map[string][]*Booking)
	for _, b := range bookings {
		key := b.BookingDate.Format(DateFormat)
		grouped[key] = append(grouped[key], b)
	}
	return grouped
}

// DaySummary per-day booking rollup for the admin calendar
type DaySummary struct {
	Date     string // YYYY-MM-DD
	Total    int
	ByStatus map[BookingStatus]int
}

// SummarizeBookingsByDate rolls up bookings per calendar day, sorted by date
func SummarizeBookingsByDate(bookings []*Booking) []DaySummary {
	grouped := GroupBookingsByDate(bookings)

	summaries := make([]DaySummary, 0, len(grouped))
	for date, dayBookings := range grouped {
		summary := DaySummary{
			Date:     date,
			Total:    len(dayBookings),
			ByStatus: make(map[BookingStatus]int),
		}
		for _, b := range dayBookings {
			summary.ByStatus[b.Status]++
		}
		summaries = append(summaries, summary)
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Date < summaries[j].Date
	})

	return summaries
}

// sameDay reports whether two timestamps fall on the same calendar day
func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
