package entity

import (
	"time"
)

const (
	// Fixed offering window for consultation slots
	slotOpeningHour = 9
	slotClosingHour = 17
	slotInterval    = 30 * time.Minute

	// MinScheduleLead is the minimum gap between submission time and the
	// requested slot. The comparison is strict: a slot exactly one hour
	// ahead is not bookable.
	MinScheduleLead = time.Hour

	// DateLayout is the wire format for calendar dates ("2025-01-15")
	DateLayout = "2006-01-02"

	// SlotLayout is the wire format for time slots ("10:30")
	SlotLayout = "15:04"
)

// SlotGrid returns the full fixed half-hour grid from 9:00 AM through
// 5:00 PM as wire-format strings.
func SlotGrid() []string {
	var slots []string
	day := time.Date(2000, 1, 1, slotOpeningHour, 0, 0, 0, time.UTC)
	end := time.Date(2000, 1, 1, slotClosingHour, 0, 0, 0, time.UTC)
	for !day.After(end) {
		slots = append(slots, day.Format(SlotLayout))
		day = day.Add(slotInterval)
	}
	return slots
}

// CombineDateTime resolves a wire-format date and slot into a single
// instant in the given location.
func CombineDateTime(date, slot string, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, date, loc)
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse(SlotLayout, slot)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, loc), nil
}

// IsSchedulable reports whether an instant satisfies the lead-time rule
// relative to now. Strictly greater than now + MinScheduleLead.
func IsSchedulable(at, now time.Time) bool {
	return at.After(now.Add(MinScheduleLead))
}

// AvailableSlots derives the offered slot list for a date. Slots on the
// requested date that would already violate the lead-time rule are excluded
// up front so the offered list stays consistent with submit-time
// validation; future dates get the full grid.
func AvailableSlots(date string, now time.Time) ([]string, error) {
	loc := now.Location()
	if _, err := time.ParseInLocation(DateLayout, date, loc); err != nil {
		return nil, err
	}

	available := make([]string, 0)
	for _, slot := range SlotGrid() {
		at, err := CombineDateTime(date, slot, loc)
		if err != nil {
			return nil, err
		}
		if IsSchedulable(at, now) {
			available = append(available, slot)
		}
	}
	return available, nil
}
