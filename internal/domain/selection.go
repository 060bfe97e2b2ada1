package domain

import "time"

// DayStatus is the tagged classification of a single calendar day.
type DayStatus string

const (
	DayStatusPast           DayStatus = "past"
	DayStatusBlockedByOther DayStatus = "blocked_by_other"
	DayStatusOwnReservation DayStatus = "own_reservation"
	DayStatusInRange        DayStatus = "in_range"
	DayStatusRangeEndpoint  DayStatus = "range_endpoint"
	DayStatusFree           DayStatus = "free"
)

// IsSelectable returns true if a day with this status may be clicked.
// Own-reservation days ARE clickable: the server merges overlapping
// reservations of the same borrower.
func (s DayStatus) IsSelectable() bool {
	return s != DayStatusPast && s != DayStatusBlockedByOther
}

// SelectionState represents the state of the date-range state machine.
type SelectionState string

const (
	SelectionEmpty     SelectionState = "empty"
	SelectionStartOnly SelectionState = "start_only"
	SelectionComplete  SelectionState = "complete"
)

// Selection is the in-progress [start, end] date range of a picker session.
// Invariant: start <= end once both are set; exactly zero, one, or two
// endpoints are set at any time. Both endpoints are inclusive.
type Selection struct {
	Start *time.Time
	End   *time.Time
}

// State returns the current state of the selection state machine.
func (s Selection) State() SelectionState {
	switch {
	case s.Start == nil:
		return SelectionEmpty
	case s.End == nil:
		return SelectionStartOnly
	default:
		return SelectionComplete
	}
}

// Restart discards any previous selection and begins a new range at d.
func (s *Selection) Restart(d time.Time) {
	d = DayOf(d)
	s.Start = &d
	s.End = nil
}

// SetEnd completes the range at d. Caller guarantees d >= Start.
func (s *Selection) SetEnd(d time.Time) {
	d = DayOf(d)
	s.End = &d
}

// IsEndpoint returns true if d equals the selected start or end day.
func (s Selection) IsEndpoint(d time.Time) bool {
	d = DayOf(d)
	if s.Start != nil && SameDay(d, *s.Start) {
		return true
	}
	if s.End != nil && SameDay(d, *s.End) {
		return true
	}
	return false
}

// InInterior returns true if d lies strictly between the selected start and
// end. Only a complete selection has an interior.
func (s Selection) InInterior(d time.Time) bool {
	if s.Start == nil || s.End == nil {
		return false
	}
	d = DayOf(d)
	return d.After(*s.Start) && d.Before(*s.End)
}

// DayCount returns the inclusive number of days in a complete selection,
// so a same-day range counts as 1. Returns 0 while incomplete.
func (s Selection) DayCount() int {
	if s.Start == nil || s.End == nil {
		return 0
	}
	return InclusiveDayCount(*s.Start, *s.End)
}
