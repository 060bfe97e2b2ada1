package domain

import "time"

// PickerSession owns the reservation-picker state for one tool and one
// acting user: the availability snapshot fetched when the session opened,
// the calendar cursor, and the in-progress date-range selection. All of it
// is discarded when the session closes, expires, or the range is confirmed.
type PickerSession struct {
	ID       string
	ToolID   int64
	ToolName string
	OwnerID  int64

	UserID   int64
	UserName string

	// Today is captured once when the session opens so every evaluation
	// inside the session is deterministic.
	Today time.Time

	Cursor    CalendarCursor
	Selection Selection

	// Availability is fetched exactly once per session; month navigation
	// never refetches. Degraded marks a failed fetch: the snapshot is empty
	// and all non-past days are treated as selectable.
	Availability []AvailabilityRecord
	Degraded     bool

	// ValidationError is the inline range-conflict message. It is cleared
	// on the next click attempt before the transition is re-evaluated.
	ValidationError string

	// Submitting blocks further interaction while a confirmation is in
	// flight against the external API.
	Submitting bool

	CreatedAt    time.Time
	LastActiveAt time.Time
}

// Evaluator returns the conflict evaluator over the session's snapshot.
func (s *PickerSession) Evaluator() *Evaluator {
	return NewEvaluator(s.Availability, s.Today, s.UserID)
}

// Touch records activity so the session survives the expiry sweep.
func (s *PickerSession) Touch(now time.Time) {
	s.LastActiveAt = now
}

// IsExpired returns true once the session has been idle longer than ttl.
func (s *PickerSession) IsExpired(now time.Time, ttl time.Duration) bool {
	return now.Sub(s.LastActiveAt) > ttl
}

// Clone returns a deep copy safe to hand out as a read snapshot.
func (s *PickerSession) Clone() *PickerSession {
	c := *s
	if s.Selection.Start != nil {
		start := *s.Selection.Start
		c.Selection.Start = &start
	}
	if s.Selection.End != nil {
		end := *s.Selection.End
		c.Selection.End = &end
	}
	if s.Availability != nil {
		c.Availability = make([]AvailabilityRecord, len(s.Availability))
		copy(c.Availability, s.Availability)
	}
	return &c
}
