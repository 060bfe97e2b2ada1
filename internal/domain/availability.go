package domain

import "time"

// AvailabilityRecord is a per-day availability marker for one tool, produced
// by the external marketplace API. One record conceptually exists per day
// that has a reservation overlapping it, not necessarily per calendar day.
// Records are read-only input, fetched once per picker session.
type AvailabilityRecord struct {
	CheckDate        time.Time // normalized to day granularity
	IsAvailable      bool
	ReservationStart *time.Time
	ReservationEnd   *time.Time
	BorrowerID       *int64
	BorrowerName     *string
}

// Window returns the reservation window of the record clamped to full days:
// start at 00:00:00, end at 23:59:59 so the end day is fully inclusive.
// ok is false when the record carries no reservation window.
func (r *AvailabilityRecord) Window() (start, end time.Time, ok bool) {
	if r.ReservationStart == nil || r.ReservationEnd == nil {
		return time.Time{}, time.Time{}, false
	}
	s := DayOf(*r.ReservationStart)
	e := DayOf(*r.ReservationEnd).Add(24*time.Hour - time.Second)
	return s, e, true
}

// CoversDay returns true if the record's reservation window contains the day.
func (r *AvailabilityRecord) CoversDay(d time.Time) bool {
	start, end, ok := r.Window()
	if !ok {
		return false
	}
	d = DayOf(d)
	return !d.Before(start) && !d.After(end)
}

// BelongsTo returns true if the record's reservation is owned by the given
// user. Ownership is keyed by the stable borrower id; the display name is
// kept on the record for presentation only.
func (r *AvailabilityRecord) BelongsTo(userID int64) bool {
	return r.BorrowerID != nil && *r.BorrowerID == userID
}

// Evaluator classifies calendar days against a loaded availability snapshot
// for one acting user. "Today" is injected so the evaluator is deterministic.
type Evaluator struct {
	records []AvailabilityRecord
	today   time.Time
	userID  int64
}

// NewEvaluator creates an evaluator over the given snapshot. The records may
// be nil or empty, in which case every non-past day evaluates as free.
func NewEvaluator(records []AvailabilityRecord, today time.Time, userID int64) *Evaluator {
	return &Evaluator{
		records: records,
		today:   DayOf(today),
		userID:  userID,
	}
}

// IsPast returns true if the day lies before the injected today.
// Past days are never selectable regardless of availability.
func (e *Evaluator) IsPast(d time.Time) bool {
	return DayOf(d).Before(e.today)
}

// MatchingRecords returns every unavailable record whose reservation window
// contains the day.
func (e *Evaluator) MatchingRecords(d time.Time) []AvailabilityRecord {
	var matched []AvailabilityRecord
	for i := range e.records {
		rec := &e.records[i]
		if rec.IsAvailable {
			continue
		}
		if rec.CoversDay(d) {
			matched = append(matched, *rec)
		}
	}
	return matched
}

// directDateRecord returns the record whose CheckDate equals the day, if any.
// This is the secondary signal checked in addition to range-matching records.
func (e *Evaluator) directDateRecord(d time.Time) *AvailabilityRecord {
	d = DayOf(d)
	for i := range e.records {
		if SameDay(e.records[i].CheckDate, d) {
			return &e.records[i]
		}
	}
	return nil
}

// IsBlocked returns true if the day is taken by somebody else's reservation:
// any matching record (or the direct-date record) that is not available and
// is not owned by the acting user.
func (e *Evaluator) IsBlocked(d time.Time) bool {
	for _, rec := range e.MatchingRecords(d) {
		if !rec.BelongsTo(e.userID) {
			return true
		}
	}
	if rec := e.directDateRecord(d); rec != nil && !rec.IsAvailable && !rec.BelongsTo(e.userID) {
		return true
	}
	return false
}

// IsOwnReservation returns true if the day is covered by the acting user's
// own reservation and by nobody else's. Blocked-by-other wins when a day is
// covered by both, keeping the two classifications mutually exclusive.
func (e *Evaluator) IsOwnReservation(d time.Time) bool {
	if e.IsBlocked(d) {
		return false
	}
	for _, rec := range e.MatchingRecords(d) {
		if rec.BelongsTo(e.userID) {
			return true
		}
	}
	return false
}

// BlockedBy returns the display name of the borrower whose reservation
// blocks the day, for the calendar tooltip. Empty when the day is not
// blocked or the name is unknown.
func (e *Evaluator) BlockedBy(d time.Time) string {
	for _, rec := range e.MatchingRecords(d) {
		if !rec.BelongsTo(e.userID) && rec.BorrowerName != nil {
			return *rec.BorrowerName
		}
	}
	if rec := e.directDateRecord(d); rec != nil && !rec.IsAvailable && !rec.BelongsTo(e.userID) && rec.BorrowerName != nil {
		return *rec.BorrowerName
	}
	return ""
}

// Classify computes the single day status used for rendering and
// click-eligibility. Precedence, highest wins:
// past > blocked-by-other > own-reservation > in-selected-range >
// range-endpoint > free.
func (e *Evaluator) Classify(d time.Time, sel Selection) DayStatus {
	switch {
	case e.IsPast(d):
		return DayStatusPast
	case e.IsBlocked(d):
		return DayStatusBlockedByOther
	case e.IsOwnReservation(d):
		return DayStatusOwnReservation
	case sel.InInterior(d):
		return DayStatusInRange
	case sel.IsEndpoint(d):
		return DayStatusRangeEndpoint
	default:
		return DayStatusFree
	}
}
