package services

import "time"

// UnspecifiedEventDate is the sentinel meaning "no event date was given".
// Legacy records persisted the epoch day for this, so the epoch day is the
// wire-compatible representation. Orders carrying it are never locked.
var UnspecifiedEventDate = time.Unix(0, 0).UTC()

// LockDecision is the outcome of consulting the EventDateLockPolicy.
// DaysRemaining is meaningful only when Locked is true.
type LockDecision struct {
	Locked        bool
	DaysRemaining int
}

// EventDateLockPolicy decides whether kitchen-advancing transitions
// (preparing, ready_for_delivery, completed) are currently blocked because
// the order's event date has not arrived yet.
//
// The policy is pure and deterministic given its two inputs. It performs
// no I/O; callers supply "today" so the decision is testable.
type EventDateLockPolicy struct{}

// NewEventDateLockPolicy creates the policy. It carries no state.
func NewEventDateLockPolicy() EventDateLockPolicy {
	return EventDateLockPolicy{}
}

// IsLocked compares the event date against today at day granularity.
//
// Rules:
//   - both inputs are normalized to UTC midnight before comparing;
//   - a zero time or the epoch sentinel means "unspecified" and is never locked;
//   - locked iff the normalized event date is strictly after normalized today;
//   - DaysRemaining is the whole number of days between the normalized dates.
func (EventDateLockPolicy) IsLocked(eventDate, today time.Time) LockDecision {
	if eventDate.IsZero() {
		return LockDecision{}
	}

	event := normalizeToDay(eventDate)
	if event.Equal(normalizeToDay(UnspecifiedEventDate)) {
		return LockDecision{}
	}

	day := normalizeToDay(today)
	if !event.After(day) {
		return LockDecision{}
	}

	return LockDecision{
		Locked:        true,
		DaysRemaining: int(event.Sub(day).Hours() / 24),
	}
}

// normalizeToDay strips the time-of-day component in UTC.
func normalizeToDay(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
