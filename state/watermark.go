package state

import "time"

// OutputTimeFn combines two timestamp holds into one. It must be commutative
// and associative; EarliestTime and LatestTime are the usual choices.
type OutputTimeFn func(a time.Time, b time.Time) time.Time

// EarliestTime keeps the earlier of two timestamps.
func EarliestTime(a time.Time, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

// LatestTime keeps the later of two timestamps.
func LatestTime(a time.Time, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

// WatermarkState tracks an optional combined output-timestamp hold.
type WatermarkState struct {
	outputTimeFn OutputTimeFn
	hold         time.Time
	held         bool
}

// Add folds t into the hold. Once combined, individual contributions can not
// be recovered; the hold is only ever refined further or reset by Clear.
func (s *WatermarkState) Add(t time.Time) {
	if !s.held {
		s.hold = t
		s.held = true
		return
	}
	s.hold = s.outputTimeFn(s.hold, t)
}

// Hold returns the combined hold, or false if nothing was added since
// creation or the last Clear.
func (s *WatermarkState) Hold() (time.Time, bool) {
	return s.hold, s.held
}

func (s *WatermarkState) Clear() {
	s.hold = time.Time{}
	s.held = false
}

func (s *WatermarkState) Empty() bool {
	return !s.held
}
