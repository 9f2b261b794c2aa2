package model

import "fmt"

// BusyInterval is the occupied time range of an existing, non-cancelled
// reservation, in minutes since midnight.
type BusyInterval struct {
	Start    int `db:"start" json:"start"`
	Duration int `db:"duration" json:"duration"`
}

func (b BusyInterval) End() int {
	return b.Start + b.Duration
}

// TimeSlot is a candidate appointment start time in minutes since midnight.
// The service duration implied by the query completes the half-open interval.
type TimeSlot int

// Clock renders the slot as a zero-padded 24-hour HH:MM string.
func (t TimeSlot) Clock() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}
