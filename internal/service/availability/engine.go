package availability

import (
	"fmt"

	"github.com/injoybeauty/salon-api/internal/model"
	apperrors "github.com/injoybeauty/salon-api/pkg/errors"
)

// Window is the business-hours bound for a day, [Open, Close) in minutes
// since midnight.
type Window struct {
	Open  int
	Close int
}

// ComputeAvailableSlots returns the ordered candidate start times that fit a
// serviceDuration-minute appointment inside the window without overlapping
// any busy interval.
//
// All intervals are half-open [start, start+duration): two intervals overlap
// iff startA < endB && startB < endA, so a slot that merely touches a busy
// interval's endpoint is still bookable, and a slot ending exactly at close
// is accepted.
func ComputeAvailableSlots(window Window, granularity, serviceDuration int, busy []model.BusyInterval) ([]model.TimeSlot, error) {
	if window.Open >= window.Close {
		return nil, apperrors.NewInvalidInput(
			fmt.Sprintf("business window is empty: open %d, close %d", window.Open, window.Close), nil)
	}
	if granularity <= 0 {
		return nil, apperrors.NewInvalidInput("slot granularity must be positive", nil)
	}
	if serviceDuration <= 0 {
		return nil, apperrors.NewInvalidInput("service duration must be positive", nil)
	}

	slots := make([]model.TimeSlot, 0)
	for start := window.Open; start < window.Close; start += granularity {
		end := start + serviceDuration
		if end > window.Close {
			continue
		}
		if overlapsAny(start, end, busy) {
			continue
		}
		slots = append(slots, model.TimeSlot(start))
	}
	return slots, nil
}

func overlapsAny(start, end int, busy []model.BusyInterval) bool {
	for _, b := range busy {
		if start < b.End() && b.Start < end {
			return true
		}
	}
	return false
}
