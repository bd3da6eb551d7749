package process

import (
	"fmt"
	"time"

	"github.com/anoline/anoline/internal/db/models"
)

// Schedule walks the compiled route once per load and produces one timeline
// per load. Loads run strictly one after another on the single physical
// line: load k+1 starts where load k's last operation ended.
//
// Operation names are normalized on a copy before scheduling. Every mapped
// operation records a (start, end) interval in its slot; pass-through
// operations advance the cursor without occupying timeline space. Any name
// that is neither fails with ErrUnknownOperationSlot before any timeline is
// produced.
func Schedule(ops []models.Operation, loadsRequired int, start time.Time) ([]models.GanttJob, error) {
	if loadsRequired < 1 {
		return nil, fmt.Errorf("%w: loads required must be at least 1, got %d", ErrInvalidCapacity, loadsRequired)
	}
	if len(ops) == 0 {
		return nil, fmt.Errorf("%w: empty operation route", ErrInvalidSpec)
	}

	normalized := Normalize(ops)
	for _, op := range normalized {
		if _, ok := slotFor(op.Name); !ok && !isPassThrough(op) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownOperationSlot, op.Name)
		}
	}

	jobs := make([]models.GanttJob, loadsRequired)
	cursor := start

	for i := range jobs {
		jobs[i].LoadNumber = i + 1

		for _, op := range normalized {
			duration := minutesToDuration(op.Duration)

			slot, ok := slotFor(op.Name)
			if !ok {
				cursor = cursor.Add(duration)
				continue
			}

			opStart := cursor
			cursor = cursor.Add(duration)
			opEnd := cursor

			interval := jobs[i].Interval(slot)
			interval.Start = &opStart
			interval.End = &opEnd
		}
	}

	return jobs, nil
}

func minutesToDuration(minutes float64) time.Duration {
	return time.Duration(minutes * float64(time.Minute))
}
