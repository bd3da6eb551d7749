package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntervalAccessorCoversEverySlot(t *testing.T) {
	job := &GanttJob{}
	seen := make(map[*Interval]Slot, len(Slots))

	for _, slot := range Slots {
		iv := job.Interval(slot)
		require.NotNil(t, iv, slot)
		prev, dup := seen[iv]
		require.False(t, dup, "slots %s and %s share a field", prev, slot)
		seen[iv] = slot
	}

	assert.Nil(t, job.Interval(Slot("not-a-slot")))
}

func TestIntervalPopulated(t *testing.T) {
	now := time.Now()
	later := now.Add(time.Minute)

	assert.False(t, Interval{}.Populated())
	assert.False(t, Interval{Start: &now}.Populated())
	assert.False(t, Interval{End: &later}.Populated())
	assert.True(t, Interval{Start: &now, End: &later}.Populated())
}

func TestFirstPopulated(t *testing.T) {
	job := &GanttJob{}
	_, _, ok := job.FirstPopulated()
	assert.False(t, ok)

	now := time.Now()
	later := now.Add(10 * time.Minute)
	job.Degrease = Interval{Start: &now, End: &later}
	job.Packing = Interval{Start: &later, End: &later}

	slot, iv, ok := job.FirstPopulated()
	require.True(t, ok)
	assert.Equal(t, SlotDegrease, slot)
	assert.Equal(t, now, *iv.Start)
}
