package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anoline/anoline/internal/db/models"
)

func TestTimelineViewRendersPopulatedSlotsInOrder(t *testing.T) {
	start := time.Date(2026, 8, 29, 8, 0, 0, 0, time.UTC)
	mid := start.Add(2 * time.Minute)
	end := mid.Add(10 * time.Minute)

	load := &models.GanttJob{
		ComponentJobID: 7,
		OrderID:        3,
		CustomerID:     9,
		LoadNumber:     2,
		Jigging:        models.Interval{Start: &start, End: &mid},
		Degrease:       models.Interval{Start: &mid, End: &end},
		// Half-populated slots never render.
		Drying: models.Interval{Start: &end},
	}

	view := timelineView(load)

	assert.Equal(t, uint(7), view.ComponentJobID)
	assert.Equal(t, 2, view.LoadNumber)
	require.Len(t, view.Intervals, 2)
	assert.Equal(t, "jigging", view.Intervals[0].Slot)
	assert.Equal(t, "2026-08-29T08:00:00Z", view.Intervals[0].Start)
	assert.Equal(t, "2026-08-29T08:02:00Z", view.Intervals[0].End)
	assert.Equal(t, "degrease", view.Intervals[1].Slot)
}

func TestGanttDataSlotVocabularyOrder(t *testing.T) {
	// The read view advertises the full closed slot vocabulary in render
	// order so the chart can lay out rows before any load exists.
	var names []string
	for _, s := range models.Slots {
		names = append(names, s.String())
	}
	assert.Equal(t, "polishing", names[0])
	assert.Equal(t, "packing", names[len(names)-1])
	assert.Len(t, names, 33)
}
