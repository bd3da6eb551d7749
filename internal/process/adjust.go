package process

import (
	"time"

	"github.com/anoline/anoline/internal/db/models"
)

// Route adjustment choices. Anything outside these values is a no-op.
const (
	// DefaultRinseSealRoute keeps the odd rinse lane and Cold Seal A.
	DefaultRinseSealRoute = "default"
	// RinseSealRouteEvenB moves rinses 1/3/5 to 2/4/6 and Cold Seal A to B.
	RinseSealRouteEvenB = "even_rinse_cold_seal_b"
	// DefaultAnodisingTank is where the scheduler places anodising.
	DefaultAnodisingTank = "Anodising 1A"
)

// anodisingTankSlots maps an alternate tank choice to its timeline slot.
// "Anodising 1A" is absent on purpose: it is the default and a no-op.
var anodisingTankSlots = map[string]models.Slot{
	"Anodising 1B": models.SlotAnodising1B,
	"Anodising 2A": models.SlotAnodising2A,
	"Anodising 2B": models.SlotAnodising2B,
}

// Adjust relabels which slot holds each already-computed interval to
// reflect an alternate rinse/seal lane or anodising tank. Durations never
// change; intervals only move between slots. Adjust must run strictly after
// scheduling, never interleaved with it.
func Adjust(job *models.GanttJob, rinseSealRoute, anodisingTank string) {
	if rinseSealRoute == RinseSealRouteEvenB {
		moveInterval(job, models.SlotWaterRinse1, models.SlotWaterRinse2)
		moveInterval(job, models.SlotWaterRinse3, models.SlotWaterRinse4)
		moveInterval(job, models.SlotWaterRinse5, models.SlotWaterRinse6)
		moveInterval(job, models.SlotColdSealA, models.SlotColdSealB)
	}

	if slot, ok := anodisingTankSlots[anodisingTank]; ok {
		moveInterval(job, models.SlotAnodising1A, slot)
	}
}

// moveInterval copies the interval from one slot to another and empties the
// source, whether or not the source was populated.
func moveInterval(job *models.GanttJob, from, to models.Slot) {
	src := job.Interval(from)
	dst := job.Interval(to)
	*dst = *src
	*src = models.Interval{}
}

// Shift rigidly translates every populated interval of the timeline by
// delta. Slots with only one side populated are left untouched; such a
// state should not occur in a valid timeline. Sequencing is not recomputed
// and no cross-job overlap check happens here.
func Shift(job *models.GanttJob, delta time.Duration) {
	for _, slot := range models.Slots {
		interval := job.Interval(slot)
		if !interval.Populated() {
			continue
		}
		start := interval.Start.Add(delta)
		end := interval.End.Add(delta)
		interval.Start = &start
		interval.End = &end
	}
}
