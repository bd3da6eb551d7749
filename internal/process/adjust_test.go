package process

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anoline/anoline/internal/db/models"
)

func scheduledJob(t *testing.T) *models.GanttJob {
	t.Helper()
	ops := []models.Operation{
		op("Jigging", 2),
		op("Water Rinse (1 or 2)", 1),
		op("Water Rinse (3 or 4)", 1),
		op("Anodising", 20),
		op("Water Rinse (5 or 6)", 1),
		op("Cold Seal 30 min", 30),
		op("Drying", 15),
	}
	jobs, err := Schedule(ops, 1, at(t, "08:00"))
	require.NoError(t, err)
	return &jobs[0]
}

func TestAdjustEvenRinseColdSealB(t *testing.T) {
	job := scheduledJob(t)
	rinse1 := job.WaterRinse1
	rinse3 := job.WaterRinse3
	rinse5 := job.WaterRinse5
	seal := job.ColdSealA

	Adjust(job, RinseSealRouteEvenB, "")

	assert.Equal(t, rinse1, job.WaterRinse2)
	assert.Equal(t, rinse3, job.WaterRinse4)
	assert.Equal(t, rinse5, job.WaterRinse6)
	assert.Equal(t, seal, job.ColdSealB)

	assert.False(t, job.WaterRinse1.Populated())
	assert.False(t, job.WaterRinse3.Populated())
	assert.False(t, job.WaterRinse5.Populated())
	assert.False(t, job.ColdSealA.Populated())

	// Untouched slots stay put.
	assert.True(t, job.Jigging.Populated())
	assert.True(t, job.Anodising1A.Populated())
}

func TestAdjustAnodisingTank(t *testing.T) {
	job := scheduledJob(t)
	anodising := job.Anodising1A
	require.True(t, anodising.Populated())

	Adjust(job, "", "Anodising 2B")

	assert.False(t, job.Anodising1A.Populated())
	assert.Equal(t, anodising, job.Anodising2B)
	assert.False(t, job.Anodising1B.Populated())
	assert.False(t, job.Anodising2A.Populated())
}

func TestAdjustPreservesDurations(t *testing.T) {
	job := scheduledJob(t)
	want := job.Anodising1A.End.Sub(*job.Anodising1A.Start)

	Adjust(job, RinseSealRouteEvenB, "Anodising 1B")

	assert.Equal(t, want, job.Anodising1B.End.Sub(*job.Anodising1B.Start))
}

func TestAdjustNoOp(t *testing.T) {
	job := scheduledJob(t)
	original := *job

	Adjust(job, DefaultRinseSealRoute, DefaultAnodisingTank)
	assert.Equal(t, original, *job)

	Adjust(job, "", "")
	assert.Equal(t, original, *job)

	Adjust(job, "something-else", "Not A Tank")
	assert.Equal(t, original, *job)
}

func TestShiftMovesPopulatedIntervals(t *testing.T) {
	job := scheduledJob(t)
	start := *job.Jigging.Start

	// A half-populated slot must not move.
	lone := at(t, "07:00")
	job.Brightening.Start = &lone

	Shift(job, 45*time.Minute)

	assert.Equal(t, start.Add(45*time.Minute), *job.Jigging.Start)
	assert.False(t, job.WaterRinse2.Populated())
	assert.Equal(t, lone, *job.Brightening.Start)
}

func TestShiftNegative(t *testing.T) {
	job := scheduledJob(t)
	end := *job.Drying.End

	Shift(job, -30*time.Minute)

	assert.Equal(t, end.Add(-30*time.Minute), *job.Drying.End)
}

func TestShiftGroupAction(t *testing.T) {
	// shift(shift(t,a),b) == shift(t,a+b) and shift(t,0) == t
	sequential := scheduledJob(t)
	Shift(sequential, 10*time.Minute)
	Shift(sequential, 25*time.Minute)

	combined := scheduledJob(t)
	Shift(combined, 35*time.Minute)

	assert.Equal(t, combined, sequential)

	unshifted := scheduledJob(t)
	reference := scheduledJob(t)
	Shift(unshifted, 0)
	assert.Equal(t, reference, unshifted)
}

func TestShiftThenAdjustCommute(t *testing.T) {
	shiftFirst := scheduledJob(t)
	Shift(shiftFirst, time.Hour)
	Adjust(shiftFirst, RinseSealRouteEvenB, "Anodising 2A")

	adjustFirst := scheduledJob(t)
	Adjust(adjustFirst, RinseSealRouteEvenB, "Anodising 2A")
	Shift(adjustFirst, time.Hour)

	assert.Equal(t, adjustFirst, shiftFirst)
}
