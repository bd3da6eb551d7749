package process

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anoline/anoline/internal/db/models"
)

func op(name string, duration float64) models.Operation {
	return models.Operation{Name: name, Duration: duration}
}

func at(t *testing.T, clock string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, "2026-08-29T"+clock+":00Z")
	require.NoError(t, err)
	return parsed
}

func TestScheduleSingleLoad(t *testing.T) {
	ops := []models.Operation{
		op("Jigging", 2),
		op("Loading", 1),
		op("Degrease", 10),
	}

	jobs, err := Schedule(ops, 1, at(t, "08:00"))
	require.NoError(t, err)
	require.Len(t, jobs, 1)

	job := jobs[0]
	assert.Equal(t, 1, job.LoadNumber)
	assert.Equal(t, at(t, "08:00"), *job.Jigging.Start)
	assert.Equal(t, at(t, "08:02"), *job.Jigging.End)
	assert.Equal(t, at(t, "08:02"), *job.Loading.Start)
	assert.Equal(t, at(t, "08:03"), *job.Loading.End)
	assert.Equal(t, at(t, "08:03"), *job.Degrease.Start)
	assert.Equal(t, at(t, "08:13"), *job.Degrease.End)
}

func TestSchedulePassThroughAdvancesCursor(t *testing.T) {
	// Strip Etch and the Black dye bath own no slot but still take time.
	ops := []models.Operation{
		op("Jigging", 2),
		op("Strip Etch", 2.5),
		op("Black", 20),
		op("Drying", 15),
	}

	jobs, err := Schedule(ops, 1, at(t, "08:00"))
	require.NoError(t, err)

	job := jobs[0]
	assert.Equal(t, at(t, "08:02"), *job.Jigging.End)
	// 2 + 2.5 + 20 minutes after start
	assert.Equal(t, at(t, "08:24").Add(30*time.Second), *job.Drying.Start)
	assert.False(t, job.Etch.Populated())
	assert.False(t, job.BlackDye.Populated())
}

func TestScheduleNormalizesNames(t *testing.T) {
	ops := []models.Operation{
		op("Water Rinse (1 or 2)", 1),
		op("Anodising", 20),
		op("Water Rinse (5 or 6)", 1),
		op("Cold Seal 30 min", 30),
		op("Water Rinse (8)", 1),
	}

	jobs, err := Schedule(ops, 1, at(t, "09:00"))
	require.NoError(t, err)

	job := jobs[0]
	assert.True(t, job.WaterRinse1.Populated())
	assert.True(t, job.Anodising1A.Populated())
	assert.True(t, job.WaterRinse5.Populated())
	assert.True(t, job.ColdSealA.Populated())
	assert.True(t, job.WaterRinse8.Populated())
	assert.False(t, job.Anodising1B.Populated())

	// The input route is untouched.
	assert.Equal(t, "Anodising", ops[1].Name)
}

func TestScheduleSequentialLoads(t *testing.T) {
	ops := []models.Operation{
		op("Jigging", 2),
		op("Drying", 15),
	}

	jobs, err := Schedule(ops, 3, at(t, "08:00"))
	require.NoError(t, err)
	require.Len(t, jobs, 3)

	for i, job := range jobs {
		assert.Equal(t, i+1, job.LoadNumber)
	}

	// Each load starts where the previous one ended.
	assert.Equal(t, *jobs[0].Drying.End, *jobs[1].Jigging.Start)
	assert.Equal(t, *jobs[1].Drying.End, *jobs[2].Jigging.Start)
	assert.Equal(t, at(t, "08:17"), *jobs[1].Jigging.Start)
	assert.Equal(t, at(t, "08:34"), *jobs[2].Jigging.Start)
}

func TestScheduleCompiledRoute(t *testing.T) {
	part := anodisedPart()
	plan := mustPlan(t, 47)
	ops, _, err := Compile(part, plan)
	require.NoError(t, err)

	jobs, err := Schedule(ops, plan.LoadsRequired, at(t, "08:00"))
	require.NoError(t, err)
	require.Len(t, jobs, 1)

	job := jobs[0]
	assert.Equal(t, at(t, "08:00"), *job.Jigging.Start)
	assert.Equal(t, at(t, "08:20"), *job.Jigging.End)
	assert.True(t, job.Anodising1A.Populated())
	assert.True(t, job.ColdSealA.Populated())
	assert.True(t, job.Packing.Populated())
	// The in-line dye bath sits between water rinse 5 and water rinse 7
	// without a slot of its own, leaving a 20 minute gap.
	assert.Equal(t, 20*time.Minute, job.WaterRinse7.Start.Sub(*job.WaterRinse5.End))
	assert.Equal(t, *job.WaterRinse7.End, *job.ColdSealA.Start)
}

func TestScheduleOffTaxonomyDyeRoute(t *testing.T) {
	// An off-line dye outside the fixed taxonomy must schedule end to end.
	part := anodisedPart()
	part.Etch = nil
	part.Sealing = nil
	part.Dye = strPtr("Lilac")
	plan := mustPlan(t, 47)
	ops, _, err := Compile(part, plan)
	require.NoError(t, err)

	jobs, err := Schedule(ops, plan.LoadsRequired, at(t, "08:00"))
	require.NoError(t, err)
	require.Len(t, jobs, 1)

	job := jobs[0]
	assert.True(t, job.Unloading.Populated())
	assert.True(t, job.HotSeal.Populated())
	// The dye bath (20) and off-line rinse (1) sit between unload and seal.
	assert.Equal(t, 21*time.Minute, job.HotSeal.Start.Sub(*job.Unloading.End))
}

func TestScheduleZeroDurationOperation(t *testing.T) {
	ops := []models.Operation{
		op("Jigging", 0),
		op("Drying", 15),
	}

	jobs, err := Schedule(ops, 1, at(t, "08:00"))
	require.NoError(t, err)

	job := jobs[0]
	assert.True(t, job.Jigging.Populated())
	assert.Equal(t, *job.Jigging.Start, *job.Jigging.End)
	assert.Equal(t, at(t, "08:00"), *job.Drying.Start)
}

func TestScheduleUnknownOperation(t *testing.T) {
	ops := []models.Operation{
		op("Jigging", 2),
		op("Mystery Step", 5),
	}

	_, err := Schedule(ops, 1, at(t, "08:00"))
	assert.ErrorIs(t, err, ErrUnknownOperationSlot)
	assert.Contains(t, err.Error(), "Mystery Step")
}

func TestScheduleInvalidInputs(t *testing.T) {
	ops := []models.Operation{op("Jigging", 2)}

	_, err := Schedule(ops, 0, at(t, "08:00"))
	assert.ErrorIs(t, err, ErrInvalidCapacity)

	_, err = Schedule(nil, 1, at(t, "08:00"))
	assert.ErrorIs(t, err, ErrInvalidSpec)
}
