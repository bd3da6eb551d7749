package process

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anoline/anoline/internal/db/models"
)

func TestDecomposeSingleLoad(t *testing.T) {
	plan, err := Decompose(47, Capacity{UPJ: 5, JPL: 10, MPJ: 2})
	require.NoError(t, err)

	assert.Equal(t, 10, plan.RequiredJigs)
	assert.Equal(t, 1, plan.LoadsRequired)
	assert.Equal(t, 50, plan.UnitsPerLoad)
	assert.Equal(t, 47, plan.QuantityOfFinalLoad)
	assert.Equal(t, 20, plan.JiggingDurationPerLoad)
	assert.Equal(t, 1.0, plan.BuzzbarsRequired)
}

func TestDecomposeMultipleLoads(t *testing.T) {
	plan, err := Decompose(123, Capacity{UPJ: 5, JPL: 10, MPJ: 2})
	require.NoError(t, err)

	assert.Equal(t, 25, plan.RequiredJigs)
	assert.Equal(t, 3, plan.LoadsRequired)
	assert.Equal(t, 50, plan.UnitsPerLoad)
	assert.Equal(t, 23, plan.QuantityOfFinalLoad)
	assert.Equal(t, 2.5, plan.BuzzbarsRequired)
}

func TestDecomposeQuantityFitsLoadBounds(t *testing.T) {
	// units_per_load*(loads-1) < q <= units_per_load*loads must hold for
	// any positive inputs.
	capacities := []Capacity{
		{UPJ: 5, JPL: 10, MPJ: 2},
		{UPJ: 1, JPL: 1, MPJ: 1},
		{UPJ: 7, JPL: 3, MPJ: 4},
	}
	for _, cap := range capacities {
		for _, q := range []int{1, 2, 20, 50, 51, 123, 1000} {
			plan, err := Decompose(q, cap)
			require.NoError(t, err)

			assert.Less(t, plan.UnitsPerLoad*(plan.LoadsRequired-1), q)
			assert.LessOrEqual(t, q, plan.UnitsPerLoad*plan.LoadsRequired)
			if plan.LoadsRequired > 1 {
				assert.Equal(t, q-plan.UnitsPerLoad*(plan.LoadsRequired-1), plan.QuantityOfFinalLoad)
			} else {
				assert.Equal(t, q, plan.QuantityOfFinalLoad)
			}
		}
	}
}

func TestDecomposeInvalidInputs(t *testing.T) {
	_, err := Decompose(0, Capacity{UPJ: 5, JPL: 10, MPJ: 2})
	assert.ErrorIs(t, err, ErrInvalidCapacity)

	_, err = Decompose(-4, Capacity{UPJ: 5, JPL: 10, MPJ: 2})
	assert.ErrorIs(t, err, ErrInvalidCapacity)

	_, err = Decompose(10, Capacity{UPJ: 0, JPL: 10, MPJ: 2})
	assert.ErrorIs(t, err, ErrInvalidCapacity)

	_, err = Decompose(10, Capacity{UPJ: 5, JPL: -1, MPJ: 2})
	assert.ErrorIs(t, err, ErrInvalidCapacity)

	_, err = Decompose(10, Capacity{UPJ: 5, JPL: 10, MPJ: 0})
	assert.ErrorIs(t, err, ErrInvalidCapacity)
}

func TestDecomposeDerivedDurations(t *testing.T) {
	plan, err := Decompose(123, Capacity{UPJ: 5, JPL: 10, MPJ: 2})
	require.NoError(t, err)

	// ceil(2*25/3) = 17 per load
	assert.Equal(t, 17, plan.JiggingDurationPerLoad)
	assert.Equal(t, 51, plan.TotalJiggingDuration())
	// ceil(2.5*25/3) = 21
	assert.Equal(t, 21, plan.UnjiggingDuration())
	// ceil(2/3*25/3) = 6
	assert.Equal(t, 6, plan.PackingDuration())
}

func TestResolveCapacityFromJig(t *testing.T) {
	part := &models.Part{PartNumber: "AN-100"}
	jig := &models.Jig{JigType: "Frame A", MaxUPJ: 8, MaxJPL: 6, MPJ: 3}

	cap, usedDefaults := ResolveCapacity(part, jig)
	assert.False(t, usedDefaults)
	assert.Equal(t, Capacity{UPJ: 8, JPL: 6, MPJ: 3}, cap)
}

func TestResolveCapacityCustomOverrides(t *testing.T) {
	upj := 12
	part := &models.Part{PartNumber: "AN-100", CustomUPJ: &upj}
	jig := &models.Jig{JigType: "Frame A", MaxUPJ: 8, MaxJPL: 6, MPJ: 3}

	cap, usedDefaults := ResolveCapacity(part, jig)
	assert.False(t, usedDefaults)
	assert.Equal(t, Capacity{UPJ: 12, JPL: 6, MPJ: 3}, cap)
}

func TestResolveCapacityDefaultsWithoutJig(t *testing.T) {
	part := &models.Part{PartNumber: "AN-100"}

	cap, usedDefaults := ResolveCapacity(part, nil)
	assert.True(t, usedDefaults)
	assert.Equal(t, DefaultCapacity, cap)
}

func TestResolveCapacityFullCustomWithoutJig(t *testing.T) {
	upj, jpl, mpj := 4, 5, 6
	part := &models.Part{PartNumber: "AN-100", CustomUPJ: &upj, CustomJPL: &jpl, CustomMPJ: &mpj}

	cap, usedDefaults := ResolveCapacity(part, nil)
	assert.False(t, usedDefaults)
	assert.Equal(t, Capacity{UPJ: 4, JPL: 5, MPJ: 6}, cap)
}
