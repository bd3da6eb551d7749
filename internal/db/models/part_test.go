package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }

func TestPartValidate(t *testing.T) {
	valid := Part{
		PartNumber:        "AN-100",
		AnodisingDuration: intPtr(20),
		Voltage:           floatPtr(15),
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name string
		part Part
	}{
		{"empty part number", Part{}},
		{"anodising too short", Part{PartNumber: "X", AnodisingDuration: intPtr(4)}},
		{"anodising too long", Part{PartNumber: "X", AnodisingDuration: intPtr(91)}},
		{"voltage too low", Part{PartNumber: "X", Voltage: floatPtr(12.0)}},
		{"voltage too high", Part{PartNumber: "X", Voltage: floatPtr(20.5)}},
		{"strip etch off menu", Part{PartNumber: "X", StripEtch: floatPtr(2.0)}},
		{"negative brightening", Part{PartNumber: "X", Brightening: floatPtr(-1)}},
		{"strip etch with anodising", Part{PartNumber: "X", StripEtch: floatPtr(1.0), AnodisingDuration: intPtr(20)}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, tc.part.Validate())
		})
	}
}

func TestPartSelectionHelpers(t *testing.T) {
	part := Part{PartNumber: "AN-100"}
	assert.False(t, part.AnodisingSelected())
	assert.False(t, part.DyeSelected())
	assert.False(t, part.SealingSelected())

	part.AnodisingDuration = intPtr(20)
	part.Dye = strPtr("Black")
	part.Sealing = strPtr("Cold Seal 30 min")
	assert.True(t, part.AnodisingSelected())
	assert.True(t, part.DyeSelected())
	assert.True(t, part.SealingSelected())

	// Empty strings count as unselected.
	part.Dye = strPtr("")
	part.Sealing = strPtr("")
	assert.False(t, part.DyeSelected())
	assert.False(t, part.SealingSelected())
}

func TestJigValidate(t *testing.T) {
	valid := Jig{JigType: "Frame A", GrossStock: 10, MaxUPJ: 5, MaxJPL: 10, MPJ: 2}
	assert.NoError(t, valid.Validate())

	invalid := Jig{JigType: "", MaxUPJ: 5, MaxJPL: 10, MPJ: 2}
	assert.Error(t, invalid.Validate())

	invalid = Jig{JigType: "Frame A", MaxUPJ: 0, MaxJPL: 10, MPJ: 2}
	assert.Error(t, invalid.Validate())
}
