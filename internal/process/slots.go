package process

import (
	"github.com/anoline/anoline/internal/db/models"
)

// slotByOperation maps scheduled operation names to their timeline slot.
// Keys are post-normalization names; the compiler's placeholder names never
// reach this table.
var slotByOperation = map[string]models.Slot{
	"Jigging":            models.SlotJigging,
	"Loading":            models.SlotLoading,
	"Degrease":           models.SlotDegrease,
	"Water Rinse 1":      models.SlotWaterRinse1,
	"Water Rinse 2":      models.SlotWaterRinse2,
	"Water Rinse 3":      models.SlotWaterRinse3,
	"Water Rinse 4":      models.SlotWaterRinse4,
	"Water Rinse 5":      models.SlotWaterRinse5,
	"Water Rinse 6":      models.SlotWaterRinse6,
	"Water Rinse 7":      models.SlotWaterRinse7,
	"Water Rinse 8":      models.SlotWaterRinse8,
	"Caustic Etch":       models.SlotEtch,
	"Desmut":             models.SlotDesmut,
	"Anodising 1A":       models.SlotAnodising1A,
	"Anodising 1B":       models.SlotAnodising1B,
	"Anodising 2A":       models.SlotAnodising2A,
	"Anodising 2B":       models.SlotAnodising2B,
	"Cold Seal A":        models.SlotColdSealA,
	"Cold Seal B":        models.SlotColdSealB,
	"Boiling Water Seal": models.SlotBoilingWaterSeal,
	"Hot Seal":           models.SlotHotSeal,
	"Unloading":          models.SlotUnloading,
	"Drying":             models.SlotDrying,
	"Unjigging":          models.SlotUnjigging,
	"Packing":            models.SlotPacking,
	"Brightening":        models.SlotBrightening,
	"Blasting":           models.SlotBlasting,
	"Polishing":          models.SlotPolishing,
}

// passThroughOperations happen away from the line or share a bay: they
// advance the scheduling cursor but occupy no timeline slot.
var passThroughOperations = map[string]struct{}{
	"Strip Etch":     {},
	"Flash Anodise":  {},
	"Off-line rinse": {},
}

// slotFor resolves an operation name to its timeline slot.
func slotFor(name string) (models.Slot, bool) {
	slot, ok := slotByOperation[name]
	return slot, ok
}

// isPassThrough reports whether an operation advances the cursor without
// occupying a slot. The compiler flags dye baths explicitly; the fixed set
// and the dye taxonomy cover routes persisted before that flag existed.
func isPassThrough(op models.Operation) bool {
	if op.PassThrough {
		return true
	}
	if _, ok := passThroughOperations[op.Name]; ok {
		return true
	}
	return isDyeBath(op.Name)
}

// normalizedNames rewrites the compiler's placeholder operation names to
// concrete line stations before scheduling.
var normalizedNames = map[string]string{
	"Cold Seal 30 min":     "Cold Seal A",
	"Cold Seal 15 min":     "Cold Seal A",
	"Anodising":            "Anodising 1A", // default tank
	"Water Rinse (1 or 2)": "Water Rinse 1",
	"Water Rinse (2 or 1)": "Water Rinse 1",
	"Water Rinse (3 or 4)": "Water Rinse 3",
	"Water Rinse (5 or 6)": "Water Rinse 5",
	"Water Rinse (7)":      "Water Rinse 7",
	"Water Rinse (8)":      "Water Rinse 8",
}

// Normalize returns a copy of the route with placeholder names rewritten to
// concrete stations. The compiled route itself stays canonical.
func Normalize(ops []models.Operation) []models.Operation {
	out := make([]models.Operation, len(ops))
	copy(out, ops)
	for i := range out {
		if name, ok := normalizedNames[out[i].Name]; ok {
			out[i].Name = name
		}
	}
	return out
}
