package process

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/anoline/anoline/internal/db/models"
)

// Compile derives the ordered operation route for one order line from the
// part's treatment specification and its load plan. It is deterministic and
// performs no I/O; compiling the same inputs twice yields identical routes.
//
// The second return value lists the load-independent operations (polishing,
// blasting) that scale with the total number of loads but never occupy a
// timeline slot.
func Compile(part *models.Part, plan LoadPlan) ([]models.Operation, []models.LoadIndependentOperation, error) {
	if err := part.Validate(); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidSpec, err)
	}

	ops := make([]models.Operation, 0, 24)
	add := func(name string, duration float64, extra string) {
		ops = append(ops, newOperation(name, duration, plan.LoadsRequired, extra, false))
	}
	// Dye baths are scheduled as pass-through: any name, including dyes
	// outside the fixed taxonomy, advances the cursor without a slot.
	addDye := func(name string, duration float64) {
		ops = append(ops, newOperation(name, duration, plan.LoadsRequired, "", true))
	}

	add("Jigging", float64(plan.JiggingDurationPerLoad), "")

	if part.StripEtchSelected() {
		add("Strip Etch", *part.StripEtch, "")
	}

	if part.AnodisingSelected() {
		add("Loading", 1, "")
		add("Degrease", 10, "")
		add("Water Rinse (1 or 2)", 1, "")

		if part.DoubleAndEtch {
			add("Caustic Etch", 0.25, "")
			add("Water Rinse (1 or 2)", 1, "")
			add("Flash Anodise", 5, "16V")
			add("Water Rinse (3 or 4)", 1, "")
			add("Caustic Etch", 3, "")
		}

		if part.EtchSelected() {
			add("Caustic Etch", *part.Etch, "")
			add("Water Rinse (2 or 1)", 1, "")
			add("Desmut", 1, "")
			add("Water Rinse (3 or 4)", 1, "")
		}

		voltage := "N/A"
		if part.Voltage != nil {
			voltage = strconv.FormatFloat(*part.Voltage, 'f', -1, 64)
		}
		add("Anodising", float64(*part.AnodisingDuration), voltage+"V")
		add("Water Rinse (5 or 6)", 1, "")

		unloadingDone, err := appendDyeAndSeal(part, add, addDye)
		if err != nil {
			return nil, nil, err
		}
		if !unloadingDone {
			add("Unloading", 1, "")
		}
	} else {
		// No anodic branch: the minimal route goes straight to unload and
		// post-processing, skipping all dye/seal handling.
		add("Unloading", 1, "")
	}

	add("Drying", 15, "")
	add("Unjigging", float64(plan.UnjiggingDuration()), "")
	add("Packing", float64(plan.PackingDuration()), "")

	return ops, loadIndependentOperations(part, plan), nil
}

// appendDyeAndSeal emits the dye and sealing operations for an anodised
// part. It returns whether an Unloading step was already emitted.
func appendDyeAndSeal(part *models.Part, add func(string, float64, string), addDye func(string, float64)) (bool, error) {
	dyeName := UndyedDyeName
	if part.DyeSelected() {
		dyeName = CanonicalDyeName(*part.Dye)
	}

	switch {
	case part.DyeSelected() && CategorizeDye(dyeName) == DyeOffLine:
		// Off-line dye: unload, dye away from the line, hot seal, back.
		add("Unloading", 1, "")
		addDye(dyeName, 20)
		add("Off-line rinse", 1, "")
		add("Hot Seal", 30, "")
		add("Off-line rinse", 1, "")
		return true, nil

	case part.DyeSelected() && CategorizeDye(dyeName) == DyeInLine:
		addDye(dyeName, 20)
		add("Water Rinse (7)", 1, "")
		sealName, sealDuration, err := sealingOperation(part)
		if err != nil {
			return false, err
		}
		add(sealName, sealDuration, "")
		add("Water Rinse (8)", 1, "")
		return false, nil

	case !part.DyeSelected():
		if part.Sealing != nil && *part.Sealing == "Hot Seal" {
			add("Unloading", 1, "")
			add("Hot Seal", 30, "")
			add("Off-line rinse", 1, "")
			return true, nil
		}
		sealName, sealDuration, err := sealingOperation(part)
		if err != nil {
			return false, err
		}
		add(sealName, sealDuration, "")
		add("Water Rinse (8)", 1, "")
		return false, nil
	}

	// Dye selected but categorized as none ("No", "Default (un-dyed)"):
	// nothing to emit, the closing Unloading still follows.
	return false, nil
}

// sealingOperation resolves the part's sealing choice into an operation
// name and duration. The 30 minute rate applies to "30 min" and boiling
// seals, everything else runs 15 minutes.
func sealingOperation(part *models.Part) (string, float64, error) {
	if !part.SealingSelected() {
		return "", 0, fmt.Errorf("%w: part %s requires a sealing operation but none is selected", ErrInvalidSpec, part.PartNumber)
	}
	name := *part.Sealing
	duration := 15.0
	if strings.Contains(name, "30 min") || strings.Contains(name, "Boiling") {
		duration = 30
	}
	return name, duration, nil
}

func loadIndependentOperations(part *models.Part, plan LoadPlan) []models.LoadIndependentOperation {
	var out []models.LoadIndependentOperation
	notes := fmt.Sprintf("DD/MM & Initial(s) & Quantity: %d", plan.Quantity)

	if part.PolishingSelected() {
		for _, step := range part.Polishing {
			out = append(out, models.LoadIndependentOperation{
				Name: fmt.Sprintf("Polishing; Step %d, Equipment: %s, Grit: %s, Compound: %s",
					step.StepNumber, step.Equipment, step.Grit, step.Compound),
				Duration: float64(4 * plan.TotalJiggingDuration()),
				Notes:    notes,
			})
		}
	}

	if part.BlastingSelected() {
		out = append(out, models.LoadIndependentOperation{
			Name:     fmt.Sprintf("Blasting (%s)", *part.Blasting),
			Duration: float64(2 * plan.TotalJiggingDuration()),
			Notes:    notes,
		})
	}

	return out
}

func newOperation(name string, duration float64, loads int, extra string, passThrough bool) models.Operation {
	description := strings.ToLower(name)
	if extra != "" {
		description += " (" + extra + ")"
	}

	labels := make([]string, loads)
	for i := range labels {
		labels[i] = fmt.Sprintf("Load %d", i+1)
	}

	return models.Operation{
		Name:        name,
		Duration:    duration,
		Description: description,
		Loads:       labels,
		PassThrough: passThrough,
	}
}
