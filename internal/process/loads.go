package process

import (
	"fmt"
	"math"

	"github.com/anoline/anoline/internal/db/models"
)

// Capacity is the jigging capacity used to decompose an order line into
// physical loads.
type Capacity struct {
	UPJ int // units per jig
	JPL int // jigs per load
	MPJ int // minutes to jig one unit
}

// DefaultCapacity applies when a part's jig type cannot be resolved from
// inventory.
var DefaultCapacity = Capacity{UPJ: 5, JPL: 10, MPJ: 2}

// ResolveCapacity determines the capacity for a part. A part's custom
// values override its jig type's values field-by-field; with no jig the
// defaults apply. The second return value reports whether any default was
// used, so the caller can surface the degraded path.
func ResolveCapacity(part *models.Part, jig *models.Jig) (Capacity, bool) {
	cap := DefaultCapacity
	usedDefaults := false

	if jig != nil {
		cap = Capacity{UPJ: jig.MaxUPJ, JPL: jig.MaxJPL, MPJ: jig.MPJ}
	}

	if part.CustomUPJ != nil {
		cap.UPJ = *part.CustomUPJ
	} else if jig == nil {
		usedDefaults = true
	}
	if part.CustomJPL != nil {
		cap.JPL = *part.CustomJPL
	} else if jig == nil {
		usedDefaults = true
	}
	if part.CustomMPJ != nil {
		cap.MPJ = *part.CustomMPJ
	} else if jig == nil {
		usedDefaults = true
	}

	return cap, usedDefaults
}

// LoadPlan is the jig/load decomposition for one order line.
type LoadPlan struct {
	Quantity               int
	Capacity               Capacity
	RequiredJigs           int
	BuzzbarsRequired       float64
	LoadsRequired          int
	UnitsPerLoad           int
	QuantityOfFinalLoad    int
	JiggingDurationPerLoad int // minutes
}

// Decompose splits an order line quantity into jigs and loads.
func Decompose(quantity int, cap Capacity) (LoadPlan, error) {
	if quantity <= 0 {
		return LoadPlan{}, fmt.Errorf("%w: quantity must be positive, got %d", ErrInvalidCapacity, quantity)
	}
	if cap.UPJ <= 0 || cap.JPL <= 0 || cap.MPJ <= 0 {
		return LoadPlan{}, fmt.Errorf("%w: UPJ=%d JPL=%d MPJ=%d", ErrInvalidCapacity, cap.UPJ, cap.JPL, cap.MPJ)
	}

	requiredJigs := int(math.Ceil(float64(quantity) / float64(cap.UPJ)))
	loadsRequired := int(math.Ceil(float64(requiredJigs) / float64(cap.JPL)))
	unitsPerLoad := cap.UPJ * cap.JPL

	quantityOfFinalLoad := quantity
	if loadsRequired > 1 {
		quantityOfFinalLoad = quantity - unitsPerLoad*(loadsRequired-1)
	}

	return LoadPlan{
		Quantity:               quantity,
		Capacity:               cap,
		RequiredJigs:           requiredJigs,
		BuzzbarsRequired:       float64(requiredJigs) / float64(cap.JPL),
		LoadsRequired:          loadsRequired,
		UnitsPerLoad:           unitsPerLoad,
		QuantityOfFinalLoad:    quantityOfFinalLoad,
		JiggingDurationPerLoad: int(math.Ceil(float64(cap.MPJ) * float64(requiredJigs) / float64(loadsRequired))),
	}, nil
}

// TotalJiggingDuration is the jigging time summed over every load.
func (p LoadPlan) TotalJiggingDuration() int {
	return p.JiggingDurationPerLoad * p.LoadsRequired
}

// UnjiggingDuration is the per-load unjigging time in minutes.
func (p LoadPlan) UnjiggingDuration() int {
	return int(math.Ceil(2.5 * float64(p.RequiredJigs) / float64(p.LoadsRequired)))
}

// PackingDuration is the per-load packing time in minutes.
func (p LoadPlan) PackingDuration() int {
	return int(math.Ceil(float64(p.Capacity.MPJ) / 3 * float64(p.RequiredJigs) / float64(p.LoadsRequired)))
}
