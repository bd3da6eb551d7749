package models

import (
	"time"

	"gorm.io/gorm"
)

// Operation is one step of a compiled process route. Order within the
// route is the route; it must be preserved exactly as compiled.
type Operation struct {
	Name        string   `json:"operation"`
	Duration    float64  `json:"duration"` // minutes
	Description string   `json:"description"`
	Loads       []string `json:"loads"` // per-load annotation ("Load 1", ...)

	// PassThrough marks an operation that takes time on the line but owns
	// no timeline slot (off-line work, shared bays such as dye baths).
	PassThrough bool `json:"pass_through,omitempty"`
}

// LoadIndependentOperation is a step (polishing, blasting) scaled by the
// total number of loads but never tied to a single load's timeline.
type LoadIndependentOperation struct {
	Name     string  `json:"operation"`
	Duration float64 `json:"duration"` // minutes
	Notes    string  `json:"notes"`
}

// ComponentJob is the compiled job plan for one order line: the jig/load
// decomposition plus the ordered operation route. Computed once when the
// order line is committed; immutable except by full regeneration.
type ComponentJob struct {
	gorm.Model
	PartNumber   string `json:"part_number" gorm:"not null;index"`
	OrderLineID  uint   `json:"order_line_id" gorm:"not null;index"`
	OrderID      uint   `json:"order_id" gorm:"not null;index"`
	CustomerID   uint   `json:"customer_id" gorm:"not null;index"`
	CustomerName string `json:"customer_name" gorm:"not null"`
	Quantity     int    `json:"quantity" gorm:"not null"`

	RequiredJigs           int     `json:"required_jigs" gorm:"not null"`
	LoadsRequired          int     `json:"loads_required" gorm:"not null"`
	BuzzbarsRequired       float64 `json:"buzzbars_required" gorm:"not null"`
	UnitsPerLoad           int     `json:"units_per_load" gorm:"not null"`
	QuantityOfFinalLoad    int     `json:"quantity_of_final_load" gorm:"not null"`
	JiggingDurationPerLoad int     `json:"jigging_duration_per_load" gorm:"not null;default:0"`

	// JigDefaultsApplied records that the part's jig type could not be
	// resolved and the documented default capacity was used instead.
	JigDefaultsApplied bool `json:"jig_defaults_applied" gorm:"not null;default:false"`

	Operations                []Operation                `json:"operations" gorm:"type:jsonb;serializer:json"`
	LoadIndependentOperations []LoadIndependentOperation `json:"load_independent_operations,omitempty" gorm:"type:jsonb;serializer:json"`

	CreatedAt time.Time `json:"created_at" gorm:"index"`
}
