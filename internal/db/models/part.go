package models

import (
	"fmt"

	"gorm.io/gorm"
)

// PolishingStep is one entry in a part's polishing schedule.
type PolishingStep struct {
	StepNumber int    `json:"step_number"`
	Equipment  string `json:"equipment"`
	Grit       string `json:"grit"`
	Compound   string `json:"compound"`
}

// Part is the chemical/mechanical treatment specification for one
// manufacturable part. A treatment is selected iff its field is non-nil,
// so a selection can never disagree with its value.
type Part struct {
	PartNumber  string `json:"part_number" gorm:"primaryKey"`
	CustomerID  uint   `json:"customer_id" gorm:"not null;index"`
	Description string `json:"description" gorm:"not null"`

	AnodisingDuration *int            `json:"anodising_duration,omitempty"`
	Voltage           *float64        `json:"voltage,omitempty"`
	Etch              *float64        `json:"etch,omitempty"`
	StripEtch         *float64        `json:"strip_etch,omitempty"`
	Sealing           *string         `json:"sealing,omitempty"`
	Dye               *string         `json:"dye,omitempty"`
	DoubleAndEtch     bool            `json:"double_and_etch" gorm:"not null;default:false"`
	Brightening       *float64        `json:"brightening,omitempty"`
	Blasting          *string         `json:"blasting,omitempty"`
	Polishing         []PolishingStep `json:"polishing,omitempty" gorm:"type:jsonb;serializer:json"`

	JigType   *string `json:"jig_type,omitempty" gorm:"index"`
	CustomUPJ *int    `json:"custom_upj,omitempty"`
	CustomJPL *int    `json:"custom_jpl,omitempty"`
	CustomMPJ *int    `json:"custom_mpj,omitempty"`

	Image *string `json:"image,omitempty"`
}

// AnodisingSelected reports whether the part goes through the anodic line.
func (p *Part) AnodisingSelected() bool { return p.AnodisingDuration != nil }

// EtchSelected reports whether a caustic etch is selected.
func (p *Part) EtchSelected() bool { return p.Etch != nil }

// StripEtchSelected reports whether the fixed strip etch is selected.
func (p *Part) StripEtchSelected() bool { return p.StripEtch != nil }

// SealingSelected reports whether a sealing operation is selected.
func (p *Part) SealingSelected() bool { return p.Sealing != nil && *p.Sealing != "" }

// DyeSelected reports whether a dye bath is selected.
func (p *Part) DyeSelected() bool { return p.Dye != nil && *p.Dye != "" }

// BlastingSelected reports whether grit blasting is selected.
func (p *Part) BlastingSelected() bool { return p.Blasting != nil }

// PolishingSelected reports whether the part has polishing steps.
func (p *Part) PolishingSelected() bool { return len(p.Polishing) > 0 }

// Validate ensures the treatment values are inside the ranges the line can run.
func (p *Part) Validate() error {
	if p.PartNumber == "" {
		return fmt.Errorf("part number cannot be empty")
	}
	if p.AnodisingDuration != nil && (*p.AnodisingDuration < 5 || *p.AnodisingDuration > 90) {
		return fmt.Errorf("anodising duration %d outside 5-90 minutes", *p.AnodisingDuration)
	}
	if p.Voltage != nil && (*p.Voltage < 12.5 || *p.Voltage > 20) {
		return fmt.Errorf("voltage %.1f outside 12.5-20V", *p.Voltage)
	}
	if p.StripEtch != nil && *p.StripEtch != 1.0 && *p.StripEtch != 2.5 {
		return fmt.Errorf("strip etch must be 1.0 or 2.5 minutes, got %.2f", *p.StripEtch)
	}
	if p.Brightening != nil && *p.Brightening < 0 {
		return fmt.Errorf("brightening duration cannot be negative")
	}
	// The strip variants replace the anodic branch entirely.
	if p.StripEtchSelected() && p.AnodisingSelected() {
		return fmt.Errorf("strip etch and anodising are mutually exclusive")
	}
	return nil
}

// BeforeCreate is a GORM hook that runs before creating a new part
func (p *Part) BeforeCreate(_ *gorm.DB) error {
	return p.Validate()
}
