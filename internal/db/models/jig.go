package models

import (
	"fmt"

	"gorm.io/gorm"
)

// Jig describes one jig type in inventory and its loading capacity.
type Jig struct {
	gorm.Model
	JigType    string  `json:"jig_type" gorm:"not null;uniqueIndex"`
	GrossStock int     `json:"gross_stock" gorm:"not null;default:1"`
	MaxUPJ     int     `json:"max_upj" gorm:"not null"` // units per jig
	MaxJPL     int     `json:"max_jpl" gorm:"not null"` // jigs per load
	MPJ        int     `json:"mpj" gorm:"not null"`     // minutes to jig one unit
	Image      *string `json:"image,omitempty"`
}

// Validate ensures that the jig data is valid
func (j *Jig) Validate() error {
	if j.JigType == "" {
		return fmt.Errorf("jig type cannot be empty")
	}
	if j.MaxUPJ <= 0 || j.MaxJPL <= 0 || j.MPJ <= 0 {
		return fmt.Errorf("jig capacity values must be positive")
	}
	return nil
}

// BeforeCreate is a GORM hook that runs before creating a new jig
func (j *Jig) BeforeCreate(_ *gorm.DB) error {
	return j.Validate()
}
