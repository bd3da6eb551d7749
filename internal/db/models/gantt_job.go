package models

import (
	"time"

	"gorm.io/gorm"
)

// Interval is one optional (start, end) pair on a load timeline.
type Interval struct {
	Start *time.Time `json:"start,omitempty"`
	End   *time.Time `json:"end,omitempty"`
}

// Populated reports whether both ends of the interval are set.
func (iv Interval) Populated() bool { return iv.Start != nil && iv.End != nil }

// Slot is a named position on a load timeline, one per physical process
// station. The set is closed: adding a process step means adding a slot
// constant and a GanttJob column, never a free-form map entry.
type Slot string

// Timeline slots, in physical line order.
const (
	SlotPolishing        Slot = "polishing"
	SlotBlasting         Slot = "blasting"
	SlotBrightening      Slot = "brightening"
	SlotOffLineRinse     Slot = "off_line_rinse"
	SlotJigging          Slot = "jigging"
	SlotLoading          Slot = "loading"
	SlotDegrease         Slot = "degrease"
	SlotWaterRinse1      Slot = "water_rinse_1"
	SlotWaterRinse2      Slot = "water_rinse_2"
	SlotEtch             Slot = "etch"
	SlotWaterRinse3      Slot = "water_rinse_3"
	SlotWaterRinse4      Slot = "water_rinse_4"
	SlotDesmut           Slot = "desmut"
	SlotWaterRinse5      Slot = "water_rinse_5"
	SlotWaterRinse6      Slot = "water_rinse_6"
	SlotAnodising1A      Slot = "anodising_1a"
	SlotAnodising1B      Slot = "anodising_1b"
	SlotAnodising2A      Slot = "anodising_2a"
	SlotAnodising2B      Slot = "anodising_2b"
	SlotWaterRinse7      Slot = "water_rinse_7"
	SlotWaterRinse8      Slot = "water_rinse_8"
	SlotGoldDye          Slot = "gold_dye"
	SlotBlackDye         Slot = "black_dye"
	SlotSealing          Slot = "sealing"
	SlotColdSealA        Slot = "cold_seal_a"
	SlotColdSealB        Slot = "cold_seal_b"
	SlotBoilingWaterSeal Slot = "boiling_water_seal"
	SlotUnloading        Slot = "unloading"
	SlotDyeOffline       Slot = "dye_offline"
	SlotHotSeal          Slot = "hot_seal"
	SlotDrying           Slot = "drying"
	SlotUnjigging        Slot = "unjigging"
	SlotPacking          Slot = "packing"
)

// Slots lists every timeline slot in render order. The Gantt read view and
// the timeline shifter iterate this; keep it in sync with the constants.
var Slots = []Slot{
	SlotPolishing,
	SlotBlasting,
	SlotBrightening,
	SlotOffLineRinse,
	SlotJigging,
	SlotLoading,
	SlotDegrease,
	SlotWaterRinse1,
	SlotWaterRinse2,
	SlotEtch,
	SlotWaterRinse3,
	SlotWaterRinse4,
	SlotDesmut,
	SlotWaterRinse5,
	SlotWaterRinse6,
	SlotAnodising1A,
	SlotAnodising1B,
	SlotAnodising2A,
	SlotAnodising2B,
	SlotWaterRinse7,
	SlotWaterRinse8,
	SlotGoldDye,
	SlotBlackDye,
	SlotSealing,
	SlotColdSealA,
	SlotColdSealB,
	SlotBoilingWaterSeal,
	SlotUnloading,
	SlotDyeOffline,
	SlotHotSeal,
	SlotDrying,
	SlotUnjigging,
	SlotPacking,
}

// String returns the string representation of the slot
func (s Slot) String() string { return string(s) }

// GanttJob is the scheduled timeline for one physical load of a component
// job: one optional (start, end) pair per named slot. Slots not used by the
// compiled route stay empty.
type GanttJob struct {
	gorm.Model
	ComponentJobID uint `json:"component_job_id" gorm:"not null;index"`
	OrderID        uint `json:"order_id" gorm:"not null;index"`
	CustomerID     uint `json:"customer_id" gorm:"not null;index"`
	LoadNumber     int  `json:"load_number" gorm:"not null"`

	Polishing        Interval `json:"polishing,omitempty" gorm:"embedded;embeddedPrefix:polishing_"`
	Blasting         Interval `json:"blasting,omitempty" gorm:"embedded;embeddedPrefix:blasting_"`
	Brightening      Interval `json:"brightening,omitempty" gorm:"embedded;embeddedPrefix:brightening_"`
	OffLineRinse     Interval `json:"off_line_rinse,omitempty" gorm:"embedded;embeddedPrefix:off_line_rinse_"`
	Jigging          Interval `json:"jigging,omitempty" gorm:"embedded;embeddedPrefix:jigging_"`
	Loading          Interval `json:"loading,omitempty" gorm:"embedded;embeddedPrefix:loading_"`
	Degrease         Interval `json:"degrease,omitempty" gorm:"embedded;embeddedPrefix:degrease_"`
	WaterRinse1      Interval `json:"water_rinse_1,omitempty" gorm:"embedded;embeddedPrefix:water_rinse_1_"`
	WaterRinse2      Interval `json:"water_rinse_2,omitempty" gorm:"embedded;embeddedPrefix:water_rinse_2_"`
	Etch             Interval `json:"etch,omitempty" gorm:"embedded;embeddedPrefix:etch_"`
	WaterRinse3      Interval `json:"water_rinse_3,omitempty" gorm:"embedded;embeddedPrefix:water_rinse_3_"`
	WaterRinse4      Interval `json:"water_rinse_4,omitempty" gorm:"embedded;embeddedPrefix:water_rinse_4_"`
	Desmut           Interval `json:"desmut,omitempty" gorm:"embedded;embeddedPrefix:desmut_"`
	WaterRinse5      Interval `json:"water_rinse_5,omitempty" gorm:"embedded;embeddedPrefix:water_rinse_5_"`
	WaterRinse6      Interval `json:"water_rinse_6,omitempty" gorm:"embedded;embeddedPrefix:water_rinse_6_"`
	Anodising1A      Interval `json:"anodising_1a,omitempty" gorm:"embedded;embeddedPrefix:anodising_1a_"`
	Anodising1B      Interval `json:"anodising_1b,omitempty" gorm:"embedded;embeddedPrefix:anodising_1b_"`
	Anodising2A      Interval `json:"anodising_2a,omitempty" gorm:"embedded;embeddedPrefix:anodising_2a_"`
	Anodising2B      Interval `json:"anodising_2b,omitempty" gorm:"embedded;embeddedPrefix:anodising_2b_"`
	WaterRinse7      Interval `json:"water_rinse_7,omitempty" gorm:"embedded;embeddedPrefix:water_rinse_7_"`
	WaterRinse8      Interval `json:"water_rinse_8,omitempty" gorm:"embedded;embeddedPrefix:water_rinse_8_"`
	GoldDye          Interval `json:"gold_dye,omitempty" gorm:"embedded;embeddedPrefix:gold_dye_"`
	BlackDye         Interval `json:"black_dye,omitempty" gorm:"embedded;embeddedPrefix:black_dye_"`
	Sealing          Interval `json:"sealing,omitempty" gorm:"embedded;embeddedPrefix:sealing_"`
	ColdSealA        Interval `json:"cold_seal_a,omitempty" gorm:"embedded;embeddedPrefix:cold_seal_a_"`
	ColdSealB        Interval `json:"cold_seal_b,omitempty" gorm:"embedded;embeddedPrefix:cold_seal_b_"`
	BoilingWaterSeal Interval `json:"boiling_water_seal,omitempty" gorm:"embedded;embeddedPrefix:boiling_water_seal_"`
	Unloading        Interval `json:"unloading,omitempty" gorm:"embedded;embeddedPrefix:unloading_"`
	DyeOffline       Interval `json:"dye_offline,omitempty" gorm:"embedded;embeddedPrefix:dye_offline_"`
	HotSeal          Interval `json:"hot_seal,omitempty" gorm:"embedded;embeddedPrefix:hot_seal_"`
	Drying           Interval `json:"drying,omitempty" gorm:"embedded;embeddedPrefix:drying_"`
	Unjigging        Interval `json:"unjigging,omitempty" gorm:"embedded;embeddedPrefix:unjigging_"`
	Packing          Interval `json:"packing,omitempty" gorm:"embedded;embeddedPrefix:packing_"`
}

// Interval returns a pointer to the interval stored in the given slot, or
// nil for a slot this model does not know. Callers iterating Slots always
// get a valid pointer.
func (g *GanttJob) Interval(s Slot) *Interval {
	switch s {
	case SlotPolishing:
		return &g.Polishing
	case SlotBlasting:
		return &g.Blasting
	case SlotBrightening:
		return &g.Brightening
	case SlotOffLineRinse:
		return &g.OffLineRinse
	case SlotJigging:
		return &g.Jigging
	case SlotLoading:
		return &g.Loading
	case SlotDegrease:
		return &g.Degrease
	case SlotWaterRinse1:
		return &g.WaterRinse1
	case SlotWaterRinse2:
		return &g.WaterRinse2
	case SlotEtch:
		return &g.Etch
	case SlotWaterRinse3:
		return &g.WaterRinse3
	case SlotWaterRinse4:
		return &g.WaterRinse4
	case SlotDesmut:
		return &g.Desmut
	case SlotWaterRinse5:
		return &g.WaterRinse5
	case SlotWaterRinse6:
		return &g.WaterRinse6
	case SlotAnodising1A:
		return &g.Anodising1A
	case SlotAnodising1B:
		return &g.Anodising1B
	case SlotAnodising2A:
		return &g.Anodising2A
	case SlotAnodising2B:
		return &g.Anodising2B
	case SlotWaterRinse7:
		return &g.WaterRinse7
	case SlotWaterRinse8:
		return &g.WaterRinse8
	case SlotGoldDye:
		return &g.GoldDye
	case SlotBlackDye:
		return &g.BlackDye
	case SlotSealing:
		return &g.Sealing
	case SlotColdSealA:
		return &g.ColdSealA
	case SlotColdSealB:
		return &g.ColdSealB
	case SlotBoilingWaterSeal:
		return &g.BoilingWaterSeal
	case SlotUnloading:
		return &g.Unloading
	case SlotDyeOffline:
		return &g.DyeOffline
	case SlotHotSeal:
		return &g.HotSeal
	case SlotDrying:
		return &g.Drying
	case SlotUnjigging:
		return &g.Unjigging
	case SlotPacking:
		return &g.Packing
	}
	return nil
}

// FirstPopulated returns the earliest populated interval in line order.
func (g *GanttJob) FirstPopulated() (Slot, Interval, bool) {
	for _, s := range Slots {
		if iv := g.Interval(s); iv.Populated() {
			return s, *iv, true
		}
	}
	return "", Interval{}, false
}
