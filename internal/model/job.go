package model

import (
	"time"

	"github.com/google/uuid"
)

// Job represents one service engagement.
type Job struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Address   string     `json:"address,omitempty"`
	Type      string     `json:"type,omitempty"`
	Status    string     `json:"status"`
	Date      string     `json:"date"` // ISO calendar date (YYYY-MM-DD), the scheduling key
	Notes     string     `json:"notes,omitempty"`
	Materials []Material `json:"materials"`
	Gear      []GearCheckout `json:"gear"`
	Estimate  Estimate   `json:"estimate"`
	CreatedAt time.Time  `json:"created_at"`
}

// Material is one line on a job's material list.
type Material struct {
	ID   string `json:"id"`
	Item string `json:"item"`
	Qty  int    `json:"qty"`
}

// GearCheckout records a gear item checked out to a job. GearID is a weak
// reference: the name/type snapshot stays valid even if the gear item is
// later deleted from the catalog.
type GearCheckout struct {
	ID           string    `json:"id"`
	GearID       string    `json:"gear_id"`
	Name         string    `json:"name"`
	Type         string    `json:"type"`
	Qty          int       `json:"qty"`
	Returned     bool      `json:"returned"`
	CheckedOutAt time.Time `json:"checked_out_at"`
}

// Estimate holds the five coerced estimate inputs. Fields are stored as
// decimal strings, blank until the first calculation; the total is never
// stored, only recomputed.
type Estimate struct {
	LaborHours        string `json:"labor_hours"`
	LaborRate         string `json:"labor_rate"`
	MaterialsSubtotal string `json:"materials_subtotal"`
	MarkupPct         string `json:"markup_pct"`
	TripFee           string `json:"trip_fee"`
}

// Job statuses.
const (
	StatusOpen = "open"
	StatusDone = "done"
	StatusPaid = "paid"
)

// DefaultJobName is substituted when a job is created with a blank name.
const DefaultJobName = "(No name)"

// ValidStatus reports whether s is one of the recognized job statuses.
func ValidStatus(s string) bool {
	return s == StatusOpen || s == StatusDone || s == StatusPaid
}

// NewID generates an opaque unique record identifier.
func NewID() string {
	return uuid.NewString()
}

// Normalize back-fills missing fields on a job loaded from storage so that
// every field is present with a type-correct default. It reports whether the
// job carries a status outside the recognized set, which callers may want to
// warn about.
func (j *Job) Normalize(now time.Time) (unknownStatus bool) {
	if j.ID == "" {
		j.ID = NewID()
	}
	if j.Name == "" {
		j.Name = DefaultJobName
	}
	if j.CreatedAt.IsZero() {
		j.CreatedAt = now
	}
	if j.Status == "" {
		j.Status = StatusOpen
	}
	if j.Date == "" {
		// Older records were not date-indexed; anchor them to their creation day.
		j.Date = j.CreatedAt.Format("2006-01-02")
	}
	if j.Materials == nil {
		j.Materials = []Material{}
	}
	if j.Gear == nil {
		j.Gear = []GearCheckout{}
	}
	for i := range j.Materials {
		if j.Materials[i].ID == "" {
			j.Materials[i].ID = NewID()
		}
		if j.Materials[i].Qty < 1 {
			j.Materials[i].Qty = 1
		}
	}
	return !ValidStatus(j.Status)
}

// Clone returns a deep, independently owned copy of the job. Mutating the
// clone's materials, gear, or estimate never affects the original.
func (j *Job) Clone() *Job {
	c := *j
	c.Materials = make([]Material, len(j.Materials))
	copy(c.Materials, j.Materials)
	c.Gear = make([]GearCheckout, len(j.Gear))
	copy(c.Gear, j.Gear)
	return &c
}
