package store

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/rcase/plumbjobs/internal/model"
)

// Selection is the ambient selection context shared with the presentation
// layer: the currently selected day and job.
type Selection struct {
	SelectedDay   string `json:"selected_day,omitempty"`
	SelectedJobID string `json:"selected_job_id,omitempty"`
}

// LoadJobs reads and normalizes the job collection. Missing or corrupt data
// yields an empty collection; jobs persisted by older versions get their
// missing fields back-filled.
func LoadJobs(ctx context.Context, db *sql.DB) ([]*model.Job, error) {
	var jobs []*model.Job
	if _, err := GetJSON(ctx, db, KeyJobs, &jobs); err != nil {
		return nil, err
	}

	now := time.Now()
	unknown := 0
	for _, j := range jobs {
		if j.Normalize(now) {
			unknown++
		}
	}
	if unknown > 0 {
		slog.Warn("loaded jobs with unrecognized status", "count", unknown)
	}
	return jobs, nil
}

// SaveJobs overwrites the stored job collection.
func SaveJobs(ctx context.Context, db *sql.DB, jobs []*model.Job) error {
	return SetJSON(ctx, db, KeyJobs, jobs)
}

// LoadQuickRefs reads the quick-reference collection, seeding defaults when
// nothing is stored yet.
func LoadQuickRefs(ctx context.Context, db *sql.DB) ([]*model.QuickReference, error) {
	var refs []*model.QuickReference
	found, err := GetJSON(ctx, db, KeyQuickRefs, &refs)
	if err != nil {
		return nil, err
	}
	if !found {
		refs = SeedQuickRefs()
	}
	for _, r := range refs {
		if r.ID == "" {
			r.ID = model.NewID()
		}
	}
	return refs, nil
}

// SaveQuickRefs overwrites the stored quick-reference collection.
func SaveQuickRefs(ctx context.Context, db *sql.DB, refs []*model.QuickReference) error {
	return SetJSON(ctx, db, KeyQuickRefs, refs)
}

// LoadGear reads the gear catalog, seeding defaults when nothing is stored.
func LoadGear(ctx context.Context, db *sql.DB) ([]*model.GearItem, error) {
	var gear []*model.GearItem
	found, err := GetJSON(ctx, db, KeyGear, &gear)
	if err != nil {
		return nil, err
	}
	if !found {
		gear = SeedGear()
	}
	for _, g := range gear {
		if g.ID == "" {
			g.ID = model.NewID()
		}
		if g.Qty < 0 {
			g.Qty = 0
		}
	}
	return gear, nil
}

// SaveGear overwrites the stored gear catalog.
func SaveGear(ctx context.Context, db *sql.DB, gear []*model.GearItem) error {
	return SetJSON(ctx, db, KeyGear, gear)
}

// LoadShopping reads the shopping list.
func LoadShopping(ctx context.Context, db *sql.DB) ([]*model.ShoppingItem, error) {
	var items []*model.ShoppingItem
	if _, err := GetJSON(ctx, db, KeyShopping, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// SaveShopping overwrites the stored shopping list.
func SaveShopping(ctx context.Context, db *sql.DB, items []*model.ShoppingItem) error {
	return SetJSON(ctx, db, KeyShopping, items)
}

// LoadConsumables reads the consumable stock list.
func LoadConsumables(ctx context.Context, db *sql.DB) ([]*model.ConsumableItem, error) {
	var items []*model.ConsumableItem
	if _, err := GetJSON(ctx, db, KeyConsumables, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// SaveConsumables overwrites the stored consumable stock list.
func SaveConsumables(ctx context.Context, db *sql.DB, items []*model.ConsumableItem) error {
	return SetJSON(ctx, db, KeyConsumables, items)
}

// LoadSelection reads the persisted selection context. Missing data yields a
// zero Selection.
func LoadSelection(ctx context.Context, db *sql.DB) (Selection, error) {
	var sel Selection
	if _, err := GetJSON(ctx, db, KeyContext, &sel); err != nil {
		return Selection{}, err
	}
	return sel, nil
}

// SaveSelection overwrites the persisted selection context.
func SaveSelection(ctx context.Context, db *sql.DB, sel Selection) error {
	return SetJSON(ctx, db, KeyContext, sel)
}

// SeedQuickRefs returns the default quick references for a fresh database.
func SeedQuickRefs() []*model.QuickReference {
	now := time.Now()
	return []*model.QuickReference{
		{
			ID:        model.NewID(),
			Title:     "Drain slope rule of thumb",
			Tag:       "drainage",
			Body:      `Minimum slope often 1/4" per foot for smaller pipe. Verify local code & sizing.`,
			CreatedAt: now,
		},
		{
			ID:        model.NewID(),
			Title:     "Gas test reminder",
			Tag:       "gas",
			Body:      "Record test pressure & duration + gauge reading before/after. Verify local requirements.",
			CreatedAt: now,
		},
	}
}

// SeedGear returns the default gear catalog for a fresh database.
func SeedGear() []*model.GearItem {
	return []*model.GearItem{
		{ID: model.NewID(), Name: "Drain machine (50 ft)", Type: model.GearTypeTool, Qty: 1, Tag: "drainage"},
		{ID: model.NewID(), Name: "Press tool", Type: model.GearTypeTool, Qty: 1},
		{ID: model.NewID(), Name: "Test plugs (assorted)", Type: model.GearTypeReusable, Qty: 6},
		{ID: model.NewID(), Name: "Manometer", Type: model.GearTypeTool, Qty: 1, Tag: "gas"},
	}
}
