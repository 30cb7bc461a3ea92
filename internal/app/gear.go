package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/rcase/plumbjobs/internal/model"
	"github.com/rcase/plumbjobs/internal/store"
)

// Gear returns the gear catalog, optionally filtered by a case-insensitive
// free-text query over name, type, and tag.
func (a *App) Gear(query string) []*model.GearItem {
	a.mu.Lock()
	defer a.mu.Unlock()

	query = strings.ToLower(strings.TrimSpace(query))

	var out []*model.GearItem
	for _, g := range a.gear {
		if query != "" {
			hay := strings.ToLower(g.Name + " " + g.Type + " " + g.Tag)
			if !strings.Contains(hay, query) {
				continue
			}
		}
		copied := *g
		out = append(out, &copied)
	}
	return out
}

// CreateGearItem adds a gear item to the catalog. Name is required; quantity
// is clamped to at least 0.
func (a *App) CreateGearItem(ctx context.Context, name, gearType, tag string, qty int) (*model.GearItem, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: gear name required", ErrValidation)
	}
	if qty < 0 {
		qty = 0
	}
	gearType = strings.TrimSpace(gearType)
	if gearType == "" {
		gearType = model.GearTypeTool
	}

	item := &model.GearItem{
		ID:   model.NewID(),
		Name: name,
		Type: gearType,
		Qty:  qty,
		Tag:  strings.TrimSpace(tag),
	}
	a.gear = append([]*model.GearItem{item}, a.gear...)

	if err := a.save(ctx); err != nil {
		return nil, err
	}
	copied := *item
	return &copied, nil
}

// UpdateGearItem edits a gear item.
func (a *App) UpdateGearItem(ctx context.Context, id, name, gearType, tag string, qty int) (*model.GearItem, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: gear name required", ErrValidation)
	}
	if qty < 0 {
		qty = 0
	}

	for _, g := range a.gear {
		if g.ID == id {
			g.Name = name
			g.Type = strings.TrimSpace(gearType)
			g.Tag = strings.TrimSpace(tag)
			g.Qty = qty
			if err := a.save(ctx); err != nil {
				return nil, err
			}
			copied := *g
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("%w: gear %s", ErrNotFound, id)
}

// DeleteGearItem removes a gear item from the catalog and drops its stored
// photo. Checkout records on jobs keep their name/type snapshots; only the
// weak gearId reference goes stale.
func (a *App) DeleteGearItem(ctx context.Context, id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	for i, g := range a.gear {
		if g.ID == id {
			a.gear = append(a.gear[:i], a.gear[i+1:]...)
			if err := store.DeleteGearPhoto(ctx, a.db, id); err != nil {
				return err
			}
			return a.save(ctx)
		}
	}
	return fmt.Errorf("%w: gear %s", ErrNotFound, id)
}

// FindGearItem resolves a weak gear reference. The boolean reports whether
// the item still exists in the catalog.
func (a *App) FindGearItem(id string) (*model.GearItem, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, g := range a.gear {
		if g.ID == id {
			copied := *g
			return &copied, true
		}
	}
	return nil, false
}

// CheckoutGear records a gear checkout onto a job, snapshotting the gear's
// name and type by value at checkout time.
func (a *App) CheckoutGear(ctx context.Context, jobID, gearID string, qty int) (*model.Job, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	job := a.findJob(jobID)
	if job == nil {
		return nil, fmt.Errorf("%w: job %s", ErrNotFound, jobID)
	}

	var gear *model.GearItem
	for _, g := range a.gear {
		if g.ID == gearID {
			gear = g
			break
		}
	}
	if gear == nil {
		return nil, fmt.Errorf("%w: gear %s", ErrNotFound, gearID)
	}
	if qty < 1 {
		qty = 1
	}

	checkout := model.GearCheckout{
		ID:           model.NewID(),
		GearID:       gear.ID,
		Name:         gear.Name,
		Type:         gear.Type,
		Qty:          qty,
		CheckedOutAt: a.now(),
	}
	job.Gear = append([]model.GearCheckout{checkout}, job.Gear...)

	if err := a.save(ctx); err != nil {
		return nil, err
	}
	return job.Clone(), nil
}

// ReturnGear marks a checkout record as returned.
func (a *App) ReturnGear(ctx context.Context, jobID, checkoutID string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	job := a.findJob(jobID)
	if job == nil {
		return fmt.Errorf("%w: job %s", ErrNotFound, jobID)
	}

	for i := range job.Gear {
		if job.Gear[i].ID == checkoutID {
			job.Gear[i].Returned = true
			return a.save(ctx)
		}
	}
	return fmt.Errorf("%w: checkout %s", ErrNotFound, checkoutID)
}
