package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/rcase/plumbjobs/internal/model"
)

// Shopping returns the shopping list, newest first.
func (a *App) Shopping() []*model.ShoppingItem {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]*model.ShoppingItem, 0, len(a.shopping))
	for _, s := range a.shopping {
		copied := *s
		out = append(out, &copied)
	}
	return out
}

// AddShoppingItem adds a line to the shopping list. Item is required;
// quantity is clamped to at least 1.
func (a *App) AddShoppingItem(ctx context.Context, item string, qty int, note string) (*model.ShoppingItem, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	item = strings.TrimSpace(item)
	if item == "" {
		return nil, fmt.Errorf("%w: item required", ErrValidation)
	}
	if qty < 1 {
		qty = 1
	}

	entry := &model.ShoppingItem{
		ID:        model.NewID(),
		Item:      item,
		Qty:       qty,
		Note:      strings.TrimSpace(note),
		CreatedAt: a.now(),
	}
	a.shopping = append([]*model.ShoppingItem{entry}, a.shopping...)

	if err := a.save(ctx); err != nil {
		return nil, err
	}
	copied := *entry
	return &copied, nil
}

// UpdateShoppingItem edits a shopping line.
func (a *App) UpdateShoppingItem(ctx context.Context, id, item string, qty int, note string) (*model.ShoppingItem, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	item = strings.TrimSpace(item)
	if item == "" {
		return nil, fmt.Errorf("%w: item required", ErrValidation)
	}
	if qty < 1 {
		qty = 1
	}

	for _, s := range a.shopping {
		if s.ID == id {
			s.Item = item
			s.Qty = qty
			s.Note = strings.TrimSpace(note)
			if err := a.save(ctx); err != nil {
				return nil, err
			}
			copied := *s
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("%w: shopping item %s", ErrNotFound, id)
}

// DeleteShoppingItem removes a shopping line.
func (a *App) DeleteShoppingItem(ctx context.Context, id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	for i, s := range a.shopping {
		if s.ID == id {
			a.shopping = append(a.shopping[:i], a.shopping[i+1:]...)
			return a.save(ctx)
		}
	}
	return fmt.Errorf("%w: shopping item %s", ErrNotFound, id)
}

// Consumables returns the consumable stock list.
func (a *App) Consumables() []*model.ConsumableItem {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]*model.ConsumableItem, 0, len(a.consumables))
	for _, c := range a.consumables {
		copied := *c
		out = append(out, &copied)
	}
	return out
}

// AddConsumable adds a consumable stock item. Item is required; counts are
// clamped to at least 0.
func (a *App) AddConsumable(ctx context.Context, item string, onHand int, unit string, min int) (*model.ConsumableItem, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	item = strings.TrimSpace(item)
	if item == "" {
		return nil, fmt.Errorf("%w: item required", ErrValidation)
	}
	if onHand < 0 {
		onHand = 0
	}
	if min < 0 {
		min = 0
	}

	entry := &model.ConsumableItem{
		ID:     model.NewID(),
		Item:   item,
		OnHand: onHand,
		Unit:   strings.TrimSpace(unit),
		Min:    min,
	}
	a.consumables = append([]*model.ConsumableItem{entry}, a.consumables...)

	if err := a.save(ctx); err != nil {
		return nil, err
	}
	copied := *entry
	return &copied, nil
}

// UpdateConsumable edits a consumable stock item.
func (a *App) UpdateConsumable(ctx context.Context, id, item string, onHand int, unit string, min int) (*model.ConsumableItem, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	item = strings.TrimSpace(item)
	if item == "" {
		return nil, fmt.Errorf("%w: item required", ErrValidation)
	}
	if onHand < 0 {
		onHand = 0
	}
	if min < 0 {
		min = 0
	}

	for _, c := range a.consumables {
		if c.ID == id {
			c.Item = item
			c.OnHand = onHand
			c.Unit = strings.TrimSpace(unit)
			c.Min = min
			if err := a.save(ctx); err != nil {
				return nil, err
			}
			copied := *c
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("%w: consumable %s", ErrNotFound, id)
}

// DeleteConsumable removes a consumable stock item.
func (a *App) DeleteConsumable(ctx context.Context, id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	for i, c := range a.consumables {
		if c.ID == id {
			a.consumables = append(a.consumables[:i], a.consumables[i+1:]...)
			return a.save(ctx)
		}
	}
	return fmt.Errorf("%w: consumable %s", ErrNotFound, id)
}
