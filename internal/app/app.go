// Package app owns the whole application state and implements every
// state-mutating operation over it. All collections live in memory with the
// App as the single writer; every mutation is followed by a full-state
// overwrite to the store before the call returns.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/rcase/plumbjobs/internal/catalog"
	"github.com/rcase/plumbjobs/internal/dateutil"
	"github.com/rcase/plumbjobs/internal/model"
	"github.com/rcase/plumbjobs/internal/store"
)

// App holds the in-memory application state and its backing database.
// Construct a fresh App per database; there are no package-level singletons.
type App struct {
	mu      sync.Mutex
	db      *sql.DB
	catalog *catalog.Catalog
	now     func() time.Time

	jobs        []*model.Job
	quickRefs   []*model.QuickReference
	gear        []*model.GearItem
	shopping    []*model.ShoppingItem
	consumables []*model.ConsumableItem

	selection store.Selection
	placing   *placingState
}

// New loads all collections from the database and returns a ready App.
func New(ctx context.Context, db *sql.DB, cat *catalog.Catalog) (*App, error) {
	a := &App{db: db, catalog: cat, now: time.Now}

	var err error
	if a.jobs, err = store.LoadJobs(ctx, db); err != nil {
		return nil, fmt.Errorf("loading jobs: %w", err)
	}
	if a.quickRefs, err = store.LoadQuickRefs(ctx, db); err != nil {
		return nil, fmt.Errorf("loading quick references: %w", err)
	}
	if a.gear, err = store.LoadGear(ctx, db); err != nil {
		return nil, fmt.Errorf("loading gear: %w", err)
	}
	if a.shopping, err = store.LoadShopping(ctx, db); err != nil {
		return nil, fmt.Errorf("loading shopping list: %w", err)
	}
	if a.consumables, err = store.LoadConsumables(ctx, db); err != nil {
		return nil, fmt.Errorf("loading consumables: %w", err)
	}
	if a.selection, err = store.LoadSelection(ctx, db); err != nil {
		return nil, fmt.Errorf("loading selection: %w", err)
	}

	if a.selection.SelectedDay == "" {
		a.selection.SelectedDay = dateutil.ToISODate(a.now())
	}

	return a, nil
}

// Templates returns the material-template catalog in load order.
func (a *App) Templates() []catalog.Template {
	return a.catalog.List()
}

// save persists the full application state. Called after every mutation,
// with a.mu held.
func (a *App) save(ctx context.Context) error {
	if err := store.SaveJobs(ctx, a.db, a.jobs); err != nil {
		return err
	}
	if err := store.SaveQuickRefs(ctx, a.db, a.quickRefs); err != nil {
		return err
	}
	if err := store.SaveGear(ctx, a.db, a.gear); err != nil {
		return err
	}
	if err := store.SaveShopping(ctx, a.db, a.shopping); err != nil {
		return err
	}
	if err := store.SaveConsumables(ctx, a.db, a.consumables); err != nil {
		return err
	}
	return store.SaveSelection(ctx, a.db, a.selection)
}

// findJob returns the live job record for id, or nil. Caller holds a.mu.
func (a *App) findJob(id string) *model.Job {
	for _, j := range a.jobs {
		if j.ID == id {
			return j
		}
	}
	return nil
}

// Selection returns the current selection context.
func (a *App) Selection() store.Selection {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.selection
}

// SetSelection updates the ambient selection context. A selected job must
// exist; the selected day is taken as-is.
func (a *App) SetSelection(ctx context.Context, sel store.Selection) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if sel.SelectedJobID != "" && a.findJob(sel.SelectedJobID) == nil {
		return fmt.Errorf("%w: job %s", ErrNotFound, sel.SelectedJobID)
	}
	if sel.SelectedDay == "" {
		sel.SelectedDay = a.selection.SelectedDay
	}
	a.selection = sel
	return a.save(ctx)
}
