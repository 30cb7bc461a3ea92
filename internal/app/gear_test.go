package app

import (
	"context"
	"errors"
	"testing"
)

func TestGearCheckoutSnapshot(t *testing.T) {
	a, _ := newTestApp(t)
	ctx := context.Background()

	job := mustCreateJob(t, a, CreateJobInput{Name: "Smith"})
	gear, err := a.CreateGearItem(ctx, "Drain camera", "Tool", "drainage", 1)
	if err != nil {
		t.Fatalf("CreateGearItem: %v", err)
	}

	withGear, err := a.CheckoutGear(ctx, job.ID, gear.ID, 0)
	if err != nil {
		t.Fatalf("CheckoutGear: %v", err)
	}
	if len(withGear.Gear) != 1 {
		t.Fatalf("expected 1 checkout, got %d", len(withGear.Gear))
	}
	co := withGear.Gear[0]
	if co.Name != "Drain camera" || co.Type != "Tool" {
		t.Errorf("expected denormalized snapshot, got %+v", co)
	}
	if co.Qty != 1 {
		t.Errorf("expected qty clamped to 1, got %d", co.Qty)
	}
	if co.Returned {
		t.Error("fresh checkout must not be returned")
	}

	// Renaming the gear item does not rewrite the snapshot.
	if _, err := a.UpdateGearItem(ctx, gear.ID, "Camera (new head)", "Tool", "", 1); err != nil {
		t.Fatalf("UpdateGearItem: %v", err)
	}
	got, _ := a.Job(job.ID)
	if got.Gear[0].Name != "Drain camera" {
		t.Errorf("snapshot rewritten: %q", got.Gear[0].Name)
	}
}

func TestCheckoutSurvivesGearDeletion(t *testing.T) {
	a, _ := newTestApp(t)
	ctx := context.Background()

	job := mustCreateJob(t, a, CreateJobInput{Name: "Smith"})
	gear, _ := a.CreateGearItem(ctx, "Press tool", "Tool", "", 1)
	withGear, _ := a.CheckoutGear(ctx, job.ID, gear.ID, 1)

	if err := a.DeleteGearItem(ctx, gear.ID); err != nil {
		t.Fatalf("DeleteGearItem: %v", err)
	}

	// The checkout record and its snapshot remain; the weak reference just
	// stops resolving.
	got, _ := a.Job(job.ID)
	if len(got.Gear) != 1 || got.Gear[0].Name != "Press tool" {
		t.Errorf("checkout lost after gear deletion: %+v", got.Gear)
	}
	if _, ok := a.FindGearItem(got.Gear[0].GearID); ok {
		t.Error("expected weak reference to stop resolving")
	}

	// Returning still works against the surviving record.
	if err := a.ReturnGear(ctx, job.ID, withGear.Gear[0].ID); err != nil {
		t.Fatalf("ReturnGear: %v", err)
	}
	got, _ = a.Job(job.ID)
	if !got.Gear[0].Returned {
		t.Error("expected checkout marked returned")
	}
}

func TestCheckoutRequiresExistingGear(t *testing.T) {
	a, _ := newTestApp(t)
	ctx := context.Background()

	job := mustCreateJob(t, a, CreateJobInput{Name: "Smith"})
	if _, err := a.CheckoutGear(ctx, job.ID, "missing", 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestQuickRefValidation(t *testing.T) {
	a, _ := newTestApp(t)
	ctx := context.Background()

	if _, err := a.CreateQuickRef(ctx, "Title only", "", ""); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation without body, got %v", err)
	}

	ref, err := a.CreateQuickRef(ctx, "Gas test", "gas", "15 min at 3 psi")
	if err != nil {
		t.Fatalf("CreateQuickRef: %v", err)
	}

	found := a.QuickRefs("GAS")
	if len(found) == 0 {
		t.Fatal("expected case-insensitive tag match")
	}

	if err := a.DeleteQuickRef(ctx, ref.ID); err != nil {
		t.Fatalf("DeleteQuickRef: %v", err)
	}
	if _, err := a.QuickRefText(ref.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestShoppingAndConsumables(t *testing.T) {
	a, _ := newTestApp(t)
	ctx := context.Background()

	item, err := a.AddShoppingItem(ctx, "3/4 copper coupling", 0, "for Smith job")
	if err != nil {
		t.Fatalf("AddShoppingItem: %v", err)
	}
	if item.Qty != 1 {
		t.Errorf("expected qty clamped to 1, got %d", item.Qty)
	}
	if err := a.DeleteShoppingItem(ctx, item.ID); err != nil {
		t.Fatalf("DeleteShoppingItem: %v", err)
	}

	cons, err := a.AddConsumable(ctx, "Solder", 2, "rolls", 3)
	if err != nil {
		t.Fatalf("AddConsumable: %v", err)
	}
	if !cons.Low() {
		t.Error("expected low-stock flag for onHand below min")
	}

	updated, err := a.UpdateConsumable(ctx, cons.ID, "Solder", 5, "rolls", 3)
	if err != nil {
		t.Fatalf("UpdateConsumable: %v", err)
	}
	if updated.Low() {
		t.Error("expected low-stock flag cleared")
	}
}
