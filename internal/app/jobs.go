package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/rcase/plumbjobs/internal/estimate"
	"github.com/rcase/plumbjobs/internal/export"
	"github.com/rcase/plumbjobs/internal/model"
)

// CreateJobInput carries the user-entered fields for a new job.
type CreateJobInput struct {
	Name    string
	Address string
	Type    string
	Status  string
	Date    string
	Notes   string
}

// CreateJob creates a job and selects it. At least one of name and address is
// required; a blank name becomes the placeholder. The date defaults to the
// currently selected day.
func (a *App) CreateJob(ctx context.Context, in CreateJobInput) (*model.Job, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	name := strings.TrimSpace(in.Name)
	address := strings.TrimSpace(in.Address)
	if name == "" && address == "" {
		return nil, fmt.Errorf("%w: add at least a customer name or an address", ErrValidation)
	}
	if name == "" {
		name = model.DefaultJobName
	}

	status := in.Status
	if status == "" {
		status = model.StatusOpen
	}
	if !model.ValidStatus(status) {
		return nil, fmt.Errorf("%w: invalid status %q", ErrValidation, status)
	}

	date := in.Date
	if date == "" {
		date = a.selection.SelectedDay
	}

	job := &model.Job{
		ID:        model.NewID(),
		Name:      name,
		Address:   address,
		Type:      strings.TrimSpace(in.Type),
		Status:    status,
		Date:      date,
		Notes:     strings.TrimSpace(in.Notes),
		Materials: []model.Material{},
		Gear:      []model.GearCheckout{},
		CreatedAt: a.now(),
	}

	// New jobs go to the front: collection order is most-recently-created
	// first.
	a.jobs = append([]*model.Job{job}, a.jobs...)
	a.selection.SelectedJobID = job.ID
	a.selection.SelectedDay = job.Date

	if err := a.save(ctx); err != nil {
		return nil, err
	}
	return job.Clone(), nil
}

// Job returns a copy of the job with the given id.
func (a *App) Job(id string) (*model.Job, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	job := a.findJob(id)
	if job == nil {
		return nil, fmt.Errorf("%w: job %s", ErrNotFound, id)
	}
	return job.Clone(), nil
}

// UpdateJobInput carries partial field edits; nil fields are left unchanged.
type UpdateJobInput struct {
	Name    *string
	Address *string
	Type    *string
	Status  *string
	Date    *string
	Notes   *string
}

// UpdateJob edits a job's scalar fields in place.
func (a *App) UpdateJob(ctx context.Context, id string, in UpdateJobInput) (*model.Job, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	job := a.findJob(id)
	if job == nil {
		return nil, fmt.Errorf("%w: job %s", ErrNotFound, id)
	}

	if in.Status != nil && !model.ValidStatus(*in.Status) {
		return nil, fmt.Errorf("%w: invalid status %q", ErrValidation, *in.Status)
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			name = model.DefaultJobName
		}
		job.Name = name
	}
	if in.Address != nil {
		job.Address = strings.TrimSpace(*in.Address)
	}
	if in.Type != nil {
		job.Type = strings.TrimSpace(*in.Type)
	}
	if in.Status != nil {
		job.Status = *in.Status
	}
	if in.Date != nil && *in.Date != "" {
		job.Date = *in.Date
	}
	if in.Notes != nil {
		job.Notes = *in.Notes
	}

	if err := a.save(ctx); err != nil {
		return nil, err
	}
	return job.Clone(), nil
}

// DeleteJob removes a job for good. Deleting the selected job selects the
// newest remaining job, or clears the selection when none remain.
func (a *App) DeleteJob(ctx context.Context, id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	idx := -1
	for i, j := range a.jobs {
		if j.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: job %s", ErrNotFound, id)
	}

	a.jobs = append(a.jobs[:idx], a.jobs[idx+1:]...)

	if a.selection.SelectedJobID == id {
		a.selection.SelectedJobID = ""
		if len(a.jobs) > 0 {
			a.selection.SelectedJobID = a.jobs[0].ID
		}
	}

	return a.save(ctx)
}

// AddMaterial prepends a material line to a job. Quantity is clamped to at
// least 1.
func (a *App) AddMaterial(ctx context.Context, jobID, item string, qty int) (*model.Job, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	job := a.findJob(jobID)
	if job == nil {
		return nil, fmt.Errorf("%w: job %s", ErrNotFound, jobID)
	}

	item = strings.TrimSpace(item)
	if item == "" {
		return nil, fmt.Errorf("%w: material item required", ErrValidation)
	}
	if qty < 1 {
		qty = 1
	}

	job.Materials = append([]model.Material{{ID: model.NewID(), Item: item, Qty: qty}}, job.Materials...)

	if err := a.save(ctx); err != nil {
		return nil, err
	}
	return job.Clone(), nil
}

// SetMaterialQty edits a material line's quantity, clamped to at least 1.
func (a *App) SetMaterialQty(ctx context.Context, jobID, materialID string, qty int) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	job := a.findJob(jobID)
	if job == nil {
		return fmt.Errorf("%w: job %s", ErrNotFound, jobID)
	}
	if qty < 1 {
		qty = 1
	}

	for i := range job.Materials {
		if job.Materials[i].ID == materialID {
			job.Materials[i].Qty = qty
			return a.save(ctx)
		}
	}
	return fmt.Errorf("%w: material %s", ErrNotFound, materialID)
}

// RemoveMaterial deletes a material line from a job.
func (a *App) RemoveMaterial(ctx context.Context, jobID, materialID string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	job := a.findJob(jobID)
	if job == nil {
		return fmt.Errorf("%w: job %s", ErrNotFound, jobID)
	}

	for i := range job.Materials {
		if job.Materials[i].ID == materialID {
			job.Materials = append(job.Materials[:i], job.Materials[i+1:]...)
			return a.save(ctx)
		}
	}
	return fmt.Errorf("%w: material %s", ErrNotFound, materialID)
}

// ApplyTemplate bulk-prepends a named material checklist onto a job,
// preserving the template's item order.
func (a *App) ApplyTemplate(ctx context.Context, jobID, key string) (*model.Job, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	job := a.findJob(jobID)
	if job == nil {
		return nil, fmt.Errorf("%w: job %s", ErrNotFound, jobID)
	}

	tmpl, ok := a.catalog.Get(key)
	if !ok {
		return nil, fmt.Errorf("%w: template %s", ErrNotFound, key)
	}

	block := make([]model.Material, 0, len(tmpl.Items))
	for _, item := range tmpl.Items {
		block = append(block, model.Material{ID: model.NewID(), Item: item.Item, Qty: item.Qty})
	}
	job.Materials = append(block, job.Materials...)

	if err := a.save(ctx); err != nil {
		return nil, err
	}
	return job.Clone(), nil
}

// SetEstimate coerces and stores the estimate inputs on a job and returns
// the computed totals. Only the coerced inputs persist; the total is always
// recomputed.
func (a *App) SetEstimate(ctx context.Context, jobID string, in model.Estimate) (estimate.Totals, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	job := a.findJob(jobID)
	if job == nil {
		return estimate.Totals{}, fmt.Errorf("%w: job %s", ErrNotFound, jobID)
	}

	job.Estimate = estimate.Canonicalize(in)
	totals := estimate.Calculate(job.Estimate)

	if err := a.save(ctx); err != nil {
		return estimate.Totals{}, err
	}
	return totals, nil
}

// EstimateText renders a job's estimate in the fixed clipboard format.
func (a *App) EstimateText(jobID string) (string, error) {
	job, err := a.Job(jobID)
	if err != nil {
		return "", err
	}
	return export.EstimateText(job), nil
}

// MaterialsText renders a job's material list in the fixed clipboard format.
func (a *App) MaterialsText(jobID string) (string, error) {
	job, err := a.Job(jobID)
	if err != nil {
		return "", err
	}
	return export.MaterialsText(job), nil
}
