package api

import (
	"net/http"

	"github.com/rcase/plumbjobs/internal/app"
	"github.com/rcase/plumbjobs/internal/estimate"
	"github.com/rcase/plumbjobs/internal/model"
)

// JobsHandler handles job CRUD, materials, and estimates.
type JobsHandler struct {
	App *app.App
}

type createJobRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Type    string `json:"type"`
	Status  string `json:"status"`
	Date    string `json:"date"`
	Notes   string `json:"notes"`
}

type updateJobRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Type    *string `json:"type"`
	Status  *string `json:"status"`
	Date    *string `json:"date"`
	Notes   *string `json:"notes"`
}

// List handles GET /api/jobs. Query parameters: day (restricts to one day
// and sorts ascending by creation), status (open/done/paid/all), q
// (free-text).
func (h *JobsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	day := q.Get("day")
	status := q.Get("status")
	query := q.Get("q")

	var jobs []*model.Job
	if day != "" {
		jobs = h.App.FilterDay(day, status, query)
	} else {
		jobs = h.App.SearchJobs(status, query)
	}
	if jobs == nil {
		jobs = []*model.Job{}
	}
	jsonResponse(w, http.StatusOK, jobs)
}

// Create handles POST /api/jobs.
func (h *JobsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createJobRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	job, err := h.App.CreateJob(r.Context(), app.CreateJobInput{
		Name:    req.Name,
		Address: req.Address,
		Type:    req.Type,
		Status:  req.Status,
		Date:    req.Date,
		Notes:   req.Notes,
	})
	if err != nil {
		appError(w, err)
		return
	}
	jsonResponse(w, http.StatusCreated, job)
}

// Get handles GET /api/jobs/{id}.
func (h *JobsHandler) Get(w http.ResponseWriter, r *http.Request) {
	job, err := h.App.Job(r.PathValue("id"))
	if err != nil {
		appError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, job)
}

// Update handles PUT /api/jobs/{id}. Absent fields are left unchanged.
func (h *JobsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateJobRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	job, err := h.App.UpdateJob(r.Context(), r.PathValue("id"), app.UpdateJobInput{
		Name:    req.Name,
		Address: req.Address,
		Type:    req.Type,
		Status:  req.Status,
		Date:    req.Date,
		Notes:   req.Notes,
	})
	if err != nil {
		appError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, job)
}

// Delete handles DELETE /api/jobs/{id}. The client is expected to confirm
// with the user first; deletion is permanent.
func (h *JobsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.App.DeleteJob(r.Context(), r.PathValue("id")); err != nil {
		appError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "job deleted"})
}

type addMaterialRequest struct {
	Item string `json:"item"`
	Qty  int    `json:"qty"`
}

// AddMaterial handles POST /api/jobs/{id}/materials.
func (h *JobsHandler) AddMaterial(w http.ResponseWriter, r *http.Request) {
	var req addMaterialRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	job, err := h.App.AddMaterial(r.Context(), r.PathValue("id"), req.Item, req.Qty)
	if err != nil {
		appError(w, err)
		return
	}
	jsonResponse(w, http.StatusCreated, job)
}

type setQtyRequest struct {
	Qty int `json:"qty"`
}

// SetMaterialQty handles PUT /api/jobs/{id}/materials/{mid}.
func (h *JobsHandler) SetMaterialQty(w http.ResponseWriter, r *http.Request) {
	var req setQtyRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.App.SetMaterialQty(r.Context(), r.PathValue("id"), r.PathValue("mid"), req.Qty); err != nil {
		appError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "quantity updated"})
}

// RemoveMaterial handles DELETE /api/jobs/{id}/materials/{mid}.
func (h *JobsHandler) RemoveMaterial(w http.ResponseWriter, r *http.Request) {
	if err := h.App.RemoveMaterial(r.Context(), r.PathValue("id"), r.PathValue("mid")); err != nil {
		appError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "material removed"})
}

// ApplyTemplate handles POST /api/jobs/{id}/materials/template/{key}.
func (h *JobsHandler) ApplyTemplate(w http.ResponseWriter, r *http.Request) {
	job, err := h.App.ApplyTemplate(r.Context(), r.PathValue("id"), r.PathValue("key"))
	if err != nil {
		appError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, job)
}

// MaterialsText handles GET /api/jobs/{id}/materials/text.
func (h *JobsHandler) MaterialsText(w http.ResponseWriter, r *http.Request) {
	text, err := h.App.MaterialsText(r.PathValue("id"))
	if err != nil {
		appError(w, err)
		return
	}
	textResponse(w, text)
}

// SetEstimate handles PUT /api/jobs/{id}/estimate. The five inputs are
// coerced and stored on the job; the response carries the computed totals.
func (h *JobsHandler) SetEstimate(w http.ResponseWriter, r *http.Request) {
	var req model.Estimate
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	totals, err := h.App.SetEstimate(r.Context(), r.PathValue("id"), req)
	if err != nil {
		appError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]any{
		"totals": totals,
		"total":  estimate.FormatMoney(totals.Total),
	})
}

// EstimateText handles GET /api/jobs/{id}/estimate/text.
func (h *JobsHandler) EstimateText(w http.ResponseWriter, r *http.Request) {
	text, err := h.App.EstimateText(r.PathValue("id"))
	if err != nil {
		appError(w, err)
		return
	}
	textResponse(w, text)
}

type checkoutRequest struct {
	GearID string `json:"gear_id"`
	Qty    int    `json:"qty"`
}

// CheckoutGear handles POST /api/jobs/{id}/gear.
func (h *JobsHandler) CheckoutGear(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	job, err := h.App.CheckoutGear(r.Context(), r.PathValue("id"), req.GearID, req.Qty)
	if err != nil {
		appError(w, err)
		return
	}
	jsonResponse(w, http.StatusCreated, job)
}

// ReturnGear handles PUT /api/jobs/{id}/gear/{cid}/return.
func (h *JobsHandler) ReturnGear(w http.ResponseWriter, r *http.Request) {
	if err := h.App.ReturnGear(r.Context(), r.PathValue("id"), r.PathValue("cid")); err != nil {
		appError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "gear returned"})
}
