package api

import (
	"net/http"

	"github.com/rcase/plumbjobs/internal/app"
	"github.com/rcase/plumbjobs/internal/dateutil"
	"github.com/rcase/plumbjobs/internal/model"
	"github.com/rcase/plumbjobs/internal/store"
)

// ScheduleHandler exposes the scheduling engine and calendar views.
type ScheduleHandler struct {
	App *app.App
}

// State handles GET /api/schedule.
func (h *ScheduleHandler) State(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, h.App.Placement())
}

type pickupRequest struct {
	JobID string `json:"job_id"`
}

// Pickup handles POST /api/schedule/pickup. The engine enters the Placing
// state in move mode.
func (h *ScheduleHandler) Pickup(w http.ResponseWriter, r *http.Request) {
	var req pickupRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.App.EnterPlacing(req.JobID); err != nil {
		appError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, h.App.Placement())
}

type modeRequest struct {
	Mode app.Mode `json:"mode"`
}

// SetMode handles PUT /api/schedule/mode.
func (h *ScheduleHandler) SetMode(w http.ResponseWriter, r *http.Request) {
	var req modeRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.App.SetMode(req.Mode); err != nil {
		appError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, h.App.Placement())
}

// Cancel handles DELETE /api/schedule.
func (h *ScheduleHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.App.CancelPlacing()
	jsonResponse(w, http.StatusOK, h.App.Placement())
}

type placeRequest struct {
	Day string `json:"day"`
}

// Place handles POST /api/schedule/place.
func (h *ScheduleHandler) Place(w http.ResponseWriter, r *http.Request) {
	var req placeRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Day == "" {
		jsonError(w, http.StatusBadRequest, "day required")
		return
	}

	job, err := h.App.PlaceOnDay(r.Context(), req.Day)
	if err != nil {
		appError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, job)
}

// Week handles GET /api/calendar/week?anchor=YYYY-MM-DD. The anchor defaults
// to the selected day; the response covers the Sunday-first week around it.
func (h *ScheduleHandler) Week(w http.ResponseWriter, r *http.Request) {
	anchor := r.URL.Query().Get("anchor")
	if anchor == "" {
		anchor = h.App.Selection().SelectedDay
	}
	if anchor == "" {
		anchor = dateutil.Today()
	}
	jsonResponse(w, http.StatusOK, h.App.Week(anchor))
}

// Day handles GET /api/calendar/day/{date}: the day's jobs plus counts.
func (h *ScheduleHandler) Day(w http.ResponseWriter, r *http.Request) {
	date := r.PathValue("date")
	jobs := h.App.JobsForDay(date)
	if jobs == nil {
		jobs = []*model.Job{}
	}
	jsonResponse(w, http.StatusOK, map[string]any{
		"date":   date,
		"counts": h.App.CountsForDay(date),
		"jobs":   jobs,
	})
}

// GetSelection handles GET /api/context.
func (h *ScheduleHandler) GetSelection(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, h.App.Selection())
}

// SetSelection handles PUT /api/context.
func (h *ScheduleHandler) SetSelection(w http.ResponseWriter, r *http.Request) {
	var req store.Selection
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.App.SetSelection(r.Context(), req); err != nil {
		appError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, h.App.Selection())
}
