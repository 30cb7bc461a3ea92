package api

import (
	"net/http"

	"github.com/rcase/plumbjobs/internal/app"
	"github.com/rcase/plumbjobs/internal/model"
)

// QuickRefsHandler handles quick-reference CRUD.
type QuickRefsHandler struct {
	App *app.App
}

type quickRefRequest struct {
	Title string `json:"title"`
	Tag   string `json:"tag"`
	Body  string `json:"body"`
}

// List handles GET /api/quickrefs?q=...
func (h *QuickRefsHandler) List(w http.ResponseWriter, r *http.Request) {
	refs := h.App.QuickRefs(r.URL.Query().Get("q"))
	if refs == nil {
		refs = []*model.QuickReference{}
	}
	jsonResponse(w, http.StatusOK, refs)
}

// Create handles POST /api/quickrefs.
func (h *QuickRefsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req quickRefRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ref, err := h.App.CreateQuickRef(r.Context(), req.Title, req.Tag, req.Body)
	if err != nil {
		appError(w, err)
		return
	}
	jsonResponse(w, http.StatusCreated, ref)
}

// Update handles PUT /api/quickrefs/{id}.
func (h *QuickRefsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req quickRefRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ref, err := h.App.UpdateQuickRef(r.Context(), r.PathValue("id"), req.Title, req.Tag, req.Body)
	if err != nil {
		appError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, ref)
}

// Delete handles DELETE /api/quickrefs/{id}.
func (h *QuickRefsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.App.DeleteQuickRef(r.Context(), r.PathValue("id")); err != nil {
		appError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "quick reference deleted"})
}

// Text handles GET /api/quickrefs/{id}/text.
func (h *QuickRefsHandler) Text(w http.ResponseWriter, r *http.Request) {
	text, err := h.App.QuickRefText(r.PathValue("id"))
	if err != nil {
		appError(w, err)
		return
	}
	textResponse(w, text)
}
