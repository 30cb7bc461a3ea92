package api

import (
	"database/sql"
	"net/http"

	"github.com/rcase/plumbjobs/internal/app"
	"github.com/rcase/plumbjobs/internal/imaging"
	"github.com/rcase/plumbjobs/internal/model"
	"github.com/rcase/plumbjobs/internal/store"
)

// GearHandler handles the gear catalog and gear photos.
type GearHandler struct {
	App *app.App
	DB  *sql.DB
}

type gearRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Qty  int    `json:"qty"`
	Tag  string `json:"tag"`
}

// List handles GET /api/gear?q=...
func (h *GearHandler) List(w http.ResponseWriter, r *http.Request) {
	gear := h.App.Gear(r.URL.Query().Get("q"))
	if gear == nil {
		gear = []*model.GearItem{}
	}
	jsonResponse(w, http.StatusOK, gear)
}

// Create handles POST /api/gear.
func (h *GearHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req gearRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.App.CreateGearItem(r.Context(), req.Name, req.Type, req.Tag, req.Qty)
	if err != nil {
		appError(w, err)
		return
	}
	jsonResponse(w, http.StatusCreated, item)
}

// Update handles PUT /api/gear/{id}.
func (h *GearHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req gearRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.App.UpdateGearItem(r.Context(), r.PathValue("id"), req.Name, req.Type, req.Tag, req.Qty)
	if err != nil {
		appError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, item)
}

// Delete handles DELETE /api/gear/{id}.
func (h *GearHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.App.DeleteGearItem(r.Context(), r.PathValue("id")); err != nil {
		appError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "gear deleted"})
}

// UploadPhoto handles PUT /api/gear/{id}/photo.
func (h *GearHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, ok := h.App.FindGearItem(id); !ok {
		jsonError(w, http.StatusNotFound, "gear not found")
		return
	}

	// Limit to 10 MB; phone photos are downscaled before storage anyway.
	r.Body = http.MaxBytesReader(w, r.Body, 10<<20)

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		jsonError(w, http.StatusBadRequest, "file too large or invalid multipart form")
		return
	}

	file, _, err := r.FormFile("photo")
	if err != nil {
		jsonError(w, http.StatusBadRequest, "photo file required")
		return
	}
	defer file.Close()

	photo, err := imaging.Process(file)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := store.SetGearPhoto(r.Context(), h.DB, id, photo.Data, photo.MIME); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to save photo")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "photo uploaded"})
}

// GetPhoto handles GET /api/gear/{id}/photo.
func (h *GearHandler) GetPhoto(w http.ResponseWriter, r *http.Request) {
	data, mime, err := store.GetGearPhoto(r.Context(), h.DB, r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get photo")
		return
	}
	if data == nil {
		jsonError(w, http.StatusNotFound, "no photo")
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(data)
}
