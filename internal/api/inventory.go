package api

import (
	"net/http"

	"github.com/rcase/plumbjobs/internal/app"
	"github.com/rcase/plumbjobs/internal/model"
)

// ShoppingHandler handles the shopping list.
type ShoppingHandler struct {
	App *app.App
}

type shoppingRequest struct {
	Item string `json:"item"`
	Qty  int    `json:"qty"`
	Note string `json:"note"`
}

// List handles GET /api/shopping.
func (h *ShoppingHandler) List(w http.ResponseWriter, r *http.Request) {
	items := h.App.Shopping()
	if items == nil {
		items = []*model.ShoppingItem{}
	}
	jsonResponse(w, http.StatusOK, items)
}

// Create handles POST /api/shopping.
func (h *ShoppingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req shoppingRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.App.AddShoppingItem(r.Context(), req.Item, req.Qty, req.Note)
	if err != nil {
		appError(w, err)
		return
	}
	jsonResponse(w, http.StatusCreated, item)
}

// Update handles PUT /api/shopping/{id}.
func (h *ShoppingHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req shoppingRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.App.UpdateShoppingItem(r.Context(), r.PathValue("id"), req.Item, req.Qty, req.Note)
	if err != nil {
		appError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, item)
}

// Delete handles DELETE /api/shopping/{id}.
func (h *ShoppingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.App.DeleteShoppingItem(r.Context(), r.PathValue("id")); err != nil {
		appError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "shopping item deleted"})
}

// ConsumablesHandler handles consumable stock.
type ConsumablesHandler struct {
	App *app.App
}

type consumableRequest struct {
	Item   string `json:"item"`
	OnHand int    `json:"on_hand"`
	Unit   string `json:"unit"`
	Min    int    `json:"min"`
}

// consumableView adds the derived low-stock flag to the wire shape.
type consumableView struct {
	*model.ConsumableItem
	Low bool `json:"low"`
}

func viewConsumable(c *model.ConsumableItem) consumableView {
	return consumableView{ConsumableItem: c, Low: c.Low()}
}

// List handles GET /api/consumables.
func (h *ConsumablesHandler) List(w http.ResponseWriter, r *http.Request) {
	items := h.App.Consumables()
	views := make([]consumableView, 0, len(items))
	for _, c := range items {
		views = append(views, viewConsumable(c))
	}
	jsonResponse(w, http.StatusOK, views)
}

// Create handles POST /api/consumables.
func (h *ConsumablesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req consumableRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.App.AddConsumable(r.Context(), req.Item, req.OnHand, req.Unit, req.Min)
	if err != nil {
		appError(w, err)
		return
	}
	jsonResponse(w, http.StatusCreated, viewConsumable(item))
}

// Update handles PUT /api/consumables/{id}.
func (h *ConsumablesHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req consumableRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.App.UpdateConsumable(r.Context(), r.PathValue("id"), req.Item, req.OnHand, req.Unit, req.Min)
	if err != nil {
		appError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, viewConsumable(item))
}

// Delete handles DELETE /api/consumables/{id}.
func (h *ConsumablesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.App.DeleteConsumable(r.Context(), r.PathValue("id")); err != nil {
		appError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "consumable deleted"})
}
