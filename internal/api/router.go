package api

import (
	"database/sql"
	"net/http"

	"github.com/rcase/plumbjobs/internal/app"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(a *app.App, db *sql.DB) http.Handler {
	mux := http.NewServeMux()

	jobs := &JobsHandler{App: a}
	schedule := &ScheduleHandler{App: a}
	quickRefs := &QuickRefsHandler{App: a}
	gear := &GearHandler{App: a, DB: db}
	shopping := &ShoppingHandler{App: a}
	consumables := &ConsumablesHandler{App: a}

	// Jobs, materials, estimates, gear checkouts.
	mux.HandleFunc("GET /api/jobs", jobs.List)
	mux.HandleFunc("POST /api/jobs", jobs.Create)
	mux.HandleFunc("GET /api/jobs/{id}", jobs.Get)
	mux.HandleFunc("PUT /api/jobs/{id}", jobs.Update)
	mux.HandleFunc("DELETE /api/jobs/{id}", jobs.Delete)
	mux.HandleFunc("POST /api/jobs/{id}/materials", jobs.AddMaterial)
	mux.HandleFunc("PUT /api/jobs/{id}/materials/{mid}", jobs.SetMaterialQty)
	mux.HandleFunc("DELETE /api/jobs/{id}/materials/{mid}", jobs.RemoveMaterial)
	mux.HandleFunc("POST /api/jobs/{id}/materials/template/{key}", jobs.ApplyTemplate)
	mux.HandleFunc("GET /api/jobs/{id}/materials/text", jobs.MaterialsText)
	mux.HandleFunc("PUT /api/jobs/{id}/estimate", jobs.SetEstimate)
	mux.HandleFunc("GET /api/jobs/{id}/estimate/text", jobs.EstimateText)
	mux.HandleFunc("POST /api/jobs/{id}/gear", jobs.CheckoutGear)
	mux.HandleFunc("PUT /api/jobs/{id}/gear/{cid}/return", jobs.ReturnGear)

	// Calendar and scheduling.
	mux.HandleFunc("GET /api/calendar/week", schedule.Week)
	mux.HandleFunc("GET /api/calendar/day/{date}", schedule.Day)
	mux.HandleFunc("GET /api/schedule", schedule.State)
	mux.HandleFunc("POST /api/schedule/pickup", schedule.Pickup)
	mux.HandleFunc("PUT /api/schedule/mode", schedule.SetMode)
	mux.HandleFunc("POST /api/schedule/place", schedule.Place)
	mux.HandleFunc("DELETE /api/schedule", schedule.Cancel)
	mux.HandleFunc("GET /api/context", schedule.GetSelection)
	mux.HandleFunc("PUT /api/context", schedule.SetSelection)

	// Quick references.
	mux.HandleFunc("GET /api/quickrefs", quickRefs.List)
	mux.HandleFunc("POST /api/quickrefs", quickRefs.Create)
	mux.HandleFunc("PUT /api/quickrefs/{id}", quickRefs.Update)
	mux.HandleFunc("DELETE /api/quickrefs/{id}", quickRefs.Delete)
	mux.HandleFunc("GET /api/quickrefs/{id}/text", quickRefs.Text)

	// Gear catalog and photos.
	mux.HandleFunc("GET /api/gear", gear.List)
	mux.HandleFunc("POST /api/gear", gear.Create)
	mux.HandleFunc("PUT /api/gear/{id}", gear.Update)
	mux.HandleFunc("DELETE /api/gear/{id}", gear.Delete)
	mux.HandleFunc("PUT /api/gear/{id}/photo", gear.UploadPhoto)
	mux.HandleFunc("GET /api/gear/{id}/photo", gear.GetPhoto)

	// Shopping list and consumable stock.
	mux.HandleFunc("GET /api/shopping", shopping.List)
	mux.HandleFunc("POST /api/shopping", shopping.Create)
	mux.HandleFunc("PUT /api/shopping/{id}", shopping.Update)
	mux.HandleFunc("DELETE /api/shopping/{id}", shopping.Delete)
	mux.HandleFunc("GET /api/consumables", consumables.List)
	mux.HandleFunc("POST /api/consumables", consumables.Create)
	mux.HandleFunc("PUT /api/consumables/{id}", consumables.Update)
	mux.HandleFunc("DELETE /api/consumables/{id}", consumables.Delete)

	// Material templates.
	mux.HandleFunc("GET /api/templates", func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, http.StatusOK, a.Templates())
	})

	return mux
}
