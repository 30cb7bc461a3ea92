package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rcase/plumbjobs/internal/app"
	"github.com/rcase/plumbjobs/internal/catalog"
	"github.com/rcase/plumbjobs/internal/db"
	"github.com/rcase/plumbjobs/internal/model"
)

func setupTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	database := db.NewTestDB(t)
	cat, err := catalog.Load("")
	if err != nil {
		t.Fatalf("loading catalog: %v", err)
	}
	a, err := app.New(context.Background(), database, cat)
	if err != nil {
		t.Fatalf("creating app: %v", err)
	}

	server := httptest.NewServer(NewRouter(a, database))
	t.Cleanup(server.Close)
	return server
}

func doJSON(t *testing.T, method, url string, body any) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("building request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, target any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
}

func createJob(t *testing.T, server *httptest.Server, name, date string) model.Job {
	t.Helper()

	resp := doJSON(t, http.MethodPost, server.URL+"/api/jobs", map[string]any{
		"name": name,
		"date": date,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("creating job: status %d", resp.StatusCode)
	}
	var job model.Job
	decodeBody(t, resp, &job)
	return job
}

func TestJobLifecycle(t *testing.T) {
	server := setupTestServer(t)

	// Validation: both name and address blank.
	resp := doJSON(t, http.MethodPost, server.URL+"/api/jobs", map[string]any{"name": ""})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for blank job, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	job := createJob(t, server, "Smith", "2024-05-01")
	if job.Status != model.StatusOpen {
		t.Errorf("expected default status open, got %q", job.Status)
	}

	// Update status.
	resp = doJSON(t, http.MethodPut, server.URL+"/api/jobs/"+job.ID, map[string]any{"status": "done"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("updating job: status %d", resp.StatusCode)
	}
	var updated model.Job
	decodeBody(t, resp, &updated)
	if updated.Status != model.StatusDone {
		t.Errorf("expected status done, got %q", updated.Status)
	}

	// Delete.
	resp = doJSON(t, http.MethodDelete, server.URL+"/api/jobs/"+job.ID, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("deleting job: status %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = doJSON(t, http.MethodGet, server.URL+"/api/jobs/"+job.ID, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestDayFilterEndpoint(t *testing.T) {
	server := setupTestServer(t)

	createJob(t, server, "Alpha", "2024-05-01")
	createJob(t, server, "Beta", "2024-05-01")
	createJob(t, server, "Gamma", "2024-05-02")

	resp := doJSON(t, http.MethodGet, server.URL+"/api/jobs?day=2024-05-01", nil)
	var jobs []model.Job
	decodeBody(t, resp, &jobs)
	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(jobs))
	}

	resp = doJSON(t, http.MethodGet, server.URL+"/api/jobs?day=2024-05-01&q=beta", nil)
	decodeBody(t, resp, &jobs)
	if len(jobs) != 1 || jobs[0].Name != "Beta" {
		t.Errorf("free-text filter failed: %+v", jobs)
	}

	var day struct {
		Counts app.DayCounts `json:"counts"`
		Jobs   []model.Job   `json:"jobs"`
	}
	resp = doJSON(t, http.MethodGet, server.URL+"/api/calendar/day/2024-05-01", nil)
	decodeBody(t, resp, &day)
	if day.Counts.Total != 2 || day.Counts.Open != 2 {
		t.Errorf("unexpected counts: %+v", day.Counts)
	}
}

func TestScheduleEndpoints(t *testing.T) {
	server := setupTestServer(t)

	job := createJob(t, server, "Smith", "2024-05-01")

	resp := doJSON(t, http.MethodPost, server.URL+"/api/schedule/pickup", map[string]any{"job_id": job.ID})
	var state app.Placement
	decodeBody(t, resp, &state)
	if !state.Placing || state.Mode != app.ModeMove {
		t.Fatalf("expected placing in move mode, got %+v", state)
	}

	resp = doJSON(t, http.MethodPut, server.URL+"/api/schedule/mode", map[string]any{"mode": "copy"})
	decodeBody(t, resp, &state)
	if state.Mode != app.ModeCopy {
		t.Fatalf("expected copy mode, got %+v", state)
	}

	resp = doJSON(t, http.MethodPost, server.URL+"/api/schedule/place", map[string]any{"day": "2024-05-08"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("placing: status %d", resp.StatusCode)
	}
	var placed model.Job
	decodeBody(t, resp, &placed)
	if placed.ID == job.ID || placed.Date != "2024-05-08" {
		t.Errorf("unexpected placed job: %+v", placed)
	}

	// Placing again without a pickup conflicts.
	resp = doJSON(t, http.MethodPost, server.URL+"/api/schedule/place", map[string]any{"day": "2024-05-09"})
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("expected 409 while idle, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestEstimateEndpoints(t *testing.T) {
	server := setupTestServer(t)

	job := createJob(t, server, "Smith", "2024-05-01")

	resp := doJSON(t, http.MethodPut, server.URL+"/api/jobs/"+job.ID+"/estimate", map[string]any{
		"labor_hours":        "2",
		"labor_rate":         "75",
		"materials_subtotal": "100",
		"markup_pct":         "20",
		"trip_fee":           "50",
	})
	var result struct {
		Total string `json:"total"`
	}
	decodeBody(t, resp, &result)
	if result.Total != "320.00" {
		t.Errorf("expected total 320.00, got %q", result.Total)
	}

	resp = doJSON(t, http.MethodGet, server.URL+"/api/jobs/"+job.ID+"/estimate/text", nil)
	defer resp.Body.Close()
	var buf bytes.Buffer
	buf.ReadFrom(resp.Body)
	text := buf.String()
	if !strings.Contains(text, "TOTAL: $320.00") {
		t.Errorf("unexpected estimate text:\n%s", text)
	}
	if !strings.HasPrefix(text, "Estimate — Smith") {
		t.Errorf("unexpected header:\n%s", text)
	}
}

func TestTemplateEndpoints(t *testing.T) {
	server := setupTestServer(t)

	resp := doJSON(t, http.MethodGet, server.URL+"/api/templates", nil)
	var templates []catalog.Template
	decodeBody(t, resp, &templates)
	if len(templates) != 3 {
		t.Fatalf("expected 3 built-in templates, got %d", len(templates))
	}

	job := createJob(t, server, "Smith", "2024-05-01")
	resp = doJSON(t, http.MethodPost, server.URL+"/api/jobs/"+job.ID+"/materials/template/toiletreset", nil)
	var withMats model.Job
	decodeBody(t, resp, &withMats)
	if len(withMats.Materials) != 5 {
		t.Errorf("expected 5 template materials, got %d", len(withMats.Materials))
	}

	resp = doJSON(t, http.MethodPost, server.URL+"/api/jobs/"+job.ID+"/materials/template/nope", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404 for unknown template, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestGearCheckoutEndpoints(t *testing.T) {
	server := setupTestServer(t)

	job := createJob(t, server, "Smith", "2024-05-01")

	resp := doJSON(t, http.MethodPost, server.URL+"/api/gear", map[string]any{
		"name": "Drain machine", "type": "Tool", "qty": 1,
	})
	var gear model.GearItem
	decodeBody(t, resp, &gear)

	resp = doJSON(t, http.MethodPost, server.URL+"/api/jobs/"+job.ID+"/gear", map[string]any{
		"gear_id": gear.ID, "qty": 1,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("checkout: status %d", resp.StatusCode)
	}
	var withGear model.Job
	decodeBody(t, resp, &withGear)
	if len(withGear.Gear) != 1 || withGear.Gear[0].Name != "Drain machine" {
		t.Fatalf("unexpected checkout: %+v", withGear.Gear)
	}

	url := fmt.Sprintf("%s/api/jobs/%s/gear/%s/return", server.URL, job.ID, withGear.Gear[0].ID)
	resp = doJSON(t, http.MethodPut, url, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("return: status %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestConsumablesEndpointReportsLow(t *testing.T) {
	server := setupTestServer(t)

	resp := doJSON(t, http.MethodPost, server.URL+"/api/consumables", map[string]any{
		"item": "Solder", "on_hand": 1, "unit": "rolls", "min": 2,
	})
	var created struct {
		ID  string `json:"id"`
		Low bool   `json:"low"`
	}
	decodeBody(t, resp, &created)
	if !created.Low {
		t.Error("expected low-stock flag in response")
	}
}

func TestQuickRefEndpoints(t *testing.T) {
	server := setupTestServer(t)

	// Seeded quick refs are present.
	resp := doJSON(t, http.MethodGet, server.URL+"/api/quickrefs", nil)
	var refs []model.QuickReference
	decodeBody(t, resp, &refs)
	if len(refs) == 0 {
		t.Fatal("expected seeded quick references")
	}

	resp = doJSON(t, http.MethodPost, server.URL+"/api/quickrefs", map[string]any{"title": "No body"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 without body, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}
