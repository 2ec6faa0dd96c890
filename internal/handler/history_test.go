package handler

import (
	"net/http"
	"testing"

	"github.com/dukerupert/smartshopper/internal/model"
)

func historyRouter(env *testEnv) http.Handler {
	h := NewHistoryHandler(env.history, env.hub, env.logger)
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/history", h.List)
	mux.HandleFunc("POST /api/history", h.Create)
	mux.HandleFunc("POST /api/history/{id}/consume", h.Consume)
	mux.HandleFunc("DELETE /api/history/{id}", h.Delete)
	return mux
}

func TestHistoryCreate(t *testing.T) {
	env := setupTestEnv(t)
	router := historyRouter(env)

	rec := doRequest(t, router, "POST", "/api/history", `{"item_name":"Milk","purchase_date":"2024-01-04","expiry_time_in_days":7,"cost":1.25}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	var record model.PurchaseHistoryItem
	decodeBody(t, rec, &record)
	if record.ItemName != "Milk" {
		t.Errorf("item_name = %q", record.ItemName)
	}
	if record.PurchaseDate.Format("2006-01-02") != "2024-01-04" {
		t.Errorf("purchase_date = %v", record.PurchaseDate)
	}
	if record.ExpiryTimeInDays == nil || *record.ExpiryTimeInDays != 7 {
		t.Errorf("expiry_time_in_days = %v", record.ExpiryTimeInDays)
	}

	rec = doRequest(t, router, "POST", "/api/history", `{"item_name":"Bread"}`)
	decodeBody(t, rec, &record)
	if !record.PurchaseDate.Equal(testNow) {
		t.Errorf("default purchase_date = %v, want %v", record.PurchaseDate, testNow)
	}
}

func TestHistoryCreateErrors(t *testing.T) {
	env := setupTestEnv(t)
	router := historyRouter(env)

	tests := []struct {
		name string
		body string
		msg  string
	}{
		{"empty name", `{"item_name":""}`, "item_name is required"},
		{"bad purchase date", `{"item_name":"Milk","purchase_date":"yesterday"}`, "invalid purchase_date"},
		{"bad expiry date", `{"item_name":"Milk","expiry_date":"2024-13-45"}`, "invalid expiry_date"},
		{"negative days", `{"item_name":"Milk","expiry_time_in_days":-1}`, "expiry_time_in_days must not be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, router, "POST", "/api/history", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			if msg := errorMessage(t, rec); msg != tt.msg {
				t.Errorf("error = %q, want %q", msg, tt.msg)
			}
		})
	}
}

func TestHistoryConsumeAndDelete(t *testing.T) {
	env := setupTestEnv(t)
	router := historyRouter(env)

	var milk, bread model.PurchaseHistoryItem
	decodeBody(t, doRequest(t, router, "POST", "/api/history", `{"item_name":"Milk"}`), &milk)
	decodeBody(t, doRequest(t, router, "POST", "/api/history", `{"item_name":"Bread"}`), &bread)

	rec := doRequest(t, router, "POST", "/api/history/"+milk.ID+"/consume", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("consume status = %d", rec.Code)
	}
	var consumed model.PurchaseHistoryItem
	decodeBody(t, rec, &consumed)
	if !consumed.Consumed {
		t.Error("expected consumed flag")
	}

	if rec := doRequest(t, router, "DELETE", "/api/history/"+bread.ID, ""); rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", rec.Code)
	}

	var active []model.PurchaseHistoryItem
	decodeBody(t, doRequest(t, router, "GET", "/api/history", ""), &active)
	if len(active) != 0 {
		t.Errorf("active history = %+v, want none", active)
	}

	var all []model.PurchaseHistoryItem
	decodeBody(t, doRequest(t, router, "GET", "/api/history?all=true", ""), &all)
	if len(all) != 2 {
		t.Errorf("all history = %d records, want 2", len(all))
	}

	for _, path := range []string{"/api/history/missing/consume"} {
		if rec := doRequest(t, router, "POST", path, ""); rec.Code != http.StatusNotFound {
			t.Errorf("POST %s status = %d, want 404", path, rec.Code)
		}
	}
	if rec := doRequest(t, router, "DELETE", "/api/history/missing", ""); rec.Code != http.StatusNotFound {
		t.Errorf("delete missing status = %d, want 404", rec.Code)
	}
}
