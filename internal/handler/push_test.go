package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"testing"

	"github.com/dukerupert/smartshopper/internal/model"
	"github.com/dukerupert/smartshopper/internal/push"
)

type fakeSender struct {
	expired map[string]bool
	sent    []string
}

func (f *fakeSender) Send(ctx context.Context, sub *model.PushSubscription, payload push.Payload) error {
	if f.expired[sub.Endpoint] {
		return push.ErrExpired
	}
	f.sent = append(f.sent, sub.Endpoint)
	return nil
}

type fakeReminders struct {
	n   int
	err error
}

func (f fakeReminders) SendReminders(ctx context.Context) (int, error) {
	return f.n, f.err
}

func pushRouter(env *testEnv, sender push.Sender, reminders ReminderSender) http.Handler {
	h := NewPushHandler(env.push, sender, "BPublicKey", reminders, env.hub, env.logger)
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/push/subscribe", h.Subscribe)
	mux.HandleFunc("DELETE /api/push/subscriptions/{id}", h.Unsubscribe)
	mux.HandleFunc("GET /api/push/subscriptions", h.ListSubscriptions)
	mux.HandleFunc("GET /api/push/vapid-key", h.GetVAPIDKey)
	mux.HandleFunc("POST /api/push/test", h.TestNotification)
	mux.HandleFunc("POST /api/push/reminders", h.SendReminders)
	return mux
}

func TestPushSubscribeAndUnsubscribe(t *testing.T) {
	env := setupTestEnv(t)
	router := pushRouter(env, &fakeSender{}, nil)

	rec := doRequest(t, router, "POST", "/api/push/subscribe", `{"endpoint":"https://push.example/a","p256dh":"key","auth":"secret","device_name":"Kitchen tablet"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	var sub model.PushSubscription
	decodeBody(t, rec, &sub)
	if sub.ID == 0 || sub.DeviceName != "Kitchen tablet" {
		t.Errorf("subscription = %+v", sub)
	}

	if rec := doRequest(t, router, "POST", "/api/push/subscribe", `{"endpoint":"https://push.example/b"}`); rec.Code != http.StatusBadRequest {
		t.Errorf("incomplete subscribe status = %d, want 400", rec.Code)
	}

	var subs []model.PushSubscription
	decodeBody(t, doRequest(t, router, "GET", "/api/push/subscriptions", ""), &subs)
	if len(subs) != 1 {
		t.Fatalf("subscriptions = %+v", subs)
	}

	id := strconv.FormatInt(sub.ID, 10)
	if rec := doRequest(t, router, "DELETE", "/api/push/subscriptions/"+id, ""); rec.Code != http.StatusNoContent {
		t.Errorf("unsubscribe status = %d", rec.Code)
	}
	if rec := doRequest(t, router, "DELETE", "/api/push/subscriptions/"+id, ""); rec.Code != http.StatusNotFound {
		t.Errorf("second unsubscribe status = %d, want 404", rec.Code)
	}
	if rec := doRequest(t, router, "DELETE", "/api/push/subscriptions/abc", ""); rec.Code != http.StatusBadRequest {
		t.Errorf("bad id status = %d, want 400", rec.Code)
	}

	decodeBody(t, doRequest(t, router, "GET", "/api/push/subscriptions", ""), &subs)
	if subs == nil || len(subs) != 0 {
		t.Errorf("subscriptions after delete = %#v, want empty list", subs)
	}
}

func TestPushVAPIDKey(t *testing.T) {
	env := setupTestEnv(t)
	rec := doRequest(t, pushRouter(env, &fakeSender{}, nil), "GET", "/api/push/vapid-key", "")
	var body map[string]string
	decodeBody(t, rec, &body)
	if body["public_key"] != "BPublicKey" {
		t.Errorf("public_key = %q", body["public_key"])
	}
}

func TestPushTestNotification(t *testing.T) {
	env := setupTestEnv(t)
	sender := &fakeSender{expired: map[string]bool{"https://push.example/gone": true}}
	router := pushRouter(env, sender, nil)

	for _, endpoint := range []string{"https://push.example/a", "https://push.example/gone"} {
		if _, err := env.push.CreateSubscription(endpoint, "key", "secret", ""); err != nil {
			t.Fatalf("create subscription: %v", err)
		}
	}

	rec := doRequest(t, router, "POST", "/api/push/test", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]int
	decodeBody(t, rec, &body)
	if body["sent"] != 1 {
		t.Errorf("sent = %d, want 1", body["sent"])
	}

	subs, err := env.push.List()
	if err != nil {
		t.Fatalf("list subscriptions: %v", err)
	}
	if len(subs) != 1 || subs[0].Endpoint != "https://push.example/a" {
		t.Errorf("expired subscription should be removed, got %+v", subs)
	}
}

func TestPushSendReminders(t *testing.T) {
	env := setupTestEnv(t)

	tests := []struct {
		name      string
		reminders ReminderSender
		status    int
	}{
		{"not configured", nil, http.StatusServiceUnavailable},
		{"sent", fakeReminders{n: 3}, http.StatusOK},
		{"failed", fakeReminders{err: errors.New("db closed")}, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, pushRouter(env, &fakeSender{}, tt.reminders), "POST", "/api/push/reminders", "")
			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d", rec.Code, tt.status)
			}
			if tt.status == http.StatusOK {
				var body map[string]int
				decodeBody(t, rec, &body)
				if body["sent"] != 3 {
					t.Errorf("sent = %d, want 3", body["sent"])
				}
			}
		})
	}
}
