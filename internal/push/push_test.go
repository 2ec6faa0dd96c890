package push

import (
	"context"
	"encoding/base64"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dukerupert/smartshopper/internal/clock"
	"github.com/dukerupert/smartshopper/internal/database"
	"github.com/dukerupert/smartshopper/internal/model"
	"github.com/dukerupert/smartshopper/internal/rules"
	"github.com/dukerupert/smartshopper/internal/store"
)

func TestGenerateVAPIDKeys(t *testing.T) {
	pub, priv, err := GenerateVAPIDKeys()
	if err != nil {
		t.Fatalf("generate VAPID keys: %v", err)
	}

	if pub == "" {
		t.Error("expected non-empty public key")
	}
	if priv == "" {
		t.Error("expected non-empty private key")
	}

	// Public key should be an uncompressed P-256 point
	pubBytes, err := base64.RawURLEncoding.DecodeString(pub)
	if err != nil {
		t.Fatalf("decode public key: %v", err)
	}
	if len(pubBytes) != 65 {
		t.Errorf("public key length = %d, want 65", len(pubBytes))
	}

	pub2, _, _ := GenerateVAPIDKeys()
	if pub == pub2 {
		t.Error("expected different keys on second generation")
	}
}

func TestNewServiceDefaults(t *testing.T) {
	svc := NewService("pub", "priv", "")
	if svc.subscriber != DefaultSubscriber {
		t.Errorf("subscriber = %q, want %q", svc.subscriber, DefaultSubscriber)
	}
	if svc.VAPIDPublicKey() != "pub" {
		t.Errorf("public key = %q, want pub", svc.VAPIDPublicKey())
	}
}

type sent struct {
	endpoint string
	payload  Payload
}

type fakeSender struct {
	mu      sync.Mutex
	expired map[string]bool
	outage  error
	sent    []sent
}

func (f *fakeSender) Send(_ context.Context, sub *model.PushSubscription, payload Payload) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.expired[sub.Endpoint] {
		return ErrExpired
	}
	if f.outage != nil {
		return f.outage
	}
	f.sent = append(f.sent, sent{endpoint: sub.Endpoint, payload: payload})
	return nil
}

var testNow = time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

func setupScheduler(t *testing.T, sender Sender, hour int) (*Scheduler, *store.PushStore, *store.HistoryStore) {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	clk := clock.Fixed{T: testNow}
	pushStore := store.NewPushStore(db)
	historyStore := store.NewHistoryStore(db, clk)
	engine := rules.NewEngine(store.NewRuleStore(db), clk, nil)
	return NewScheduler(sender, nil, pushStore, historyStore, engine, hour, nil), pushStore, historyStore
}

func TestSendReminders(t *testing.T) {
	sender := &fakeSender{expired: map[string]bool{"https://push.example.com/gone": true}}
	sched, pushStore, historyStore := setupScheduler(t, sender, 8)

	week, tenDays := 7, 10
	historyStore.Log(store.PurchaseInput{ItemName: "Milk", PurchaseDate: testNow.AddDate(0, 0, -6), ExpiryTimeInDays: &week})
	historyStore.Log(store.PurchaseInput{ItemName: "Yogurt", PurchaseDate: testNow.AddDate(0, 0, -8), ExpiryTimeInDays: &week})
	historyStore.Log(store.PurchaseInput{ItemName: "Rice", PurchaseDate: testNow, ExpiryTimeInDays: &tenDays})

	pushStore.CreateSubscription("https://push.example.com/ok", "k", "a", "Phone")
	pushStore.CreateSubscription("https://push.example.com/gone", "k", "a", "Old laptop")

	n, err := sched.SendReminders(context.Background())
	if err != nil {
		t.Fatalf("send reminders: %v", err)
	}
	if n != 2 {
		t.Errorf("items sent = %d, want 2", n)
	}
	if len(sender.sent) != 2 {
		t.Fatalf("pushes = %d, want 2", len(sender.sent))
	}
	for _, s := range sender.sent {
		if s.endpoint != "https://push.example.com/ok" {
			t.Errorf("push sent to %s", s.endpoint)
		}
	}
	// Notices follow purchase order, oldest first.
	if got := sender.sent[0].payload; got.Title != "Item Expired" || got.Body != "Yogurt has expired. Consider replacing it." {
		t.Errorf("yogurt payload = %+v", got)
	}
	if got := sender.sent[1].payload; got.Title != "Expiring Soon" || got.Body != "Milk will expire in 1 day." || got.Tag != "expiry-milk" {
		t.Errorf("milk payload = %+v", got)
	}

	subs, _ := pushStore.List()
	if len(subs) != 1 || subs[0].Endpoint != "https://push.example.com/ok" {
		t.Errorf("expected expired subscription removed, got %+v", subs)
	}

	// Second run on the same day sends nothing new.
	n, err = sched.SendReminders(context.Background())
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if n != 0 || len(sender.sent) != 2 {
		t.Errorf("second run sent %d items, %d pushes total", n, len(sender.sent))
	}
}

func TestSendRemindersWithoutSubscriptions(t *testing.T) {
	sender := &fakeSender{}
	sched, pushStore, historyStore := setupScheduler(t, sender, 8)

	week := 7
	historyStore.Log(store.PurchaseInput{ItemName: "Milk", PurchaseDate: testNow.AddDate(0, 0, -6), ExpiryTimeInDays: &week})

	n, err := sched.SendReminders(context.Background())
	if err != nil {
		t.Fatalf("send reminders: %v", err)
	}
	if n != 0 {
		t.Errorf("items sent = %d, want 0", n)
	}

	// Nothing was recorded, so a later subscriber still gets today's reminder.
	sent, _ := pushStore.WasSent(model.NotifTypeExpiryReminder, "milk", testNow.Format(time.DateOnly))
	if sent {
		t.Error("expected no dedup record without subscribers")
	}
}

func TestSendRemindersRetriesAfterOutage(t *testing.T) {
	sender := &fakeSender{outage: errors.New("push service unavailable")}
	sched, pushStore, historyStore := setupScheduler(t, sender, 8)

	week := 7
	historyStore.Log(store.PurchaseInput{ItemName: "Milk", PurchaseDate: testNow.AddDate(0, 0, -6), ExpiryTimeInDays: &week})
	pushStore.CreateSubscription("https://push.example.com/ok", "k", "a", "Phone")

	n, err := sched.SendReminders(context.Background())
	if err != nil {
		t.Fatalf("send reminders: %v", err)
	}
	if n != 0 {
		t.Errorf("items sent during outage = %d, want 0", n)
	}
	day := testNow.Format(time.DateOnly)
	if sent, _ := pushStore.WasSent(model.NotifTypeExpiryReminder, "milk", day); sent {
		t.Fatal("failed reminder should not be recorded")
	}
	if subs, _ := pushStore.List(); len(subs) != 1 {
		t.Errorf("subscriptions = %d, want 1 kept after a transient failure", len(subs))
	}

	sender.outage = nil
	n, err = sched.SendReminders(context.Background())
	if err != nil {
		t.Fatalf("retry: %v", err)
	}
	if n != 1 || len(sender.sent) != 1 {
		t.Errorf("retry sent %d items, %d pushes; want 1, 1", n, len(sender.sent))
	}
	if sent, _ := pushStore.WasSent(model.NotifTypeExpiryReminder, "milk", day); !sent {
		t.Error("delivered reminder should be recorded")
	}
}

func TestTickRespectsHour(t *testing.T) {
	sender := &fakeSender{}
	sched, pushStore, historyStore := setupScheduler(t, sender, 10)

	week := 7
	historyStore.Log(store.PurchaseInput{ItemName: "Milk", PurchaseDate: testNow.AddDate(0, 0, -6), ExpiryTimeInDays: &week})
	pushStore.CreateSubscription("https://push.example.com/ok", "k", "a", "Phone")

	sched.tick(context.Background())
	if len(sender.sent) != 0 {
		t.Errorf("expected no pushes before %d:00, got %d", sched.hour, len(sender.sent))
	}

	sched.hour = 9
	sched.tick(context.Background())
	if len(sender.sent) != 1 {
		t.Errorf("expected 1 push at the reminder hour, got %d", len(sender.sent))
	}
}

func TestSchedulerStartStop(t *testing.T) {
	sched, _, _ := setupScheduler(t, &fakeSender{}, 8)
	sched.interval = time.Millisecond
	sched.Start(context.Background())
	time.Sleep(5 * time.Millisecond)
	sched.Stop()
}

type fakeMailer struct {
	err     error
	digests [][]model.ExpiryNotice
}

func (f *fakeMailer) SendExpiryDigest(_ context.Context, notices []model.ExpiryNotice) error {
	if f.err != nil {
		return f.err
	}
	f.digests = append(f.digests, notices)
	return nil
}

func TestSendRemindersDigestOnly(t *testing.T) {
	sched, pushStore, historyStore := setupScheduler(t, nil, 8)
	mailer := &fakeMailer{}
	sched.mailer = mailer

	week := 7
	historyStore.Log(store.PurchaseInput{ItemName: "Milk", PurchaseDate: testNow.AddDate(0, 0, -6), ExpiryTimeInDays: &week})
	historyStore.Log(store.PurchaseInput{ItemName: "Yogurt", PurchaseDate: testNow.AddDate(0, 0, -8), ExpiryTimeInDays: &week})
	// Subscriptions are ignored without a push sender.
	pushStore.CreateSubscription("https://push.example.com/ok", "k", "a", "Phone")

	n, err := sched.SendReminders(context.Background())
	if err != nil {
		t.Fatalf("send reminders: %v", err)
	}
	if n != 0 {
		t.Errorf("items pushed = %d, want 0", n)
	}
	if len(mailer.digests) != 1 || len(mailer.digests[0]) != 2 {
		t.Fatalf("digests = %+v, want one digest with 2 notices", mailer.digests)
	}

	if _, err := sched.SendReminders(context.Background()); err != nil {
		t.Fatalf("second run: %v", err)
	}
	if len(mailer.digests) != 1 {
		t.Errorf("digests after second run = %d, want 1", len(mailer.digests))
	}
}

func TestSendRemindersDigestFailureRetries(t *testing.T) {
	sched, pushStore, historyStore := setupScheduler(t, nil, 8)
	mailer := &fakeMailer{err: context.DeadlineExceeded}
	sched.mailer = mailer

	week := 7
	historyStore.Log(store.PurchaseInput{ItemName: "Milk", PurchaseDate: testNow.AddDate(0, 0, -6), ExpiryTimeInDays: &week})

	if _, err := sched.SendReminders(context.Background()); err != nil {
		t.Fatalf("send reminders: %v", err)
	}
	if sent, _ := pushStore.WasSent(model.NotifTypeExpiryDigest, digestRef, testNow.Format(time.DateOnly)); sent {
		t.Error("failed digest should not be recorded")
	}

	mailer.err = nil
	if _, err := sched.SendReminders(context.Background()); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if len(mailer.digests) != 1 {
		t.Errorf("digests after retry = %d, want 1", len(mailer.digests))
	}
}
