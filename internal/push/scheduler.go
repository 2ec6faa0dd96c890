package push

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dukerupert/smartshopper/internal/model"
	"github.com/dukerupert/smartshopper/internal/rules"
	"github.com/dukerupert/smartshopper/internal/store"
)

// sentRetention is how long dedup records are kept.
const sentRetention = 30 * 24 * time.Hour

// Mailer delivers the daily expiry digest.
type Mailer interface {
	SendExpiryDigest(ctx context.Context, notices []model.ExpiryNotice) error
}

// digestRef is the dedup reference for the once-a-day digest.
const digestRef = "daily"

// Scheduler sends a daily push for every item that is about to expire, and
// optionally one digest email listing all of them.
type Scheduler struct {
	mu       sync.RWMutex
	sender   Sender
	mailer   Mailer
	push     *store.PushStore
	history  *store.HistoryStore
	engine   *rules.Engine
	hour     int
	interval time.Duration
	logger   *slog.Logger
	cancel   context.CancelFunc
	done     chan struct{}
}

// NewScheduler creates a reminder scheduler. Reminders go out on the first
// check at or after hour (UTC) each day. Either sender or mailer may be nil.
func NewScheduler(sender Sender, mailer Mailer, pushStore *store.PushStore, historyStore *store.HistoryStore, engine *rules.Engine, hour int, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		sender:   sender,
		mailer:   mailer,
		push:     pushStore,
		history:  historyStore,
		engine:   engine,
		hour:     hour,
		interval: 60 * time.Second,
		logger:   logger,
	}
}

// Start begins the scheduler loop.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})
	s.mu.Unlock()

	go func() {
		defer close(s.done)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.tick(ctx)
			}
		}
	}()
}

// Stop gracefully stops the scheduler.
func (s *Scheduler) Stop() {
	s.mu.RLock()
	cancel := s.cancel
	done := s.done
	s.mu.RUnlock()

	if cancel != nil {
		cancel()
	}
	if done != nil {
		<-done
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	now := s.engine.Now().UTC()
	if now.Hour() < s.hour {
		return
	}
	if _, err := s.SendReminders(ctx); err != nil {
		s.logger.Error("send expiry reminders", "error", err)
	}
}

// SendReminders evaluates the active purchase history and pushes one
// notification per expiring item to every subscription. Items already
// reminded about today are skipped. It returns the number of items pushed.
// When a mailer is set the full list also goes out as one digest per day.
func (s *Scheduler) SendReminders(ctx context.Context) (int, error) {
	now := s.engine.Now().UTC()
	day := now.Format(time.DateOnly)

	history, err := s.history.List(false)
	if err != nil {
		return 0, fmt.Errorf("list history: %w", err)
	}
	notices := rules.EvaluateExpiry(history, s.engine.Tables(ctx), now)
	if len(notices) == 0 {
		return 0, nil
	}

	var subs []model.PushSubscription
	if s.sender != nil {
		if subs, err = s.push.List(); err != nil {
			return 0, fmt.Errorf("list subscriptions: %w", err)
		}
	}
	if len(subs) == 0 && s.mailer == nil {
		return 0, nil
	}

	sent := 0
	if len(subs) > 0 {
		sent = s.pushNotices(ctx, notices, subs, day)
		s.logger.Info("expiry reminders sent", "items", sent, "subscriptions", len(subs))
	}
	if s.mailer != nil {
		s.sendDigest(ctx, notices, day)
	}

	if err := s.push.CleanupSent(now.Add(-sentRetention)); err != nil {
		s.logger.Warn("cleanup sent notifications", "error", err)
	}
	return sent, nil
}

func (s *Scheduler) pushNotices(ctx context.Context, notices []model.ExpiryNotice, subs []model.PushSubscription, day string) int {
	sent := 0
	gone := make(map[string]bool)
	for _, notice := range notices {
		refID := model.NameKey(notice.Item)
		already, err := s.push.WasSent(model.NotifTypeExpiryReminder, refID, day)
		if err != nil {
			s.logger.Error("check sent notification", "item", notice.Item, "error", err)
			continue
		}
		if already {
			continue
		}

		payload := reminderPayload(notice)
		delivered := false
		for i := range subs {
			sub := &subs[i]
			if gone[sub.Endpoint] {
				continue
			}
			err := s.sender.Send(ctx, sub, payload)
			if err == nil {
				delivered = true
				continue
			}
			if errors.Is(err, ErrExpired) {
				s.logger.Info("removing expired subscription", "subscription_id", sub.ID)
				gone[sub.Endpoint] = true
				if err := s.push.DeleteByEndpoint(sub.Endpoint); err != nil {
					s.logger.Error("delete expired subscription", "error", err)
				}
				continue
			}
			s.logger.Warn("send expiry reminder", "item", notice.Item, "subscription_id", sub.ID, "error", err)
		}
		// Undelivered items stay unrecorded so the next run retries them.
		if !delivered {
			continue
		}

		if err := s.push.RecordSent(model.NotifTypeExpiryReminder, refID, day); err != nil {
			s.logger.Error("record sent notification", "item", notice.Item, "error", err)
		}
		sent++
	}
	return sent
}

func (s *Scheduler) sendDigest(ctx context.Context, notices []model.ExpiryNotice, day string) {
	already, err := s.push.WasSent(model.NotifTypeExpiryDigest, digestRef, day)
	if err != nil {
		s.logger.Error("check sent digest", "error", err)
		return
	}
	if already {
		return
	}
	if err := s.mailer.SendExpiryDigest(ctx, notices); err != nil {
		s.logger.Error("send expiry digest", "error", err)
		return
	}
	if err := s.push.RecordSent(model.NotifTypeExpiryDigest, digestRef, day); err != nil {
		s.logger.Error("record sent digest", "error", err)
	}
	s.logger.Info("expiry digest sent", "items", len(notices))
}

func reminderPayload(n model.ExpiryNotice) Payload {
	title := "Expiring Soon"
	if n.Severity == model.SeverityCritical {
		title = "Item Expired"
	}
	return Payload{
		Title: title,
		Body:  n.Message,
		URL:   "/",
		Tag:   "expiry-" + model.NameKey(n.Item),
	}
}
