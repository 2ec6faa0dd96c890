package server

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/dukerupert/smartshopper/internal/assistant"
	"github.com/dukerupert/smartshopper/internal/backup"
	"github.com/dukerupert/smartshopper/internal/clock"
	"github.com/dukerupert/smartshopper/internal/database"
	"github.com/dukerupert/smartshopper/internal/handler"
	"github.com/dukerupert/smartshopper/internal/middleware"
	"github.com/dukerupert/smartshopper/internal/push"
	"github.com/dukerupert/smartshopper/internal/rulepack"
	"github.com/dukerupert/smartshopper/internal/rules"
	"github.com/dukerupert/smartshopper/internal/store"
	ws "github.com/dukerupert/smartshopper/internal/websocket"
)

// Config holds the optional parts of the server. Zero values disable them.
type Config struct {
	// RulesFile is a JSON or YAML rule pack applied beneath stored overrides.
	RulesFile string

	VAPIDPublicKey  string
	VAPIDPrivateKey string
	VAPIDSubscriber string
	ReminderHour    int

	// Mailer sends the daily expiry digest.
	Mailer push.Mailer

	// Assistant is the generative fallback for empty suggestion kinds.
	Assistant handler.Assistant

	// Backup enables encrypted snapshots to S3-compatible storage.
	Backup backup.Config

	OriginPatterns []string
	Clock          clock.Clock
}

type Server struct {
	db          *sql.DB
	hub         *ws.Hub
	groceryH    *handler.GroceryHandler
	historyH    *handler.HistoryHandler
	ruleH       *handler.RuleHandler
	suggestionH *handler.SuggestionHandler
	pushH       *handler.PushHandler
	backupH     *handler.BackupHandler
	rateLimiter *middleware.RateLimiter
	reminders   *push.Scheduler
	backups     *backup.Manager
	cfg         Config
	logger      *slog.Logger
}

func New(db *sql.DB, cfg Config, logger *slog.Logger) *Server {
	clk := cfg.Clock
	if clk == nil {
		clk = clock.Real{}
	}
	hub := ws.NewHub(logger.With("component", "websocket"))

	groceryStore := store.NewGroceryStore(db, clk)
	historyStore := store.NewHistoryStore(db, clk)
	ruleStore := store.NewRuleStore(db)
	pushSt := store.NewPushStore(db)

	var source rules.OverrideSource = ruleStore
	if cfg.RulesFile != "" {
		source = rulepack.Layered{rulepack.FileSource{Path: cfg.RulesFile}, ruleStore}
	}
	engine := rules.NewEngine(source, clk, logger.With("component", "rules"))

	var pushSvc *push.Service
	var sender push.Sender
	if cfg.VAPIDPublicKey != "" && cfg.VAPIDPrivateKey != "" {
		pushSvc = push.NewService(cfg.VAPIDPublicKey, cfg.VAPIDPrivateKey, cfg.VAPIDSubscriber)
		sender = pushSvc
	}
	var reminders *push.Scheduler
	if sender != nil || cfg.Mailer != nil {
		reminders = push.NewScheduler(sender, cfg.Mailer, pushSt, historyStore, engine, cfg.ReminderHour, logger.With("component", "reminders"))
	}
	var pushH *handler.PushHandler
	if pushSvc != nil {
		pushH = handler.NewPushHandler(pushSt, pushSvc, pushSvc.VAPIDPublicKey(), reminders, hub, logger.With("component", "push_handler"))
	}

	backupStore := store.NewBackupStore(db, clk)
	backups := backup.NewManager(cfg.Backup, db, backupStore, clk, func(st backup.Status) {
		hub.Broadcast(ws.NewMessage(ws.EntityBackup, ws.ActionStatus, "", map[string]any{
			"state":       st.State,
			"in_progress": st.InProgress,
		}))
	}, logger.With("component", "backup"))

	return &Server{
		db:          db,
		hub:         hub,
		groceryH:    handler.NewGroceryHandler(groceryStore, hub, logger.With("component", "grocery")),
		historyH:    handler.NewHistoryHandler(historyStore, hub, logger.With("component", "history")),
		ruleH:       handler.NewRuleHandler(ruleStore, engine, hub, logger.With("component", "rules_handler")),
		suggestionH: handler.NewSuggestionHandler(groceryStore, historyStore, engine, cfg.Assistant, logger.With("component", "suggestions")),
		pushH:       pushH,
		backupH:     handler.NewBackupHandler(backupStore, backups, logger.With("component", "backup_handler")),
		rateLimiter: middleware.NewRateLimiter(clk),
		reminders:   reminders,
		backups:     backups,
		cfg:         cfg,
		logger:      logger,
	}
}

// RateLimiter returns the rate limiter for cleanup tasks.
func (s *Server) RateLimiter() *middleware.RateLimiter {
	return s.rateLimiter
}

// ReminderScheduler returns the expiry reminder scheduler, or nil when
// neither push nor email is configured.
func (s *Server) ReminderScheduler() *push.Scheduler {
	return s.reminders
}

// BackupManager returns the backup manager. It is never nil; check its
// Status for whether backups are enabled.
func (s *Server) BackupManager() *backup.Manager {
	return s.backups
}

// Hub returns the websocket hub.
func (s *Server) Hub() *ws.Hub {
	return s.hub
}

func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.healthHandler)

	// Grocery list
	mux.HandleFunc("GET /api/items", s.groceryH.List)
	mux.HandleFunc("POST /api/items", s.groceryH.Create)
	mux.HandleFunc("PUT /api/items/{id}", s.groceryH.Update)
	mux.HandleFunc("DELETE /api/items/{id}", s.groceryH.Delete)

	// Purchase history
	mux.HandleFunc("GET /api/history", s.historyH.List)
	mux.HandleFunc("POST /api/history", s.historyH.Create)
	mux.HandleFunc("POST /api/history/{id}/consume", s.historyH.Consume)
	mux.HandleFunc("DELETE /api/history/{id}", s.historyH.Delete)

	// Rule overrides
	mux.HandleFunc("GET /api/rules", s.ruleH.List)
	mux.HandleFunc("GET /api/rules/effective", s.ruleH.Effective)
	mux.HandleFunc("PUT /api/rules/healthier", s.ruleH.SaveHealthier)
	mux.HandleFunc("DELETE /api/rules/healthier/{id}", s.ruleH.DeleteHealthier)
	mux.HandleFunc("PUT /api/rules/associations", s.ruleH.SaveAssociation)
	mux.HandleFunc("DELETE /api/rules/associations/{id}", s.ruleH.DeleteAssociation)
	mux.HandleFunc("PUT /api/rules/expiry", s.ruleH.SaveExpiryRule)
	mux.HandleFunc("DELETE /api/rules/expiry/{id}", s.ruleH.DeleteExpiryRule)
	mux.HandleFunc("GET /api/rules/export", s.ruleH.Export)
	mux.HandleFunc("POST /api/rules/import", s.ruleH.Import)
	mux.HandleFunc("POST /api/rules/reset", s.ruleH.Reset)

	// Suggestions
	mux.HandleFunc("GET /api/suggestions", s.rateLimitedHandler(s.suggestionH.All))
	mux.HandleFunc("GET /api/suggestions/{kind}", s.rateLimitedHandler(s.suggestionH.Kind))

	// Push notification API routes
	if s.pushH != nil {
		mux.HandleFunc("POST /api/push/subscribe", s.pushH.Subscribe)
		mux.HandleFunc("DELETE /api/push/subscriptions/{id}", s.pushH.Unsubscribe)
		mux.HandleFunc("GET /api/push/subscriptions", s.pushH.ListSubscriptions)
		mux.HandleFunc("GET /api/push/vapid-key", s.pushH.GetVAPIDKey)
		mux.HandleFunc("POST /api/push/test", s.rateLimitedHandler(s.pushH.TestNotification))
		mux.HandleFunc("POST /api/push/reminders", s.rateLimitedHandler(s.pushH.SendReminders))
	}

	// Backups
	mux.HandleFunc("GET /api/backups", s.backupH.List)
	mux.HandleFunc("POST /api/backups", s.rateLimitedHandler(s.backupH.Create))
	mux.HandleFunc("GET /api/backups/status", s.backupH.Status)
	mux.HandleFunc("GET /api/backups/{id}/download", s.backupH.Download)

	// WebSocket
	mux.HandleFunc("GET /ws", ws.HandleWebSocket(s.hub, s.cfg.OriginPatterns))

	// Apply request logging middleware
	return middleware.RequestLogger(s.logger.With("component", "http"))(mux)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	body := map[string]any{"status": "ok"}
	code := http.StatusOK
	if err := s.db.PingContext(ctx); err != nil {
		s.logger.Error("health check", "error", err)
		body["status"] = "unavailable"
		code = http.StatusServiceUnavailable
	} else if v, err := database.SchemaVersion(ctx, s.db); err == nil {
		body["schema_version"] = v
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}

func (s *Server) rateLimitedHandler(h http.HandlerFunc) http.HandlerFunc {
	keyFunc := func(r *http.Request) string {
		return middleware.RealIP(r)
	}
	rl := middleware.RateLimit(s.rateLimiter, keyFunc, 10, time.Minute)
	return func(w http.ResponseWriter, r *http.Request) {
		rl(http.HandlerFunc(h)).ServeHTTP(w, r)
	}
}

// NewAssistant builds the Gemini fallback, or returns nil when apiKey is
// empty.
func NewAssistant(ctx context.Context, apiKey, modelName string, logger *slog.Logger) (handler.Assistant, error) {
	if apiKey == "" {
		return nil, nil
	}
	g, err := assistant.NewGemini(ctx, apiKey, modelName, logger.With("component", "assistant"))
	if err != nil {
		return nil, err
	}
	return g, nil
}
