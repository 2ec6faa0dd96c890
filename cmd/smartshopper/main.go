package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/dukerupert/smartshopper/internal/assistant"
	"github.com/dukerupert/smartshopper/internal/backup"
	"github.com/dukerupert/smartshopper/internal/clock"
	"github.com/dukerupert/smartshopper/internal/database"
	"github.com/dukerupert/smartshopper/internal/email"
	"github.com/dukerupert/smartshopper/internal/logging"
	"github.com/dukerupert/smartshopper/internal/push"
	"github.com/dukerupert/smartshopper/internal/server"
	"github.com/dukerupert/smartshopper/internal/store"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "gen-vapid-keys" {
		public, private, err := push.GenerateVAPIDKeys()
		if err != nil {
			fmt.Fprintln(os.Stderr, "generate vapid keys:", err)
			os.Exit(1)
		}
		fmt.Printf("SMARTSHOPPER_VAPID_PUBLIC_KEY=%s\nSMARTSHOPPER_VAPID_PRIVATE_KEY=%s\n", public, private)
		return
	}

	// Variables already in the environment take precedence over .env.
	envErr := godotenv.Load()

	logger := logging.Setup(os.Getenv("SMARTSHOPPER_LOG_LEVEL"), os.Getenv("SMARTSHOPPER_LOG_FORMAT"))
	if envErr != nil && !errors.Is(envErr, fs.ErrNotExist) {
		slog.Error("failed to load .env", "error", envErr)
		os.Exit(1)
	}

	if len(os.Args) > 1 && os.Args[1] == "restore-backup" {
		if err := restoreBackup(os.Args[2:], logger); err != nil {
			slog.Error("restore failed", "error", err)
			os.Exit(1)
		}
		return
	}

	port := os.Getenv("SMARTSHOPPER_PORT")
	if port == "" {
		port = "8080"
	}

	dbPath := os.Getenv("SMARTSHOPPER_DB_PATH")
	if dbPath == "" {
		dbPath = "smartshopper.db"
	}

	reminderHour := envInt("SMARTSHOPPER_REMINDER_HOUR", 8, 0, 23)
	backupCfg := backupConfig()

	db, err := database.Open(dbPath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	modelName := os.Getenv("SMARTSHOPPER_GEMINI_MODEL")
	if modelName == "" {
		modelName = assistant.DefaultModel
	}
	fallback, err := server.NewAssistant(context.Background(), os.Getenv("GEMINI_API_KEY"), modelName, logger)
	if err != nil {
		slog.Error("failed to create assistant", "error", err)
		os.Exit(1)
	}
	if fallback == nil {
		slog.Info("generative fallback disabled")
	}

	var mailer push.Mailer
	digest := email.NewClient(
		os.Getenv("SMARTSHOPPER_POSTMARK_TOKEN"),
		os.Getenv("SMARTSHOPPER_EMAIL_FROM"),
		splitList(os.Getenv("SMARTSHOPPER_EMAIL_TO")),
	)
	if digest.Configured() {
		mailer = digest
	} else {
		slog.Info("expiry digest email disabled")
	}

	cfg := server.Config{
		RulesFile:       os.Getenv("SMARTSHOPPER_RULES_FILE"),
		VAPIDPublicKey:  os.Getenv("SMARTSHOPPER_VAPID_PUBLIC_KEY"),
		VAPIDPrivateKey: os.Getenv("SMARTSHOPPER_VAPID_PRIVATE_KEY"),
		VAPIDSubscriber: os.Getenv("SMARTSHOPPER_VAPID_SUBSCRIBER"),
		ReminderHour:    reminderHour,
		Mailer:          mailer,
		Assistant:       fallback,
		Backup:          backupCfg,
		OriginPatterns:  splitList(os.Getenv("SMARTSHOPPER_ALLOWED_ORIGINS")),
	}

	srv := server.New(db, cfg, logger)

	httpServer := &http.Server{
		Addr:              ":" + port,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	if sched := srv.ReminderScheduler(); sched != nil {
		sched.Start(context.Background())
		defer sched.Stop()
	} else {
		slog.Info("expiry reminders disabled, neither VAPID keys nor email are set")
	}

	if backupCfg.Enabled() {
		srv.BackupManager().Start(context.Background())
		defer srv.BackupManager().Stop()
	} else {
		slog.Info("scheduled backups disabled, storage or passphrase not set")
	}

	// Background cleanup goroutine
	cleanupCtx, cleanupCancel := context.WithCancel(context.Background())
	defer cleanupCancel()
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if n := srv.RateLimiter().Cleanup(); n > 0 {
					logger.Debug("rate limiter cleanup", "removed", n)
				}
			case <-cleanupCtx.Done():
				return
			}
		}
	}()

	go func() {
		slog.Info("smartshopper starting", "addr", ":"+port, "db", dbPath)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down")
	cleanupCancel()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
}

// envInt reads an integer env var within [lo, hi], exiting on bad input.
func envInt(name string, def, lo, hi int) int {
	v := os.Getenv(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < lo || n > hi {
		slog.Error("invalid "+name, "value", v)
		os.Exit(1)
	}
	return n
}

func backupConfig() backup.Config {
	return backup.Config{
		S3: backup.S3Config{
			Endpoint:  os.Getenv("SMARTSHOPPER_BACKUP_S3_ENDPOINT"),
			Bucket:    os.Getenv("SMARTSHOPPER_BACKUP_S3_BUCKET"),
			Region:    os.Getenv("SMARTSHOPPER_BACKUP_S3_REGION"),
			AccessKey: os.Getenv("SMARTSHOPPER_BACKUP_S3_ACCESS_KEY"),
			SecretKey: os.Getenv("SMARTSHOPPER_BACKUP_S3_SECRET_KEY"),
		},
		Passphrase:    os.Getenv("SMARTSHOPPER_BACKUP_PASSPHRASE"),
		Hour:          envInt("SMARTSHOPPER_BACKUP_HOUR", 3, 0, 23),
		RetentionDays: envInt("SMARTSHOPPER_BACKUP_RETENTION_DAYS", 30, 1, 3650),
	}
}

// restoreBackup handles "smartshopper restore-backup <id> <dest>". The
// restored database is written to dest; swapping it in is left to the
// operator while the server is stopped.
func restoreBackup(args []string, logger *slog.Logger) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: smartshopper restore-backup <id> <dest>")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid backup id %q", args[0])
	}

	cfg := backupConfig()
	if !cfg.Enabled() {
		return backup.ErrDisabled
	}

	dbPath := os.Getenv("SMARTSHOPPER_DB_PATH")
	if dbPath == "" {
		dbPath = "smartshopper.db"
	}
	db, err := database.Open(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	m := backup.NewManager(cfg, db, store.NewBackupStore(db, clock.Real{}), clock.Real{}, nil, logger.With("component", "backup"))
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	if err := m.Restore(ctx, id, args[1]); err != nil {
		return err
	}
	fmt.Printf("backup %d restored to %s\n", id, args[1])
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
