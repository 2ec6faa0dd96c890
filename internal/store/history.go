package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dukerupert/smartshopper/internal/clock"
	"github.com/dukerupert/smartshopper/internal/model"
	"github.com/dukerupert/smartshopper/internal/rules"
)

// PurchaseInput describes a purchase to record. A zero PurchaseDate means
// now.
type PurchaseInput struct {
	ItemName         string     `json:"item_name"`
	PurchaseDate     time.Time  `json:"purchase_date"`
	ExpiryTimeInDays *int       `json:"expiry_time_in_days,omitempty"`
	ExpiryDate       *time.Time `json:"expiry_date,omitempty"`
	Quantity         *float64   `json:"quantity,omitempty"`
	Cost             *float64   `json:"cost,omitempty"`
}

type HistoryStore struct {
	db    *sql.DB
	clock clock.Clock
}

func NewHistoryStore(db *sql.DB, clk clock.Clock) *HistoryStore {
	if clk == nil {
		clk = clock.Real{}
	}
	return &HistoryStore{db: db, clock: clk}
}

func scanHistory(row scanner) (*model.PurchaseHistoryItem, error) {
	var h model.PurchaseHistoryItem
	var days sql.NullInt64
	var expiry sql.NullTime
	var quantity, cost sql.NullFloat64
	var deleted, consumed int

	err := row.Scan(
		&h.ID, &h.ItemName, &h.PurchaseDate, &days, &expiry,
		&quantity, &cost, &deleted, &consumed,
	)
	if err != nil {
		return nil, err
	}
	h.PurchaseDate = h.PurchaseDate.UTC()
	h.ExpiryTimeInDays = intPtr(days)
	h.ExpiryDate = timePtr(expiry)
	h.Quantity = floatPtr(quantity)
	h.Cost = floatPtr(cost)
	h.Deleted = deleted != 0
	h.Consumed = consumed != 0
	return &h, nil
}

const historyCols = `id, item_name, purchase_date, expiry_time_in_days, expiry_date, quantity, cost, deleted, consumed`

type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func insertHistory(db execer, h model.PurchaseHistoryItem) error {
	_, err := db.Exec(
		`INSERT INTO purchase_history (id, item_name, name_key, purchase_date, expiry_time_in_days, expiry_date, quantity, cost, deleted, consumed)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		h.ID, h.ItemName, h.Key(), h.PurchaseDate.UTC(), nullInt(h.ExpiryTimeInDays), nullTime(h.ExpiryDate),
		nullFloat(h.Quantity), nullFloat(h.Cost), boolInt(h.Deleted), boolInt(h.Consumed),
	)
	if err != nil {
		return fmt.Errorf("insert purchase: %w", err)
	}
	return nil
}

// Log records a purchase.
func (s *HistoryStore) Log(in PurchaseInput) (*model.PurchaseHistoryItem, error) {
	name := strings.TrimSpace(in.ItemName)
	if name == "" {
		return nil, fmt.Errorf("log purchase: %w", rules.ErrInvalidItem)
	}
	purchased := in.PurchaseDate
	if purchased.IsZero() {
		purchased = s.clock.Now()
	}

	h := model.PurchaseHistoryItem{
		ID:               uuid.NewString(),
		ItemName:         name,
		PurchaseDate:     purchased.UTC(),
		ExpiryTimeInDays: in.ExpiryTimeInDays,
		ExpiryDate:       in.ExpiryDate,
		Quantity:         in.Quantity,
		Cost:             in.Cost,
	}
	if err := insertHistory(s.db, h); err != nil {
		return nil, err
	}
	return s.GetByID(h.ID)
}

func (s *HistoryStore) GetByID(id string) (*model.PurchaseHistoryItem, error) {
	row := s.db.QueryRow(`SELECT `+historyCols+` FROM purchase_history WHERE id = ?`, id)
	h, err := scanHistory(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get purchase: %w", err)
	}
	return h, nil
}

// List returns purchases oldest first. Deleted and consumed records are
// only included when all is true.
func (s *HistoryStore) List(all bool) ([]model.PurchaseHistoryItem, error) {
	query := `SELECT ` + historyCols + ` FROM purchase_history`
	if !all {
		query += ` WHERE deleted = 0 AND consumed = 0`
	}
	query += ` ORDER BY purchase_date ASC, created_at ASC`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()

	history := []model.PurchaseHistoryItem{}
	for rows.Next() {
		h, err := scanHistory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		history = append(history, *h)
	}
	return history, rows.Err()
}

// ListForSuggestions returns every non-deleted purchase. Consumed records
// are included because they still count toward purchase frequency.
func (s *HistoryStore) ListForSuggestions() ([]model.PurchaseHistoryItem, error) {
	rows, err := s.db.Query(
		`SELECT ` + historyCols + ` FROM purchase_history WHERE deleted = 0 ORDER BY purchase_date ASC, created_at ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()

	history := []model.PurchaseHistoryItem{}
	for rows.Next() {
		h, err := scanHistory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		history = append(history, *h)
	}
	return history, rows.Err()
}

// MarkConsumed flags a purchase as used up.
func (s *HistoryStore) MarkConsumed(id string) (*model.PurchaseHistoryItem, error) {
	result, err := s.db.Exec(`UPDATE purchase_history SET consumed = 1 WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("mark consumed: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return nil, ErrNotFound
	}
	return s.GetByID(id)
}

// Delete soft-deletes a purchase.
func (s *HistoryStore) Delete(id string) error {
	result, err := s.db.Exec(`UPDATE purchase_history SET deleted = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete purchase: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
