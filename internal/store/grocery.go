package store

import (
	"database/sql"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dukerupert/smartshopper/internal/clock"
	"github.com/dukerupert/smartshopper/internal/model"
	"github.com/dukerupert/smartshopper/internal/rules"
)

// ItemInput holds the editable fields of a grocery item.
type ItemInput struct {
	Name       string     `json:"name"`
	Quantity   *float64   `json:"quantity,omitempty"`
	Unit       string     `json:"unit,omitempty"`
	Category   string     `json:"category,omitempty"`
	ExpiryDate *time.Time `json:"expiry_date,omitempty"`
}

type GroceryStore struct {
	db    *sql.DB
	clock clock.Clock
}

func NewGroceryStore(db *sql.DB, clk clock.Clock) *GroceryStore {
	if clk == nil {
		clk = clock.Real{}
	}
	return &GroceryStore{db: db, clock: clk}
}

func scanItem(row scanner) (*model.GroceryItem, error) {
	var item model.GroceryItem
	var quantity sql.NullFloat64
	var expiry sql.NullTime

	err := row.Scan(&item.ID, &item.Name, &quantity, &item.Unit, &item.Category, &expiry, &item.AddedDate)
	if err != nil {
		return nil, err
	}
	item.Quantity = floatPtr(quantity)
	item.ExpiryDate = timePtr(expiry)
	item.AddedDate = item.AddedDate.UTC()
	return &item, nil
}

const itemCols = `id, name, quantity, unit, category, expiry_date, added_date`

func (s *GroceryStore) GetByID(id string) (*model.GroceryItem, error) {
	row := s.db.QueryRow(`SELECT `+itemCols+` FROM grocery_items WHERE id = ?`, id)
	item, err := scanItem(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	return item, nil
}

func (s *GroceryStore) List() ([]model.GroceryItem, error) {
	rows, err := s.db.Query(`SELECT ` + itemCols + ` FROM grocery_items ORDER BY added_date ASC, name_key ASC`)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	items := []model.GroceryItem{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

// Add puts an item on the list and records the purchase in the history.
// Items without a category are categorized by name.
func (s *GroceryStore) Add(in ItemInput) (*model.GroceryItem, *model.PurchaseHistoryItem, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, nil, fmt.Errorf("add item: %w", rules.ErrInvalidItem)
	}
	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = rules.Categorize(name)
	}
	now := s.clock.Now().UTC()

	tx, err := s.db.Begin()
	if err != nil {
		return nil, nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if taken, err := nameTaken(tx, model.NameKey(name), ""); err != nil {
		return nil, nil, err
	} else if taken {
		return nil, nil, ErrDuplicateItem
	}

	itemID := uuid.NewString()
	_, err = tx.Exec(
		`INSERT INTO grocery_items (id, name, name_key, quantity, unit, category, expiry_date, added_date)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		itemID, name, model.NameKey(name), nullFloat(in.Quantity), strings.TrimSpace(in.Unit), category, nullTime(in.ExpiryDate), now,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("insert item: %w", err)
	}

	history := model.PurchaseHistoryItem{
		ID:           uuid.NewString(),
		ItemName:     name,
		PurchaseDate: now,
		ExpiryDate:   in.ExpiryDate,
		Quantity:     in.Quantity,
	}
	if err := insertHistory(tx, history); err != nil {
		return nil, nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("commit: %w", err)
	}

	item, err := s.GetByID(itemID)
	if err != nil {
		return nil, nil, err
	}
	return item, &history, nil
}

// Update edits an item. A new expiry date is copied onto the active
// purchase records of the same name.
func (s *GroceryStore) Update(id string, in ItemInput) (*model.GroceryItem, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("update item: %w", rules.ErrInvalidItem)
	}
	key := model.NameKey(name)
	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = rules.Categorize(name)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if taken, err := nameTaken(tx, key, id); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrDuplicateItem
	}

	result, err := tx.Exec(
		`UPDATE grocery_items SET name = ?, name_key = ?, quantity = ?, unit = ?, category = ?, expiry_date = ? WHERE id = ?`,
		name, key, nullFloat(in.Quantity), strings.TrimSpace(in.Unit), category, nullTime(in.ExpiryDate), id,
	)
	if err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return nil, ErrNotFound
	}

	if in.ExpiryDate != nil {
		if err := syncHistoryExpiry(tx, key, *in.ExpiryDate); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return s.GetByID(id)
}

// Delete removes an item from the list and soft-deletes every purchase
// record with the same name so it stops producing reminders.
func (s *GroceryStore) Delete(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var key string
	err = tx.QueryRow(`SELECT name_key FROM grocery_items WHERE id = ?`, id).Scan(&key)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("get item: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM grocery_items WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if _, err := tx.Exec(`UPDATE purchase_history SET deleted = 1 WHERE name_key = ?`, key); err != nil {
		return fmt.Errorf("delete item history: %w", err)
	}
	return tx.Commit()
}

func nameTaken(tx *sql.Tx, key, exceptID string) (bool, error) {
	var count int
	err := tx.QueryRow(`SELECT COUNT(*) FROM grocery_items WHERE name_key = ? AND id != ?`, key, exceptID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("check duplicate item: %w", err)
	}
	return count > 0, nil
}

func syncHistoryExpiry(tx *sql.Tx, key string, expiry time.Time) error {
	rows, err := tx.Query(
		`SELECT id, purchase_date FROM purchase_history WHERE name_key = ? AND deleted = 0 AND consumed = 0`,
		key,
	)
	if err != nil {
		return fmt.Errorf("list history for expiry sync: %w", err)
	}

	type record struct {
		id       string
		purchase time.Time
	}
	var records []record
	for rows.Next() {
		var r record
		if err := rows.Scan(&r.id, &r.purchase); err != nil {
			rows.Close()
			return fmt.Errorf("scan history: %w", err)
		}
		records = append(records, r)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("list history for expiry sync: %w", err)
	}

	for _, r := range records {
		days := shelfDays(r.purchase, expiry)
		_, err := tx.Exec(
			`UPDATE purchase_history SET expiry_date = ?, expiry_time_in_days = ? WHERE id = ?`,
			expiry.UTC(), days, r.id,
		)
		if err != nil {
			return fmt.Errorf("sync history expiry: %w", err)
		}
	}
	return nil
}

// shelfDays is the number of days from purchase to expiry, rounded up and
// never negative.
func shelfDays(purchase, expiry time.Time) int {
	days := math.Ceil(expiry.Sub(purchase).Hours() / 24)
	if days < 0 {
		return 0
	}
	return int(days)
}
