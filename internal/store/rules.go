package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dukerupert/smartshopper/internal/model"
	"github.com/dukerupert/smartshopper/internal/rules"
)

// RuleStore persists user rule overrides. Entries are keyed by their
// lowercased, trimmed item name; saving an entry with an existing key
// replaces it.
type RuleStore struct {
	db *sql.DB
}

func NewRuleStore(db *sql.DB) *RuleStore {
	return &RuleStore{db: db}
}

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// --- Healthier alternatives ---

func scanHealthier(row scanner) (*model.HealthierAlternative, error) {
	var r model.HealthierAlternative
	if err := row.Scan(&r.ID, &r.UnhealthyItem, &r.HealthyAlternative, &r.Category); err != nil {
		return nil, err
	}
	return &r, nil
}

const healthierCols = `id, unhealthy_item, healthy_alternative, category`

func (s *RuleStore) ListHealthier() ([]model.HealthierAlternative, error) {
	return listHealthier(context.Background(), s.db)
}

func listHealthier(ctx context.Context, q queryer) ([]model.HealthierAlternative, error) {
	rows, err := q.QueryContext(ctx, `SELECT `+healthierCols+` FROM healthier_alternatives ORDER BY updated_at ASC, item_key ASC`)
	if err != nil {
		return nil, fmt.Errorf("list healthier alternatives: %w", err)
	}
	defer rows.Close()

	out := []model.HealthierAlternative{}
	for rows.Next() {
		r, err := scanHealthier(rows)
		if err != nil {
			return nil, fmt.Errorf("scan healthier alternative: %w", err)
		}
		out = append(out, *r)
	}
	return out, rows.Err()
}

func (s *RuleStore) SaveHealthier(r model.HealthierAlternative) (*model.HealthierAlternative, error) {
	if err := saveHealthier(s.db, r); err != nil {
		return nil, err
	}
	row := s.db.QueryRow(`SELECT `+healthierCols+` FROM healthier_alternatives WHERE item_key = ?`, model.NameKey(r.UnhealthyItem))
	saved, err := scanHealthier(row)
	if err != nil {
		return nil, fmt.Errorf("get healthier alternative: %w", err)
	}
	return saved, nil
}

func saveHealthier(db execer, r model.HealthierAlternative) error {
	item := strings.TrimSpace(r.UnhealthyItem)
	alt := strings.TrimSpace(r.HealthyAlternative)
	if item == "" || alt == "" {
		return fmt.Errorf("save healthier alternative: %w", rules.ErrInvalidItem)
	}
	_, err := db.Exec(
		`INSERT INTO healthier_alternatives (id, item_key, unhealthy_item, healthy_alternative, category)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(item_key) DO UPDATE SET
		   unhealthy_item = excluded.unhealthy_item,
		   healthy_alternative = excluded.healthy_alternative,
		   category = excluded.category,
		   updated_at = CURRENT_TIMESTAMP`,
		uuid.NewString(), model.NameKey(item), item, alt, strings.TrimSpace(r.Category),
	)
	if err != nil {
		return fmt.Errorf("save healthier alternative: %w", err)
	}
	return nil
}

func (s *RuleStore) DeleteHealthier(id string) error {
	return s.deleteByID("healthier_alternatives", id)
}

// --- Category associations ---

func scanAssociation(row scanner) (*model.CategoryAssociation, error) {
	var r model.CategoryAssociation
	var items string
	if err := row.Scan(&r.ID, &r.PrimaryItem, &items, &r.Category); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(items), &r.SuggestedItems); err != nil {
		return nil, fmt.Errorf("decode suggested items: %w", err)
	}
	if r.SuggestedItems == nil {
		r.SuggestedItems = []string{}
	}
	return &r, nil
}

const associationCols = `id, primary_item, suggested_items, category`

func (s *RuleStore) ListAssociations() ([]model.CategoryAssociation, error) {
	return listAssociations(context.Background(), s.db)
}

func listAssociations(ctx context.Context, q queryer) ([]model.CategoryAssociation, error) {
	rows, err := q.QueryContext(ctx, `SELECT `+associationCols+` FROM category_associations ORDER BY updated_at ASC, item_key ASC`)
	if err != nil {
		return nil, fmt.Errorf("list category associations: %w", err)
	}
	defer rows.Close()

	out := []model.CategoryAssociation{}
	for rows.Next() {
		r, err := scanAssociation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category association: %w", err)
		}
		out = append(out, *r)
	}
	return out, rows.Err()
}

func (s *RuleStore) SaveAssociation(r model.CategoryAssociation) (*model.CategoryAssociation, error) {
	if err := saveAssociation(s.db, r); err != nil {
		return nil, err
	}
	row := s.db.QueryRow(`SELECT `+associationCols+` FROM category_associations WHERE item_key = ?`, model.NameKey(r.PrimaryItem))
	saved, err := scanAssociation(row)
	if err != nil {
		return nil, fmt.Errorf("get category association: %w", err)
	}
	return saved, nil
}

func saveAssociation(db execer, r model.CategoryAssociation) error {
	item := strings.TrimSpace(r.PrimaryItem)
	if item == "" || r.SuggestedItems == nil {
		return fmt.Errorf("save category association: %w", rules.ErrInvalidItem)
	}
	suggested := make([]string, 0, len(r.SuggestedItems))
	for _, s := range r.SuggestedItems {
		if s = strings.TrimSpace(s); s != "" {
			suggested = append(suggested, s)
		}
	}
	items, err := json.Marshal(suggested)
	if err != nil {
		return fmt.Errorf("encode suggested items: %w", err)
	}
	_, err = db.Exec(
		`INSERT INTO category_associations (id, item_key, primary_item, suggested_items, category)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(item_key) DO UPDATE SET
		   primary_item = excluded.primary_item,
		   suggested_items = excluded.suggested_items,
		   category = excluded.category,
		   updated_at = CURRENT_TIMESTAMP`,
		uuid.NewString(), model.NameKey(item), item, string(items), strings.TrimSpace(r.Category),
	)
	if err != nil {
		return fmt.Errorf("save category association: %w", err)
	}
	return nil
}

func (s *RuleStore) DeleteAssociation(id string) error {
	return s.deleteByID("category_associations", id)
}

// --- Expiry rules ---

func scanExpiryRule(row scanner) (*model.DefaultExpiryRule, error) {
	var r model.DefaultExpiryRule
	if err := row.Scan(&r.ID, &r.ItemName, &r.Category, &r.DefaultExpiryDays); err != nil {
		return nil, err
	}
	return &r, nil
}

const expiryRuleCols = `id, item_name, category, default_expiry_days`

func (s *RuleStore) ListExpiryRules() ([]model.DefaultExpiryRule, error) {
	return listExpiryRules(context.Background(), s.db)
}

func listExpiryRules(ctx context.Context, q queryer) ([]model.DefaultExpiryRule, error) {
	rows, err := q.QueryContext(ctx, `SELECT `+expiryRuleCols+` FROM expiry_rules ORDER BY updated_at ASC, item_key ASC`)
	if err != nil {
		return nil, fmt.Errorf("list expiry rules: %w", err)
	}
	defer rows.Close()

	out := []model.DefaultExpiryRule{}
	for rows.Next() {
		r, err := scanExpiryRule(rows)
		if err != nil {
			return nil, fmt.Errorf("scan expiry rule: %w", err)
		}
		out = append(out, *r)
	}
	return out, rows.Err()
}

func (s *RuleStore) SaveExpiryRule(r model.DefaultExpiryRule) (*model.DefaultExpiryRule, error) {
	if err := saveExpiryRule(s.db, r); err != nil {
		return nil, err
	}
	row := s.db.QueryRow(`SELECT `+expiryRuleCols+` FROM expiry_rules WHERE item_key = ?`, model.NameKey(r.ItemName))
	saved, err := scanExpiryRule(row)
	if err != nil {
		return nil, fmt.Errorf("get expiry rule: %w", err)
	}
	return saved, nil
}

func saveExpiryRule(db execer, r model.DefaultExpiryRule) error {
	item := strings.TrimSpace(r.ItemName)
	if item == "" || r.DefaultExpiryDays <= 0 {
		return fmt.Errorf("save expiry rule: %w", rules.ErrInvalidItem)
	}
	_, err := db.Exec(
		`INSERT INTO expiry_rules (id, item_key, item_name, category, default_expiry_days)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(item_key) DO UPDATE SET
		   item_name = excluded.item_name,
		   category = excluded.category,
		   default_expiry_days = excluded.default_expiry_days,
		   updated_at = CURRENT_TIMESTAMP`,
		uuid.NewString(), model.NameKey(item), item, strings.TrimSpace(r.Category), r.DefaultExpiryDays,
	)
	if err != nil {
		return fmt.Errorf("save expiry rule: %w", err)
	}
	return nil
}

func (s *RuleStore) DeleteExpiryRule(id string) error {
	return s.deleteByID("expiry_rules", id)
}

// --- Whole rule sets ---

func (s *RuleStore) deleteByID(table, id string) error {
	result, err := s.db.Exec(`DELETE FROM `+table+` WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// LoadOverrides returns every stored override. It satisfies
// rules.OverrideSource.
func (s *RuleStore) LoadOverrides(ctx context.Context) (*model.RuleSet, error) {
	healthier, err := listHealthier(ctx, s.db)
	if err != nil {
		return nil, err
	}
	associations, err := listAssociations(ctx, s.db)
	if err != nil {
		return nil, err
	}
	expiry, err := listExpiryRules(ctx, s.db)
	if err != nil {
		return nil, err
	}
	return &model.RuleSet{
		HealthierAlternatives: healthier,
		CategoryAssociations:  associations,
		DefaultExpiryRules:    expiry,
	}, nil
}

// ReplaceAll swaps every stored override for the entries in rs. Invalid
// entries fail the whole import.
func (s *RuleStore) ReplaceAll(rs *model.RuleSet) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err := clearRules(tx); err != nil {
		return err
	}
	if rs != nil {
		for _, r := range rs.HealthierAlternatives {
			if err := saveHealthier(tx, r); err != nil {
				return err
			}
		}
		for _, r := range rs.CategoryAssociations {
			if err := saveAssociation(tx, r); err != nil {
				return err
			}
		}
		for _, r := range rs.DefaultExpiryRules {
			if err := saveExpiryRule(tx, r); err != nil {
				return err
			}
		}
	}
	return tx.Commit()
}

// Reset removes every override so the built-in tables apply again.
func (s *RuleStore) Reset() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err := clearRules(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func clearRules(tx *sql.Tx) error {
	for _, table := range []string{"healthier_alternatives", "category_associations", "expiry_rules"} {
		if _, err := tx.Exec(`DELETE FROM ` + table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	return nil
}
