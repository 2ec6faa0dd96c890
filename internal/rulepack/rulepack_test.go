package rulepack

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dukerupert/smartshopper/internal/model"
	"github.com/dukerupert/smartshopper/internal/rules"
)

func sampleRules() *model.RuleSet {
	return &model.RuleSet{
		HealthierAlternatives: []model.HealthierAlternative{
			{UnhealthyItem: "white bread", HealthyAlternative: "sourdough", Category: "Bakery"},
		},
		CategoryAssociations: []model.CategoryAssociation{
			{PrimaryItem: "tea", SuggestedItems: []string{"lemon", "honey"}},
		},
		DefaultExpiryRules: []model.DefaultExpiryRule{
			{ItemName: "kombucha", Category: "Beverages", DefaultExpiryDays: 30},
		},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	for _, name := range []string{"rules.json", "rules.yaml", "rules.yml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			if err := Save(path, sampleRules()); err != nil {
				t.Fatalf("save: %v", err)
			}
			got, err := Load(path)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if diff := cmp.Diff(sampleRules(), got); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeYAML(t *testing.T) {
	doc := `
healthier_alternatives:
  - unhealthy_item: Soda
    healthy_alternative: sparkling water
category_associations:
  - primary_item: pasta
    suggested_items: [basil, parmesan]
default_expiry_rules:
  - item_name: milk
    default_expiry_days: 5
`
	rs, err := Decode([]byte(doc), FormatYAML)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	tables := rules.Resolve(rs)
	if alt, _ := tables.Alternative("soda"); alt != "sparkling water" {
		t.Errorf("soda alternative = %q", alt)
	}
	if diff := cmp.Diff([]string{"basil", "parmesan"}, tables.Associations("pasta")); diff != "" {
		t.Errorf("pasta associations mismatch (-want +got):\n%s", diff)
	}
	if days, _ := tables.ExpiryDays("milk"); days != 5 {
		t.Errorf("milk days = %d, want 5", days)
	}
}

func TestDecodeJSONRejectsUnknownFields(t *testing.T) {
	_, err := Decode([]byte(`{"healthier":[]}`), FormatJSON)
	if err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestDecodeUnknownFormat(t *testing.T) {
	_, err := Decode([]byte(`{}`), Format("toml"))
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("err = %v, want ErrUnknownFormat", err)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"YAML", FormatYAML, false},
		{" yml ", FormatYAML, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, %v", tt.in, got, err)
		}
	}
}

func TestEncodeYAMLUsesSnakeCase(t *testing.T) {
	data, err := Encode(sampleRules(), FormatYAML)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	for _, key := range []string{"healthier_alternatives:", "suggested_items:", "default_expiry_days: 30"} {
		if !strings.Contains(string(data), key) {
			t.Errorf("yaml output missing %q:\n%s", key, data)
		}
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(sampleRules()); err != nil {
		t.Errorf("Validate(sample) = %v", err)
	}

	bad := &model.RuleSet{
		HealthierAlternatives: []model.HealthierAlternative{{UnhealthyItem: "chips"}},
		CategoryAssociations:  []model.CategoryAssociation{{PrimaryItem: " "}},
		DefaultExpiryRules:    []model.DefaultExpiryRule{{ItemName: "milk", DefaultExpiryDays: 0}},
	}
	err := Validate(bad)
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{
		"healthier_alternatives[0]: healthy_alternative is required",
		"category_associations[0]: primary_item is required",
		"category_associations[0]: suggested_items is required",
		"default_expiry_rules[0]: default_expiry_days must be positive",
	} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error missing %q:\n%v", want, err)
		}
	}
}

func TestFileSourceMissingFile(t *testing.T) {
	src := FileSource{Path: filepath.Join(t.TempDir(), "absent.yaml")}
	rs, err := src.LoadOverrides(context.Background())
	if err != nil {
		t.Fatalf("LoadOverrides: %v", err)
	}
	if !rs.Empty() {
		t.Errorf("expected no overrides, got %+v", rs)
	}
}

func TestFileSourceBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := (FileSource{Path: path}).LoadOverrides(context.Background()); err == nil {
		t.Error("expected decode error")
	}
}

type staticSource struct {
	rs  *model.RuleSet
	err error
}

func (s staticSource) LoadOverrides(context.Context) (*model.RuleSet, error) {
	return s.rs, s.err
}

func TestLayeredLaterSourceWins(t *testing.T) {
	base := staticSource{rs: &model.RuleSet{
		HealthierAlternatives: []model.HealthierAlternative{{UnhealthyItem: "chips", HealthyAlternative: "popcorn"}},
	}}
	top := staticSource{rs: &model.RuleSet{
		HealthierAlternatives: []model.HealthierAlternative{{UnhealthyItem: "Chips", HealthyAlternative: "rice cakes"}},
	}}

	rs, err := Layered{base, nil, staticSource{}, top}.LoadOverrides(context.Background())
	if err != nil {
		t.Fatalf("LoadOverrides: %v", err)
	}
	if alt, _ := rules.Resolve(rs).Alternative("chips"); alt != "rice cakes" {
		t.Errorf("chips alternative = %q, want rice cakes", alt)
	}
}

func TestLayeredSkipsFailingSource(t *testing.T) {
	boom := errors.New("boom")
	stored := staticSource{rs: &model.RuleSet{
		HealthierAlternatives: []model.HealthierAlternative{{UnhealthyItem: "soda", HealthyAlternative: "kombucha"}},
	}}

	rs, err := Layered{staticSource{err: boom}, stored}.LoadOverrides(context.Background())
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want boom", err)
	}
	if alt, _ := rules.Resolve(rs).Alternative("soda"); alt != "kombucha" {
		t.Errorf("soda alternative = %q, want kombucha", alt)
	}

	_, err = Layered{staticSource{err: boom}, staticSource{err: context.DeadlineExceeded}}.LoadOverrides(context.Background())
	if !errors.Is(err, boom) || !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("err = %v, want both failures", err)
	}
}

func TestMalformedFileKeepsStoredOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	if err := os.WriteFile(path, []byte("healthier_alternatives: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	stored := staticSource{rs: &model.RuleSet{
		HealthierAlternatives: []model.HealthierAlternative{{UnhealthyItem: "white bread", HealthyAlternative: "sourdough"}},
	}}
	engine := rules.NewEngine(Layered{FileSource{Path: path}, stored}, nil, nil)

	if alt, _ := engine.Tables(context.Background()).Alternative("white bread"); alt != "sourdough" {
		t.Errorf("white bread alternative = %q, want sourdough", alt)
	}
}
