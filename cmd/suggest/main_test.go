package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testSnapshot = `{
  "history": [
    {"item_name": "Milk", "purchase_date": "2024-01-04", "expiry_time_in_days": 7},
    {"item_name": "Eggs", "purchase_date": "not a date"},
    {"item_name": "", "purchase_date": "2024-01-04"}
  ],
  "list": [
    {"name": "White Bread"},
    {"name": "   "}
  ]
}`

func runSuggest(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	if err := run(args, strings.NewReader(stdin), &out); err != nil {
		t.Fatalf("run(%v): %v", args, err)
	}
	return out.String()
}

func TestRunText(t *testing.T) {
	out := runSuggest(t, testSnapshot, "-now", "2024-01-10")

	for _, want := range []string{
		"Re-purchase (1)",
		"  - Milk: You bought Milk 6 days ago",
		"  - brown bread: Consider replacing White Bread with brown bread for a healthier option.",
		"Expiry (1)",
		"  - [warning] Milk will expire in 1 day.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Eggs") {
		t.Errorf("malformed record should be skipped:\n%s", out)
	}
}

func TestRunJSONFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	if err := os.WriteFile(path, []byte(testSnapshot), 0o644); err != nil {
		t.Fatal(err)
	}

	out := runSuggest(t, "", "-now", "2024-01-10", "-json", path)

	var got report
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, out)
	}
	if len(got.RePurchase) != 1 || got.RePurchase[0].Item != "Milk" {
		t.Errorf("re_purchase = %+v, want one Milk suggestion", got.RePurchase)
	}
	if len(got.Expiry) != 1 || got.Expiry[0].DaysUntilExpiry != 1 {
		t.Errorf("expiry = %+v, want Milk in 1 day", got.Expiry)
	}
	if len(got.Errors) != 0 {
		t.Errorf("errors = %v, want none", got.Errors)
	}
}

func TestRunRulePack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	pack := `healthier_alternatives:
  - unhealthy_item: White Bread
    healthy_alternative: sourdough rye
`
	if err := os.WriteFile(path, []byte(pack), 0o644); err != nil {
		t.Fatal(err)
	}

	out := runSuggest(t, testSnapshot, "-now", "2024-01-10", "-rules", path)

	if !strings.Contains(out, "sourdough rye: Consider replacing White Bread with sourdough rye") {
		t.Errorf("rule pack override not applied:\n%s", out)
	}
	if strings.Contains(out, "brown bread") {
		t.Errorf("default alternative should be overridden:\n%s", out)
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
	}{
		{"bad now", testSnapshot, []string{"-now", "soon"}},
		{"missing rules", testSnapshot, []string{"-rules", filepath.Join(t.TempDir(), "missing.yaml")}},
		{"bad snapshot", "{", nil},
		{"too many args", testSnapshot, []string{"a.json", "b.json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			if err := run(tt.args, strings.NewReader(tt.stdin), &out); err == nil {
				t.Error("expected error")
			}
		})
	}
}
