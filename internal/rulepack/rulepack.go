// Package rulepack reads and writes rule sets as JSON or YAML documents.
package rulepack

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dukerupert/smartshopper/internal/model"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned for formats other than json and yaml.
var ErrUnknownFormat = errors.New("unknown rule pack format")

// ParseFormat accepts "json", "yaml" or "yml", case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatFromPath picks the format from a file extension. Anything that is
// not .json is read as YAML.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// ContentType returns the MIME type for the format.
func (f Format) ContentType() string {
	if f == FormatJSON {
		return "application/json"
	}
	return "application/yaml"
}

// Decode parses a rule set document.
func Decode(data []byte, f Format) (*model.RuleSet, error) {
	var rs model.RuleSet
	switch f {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&rs); err != nil {
			return nil, fmt.Errorf("decode json rules: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &rs); err != nil {
			return nil, fmt.Errorf("decode yaml rules: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	return &rs, nil
}

// Encode renders a rule set document.
func Encode(rs *model.RuleSet, f Format) ([]byte, error) {
	if rs == nil {
		rs = &model.RuleSet{}
	}
	switch f {
	case FormatJSON:
		data, err := json.MarshalIndent(rs, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode json rules: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(rs); err != nil {
			return nil, fmt.Errorf("encode yaml rules: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encode yaml rules: %w", err)
		}
		return buf.Bytes(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// Load reads a rule set from a file, choosing the format by extension.
func Load(path string) (*model.RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules: %w", err)
	}
	return Decode(data, FormatFromPath(path))
}

// Save writes a rule set to a file, choosing the format by extension.
func Save(path string, rs *model.RuleSet) error {
	data, err := Encode(rs, FormatFromPath(path))
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write rules: %w", err)
	}
	return nil
}

// Validate reports entries that would be skipped when the rule set is
// applied. The returned error joins one error per bad entry.
func Validate(rs *model.RuleSet) error {
	if rs == nil {
		return nil
	}
	var errs []error
	for i, r := range rs.HealthierAlternatives {
		if strings.TrimSpace(r.UnhealthyItem) == "" {
			errs = append(errs, fmt.Errorf("healthier_alternatives[%d]: unhealthy_item is required", i))
		}
		if strings.TrimSpace(r.HealthyAlternative) == "" {
			errs = append(errs, fmt.Errorf("healthier_alternatives[%d]: healthy_alternative is required", i))
		}
	}
	for i, r := range rs.CategoryAssociations {
		if strings.TrimSpace(r.PrimaryItem) == "" {
			errs = append(errs, fmt.Errorf("category_associations[%d]: primary_item is required", i))
		}
		if r.SuggestedItems == nil {
			errs = append(errs, fmt.Errorf("category_associations[%d]: suggested_items is required", i))
		}
	}
	for i, r := range rs.DefaultExpiryRules {
		if strings.TrimSpace(r.ItemName) == "" {
			errs = append(errs, fmt.Errorf("default_expiry_rules[%d]: item_name is required", i))
		}
		if r.DefaultExpiryDays <= 0 {
			errs = append(errs, fmt.Errorf("default_expiry_rules[%d]: default_expiry_days must be positive", i))
		}
	}
	return errors.Join(errs...)
}

// FileSource supplies rule overrides from a JSON or YAML file. A missing
// file means no overrides.
type FileSource struct {
	Path string
}

func (s FileSource) LoadOverrides(ctx context.Context) (*model.RuleSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rs, err := Load(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	return rs, err
}

// Source is anything that supplies rule overrides.
type Source interface {
	LoadOverrides(ctx context.Context) (*model.RuleSet, error)
}

// Layered combines sources so that later sources override earlier ones.
// A failing source is skipped: the returned set holds every source that
// loaded, and the error joins the failures.
type Layered []Source

func (l Layered) LoadOverrides(ctx context.Context) (*model.RuleSet, error) {
	merged := &model.RuleSet{}
	var errs []error
	for i, src := range l {
		if src == nil {
			continue
		}
		rs, err := src.LoadOverrides(ctx)
		if err != nil {
			errs = append(errs, fmt.Errorf("layer %d: %w", i, err))
			continue
		}
		if rs == nil {
			continue
		}
		merged.HealthierAlternatives = append(merged.HealthierAlternatives, rs.HealthierAlternatives...)
		merged.CategoryAssociations = append(merged.CategoryAssociations, rs.CategoryAssociations...)
		merged.DefaultExpiryRules = append(merged.DefaultExpiryRules, rs.DefaultExpiryRules...)
	}
	return merged, errors.Join(errs...)
}
