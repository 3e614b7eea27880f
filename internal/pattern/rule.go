// Package pattern evaluates ordered extraction rules against statement text.
//
// A FieldRule lists the patterns for one field from most to least specific.
// The first pattern that matches decides the field's raw value; later
// patterns are never consulted and partial matches are never merged.
package pattern

import (
	"fmt"

	"github.com/ohad12345678/payslip/internal/common"
	"github.com/ohad12345678/payslip/internal/value"
)

// FieldRule is the ordered pattern list for one semantic field. Every pattern
// must capture the value in its first group.
type FieldRule struct {
	Name     string     `json:"name" yaml:"name"`
	Kind     value.Kind `json:"kind" yaml:"kind"`
	Patterns []string   `json:"patterns" yaml:"patterns"`
}

// RuleTable is an ordered list of field rules.
type RuleTable []FieldRule

// Names returns the field names in table order.
func (t RuleTable) Names() []string {
	names := make([]string, len(t))
	for i, r := range t {
		names[i] = r.Name
	}
	return names
}

// Find returns the rule for name.
func (t RuleTable) Find(name string) (FieldRule, bool) {
	for _, r := range t {
		if r.Name == name {
			return r, true
		}
	}
	return FieldRule{}, false
}

// Clone returns a deep copy of t.
func (t RuleTable) Clone() RuleTable {
	out := make(RuleTable, len(t))
	for i, r := range t {
		out[i] = FieldRule{
			Name:     r.Name,
			Kind:     r.Kind,
			Patterns: append([]string(nil), r.Patterns...),
		}
	}
	return out
}

// Merge returns a copy of t in which every field named in overrides has its
// pattern list replaced by the override's list. Overrides may only name
// fields already present in t; an override kind, when set, must agree with
// the existing one.
func (t RuleTable) Merge(overrides RuleTable) (RuleTable, error) {
	out := t.Clone()
	index := make(map[string]int, len(out))
	for i, r := range out {
		index[r.Name] = i
	}

	for _, o := range overrides {
		i, ok := index[o.Name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", common.ErrUnknownField, o.Name)
		}
		if o.Kind != "" && o.Kind != out[i].Kind {
			return nil, fmt.Errorf("%w: field %q is %s, override declares %s",
				common.ErrInvalidRules, o.Name, out[i].Kind, o.Kind)
		}
		out[i].Patterns = append([]string(nil), o.Patterns...)
	}
	return out, nil
}
