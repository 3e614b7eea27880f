package pattern

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ohad12345678/payslip/internal/common"
	"github.com/ohad12345678/payslip/internal/value"
)

// flags applied to every pattern: case-insensitive, ^/$ per line, and . across
// line breaks so a pattern may span lines.
const flags = "(?ims)"

type compiledField struct {
	name     string
	kind     value.Kind
	patterns []*regexp.Regexp
}

// Table is a compiled, immutable rule table. It is safe for concurrent use.
type Table struct {
	index  map[string]int
	source RuleTable
	fields []compiledField
}

// Match describes which pattern of a field produced a value.
type Match struct {
	Field string
	Value string
	// Pattern is the position of the winning pattern in the field's list.
	Pattern int
}

// Compile validates rules and compiles every pattern. Field and pattern order
// are preserved.
func Compile(rules RuleTable) (*Table, error) {
	t := &Table{
		index:  make(map[string]int, len(rules)),
		source: rules.Clone(),
		fields: make([]compiledField, 0, len(rules)),
	}

	for _, r := range rules {
		if r.Name == "" {
			return nil, fmt.Errorf("%w: field with empty name", common.ErrInvalidRules)
		}
		if _, dup := t.index[r.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate field %q", common.ErrInvalidRules, r.Name)
		}
		if _, err := value.ParseKind(string(r.Kind)); err != nil {
			return nil, fmt.Errorf("%w: field %q: %w", common.ErrInvalidRules, r.Name, err)
		}

		cf := compiledField{name: r.Name, kind: r.Kind, patterns: make([]*regexp.Regexp, 0, len(r.Patterns))}
		for i, p := range r.Patterns {
			re, err := regexp.Compile(flags + p)
			if err != nil {
				return nil, fmt.Errorf("%w: failed to compile pattern %d of %s: %w", common.ErrInvalidRules, i, r.Name, err)
			}
			if re.NumSubexp() < 1 {
				return nil, fmt.Errorf("%w: pattern %d of %s has no capture group", common.ErrInvalidRules, i, r.Name)
			}
			cf.patterns = append(cf.patterns, re)
		}

		t.index[r.Name] = len(t.fields)
		t.fields = append(t.fields, cf)
	}

	return t, nil
}

// MustCompile is like Compile but panics on error. Intended for tables
// defined in code.
func MustCompile(rules RuleTable) *Table {
	t, err := Compile(rules)
	if err != nil {
		panic(err)
	}
	return t
}

// Rules returns a copy of the table the compiled form was built from.
func (t *Table) Rules() RuleTable {
	return t.source.Clone()
}

// Fields returns field names in table order.
func (t *Table) Fields() []string {
	return t.source.Names()
}

// Kind returns the declared kind of field.
func (t *Table) Kind(field string) (value.Kind, bool) {
	i, ok := t.index[field]
	if !ok {
		return "", false
	}
	return t.fields[i].kind, true
}

// Match runs the cascade for one field and reports the winning pattern.
func (t *Table) Match(field, text string) (Match, bool) {
	i, ok := t.index[field]
	if !ok {
		return Match{}, false
	}
	for n, re := range t.fields[i].patterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		return Match{Field: field, Value: squash(m[1]), Pattern: n}, true
	}
	return Match{}, false
}

// Lookup returns the raw value of field in text, or false when no pattern
// matched.
func (t *Table) Lookup(field, text string) (string, bool) {
	m, ok := t.Match(field, text)
	return m.Value, ok
}

// Extract runs every field's cascade over text. Fields with no match are
// absent from the result.
func (t *Table) Extract(text string) map[string]string {
	out := make(map[string]string, len(t.fields))
	for _, f := range t.fields {
		if v, ok := t.Lookup(f.name, text); ok {
			out[f.name] = v
		}
	}
	return out
}

// squash trims a capture and collapses internal whitespace runs.
func squash(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
