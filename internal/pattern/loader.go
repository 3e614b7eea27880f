package pattern

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/ohad12345678/payslip/internal/common"
)

//go:embed rules.schema.json
var ruleSchemaJSON []byte

var (
	ruleSchemaOnce sync.Once
	ruleSchema     *jsonschema.Schema
	ruleSchemaErr  error
)

// ruleFile is the on-disk layout of a rule file.
type ruleFile struct {
	Fields RuleTable `yaml:"fields"`
}

func compiledSchema() (*jsonschema.Schema, error) {
	ruleSchemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("rules.schema.json", bytes.NewReader(ruleSchemaJSON)); err != nil {
			ruleSchemaErr = fmt.Errorf("add schema: %w", err)
			return
		}
		ruleSchema, ruleSchemaErr = compiler.Compile("rules.schema.json")
		if ruleSchemaErr != nil {
			ruleSchemaErr = fmt.Errorf("compile schema: %w", ruleSchemaErr)
		}
	})
	return ruleSchema, ruleSchemaErr
}

// Load reads a YAML rule file and validates its structure. Pattern syntax is
// checked later by Compile.
func Load(r io.Reader) (RuleTable, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules: %w", err)
	}

	if err := validateRules(data); err != nil {
		return nil, err
	}

	var file ruleFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidRules, err)
	}
	return file.Fields, nil
}

// LoadFile is Load for a path on disk.
func LoadFile(path string) (RuleTable, error) {
	f, err := os.Open(path) //nolint:gosec // user-supplied rules file
	if err != nil {
		return nil, fmt.Errorf("failed to open rules file: %w", err)
	}
	defer func() { _ = f.Close() }()

	rules, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rules, nil
}

// validateRules checks YAML data against the embedded schema. The document is
// re-encoded as JSON first so the validator sees JSON value types.
func validateRules(data []byte) error {
	schema, err := compiledSchema()
	if err != nil {
		return err
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %w", common.ErrInvalidRules, err)
	}
	if doc == nil {
		return fmt.Errorf("%w: empty rules file", common.ErrInvalidRules)
	}

	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: rules are not JSON-representable: %w", common.ErrInvalidRules, err)
	}
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("%w: %w", common.ErrInvalidRules, err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("%w: %w", common.ErrInvalidRules, err)
	}
	return nil
}

// Resolve builds the active rule table: the defaults, overridden by the rule
// file at path when path is non-empty. Rule files can only refine built-in
// fields.
func Resolve(path string) (RuleTable, error) {
	base := DefaultRules()
	if path == "" {
		return base, nil
	}
	overrides, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return base.Merge(overrides)
}
