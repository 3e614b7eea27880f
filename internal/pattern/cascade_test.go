package pattern

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ohad12345678/payslip/internal/common"
	"github.com/ohad12345678/payslip/internal/value"
)

func TestCompile_Errors(t *testing.T) {
	tests := []struct {
		name   string
		errMsg string
		rules  RuleTable
	}{
		{
			name:   "empty name",
			rules:  RuleTable{{Name: "", Kind: value.KindText, Patterns: []string{`(x)`}}},
			errMsg: "empty name",
		},
		{
			name: "duplicate field",
			rules: RuleTable{
				{Name: "a", Kind: value.KindText, Patterns: []string{`(x)`}},
				{Name: "a", Kind: value.KindText, Patterns: []string{`(y)`}},
			},
			errMsg: "duplicate field",
		},
		{
			name:   "unknown kind",
			rules:  RuleTable{{Name: "a", Kind: "currency", Patterns: []string{`(x)`}}},
			errMsg: "unknown kind",
		},
		{
			name:   "bad regex",
			rules:  RuleTable{{Name: "a", Kind: value.KindText, Patterns: []string{`(x`}}},
			errMsg: "failed to compile pattern 0 of a",
		},
		{
			name:   "no capture group",
			rules:  RuleTable{{Name: "a", Kind: value.KindText, Patterns: []string{`(x)`, `y`}}},
			errMsg: "pattern 1 of a has no capture group",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := Compile(tt.rules)
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrInvalidRules)
			assert.Contains(t, err.Error(), tt.errMsg)
			assert.Nil(t, table)
		})
	}
}

func TestLookup_FirstPatternWins(t *testing.T) {
	table := MustCompile(RuleTable{
		{Name: "code", Kind: value.KindText, Patterns: []string{`alpha\s+(\d+)`, `beta\s+(\d+)`}},
	})

	tests := []struct {
		name        string
		text        string
		want        string
		wantPattern int
		wantOK      bool
	}{
		{name: "both match, later pattern earlier in text", text: "beta 2\nalpha 1", want: "1", wantPattern: 0, wantOK: true},
		{name: "only fallback matches", text: "beta 22", want: "22", wantPattern: 1, wantOK: true},
		{name: "case insensitive", text: "ALPHA 7", want: "7", wantPattern: 0, wantOK: true},
		{name: "no match", text: "gamma 3", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := table.Match("code", tt.text)
			assert.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				return
			}
			assert.Equal(t, tt.want, m.Value)
			assert.Equal(t, tt.wantPattern, m.Pattern)
			assert.Equal(t, "code", m.Field)

			got, ok := table.Lookup("code", tt.text)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLookup_EmptyCaptureStopsCascade(t *testing.T) {
	table := MustCompile(RuleTable{
		{Name: "note", Kind: value.KindText, Patterns: []string{`note:([^\n]*)`, `remark:\s*([^\n]+)`}},
	})

	m, ok := table.Match("note", "note:\nremark: later")
	require.True(t, ok)
	assert.Empty(t, m.Value)
	assert.Equal(t, 0, m.Pattern)
}

func TestLookup_WhitespaceCollapsed(t *testing.T) {
	table := MustCompile(RuleTable{
		{Name: "name", Kind: value.KindText, Patterns: []string{`name:([^\n]+)`}},
	})

	got, ok := table.Lookup("name", "name:   ישראל \t  ישראלי  ")
	require.True(t, ok)
	assert.Equal(t, "ישראל ישראלי", got)
}

func TestLookup_DotMatchesNewline(t *testing.T) {
	table := MustCompile(RuleTable{
		{Name: "balance", Kind: value.KindNumber, Patterns: []string{`account.*?new\s+([\d.]+)`}},
	})

	got, ok := table.Lookup("balance", "account\nold 1.00\nnew 2.50")
	require.True(t, ok)
	assert.Equal(t, "2.50", got)
}

func TestLookup_UnknownField(t *testing.T) {
	table := MustCompile(RuleTable{{Name: "a", Kind: value.KindText, Patterns: []string{`(a)`}}})
	_, ok := table.Lookup("b", "a")
	assert.False(t, ok)
}

func TestExtract(t *testing.T) {
	table := MustCompile(RuleTable{
		{Name: "first", Kind: value.KindText, Patterns: []string{`first=(\w+)`}},
		{Name: "second", Kind: value.KindInteger, Patterns: []string{`second=(\d+)`}},
		{Name: "third", Kind: value.KindText, Patterns: []string{`third=(\w+)`}},
	})

	got := table.Extract("first=one second=2")
	assert.Equal(t, map[string]string{"first": "one", "second": "2"}, got)
	assert.Equal(t, []string{"first", "second", "third"}, table.Fields())

	kind, ok := table.Kind("second")
	require.True(t, ok)
	assert.Equal(t, value.KindInteger, kind)
	_, ok = table.Kind("fourth")
	assert.False(t, ok)
}

func TestRules_ReturnsCopy(t *testing.T) {
	rules := RuleTable{{Name: "a", Kind: value.KindText, Patterns: []string{`a(\d)`}}}
	table := MustCompile(rules)

	rules[0].Patterns[0] = `changed(\d)`
	got := table.Rules()
	assert.Equal(t, `a(\d)`, got[0].Patterns[0])

	got[0].Patterns[0] = `mutated(\d)`
	assert.Equal(t, `a(\d)`, table.Rules()[0].Patterns[0])
}

func TestTable_ConcurrentUse(t *testing.T) {
	table := MustCompile(DefaultRules())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := table.Extract(sampleStatement)
			assert.Equal(t, "0951", got[FieldEmployeeID])
		}()
	}
	wg.Wait()
}

func TestMerge(t *testing.T) {
	base := RuleTable{
		{Name: "a", Kind: value.KindAmount, Patterns: []string{`a(\d)`, `aa(\d)`}},
		{Name: "b", Kind: value.KindText, Patterns: []string{`b(\w)`}},
	}

	t.Run("replaces pattern list", func(t *testing.T) {
		merged, err := base.Merge(RuleTable{{Name: "a", Patterns: []string{`x(\d)`}}})
		require.NoError(t, err)
		assert.Equal(t, []string{`x(\d)`}, merged[0].Patterns)
		assert.Equal(t, value.KindAmount, merged[0].Kind)
		assert.Equal(t, base[1], merged[1])
		assert.Equal(t, []string{`a(\d)`, `aa(\d)`}, base[0].Patterns, "base is untouched")
	})

	t.Run("same kind is allowed", func(t *testing.T) {
		_, err := base.Merge(RuleTable{{Name: "a", Kind: value.KindAmount, Patterns: []string{`x(\d)`}}})
		require.NoError(t, err)
	})

	t.Run("kind change rejected", func(t *testing.T) {
		_, err := base.Merge(RuleTable{{Name: "a", Kind: value.KindText, Patterns: []string{`x(\d)`}}})
		require.Error(t, err)
		assert.ErrorIs(t, err, common.ErrInvalidRules)
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		_, err := base.Merge(RuleTable{{Name: "zzz", Patterns: []string{`x(\d)`}}})
		require.Error(t, err)
		assert.ErrorIs(t, err, common.ErrUnknownField)
	})
}
