package dataset

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rulesCSV = `,antecedents,consequents,antecedent support,consequent support,support,confidence,lift,leverage,conviction
0,frozenset({'Toast'}),frozenset({'Coffee'}),0.033,0.478,0.023,0.704,1.472,0.007,1.765
1,"frozenset({'Spanish Brunch', 'Bread'})",frozenset({'Coffee'}),0.018,0.478,0.010,0.598,1.251,0.002,inf
`

func TestParseRules(t *testing.T) {
	rules, err := ParseRules(context.Background(), strings.NewReader(rulesCSV))
	require.NoError(t, err)
	require.Len(t, rules, 2)

	assert.Equal(t, []string{"Toast"}, rules[0].Antecedents)
	assert.Equal(t, "Toast", rules[0].AntecedentsLabel)
	assert.Equal(t, "Coffee", rules[0].ConsequentsLabel)
	assert.InDelta(t, 1.472, rules[0].Lift, 1e-9)
	assert.InDelta(t, 0.704, rules[0].Confidence, 1e-9)
	assert.InDelta(t, 0.023, rules[0].Support, 1e-9)
	require.NotNil(t, rules[0].Leverage)
	assert.InDelta(t, 0.007, *rules[0].Leverage, 1e-9)

	assert.Equal(t, "Spanish Brunch, Bread", rules[1].AntecedentsLabel)
	require.NotNil(t, rules[1].Conviction)
	assert.True(t, math.IsInf(*rules[1].Conviction, 1))
}

func TestParseRules_WithoutOptionalColumns(t *testing.T) {
	csv := "antecedents,consequents,lift,confidence\n\"['Bread', 'Coffee']\",['Cake'],1.1,0.5\n"

	rules, err := ParseRules(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, "Bread, Coffee", rules[0].AntecedentsLabel)
	assert.Zero(t, rules[0].Support)
	assert.Nil(t, rules[0].Leverage)
	assert.Nil(t, rules[0].Conviction)
}

func TestParseRules_Errors(t *testing.T) {
	tests := []struct {
		name     string
		csv      string
		expected error
	}{
		{
			name:     "Sem coluna lift",
			csv:      "antecedents,consequents,confidence\n['A'],['B'],0.5\n",
			expected: ErrMissingColumn,
		},
		{
			name:     "Antecedente malformado",
			csv:      "antecedents,consequents,lift,confidence\n['A',['B'],1.0,0.5\n",
			expected: ErrMalformedItemSet,
		},
		{
			name:     "Consequente vazio",
			csv:      "antecedents,consequents,lift,confidence\n['A'],,1.0,0.5\n",
			expected: ErrMalformedItemSet,
		},
		{
			name:     "Lift inválido",
			csv:      "antecedents,consequents,lift,confidence\n['A'],['B'],abc,0.5\n",
			expected: ErrInvalidNumber,
		},
		{
			name:     "Confiança ausente",
			csv:      "antecedents,consequents,lift,confidence\n['A'],['B'],1.0,\n",
			expected: ErrMissingValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules, err := ParseRules(context.Background(), strings.NewReader(tt.csv))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.expected), err.Error())
			assert.Nil(t, rules)
		})
	}
}

func TestRuleFile_ReadRules(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apriori_rules.csv")
	require.NoError(t, os.WriteFile(path, []byte(rulesCSV), 0o600))

	rules, err := NewRuleFile(path).ReadRules(context.Background())
	require.NoError(t, err)
	assert.Len(t, rules, 2)
}
