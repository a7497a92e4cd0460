package dataset

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseItemSet(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []string
	}{
		{name: "Lista com dois itens", raw: "['Bread', 'Coffee']", expected: []string{"Bread", "Coffee"}},
		{name: "Frozenset com um item", raw: "frozenset({'Coffee'})", expected: []string{"Coffee"}},
		{name: "Frozenset com dois itens mantém a ordem do literal", raw: "frozenset({'Pastry', 'Bread'})", expected: []string{"Pastry", "Bread"}},
		{name: "Set literal", raw: "{'Cake'}", expected: []string{"Cake"}},
		{name: "Tupla com vírgula final", raw: "('Tea',)", expected: []string{"Tea"}},
		{name: "Aspas duplas", raw: `["Hot chocolate", "Cookies"]`, expected: []string{"Hot chocolate", "Cookies"}},
		{name: "Apóstrofo escapado", raw: `['Baker\'s dozen']`, expected: []string{"Baker's dozen"}},
		{name: "Aspas simples dentro de aspas duplas", raw: `["Jammie Dodgers", "Farm house's"]`, expected: []string{"Jammie Dodgers", "Farm house's"}},
		{name: "Espaços extras", raw: "  [ 'Bread' ,'Coffee' ]  ", expected: []string{"Bread", "Coffee"}},
		{name: "Frozenset vazio", raw: "frozenset()", expected: []string{}},
		{name: "Lista vazia", raw: "[]", expected: []string{}},
		{name: "Construtor com lista", raw: "list(['Muffin'])", expected: []string{"Muffin"}},
		{name: "Item com acentos", raw: "['Pão de queijo']", expected: []string{"Pão de queijo"}},
		{name: "Escape hexadecimal", raw: `['Caf\xe9', 'Té']`, expected: []string{"Café", "Té"}},
		{name: "Escape unicode curto", raw: `['Caf\u00e9']`, expected: []string{"Café"}},
		{name: "Escape unicode longo", raw: `['Cake \U0001F370']`, expected: []string{"Cake \U0001F370"}},
		{name: "Escape octal", raw: `['Caf\351']`, expected: []string{"Café"}},
		{name: "Barra e aspas escapadas", raw: `["Say \"hi\" \\ bye"]`, expected: []string{`Say "hi" \ bye`}},
		{name: "Tabulação escapada", raw: `['Bread\tRoll']`, expected: []string{"Bread\tRoll"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := ParseItemSet(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, items)
		})
	}
}

func TestParseItemSet_Malformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "Campo vazio", raw: ""},
		{name: "Apenas espaços", raw: "   "},
		{name: "Lista não terminada", raw: "['Bread', 'Coffee'"},
		{name: "Texto não terminado", raw: "['Bread"},
		{name: "Sem vírgula entre itens", raw: "['Bread' 'Coffee']"},
		{name: "Item numérico", raw: "[1, 2]"},
		{name: "Texto sem aspas", raw: "[Bread]"},
		{name: "Conteúdo após o literal", raw: "['Bread'] + ['Coffee']"},
		{name: "Chamada de função arbitrária", raw: "__import__('os')"},
		{name: "Construtor sem parênteses", raw: "frozenset"},
		{name: "Construtor sem fechamento", raw: "frozenset({'Bread'}"},
		{name: "Colchetes trocados", raw: "['Bread')"},
		{name: "Texto solto", raw: "Bread, Coffee"},
		{name: "Escape incompleto", raw: `['Bread\`},
		{name: "Escape por nome", raw: `['Caf\N{LATIN SMALL LETTER E WITH ACUTE}']`},
		{name: "Escape desconhecido", raw: `['Bread\q']`},
		{name: "Escape hexadecimal curto", raw: `['Caf\xe']`},
		{name: "Escape hexadecimal inválido", raw: `['Caf\xzz']`},
		{name: "Escape unicode truncado", raw: `['Caf\u00e']`},
		{name: "Código fora do unicode", raw: `['Cake \U00110000']`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := ParseItemSet(tt.raw)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedItemSet))
			assert.Nil(t, items)
		})
	}
}

func TestDecodeItemSet(t *testing.T) {
	items, label, err := DecodeItemSet("['Bread', 'Coffee']")
	require.NoError(t, err)
	assert.Equal(t, []string{"Bread", "Coffee"}, items)
	assert.Equal(t, "Bread, Coffee", label)

	_, label, err = DecodeItemSet("frozenset({'Coffee'})")
	require.NoError(t, err)
	assert.Equal(t, "Coffee", label)

	_, label, err = DecodeItemSet("['Bread', ")
	assert.Error(t, err)
	assert.Empty(t, label)
}

func TestItemSetLiteral(t *testing.T) {
	tests := []struct {
		name     string
		items    []string
		expected string
	}{
		{name: "Lista vazia", items: nil, expected: "[]"},
		{name: "Um item", items: []string{"Bread"}, expected: "['Bread']"},
		{name: "Vários itens", items: []string{"Bread", "Coffee"}, expected: "['Bread', 'Coffee']"},
		{name: "Aspas e barra", items: []string{"Baker's \\ Special"}, expected: `['Baker\'s \\ Special']`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			literal := ItemSetLiteral(tt.items)
			assert.Equal(t, tt.expected, literal)

			if len(tt.items) > 0 {
				parsed, err := ParseItemSet(literal)
				require.NoError(t, err)
				assert.Equal(t, tt.items, parsed)
			}
		})
	}
}
