package repository

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/bakery-dashboard/infrastructure/dataset"
)

func TestTransactionsQuery(t *testing.T) {
	sqlQuery, args, err := transactionsQuery().ToSql()
	require.NoError(t, err)

	assert.Contains(t, sqlQuery, "SELECT bt.transaction_no, bt.items, bt.date_time, bt.daypart, bt.day_type")
	assert.Contains(t, sqlQuery, "FROM bakery_transactions bt")
	assert.NotContains(t, sqlQuery, "WHERE")
	assert.Contains(t, sqlQuery, "ORDER BY bt.id ASC")
	assert.Empty(t, args)
}

func TestRulesQuery(t *testing.T) {
	sqlQuery, args, err := rulesQuery().ToSql()
	require.NoError(t, err)

	assert.Contains(t, sqlQuery, "SELECT ar.antecedents, ar.consequents")
	assert.Contains(t, sqlQuery, "FROM apriori_rules ar")
	assert.Contains(t, sqlQuery, "ORDER BY ar.id ASC")
	assert.Empty(t, args)
}

func TestRepositoryNames(t *testing.T) {
	assert.Equal(t, "postgres:bakery_transactions", NewTransactionRepository(nil).Name())
	assert.Equal(t, "postgres:apriori_rules", NewRuleRepository(nil).Name())
}

func text(s string) sql.NullString {
	return sql.NullString{String: s, Valid: true}
}

func TestTransactionFromRow(t *testing.T) {
	tests := []struct {
		name        string
		row         transactionRow
		expectedErr error
	}{
		{
			name: "Linha completa",
			row: transactionRow{
				TransactionNo: text("1"),
				Items:         text(" Bread "),
				DateTime:      text("2016-10-30 09:58:11"),
				Daypart:       text("Morning"),
				DayType:       text("Weekend"),
			},
		},
		{
			name: "Colunas opcionais nulas",
			row:  transactionRow{Items: text("Bread"), Daypart: text("Morning")},
		},
		{
			name:        "Items nulo",
			row:         transactionRow{Daypart: text("Morning")},
			expectedErr: dataset.ErrMissingValue,
		},
		{
			name:        "Items vazio",
			row:         transactionRow{Items: text("  "), Daypart: text("Morning")},
			expectedErr: dataset.ErrMissingValue,
		},
		{
			name:        "Daypart nulo",
			row:         transactionRow{Items: text("Bread")},
			expectedErr: dataset.ErrMissingValue,
		},
		{
			name:        "Daypart vazio",
			row:         transactionRow{Items: text("Bread"), Daypart: text("")},
			expectedErr: dataset.ErrMissingValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transaction, err := transactionFromRow(tt.row)

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.expectedErr))
				assert.Nil(t, transaction)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "Bread", transaction.Item)
			assert.Equal(t, "Morning", transaction.Daypart)
			assert.Equal(t, tt.row.TransactionNo.String, transaction.TransactionNo)
			assert.Equal(t, tt.row.DayType.String, transaction.DayType)
		})
	}
}

func TestRuleFromRow(t *testing.T) {
	rule, err := ruleFromRow(ruleRow{
		Antecedents: "frozenset({'Toast'})",
		Consequents: "['Coffee', 'Bread']",
		Support:     0.02,
		Confidence:  0.70,
		Lift:        1.47,
		Leverage:    sql.NullFloat64{Float64: 0.007, Valid: true},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Toast"}, rule.Antecedents)
	assert.Equal(t, "Toast", rule.AntecedentsLabel)
	assert.Equal(t, []string{"Coffee", "Bread"}, rule.Consequents)
	assert.Equal(t, "Coffee, Bread", rule.ConsequentsLabel)
	assert.Equal(t, 0.02, rule.Support)
	assert.Equal(t, 0.70, rule.Confidence)
	assert.Equal(t, 1.47, rule.Lift)
	require.NotNil(t, rule.Leverage)
	assert.Equal(t, 0.007, *rule.Leverage)
	assert.Nil(t, rule.Conviction)
}

func TestRuleFromRow_MalformedItemSet(t *testing.T) {
	tests := []struct {
		name string
		row  ruleRow
	}{
		{name: "Antecedentes malformados", row: ruleRow{Antecedents: "['Toast'", Consequents: "['Coffee']"}},
		{name: "Consequentes vazios", row: ruleRow{Antecedents: "['Toast']", Consequents: ""}},
		{name: "Expressão no lugar do literal", row: ruleRow{Antecedents: "__import__('os')", Consequents: "['Coffee']"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, err := ruleFromRow(tt.row)
			require.Error(t, err)
			assert.True(t, errors.Is(err, dataset.ErrMalformedItemSet))
			assert.Nil(t, rule)
		})
	}
}
