package dataset

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bakeryCSV = `TransactionNo,Items,DateTime,Daypart,DayType
1,Bread,2016-10-30 09:58:11,Morning,Weekend
2,Scandinavian,2016-10-30 10:05:34,Morning,Weekend
2,Scandinavian,2016-10-30 10:05:34,Morning,Weekend
3,Hot chocolate,2016-10-30 10:07:57,Morning,Weekend
4,Coffee,2016-10-30 13:08:41,Afternoon,Weekend
`

func TestParseTransactions(t *testing.T) {
	transactions, err := ParseTransactions(context.Background(), strings.NewReader(bakeryCSV))
	require.NoError(t, err)
	require.Len(t, transactions, 5)

	assert.Equal(t, "1", transactions[0].TransactionNo)
	assert.Equal(t, "Bread", transactions[0].Item)
	assert.Equal(t, "Morning", transactions[0].Daypart)
	assert.Equal(t, "Weekend", transactions[0].DayType)
	assert.Equal(t, "Afternoon", transactions[4].Daypart)
}

func TestParseTransactions_OnlyRequiredColumns(t *testing.T) {
	csv := "Items,Daypart\nBread,Morning\nCoffee,Evening\n"

	transactions, err := ParseTransactions(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, transactions, 2)
	assert.Empty(t, transactions[0].TransactionNo)
	assert.Equal(t, "Coffee", transactions[1].Item)
}

func TestParseTransactions_WithBOMAndIndexColumn(t *testing.T) {
	csv := "\ufeff,Items,Daypart\n0,Bread,Morning\n"

	transactions, err := ParseTransactions(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, "Bread", transactions[0].Item)
}

func TestParseTransactions_Errors(t *testing.T) {
	tests := []struct {
		name     string
		csv      string
		expected error
	}{
		{name: "Arquivo vazio", csv: "", expected: ErrEmptyFile},
		{name: "Sem coluna Items", csv: "TransactionNo,Daypart\n1,Morning\n", expected: ErrMissingColumn},
		{name: "Sem coluna Daypart", csv: "TransactionNo,Items\n1,Bread\n", expected: ErrMissingColumn},
		{name: "Daypart vazio", csv: "Items,Daypart\nBread,\n", expected: ErrMissingValue},
		{name: "Item vazio", csv: "Items,Daypart\n,Morning\n", expected: ErrMissingValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transactions, err := ParseTransactions(context.Background(), strings.NewReader(tt.csv))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.expected), err.Error())
			assert.Nil(t, transactions)
		})
	}
}

func TestParseTransactions_WrongFieldCount(t *testing.T) {
	csv := "Items,Daypart\nBread,Morning,extra\n"

	_, err := ParseTransactions(context.Background(), strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "linha 2")
}

func TestTransactionFile_ReadTransactions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Bakery_cleaned.csv")
	require.NoError(t, os.WriteFile(path, []byte(bakeryCSV), 0o600))

	transactions, err := NewTransactionFile(path).ReadTransactions(context.Background())
	require.NoError(t, err)
	assert.Len(t, transactions, 5)
}

func TestTransactionFile_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.csv")

	_, err := NewTransactionFile(path).ReadTransactions(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
