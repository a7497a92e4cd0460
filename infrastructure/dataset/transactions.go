package dataset

import (
	"context"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/vfg2006/bakery-dashboard/internal/domain"
	"github.com/vfg2006/bakery-dashboard/pkg/log"
)

// Colunas do arquivo de transações (Bakery_cleaned.csv)
const (
	ColumnTransactionNo = "TransactionNo"
	ColumnItems         = "Items"
	ColumnDateTime      = "DateTime"
	ColumnDaypart       = "Daypart"
	ColumnDayType       = "DayType"
)

// TransactionFile lê as transações de um arquivo CSV local
type TransactionFile struct {
	path string
}

func NewTransactionFile(path string) *TransactionFile {
	return &TransactionFile{path: path}
}

func (f *TransactionFile) Name() string {
	return f.path
}

func (f *TransactionFile) ReadTransactions(ctx context.Context) ([]domain.Transaction, error) {
	logger := log.ForContext(ctx).WithField("file", f.path)

	file, err := os.Open(f.path)
	if err != nil {
		return nil, errors.Wrapf(err, "dataset: erro ao abrir arquivo de transações %s", f.path)
	}
	defer file.Close()

	transactions, err := ParseTransactions(ctx, file)
	if err != nil {
		return nil, errors.WithMessage(err, f.path)
	}

	logger.Infof("dataset: %d transações lidas", len(transactions))
	return transactions, nil
}

// ParseTransactions lê a tabela de transações. Items e Daypart são obrigatórios em todas as linhas.
func ParseTransactions(ctx context.Context, r io.Reader) ([]domain.Transaction, error) {
	t, err := newTable(r, ColumnItems, ColumnDaypart)
	if err != nil {
		return nil, err
	}

	transactions := make([]domain.Transaction, 0)
	err = t.each(ctx, func(row tableRow) error {
		item, err := row.required(ColumnItems)
		if err != nil {
			return err
		}

		daypart, err := row.required(ColumnDaypart)
		if err != nil {
			return err
		}

		transactions = append(transactions, domain.Transaction{
			TransactionNo: row.value(ColumnTransactionNo),
			Item:          item,
			DateTime:      row.value(ColumnDateTime),
			Daypart:       daypart,
			DayType:       row.value(ColumnDayType),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return transactions, nil
}
