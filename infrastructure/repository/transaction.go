// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/bakery-dashboard/infrastructure/database/postgres"
	"github.com/vfg2006/bakery-dashboard/infrastructure/dataset"
	"github.com/vfg2006/bakery-dashboard/internal/domain"
)

const (
	transactionTable = "bakery_transactions bt"
)

type TransactionRepository interface {
	Name() string
	ReadTransactions(ctx context.Context) ([]domain.Transaction, error)
}

type transactionRepository struct {
	conn postgres.Queryer
}

func NewTransactionRepository(conn postgres.Queryer) TransactionRepository {
	return &transactionRepository{
		conn: conn,
	}
}

func (r *transactionRepository) Name() string {
	return "postgres:bakery_transactions"
}

func transactionsQuery() squirrel.SelectBuilder {
	return squirrel.
		Select(
			"bt.transaction_no",
			"bt.items",
			"bt.date_time",
			"bt.daypart",
			"bt.day_type",
		).
		From(transactionTable).
		OrderBy("bt.id ASC").
		PlaceholderFormat(squirrel.Dollar)
}

// ReadTransactions lê a tabela inteira, na ordem de inserção
func (r *transactionRepository) ReadTransactions(ctx context.Context) ([]domain.Transaction, error) {
	sqlQuery, args, err := transactionsQuery().ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	transactions := make([]domain.Transaction, 0)
	for rows.Next() {
		item, err := r.scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear transação %d: %w", len(transactions)+1, err)
		}

		transactions = append(transactions, *item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return transactions, nil
}

func (r *transactionRepository) scanTransaction(rows *sql.Rows) (*domain.Transaction, error) {
	var row transactionRow

	err := rows.Scan(
		&row.TransactionNo,
		&row.Items,
		&row.DateTime,
		&row.Daypart,
		&row.DayType,
	)
	if err != nil {
		return nil, err
	}

	return transactionFromRow(row)
}

// transactionRow guarda as colunas como lidas do banco, antes da validação
type transactionRow struct {
	TransactionNo sql.NullString
	Items         sql.NullString
	DateTime      sql.NullString
	Daypart       sql.NullString
	DayType       sql.NullString
}

// transactionFromRow aplica as mesmas regras da leitura do CSV: items e daypart são obrigatórios
func transactionFromRow(row transactionRow) (*domain.Transaction, error) {
	item, err := requiredColumn(row.Items, "items")
	if err != nil {
		return nil, err
	}

	daypart, err := requiredColumn(row.Daypart, "daypart")
	if err != nil {
		return nil, err
	}

	return &domain.Transaction{
		TransactionNo: strings.TrimSpace(row.TransactionNo.String),
		Item:          item,
		DateTime:      strings.TrimSpace(row.DateTime.String),
		Daypart:       daypart,
		DayType:       strings.TrimSpace(row.DayType.String),
	}, nil
}

func requiredColumn(value sql.NullString, column string) (string, error) {
	v := strings.TrimSpace(value.String)
	if !value.Valid || v == "" {
		return "", fmt.Errorf("%w: coluna %q", dataset.ErrMissingValue, column)
	}
	return v, nil
}
