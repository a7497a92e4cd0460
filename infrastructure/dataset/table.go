package dataset

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const ctxCheckInterval = 10_000

// table é a visão de um CSV com cabeçalho, indexada pelo nome da coluna
type table struct {
	columns map[string]int
	reader  *csv.Reader
	line    int
}

func newTable(r io.Reader, required ...string) (*table, error) {
	reader := csv.NewReader(r)
	reader.ReuseRecord = false

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmptyFile
	}
	if err != nil {
		return nil, errors.Wrap(err, "dataset: erro ao ler cabeçalho")
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		columns[strings.TrimSpace(name)] = i
	}

	for _, name := range required {
		if _, ok := columns[name]; !ok {
			return nil, errors.Wrapf(ErrMissingColumn, "coluna %q", name)
		}
	}

	return &table{columns: columns, reader: reader, line: 1}, nil
}

// each percorre as linhas de dados, verificando o contexto periodicamente
func (t *table) each(ctx context.Context, fn func(row tableRow) error) error {
	for {
		record, err := t.reader.Read()
		if err == io.EOF {
			return nil
		}
		t.line++
		if err != nil {
			return errors.Wrapf(err, "dataset: erro ao ler linha %d", t.line)
		}

		if t.line%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		if err := fn(tableRow{table: t, record: record}); err != nil {
			return errors.WithMessagef(err, "linha %d", t.line)
		}
	}
}

type tableRow struct {
	table  *table
	record []string
}

// value devolve o valor da coluna, ou "" se a coluna não existir no arquivo
func (r tableRow) value(column string) string {
	i, ok := r.table.columns[column]
	if !ok || i >= len(r.record) {
		return ""
	}
	return strings.TrimSpace(r.record[i])
}

func (r tableRow) required(column string) (string, error) {
	v := r.value(column)
	if v == "" {
		return "", errors.Wrapf(ErrMissingValue, "coluna %q", column)
	}
	return v, nil
}

func (r tableRow) float(column string) (float64, error) {
	v, err := r.required(column)
	if err != nil {
		return 0, err
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidNumber, "coluna %q: %q", column, v)
	}
	return f, nil
}

// optionalFloat devolve nil quando a coluna não existe ou está vazia
func (r tableRow) optionalFloat(column string) (*float64, error) {
	if r.value(column) == "" {
		return nil, nil
	}

	f, err := r.float(column)
	if err != nil {
		return nil, err
	}
	return &f, nil
}
