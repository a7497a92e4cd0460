// Package dataset lê as tabelas de transações e de regras de associação a partir de arquivos CSV
package dataset

import "github.com/pkg/errors"

var (
	ErrEmptyFile        = errors.New("dataset: arquivo vazio")
	ErrMissingColumn    = errors.New("dataset: coluna obrigatória ausente")
	ErrMissingValue     = errors.New("dataset: valor obrigatório ausente")
	ErrInvalidNumber    = errors.New("dataset: número inválido")
	ErrMalformedItemSet = errors.New("dataset: conjunto de itens malformado")
)
