package loading

import (
	"errors"
	"fmt"
)

var (
	ErrReadTransactions = errors.New("error reading transactions")
	ErrReadRules        = errors.New("error reading association rules")
	ErrGenerateID       = errors.New("error generating snapshot ID")
)

// LoadError identifica qual tabela falhou durante a carga
type LoadError struct {
	Err    error  // Erro base (ErrReadTransactions, ErrReadRules...)
	Source string // Arquivo ou tabela de origem
	Cause  error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s", e.Err.Error(), e.Source, e.Cause.Error())
	}
	return fmt.Sprintf("%s (%s)", e.Err.Error(), e.Source)
}

// Unwrap permite errors.Is tanto com o erro base quanto com a causa
func (e *LoadError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

func NewLoadError(err error, source string, cause error) *LoadError {
	return &LoadError{
		Err:    err,
		Source: source,
		Cause:  cause,
	}
}
