package loading

import (
	"context"

	"github.com/vfg2006/bakery-dashboard/internal/domain"
)

// TransactionReader lê a tabela de transações (arquivo CSV ou banco)
type TransactionReader interface {
	Name() string
	ReadTransactions(ctx context.Context) ([]domain.Transaction, error)
}

// RuleReader lê a tabela de regras de associação
type RuleReader interface {
	Name() string
	ReadRules(ctx context.Context) ([]domain.AssociationRule, error)
}

// Loader produz o snapshot imutável usado durante toda a vida do processo
type Loader interface {
	Load(ctx context.Context) (*domain.Snapshot, error)
}
