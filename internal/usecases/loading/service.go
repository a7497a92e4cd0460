package loading

import (
	"context"
	"time"

	"github.com/vfg2006/bakery-dashboard/internal/domain"
	"github.com/vfg2006/bakery-dashboard/internal/metrics"
	"github.com/vfg2006/bakery-dashboard/pkg/log"
	"github.com/vfg2006/bakery-dashboard/pkg/utils"
)

type Service struct {
	source       string
	transactions TransactionReader
	rules        RuleReader
	now          func() time.Time
	generateID   func() (string, error)
}

func NewService(source string, transactions TransactionReader, rules RuleReader) *Service {
	return &Service{
		source:       source,
		transactions: transactions,
		rules:        rules,
		now:          time.Now,
		generateID:   utils.GenerateID,
	}
}

// Load lê as duas tabelas uma única vez. Qualquer falha aborta a carga inteira.
func (s *Service) Load(ctx context.Context) (*domain.Snapshot, error) {
	logger := log.ForContext(ctx).WithField("source", s.source)
	startedAt := s.now()

	transactions, err := s.transactions.ReadTransactions(ctx)
	if err != nil {
		return nil, NewLoadError(ErrReadTransactions, s.transactions.Name(), err)
	}

	rules, err := s.rules.ReadRules(ctx)
	if err != nil {
		return nil, NewLoadError(ErrReadRules, s.rules.Name(), err)
	}

	id, err := s.generateID()
	if err != nil {
		return nil, NewLoadError(ErrGenerateID, s.source, err)
	}

	snapshot := &domain.Snapshot{
		ID:           id,
		Source:       s.source,
		Transactions: transactions,
		Rules:        rules,
		LoadedAt:     s.now(),
	}

	metrics.DatasetRows.WithLabelValues("transactions").Set(float64(len(transactions)))
	metrics.DatasetRows.WithLabelValues("rules").Set(float64(len(rules)))

	logger.WithFields(log.Fields{
		"snapshot_id":          snapshot.ID,
		"dataset_transactions": len(transactions),
		"dataset_rules":        len(rules),
		"duration_ms":          snapshot.LoadedAt.Sub(startedAt).Milliseconds(),
	}).Info("Snapshot de dados carregado")

	if len(transactions) == 0 {
		logger.Warn("Nenhuma transação encontrada, gráficos de itens e períodos ficarão vazios")
	}
	if len(rules) == 0 {
		logger.Warn("Nenhuma regra de associação encontrada")
	}

	return snapshot, nil
}
