package analyzing

import (
	"github.com/vfg2006/bakery-dashboard/internal/domain"
)

// Analyzer expõe os agregados calculados sobre o snapshot carregado
type Analyzer interface {
	TopItems(limit int) []domain.ItemCount
	DaypartDistribution() []domain.DaypartCount
	TopRules(limit int) []domain.AssociationRule
	Stats() domain.SnapshotStats
}

type Service struct {
	snapshot *domain.Snapshot
	items    []domain.ItemCount
	dayparts []domain.DaypartCount
}

// NewService calcula os agregados uma única vez; o snapshot não muda depois da carga
func NewService(snapshot *domain.Snapshot) *Service {
	return &Service{
		snapshot: snapshot,
		items:    RankItems(snapshot.Transactions, 0),
		dayparts: CountByDaypart(snapshot.Transactions),
	}
}

func (s *Service) TopItems(limit int) []domain.ItemCount {
	items := s.items
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	out := make([]domain.ItemCount, len(items))
	copy(out, items)
	return out
}

func (s *Service) DaypartDistribution() []domain.DaypartCount {
	out := make([]domain.DaypartCount, len(s.dayparts))
	copy(out, s.dayparts)
	return out
}

func (s *Service) TopRules(limit int) []domain.AssociationRule {
	rules := HeadRules(s.snapshot.Rules, limit)

	out := make([]domain.AssociationRule, len(rules))
	copy(out, rules)
	return out
}

func (s *Service) Stats() domain.SnapshotStats {
	return s.snapshot.Stats()
}
