package analyzing

import (
	"sort"

	"github.com/vfg2006/bakery-dashboard/internal/domain"
)

// RankItems conta as compras por item e ordena da maior para a menor frequência.
// Empates mantêm a ordem da primeira aparição do item na tabela, então o ranking
// é sempre o mesmo para o mesmo arquivo. limit <= 0 devolve todos os itens.
func RankItems(transactions []domain.Transaction, limit int) []domain.ItemCount {
	positions := make(map[string]int)
	counts := make([]domain.ItemCount, 0)

	for _, transaction := range transactions {
		i, exists := positions[transaction.Item]
		if !exists {
			i = len(counts)
			positions[transaction.Item] = i
			counts = append(counts, domain.ItemCount{Item: transaction.Item})
		}
		counts[i].Count++
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})

	if limit > 0 && len(counts) > limit {
		counts = counts[:limit]
	}

	return counts
}

// CountByDaypart agrupa as transações por período do dia, ordenando pelo nome do período
func CountByDaypart(transactions []domain.Transaction) []domain.DaypartCount {
	totals := make(map[string]int)
	for _, transaction := range transactions {
		totals[transaction.Daypart]++
	}

	counts := make([]domain.DaypartCount, 0, len(totals))
	for daypart, count := range totals {
		counts = append(counts, domain.DaypartCount{Daypart: daypart, Count: count})
	}

	sort.Slice(counts, func(i, j int) bool {
		return counts[i].Daypart < counts[j].Daypart
	})

	return counts
}

// HeadRules devolve as primeiras regras na ordem do arquivo (a mineração já as grava ranqueadas)
func HeadRules(rules []domain.AssociationRule, limit int) []domain.AssociationRule {
	if limit <= 0 || len(rules) <= limit {
		return rules
	}
	return rules[:limit]
}
