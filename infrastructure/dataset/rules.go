package dataset

import (
	"context"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/vfg2006/bakery-dashboard/internal/domain"
	"github.com/vfg2006/bakery-dashboard/pkg/log"
)

// Colunas do arquivo de regras (apriori_rules.csv)
const (
	ColumnAntecedents = "antecedents"
	ColumnConsequents = "consequents"
	ColumnSupport     = "support"
	ColumnConfidence  = "confidence"
	ColumnLift        = "lift"
	ColumnLeverage    = "leverage"
	ColumnConviction  = "conviction"
)

// RuleFile lê as regras de associação de um arquivo CSV local
type RuleFile struct {
	path string
}

func NewRuleFile(path string) *RuleFile {
	return &RuleFile{path: path}
}

func (f *RuleFile) Name() string {
	return f.path
}

func (f *RuleFile) ReadRules(ctx context.Context) ([]domain.AssociationRule, error) {
	logger := log.ForContext(ctx).WithField("file", f.path)

	file, err := os.Open(f.path)
	if err != nil {
		return nil, errors.Wrapf(err, "dataset: erro ao abrir arquivo de regras %s", f.path)
	}
	defer file.Close()

	rules, err := ParseRules(ctx, file)
	if err != nil {
		return nil, errors.WithMessage(err, f.path)
	}

	logger.Infof("dataset: %d regras lidas", len(rules))
	return rules, nil
}

// ParseRules lê a tabela de regras, decodificando antecedentes e consequentes uma única vez
func ParseRules(ctx context.Context, r io.Reader) ([]domain.AssociationRule, error) {
	t, err := newTable(r, ColumnAntecedents, ColumnConsequents, ColumnLift, ColumnConfidence)
	if err != nil {
		return nil, err
	}

	rules := make([]domain.AssociationRule, 0)
	err = t.each(ctx, func(row tableRow) error {
		rule, err := RuleFromFields(
			row.value(ColumnAntecedents),
			row.value(ColumnConsequents),
		)
		if err != nil {
			return err
		}

		if rule.Lift, err = row.float(ColumnLift); err != nil {
			return err
		}

		if rule.Confidence, err = row.float(ColumnConfidence); err != nil {
			return err
		}

		support, err := row.optionalFloat(ColumnSupport)
		if err != nil {
			return err
		}
		if support != nil {
			rule.Support = *support
		}

		if rule.Leverage, err = row.optionalFloat(ColumnLeverage); err != nil {
			return err
		}

		if rule.Conviction, err = row.optionalFloat(ColumnConviction); err != nil {
			return err
		}

		rules = append(rules, *rule)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return rules, nil
}

// RuleFromFields monta uma regra a partir dos literais de antecedentes e consequentes.
// Usado também pela leitura via banco de dados.
func RuleFromFields(antecedents, consequents string) (*domain.AssociationRule, error) {
	antecedentItems, antecedentsLabel, err := DecodeItemSet(antecedents)
	if err != nil {
		return nil, errors.WithMessagef(err, "coluna %q", ColumnAntecedents)
	}

	consequentItems, consequentsLabel, err := DecodeItemSet(consequents)
	if err != nil {
		return nil, errors.WithMessagef(err, "coluna %q", ColumnConsequents)
	}

	return &domain.AssociationRule{
		Antecedents:      antecedentItems,
		Consequents:      consequentItems,
		AntecedentsLabel: antecedentsLabel,
		ConsequentsLabel: consequentsLabel,
	}, nil
}
