package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/bakery-dashboard/infrastructure/database/postgres"
	"github.com/vfg2006/bakery-dashboard/infrastructure/dataset"
	"github.com/vfg2006/bakery-dashboard/internal/domain"
)

const (
	ruleTable = "apriori_rules ar"
)

type RuleRepository interface {
	Name() string
	ReadRules(ctx context.Context) ([]domain.AssociationRule, error)
}

type ruleRepository struct {
	conn postgres.Queryer
}

func NewRuleRepository(conn postgres.Queryer) RuleRepository {
	return &ruleRepository{
		conn: conn,
	}
}

func (r *ruleRepository) Name() string {
	return "postgres:apriori_rules"
}

func rulesQuery() squirrel.SelectBuilder {
	return squirrel.
		Select(
			"ar.antecedents",
			"ar.consequents",
			"COALESCE(ar.support, 0)",
			"ar.confidence",
			"ar.lift",
			"ar.leverage",
			"ar.conviction",
		).
		From(ruleTable).
		OrderBy("ar.id ASC").
		PlaceholderFormat(squirrel.Dollar)
}

// ReadRules lê as regras na ordem em que foram gravadas pela mineração.
// Antecedentes e consequentes ficam gravados como literal, igual ao CSV.
func (r *ruleRepository) ReadRules(ctx context.Context) ([]domain.AssociationRule, error) {
	sqlQuery, args, err := rulesQuery().ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	rules := make([]domain.AssociationRule, 0)
	for rows.Next() {
		rule, err := r.scanRule(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear regra %d: %w", len(rules)+1, err)
		}

		rules = append(rules, *rule)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return rules, nil
}

func (r *ruleRepository) scanRule(rows *sql.Rows) (*domain.AssociationRule, error) {
	var row ruleRow

	err := rows.Scan(
		&row.Antecedents,
		&row.Consequents,
		&row.Support,
		&row.Confidence,
		&row.Lift,
		&row.Leverage,
		&row.Conviction,
	)
	if err != nil {
		return nil, err
	}

	return ruleFromRow(row)
}

// ruleRow guarda as colunas como lidas do banco; antecedentes e consequentes ficam como literal
type ruleRow struct {
	Antecedents string
	Consequents string
	Support     float64
	Confidence  float64
	Lift        float64
	Leverage    sql.NullFloat64
	Conviction  sql.NullFloat64
}

func ruleFromRow(row ruleRow) (*domain.AssociationRule, error) {
	rule, err := dataset.RuleFromFields(row.Antecedents, row.Consequents)
	if err != nil {
		return nil, err
	}

	rule.Support = row.Support
	rule.Confidence = row.Confidence
	rule.Lift = row.Lift
	if row.Leverage.Valid {
		leverage := row.Leverage.Float64
		rule.Leverage = &leverage
	}
	if row.Conviction.Valid {
		conviction := row.Conviction.Float64
		rule.Conviction = &conviction
	}

	return rule, nil
}
