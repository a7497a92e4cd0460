package main

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/bakery-dashboard/infrastructure/database/postgres"
	"github.com/vfg2006/bakery-dashboard/infrastructure/dataset"
	"github.com/vfg2006/bakery-dashboard/internal/config"
	"github.com/vfg2006/bakery-dashboard/internal/domain"
	"github.com/vfg2006/bakery-dashboard/pkg/log"
)

// Intervalo entre logs de progresso
const progressEvery = 5000

var schema = []string{
	`CREATE TABLE IF NOT EXISTS bakery_transactions (
		id             BIGSERIAL PRIMARY KEY,
		transaction_no TEXT,
		items          TEXT NOT NULL,
		date_time      TEXT,
		daypart        TEXT NOT NULL,
		day_type       TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS apriori_rules (
		id          BIGSERIAL PRIMARY KEY,
		antecedents TEXT NOT NULL,
		consequents TEXT NOT NULL,
		support     DOUBLE PRECISION,
		confidence  DOUBLE PRECISION NOT NULL,
		lift        DOUBLE PRECISION NOT NULL,
		leverage    DOUBLE PRECISION,
		conviction  DOUBLE PRECISION
	)`,
}

// Importa os dois CSVs para o PostgreSQL, substituindo o conteúdo das tabelas.
// Usa as mesmas variáveis de ambiente do servidor (TRANSACTIONS_FILE, RULES_FILE, DATABASE_*).
func main() {
	log.Configure("info")
	logrus.Info("Iniciando importação dos CSVs para o PostgreSQL...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	ctx := context.Background()

	transactions, err := dataset.NewTransactionFile(cfg.Dataset.TransactionsFile).ReadTransactions(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao ler o arquivo de transações")
	}

	rules, err := dataset.NewRuleFile(cfg.Dataset.RulesFile).ReadRules(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao ler o arquivo de regras")
	}

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	if err := seed(ctx, conn.DB, transactions, rules); err != nil {
		logrus.WithError(err).Fatal("Importação abortada")
	}

	logrus.Info("Importação concluída com sucesso")
}

func seed(ctx context.Context, db *sql.DB, transactions []domain.Transaction, rules []domain.AssociationRule) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return errors.Wrap(err, "erro ao criar tabelas")
		}
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "erro ao iniciar transação")
	}

	if err := replaceAll(ctx, tx, transactions, rules); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logrus.WithError(rbErr).Error("Erro ao desfazer a transação")
		}
		return err
	}

	return errors.Wrap(tx.Commit(), "erro ao confirmar transação")
}

func replaceAll(ctx context.Context, tx *sql.Tx, transactions []domain.Transaction, rules []domain.AssociationRule) error {
	if _, err := tx.ExecContext(ctx, "TRUNCATE bakery_transactions, apriori_rules RESTART IDENTITY"); err != nil {
		return errors.Wrap(err, "erro ao limpar tabelas")
	}

	if err := insertTransactions(ctx, tx, transactions); err != nil {
		return err
	}

	return insertRules(ctx, tx, rules)
}

func insertTransactions(ctx context.Context, tx *sql.Tx, transactions []domain.Transaction) error {
	logrus.Infof("Iniciando inserção de %d transações...", len(transactions))
	startTime := time.Now()

	query, _, err := squirrel.
		Insert("bakery_transactions").
		Columns("transaction_no", "items", "date_time", "daypart", "day_type").
		Values("", "", "", "", "").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir insert de transações")
	}

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return errors.Wrap(err, "erro ao preparar insert de transações")
	}
	defer stmt.Close()

	for i, t := range transactions {
		_, err := stmt.ExecContext(ctx, nullable(t.TransactionNo), t.Item, nullable(t.DateTime), t.Daypart, nullable(t.DayType))
		if err != nil {
			return errors.Wrapf(err, "erro ao inserir transação %d", i+1)
		}
		if i > 0 && i%progressEvery == 0 {
			logrus.Infof("Progresso: %d/%d transações inseridas", i, len(transactions))
		}
	}

	logrus.Infof("Inserção de transações concluída em %v", time.Since(startTime))
	return nil
}

func insertRules(ctx context.Context, tx *sql.Tx, rules []domain.AssociationRule) error {
	logrus.Infof("Iniciando inserção de %d regras...", len(rules))
	startTime := time.Now()

	query, _, err := squirrel.
		Insert("apriori_rules").
		Columns("antecedents", "consequents", "support", "confidence", "lift", "leverage", "conviction").
		Values("", "", 0, 0, 0, nil, nil).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir insert de regras")
	}

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return errors.Wrap(err, "erro ao preparar insert de regras")
	}
	defer stmt.Close()

	for i, r := range rules {
		_, err := stmt.ExecContext(ctx,
			dataset.ItemSetLiteral(r.Antecedents),
			dataset.ItemSetLiteral(r.Consequents),
			r.Support,
			r.Confidence,
			r.Lift,
			r.Leverage,
			r.Conviction,
		)
		if err != nil {
			return errors.Wrapf(err, "erro ao inserir regra %d", i+1)
		}
	}

	logrus.Infof("Inserção de regras concluída em %v", time.Since(startTime))
	return nil
}

// nullable grava texto vazio como NULL
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
