package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/bakery-dashboard/infrastructure/database/postgres"
	"github.com/vfg2006/bakery-dashboard/infrastructure/dataset"
	"github.com/vfg2006/bakery-dashboard/infrastructure/repository"
	"github.com/vfg2006/bakery-dashboard/internal/api"
	"github.com/vfg2006/bakery-dashboard/internal/config"
	"github.com/vfg2006/bakery-dashboard/internal/domain"
	"github.com/vfg2006/bakery-dashboard/internal/metrics"
	"github.com/vfg2006/bakery-dashboard/internal/usecases/analyzing"
	"github.com/vfg2006/bakery-dashboard/internal/usecases/loading"
	"github.com/vfg2006/bakery-dashboard/internal/usecases/rendering"
	"github.com/vfg2006/bakery-dashboard/pkg/log"
)

func main() {
	// Formato dos logs antes de ler a configuração
	log.Configure("info")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	metrics.Init()

	loader, closeSource := newLoader(ctx, cfg)
	snapshot, err := loader.Load(ctx)
	closeSource()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar os dados do painel")
	}

	analyzer := analyzing.NewService(snapshot)

	renderer, err := rendering.NewService(analyzer, cfg.Dashboard, cfg.App.Debug)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao preparar a renderização do painel")
	}

	// Renderiza uma vez na inicialização para falhar cedo se algum gráfico não puder ser gerado
	if _, err := renderer.Page(); err != nil {
		logrus.WithError(err).Fatal("Erro ao renderizar o painel")
	}

	server, err := api.New(cfg, renderer, analyzer)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// newLoader escolhe a fonte dos dados. A função devolvida libera a conexão, quando houver.
func newLoader(ctx context.Context, cfg *config.Config) (loading.Loader, func()) {
	if cfg.Dataset.Source == domain.SourcePostgres {
		pgConn := pgconn(ctx, cfg.Database)

		loader := loading.NewService(
			domain.SourcePostgres,
			repository.NewTransactionRepository(pgConn),
			repository.NewRuleRepository(pgConn),
		)

		return loader, func() { pgConn.Close() }
	}

	loader := loading.NewService(
		domain.SourceCSV,
		dataset.NewTransactionFile(cfg.Dataset.TransactionsFile),
		dataset.NewRuleFile(cfg.Dataset.RulesFile),
	)

	return loader, func() {}
}

// pgconn cria uma conexão com o banco de dados; NewConnection já valida com ping
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
