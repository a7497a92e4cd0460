package rendering

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/bakery-dashboard/internal/config"
	"github.com/vfg2006/bakery-dashboard/internal/domain"
	"github.com/vfg2006/bakery-dashboard/internal/metrics"
	"github.com/vfg2006/bakery-dashboard/internal/usecases/analyzing"
	"github.com/vfg2006/bakery-dashboard/pkg/log"
)

//go:embed templates/dashboard.html
var templates embed.FS

// IDs das seções na página
const (
	SectionTopItems   = "top-items-bar"
	SectionCoPurchase = "co-purchase-bar"
	SectionDaypart    = "daypart-pie"
)

// Legenda dos eixos de cada gráfico, mostrada abaixo do SVG
var axisLegends = map[string]string{
	SectionTopItems:   "Item × Purchase Count",
	SectionCoPurchase: "Item(s) Bought × Lift Score, colored by Confidence",
	SectionDaypart:    "Share of transactions per Daypart",
}

// Renderer monta o painel e a página HTML
type Renderer interface {
	BuildDashboard() (*domain.Dashboard, error)
	Page() ([]byte, error)
}

type Service struct {
	analyzer analyzing.Analyzer
	cfg      config.Dashboard
	debug    bool
	page     *template.Template

	once   sync.Once
	cached []byte
	err    error
}

func NewService(analyzer analyzing.Analyzer, cfg config.Dashboard, debug bool) (*Service, error) {
	page, err := template.ParseFS(templates, "templates/dashboard.html")
	if err != nil {
		return nil, errors.Wrap(err, "rendering: erro ao carregar template")
	}

	return &Service{
		analyzer: analyzer,
		cfg:      cfg,
		debug:    debug,
		page:     page,
	}, nil
}

// BuildDashboard monta os três gráficos na ordem vertical da página
func (s *Service) BuildDashboard() (*domain.Dashboard, error) {
	topItems, err := renderBar(topItemsBar(s.analyzer.TopItems(s.cfg.TopItemsLimit)))
	if err != nil {
		return nil, err
	}

	coPurchase, err := renderBar(coPurchaseBar(s.analyzer.TopRules(s.cfg.TopRulesLimit)))
	if err != nil {
		return nil, err
	}

	dayparts, err := renderPie(daypartPie(s.analyzer.DaypartDistribution()))
	if err != nil {
		return nil, err
	}

	return &domain.Dashboard{
		Title:      s.cfg.Title,
		SnapshotID: s.analyzer.Stats().ID,
		Sections: []domain.DashboardSection{
			{ID: SectionTopItems, Heading: fmt.Sprintf("Top %d Most Purchased Items", s.cfg.TopItemsLimit), Chart: topItems},
			{ID: SectionCoPurchase, Heading: "Top Co-Purchase Patterns (Apriori)", Chart: coPurchase},
			{ID: SectionDaypart, Heading: "Transactions by Time of Day", Chart: dayparts},
		},
	}, nil
}

// Page devolve a página renderizada. Fora do modo debug a renderização acontece uma única vez.
func (s *Service) Page() ([]byte, error) {
	if s.debug {
		return s.render()
	}

	s.once.Do(func() {
		s.cached, s.err = s.render()
	})
	return s.cached, s.err
}

func (s *Service) render() ([]byte, error) {
	startedAt := time.Now()

	dashboard, err := s.BuildDashboard()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	err = s.page.Execute(&buf, struct {
		*domain.Dashboard
		Axes map[string]string
	}{dashboard, axisLegends})
	if err != nil {
		return nil, errors.Wrap(err, "rendering: erro ao executar template")
	}

	elapsed := time.Since(startedAt)
	metrics.RenderDuration.Observe(elapsed.Seconds())

	log.L.WithFields(log.Fields{
		"snapshot_id": dashboard.SnapshotID,
		"duration_ms": elapsed.Milliseconds(),
	}).Debug("Painel renderizado")

	return buf.Bytes(), nil
}
