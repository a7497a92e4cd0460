package domain

import "html/template"

type ChartKind string

const (
	ChartKindBar ChartKind = "bar"
	ChartKindPie ChartKind = "pie"
)

// Dashboard é a página montada: um título e as seções em ordem vertical
type Dashboard struct {
	Title      string
	SnapshotID string
	Sections   []DashboardSection
}

type DashboardSection struct {
	ID      string // Identificador do gráfico na página (ex: top-items-bar)
	Heading string
	Chart   Chart
}

type Chart struct {
	Kind  ChartKind
	Title string
	SVG   template.HTML
	Empty bool
}
