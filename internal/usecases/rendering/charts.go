package rendering

import (
	"bytes"
	"fmt"
	"html"
	"html/template"
	"math"

	"github.com/pkg/errors"
	"github.com/vfg2006/bakery-dashboard/internal/domain"
	"github.com/vfg2006/bakery-dashboard/pkg/utils"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Dimensões e fontes maiores que o padrão: o público do painel tem 65 anos ou mais
const (
	chartWidth      = 1100
	chartHeight     = 560
	barWidth        = 70
	barSpacing      = 30
	titleFontSize   = 20.0
	axisFontSize    = 13.0
	labelRotation   = 35.0
	rotatedPadding  = 140
	defaultPadding  = 40
	yAxisHeadroom   = 1.1
	pieChartSize    = 620
	pieValueMinimum = 0.0
)

var axisTextColor = drawing.ColorFromHex("333333")

// svgText escapa o texto antes de entregá-lo ao go-chart, que grava rótulos e títulos sem escape
func svgText(s string) string {
	return html.EscapeString(s)
}

// barSpec descreve um gráfico de barras antes da renderização
type barSpec struct {
	Title       string
	Labels      []string
	Values      []float64
	ColorValues []float64 // valores que definem a cor de cada barra
	Scale       colorScale
	RotateX     bool
}

// sliceSpec descreve um gráfico de pizza
type sliceSpec struct {
	Title  string
	Labels []string
	Values []float64
}

func topItemsBar(items []domain.ItemCount) barSpec {
	spec := barSpec{
		Title: "Most Popular Products",
		Scale: bluesScale,
	}

	for _, item := range items {
		spec.Labels = append(spec.Labels, item.Item)
		spec.Values = append(spec.Values, float64(item.Count))
	}
	spec.ColorValues = spec.Values

	return spec
}

func coPurchaseBar(rules []domain.AssociationRule) barSpec {
	spec := barSpec{
		Title:   "Most Significant Co-Purchase Patterns",
		Scale:   viridisScale,
		RotateX: true,
	}

	for _, rule := range rules {
		spec.Labels = append(spec.Labels, rule.AntecedentsLabel)
		spec.Values = append(spec.Values, rule.Lift)
		spec.ColorValues = append(spec.ColorValues, rule.Confidence)
	}

	return spec
}

func daypartPie(dayparts []domain.DaypartCount) sliceSpec {
	spec := sliceSpec{Title: "Distribution of Transactions by Day-Time"}

	total := 0
	for _, d := range dayparts {
		total += d.Count
	}

	for _, d := range dayparts {
		spec.Labels = append(spec.Labels, fmt.Sprintf("%s (%s%%)", d.Daypart, utils.FormatDecimal(utils.Percent(d.Count, total))))
		spec.Values = append(spec.Values, float64(d.Count))
	}

	return spec
}

// renderBar gera o SVG de um gráfico de barras. Séries vazias ou zeradas viram um gráfico vazio.
func renderBar(spec barSpec) (domain.Chart, error) {
	out := domain.Chart{Kind: domain.ChartKindBar, Title: spec.Title}

	_, maxValue := minMax(spec.Values)
	if len(spec.Values) == 0 || maxValue <= 0 {
		out.Empty = true
		return out, nil
	}

	colorMin, colorMax := minMax(spec.ColorValues)

	bars := make([]chart.Value, len(spec.Values))
	for i, v := range spec.Values {
		fill := spec.Scale.forValue(spec.ColorValues[i], colorMin, colorMax)
		bars[i] = chart.Value{
			Label: svgText(spec.Labels[i]),
			Value: v,
			Style: chart.Style{
				FillColor:   fill,
				StrokeColor: fill,
				StrokeWidth: 1,
			},
		}
	}

	// Sem quebra de linha: a quebra do go-chart pode partir uma entidade escapada ao meio
	xAxis := chart.Style{FontSize: axisFontSize, FontColor: axisTextColor, TextWrap: chart.TextWrapNone}
	bottomPadding := defaultPadding
	if spec.RotateX {
		xAxis.TextRotationDegrees = labelRotation
		bottomPadding = rotatedPadding
	}

	bc := chart.BarChart{
		Title:      svgText(spec.Title),
		TitleStyle: chart.Style{FontSize: titleFontSize},
		Width:      chartWidth,
		Height:     chartHeight,
		BarWidth:   barWidth,
		BarSpacing: barSpacing,
		Background: chart.Style{
			Padding: chart.Box{Top: defaultPadding, Left: 10, Right: 10, Bottom: bottomPadding},
		},
		XAxis: xAxis,
		YAxis: chart.YAxis{
			Style: chart.Style{FontSize: axisFontSize, FontColor: axisTextColor},
			Range: &chart.ContinuousRange{Min: 0, Max: maxValue * yAxisHeadroom},
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return utils.FormatDecimal(f)
				}
				return ""
			},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := bc.Render(chart.SVG, &buf); err != nil {
		return out, errors.Wrapf(err, "rendering: erro ao renderizar %q", spec.Title)
	}

	out.SVG = template.HTML(buf.String())
	return out, nil
}

// renderPie gera o SVG de um gráfico de pizza com a paleta qualitativa
func renderPie(spec sliceSpec) (domain.Chart, error) {
	out := domain.Chart{Kind: domain.ChartKindPie, Title: spec.Title}

	values := make([]chart.Value, 0, len(spec.Values))
	for i, v := range spec.Values {
		if v <= pieValueMinimum || math.IsNaN(v) {
			continue
		}
		values = append(values, chart.Value{
			Label: svgText(spec.Labels[i]),
			Value: v,
			Style: chart.Style{
				FillColor:   qualitativeColor(i),
				StrokeColor: drawing.ColorWhite,
				StrokeWidth: 2,
				FontSize:    axisFontSize,
				FontColor:   axisTextColor,
			},
		})
	}

	if len(values) == 0 {
		out.Empty = true
		return out, nil
	}

	pc := chart.PieChart{
		Title:      svgText(spec.Title),
		TitleStyle: chart.Style{FontSize: titleFontSize},
		Width:      pieChartSize,
		Height:     pieChartSize,
		Values:     values,
	}

	var buf bytes.Buffer
	if err := pc.Render(chart.SVG, &buf); err != nil {
		return out, errors.Wrapf(err, "rendering: erro ao renderizar %q", spec.Title)
	}

	out.SVG = template.HTML(buf.String())
	return out, nil
}
