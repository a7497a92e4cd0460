package rendering

import (
	"encoding/xml"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/bakery-dashboard/internal/domain"
)

func TestTopItemsBar(t *testing.T) {
	spec := topItemsBar([]domain.ItemCount{
		{Item: "Coffee", Count: 5471},
		{Item: "Bread", Count: 3325},
	})

	assert.Equal(t, "Most Popular Products", spec.Title)
	assert.Equal(t, []string{"Coffee", "Bread"}, spec.Labels)
	assert.Equal(t, []float64{5471, 3325}, spec.Values)
	assert.Equal(t, spec.Values, spec.ColorValues)
	assert.False(t, spec.RotateX)
}

func TestCoPurchaseBar(t *testing.T) {
	spec := coPurchaseBar([]domain.AssociationRule{
		{AntecedentsLabel: "Toast", Lift: 1.47, Confidence: 0.70},
		{AntecedentsLabel: "Spanish Brunch, Bread", Lift: 1.25, Confidence: 0.59},
	})

	assert.Equal(t, []string{"Toast", "Spanish Brunch, Bread"}, spec.Labels)
	assert.Equal(t, []float64{1.47, 1.25}, spec.Values)
	assert.Equal(t, []float64{0.70, 0.59}, spec.ColorValues)
	assert.True(t, spec.RotateX)
}

func TestDaypartPie(t *testing.T) {
	spec := daypartPie([]domain.DaypartCount{
		{Daypart: "Afternoon", Count: 1},
		{Daypart: "Morning", Count: 2},
		{Daypart: "Evening", Count: 1},
	})

	assert.Equal(t, []string{"Afternoon (25%)", "Morning (50%)", "Evening (25%)"}, spec.Labels)
	assert.Equal(t, []float64{1, 2, 1}, spec.Values)
}

func TestRenderBar(t *testing.T) {
	chart, err := renderBar(topItemsBar([]domain.ItemCount{
		{Item: "Coffee", Count: 50},
		{Item: "Bread", Count: 30},
		{Item: "Tea", Count: 10},
	}))
	require.NoError(t, err)

	assert.Equal(t, domain.ChartKindBar, chart.Kind)
	assert.False(t, chart.Empty)
	svg := string(chart.SVG)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(svg), "<svg"))
	assert.Contains(t, svg, "Coffee")
	assert.Contains(t, svg, "Tea")
	assert.Contains(t, svg, "Most Popular Products")
}

func TestRenderBar_RotatedLabels(t *testing.T) {
	chart, err := renderBar(coPurchaseBar([]domain.AssociationRule{
		{AntecedentsLabel: "Toast", Lift: 1.47, Confidence: 0.70},
		{AntecedentsLabel: "Cake", Lift: 1.1, Confidence: 0.52},
	}))
	require.NoError(t, err)
	assert.Contains(t, string(chart.SVG), "Toast")
}

func TestRenderBar_EscapesLabels(t *testing.T) {
	chart, err := renderBar(topItemsBar([]domain.ItemCount{
		{Item: "<script>alert(1)</script>", Count: 5},
		{Item: "Hearty & Seasonal", Count: 3},
	}))
	require.NoError(t, err)

	svg := string(chart.SVG)
	assert.NotContains(t, svg, "<script>")
	assert.Contains(t, svg, "&lt;script&gt;alert(1)&lt;/script&gt;")
	assert.Contains(t, svg, "Hearty &amp; Seasonal")
	assertWellFormedXML(t, svg)
}

func TestRenderPie_EscapesLabels(t *testing.T) {
	chart, err := renderPie(daypartPie([]domain.DaypartCount{
		{Daypart: "Morning & Brunch", Count: 2},
		{Daypart: "<i>Night</i>", Count: 2},
	}))
	require.NoError(t, err)

	svg := string(chart.SVG)
	assert.NotContains(t, svg, "<i>")
	assert.Contains(t, svg, "Morning &amp; Brunch (50%)")
	assertWellFormedXML(t, svg)
}

func assertWellFormedXML(t *testing.T, svg string) {
	t.Helper()

	decoder := xml.NewDecoder(strings.NewReader(svg))
	for {
		_, err := decoder.Token()
		if err == io.EOF {
			return
		}
		require.NoError(t, err)
	}
}

func TestRenderBar_Empty(t *testing.T) {
	chart, err := renderBar(topItemsBar(nil))
	require.NoError(t, err)
	assert.True(t, chart.Empty)
	assert.Empty(t, chart.SVG)

	chart, err = renderBar(topItemsBar([]domain.ItemCount{{Item: "Bread", Count: 0}}))
	require.NoError(t, err)
	assert.True(t, chart.Empty)
}

func TestRenderPie(t *testing.T) {
	chart, err := renderPie(daypartPie([]domain.DaypartCount{
		{Daypart: "Afternoon", Count: 3},
		{Daypart: "Morning", Count: 5},
	}))
	require.NoError(t, err)

	assert.Equal(t, domain.ChartKindPie, chart.Kind)
	assert.False(t, chart.Empty)
	assert.Contains(t, string(chart.SVG), "<svg")
}

func TestRenderPie_Empty(t *testing.T) {
	chart, err := renderPie(daypartPie(nil))
	require.NoError(t, err)
	assert.True(t, chart.Empty)
}

func TestColorScale(t *testing.T) {
	scale := newColorScale("000000", "ffffff")

	assert.Equal(t, scale[0], scale.at(0))
	assert.Equal(t, scale[1], scale.at(1))
	assert.Equal(t, scale[1], scale.at(2))

	middle := scale.at(0.5)
	assert.Equal(t, uint8(128), middle.R)
	assert.Equal(t, uint8(255), middle.A)

	assert.Equal(t, scale[1], scale.forValue(3, 3, 3))
	assert.Equal(t, scale[0], scale.forValue(1, 1, 5))
}

func TestQualitativeColorWraps(t *testing.T) {
	assert.Equal(t, qualitativeColor(0), qualitativeColor(len(set3Palette)))
	assert.NotEqual(t, qualitativeColor(0), qualitativeColor(1))
}
