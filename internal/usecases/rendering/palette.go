package rendering

import (
	"math"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Escalas usadas nos gráficos: contínuas para barras coloridas por valor e qualitativa para a pizza
var (
	bluesScale = newColorScale(
		"deebf7", "c6dbef", "9ecae1", "6baed6", "4292c6", "2171b5", "08519c", "08306b",
	)
	viridisScale = newColorScale(
		"440154", "482878", "3e4989", "31688e", "26828e", "1f9e89", "35b779", "6ece58", "b5de2b", "fde725",
	)
	set3Palette = []drawing.Color{
		drawing.ColorFromHex("8dd3c7"),
		drawing.ColorFromHex("ffffb3"),
		drawing.ColorFromHex("bebada"),
		drawing.ColorFromHex("fb8072"),
		drawing.ColorFromHex("80b1d3"),
		drawing.ColorFromHex("fdb462"),
		drawing.ColorFromHex("b3de69"),
		drawing.ColorFromHex("fccde5"),
		drawing.ColorFromHex("d9d9d9"),
		drawing.ColorFromHex("bc80bd"),
		drawing.ColorFromHex("ccebc5"),
		drawing.ColorFromHex("ffed6f"),
	}
)

type colorScale []drawing.Color

func newColorScale(hexes ...string) colorScale {
	scale := make(colorScale, len(hexes))
	for i, hex := range hexes {
		scale[i] = drawing.ColorFromHex(hex)
	}
	return scale
}

// at interpola a cor na posição t, com t entre 0 e 1
func (c colorScale) at(t float64) drawing.Color {
	if len(c) == 0 {
		return drawing.ColorBlack
	}
	if len(c) == 1 || math.IsNaN(t) || t <= 0 {
		return c[0]
	}
	if t >= 1 {
		return c[len(c)-1]
	}

	pos := t * float64(len(c)-1)
	i := int(pos)
	frac := pos - float64(i)

	from, to := c[i], c[i+1]
	return drawing.Color{
		R: lerp(from.R, to.R, frac),
		G: lerp(from.G, to.G, frac),
		B: lerp(from.B, to.B, frac),
		A: 255,
	}
}

// forValue mapeia v para a escala usando o intervalo [min, max] da série
func (c colorScale) forValue(v, min, max float64) drawing.Color {
	if max <= min {
		return c.at(1)
	}
	return c.at((v - min) / (max - min))
}

func qualitativeColor(index int) drawing.Color {
	return set3Palette[index%len(set3Palette)]
}

func lerp(from, to uint8, frac float64) uint8 {
	return uint8(math.Round(float64(from) + (float64(to)-float64(from))*frac))
}

func minMax(values []float64) (float64, float64) {
	if len(values) == 0 {
		return 0, 0
	}

	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}
