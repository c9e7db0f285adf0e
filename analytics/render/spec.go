package render

import (
	"math"
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ChartKind определяет тип графика
type ChartKind string

const (
	KindBar       ChartKind = "bar"
	KindHistogram ChartKind = "histogram"
	KindPie       ChartKind = "pie"
)

// Palette возвращает n цветов в формате #RRGGBB
type Palette func(n int) []string

// ChartSpec фиксирует визуальное оформление графика
type ChartSpec struct {
	Kind    ChartKind
	Title   string
	XLabel  string
	YLabel  string
	Palette Palette
	Width   int
	Height  int

	// Верхняя граница оси значений; 0 - подобрать по данным
	YMax float64

	// Подписи долей в процентах (только для круговой диаграммы)
	ShowPercent bool
}

// FixedPalette циклически повторяет заданные цвета
func FixedPalette(colors ...string) Palette {
	return func(n int) []string {
		out := make([]string, n)
		for i := range out {
			out[i] = colors[i%len(colors)]
		}
		return out
	}
}

// Опорные точки палитры viridis от тёмно-фиолетового к жёлтому
var viridisAnchors = []string{
	"#440154", "#482878", "#3E4A89", "#31688E", "#26828E",
	"#1F9E89", "#35B779", "#6DCD59", "#B4DE2C", "#FDE725",
}

// ViridisPalette равномерно выбирает n цветов из палитры viridis
func ViridisPalette(n int) []string {
	out := make([]string, n)
	if n == 1 {
		out[0] = viridisAnchors[len(viridisAnchors)/2]
		return out
	}
	last := len(viridisAnchors) - 1
	for i := range out {
		idx := int(math.Round(float64(i) * float64(last) / float64(n-1)))
		out[i] = viridisAnchors[idx]
	}
	return out
}

func colors(p Palette, n int) []drawing.Color {
	if p == nil {
		p = ViridisPalette
	}
	hexes := p(n)
	out := make([]drawing.Color, len(hexes))
	for i, h := range hexes {
		out[i] = drawing.ColorFromHex(strings.TrimPrefix(h, "#"))
	}
	return out
}
