package render

import (
	"errors"
	"fmt"
	"io"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/ella-rises/analytics-report/analytics/models"
)

const (
	captionFontSize = 11
	maxBarWidth     = 120
)

// renderBar рисует столбчатую диаграмму средних по группам
func renderBar(agg models.GroupMeans, spec ChartSpec, w io.Writer) error {
	if len(agg.Groups) == 0 {
		return errors.New("нет групп для построения столбчатой диаграммы")
	}

	palette := colors(spec.Palette, len(agg.Groups))
	bars := make([]chart.Value, 0, len(agg.Groups))
	maxValue := 0.0
	for i, g := range agg.Groups {
		bars = append(bars, chart.Value{
			Label: g.Group,
			Value: g.Mean,
			Style: chart.Style{
				FillColor:   palette[i],
				StrokeColor: palette[i],
				StrokeWidth: 1,
			},
		})
		maxValue = math.Max(maxValue, g.Mean)
	}

	// Столбцы должны поместиться на холсте при любом числе групп
	slot := (spec.Width - 200) / len(bars)
	if slot < 2 {
		slot = 2
	}
	barWidth := slot * 3 / 5
	if barWidth > maxBarWidth {
		barWidth = maxBarWidth
	}
	if barWidth < 1 {
		barWidth = 1
	}

	yMax := spec.YMax
	if yMax <= 0 {
		yMax = niceCeil(maxValue)
	}

	bc := chart.BarChart{
		Title:  spec.Title,
		Width:  spec.Width,
		Height: spec.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 50, Left: 50, Right: 20, Bottom: 50},
		},
		BarWidth:   barWidth,
		BarSpacing: slot - barWidth,
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: yMax},
		},
		Bars: bars,
	}
	bc.Elements = []chart.Renderable{
		horizontalCaption(spec.XLabel, spec.Height),
		verticalCaption(spec.YLabel),
	}

	return bc.Render(chart.PNG, w)
}

// renderHistogram рисует гистограмму с наложенной кривой плотности
func renderHistogram(agg models.Histogram, spec ChartSpec, w io.Writer) error {
	if len(agg.Bins) == 0 {
		return errors.New("нет интервалов для построения гистограммы")
	}

	palette := colors(spec.Palette, 2)

	centers := make([]float64, len(agg.Bins))
	counts := make([]float64, len(agg.Bins))
	maxValue := 0.0
	for i, b := range agg.Bins {
		centers[i] = (b.Lower + b.Upper) / 2
		counts[i] = float64(b.Count)
		maxValue = math.Max(maxValue, counts[i])
	}

	series := []chart.Series{
		chart.HistogramSeries{
			Name: "Количество",
			Style: chart.Style{
				FillColor:   palette[0],
				StrokeColor: chart.ColorWhite,
				StrokeWidth: 1,
			},
			InnerSeries: chart.ContinuousSeries{
				XValues: centers,
				YValues: counts,
			},
		},
	}

	if len(agg.Density) > 0 {
		xs := make([]float64, len(agg.Density))
		ys := make([]float64, len(agg.Density))
		for i, p := range agg.Density {
			xs[i] = p.X
			ys[i] = p.Y
			maxValue = math.Max(maxValue, p.Y)
		}
		series = append(series, chart.ContinuousSeries{
			Name: "Плотность (KDE)",
			Style: chart.Style{
				StrokeColor: palette[1],
				StrokeWidth: 2,
			},
			XValues: xs,
			YValues: ys,
		})
	}

	yMax := spec.YMax
	if yMax <= 0 {
		yMax = niceCeil(maxValue)
	}

	ch := chart.Chart{
		Title:  spec.Title,
		Width:  spec.Width,
		Height: spec.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 50, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name:  spec.XLabel,
			Range: &chart.ContinuousRange{Min: agg.Min, Max: agg.Max},
			Ticks: integerTicks(agg.Min, agg.Max),
		},
		YAxis: chart.YAxis{
			Name:  spec.YLabel,
			Range: &chart.ContinuousRange{Min: 0, Max: yMax},
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	return ch.Render(chart.PNG, w)
}

// renderPie рисует круговую диаграмму долей категорий
func renderPie(agg models.CategoryFrequency, spec ChartSpec, w io.Writer) error {
	if len(agg.Categories) == 0 {
		return errors.New("нет категорий для построения круговой диаграммы")
	}

	palette := colors(spec.Palette, len(agg.Categories))
	values := make([]chart.Value, 0, len(agg.Categories))
	for i, c := range agg.Categories {
		label := c.Value
		if spec.ShowPercent {
			label = fmt.Sprintf("%s %.1f%%", c.Value, c.Proportion*100)
		}
		values = append(values, chart.Value{
			Label: label,
			Value: float64(c.Count),
			Style: chart.Style{
				FillColor:   palette[i],
				StrokeColor: chart.ColorWhite,
				StrokeWidth: 2,
			},
		})
	}

	pc := chart.PieChart{
		Title:  spec.Title,
		Width:  spec.Width,
		Height: spec.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 60, Left: 20, Right: 20, Bottom: 20},
		},
		Values: values,
	}

	return pc.Render(chart.PNG, w)
}

// horizontalCaption подписывает ось X под столбцами
func horizontalCaption(text string, height int) chart.Renderable {
	return func(r chart.Renderer, canvasBox chart.Box, defaults chart.Style) {
		if text == "" {
			return
		}
		style := captionStyle(defaults)
		box := chart.Box{Top: height - 30, Left: canvasBox.Left, Right: canvasBox.Right, Bottom: height - 5}
		style.TextHorizontalAlign = chart.TextHorizontalAlignCenter
		chart.Draw.TextWithin(r, text, box, style)
	}
}

// verticalCaption подписывает ось значений вдоль левого края
func verticalCaption(text string) chart.Renderable {
	return func(r chart.Renderer, canvasBox chart.Box, defaults chart.Style) {
		if text == "" {
			return
		}
		style := captionStyle(defaults)
		style.WriteTextOptionsToRenderer(r)
		textBox := r.MeasureText(text)
		r.ResetStyle()

		style.TextRotationDegrees = 270
		x := 20
		y := canvasBox.Top + (canvasBox.Height()+textBox.Width())/2
		chart.Draw.Text(r, text, x, y, style)
	}
}

func captionStyle(defaults chart.Style) chart.Style {
	return chart.Style{
		Font:      defaults.Font,
		FontSize:  captionFontSize,
		FontColor: drawing.ColorBlack,
	}
}

// integerTicks размечает целые значения, если диапазон небольшой
func integerTicks(lo, hi float64) []chart.Tick {
	if hi-lo > 20 {
		return nil
	}
	var ticks []chart.Tick
	for v := math.Ceil(lo); v <= hi; v++ {
		ticks = append(ticks, chart.Tick{Value: v, Label: fmt.Sprintf("%.0f", v)})
	}
	return ticks
}

// niceCeil округляет максимум оси вверх с небольшим запасом
func niceCeil(v float64) float64 {
	if v <= 0 {
		return 1
	}
	return math.Ceil(v * 1.1)
}
