package transform

import (
	"fmt"

	"github.com/ella-rises/analytics-report/analytics/models"
)

// densityGridPoints - число точек, в которых вычисляется кривая плотности
const densityGridPoints = 100

// BinnedFrequency разбивает [lo, hi] на bins равных интервалов и считает попадания
// значений column. Последний интервал включает правую границу. Кривая плотности
// масштабирована к счётчикам (плотность * n * ширина бина), чтобы накладываться
// на столбцы гистограммы.
func BinnedFrequency(name string, table models.Table, column string, lo, hi float64, bins int) (models.Histogram, error) {
	result := models.Histogram{
		Name:   name,
		Column: column,
		Min:    lo,
		Max:    hi,
	}

	if bins <= 0 || !(hi > lo) {
		return result, &models.AggregateError{
			Aggregate: name,
			Err:       fmt.Errorf("некорректные параметры гистограммы: диапазон [%v, %v], бинов %d", lo, hi, bins),
		}
	}

	idx, err := table.ColumnIndex(column)
	if err != nil {
		return result, &models.AggregateError{Aggregate: name, Err: err}
	}

	width := (hi - lo) / float64(bins)
	result.BinWidth = width
	result.Bins = make([]models.HistogramBin, bins)
	for i := range result.Bins {
		result.Bins[i].Lower = lo + float64(i)*width
		result.Bins[i].Upper = lo + float64(i+1)*width
	}
	result.Bins[bins-1].Upper = hi

	samples := make([]float64, 0, table.Len())
	for row := range table.Rows {
		value, ok, err := table.Float(row, idx)
		if err != nil {
			return result, &models.AggregateError{Aggregate: name, Err: fmt.Errorf("строка %d: %w", row, err)}
		}
		if !ok {
			continue
		}
		if value < lo || value > hi {
			return result, &models.AggregateError{
				Aggregate: name,
				Err:       fmt.Errorf("строка %d: значение %v вне диапазона [%v, %v]", row, value, lo, hi),
			}
		}

		bin := int((value - lo) / width)
		if bin >= bins {
			bin = bins - 1
		}
		result.Bins[bin].Count++
		samples = append(samples, value)
	}

	result.Total = len(samples)

	kde, ok := GaussianKDE(samples)
	if ok {
		scale := float64(result.Total) * width
		step := (hi - lo) / float64(densityGridPoints-1)
		result.Density = make([]models.DensityPoint, densityGridPoints)
		for i := range result.Density {
			x := lo + float64(i)*step
			result.Density[i] = models.DensityPoint{X: x, Y: kde(x) * scale}
		}
	}

	return result, nil
}
