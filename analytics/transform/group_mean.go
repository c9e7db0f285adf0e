package transform

import (
	"fmt"

	"github.com/ella-rises/analytics-report/analytics/models"
)

// GroupMean вычисляет среднее значение valueColumn для каждого значения groupColumn.
// Группы идут в порядке первого появления ключа; строки с NULL в любой из колонок
// не участвуют, поэтому пустых групп в результате не бывает.
func GroupMean(name string, table models.Table, valueColumn, groupColumn string) (models.GroupMeans, error) {
	result := models.GroupMeans{
		Name:        name,
		ValueColumn: valueColumn,
		GroupColumn: groupColumn,
	}

	valueIdx, err := table.ColumnIndex(valueColumn)
	if err != nil {
		return result, &models.AggregateError{Aggregate: name, Err: err}
	}
	groupIdx, err := table.ColumnIndex(groupColumn)
	if err != nil {
		return result, &models.AggregateError{Aggregate: name, Err: err}
	}

	type accumulator struct {
		sum      float64
		count    int
		min, max float64
	}

	// Порядок ключей по первому появлению
	order := make([]string, 0)
	groups := make(map[string]*accumulator)

	for row := range table.Rows {
		value, ok, err := table.Float(row, valueIdx)
		if err != nil {
			return result, &models.AggregateError{Aggregate: name, Err: fmt.Errorf("строка %d: %w", row, err)}
		}
		if !ok {
			continue
		}
		key, ok := table.String(row, groupIdx)
		if !ok {
			continue
		}

		acc, exists := groups[key]
		if !exists {
			acc = &accumulator{min: value, max: value}
			groups[key] = acc
			order = append(order, key)
		}
		acc.sum += value
		acc.count++
		if value < acc.min {
			acc.min = value
		}
		if value > acc.max {
			acc.max = value
		}
	}

	result.Groups = make([]models.GroupMean, 0, len(order))
	for _, key := range order {
		acc := groups[key]
		mean := acc.sum / float64(acc.count)
		// Погрешность суммирования не должна выводить среднее за пределы группы
		if mean < acc.min {
			mean = acc.min
		}
		if mean > acc.max {
			mean = acc.max
		}
		result.Groups = append(result.Groups, models.GroupMean{
			Group: key,
			Mean:  mean,
			Count: acc.count,
			Min:   acc.min,
			Max:   acc.max,
		})
	}

	return result, nil
}
