package transform

import (
	"sort"

	"github.com/ella-rises/analytics-report/analytics/models"
)

// CategoricalFrequency считает количество каждого значения column и его долю
// среди непустых значений. Категории без наблюдений не попадают в результат.
// Порядок - по убыванию количества, при равенстве - по первому появлению.
func CategoricalFrequency(name string, table models.Table, column string) (models.CategoryFrequency, error) {
	result := models.CategoryFrequency{
		Name:   name,
		Column: column,
	}

	idx, err := table.ColumnIndex(column)
	if err != nil {
		return result, &models.AggregateError{Aggregate: name, Err: err}
	}

	counts := make(map[string]int)
	order := make([]string, 0)
	for row := range table.Rows {
		value, ok := table.String(row, idx)
		if !ok {
			continue
		}
		if _, exists := counts[value]; !exists {
			order = append(order, value)
		}
		counts[value]++
		result.Total++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	result.Categories = make([]models.CategoryShare, 0, len(order))
	for _, value := range order {
		result.Categories = append(result.Categories, models.CategoryShare{
			Value:      value,
			Count:      counts[value],
			Proportion: float64(counts[value]) / float64(result.Total),
		})
	}

	return result, nil
}
