package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Table представляет результат запроса к исходной БД: имена колонок и строки
// в порядке, в котором их вернула база данных.
type Table struct {
	Columns []string
	Rows    [][]interface{}
}

// Len возвращает количество строк
func (t Table) Len() int {
	return len(t.Rows)
}

// IsEmpty сообщает, что запрос не вернул ни одной строки
func (t Table) IsEmpty() bool {
	return len(t.Rows) == 0
}

// ColumnIndex возвращает индекс колонки по имени
func (t Table) ColumnIndex(name string) (int, error) {
	for i, c := range t.Columns {
		if strings.EqualFold(c, name) {
			return i, nil
		}
	}
	return -1, fmt.Errorf("колонка %q отсутствует в таблице (доступны: %s)", name, strings.Join(t.Columns, ", "))
}

// Float возвращает числовое значение ячейки. ok=false означает NULL.
func (t Table) Float(row, col int) (value float64, ok bool, err error) {
	switch v := t.Rows[row][col].(type) {
	case nil:
		return 0, false, nil
	case int64:
		return float64(v), true, nil
	case int32:
		return float64(v), true, nil
	case int:
		return float64(v), true, nil
	case float64:
		return v, true, nil
	case float32:
		return float64(v), true, nil
	case []byte:
		return parseNumber(string(v))
	case string:
		return parseNumber(v)
	default:
		return 0, false, fmt.Errorf("значение типа %T не является числом", v)
	}
}

// String возвращает строковое значение ячейки. ok=false означает NULL.
func (t Table) String(row, col int) (value string, ok bool) {
	switch v := t.Rows[row][col].(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case []byte:
		return string(v), true
	default:
		return fmt.Sprint(v), true
	}
}

func parseNumber(s string) (float64, bool, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false, fmt.Errorf("значение %q не является числом: %w", s, err)
	}
	return f, true, nil
}
