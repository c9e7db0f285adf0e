package models

import (
	"time"
)

// UnitStatus - состояние отчёта в рамках одного запуска
type UnitStatus string

const (
	UnitPending    UnitStatus = "pending"
	UnitFetched    UnitStatus = "fetched"
	UnitSkipped    UnitStatus = "skipped"
	UnitAggregated UnitStatus = "aggregated"
	UnitRendered   UnitStatus = "rendered"
	UnitDone       UnitStatus = "done"
	UnitFailed     UnitStatus = "failed"
)

// UnitResult представляет итог выполнения одного отчёта
type UnitResult struct {
	Name         string        `json:"name"`
	Output       string        `json:"output"`
	Status       UnitStatus    `json:"status"`
	RowsFetched  int           `json:"rows_fetched"`
	Duration     time.Duration `json:"duration"`
	ErrorMessage string        `json:"error_message,omitempty"`
	Err          error         `json:"-"`
}

// RunLog представляет запись о запуске построения отчётов
type RunLog struct {
	ID           string       `json:"id"`
	StartTime    time.Time    `json:"start_time"`
	EndTime      time.Time    `json:"end_time"`
	Status       string       `json:"status"` // "success", "failed", "in_progress"
	OutputDir    string       `json:"output_dir"`
	Units        []UnitResult `json:"units"`
	ErrorMessage string       `json:"error_message,omitempty"`
}

// Unit возвращает результат отчёта по имени
func (l *RunLog) Unit(name string) (UnitResult, bool) {
	for _, u := range l.Units {
		if u.Name == name {
			return u, true
		}
	}
	return UnitResult{}, false
}

// Count возвращает количество отчётов в указанном состоянии
func (l *RunLog) Count(status UnitStatus) int {
	n := 0
	for _, u := range l.Units {
		if u.Status == status {
			n++
		}
	}
	return n
}
