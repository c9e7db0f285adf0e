package report

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/ella-rises/analytics-report/analytics/extractors"
	"github.com/ella-rises/analytics-report/analytics/models"
	"github.com/ella-rises/analytics-report/analytics/render"
	"github.com/ella-rises/analytics-report/analytics/utils"
)

// ChartRenderer записывает график агрегата в файл
type ChartRenderer interface {
	Render(agg models.Aggregate, spec render.ChartSpec, outputPath string) error
}

// Runner последовательно выполняет отчёты
type Runner struct {
	source    extractors.Source
	renderer  ChartRenderer
	outputDir string
	units     []Unit
	logger    *utils.ReportLogger
}

// NewRunner создает новый экземпляр Runner
func NewRunner(source extractors.Source, renderer ChartRenderer, outputDir string, units []Unit, logger *utils.ReportLogger) *Runner {
	return &Runner{
		source:    source,
		renderer:  renderer,
		outputDir: outputDir,
		units:     units,
		logger:    logger,
	}
}

// Run выполняет все отчёты по порядку. Отчёт без данных пропускается,
// любая другая ошибка прерывает запуск: оставшиеся отчёты остаются в состоянии pending.
// RunLog возвращается всегда, в том числе вместе с ошибкой.
func (r *Runner) Run(ctx context.Context) (*models.RunLog, error) {
	runLog := &models.RunLog{
		ID:        uuid.NewString(),
		StartTime: time.Now(),
		Status:    "in_progress",
		OutputDir: r.outputDir,
		Units:     make([]models.UnitResult, 0, len(r.units)),
	}
	for _, unit := range r.units {
		runLog.Units = append(runLog.Units, models.UnitResult{
			Name:   unit.Name,
			Output: filepath.Join(r.outputDir, unit.Output),
			Status: models.UnitPending,
		})
	}

	r.logger.LogRunStart(runLog.ID)

	// Отчёты с одинаковым запросом используют одну выборку в пределах запуска
	fetched := make(map[string]models.Table)

	for i, unit := range r.units {
		result := &runLog.Units[i]
		if err := r.runUnit(ctx, unit, result, fetched); err != nil {
			result.Status = models.UnitFailed
			result.Err = err
			result.ErrorMessage = err.Error()

			runLog.EndTime = time.Now()
			runLog.Status = "failed"
			runLog.ErrorMessage = err.Error()

			r.logger.Error("Ошибка при построении отчёта %s: %v", unit.Name, err)
			r.logger.LogRunComplete(runLog)
			return runLog, fmt.Errorf("отчёт %s: %w", unit.Name, err)
		}
	}

	runLog.EndTime = time.Now()
	runLog.Status = "success"

	r.logger.Info("Анализ завершён. Графики сохранены в %s", r.outputDir)
	r.logger.LogRunComplete(runLog)
	return runLog, nil
}

// runUnit проводит отчёт через состояния fetched → (skipped | aggregated) → rendered → done
func (r *Runner) runUnit(ctx context.Context, unit Unit, result *models.UnitResult, fetched map[string]models.Table) error {
	startTime := time.Now()
	defer func() {
		result.Duration = time.Since(startTime)
	}()

	table, ok := fetched[unit.Query]
	if !ok {
		r.logger.Debug("Извлечение данных для отчёта %s", unit.Name)
		var err error
		table, err = r.source.Fetch(ctx, unit.Query)
		if err != nil {
			return err
		}
		fetched[unit.Query] = table
	}
	result.Status = models.UnitFetched
	result.RowsFetched = table.Len()

	if table.IsEmpty() {
		result.Status = models.UnitSkipped
		r.logger.Info("Нет данных для отчёта %s, график %s не построен", unit.Name, unit.Output)
		return nil
	}

	agg, err := unit.Aggregate(table)
	if err != nil {
		return err
	}
	if agg.IsEmpty() {
		// Строки есть, но все значения NULL
		result.Status = models.UnitSkipped
		r.logger.Info("Нет непустых значений для отчёта %s, график %s не построен", unit.Name, unit.Output)
		return nil
	}
	result.Status = models.UnitAggregated

	if err := r.renderer.Render(agg, unit.Chart, result.Output); err != nil {
		return err
	}
	result.Status = models.UnitRendered

	result.Status = models.UnitDone
	return nil
}
