package render

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ella-rises/analytics-report/analytics/models"
	"github.com/ella-rises/analytics-report/analytics/utils"
)

// Renderer рисует агрегаты в PNG-файлы. Состояния между вызовами не хранит.
type Renderer struct {
	logger *utils.ReportLogger
}

// NewRenderer создает новый экземпляр Renderer
func NewRenderer(logger *utils.ReportLogger) *Renderer {
	return &Renderer{
		logger: logger,
	}
}

// Render строит график по агрегату и записывает его в outputPath, перезаписывая
// существующий файл. Каталог outputPath должен существовать.
func (r *Renderer) Render(agg models.Aggregate, spec ChartSpec, outputPath string) error {
	if err := checkOutputDir(filepath.Dir(outputPath)); err != nil {
		r.logger.Error("Каталог для графика %s недоступен: %v", outputPath, err)
		return &models.RenderError{Path: outputPath, Err: err}
	}

	var buf bytes.Buffer
	if err := draw(agg, spec, &buf); err != nil {
		r.logger.Error("Ошибка при построении графика %s: %v", outputPath, err)
		return &models.RenderError{Path: outputPath, Err: err}
	}

	if err := os.WriteFile(outputPath, buf.Bytes(), 0o644); err != nil {
		r.logger.Error("Ошибка при записи графика %s: %v", outputPath, err)
		return &models.RenderError{Path: outputPath, Err: err}
	}

	r.logger.Info("Сгенерирован график: %s", filepath.Base(outputPath))
	r.logger.Debug("Размер файла %s: %d байт", outputPath, buf.Len())
	return nil
}

func draw(agg models.Aggregate, spec ChartSpec, buf *bytes.Buffer) error {
	if spec.Width <= 0 || spec.Height <= 0 {
		return fmt.Errorf("некорректный размер холста %dx%d", spec.Width, spec.Height)
	}

	switch spec.Kind {
	case KindBar:
		a, ok := agg.(models.GroupMeans)
		if !ok {
			return kindMismatch(spec.Kind, agg)
		}
		return renderBar(a, spec, buf)
	case KindHistogram:
		a, ok := agg.(models.Histogram)
		if !ok {
			return kindMismatch(spec.Kind, agg)
		}
		return renderHistogram(a, spec, buf)
	case KindPie:
		a, ok := agg.(models.CategoryFrequency)
		if !ok {
			return kindMismatch(spec.Kind, agg)
		}
		return renderPie(a, spec, buf)
	default:
		return fmt.Errorf("неизвестный тип графика %q", spec.Kind)
	}
}

func kindMismatch(kind ChartKind, agg models.Aggregate) error {
	return fmt.Errorf("график %q не умеет отображать агрегат %T", kind, agg)
}

func checkOutputDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return errors.New(dir + " не является каталогом")
	}
	return nil
}
