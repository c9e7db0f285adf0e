package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ella-rises/analytics-report/analytics/models"
)

// ReportLogger представляет логгер для построения отчётов
type ReportLogger struct {
	sugar     *zap.SugaredLogger
	isVerbose bool
}

// NewReportLogger создает логгер, пишущий в стандартный вывод.
// Если указан logDir, сообщения дублируются в файл report_log_<дата>.log.
func NewReportLogger(verbose bool, logDir string) (*ReportLogger, error) {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006/01/02 15:04:05")
	encoderConfig.EncodeCaller = nil

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.Lock(os.Stdout), level),
	}

	if logDir != "" {
		// Создаем или открываем лог-файл для записи
		logFileName := filepath.Join(logDir, fmt.Sprintf("report_log_%s.log", time.Now().Format("2006-01-02")))
		file, err := os.OpenFile(logFileName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
		if err != nil {
			return nil, fmt.Errorf("не удалось открыть или создать файл лога: %w", err)
		}
		fileEncoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		cores = append(cores, zapcore.NewCore(fileEncoder, zapcore.AddSync(file), level))
	}

	return NewReportLoggerFromZap(zap.New(zapcore.NewTee(cores...)), verbose), nil
}

// NewReportLoggerFromZap оборачивает готовый zap-логгер
func NewReportLoggerFromZap(logger *zap.Logger, verbose bool) *ReportLogger {
	return &ReportLogger{
		sugar:     logger.Sugar(),
		isVerbose: verbose,
	}
}

// NewNopLogger возвращает логгер, который ничего не пишет
func NewNopLogger() *ReportLogger {
	return NewReportLoggerFromZap(zap.NewNop(), false)
}

// Info логирует информационное сообщение
func (l *ReportLogger) Info(format string, v ...interface{}) {
	l.sugar.Infof(format, v...)
}

// Error логирует сообщение об ошибке
func (l *ReportLogger) Error(format string, v ...interface{}) {
	l.sugar.Errorf(format, v...)
}

// Debug логирует отладочное сообщение (только если включен verbose режим)
func (l *ReportLogger) Debug(format string, v ...interface{}) {
	if !l.isVerbose {
		return
	}
	l.sugar.Debugf(format, v...)
}

// With возвращает логгер с дополнительными полями
func (l *ReportLogger) With(args ...interface{}) *ReportLogger {
	return &ReportLogger{
		sugar:     l.sugar.With(args...),
		isVerbose: l.isVerbose,
	}
}

// Sync сбрасывает буферы логгера
func (l *ReportLogger) Sync() {
	_ = l.sugar.Sync()
}

// LogRunStart логирует начало построения отчётов
func (l *ReportLogger) LogRunStart(runID string) {
	l.sugar.Infow("Начало построения аналитических графиков", "run_id", runID)
}

// LogRunComplete логирует итог запуска
func (l *ReportLogger) LogRunComplete(runLog *models.RunLog) {
	duration := runLog.EndTime.Sub(runLog.StartTime)
	l.sugar.Infow("Построение графиков завершено",
		"run_id", runLog.ID,
		"status", runLog.Status,
		"duration", duration,
	)
	l.Info("Построено: %d, пропущено без данных: %d, с ошибкой: %d",
		runLog.Count(models.UnitDone),
		runLog.Count(models.UnitSkipped),
		runLog.Count(models.UnitFailed))
	for _, u := range runLog.Units {
		l.Debug("Отчёт %s: статус=%s, строк=%d, длительность=%v", u.Name, u.Status, u.RowsFetched, u.Duration)
	}
}
