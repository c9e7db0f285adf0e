package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ella-rises/analytics-report/analytics/config"
	"github.com/ella-rises/analytics-report/analytics/extractors"
	"github.com/ella-rises/analytics-report/analytics/render"
	"github.com/ella-rises/analytics-report/analytics/report"
	"github.com/ella-rises/analytics-report/analytics/utils"
)

var rootCmd = &cobra.Command{
	Use:           "analytics",
	Short:         "Строит PNG-графики по анкетам и участникам для веб-страницы аналитики",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunOnce(cmd.Context(), reportConfig)
	},
}

var reportConfig = config.GetConfig()

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&reportConfig.EnvFile, "env-file", reportConfig.EnvFile, "Путь к .env файлу с переменными RDS_*")
	flags.StringVar(&reportConfig.OutputDir, "out", reportConfig.OutputDir, "Каталог для PNG-файлов (должен существовать)")
	flags.StringVar(&reportConfig.Source.Driver, "driver", reportConfig.Source.Driver, "Драйвер БД: pgx, mysql или sqlite")
	flags.StringVar(&reportConfig.LogDir, "log-dir", reportConfig.LogDir, "Каталог для файла лога")
	flags.DurationVar(&reportConfig.Timeout, "timeout", reportConfig.Timeout, "Ограничение времени запуска")
	flags.BoolVarP(&reportConfig.EnableDetailedLogging, "verbose", "v", reportConfig.EnableDetailedLogging, "Подробное логирование")
}

// RunOnce выполняет построение всех графиков один раз
func RunOnce(ctx context.Context, cfg config.ReportConfig) error {
	logger, err := utils.NewReportLogger(cfg.EnableDetailedLogging, cfg.LogDir)
	if err != nil {
		return err
	}
	defer logger.Sync()

	loaded, err := config.LoadEnvFile(cfg.EnvFile)
	if err != nil {
		logger.Error("Ошибка при загрузке переменных окружения: %v", err)
		return err
	}
	if loaded {
		logger.Debug("Загружены переменные окружения из %s", cfg.EnvFile)
	}

	cfg.Source, err = config.SourceFromEnv(cfg.Source, os.LookupEnv)
	if err != nil {
		logger.Error("Ошибка конфигурации: %v", err)
		return err
	}

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	logger.Info("Подключение к базе данных %s на %s:%d...", cfg.Source.DBName, cfg.Source.Host, cfg.Source.Port)
	db, err := config.ConnectDatabase(ctx, cfg.Source)
	if err != nil {
		logger.Error("Ошибка во время анализа: %v", err)
		return err
	}
	defer func() {
		if err := config.CloseDatabase(db); err != nil {
			logger.Error("%v", err)
		}
	}()

	runner := report.NewRunner(
		extractors.NewSQLSource(db, logger),
		render.NewRenderer(logger),
		cfg.OutputDir,
		report.DefaultUnits(),
		logger,
	)

	if _, err := runner.Run(ctx); err != nil {
		logger.Error("Ошибка во время анализа: %v", err)
		return err
	}
	return nil
}

func main() {
	ctx := context.Background()
	startTime := time.Now()

	// Любая ошибка завершает процесс с кодом 1
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Построение графиков прервано через %v: %v\n", time.Since(startTime).Round(time.Millisecond), err)
		os.Exit(1)
	}
}
