package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Переменные окружения с параметрами подключения к исходной БД
const (
	EnvUser     = "RDS_USERNAME"
	EnvPassword = "RDS_PASSWORD"
	EnvHost     = "RDS_HOSTNAME"
	EnvPort     = "RDS_PORT"
	EnvDBName   = "RDS_DB_NAME"
	EnvSSLMode  = "RDS_SSLMODE"
)

// ReportConfig содержит конфигурацию построения отчётов
type ReportConfig struct {
	// Конфигурация для подключения к исходной БД
	Source DatabaseConfig `json:"source"`

	// Каталог, в который записываются PNG-файлы. Должен существовать.
	OutputDir string `json:"output_dir"`

	// Путь к .env файлу; отсутствие файла не является ошибкой
	EnvFile string `json:"env_file"`

	// Каталог для файла лога; пустая строка - только стандартный вывод
	LogDir string `json:"log_dir"`

	// Ограничение на время всего запуска
	Timeout time.Duration `json:"timeout"`

	// Включение/отключение подробного логирования
	EnableDetailedLogging bool `json:"enable_detailed_logging"`
}

// DatabaseConfig содержит настройки подключения к базе данных
type DatabaseConfig struct {
	Driver   string `json:"driver"`
	Host     string `json:"host"`
	Port     int    `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
	DBName   string `json:"dbname"`
	SSLMode  string `json:"sslmode"`
}

// Значения конфигурации по умолчанию
var (
	DefaultSourceConfig = DatabaseConfig{
		Driver:   DriverPostgres,
		Host:     "localhost",
		Port:     5434,
		User:     "ella_admin",
		Password: "ella_password",
		DBName:   "ella_rises",
		SSLMode:  "prefer",
	}

	DefaultReportConfig = ReportConfig{
		Source:    DefaultSourceConfig,
		OutputDir: "public/img/analytics",
		EnvFile:   ".env",
		Timeout:   5 * time.Minute,
	}
)

// GetConfig возвращает конфигурацию по умолчанию
func GetConfig() ReportConfig {
	return DefaultReportConfig
}

// LoadEnvFile загружает переменные из .env файла, не перезаписывая уже заданные.
// Отсутствующий файл пропускается.
func LoadEnvFile(path string) (bool, error) {
	if path == "" {
		return false, nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("ошибка чтения файла %s: %w", path, err)
	}
	return true, nil
}

// SourceFromEnv применяет переменные RDS_* поверх base.
// lookup обычно os.LookupEnv; пустые значения игнорируются.
func SourceFromEnv(base DatabaseConfig, lookup func(string) (string, bool)) (DatabaseConfig, error) {
	cfg := base

	set := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	set(EnvUser, &cfg.User)
	set(EnvPassword, &cfg.Password)
	set(EnvHost, &cfg.Host)
	set(EnvDBName, &cfg.DBName)
	set(EnvSSLMode, &cfg.SSLMode)

	if v, ok := lookup(EnvPort); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 || port > 65535 {
			return cfg, fmt.Errorf("некорректное значение %s=%q", EnvPort, v)
		}
		cfg.Port = port
	}

	return cfg, nil
}
