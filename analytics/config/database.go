package config

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/ella-rises/analytics-report/analytics/models"
)

// Поддерживаемые драйверы database/sql
const (
	DriverPostgres = "pgx"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

// DSN формирует строку подключения для выбранного драйвера.
// Для sqlite DBName трактуется как путь к файлу базы данных.
func (c DatabaseConfig) DSN() (string, error) {
	switch c.Driver {
	case DriverPostgres:
		u := url.URL{
			Scheme: "postgres",
			User:   url.UserPassword(c.User, c.Password),
			Host:   net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
			Path:   "/" + c.DBName,
		}
		if c.SSLMode != "" {
			u.RawQuery = url.Values{"sslmode": {c.SSLMode}}.Encode()
		}
		return u.String(), nil
	case DriverMySQL:
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true",
			c.User,
			c.Password,
			c.Host,
			c.Port,
			c.DBName,
		), nil
	case DriverSQLite:
		return "file:" + c.DBName + "?mode=ro", nil
	default:
		return "", fmt.Errorf("неизвестный драйвер базы данных %q (доступны: %s, %s, %s)",
			c.Driver, DriverPostgres, DriverMySQL, DriverSQLite)
	}
}

// ConnectDatabase устанавливает подключение к исходной базе данных (одно соединение)
func ConnectDatabase(ctx context.Context, cfg DatabaseConfig) (*sql.DB, error) {
	dsn, err := cfg.DSN()
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(cfg.Driver, dsn)
	if err != nil {
		return nil, &models.ConnectionError{Driver: cfg.Driver, Host: cfg.Host, Port: cfg.Port, Err: err}
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	// Проверка подключения
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, &models.ConnectionError{Driver: cfg.Driver, Host: cfg.Host, Port: cfg.Port, Err: err}
	}

	return db, nil
}

// CloseDatabase закрывает подключение к базе данных
func CloseDatabase(db *sql.DB) error {
	if db == nil {
		return nil
	}
	if err := db.Close(); err != nil {
		return fmt.Errorf("ошибка при закрытии соединения с базой данных: %w", err)
	}
	return nil
}
