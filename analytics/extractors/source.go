package extractors

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"
	"strings"

	"github.com/ella-rises/analytics-report/analytics/models"
	"github.com/ella-rises/analytics-report/analytics/utils"
)

// Source выполняет запрос без параметров и возвращает таблицу
type Source interface {
	Fetch(ctx context.Context, query string) (models.Table, error)
}

// SQLSource извлекает данные из исходной БД через database/sql
type SQLSource struct {
	db     *sql.DB
	logger *utils.ReportLogger
}

// NewSQLSource создает новый экземпляр SQLSource
func NewSQLSource(db *sql.DB, logger *utils.ReportLogger) *SQLSource {
	return &SQLSource{
		db:     db,
		logger: logger,
	}
}

// Fetch выполняет запрос и читает все строки.
// Пустой результат возвращается как пустая таблица без ошибки.
func (s *SQLSource) Fetch(ctx context.Context, query string) (models.Table, error) {
	s.logger.Debug("Выполнение запроса: %s", compactQuery(query))

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		s.logger.Error("Ошибка при выполнении запроса: %v", err)
		return models.Table{}, s.classify(ctx, query, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return models.Table{}, &models.QueryError{Query: query, Err: err}
	}

	table := models.Table{Columns: columns}
	for rows.Next() {
		values := make([]interface{}, len(columns))
		pointers := make([]interface{}, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			s.logger.Error("Ошибка при обработке строки результата: %v", err)
			return models.Table{}, &models.QueryError{Query: query, Err: err}
		}
		// Драйверы отдают текстовые значения как []byte, переиспользуя буфер
		for i, v := range values {
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}
		table.Rows = append(table.Rows, values)
	}

	// Проверяем ошибки после итерации по результатам
	if err := rows.Err(); err != nil {
		s.logger.Error("Ошибка после итерации по результатам запроса: %v", err)
		return models.Table{}, s.classify(ctx, query, err)
	}

	s.logger.Debug("Получено строк: %d", len(table.Rows))
	return table, nil
}

// classify отделяет потерю соединения от ошибок самого запроса:
// если после ошибки база не отвечает на ping, считаем соединение потерянным
func (s *SQLSource) classify(ctx context.Context, query string, err error) error {
	var netErr net.Error
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) || errors.As(err, &netErr) {
		return &models.ConnectionError{Err: err}
	}
	if pingErr := s.db.PingContext(ctx); pingErr != nil {
		return &models.ConnectionError{Err: err}
	}
	return &models.QueryError{Query: query, Err: err}
}

func compactQuery(query string) string {
	return strings.Join(strings.Fields(query), " ")
}
