package models

import "fmt"

// ConnectionError - источник данных недоступен или отклонил аутентификацию
type ConnectionError struct {
	Driver string
	Host   string
	Port   int
	Err    error
}

func (e *ConnectionError) Error() string {
	if e.Host == "" {
		return fmt.Sprintf("соединение с базой данных потеряно: %v", e.Err)
	}
	return fmt.Sprintf("не удалось подключиться к базе данных %s на %s:%d: %v", e.Driver, e.Host, e.Port, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// QueryError - запрос некорректен или ссылается на отсутствующие объекты схемы
type QueryError struct {
	Query string
	Err   error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("ошибка выполнения запроса: %v", e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

// AggregateError - данные таблицы не подходят для агрегации
// (нет колонки, нечисловое значение, значение вне диапазона)
type AggregateError struct {
	Aggregate string
	Err       error
}

func (e *AggregateError) Error() string {
	return fmt.Sprintf("ошибка агрегации %q: %v", e.Aggregate, e.Err)
}

func (e *AggregateError) Unwrap() error { return e.Err }

// RenderError - не удалось построить или записать файл графика
type RenderError struct {
	Path string
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("ошибка записи графика %s: %v", e.Path, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
