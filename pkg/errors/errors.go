package errors

import "fmt"

var (
	// Общие
	ErrNotFound   = fmt.Errorf("запись не найдена")
	ErrBadRequest = fmt.Errorf("неверный запрос")
	ErrConflict   = fmt.Errorf("конфликт уникальности при записи")

	// Справочники
	ErrTeamNotFound      = fmt.Errorf("команда не найдена")
	ErrMemberNotFound    = fmt.Errorf("сотрудник не найден")
	ErrEquipmentNotFound = fmt.Errorf("оборудование не найдено")
	ErrRequestNotFound   = fmt.Errorf("заявка не найдена")
)

// InvalidInputError — ошибка валидации входных данных.
// Field заполняется, когда ошибка относится к конкретному полю формы.
type InvalidInputError struct {
	Field   string
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}

func NewFieldError(field, format string, args ...interface{}) error {
	return &InvalidInputError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// HttpError — ошибка с HTTP-кодом для отдачи клиенту.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Details interface{}
	Context map[string]interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, context map[string]interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Context: context}
}
