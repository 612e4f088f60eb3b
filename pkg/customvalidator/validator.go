// Файл: pkg/customvalidator/validators.go

package customvalidator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidations регистрирует наши кастомные правила валидации
// в переданном экземпляре валидатора.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("phone10", isTenDigitPhone); err != nil {
		return err
	}
	if err := v.RegisterValidation("email", isGoodEmailFormat); err != nil {
		return err
	}
	if err := v.RegisterValidation("employee_code", isEmployeeCode); err != nil {
		return err
	}

	return nil
}

func isGoodEmailFormat(fl validator.FieldLevel) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(fl.Field().String())
}

// Телефон — ровно 10 цифр, без разделителей.
func isTenDigitPhone(fl validator.FieldLevel) bool {
	re := regexp.MustCompile(`^\d{10}$`)
	return re.MatchString(fl.Field().String())
}

// Табельный код вида EMP0001. Число может быть длиннее четырёх цифр.
func isEmployeeCode(fl validator.FieldLevel) bool {
	re := regexp.MustCompile(`^EMP\d{4,}$`)
	return re.MatchString(fl.Field().String())
}
