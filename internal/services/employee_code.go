package services

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"gearguard/pkg/constants"
)

var employeeCodePattern = regexp.MustCompile(`^EMP(\d+)$`)

// NextEmployeeCode подбирает следующий свободный табельный код вида EMP0001.
//
// Алгоритм: из снимка уже назначенных кодов выбираются все, что целиком
// соответствуют шаблону EMP<число> (пробелы по краям обрезаются), берётся
// max+1; если разобрать не удалось ни один код — начинаем с 1. Кандидат
// форматируется с дополнением нулями минимум до 4 цифр. Если такая строка
// уже занята дословно (нестандартный код мог совпасть с кандидатом),
// число увеличивается, пока не найдётся свободное.
//
// Функция чистая: никакой глобальный счётчик не хранится, значение каждый
// раз вычисляется по текущим данным. Поэтому освободившиеся после удаления
// номера могут быть переиспользованы. От гонки двух одновременных вызовов
// защищает только уникальный индекс в БД.
func NextEmployeeCode(existing []string) string {
	taken := make(map[string]struct{}, len(existing))
	maxNumber := 0

	for _, code := range existing {
		trimmed := strings.TrimSpace(code)
		if trimmed == "" {
			continue
		}
		taken[trimmed] = struct{}{}

		matches := employeeCodePattern.FindStringSubmatch(trimmed)
		if matches == nil {
			continue
		}
		n, err := strconv.Atoi(matches[1])
		if err != nil {
			// Число не влезло в int — такой код не участвует в выборе максимума.
			continue
		}
		if n > maxNumber {
			maxNumber = n
		}
	}

	next := maxNumber + 1
	candidate := formatEmployeeCode(next)
	for {
		if _, busy := taken[candidate]; !busy {
			return candidate
		}
		next++
		candidate = formatEmployeeCode(next)
	}
}

func formatEmployeeCode(n int) string {
	return fmt.Sprintf("%s%04d", constants.EmployeeCodePrefix, n)
}
