package services

import (
	"math"
	"time"

	"gearguard/internal/entities"
	"gearguard/pkg/constants"
)

// Производные метрики. Всё здесь — чистые функции от текущих записей:
// ничего не кэшируется и не хранится, каждый запрос пересчитывает заново.

// IsOverdue: срок задан, срок строго раньше сегодняшнего дня и заявка
// не в финальном статусе. Сравнение идёт по календарным дням, заявка
// со сроком "сегодня" ещё не просрочена.
func IsOverdue(dueDate *time.Time, status string, now time.Time) bool {
	if dueDate == nil {
		return false
	}
	if constants.IsFinalRequestStatus(status) {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	due := time.Date(dueDate.Year(), dueDate.Month(), dueDate.Day(), 0, 0, 0, 0, now.Location())
	return due.Before(today)
}

// RequestIsOverdue — то же самое для целой записи заявки.
func RequestIsOverdue(req *entities.Request, now time.Time) bool {
	return IsOverdue(req.DueDate, req.Status, now)
}

// TechnicianLoad — процент загрузки техников: min(round(pending/active*100), 100).
// pending — заявки в статусе NEW_REQUEST, active — сотрудники со статусом active.
// При нуле активных сотрудников нагрузка определена как 0, а не деление на ноль.
func TechnicianLoad(pendingRequests, activeMembers int) int {
	if activeMembers <= 0 {
		return 0
	}
	load := int(math.Round(float64(pendingRequests) / float64(activeMembers) * 100))
	if load > 100 {
		return 100
	}
	if load < 0 {
		return 0
	}
	return load
}

// CountByType считает заявки по буквальному значению типа.
// Нераспознанные значения не попадают ни в одну корзину.
func CountByType(requests []entities.Request, reqType string) int {
	count := 0
	for i := range requests {
		if requests[i].Type == reqType {
			count++
		}
	}
	return count
}

// CountByStatus — то же для статуса.
func CountByStatus(requests []entities.Request, status string) int {
	count := 0
	for i := range requests {
		if requests[i].Status == status {
			count++
		}
	}
	return count
}

// CountOverdue — сколько заявок из набора просрочено на момент now.
func CountOverdue(requests []entities.Request, now time.Time) int {
	count := 0
	for i := range requests {
		if RequestIsOverdue(&requests[i], now) {
			count++
		}
	}
	return count
}
