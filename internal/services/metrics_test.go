package services

import (
	"testing"
	"time"

	"gearguard/internal/entities"
	"gearguard/pkg/constants"
	"gearguard/pkg/utils"

	"github.com/stretchr/testify/assert"
)

func TestIsOverdue(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)
	tomorrow := now.AddDate(0, 0, 1)

	tests := []struct {
		name    string
		dueDate *time.Time
		status  string
		want    bool
	}{
		{"без срока не просрочена", nil, constants.RequestStatusNew, false},
		{"срок в будущем", &tomorrow, constants.RequestStatusNew, false},
		{"срок сегодня ещё не просрочен", &now, constants.RequestStatusNew, false},
		{"срок прошёл, заявка открыта", &yesterday, constants.RequestStatusNew, true},
		{"срок прошёл, заявка в работе", &yesterday, constants.RequestStatusInProgress, true},
		{"срок прошёл, заявка на проверке", &yesterday, constants.RequestStatusUnderReview, true},
		{"завершённая не просрочена", &yesterday, constants.RequestStatusCompleted, false},
		{"отменённая не просрочена", &yesterday, constants.RequestStatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsOverdue(tt.dueDate, tt.status, now))
		})
	}
}

func TestIsOverdue_StatusTransitionFlipsFlag(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	due := now.AddDate(0, 0, -3)

	req := entities.Request{DueDate: &due, Status: constants.RequestStatusInProgress}
	assert.True(t, RequestIsOverdue(&req, now))

	// Флаг нигде не хранится, поэтому смена статуса сразу меняет ответ
	req.Status = constants.RequestStatusCompleted
	assert.False(t, RequestIsOverdue(&req, now))

	req.Status = constants.RequestStatusInProgress
	assert.True(t, RequestIsOverdue(&req, now), "возврат в работу снова делает заявку просроченной")
}

func TestTechnicianLoad(t *testing.T) {
	tests := []struct {
		name    string
		pending int
		active  int
		want    int
	}{
		{"нет техников", 5, 0, 0},
		{"нет заявок", 0, 4, 0},
		{"половинная загрузка", 2, 4, 50},
		{"полная загрузка", 4, 4, 100},
		{"перегрузка обрезается до 100", 42, 3, 100},
		{"округление к ближайшему", 1, 3, 33},
		{"отрицательное число техников", 5, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TechnicianLoad(tt.pending, tt.active))
		})
	}
}

func TestCountHelpers(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	past := now.AddDate(0, 0, -2)

	requests := []entities.Request{
		{Status: constants.RequestStatusNew, Type: constants.RequestTypeCorrective, DueDate: utils.TimePtr(past)},
		{Status: constants.RequestStatusInProgress, Type: constants.RequestTypePreventive, DueDate: utils.TimePtr(past)},
		{Status: constants.RequestStatusCompleted, Type: constants.RequestTypeCorrective, DueDate: utils.TimePtr(past)},
		{Status: constants.RequestStatusNew, Type: constants.RequestTypeCorrective},
	}

	assert.Equal(t, 3, CountByType(requests, constants.RequestTypeCorrective))
	assert.Equal(t, 1, CountByType(requests, constants.RequestTypePreventive))
	assert.Equal(t, 2, CountByStatus(requests, constants.RequestStatusNew))
	assert.Equal(t, 2, CountOverdue(requests, now), "завершённая и бессрочная не в счёте")
}
