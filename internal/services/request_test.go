package services

import (
	"context"
	"testing"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/pkg/constants"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/utils"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type requestServiceFixture struct {
	svc        RequestServiceInterface
	requests   *fakeRequestRepo
	equipments *fakeEquipmentRepo
	members    *fakeMemberRepo
	history    *fakeHistoryRepo

	technicianID uint64
	teamID       uint64
	equipmentID  uint64
	orphanID     uint64
}

func newRequestServiceFixture(t *testing.T) *requestServiceFixture {
	t.Helper()
	ctx := context.Background()

	f := &requestServiceFixture{
		requests:   newFakeRequestRepo(),
		equipments: newFakeEquipmentRepo(),
		members:    newFakeMemberRepo(),
		history:    newFakeHistoryRepo(),
	}

	var err error
	f.technicianID, err = f.members.CreateMember(ctx, entities.TeamMember{
		Name: "Rajesh Kumar", Email: "rajesh@example.com", Status: "active", TeamID: 1,
	})
	require.NoError(t, err)

	f.teamID = 7
	f.equipmentID, err = f.equipments.CreateEquipment(ctx, entities.Equipment{
		Name: "CNC Machine #1", Status: "in_use", MaintenanceTeamID: utils.Uint64Ptr(f.teamID),
	})
	require.NoError(t, err)

	// Оборудование без обслуживающей команды
	f.orphanID, err = f.equipments.CreateEquipment(ctx, entities.Equipment{
		Name: "Old Lathe", Status: "available",
	})
	require.NoError(t, err)

	f.svc = NewRequestService(f.requests, f.equipments, f.members, f.history, zap.NewNop())
	return f
}

func TestCreateRequest_AppliesDefaults(t *testing.T) {
	f := newRequestServiceFixture(t)

	res, err := f.svc.CreateRequest(context.Background(), dto.CreateRequestDTO{
		Title:        "Проверка насоса",
		TechnicianID: f.technicianID,
	})
	require.NoError(t, err)

	assert.Equal(t, constants.RequestStatusNew, res.Status)
	assert.Equal(t, constants.RequestTypeCorrective, res.Type)
	assert.Equal(t, constants.PriorityMedium, res.Priority)
	assert.Nil(t, res.TeamID, "без оборудования команда не назначается")
	assert.False(t, res.IsOverdue)
}

func TestCreateRequest_ResolvesTeamFromEquipment(t *testing.T) {
	f := newRequestServiceFixture(t)

	res, err := f.svc.CreateRequest(context.Background(), dto.CreateRequestDTO{
		Title:        "Плановое ТО",
		TechnicianID: f.technicianID,
		EquipmentID:  null.Uint64From(f.equipmentID),
	})
	require.NoError(t, err)

	require.NotNil(t, res.TeamID)
	assert.Equal(t, f.teamID, *res.TeamID, "команда взята из оборудования")
}

func TestCreateRequest_EquipmentWithoutTeam(t *testing.T) {
	f := newRequestServiceFixture(t)

	res, err := f.svc.CreateRequest(context.Background(), dto.CreateRequestDTO{
		Title:        "Осмотр станка",
		TechnicianID: f.technicianID,
		EquipmentID:  null.Uint64From(f.orphanID),
	})
	require.NoError(t, err)

	assert.Nil(t, res.TeamID, "резолвер не придумывает команду")
	require.NotNil(t, res.EquipmentID)
	assert.Equal(t, f.orphanID, *res.EquipmentID)
}

func TestCreateRequest_ValidationErrors(t *testing.T) {
	f := newRequestServiceFixture(t)
	ctx := context.Background()

	_, err := f.svc.CreateRequest(ctx, dto.CreateRequestDTO{Title: "   ", TechnicianID: f.technicianID})
	var fieldErr *apperrors.InvalidInputError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "title", fieldErr.Field)

	_, err = f.svc.CreateRequest(ctx, dto.CreateRequestDTO{Title: "Без техника"})
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "technician_id", fieldErr.Field)

	_, err = f.svc.CreateRequest(ctx, dto.CreateRequestDTO{Title: "Чужой техник", TechnicianID: 999})
	assert.ErrorIs(t, err, apperrors.ErrMemberNotFound)

	_, err = f.svc.CreateRequest(ctx, dto.CreateRequestDTO{
		Title: "Чужое оборудование", TechnicianID: f.technicianID, EquipmentID: null.Uint64From(999),
	})
	assert.ErrorIs(t, err, apperrors.ErrEquipmentNotFound)
}

func TestMoveRequest_AnyKnownStatusAllowed(t *testing.T) {
	f := newRequestServiceFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateRequest(ctx, dto.CreateRequestDTO{
		Title: "Карточка", TechnicianID: f.technicianID,
	})
	require.NoError(t, err)

	// Граф переходов не ограничен: из NEW_REQUEST сразу в COMPLETED и обратно
	res, err := f.svc.MoveRequest(ctx, created.ID, constants.RequestStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, constants.RequestStatusCompleted, res.Status)

	res, err = f.svc.MoveRequest(ctx, created.ID, constants.RequestStatusNew)
	require.NoError(t, err)
	assert.Equal(t, constants.RequestStatusNew, res.Status)
}

func TestMoveRequest_RejectsUnknownStatus(t *testing.T) {
	f := newRequestServiceFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateRequest(ctx, dto.CreateRequestDTO{
		Title: "Карточка", TechnicianID: f.technicianID,
	})
	require.NoError(t, err)

	_, err = f.svc.MoveRequest(ctx, created.ID, "DONE")
	var fieldErr *apperrors.InvalidInputError
	require.ErrorAs(t, err, &fieldErr)

	// Статус не изменился
	after, err := f.svc.FindRequest(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.RequestStatusNew, after.Status)
}

func TestMoveRequest_NotFound(t *testing.T) {
	f := newRequestServiceFixture(t)

	_, err := f.svc.MoveRequest(context.Background(), 12345, constants.RequestStatusInProgress)
	assert.ErrorIs(t, err, apperrors.ErrRequestNotFound)
}

func TestUpdateRequest_DoesNotRerunResolver(t *testing.T) {
	f := newRequestServiceFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateRequest(ctx, dto.CreateRequestDTO{
		Title: "ТО", TechnicianID: f.technicianID, EquipmentID: null.Uint64From(f.equipmentID),
	})
	require.NoError(t, err)
	require.NotNil(t, created.TeamID)

	// Переключаем заявку на оборудование без команды
	updated, err := f.svc.UpdateRequest(ctx, created.ID, dto.UpdateRequestDTO{
		EquipmentID: null.Uint64From(f.orphanID),
	})
	require.NoError(t, err)

	require.NotNil(t, updated.TeamID)
	assert.Equal(t, f.teamID, *updated.TeamID, "команда осталась назначенной при создании")
}

func TestUpdateRequest_ExplicitTeamChange(t *testing.T) {
	f := newRequestServiceFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateRequest(ctx, dto.CreateRequestDTO{
		Title: "ТО", TechnicianID: f.technicianID,
	})
	require.NoError(t, err)

	updated, err := f.svc.UpdateRequest(ctx, created.ID, dto.UpdateRequestDTO{
		TeamID: null.Uint64From(42),
	})
	require.NoError(t, err)

	require.NotNil(t, updated.TeamID)
	assert.Equal(t, uint64(42), *updated.TeamID)
}

func TestUpdateRequest_OverdueFlagFollowsStatus(t *testing.T) {
	f := newRequestServiceFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateRequest(ctx, dto.CreateRequestDTO{
		Title:        "Просроченная",
		TechnicianID: f.technicianID,
		DueDate:      utils.StringPtr("2020-01-01"),
	})
	require.NoError(t, err)
	assert.True(t, created.IsOverdue)

	completed, err := f.svc.UpdateRequest(ctx, created.ID, dto.UpdateRequestDTO{
		Status: utils.StringPtr(constants.RequestStatusCompleted),
	})
	require.NoError(t, err)
	assert.False(t, completed.IsOverdue, "финальный статус снимает просрочку без записи в БД")
}

func TestRequestHistory(t *testing.T) {
	f := newRequestServiceFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateRequest(ctx, dto.CreateRequestDTO{
		Title: "С журналом", TechnicianID: f.technicianID,
	})
	require.NoError(t, err)

	// Журнал не пополняется автоматически, в том числе при смене статуса
	_, err = f.svc.MoveRequest(ctx, created.ID, constants.RequestStatusCompleted)
	require.NoError(t, err)
	records, err := f.svc.ListHistory(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, records)

	rec, err := f.svc.AddHistoryRecord(ctx, created.ID, dto.CreateHistoryDTO{Note: "Заменён фильтр"})
	require.NoError(t, err)
	assert.Equal(t, "Заменён фильтр", rec.Note)

	records, err = f.svc.ListHistory(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, records, 1)

	_, err = f.svc.AddHistoryRecord(ctx, 999, dto.CreateHistoryDTO{Note: "нет такой заявки"})
	assert.ErrorIs(t, err, apperrors.ErrRequestNotFound)
}
