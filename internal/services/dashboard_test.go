package services

import (
	"context"
	"testing"
	"time"

	"gearguard/internal/entities"
	"gearguard/pkg/config"
	"gearguard/pkg/constants"
	"gearguard/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type dashboardFixture struct {
	svc        DashboardServiceInterface
	teams      *fakeTeamRepo
	members    *fakeMemberRepo
	equipments *fakeEquipmentRepo
	requests   *fakeRequestRepo
	cache      *fakeCacheRepo
}

func newDashboardFixture(t *testing.T) *dashboardFixture {
	t.Helper()

	f := &dashboardFixture{
		teams:      newFakeTeamRepo(),
		members:    newFakeMemberRepo(),
		equipments: newFakeEquipmentRepo(),
		requests:   newFakeRequestRepo(),
		cache:      newFakeCacheRepo(),
	}
	f.svc = NewDashboardService(
		f.teams, f.members, f.equipments, f.requests, f.cache,
		config.DashboardConfig{RecentLimit: 5, TechniciansCacheTTL: time.Minute},
		zap.NewNop(),
	)
	return f
}

func (f *dashboardFixture) seed(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	_, err := f.teams.CreateTeam(ctx, entities.Team{Name: "Electrical Team"})
	require.NoError(t, err)

	for _, m := range []entities.TeamMember{
		{Name: "Rajesh Kumar", Email: "rajesh@example.com", Status: "active", TeamID: 1},
		{Name: "Priya Sharma", Email: "priya@example.com", Status: "active", TeamID: 1},
		{Name: "Amit Patel", Email: "amit@example.com", Status: "inactive", TeamID: 1},
	} {
		_, err := f.members.CreateMember(ctx, m)
		require.NoError(t, err)
	}

	_, err = f.equipments.CreateEquipment(ctx, entities.Equipment{Name: "CNC Machine #1", Status: "in_use"})
	require.NoError(t, err)
	_, err = f.equipments.CreateEquipment(ctx, entities.Equipment{Name: "Generator", Status: "available"})
	require.NoError(t, err)

	yesterday := time.Now().AddDate(0, 0, -1)
	tomorrow := time.Now().AddDate(0, 0, 1)
	for _, r := range []entities.Request{
		{Title: "A", TechnicianID: 1, Status: constants.RequestStatusNew, Type: constants.RequestTypeCorrective, DueDate: &yesterday},
		{Title: "B", TechnicianID: 1, Status: constants.RequestStatusInProgress, Type: constants.RequestTypePreventive, DueDate: &tomorrow},
		{Title: "C", TechnicianID: 2, Status: constants.RequestStatusCompleted, Type: constants.RequestTypeCorrective, DueDate: &yesterday},
		{Title: "D", TechnicianID: 2, Status: constants.RequestStatusUnderReview, Type: constants.RequestTypeCorrective},
	} {
		_, err := f.requests.CreateRequest(ctx, r)
		require.NoError(t, err)
	}
}

func TestGetDashboard(t *testing.T) {
	f := newDashboardFixture(t)
	f.seed(t)

	stats, err := f.svc.GetDashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, stats.TotalTeams)
	assert.Equal(t, 3, stats.TotalMembers)
	assert.Equal(t, 2, stats.ActiveMembers)
	assert.Equal(t, 2, stats.TotalEquipment)
	assert.Equal(t, 4, stats.TotalRequests)

	assert.Equal(t, 1, stats.PendingRequests, "в ожидании только NEW_REQUEST, взятые в работу не считаются")
	assert.Equal(t, 1, stats.OverdueRequests, "завершённая с прошедшим сроком не просрочена")
	assert.Equal(t, 3, stats.CorrectiveRequests)
	assert.Equal(t, 1, stats.PreventiveRequests)

	// 1 новая заявка на 2 активных: round(50) -> 50
	assert.Equal(t, 50, stats.TechnicianLoad)

	assert.Len(t, stats.EquipmentByStatus, 2)
	assert.Len(t, stats.RecentRequests, 4)
	assert.Len(t, stats.Technicians, 2, "только активные сотрудники")
}

func TestGetDashboard_Empty(t *testing.T) {
	f := newDashboardFixture(t)

	stats, err := f.svc.GetDashboard(context.Background())
	require.NoError(t, err)

	assert.Zero(t, stats.TotalRequests)
	assert.Zero(t, stats.TechnicianLoad, "пустая база не делит на ноль")
	assert.Empty(t, stats.RecentRequests)
}

func TestGetKanbanTasks_Projection(t *testing.T) {
	f := newDashboardFixture(t)
	ctx := context.Background()

	due := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	_, err := f.requests.CreateRequest(ctx, entities.Request{
		Title: "Карточка", TechnicianID: 1,
		Status: constants.RequestStatusNew, Type: constants.RequestTypePreventive,
		Priority: constants.PriorityHigh, DueDate: &due,
		Description: utils.StringPtr("не попадает в проекцию"),
	})
	require.NoError(t, err)

	tasks, err := f.svc.GetKanbanTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)

	task := tasks[0]
	assert.Equal(t, "Карточка", task.Title)
	assert.Equal(t, constants.RequestStatusNew, task.Status)
	assert.Equal(t, constants.RequestTypePreventive, task.Type)
	require.NotNil(t, task.DueDate)
	assert.Equal(t, "2026-04-01", *task.DueDate)
}

func TestGetCalendarRequests_OverdueComputed(t *testing.T) {
	f := newDashboardFixture(t)
	ctx := context.Background()

	yesterday := time.Now().AddDate(0, 0, -1)
	_, err := f.requests.CreateRequest(ctx, entities.Request{
		Title: "Просроченная", TechnicianID: 1,
		Status: constants.RequestStatusInProgress, Type: constants.RequestTypeCorrective,
		Priority: constants.PriorityMedium, DueDate: &yesterday,
	})
	require.NoError(t, err)

	items, err := f.svc.GetCalendarRequests(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, items[0].IsOverdue)
}

func TestListTechnicians_Cache(t *testing.T) {
	f := newDashboardFixture(t)
	f.seed(t)
	ctx := context.Background()

	first, err := f.svc.ListTechnicians(ctx)
	require.NoError(t, err)
	assert.Len(t, first, 2)
	assert.Equal(t, 1, f.cache.sets, "первый вызов наполняет кэш")

	second, err := f.svc.ListTechnicians(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, f.cache.sets, "повторный вызов читает из кэша")
}

func TestListTechnicians_CacheUnavailable(t *testing.T) {
	f := newDashboardFixture(t)
	f.seed(t)
	f.cache.broken = true

	technicians, err := f.svc.ListTechnicians(context.Background())
	require.NoError(t, err, "недоступный кэш не ломает запрос")
	assert.Len(t, technicians, 2)
}

func TestListTechnicians_CorruptedCache(t *testing.T) {
	f := newDashboardFixture(t)
	f.seed(t)
	f.cache.values[constants.CacheKeyTechnicians] = "{мусор"

	technicians, err := f.svc.ListTechnicians(context.Background())
	require.NoError(t, err)
	assert.Len(t, technicians, 2, "повреждённая запись игнорируется")
}
